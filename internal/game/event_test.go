package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/chatnoir-server/internal/board"
)

func TestFacing(t *testing.T) {
	tests := []struct {
		name     string
		from, to board.Coord
		want     Facing
	}{
		{"column increases", board.Coord{Row: 10, Col: 5}, board.Coord{Row: 10, Col: 6}, FacingRight},
		{"column decreases", board.Coord{Row: 10, Col: 5}, board.Coord{Row: 10, Col: 4}, FacingLeft},
		{"up-left diagonal", board.Coord{Row: 5, Col: 2}, board.Coord{Row: 4, Col: 1}, FacingLeft},
		{"down below middle", board.Coord{Row: 11, Col: 3}, board.Coord{Row: 12, Col: 3}, FacingRight},
		{"down onto lower half", board.Coord{Row: 10, Col: 5}, board.Coord{Row: 11, Col: 5}, FacingRight},
		{"up onto upper half", board.Coord{Row: 10, Col: 5}, board.Coord{Row: 9, Col: 5}, FacingRight},
		{"up above middle", board.Coord{Row: 6, Col: 2}, board.Coord{Row: 5, Col: 2}, FacingRight},
		{"down in upper half", board.Coord{Row: 5, Col: 2}, board.Coord{Row: 6, Col: 2}, FacingLeft},
		{"down onto middle", board.Coord{Row: 9, Col: 5}, board.Coord{Row: 10, Col: 5}, FacingLeft},
		{"up onto middle", board.Coord{Row: 11, Col: 4}, board.Coord{Row: 10, Col: 4}, FacingLeft},
		{"up in lower half", board.Coord{Row: 15, Col: 2}, board.Coord{Row: 14, Col: 2}, FacingLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, facing(tt.from, tt.to))
		})
	}
}

func TestEvent_JSON(t *testing.T) {
	ev := catMoved(board.Coord{Row: 10, Col: 5}, board.Coord{Row: 10, Col: 4})
	data, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":{"row":10,"col":5},"to":{"row":10,"col":4},"facing":"left"}`, string(data))

	data, err = json.Marshal(blockerPlaced(board.Coord{Row: 3, Col: 1}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"to":{"row":3,"col":1}}`, string(data))

	data, err = json.Marshal(catPlaced(board.Coord{Row: 10, Col: 5}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"to":{"row":10,"col":5}}`, string(data))
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "cat_placed", EventCatPlaced.String())
	assert.Equal(t, "blocker_placed", EventBlockerPlaced.String())
	assert.Equal(t, "cat_moved", EventCatMoved.String())
	assert.Equal(t, "reset", EventReset.String())
	assert.Equal(t, "status_changed", EventStatusChanged.String())
}

func TestPlayer_JSON(t *testing.T) {
	data, err := json.Marshal(PlayerCat)
	require.NoError(t, err)
	assert.Equal(t, `"cat"`, string(data))

	var p Player
	require.NoError(t, json.Unmarshal([]byte(`"owner"`), &p))
	assert.Equal(t, PlayerOwner, p)
	require.NoError(t, json.Unmarshal([]byte(`"cat"`), &p))
	assert.Equal(t, PlayerCat, p)
}

func TestStatus_JSONRoundTrip(t *testing.T) {
	in := Status{Turn: PlayerCat, Terminal: true, Winner: WinOwner, Message: MsgOwnerWins}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"turn":"cat","terminal":true,"winner":"owner","message":"Game over. The owner wins!"}`, string(data))

	var out Status
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
