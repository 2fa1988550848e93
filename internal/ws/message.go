package ws

import "encoding/json"

// Message represents a WebSocket message with type-based routing.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Message types - client requests
const (
	TypeNewGame     = "new_game"
	TypeSubmitMove  = "submit_move"
	TypeReset       = "reset"
	TypeQueryStatus = "query_status"
	TypeGetTitle    = "get_title"
	TypeWatchGame   = "watch_game"
	TypeLeaveGame   = "leave_game"
)

// Message types - game events
const (
	TypeGameStarted   = "game_started"
	TypeCatPlaced     = "cat_placed"
	TypeBlockerPlaced = "blocker_placed"
	TypeCatMoved      = "cat_moved"
	TypeGameReset     = "game_reset"
	TypeStatusChanged = "status_changed"
	TypeGameClosed    = "game_closed"
)

// Message types - replies
const (
	TypeStatus       = "status"
	TypeTitle        = "title"
	TypeMoveRejected = "move_rejected"
	TypeError        = "error"
)

// ErrorMessage is sent when an error occurs.
type ErrorMessage struct {
	Message string `json:"message"`
}

// NewErrorMessage creates a Message with an error payload.
func NewErrorMessage(msg string) Message {
	data, _ := json.Marshal(ErrorMessage{Message: msg})
	return Message{Type: TypeError, Data: data}
}

// NewMessage creates a Message with a typed payload.
func NewMessage(msgType string, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: msgType, Data: data}, nil
}
