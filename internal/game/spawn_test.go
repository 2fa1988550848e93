package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/ugaemi/chatnoir-server/internal/board"
)

func TestPlaceBatch_DistinctCellsAvoidCat(t *testing.T) {
	b := board.Build()
	rng := rand.New(rand.NewSource(1))

	// Run multiple times to catch randomness issues
	for i := 0; i < 50; i++ {
		blocked := make([]bool, b.Len())
		placed := placeBatch(rng, b, blocked, b.Center(), StartingBlockers)
		require.Len(t, placed, StartingBlockers)

		seen := make(map[int]bool)
		for _, p := range placed {
			assert.False(t, seen[p], "cell placed twice")
			assert.NotEqual(t, b.Center(), p, "blocker placed on the cat")
			assert.True(t, blocked[p])
			seen[p] = true
		}
	}
}

func TestPlaceBatch_KeepsExistingBlockers(t *testing.T) {
	b := board.Build()
	rng := rand.New(rand.NewSource(2))
	blocked := make([]bool, b.Len())
	blocked[0] = true

	placed := placeBatch(rng, b, blocked, b.Center(), 30)
	assert.NotContains(t, placed, 0)
	assert.True(t, blocked[0])
}

func TestScatterBlockers_RetriesUntilEscapable(t *testing.T) {
	b := board.Build()
	rng := rand.New(rand.NewSource(3))

	// Five of the six cells around the cat are already closed, so many
	// batches trap it and have to be thrown away.
	blocked := make([]bool, b.Len())
	neighbors := b.Neighbors(b.Center())
	for _, n := range neighbors[1:] {
		blocked[n] = true
	}

	placed := scatterBlockers(rng, b, blocked, b.Center(), StartingBlockers)
	require.Len(t, placed, StartingBlockers)
	assert.True(t, canEscape(b, blocked, b.Center()))

	count := 0
	for _, v := range blocked {
		if v {
			count++
		}
	}
	assert.Equal(t, StartingBlockers+len(neighbors)-1, count, "rejected batches must be rolled back")
}
