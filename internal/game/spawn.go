package game

import (
	"golang.org/x/exp/rand"

	"github.com/ugaemi/chatnoir-server/internal/board"
)

// scatterBlockers blocks count random cells, never the cat's cell, and
// retries the whole batch until the cat still has a route to the border.
// It returns the accepted batch in placement order.
func scatterBlockers(rng *rand.Rand, b *board.Board, blocked []bool, cat, count int) []int {
	for {
		placed := placeBatch(rng, b, blocked, cat, count)
		if canEscape(b, blocked, cat) {
			return placed
		}
		for _, i := range placed {
			blocked[i] = false
		}
	}
}

// placeBatch picks count distinct free cells uniformly from the bounding
// Rows x Side rectangle, re-rolling picks that fall outside a short row.
func placeBatch(rng *rand.Rand, b *board.Board, blocked []bool, cat, count int) []int {
	placed := make([]int, 0, count)
	for len(placed) < count {
		c := board.Coord{Row: rng.Intn(board.Rows), Col: rng.Intn(board.Side)}
		i, ok := b.Index(c)
		if !ok || blocked[i] || i == cat {
			continue
		}
		blocked[i] = true
		placed = append(placed, i)
	}
	return placed
}
