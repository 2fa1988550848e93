package game

import "github.com/ugaemi/chatnoir-server/internal/board"

// canEscape runs a breadth-first search from start over unblocked cells and
// reports whether any border cell is reachable. The visited set is local to
// the call so the board stays read-only.
func canEscape(b *board.Board, blocked []bool, start int) bool {
	visited := make([]bool, b.Len())
	visited[start] = true
	queue := []int{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range b.Neighbors(cur) {
			if blocked[n] || visited[n] {
				continue
			}
			if b.Cell(n).Border {
				return true
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return false
}
