package game

import (
	"errors"
	"fmt"

	"github.com/ugaemi/chatnoir-server/internal/board"
)

// Rejection kinds. A rejected action never changes the game state.
var (
	ErrNotStarted   = errors.New("game has not started")
	ErrGameOver     = errors.New("game is over")
	ErrOffBoard     = errors.New("cell is off the board")
	ErrCellBlocked  = errors.New("cat cannot move onto a blocker")
	ErrNotAdjacent  = errors.New("cat can only move to an adjacent cell")
	ErrCellOccupied = errors.New("cell is already blocked or holds the cat")
)

// MoveError describes a rejected move or placement.
type MoveError struct {
	Player Player
	Target board.Coord
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s move to (%d, %d) rejected: %v", e.Player, e.Target.Row, e.Target.Col, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// Kind returns a stable identifier for the rejection reason.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNotStarted):
		return "not_started"
	case errors.Is(err, ErrGameOver):
		return "game_over"
	case errors.Is(err, ErrOffBoard):
		return "off_board"
	case errors.Is(err, ErrCellBlocked):
		return "cell_blocked"
	case errors.Is(err, ErrNotAdjacent):
		return "not_adjacent"
	case errors.Is(err, ErrCellOccupied):
		return "cell_occupied"
	default:
		return "unknown"
	}
}

// Describe returns a title and a player-facing explanation for a rejection.
func Describe(err error) (title, text string) {
	switch {
	case errors.Is(err, ErrNotStarted):
		return "No game", "There is no game in progress, start a new game first!"
	case errors.Is(err, ErrGameOver):
		return "Game is over", "The game is over, press reset to start a new game!"
	case errors.Is(err, ErrOffBoard):
		return "Illegal move", "That cell is not on the board."
	case errors.Is(err, ErrCellBlocked):
		return "Weak Cat Error", "The cat is weak and cannot break through a blocker! " +
			"The cat can only move to a non-blocked space adjacent to it's current position. Try again!"
	case errors.Is(err, ErrNotAdjacent):
		return "Teleportation Error", "The cat cannot teleport! " +
			"The cat can only move to a non-blocked space adjacent to it's current position. Try Again!"
	case errors.Is(err, ErrCellOccupied):
		return "Owner Move Error", "Blockers cannot be placed on top of the cat or on top of another blocker."
	default:
		return "Illegal move", err.Error()
	}
}
