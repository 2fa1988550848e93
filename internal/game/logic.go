package game

import "github.com/ugaemi/chatnoir-server/internal/board"

// IsTerminal returns true once the cat stands on the border or has no route
// left to it. It is recomputed on every call. A game that has not been
// initialized is never terminal.
func (e *Engine) IsTerminal() bool {
	if !e.started() {
		return false
	}
	return e.catOnBorder() || !e.CanEscape()
}

// Outcome returns the winner of a finished game, or WinNone while the game
// is still running. The cat wins if it reached the border or still has an
// open route to it.
func (e *Engine) Outcome() Winner {
	if !e.IsTerminal() {
		return WinNone
	}
	if e.catOnBorder() || e.CanEscape() {
		return WinCat
	}
	return WinOwner
}

func (e *Engine) catOnBorder() bool {
	return e.board.Cell(e.cat).Border
}

// Status is a read-only summary of the game for display.
type Status struct {
	Turn     Player `json:"turn"`
	Terminal bool   `json:"terminal"`
	Winner   Winner `json:"winner"`
	Message  string `json:"message"`
}

// Status reports whose turn it is or, for a finished game, who won.
// Starting another game is a separate Reset call.
func (e *Engine) Status() Status {
	s := Status{Turn: e.Turn(), Winner: e.Outcome()}
	s.Terminal = s.Winner != WinNone

	switch {
	case s.Winner == WinCat:
		s.Message = MsgCatWins
	case s.Winner == WinOwner:
		s.Message = MsgOwnerWins
	case s.Turn == PlayerCat:
		s.Message = MsgCatsTurn
	default:
		s.Message = MsgOwnersTurn
	}
	return s
}

// Snapshot is the full visible state of a game.
type Snapshot struct {
	Title   string        `json:"title"`
	Cat     board.Coord   `json:"cat"`
	Blocked []board.Coord `json:"blocked"`
	Status  Status        `json:"status"`
}

// Snapshot returns the current visible state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Title:   Title,
		Cat:     e.CatPosition(),
		Blocked: e.Blocked(),
		Status:  e.Status(),
	}
}
