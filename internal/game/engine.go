package game

import (
	"golang.org/x/exp/rand"

	"github.com/ugaemi/chatnoir-server/internal/board"
)

// Engine holds the state of one game and enforces its rules.
// It is not safe for concurrent use.
type Engine struct {
	rng *rand.Rand

	board    *board.Board
	blocked  []bool // indexed by cell
	cat      int
	catsTurn bool
}

// NewEngine creates an engine that draws its starting layouts from rng.
// Until Initialize is called there is no board: moves are rejected with
// ErrNotStarted and the queries report an empty, unfinished game.
func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// Initialize builds a fresh board and a random layout the cat can escape
// from. The owner moves first.
func (e *Engine) Initialize() []Event {
	e.board = board.Build()
	e.blocked = make([]bool, e.board.Len())
	e.cat = e.board.Center()
	e.catsTurn = false

	events := make([]Event, 0, StartingBlockers+2)
	events = append(events, catPlaced(e.coord(e.cat)))

	for _, i := range scatterBlockers(e.rng, e.board, e.blocked, e.cat, StartingBlockers) {
		events = append(events, blockerPlaced(e.coord(i)))
	}

	return append(events, statusChanged())
}

// Reset discards the current game and starts a new one.
func (e *Engine) Reset() []Event {
	return append([]Event{{Kind: EventReset}}, e.Initialize()...)
}

// SubmitMove applies the current player's action at (row, col): a cat move
// on the cat's turn, a blocker placement on the owner's turn. A rejected
// action returns a *MoveError and leaves the state untouched.
func (e *Engine) SubmitMove(row, col int) ([]Event, error) {
	target := board.Coord{Row: row, Col: col}
	player := e.Turn()

	if !e.started() {
		return nil, &MoveError{Player: player, Target: target, Err: ErrNotStarted}
	}
	if e.IsTerminal() {
		return nil, &MoveError{Player: player, Target: target, Err: ErrGameOver}
	}

	i, ok := e.board.Index(target)
	if !ok {
		return nil, &MoveError{Player: player, Target: target, Err: ErrOffBoard}
	}

	var ev Event
	if e.catsTurn {
		if err := e.checkCatMove(i); err != nil {
			return nil, &MoveError{Player: player, Target: target, Err: err}
		}
		ev = catMoved(e.coord(e.cat), target)
		e.cat = i
	} else {
		if e.blocked[i] || i == e.cat {
			return nil, &MoveError{Player: player, Target: target, Err: ErrCellOccupied}
		}
		ev = blockerPlaced(target)
		e.blocked[i] = true
	}

	e.catsTurn = !e.catsTurn
	return []Event{ev, statusChanged()}, nil
}

func (e *Engine) checkCatMove(i int) error {
	if e.blocked[i] {
		return ErrCellBlocked
	}
	if !e.board.Adjacent(e.cat, i) {
		return ErrNotAdjacent
	}
	return nil
}

// CanEscape reports whether the cat can still reach a border cell.
func (e *Engine) CanEscape() bool {
	if !e.started() {
		return false
	}
	return canEscape(e.board, e.blocked, e.cat)
}

func (e *Engine) started() bool {
	return e.board != nil
}

// Turn returns the player expected to act next.
func (e *Engine) Turn() Player {
	if e.catsTurn {
		return PlayerCat
	}
	return PlayerOwner
}

// Title returns the display name of the game.
func (e *Engine) Title() string {
	return Title
}

// CatPosition returns the cat's cell, or the zero Coord before Initialize.
func (e *Engine) CatPosition() board.Coord {
	if !e.started() {
		return board.Coord{}
	}
	return e.coord(e.cat)
}

// IsBlocked reports whether the cell at c holds a blocker.
func (e *Engine) IsBlocked(c board.Coord) bool {
	if !e.started() {
		return false
	}
	i, ok := e.board.Index(c)
	return ok && e.blocked[i]
}

// Blocked returns the coordinates of every blocked cell in index order.
func (e *Engine) Blocked() []board.Coord {
	var coords []board.Coord
	for i, b := range e.blocked {
		if b {
			coords = append(coords, e.coord(i))
		}
	}
	return coords
}

func (e *Engine) coord(i int) board.Coord {
	return e.board.Cell(i).Coord
}
