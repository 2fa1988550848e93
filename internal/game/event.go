package game

import "github.com/ugaemi/chatnoir-server/internal/board"

type EventKind int

const (
	EventCatPlaced EventKind = iota
	EventBlockerPlaced
	EventCatMoved
	EventReset
	EventStatusChanged
)

func (k EventKind) String() string {
	switch k {
	case EventCatPlaced:
		return "cat_placed"
	case EventBlockerPlaced:
		return "blocker_placed"
	case EventCatMoved:
		return "cat_moved"
	case EventReset:
		return "reset"
	case EventStatusChanged:
		return "status_changed"
	default:
		return "unknown"
	}
}

// Event is one observable state change. Operations return their events in
// the order the changes happened.
//
// For EventCatPlaced and EventBlockerPlaced only To is set. EventCatMoved
// carries both ends of the move and the facing hint.
type Event struct {
	Kind   EventKind    `json:"-"`
	From   *board.Coord `json:"from,omitempty"`
	To     board.Coord  `json:"to"`
	Facing Facing       `json:"facing,omitempty"`
}

func catPlaced(at board.Coord) Event {
	return Event{Kind: EventCatPlaced, To: at}
}

func blockerPlaced(at board.Coord) Event {
	return Event{Kind: EventBlockerPlaced, To: at}
}

func catMoved(from, to board.Coord) Event {
	return Event{Kind: EventCatMoved, From: &from, To: to, Facing: facing(from, to)}
}

func statusChanged() Event {
	return Event{Kind: EventStatusChanged}
}

// facing picks the sprite direction for a cat move. Same-column hops are
// decided by which side of the middle row the cat lands on, because the
// tiling shears the other way there.
func facing(from, to board.Coord) Facing {
	switch {
	case to.Col > from.Col:
		return FacingRight
	case to.Col < from.Col:
		return FacingLeft
	case (to.Row > from.Row && to.Row > board.MiddleRow) || (to.Row < from.Row && to.Row < board.MiddleRow):
		return FacingRight
	default:
		return FacingLeft
	}
}
