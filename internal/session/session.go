package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/ugaemi/chatnoir-server/internal/game"
	"github.com/ugaemi/chatnoir-server/internal/result"
)

const recordTimeout = 5 * time.Second

// Observer receives every engine event of a session in order.
type Observer interface {
	OnEvent(ev game.Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ev game.Event)

// OnEvent calls f(ev).
func (f ObserverFunc) OnEvent(ev game.Event) { f(ev) }

// Recorder stores the result of a finished game.
type Recorder interface {
	Save(ctx context.Context, r *result.Result) error
}

type subscription struct {
	id       int
	observer Observer
}

// Session is one game played at one screen, plus everyone watching it.
// All engine calls go through the session lock, so moves are applied one at
// a time and observers see events in the order they happened.
type Session struct {
	ID   string `json:"id"`
	Code string `json:"code"`

	engine   *game.Engine
	recorder Recorder

	observers []subscription
	nextSubID int

	startedAt time.Time
	catMoves  int
	blockers  int
	recorded  bool

	mu sync.Mutex
}

// NewSession creates a session. Call Start to deal the first game.
func NewSession(code string, rng *rand.Rand, recorder Recorder) *Session {
	return &Session{
		ID:       uuid.New().String(),
		Code:     code,
		engine:   game.NewEngine(rng),
		recorder: recorder,
	}
}

// Subscribe registers an observer and returns its subscription ID.
func (s *Session) Subscribe(o Observer) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	s.observers = append(s.observers, subscription{id: s.nextSubID, observer: o})
	return s.nextSubID
}

// Unsubscribe removes an observer. Unknown IDs are ignored.
func (s *Session) Unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.observers {
		if sub.id == id {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// ObserverCount returns the number of subscribed observers.
func (s *Session) ObserverCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}

// Start deals a new game and returns its snapshot.
func (s *Session) Start() game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetCounters()
	s.publish(s.engine.Initialize())

	slog.Info("game started", "session", s.ID, "code", s.Code)
	return s.engine.Snapshot()
}

// Reset throws the current game away and deals a new one.
func (s *Session) Reset() game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetCounters()
	s.publish(s.engine.Reset())

	slog.Info("game reset", "session", s.ID)
	return s.engine.Snapshot()
}

// Submit forwards a move or placement to the engine. Rejections are
// returned as *game.MoveError and publish nothing.
func (s *Session) Submit(row, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.engine.SubmitMove(row, col)
	if err != nil {
		slog.Debug("move rejected", "session", s.ID, "row", row, "col", col, "error", err)
		return err
	}

	for _, ev := range events {
		switch ev.Kind {
		case game.EventCatMoved:
			s.catMoves++
		case game.EventBlockerPlaced:
			s.blockers++
		}
	}
	s.publish(events)

	if !s.recorded && s.engine.IsTerminal() {
		s.recordResult()
	}
	return nil
}

// Status reports whose turn it is or who won. It never changes the game.
func (s *Session) Status() game.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Status()
}

// Snapshot returns the visible state of the current game.
func (s *Session) Snapshot() game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Snapshot()
}

// Title returns the display name of the game.
func (s *Session) Title() string {
	return game.Title
}

// publish delivers events to every observer. Caller must hold s.mu.
func (s *Session) publish(events []game.Event) {
	for _, ev := range events {
		for _, sub := range s.observers {
			sub.observer.OnEvent(ev)
		}
	}
}

// resetCounters clears per-game bookkeeping. Caller must hold s.mu.
func (s *Session) resetCounters() {
	s.startedAt = time.Now()
	s.catMoves = 0
	s.blockers = 0
	s.recorded = false
}

// recordResult saves the finished game. Caller must hold s.mu.
func (s *Session) recordResult() {
	s.recorded = true
	res := result.NewResult(s.ID, s.engine.Outcome().String(), s.catMoves, s.blockers, s.startedAt)
	slog.Info("game over", "session", s.ID, "winner", res.Winner,
		"cat_moves", res.CatMoves, "blockers", res.Blockers, "duration", res.Duration())

	if s.recorder == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	if err := s.recorder.Save(ctx, res); err != nil {
		slog.Error("failed to record result", "session", s.ID, "error", err)
	}
}
