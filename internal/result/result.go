package result

import (
	"time"

	"github.com/google/uuid"
)

// Result is the summary of one finished game.
type Result struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Winner    string    `json:"winner"`
	CatMoves  int       `json:"cat_moves"`
	Blockers  int       `json:"blockers"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

// NewResult creates a result for a game that ends now.
// Blockers counts only placements made by the owner, not the starting layout.
func NewResult(sessionID, winner string, catMoves, blockers int, startedAt time.Time) *Result {
	return &Result{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Winner:    winner,
		CatMoves:  catMoves,
		Blockers:  blockers,
		StartedAt: startedAt,
		EndedAt:   time.Now(),
	}
}

// Duration returns how long the game lasted.
func (r *Result) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}
