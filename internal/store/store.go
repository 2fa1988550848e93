package store

import (
	"context"

	"github.com/ugaemi/chatnoir-server/internal/result"
)

// Stats aggregates recorded results.
type Stats struct {
	Games     int `json:"games"`
	CatWins   int `json:"cat_wins"`
	OwnerWins int `json:"owner_wins"`
}

// ResultStore defines the interface for finished game storage.
type ResultStore interface {
	// Save inserts a finished game.
	Save(ctx context.Context, r *result.Result) error
	// FindBySession returns the results recorded for a session, oldest first.
	FindBySession(ctx context.Context, sessionID string) ([]*result.Result, error)
	// Stats returns win counts over all recorded games.
	Stats(ctx context.Context) (Stats, error)
	// Close releases storage resources.
	Close() error
}
