package store

import (
	"context"
	"sync"

	"github.com/ugaemi/chatnoir-server/internal/result"
)

// MemoryStore implements ResultStore in process memory. It is used when no
// database is configured; results are lost on restart.
type MemoryStore struct {
	results []*result.Result
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save stores a copy of r.
func (s *MemoryStore) Save(_ context.Context, r *result.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *r
	s.results = append(s.results, &c)
	return nil
}

// FindBySession returns the results recorded for a session, oldest first.
func (s *MemoryStore) FindBySession(_ context.Context, sessionID string) ([]*result.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found []*result.Result
	for _, r := range s.results {
		if r.SessionID == sessionID {
			c := *r
			found = append(found, &c)
		}
	}
	return found, nil
}

// Stats returns win counts over all recorded games.
func (s *MemoryStore) Stats(_ context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Games: len(s.results)}
	for _, r := range s.results {
		switch r.Winner {
		case "cat":
			st.CatWins++
		case "owner":
			st.OwnerWins++
		}
	}
	return st, nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
