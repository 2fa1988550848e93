package session

import (
	"log/slog"
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

// Manager manages all active sessions.
type Manager struct {
	sessions map[string]*Session // id -> session
	codes    map[string]string   // code -> id
	recorder Recorder
	rng      *rand.Rand
	mu       sync.RWMutex
}

// NewManager creates a session manager. A zero seed seeds from the clock.
func NewManager(seed uint64, recorder Recorder) *Manager {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Manager{
		sessions: make(map[string]*Session),
		codes:    make(map[string]string),
		recorder: recorder,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// CreateSession creates a new session and returns it. The game is not
// dealt until Start is called.
func (m *Manager) CreateSession() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing := make(map[string]bool, len(m.codes))
	for code := range m.codes {
		existing[code] = true
	}

	code := GenerateCode(m.rng, existing)
	s := NewSession(code, rand.New(rand.NewSource(m.rng.Uint64())), m.recorder)
	m.sessions[s.ID] = s
	m.codes[code] = s.ID

	slog.Info("session created", "session", s.ID, "code", code)
	return s
}

// GetSession returns a session by its ID.
func (m *Manager) GetSession(id string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// FindByCode returns the session with the given spectator code.
func (m *Manager) FindByCode(code string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[m.codes[code]]
}

// RemoveSession removes a session by its ID.
func (m *Manager) RemoveSession(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		delete(m.codes, s.Code)
		delete(m.sessions, id)
		slog.Info("session removed", "session", id)
	}
}

// SessionCount returns the number of active sessions.
func (m *Manager) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
