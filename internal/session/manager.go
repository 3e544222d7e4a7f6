package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a session ID is unknown to the manager
var ErrNotFound = fmt.Errorf("session not found")

// Manager is an in-memory registry of live sessions keyed by ID. Sessions
// are not persisted; a reset replaces the stored state with a fresh one and
// ending the session removes it entirely.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]State
}

// NewManager creates an empty session manager
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]State),
	}
}

// Create registers a new session with default state and returns its ID
func (m *Manager) Create() (string, State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	state := NewState()
	m.sessions[id] = state
	return id, state
}

// Get returns the current state of a session
func (m *Manager) Get(id string) (State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.sessions[id]
	if !ok {
		return State{}, ErrNotFound
	}
	return state, nil
}

// Dispatch applies events to a session under the manager's lock and returns
// the resulting state. Each interaction has exactly one mutator, so the
// lock only guards against sessions racing with each other.
func (m *Manager) Dispatch(id string, events ...Event) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.sessions[id]
	if !ok {
		return State{}, ErrNotFound
	}
	for _, e := range events {
		state = Apply(state, e)
	}
	m.sessions[id] = state
	return state, nil
}

// Delete ends a session and discards its state
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

// Count returns the number of live sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
