package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a process-local session store for tests and single-node
// deployments.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session

	now func() time.Time // swapped in tests
}

// NewMemoryStore constructs an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Create implements [Store].
func (m *MemoryStore) Create(_ context.Context, s Session) error {
	if s.SessionID == "" || s.UserID == "" {
		return errMissingSessionFields
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.SessionID] = s
	return nil
}

// Get implements [Store]. Expired sessions are deleted on access.
func (m *MemoryStore) Get(_ context.Context, sessionID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	if s.Expired(m.now()) {
		delete(m.sessions, sessionID)
		return nil, nil
	}

	return &s, nil
}

// Update implements [Store].
func (m *MemoryStore) Update(_ context.Context, s Session) error {
	if s.SessionID == "" {
		return errMissingSessionFields
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s.Expired(m.now()) {
		delete(m.sessions, s.SessionID)
		return nil
	}

	m.sessions[s.SessionID] = s
	return nil
}

// Delete implements [Store].
func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

// Purge removes every expired session. Call it periodically from a
// background goroutine to bound memory on long-running processes.
func (m *MemoryStore) Purge() {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		if s.Expired(now) {
			delete(m.sessions, id)
		}
	}
}

// PurgeEvery runs [MemoryStore.Purge] on the given interval until ctx is
// cancelled. Run it in its own goroutine.
func (m *MemoryStore) PurgeEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Purge()
		}
	}
}
