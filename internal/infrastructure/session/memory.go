package session

import (
	"context"
	"sync"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
)

// MemoryStore keeps the session in process memory only. Nothing survives a
// restart; Load is a no-op. Used by tests and the ephemeral backend.
type MemoryStore struct {
	mu      sync.RWMutex
	current domain.Session
	present bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) {}

func (m *MemoryStore) Set(_ context.Context, s domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = s
	m.present = true
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = domain.Session{}
	m.present = false
	return nil
}

func (m *MemoryStore) Current() (domain.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current, m.present
}
