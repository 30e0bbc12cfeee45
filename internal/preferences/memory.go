package preferences

import (
	"context"
	"sync"
)

// MemoryStore keeps preferences in memory.
type MemoryStore struct {
	mu    sync.RWMutex
	prefs *Preferences
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load implements Store.
func (s *MemoryStore) Load(_ context.Context) (Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.prefs == nil {
		return Default(), nil
	}
	return *s.prefs, nil
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, p Preferences) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs = &p
	return nil
}
