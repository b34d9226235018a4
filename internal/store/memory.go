package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/nickofolas/wdle/internal/game"
)

type memoryEntry struct {
	snap    game.Snapshot
	expires time.Time
}

// memory is an in-memory map-based Store implementation.
// State is lost when the process restarts.
type memory struct {
	mu     sync.RWMutex
	rounds map[string]memoryEntry
	ttl    time.Duration
	now    func() time.Time
}

// NewMemoryStore constructs an in-memory Store. ttl <= 0 disables expiry.
func NewMemoryStore(ttl time.Duration) Store {
	return newMemory(ttl, time.Now)
}

func newMemory(ttl time.Duration, now func() time.Time) *memory {
	return &memory{rounds: make(map[string]memoryEntry), ttl: ttl, now: now}
}

// Save adds or replaces the snapshot. Texts is copied so later edits by the
// caller do not leak into the store.
func (m *memory) Save(ctx context.Context, s game.Snapshot) error {
	s.Texts = slices.Clone(s.Texts)
	e := memoryEntry{snap: s}
	if m.ttl > 0 {
		e.expires = m.now().Add(m.ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[s.ID] = e
	return nil
}

// Get looks up a round by id, treating expired entries as missing.
func (m *memory) Get(ctx context.Context, id string) (game.Snapshot, error) {
	m.mu.RLock()
	e, ok := m.rounds[id]
	m.mu.RUnlock()
	if !ok {
		return game.Snapshot{}, ErrNotFound
	}
	if !e.expires.IsZero() && !m.now().Before(e.expires) {
		_ = m.Delete(ctx, id)
		return game.Snapshot{}, ErrNotFound
	}
	s := e.snap
	s.Texts = slices.Clone(s.Texts)
	return s, nil
}

// Delete removes a round.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rounds, id)
	return nil
}
