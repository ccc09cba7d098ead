package storage

import (
	"context"
	"sync"
	"time"

	"github.com/SwineFeather/nordics-gateway/pkg/ratelimit"
)

// MemoryBackend implements Backend with an in-process map. Snapshots do not
// survive a restart; this is the default when persistence is not configured
// and the backend used by tests.
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string]ratelimit.Entry
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		entries: make(map[string]ratelimit.Entry),
	}
}

// SaveAll replaces the stored snapshot.
func (m *MemoryBackend) SaveAll(_ context.Context, entries []ratelimit.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]ratelimit.Entry, len(entries))
	for _, e := range entries {
		m.entries[e.Identifier] = e
	}
	return nil
}

// LoadAll returns the stored snapshot.
func (m *MemoryBackend) LoadAll(_ context.Context) ([]ratelimit.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]ratelimit.Entry, 0, len(m.entries))
	for _, e := range m.entries {
		entries = append(entries, e)
	}
	return entries, nil
}

// Purge removes entries whose window expired before the given time.
func (m *MemoryBackend) Purge(_ context.Context, before time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, e := range m.entries {
		if e.ResetTime.Before(before) {
			delete(m.entries, id)
			removed++
		}
	}
	return removed, nil
}

// Close is a no-op for the memory backend.
func (m *MemoryBackend) Close() error {
	return nil
}
