package counterstore

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value    int64
	deadline time.Time
}

// MemoryStore is an in-process Store implementation. It is used in tests and
// as a fallback when no counter database path is configured; counters held
// here are not shared across processes.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemoryStore creates an empty in-memory counter store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
	}
}

// Get returns the counter value for key, treating expired entries as absent
func (s *MemoryStore) Get(ctx context.Context, key string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || !time.Now().Before(entry.deadline) {
		return 0, false, nil
	}
	return entry.value, true, nil
}

// Put writes value under key with a fresh TTL
func (s *MemoryStore) Put(ctx context.Context, key string, value int64, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{
		value:    value,
		deadline: time.Now().Add(ttl),
	}
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}
