package store

import (
	"context"
	"sync"
	"time"

	"github.com/preston-bernstein/hockey-bracket-service/internal/domain/bracket"
)

type memoryEntry struct {
	resp    bracket.Response
	expires time.Time
}

// MemoryStore is a thread-safe TTL cache of bracket responses.
// Stored responses are shared with callers and must be treated as read-only.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get retrieves an unexpired response by key.
func (s *MemoryStore) Get(ctx context.Context, key string) (bracket.Response, bool, error) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return bracket.Response{}, false, nil
	}
	if !s.now().Before(entry.expires) {
		s.mu.Lock()
		if current, still := s.entries[key]; still && current.expires.Equal(entry.expires) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return bracket.Response{}, false, nil
	}
	return entry.resp, true, nil
}

// Set stores resp until ttl elapses.
func (s *MemoryStore) Set(ctx context.Context, key string, resp bracket.Response, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{resp: resp, expires: s.now().Add(ttl)}
	return nil
}

// Delete drops a cached response.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Len reports how many entries are held, expired ones included until read.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
