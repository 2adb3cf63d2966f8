// Package memory implements the cache store in-process for development and
// tests.
package memory

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	payload []byte
	expiry  time.Time
}

// Store keeps entries in a mutex-guarded map.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{entries: make(map[string]entry)}
}

// Get returns the payload and expiry for key.
func (s *Store) Get(_ context.Context, key string) ([]byte, time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok {
		return nil, time.Time{}, false, nil
	}
	return append([]byte(nil), e.payload...), e.expiry, true, nil
}

// Set replaces any prior entry for key.
func (s *Store) Set(_ context.Context, key string, payload []byte, expiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{payload: append([]byte(nil), payload...), expiry: expiry}
	return nil
}

// Delete removes key.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}
