package memory

import (
	"context"
	"sync"

	"github.com/winterhq/navhome/internal/kv"
)

// Store is an in-memory kv.Store used by tests and local development.
type Store struct {
	mu     sync.RWMutex
	values map[string]string

	// FailWith, when set, makes every operation return this error.
	// Lets tests exercise the store-failure paths.
	FailWith error
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{values: make(map[string]string)}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.FailWith != nil {
		return "", s.FailWith
	}
	val, ok := s.values[key]
	if !ok {
		return "", kv.ErrNotFound
	}
	return val, nil
}

func (s *Store) Put(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return s.FailWith
	}
	s.values[key] = value
	return nil
}

func (s *Store) PutIfAbsent(ctx context.Context, key, value string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return false, s.FailWith
	}
	if _, exists := s.values[key]; exists {
		return false, nil
	}
	s.values[key] = value
	return true, nil
}

func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.FailWith
}
