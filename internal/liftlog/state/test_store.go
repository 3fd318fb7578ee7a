package state

import (
	"context"
	"sync"
)

var _ Store = (*TestStore)(nil)

// TestStore is an in-memory Store used in tests.
type TestStore struct {
	mu     sync.RWMutex
	values map[string][]byte

	// when set, returned by every call
	ForcedErr error
}

func NewTestStore() *TestStore {
	return &TestStore{
		values: make(map[string][]byte),
	}
}

func (s *TestStore) Get(_ context.Context, key string) ([]byte, error) {
	if s.ForcedErr != nil {
		return nil, s.ForcedErr
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return val, nil
}

func (s *TestStore) Set(_ context.Context, key string, value []byte) error {
	if s.ForcedErr != nil {
		return s.ForcedErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *TestStore) Clear(_ context.Context, keys ...string) error {
	if s.ForcedErr != nil {
		return s.ForcedErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}

// Len returns the number of stored keys.
func (s *TestStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
