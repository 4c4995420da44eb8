// Package memory provides an in-process implementation of storage.Store.
// Values do not survive a restart.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/photobill/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps values in a map.
type Store struct {
	mu     sync.Mutex
	values map[string][]byte
	getErr error
	setErr error
	sets   int
}

// New creates an empty Store.
func New() *Store {
	return &Store{values: make(map[string][]byte)}
}

// Get returns a copy of the value under key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	v, ok := s.values[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value under key.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = append([]byte(nil), value...)
	s.sets++
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

// FailGets makes every Get return err until called again with nil.
func (s *Store) FailGets(err error) {
	s.mu.Lock()
	s.getErr = err
	s.mu.Unlock()
}

// FailSets makes every Set return err until called again with nil.
func (s *Store) FailSets(err error) {
	s.mu.Lock()
	s.setErr = err
	s.mu.Unlock()
}

// Writes reports how many Set calls succeeded.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets
}
