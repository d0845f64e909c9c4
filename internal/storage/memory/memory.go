// Package memory provides an in-process storage.Slot. Values are lost when the
// process exits.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/chris-regnier/moodctl/internal/storage"
)

// Store is a map-backed storage.Slot safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	values map[string][]byte
	writes map[string][][]byte

	getErr error
	setErr error
	gate   chan struct{} // when non-nil, Get blocks until it is closed
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		values: make(map[string][]byte),
		writes: make(map[string][][]byte),
	}
}

// FailGets makes every subsequent Get return err. Pass nil to clear.
func (s *Store) FailGets(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getErr = err
}

// FailSets makes every subsequent Set return err. Pass nil to clear.
func (s *Store) FailSets(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setErr = err
}

// HoldGets makes Get block until the returned release function is called.
func (s *Store) HoldGets() (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	s.gate = gate
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			if s.gate == gate {
				s.gate = nil
			}
			s.mu.Unlock()
			close(gate)
		})
	}
}

// Writes returns every value successfully written under key, oldest first.
func (s *Store) Writes(key string) [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]byte, len(s.writes[key]))
	copy(out, s.writes[key])
	return out
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := storage.ValidateKey(key); err != nil {
		return nil, err
	}

	s.mu.Lock()
	gate := s.gate
	s.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrStorage, s.getErr)
	}
	v, ok := s.values[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set replaces the value stored under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := storage.ValidateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return fmt.Errorf("%w: %v", storage.ErrStorage, s.setErr)
	}
	v := make([]byte, len(value))
	copy(v, value)
	s.values[key] = v
	s.writes[key] = append(s.writes[key], v)
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
