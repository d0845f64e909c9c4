// Package moodstore owns the mood history of a session and mirrors it to a
// storage slot.
//
// The in-memory history is authoritative for the running process. Every
// append schedules a write of the full history; write failures are logged and
// otherwise ignored. Appends made while the initial Load is still reading are
// kept in memory, merged after the persisted records once Load settles, and
// only then written, so an early append can neither be lost nor clobber older
// persisted history.
package moodstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/chris-regnier/moodctl/internal/logging"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/sirupsen/logrus"
)

// StorageKey is the slot key holding the persisted history.
const StorageKey = "my-app-data"

// Store holds the mood history for one application session.
type Store struct {
	slot storage.Slot
	key  string
	now  func() time.Time
	log  *logrus.Entry
	w    *writer

	mu          sync.Mutex
	history     mood.History
	loaded      bool
	loadStarted bool
	closing     bool

	loadOnce sync.Once
	settled  chan struct{} // closed when the first Load finishes
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used to stamp records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for swallowed storage failures.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Store) { s.log = log }
}

// WithKey overrides the slot key.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// New creates a store backed by slot. The history is empty until Load runs.
// The caller keeps ownership of slot.
func New(slot storage.Slot, opts ...Option) *Store {
	s := &Store{
		slot:    slot,
		key:     StorageKey,
		now:     time.Now,
		history: mood.History{},
		settled: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logging.NewLogger("moodstore")
	}
	s.w = newWriter(slot, s.key, s.log)
	return s
}

// Load reads the persisted history and settles the store. It never fails:
// a missing, unreadable or corrupt blob counts as no history. Only the first
// call reads; later calls return the current history.
func (s *Store) Load(ctx context.Context) mood.History {
	s.markLoadStarted()
	s.loadOnce.Do(func() {
		defer close(s.settled)
		persisted := s.read(ctx)

		s.mu.Lock()
		early := s.history
		s.history = persisted.Concat(early)
		s.loaded = true
		if len(early) > 0 {
			s.log.WithField("records", len(early)).Debug("Merged records appended during load")
			s.persistLocked()
		}
		closing := s.closing
		s.mu.Unlock()

		// Close gave up waiting for this load; write the merge before the
		// writer stops.
		if closing {
			if err := s.w.close(context.Background()); err != nil {
				s.log.WithError(err).Warn("Failed to finish writes after close")
			}
		}
	})
	return s.History()
}

// LoadAsync runs Load on its own goroutine and delivers the result once.
func (s *Store) LoadAsync(ctx context.Context) <-chan mood.History {
	s.markLoadStarted()
	ch := make(chan mood.History, 1)
	go func() {
		ch <- s.Load(ctx)
		close(ch)
	}()
	return ch
}

func (s *Store) markLoadStarted() {
	s.mu.Lock()
	s.loadStarted = true
	s.mu.Unlock()
}

func (s *Store) read(ctx context.Context) mood.History {
	data, err := s.slot.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.log.Debug("No persisted mood history")
		} else {
			s.log.WithError(err).Warn("Failed to read mood history")
		}
		return mood.History{}
	}

	h, err := Decode(data)
	if err != nil {
		s.log.WithError(err).Warn("Ignoring corrupt mood history")
		return mood.History{}
	}
	return h
}

// Append records option at the current time and schedules a write of the
// full history. The returned record is already part of History.
func (s *Store) Append(option mood.Option) mood.Record {
	r := mood.NewRecord(option, s.now())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = s.history.Append(r)
	if s.loaded {
		s.persistLocked()
	}
	return r
}

// SelectMood is the mutation callback handed to presentation layers.
func (s *Store) SelectMood(option mood.Option) {
	s.Append(option)
}

func (s *Store) persistLocked() {
	data, err := Encode(s.history)
	if err != nil {
		s.log.WithError(err).Warn("Failed to encode mood history")
		return
	}
	s.w.schedule(data)
}

// History returns the current history. Callers must not modify it.
func (s *Store) History() mood.History {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history
}

// Loaded reports whether Load has settled.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Flush waits until every write scheduled so far has finished.
func (s *Store) Flush(ctx context.Context) error {
	return s.w.wait(ctx)
}

// Close finishes pending writes and stops the writer. A load still in
// flight is waited for, so records appended before it settled are written
// too. If ctx ends first, Close returns its error and the load writes the
// merged history itself when it settles. Appends after Close stay in memory
// only.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closing = true
	started := s.loadStarted
	s.mu.Unlock()

	if started {
		select {
		case <-s.settled:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return s.w.close(ctx)
}
