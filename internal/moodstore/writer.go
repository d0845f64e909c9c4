package moodstore

import (
	"context"
	"sync"

	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/sirupsen/logrus"
)

// writer persists snapshots to one slot key from a single goroutine. It holds
// at most one pending snapshot: scheduling replaces a snapshot that has not
// started writing yet, so writes never overlap and never go backwards.
type writer struct {
	slot storage.Slot
	key  string
	log  *logrus.Entry

	mu         sync.Mutex
	pending    []byte
	hasPending bool
	queued     uint64        // version of the newest scheduled snapshot
	done       uint64        // version of the newest finished write
	changed    chan struct{} // closed and replaced whenever done advances
	closed     bool

	kick   chan struct{}
	stop   chan struct{}
	exited chan struct{}
}

func newWriter(slot storage.Slot, key string, log *logrus.Entry) *writer {
	w := &writer{
		slot:    slot,
		key:     key,
		log:     log,
		changed: make(chan struct{}),
		kick:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
		exited:  make(chan struct{}),
	}
	go w.run()
	return w
}

// schedule queues data for writing and returns its version.
func (w *writer) schedule(data []byte) uint64 {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.log.Debug("Writer closed, snapshot not persisted")
		return 0
	}
	if w.hasPending {
		w.log.WithField("version", w.queued).Debug("Superseding pending snapshot")
	}
	w.queued++
	v := w.queued
	w.pending = data
	w.hasPending = true
	w.mu.Unlock()

	select {
	case w.kick <- struct{}{}:
	default:
	}
	return v
}

func (w *writer) run() {
	defer close(w.exited)
	for {
		select {
		case <-w.kick:
			w.drain()
		case <-w.stop:
			w.drain()
			return
		}
	}
}

func (w *writer) drain() {
	for {
		w.mu.Lock()
		if !w.hasPending {
			w.mu.Unlock()
			return
		}
		data, v := w.pending, w.queued
		w.pending, w.hasPending = nil, false
		w.mu.Unlock()

		if err := w.slot.Set(context.Background(), w.key, data); err != nil {
			w.log.WithError(err).WithField("version", v).Warn("Failed to persist mood history")
		} else {
			w.log.WithFields(logrus.Fields{"version": v, "bytes": len(data)}).Debug("Persisted mood history")
		}

		w.mu.Lock()
		w.done = v
		close(w.changed)
		w.changed = make(chan struct{})
		w.mu.Unlock()
	}
}

// wait blocks until every snapshot scheduled before the call has been written
// or has failed.
func (w *writer) wait(ctx context.Context) error {
	w.mu.Lock()
	target := w.queued
	w.mu.Unlock()

	for {
		w.mu.Lock()
		if w.done >= target {
			w.mu.Unlock()
			return nil
		}
		ch := w.changed
		w.mu.Unlock()

		select {
		case <-ch:
		case <-w.exited:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// close writes any pending snapshot and stops the goroutine.
func (w *writer) close(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.stop)
	}
	w.mu.Unlock()

	select {
	case <-w.exited:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
