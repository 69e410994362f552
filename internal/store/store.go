// SPDX-License-Identifier: Apache-2.0

// Package store holds the client's local application state: one in-process
// store per sync domain, a file-backed actor session, and a small cache for
// derived query results.
//
// Stores are the only owners of domain data. The sync coordinator never keeps
// domain values itself — it is handed read/write accessors and a change
// subscription per domain.
package store

import "sync"

// Store is an in-process holder for one domain's local state. Reads and
// writes are synchronous; subscribers are notified synchronously after a Set.
// Values are treated as immutable snapshots by convention: callers replace
// the whole value instead of mutating it in place.
type Store[T any] struct {
	mu      sync.RWMutex
	value   T
	subs    map[int]func(T)
	nextSub int

	// onWrite, when set, runs after every Set or Silent while no
	// subscriber callback is active. Used by the stores bundle to persist.
	onWrite func()
}

// NewStore returns a store seeded with the given value.
func NewStore[T any](initial T) *Store[T] {
	return &Store[T]{
		value: initial,
		subs:  make(map[int]func(T)),
	}
}

// Get returns the current value.
func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the value and notifies all subscribers with the new value.
func (s *Store[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	subs := make([]func(T), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	onWrite := s.onWrite
	s.mu.Unlock()

	if onWrite != nil {
		onWrite()
	}
	for _, fn := range subs {
		fn(v)
	}
}

// Silent replaces the value without notifying subscribers. It exists for the
// coordinator's remote-adoption step: applying remote data must not be
// observable as a local mutation, or adoption would immediately push the
// snapshot straight back.
func (s *Store[T]) Silent(v T) {
	s.mu.Lock()
	s.value = v
	onWrite := s.onWrite
	s.mu.Unlock()

	if onWrite != nil {
		onWrite()
	}
}

// Subscribe registers fn to run after every Set. The returned function
// removes the subscription.
func (s *Store[T]) Subscribe(fn func(T)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store[T]) setOnWrite(fn func()) {
	s.mu.Lock()
	s.onWrite = fn
	s.mu.Unlock()
}
