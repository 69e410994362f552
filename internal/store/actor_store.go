package store

import "sync"

// ActorStore holds one domain's local state partitioned by actor id. Data for
// an actor is retained across logout so re-selecting the same actor without
// network access still shows last-known state.
type ActorStore[T any] struct {
	mu      sync.RWMutex
	values  map[string]T
	subs    map[int]func(actorID string, v T)
	nextSub int
	onWrite func()
}

// NewActorStore returns an empty actor-partitioned store.
func NewActorStore[T any]() *ActorStore[T] {
	return &ActorStore[T]{
		values: make(map[string]T),
		subs:   make(map[int]func(string, T)),
	}
}

// Get returns the value held for actorID; the zero value if none is held.
func (s *ActorStore[T]) Get(actorID string) T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[actorID]
}

// Set replaces actorID's value and notifies all subscribers.
func (s *ActorStore[T]) Set(actorID string, v T) {
	s.mu.Lock()
	s.values[actorID] = v
	subs := make([]func(string, T), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	onWrite := s.onWrite
	s.mu.Unlock()

	if onWrite != nil {
		onWrite()
	}
	for _, fn := range subs {
		fn(actorID, v)
	}
}

// Silent replaces actorID's value without notifying subscribers. Same
// contract as [Store.Silent].
func (s *ActorStore[T]) Silent(actorID string, v T) {
	s.mu.Lock()
	s.values[actorID] = v
	onWrite := s.onWrite
	s.mu.Unlock()

	if onWrite != nil {
		onWrite()
	}
}

// All returns a copy of the per-actor partition map, for persistence.
func (s *ActorStore[T]) All() map[string]T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]T, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Replace swaps in a full partition map, for load-from-disk.
func (s *ActorStore[T]) Replace(values map[string]T) {
	if values == nil {
		values = make(map[string]T)
	}
	s.mu.Lock()
	s.values = values
	s.mu.Unlock()
}

// Subscribe registers fn to run after every Set, with the actor the mutation
// belongs to. The returned function removes the subscription.
func (s *ActorStore[T]) Subscribe(fn func(actorID string, v T)) func() {
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

func (s *ActorStore[T]) setOnWrite(fn func()) {
	s.mu.Lock()
	s.onWrite = fn
	s.mu.Unlock()
}
