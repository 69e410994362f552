package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// ActorSession is the client's record of which household actor is currently
// active. The selection survives restarts via a small JSON file; credential
// mechanics live outside this application entirely.
type ActorSession struct {
	path     string
	inMemory bool

	mu      sync.RWMutex
	actorID string
	subs    map[int]func(actorID string)
	nextSub int
}

type persistedSession struct {
	ActorID string    `json:"actor_id"`
	At      time.Time `json:"at"`
}

// NewActorSession loads the session file (if any) and returns the session.
func NewActorSession(path string) (*ActorSession, error) {
	if path == "" {
		path = InMemory
	}

	s := &ActorSession{
		path:     path,
		inMemory: path == InMemory,
		subs:     make(map[int]func(string)),
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// ActiveActorID returns the active actor id, or "" when no actor is selected.
func (s *ActorSession) ActiveActorID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.actorID
}

// SetActiveActor records a new active actor and notifies subscribers.
// Setting "" is a logout; local per-actor state is retained elsewhere.
func (s *ActorSession) SetActiveActor(actorID string) error {
	s.mu.Lock()
	if s.actorID == actorID {
		s.mu.Unlock()
		return nil
	}
	s.actorID = actorID
	subs := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	if err := s.persist(); err != nil {
		return err
	}
	for _, fn := range subs {
		fn(actorID)
	}
	return nil
}

// Subscribe registers fn to run on every actor change, including logout.
// The returned function removes the subscription.
func (s *ActorSession) Subscribe(fn func(actorID string)) func() {
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

func (s *ActorSession) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read session file: %w", err)
	}

	var ps persistedSession
	if err = json.Unmarshal(data, &ps); err != nil {
		return fmt.Errorf("decode session file: %w", err)
	}

	s.actorID = ps.ActorID
	return nil
}

func (s *ActorSession) persist() error {
	if s.inMemory {
		return nil
	}

	s.mu.RLock()
	ps := persistedSession{ActorID: s.actorID, At: time.Now().UTC()}
	s.mu.RUnlock()

	payload, err := json.MarshalIndent(ps, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}
