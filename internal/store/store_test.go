package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthkeep/hearthkeep/models"
)

func TestStore_SetNotifiesSubscribers(t *testing.T) {
	s := NewStore[[]models.SymbolTag](nil)

	var got [][]models.SymbolTag
	unsub := s.Subscribe(func(v []models.SymbolTag) {
		got = append(got, v)
	})
	defer unsub()

	tags := []models.SymbolTag{{Symbol: "VWRL", Tags: []string{"etf"}}}
	s.Set(tags)

	require.Len(t, got, 1)
	assert.Equal(t, tags, got[0])
	assert.Equal(t, tags, s.Get())
}

func TestStore_SilentDoesNotNotify(t *testing.T) {
	s := NewStore[[]models.SymbolTag](nil)

	notified := 0
	unsub := s.Subscribe(func([]models.SymbolTag) { notified++ })
	defer unsub()

	s.Silent([]models.SymbolTag{{Symbol: "VWRL"}})

	assert.Zero(t, notified)
	assert.Len(t, s.Get(), 1)
}

func TestStore_Unsubscribe(t *testing.T) {
	s := NewStore[int](0)

	notified := 0
	unsub := s.Subscribe(func(int) { notified++ })

	s.Set(1)
	unsub()
	s.Set(2)

	assert.Equal(t, 1, notified)
}

func TestActorStore_PartitionsByActor(t *testing.T) {
	s := NewActorStore[[]models.Task]()

	s.Set("alice", []models.Task{{ID: "t1", Title: "water plants"}})
	s.Set("bob", []models.Task{{ID: "t2", Title: "fix bike"}})

	assert.Len(t, s.Get("alice"), 1)
	assert.Len(t, s.Get("bob"), 1)
	assert.Equal(t, "water plants", s.Get("alice")[0].Title)
	assert.Empty(t, s.Get("carol"))
}

func TestActorStore_SubscribeReportsActor(t *testing.T) {
	s := NewActorStore[[]models.Task]()

	var actors []string
	unsub := s.Subscribe(func(actorID string, _ []models.Task) {
		actors = append(actors, actorID)
	})
	defer unsub()

	s.Set("alice", nil)
	s.Silent("bob", nil)

	assert.Equal(t, []string{"alice"}, actors)
}

func TestQueryCache_Invalidate(t *testing.T) {
	c := NewQueryCache()
	c.Put("balances", 42)

	v, ok := c.Get("balances")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	c.Invalidate()
	_, ok = c.Get("balances")
	assert.False(t, ok)
}
