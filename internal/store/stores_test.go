package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthkeep/hearthkeep/internal/config"
	"github.com/hearthkeep/hearthkeep/internal/logger"
	"github.com/hearthkeep/hearthkeep/models"
)

func TestClientStores_PersistAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "local.json")
	cfg := config.ClientState{FilePath: path}

	stores, err := NewClientStores(cfg, logger.Nop())
	require.NoError(t, err)

	stores.Portfolios.Set([]models.Portfolio{{ID: "p1", Name: "Retirement", Currency: "EUR"}})
	stores.Tasks.Set("alice", []models.Task{{ID: "t1", Title: "water plants"}})
	stores.Expenses.Set([]models.Expense{{
		ID:          "e1",
		Description: "groceries",
		Amount:      models.MoneyFromFloat(42.50, "EUR"),
		PaidBy:      "alice",
	}})

	reloaded, err := NewClientStores(cfg, logger.Nop())
	require.NoError(t, err)

	require.Len(t, reloaded.Portfolios.Get(), 1)
	assert.Equal(t, "Retirement", reloaded.Portfolios.Get()[0].Name)
	require.Len(t, reloaded.Tasks.Get("alice"), 1)
	assert.Equal(t, "water plants", reloaded.Tasks.Get("alice")[0].Title)
	require.Len(t, reloaded.Expenses.Get(), 1)
	assert.True(t, models.MoneyFromFloat(42.50, "EUR").Equal(reloaded.Expenses.Get()[0].Amount))
}

func TestClientStores_InMemorySkipsDisk(t *testing.T) {
	stores, err := NewClientStores(config.ClientState{FilePath: InMemory}, logger.Nop())
	require.NoError(t, err)

	stores.SymbolTags.Set([]models.SymbolTag{{Symbol: "VWRL"}})
	assert.Len(t, stores.SymbolTags.Get(), 1)
}

func TestActorSession_PersistAndNotify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	session, err := NewActorSession(path)
	require.NoError(t, err)
	assert.Empty(t, session.ActiveActorID())

	var changes []string
	unsub := session.Subscribe(func(actorID string) { changes = append(changes, actorID) })
	defer unsub()

	require.NoError(t, session.SetActiveActor("alice"))
	require.NoError(t, session.SetActiveActor("alice")) // no-op, no double notify
	require.NoError(t, session.SetActiveActor(""))      // logout

	assert.Equal(t, []string{"alice", ""}, changes)

	require.NoError(t, session.SetActiveActor("bob"))

	restored, err := NewActorSession(path)
	require.NoError(t, err)
	assert.Equal(t, "bob", restored.ActiveActorID())
}
