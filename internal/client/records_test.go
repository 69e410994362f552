package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthkeep/hearthkeep/internal/config"
	"github.com/hearthkeep/hearthkeep/internal/logger"
	"github.com/hearthkeep/hearthkeep/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	log := logger.Nop()
	stores, err := store.NewClientStores(config.ClientState{FilePath: store.InMemory}, log)
	require.NoError(t, err)

	return &App{logger: log, stores: stores}
}

func TestAddTask(t *testing.T) {
	app := newTestApp(t)

	task := app.AddTask("alice", "water the plants")

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "water the plants", task.Title)

	stored := app.Stores().Tasks.Get("alice")
	require.Len(t, stored, 1)
	assert.Equal(t, task, stored[0])
	assert.Empty(t, app.Stores().Tasks.Get("bob"))
}

func TestAddExpense(t *testing.T) {
	app := newTestApp(t)

	expense := app.AddExpense("groceries", money(42), "alice", "bob")

	assert.NotEmpty(t, expense.ID)
	assert.Equal(t, "alice", expense.PaidBy)
	assert.Equal(t, []string{"bob"}, expense.SplitWith)
	assert.False(t, expense.At.IsZero())

	stored := app.Stores().Expenses.Get()
	require.Len(t, stored, 1)
	assert.Equal(t, expense.ID, stored[0].ID)
}

func TestAddEvent(t *testing.T) {
	app := newTestApp(t)

	starts := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	event := app.AddEvent("bob", "dentist", starts, starts.Add(time.Hour))

	assert.NotEmpty(t, event.ID)

	stored := app.Stores().Events.Get("bob")
	require.Len(t, stored, 1)
	assert.Equal(t, event, stored[0])
}

func TestAddTask_DistinctIDs(t *testing.T) {
	app := newTestApp(t)

	first := app.AddTask("alice", "one")
	second := app.AddTask("alice", "two")

	assert.NotEqual(t, first.ID, second.ID)
}
