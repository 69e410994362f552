package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hearthkeep/hearthkeep/internal/config"
	"github.com/hearthkeep/hearthkeep/internal/logger"
	"github.com/hearthkeep/hearthkeep/internal/mock"
	"github.com/hearthkeep/hearthkeep/internal/store"
	"github.com/hearthkeep/hearthkeep/internal/syncer"
	"github.com/hearthkeep/hearthkeep/models"
)

func newTestStores(t *testing.T) *store.ClientStores {
	t.Helper()
	stores, err := store.NewClientStores(config.ClientState{FilePath: store.InMemory}, logger.Nop())
	require.NoError(t, err)
	return stores
}

func TestEncodeRecords(t *testing.T) {
	records, err := encodeRecords[models.Task](nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(records))

	records, err = encodeRecords([]models.Task{{ID: "t1", Title: "water plants"}})
	require.NoError(t, err)
	assert.Contains(t, string(records), `"id":"t1"`)
}

func TestBuildRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)

	registry, err := BuildRegistry(newTestStores(t), remote)
	require.NoError(t, err)

	require.Len(t, registry.All(), 6)
	assert.Len(t, registry.Shared(), 4)
	assert.Len(t, registry.ActorScoped(), 2)

	transactions, ok := registry.Get(models.DomainTransactions)
	require.True(t, ok)
	assert.True(t, transactions.Guarded)

	portfolios, ok := registry.Get(models.DomainPortfolios)
	require.True(t, ok)
	assert.False(t, portfolios.Guarded)
}

func TestSharedDomainAccessors(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	stores := newTestStores(t)

	d := sharedDomain(models.DomainExpenses, false, stores.Expenses, remote)

	t.Run("load reflects the store", func(t *testing.T) {
		stores.Expenses.Silent([]models.Expense{{ID: "e1", Description: "groceries"}})

		records, err := d.Load("")
		require.NoError(t, err)
		assert.Contains(t, string(records), `"id":"e1"`)
	})

	t.Run("adopt replaces the store without waking watchers", func(t *testing.T) {
		fired := 0
		unsub := d.Watch(func(string) { fired++ })
		defer unsub()

		err := d.Adopt("", []byte(`[{"id":"e2","description":"utilities"}]`))
		require.NoError(t, err)

		got := stores.Expenses.Get()
		require.Len(t, got, 1)
		assert.Equal(t, "e2", got[0].ID)
		assert.Zero(t, fired)
	})

	t.Run("watch fires on a store mutation", func(t *testing.T) {
		var gotActor string
		fired := 0
		unsub := d.Watch(func(actorID string) {
			gotActor = actorID
			fired++
		})
		defer unsub()

		stores.Expenses.Set([]models.Expense{{ID: "e3"}})
		assert.Equal(t, 1, fired)
		assert.Empty(t, gotActor)
	})

	t.Run("upsert addresses the domain on the wire", func(t *testing.T) {
		remote.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, snapshot models.Snapshot) error {
				assert.Equal(t, models.DomainExpenses, snapshot.Domain)
				assert.Empty(t, snapshot.ActorID)
				return nil
			})

		err := d.Upsert(context.Background(), "", []byte(`[{"id":"e3"}]`))
		require.NoError(t, err)
	})

	t.Run("fetch unwraps the snapshot records", func(t *testing.T) {
		remote.EXPECT().FetchAll(gomock.Any(), models.DomainExpenses, "").
			Return(models.Snapshot{Domain: models.DomainExpenses, Records: []byte(`[{"id":"e9"}]`)}, nil)

		records, err := d.FetchAll(context.Background(), "")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"e9"}]`, string(records))
	})
}

func TestActorDomainAccessors(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	stores := newTestStores(t)

	d := actorDomain(models.DomainTasks, stores.Tasks, remote)
	require.Equal(t, syncer.ScopeActorScoped, d.Scope)

	t.Run("accessors address one actor partition", func(t *testing.T) {
		stores.Tasks.Silent("alice", []models.Task{{ID: "t1"}})
		stores.Tasks.Silent("bob", []models.Task{{ID: "t2"}})

		records, err := d.Load("alice")
		require.NoError(t, err)
		assert.Contains(t, string(records), `"id":"t1"`)
		assert.NotContains(t, string(records), `"id":"t2"`)
	})

	t.Run("watch reports the mutated actor", func(t *testing.T) {
		var gotActor string
		unsub := d.Watch(func(actorID string) { gotActor = actorID })
		defer unsub()

		stores.Tasks.Set("bob", []models.Task{{ID: "t3"}})
		assert.Equal(t, "bob", gotActor)
	})

	t.Run("upsert carries the actor id", func(t *testing.T) {
		remote.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, snapshot models.Snapshot) error {
				assert.Equal(t, models.DomainTasks, snapshot.Domain)
				assert.Equal(t, "alice", snapshot.ActorID)
				return nil
			})

		err := d.Upsert(context.Background(), "alice", []byte(`[{"id":"t1"}]`))
		require.NoError(t, err)
	})
}
