package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hearthkeep/hearthkeep/internal/adapter"
	"github.com/hearthkeep/hearthkeep/internal/store"
	"github.com/hearthkeep/hearthkeep/internal/syncer"
	"github.com/hearthkeep/hearthkeep/models"
)

// encodeRecords marshals a record slice, normalizing a nil slice to "[]" so
// emptiness checks agree on both sides of the wire.
func encodeRecords[T any](items []T) (json.RawMessage, error) {
	if len(items) == 0 {
		return models.EmptyRecords, nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	return data, nil
}

// sharedDomain binds a household-wide store to the sync coordinator. The
// actor id is ignored on every accessor.
func sharedDomain[T any](name string, guarded bool, st *store.Store[[]T], remote adapter.RemoteStore) syncer.Domain {
	return syncer.Domain{
		Name:    name,
		Scope:   syncer.ScopeShared,
		Guarded: guarded,
		FetchAll: func(ctx context.Context, _ string) (json.RawMessage, error) {
			snapshot, err := remote.FetchAll(ctx, name, "")
			if err != nil {
				return nil, err
			}
			return snapshot.Records, nil
		},
		Upsert: func(ctx context.Context, _ string, records json.RawMessage) error {
			return remote.Upsert(ctx, models.Snapshot{Domain: name, Records: records})
		},
		Load: func(_ string) (json.RawMessage, error) {
			return encodeRecords(st.Get())
		},
		Adopt: func(_ string, records json.RawMessage) error {
			var items []T
			if err := json.Unmarshal(records, &items); err != nil {
				return fmt.Errorf("decode %s records: %w", name, err)
			}
			st.Silent(items)
			return nil
		},
		IsEmpty: syncer.RecordsEmpty,
		Watch: func(fn func(string)) func() {
			return st.Subscribe(func([]T) { fn("") })
		},
	}
}

// actorDomain binds a per-actor store to the sync coordinator. Every accessor
// addresses exactly one actor's partition.
func actorDomain[T any](name string, st *store.ActorStore[[]T], remote adapter.RemoteStore) syncer.Domain {
	return syncer.Domain{
		Name:  name,
		Scope: syncer.ScopeActorScoped,
		FetchAll: func(ctx context.Context, actorID string) (json.RawMessage, error) {
			snapshot, err := remote.FetchAll(ctx, name, actorID)
			if err != nil {
				return nil, err
			}
			return snapshot.Records, nil
		},
		Upsert: func(ctx context.Context, actorID string, records json.RawMessage) error {
			return remote.Upsert(ctx, models.Snapshot{Domain: name, ActorID: actorID, Records: records})
		},
		Load: func(actorID string) (json.RawMessage, error) {
			return encodeRecords(st.Get(actorID))
		},
		Adopt: func(actorID string, records json.RawMessage) error {
			var items []T
			if err := json.Unmarshal(records, &items); err != nil {
				return fmt.Errorf("decode %s records: %w", name, err)
			}
			st.Silent(actorID, items)
			return nil
		},
		IsEmpty: syncer.RecordsEmpty,
		Watch: func(fn func(string)) func() {
			return st.Subscribe(func(actorID string, _ []T) { fn(actorID) })
		},
	}
}

// BuildRegistry wires all six hearthkeep domains. Transaction history is
// guarded: an empty local list must never overwrite remote history.
func BuildRegistry(stores *store.ClientStores, remote adapter.RemoteStore) (*syncer.Registry, error) {
	return syncer.NewRegistry(
		sharedDomain(models.DomainPortfolios, false, stores.Portfolios, remote),
		sharedDomain(models.DomainTransactions, true, stores.Transactions, remote),
		sharedDomain(models.DomainSymbolTags, false, stores.SymbolTags, remote),
		sharedDomain(models.DomainExpenses, false, stores.Expenses, remote),
		actorDomain(models.DomainTasks, stores.Tasks, remote),
		actorDomain(models.DomainEvents, stores.Events, remote),
	)
}
