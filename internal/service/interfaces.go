package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/hearthkeep/hearthkeep/models"
)

// SnapshotService validates and stores full domain snapshots. It is the only
// business layer the sync server has: snapshots are opaque record lists,
// last write wins, no merging happens on the server.
type SnapshotService interface {
	// GetSnapshot returns the stored snapshot for a domain. actorID must be
	// empty for shared domains and non-empty for actor-scoped domains.
	GetSnapshot(ctx context.Context, domain string, actorID string) (models.Snapshot, error)

	// UpsertSnapshot replaces the stored snapshot for the same (domain,
	// actor) pair.
	UpsertSnapshot(ctx context.Context, snapshot models.Snapshot) error
}
