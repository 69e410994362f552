package repository

//go:generate mockgen -source=interfaces.go -destination=../mock/repository_mock.go -package=mock

import (
	"context"

	"github.com/hearthkeep/hearthkeep/models"
)

// SnapshotRepository persists one full record snapshot per (domain, actor)
// pair. Upserts replace the whole snapshot; there is no per-record access.
type SnapshotRepository interface {
	// GetSnapshot returns the stored snapshot for the given domain and actor.
	// Returns ErrSnapshotNotFound when none has been written yet.
	GetSnapshot(ctx context.Context, domain string, actorID string) (models.Snapshot, error)

	// UpsertSnapshot stores the snapshot, replacing any previous one for the
	// same (domain, actor) pair.
	UpsertSnapshot(ctx context.Context, snapshot models.Snapshot) error
}
