package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/hearthkeep/hearthkeep/internal/logger"
	"github.com/hearthkeep/hearthkeep/models"
)

// snapshotRepository is the SQL-backed implementation of
// [SnapshotRepository]. It executes all snapshot operations against the
// "snapshots" table using the embedded [*DB] connection.
type snapshotRepository struct {
	*DB
	logger *logger.Logger
}

// NewSnapshotRepository constructs a [SnapshotRepository] backed by the
// provided database connection and logger.
//
// The logger parameter is stored for fallback logging; methods prefer the
// context-scoped logger obtained via [logger.FromContext].
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	return &snapshotRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *snapshotRepository) placeholder() sq.PlaceholderFormat {
	if r.dialect == "pgx" {
		return sq.Dollar
	}
	return sq.Question
}

// GetSnapshot retrieves the snapshot stored for the given domain and actor.
// Shared domains pass an empty actorID.
func (r *snapshotRepository) GetSnapshot(ctx context.Context, domain string, actorID string) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSnapshotQuery(r.placeholder(), domain, actorID)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.GetSnapshot").
			Str("domain", domain).
			Msg("failed to create query")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		snapshot models.Snapshot
		records  []byte
	)
	row := r.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(&snapshot.Domain, &snapshot.ActorID, &records, &snapshot.UpdatedAt)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.Snapshot{}, ErrSnapshotNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "snapshotRepository.GetSnapshot").
			Str("domain", domain).
			Str("actor_id", actorID).
			Msg("failed to scan snapshot row")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	snapshot.Records = records
	return snapshot, nil
}

// UpsertSnapshot stores the snapshot, replacing any previous one for the same
// (domain, actor) pair. Last write wins; the server keeps no history.
func (r *snapshotRepository) UpsertSnapshot(ctx context.Context, snapshot models.Snapshot) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSnapshotQuery(r.placeholder(), snapshot)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.UpsertSnapshot").
			Str("domain", snapshot.Domain).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, execErr := r.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "snapshotRepository.UpsertSnapshot").
			Str("domain", snapshot.Domain).
			Str("actor_id", snapshot.ActorID).
			Str("pg_code", postgresError(execErr)).
			Msg("failed to execute query for upserting snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Error().
			Str("func", "snapshotRepository.UpsertSnapshot").
			Str("domain", snapshot.Domain).
			Msg("provided snapshot was not saved")
		return ErrSnapshotNotSaved
	}

	return nil
}
