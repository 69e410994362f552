package repository

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/hearthkeep/hearthkeep/models"
)

const snapshotsTable = "snapshots"

var snapshotColumns = []string{"domain", "actor_id", "records", "updated_at"}

// buildGetSnapshotQuery selects the single snapshot row for a (domain, actor)
// pair. actorID is the empty string for shared domains.
func buildGetSnapshotQuery(pf sq.PlaceholderFormat, domain, actorID string) (string, []any, error) {
	return sq.Select(snapshotColumns...).
		From(snapshotsTable).
		Where(sq.Eq{"domain": domain, "actor_id": actorID}).
		PlaceholderFormat(pf).
		ToSql()
}

// buildUpsertSnapshotQuery replaces the full snapshot for a (domain, actor)
// pair. Both Postgres and SQLite understand this ON CONFLICT form.
func buildUpsertSnapshotQuery(pf sq.PlaceholderFormat, snapshot models.Snapshot) (string, []any, error) {
	return sq.Insert(snapshotsTable).
		Columns(snapshotColumns...).
		Values(snapshot.Domain, snapshot.ActorID, []byte(snapshot.Records), snapshot.UpdatedAt).
		Suffix(`ON CONFLICT (domain, actor_id) DO UPDATE SET records = excluded.records, updated_at = excluded.updated_at`).
		PlaceholderFormat(pf).
		ToSql()
}
