package repository

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/hearthkeep/hearthkeep/models"
)

func Test_buildGetSnapshotQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildGetSnapshotQuery(sq.Dollar, models.DomainPortfolios, "")
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 2)
	require.Contains(t, args, models.DomainPortfolios)

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from snapshots")
	require.Contains(t, q, "where")
	require.Contains(t, q, "domain")
	require.Contains(t, q, "actor_id")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	// columns presence
	require.Contains(t, q, "records")
	require.Contains(t, q, "updated_at")
}

func Test_buildGetSnapshotQuery_SQLitePlaceholders(t *testing.T) {
	query, _, err := buildGetSnapshotQuery(sq.Question, models.DomainTasks, "actor-1")
	require.NoError(t, err)

	require.Contains(t, query, "?")
	require.NotContains(t, query, "$1")
}

func Test_buildUpsertSnapshotQuery_SQLContainsParts(t *testing.T) {
	now := time.Now()
	snapshot := models.Snapshot{
		Domain:    models.DomainExpenses,
		ActorID:   "",
		Records:   []byte(`[{"id":"e1"}]`),
		UpdatedAt: now,
	}

	query, args, err := buildUpsertSnapshotQuery(sq.Dollar, snapshot)
	require.NoError(t, err)

	require.Len(t, args, 4)
	require.Equal(t, models.DomainExpenses, args[0])
	require.Equal(t, "", args[1])
	require.Equal(t, []byte(`[{"id":"e1"}]`), args[2])
	require.Equal(t, now, args[3])

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into snapshots")
	require.Contains(t, q, "on conflict (domain, actor_id)")
	require.Contains(t, q, "do update set")
	require.Contains(t, q, "excluded.records")
	require.Contains(t, q, "excluded.updated_at")
}
