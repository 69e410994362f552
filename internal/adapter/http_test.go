package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthkeep/hearthkeep/internal/config"
	"github.com/hearthkeep/hearthkeep/internal/logger"
	"github.com/hearthkeep/hearthkeep/models"
)

func newTestRemote(t *testing.T, handler http.Handler) (RemoteStore, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	remote, err := NewHTTPRemoteStore(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return remote, srv
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8080")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	got, err = normalizeBaseURL("https://sync.local/")
	require.NoError(t, err)
	assert.Equal(t, "https://sync.local", got)

	_, err = normalizeBaseURL("   ")
	require.Error(t, err)
}

func TestFetchAll_ReturnsSnapshot(t *testing.T) {
	snapshot := models.Snapshot{
		Domain:    models.DomainSymbolTags,
		Records:   json.RawMessage(`[{"symbol":"VWRL","tags":["etf"]}]`),
		UpdatedAt: time.Now().UTC(),
	}

	remote, _ := newTestRemote(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/domains/symbolTags", r.URL.Path)
		assert.Empty(t, r.URL.Query().Get("actor"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(snapshot)
	}))

	got, err := remote.FetchAll(context.Background(), models.DomainSymbolTags, "")
	require.NoError(t, err)
	assert.Equal(t, models.DomainSymbolTags, got.Domain)
	assert.JSONEq(t, string(snapshot.Records), string(got.Records))
}

func TestFetchAll_ActorScopedPassesActor(t *testing.T) {
	remote, _ := newTestRemote(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "alice", r.URL.Query().Get("actor"))
		_ = json.NewEncoder(w).Encode(models.Snapshot{Domain: models.DomainTasks, ActorID: "alice"})
	}))

	got, err := remote.FetchAll(context.Background(), models.DomainTasks, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.ActorID)
	// a snapshot with no records decodes to the canonical empty list
	assert.Equal(t, string(models.EmptyRecords), string(got.Records))
}

func TestFetchAll_NeverWrittenDomainIsEmptyNotError(t *testing.T) {
	remote, _ := newTestRemote(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no snapshot", http.StatusNotFound)
	}))

	got, err := remote.FetchAll(context.Background(), models.DomainPortfolios, "")
	require.NoError(t, err)
	assert.Equal(t, string(models.EmptyRecords), string(got.Records))
}

func TestFetchAll_ServerErrorMapped(t *testing.T) {
	remote, _ := newTestRemote(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := remote.FetchAll(context.Background(), models.DomainPortfolios, "")
	require.ErrorIs(t, err, ErrInternalServerError)
}

func TestUpsert_PutsSnapshot(t *testing.T) {
	var received models.Snapshot

	remote, _ := newTestRemote(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/domains/tasks", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))

	snapshot := models.Snapshot{
		Domain:    models.DomainTasks,
		ActorID:   "alice",
		Records:   json.RawMessage(`[{"id":"t1","title":"water plants","done":false}]`),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, remote.Upsert(context.Background(), snapshot))
	assert.Equal(t, "alice", received.ActorID)
}

func TestUpsert_BadRequestMapped(t *testing.T) {
	remote, _ := newTestRemote(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unknown domain", http.StatusBadRequest)
	}))

	err := remote.Upsert(context.Background(), models.Snapshot{Domain: "bogus"})
	require.ErrorIs(t, err, ErrBadRequest)
}

func TestPing(t *testing.T) {
	remote, _ := newTestRemote(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ping", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, remote.Ping(context.Background()))
}
