package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"storage": {
			"db": {"dsn": "file:snapshots.db"},
			"state": {"file": "/tmp/state.json", "session_file": "/tmp/session.json"}
		},
		"server": {"address": ":8080", "shutdown_timeout": "15s"},
		"adapter": {"http_address": "http://sync.local:8080", "request_timeout": "5s"},
		"sync": {
			"debounce_delay": "2s",
			"retry_attempts": 3,
			"retry_base_delay": "1s",
			"resume_min_interval": "5s",
			"stale_threshold": "30s"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "file:snapshots.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/state.json", cfg.Storage.State.FilePath)
	assert.Equal(t, "/tmp/session.json", cfg.Storage.State.SessionPath)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "http://sync.local:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Sync.DebounceDelay)
	assert.Equal(t, 3, cfg.Sync.RetryAttempts)
	assert.Equal(t, time.Second, cfg.Sync.RetryBaseDelay)
	assert.Equal(t, 5*time.Second, cfg.Sync.ResumeMinInterval)
	assert.Equal(t, 30*time.Second, cfg.Sync.StaleThreshold)
}

func TestParseJSON_DurationAsNanoseconds(t *testing.T) {
	path := writeTempJSON(t, `{"sync": {"debounce_delay": 2000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Sync.DebounceDelay)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSON(t, `{not json`)

	_, err := parseJSON(path)
	require.Error(t, err)
}
