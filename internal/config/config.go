// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for hearthkeep.
// It aggregates all sub-configurations and is populated by merging values from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults (in that priority order — earlier sources win for
// non-zero fields).
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds persistence settings for both binaries: the sync
	// server's snapshot database and the client's local state files.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network settings for the snapshot sync server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's outbound transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the coordinator tunables (debounce window, retry budget,
	// resume thresholds).
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups persistence settings.
type Storage struct {
	// DB holds the sync server's snapshot database settings.
	DB DB `envPrefix:"DB_"`

	// State holds the client's local state file settings.
	State State `envPrefix:"STATE_"`
}

// DB holds relational database connection settings for the sync server.
type DB struct {
	// DSN selects and configures the driver: "postgres://..." uses pgx,
	// anything else is treated as a sqlite file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// State holds the client's on-disk state locations.
type State struct {
	// FilePath is the JSON file holding all local domain state.
	// ":memory:" keeps state in-process only.
	// Env: STORAGE_STATE_FILE
	FilePath string `env:"FILE"`

	// SessionPath is the JSON file recording the active actor selection.
	// Env: STORAGE_STATE_SESSION_FILE
	SessionPath string `env:"SESSION_FILE"`
}

// Server holds network settings for the snapshot sync server.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds the client's outbound transport settings.
type Adapter struct {
	// HTTPAddress is the sync server endpoint. Empty means no remote is
	// configured and the client runs local-only.
	// Env: ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// RequestTimeout is the per-request timeout for outbound calls.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds the coordinator tunables.
type Sync struct {
	// Disabled fully bypasses remote synchronization even when an adapter
	// address is configured.
	// Env: SYNC_DISABLED
	Disabled bool `env:"DISABLED"`

	// DebounceDelay is the trailing-edge coalescing window for local
	// mutations before a push.
	// Env: SYNC_DEBOUNCE_DELAY
	DebounceDelay time.Duration `env:"DEBOUNCE_DELAY"`

	// RetryAttempts is the bounded retry budget for each remote call.
	// Env: SYNC_RETRY_ATTEMPTS
	RetryAttempts int `env:"RETRY_ATTEMPTS"`

	// RetryBaseDelay is the first backoff delay; attempt k waits 2^k times
	// this value.
	// Env: SYNC_RETRY_BASE_DELAY
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`

	// ResumeMinInterval rate-limits resume-triggered refreshes.
	// Env: SYNC_RESUME_MIN_INTERVAL
	ResumeMinInterval time.Duration `env:"RESUME_MIN_INTERVAL"`

	// StaleThreshold is the background duration after which the next resume
	// forces a refresh regardless of the rate limit.
	// Env: SYNC_STALE_THRESHOLD
	StaleThreshold time.Duration `env:"STALE_THRESHOLD"`
}

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
		Sync: Sync{
			DebounceDelay:     2 * time.Second,
			RetryAttempts:     3,
			RetryBaseDelay:    time.Second,
			ResumeMinInterval: 5 * time.Second,
			StaleThreshold:    30 * time.Second,
		},
		Storage: Storage{
			State: State{
				FilePath:    "hearthkeep-state.json",
				SessionPath: "hearthkeep-session.json",
			},
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in priority order (earlier wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
