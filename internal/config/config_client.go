package config

import (
	"fmt"
	"time"
)

// ClientState contains local state file locations for the client.
type ClientState struct {
	// FilePath is the JSON file holding all local domain state.
	FilePath string
	// SessionPath is the JSON file recording the active actor selection.
	SessionPath string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the sync server endpoint. Empty means local-only mode.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// State contains local state file settings.
	State ClientState
	// Sync contains the coordinator tunables.
	Sync Sync
}

// RemoteSyncEnabled reports whether the coordinator should talk to a remote
// at all: sync must not be disabled and an endpoint must be configured.
func (cfg *ClientConfig) RemoteSyncEnabled() bool {
	return !cfg.Sync.Disabled && cfg.Adapter.HTTPAddress != ""
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		State: ClientState{
			FilePath:    cfg.Storage.State.FilePath,
			SessionPath: cfg.Storage.State.SessionPath,
		},
		Sync: cfg.Sync,
	}

	return clientCfg, clientCfg.validate()
}
