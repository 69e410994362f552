package config

import (
	"fmt"
	"time"
)

// ServerConfig is the top-level sync-server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// HTTPAddress is the listen address in host:port form.
	HTTPAddress string
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
	// DSN is the snapshot database connection string.
	DSN string
}

// GetServerConfig builds and validates a server-specific config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:     cfg.Server.HTTPAddress,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		DSN:             cfg.Storage.DB.DSN,
	}

	return serverCfg, serverCfg.validate()
}
