// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured config itself carries no cross-field invariants; the binary
// specific views enforce their own requirements.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.State.FilePath == "" || cfg.State.SessionPath == "" {
		return ErrInvalidStateConfigs
	}

	// a configured remote implies a usable request timeout
	if cfg.Adapter.HTTPAddress != "" && cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.DebounceDelay <= 0 ||
		cfg.Sync.RetryAttempts <= 0 ||
		cfg.Sync.RetryBaseDelay <= 0 ||
		cfg.Sync.ResumeMinInterval <= 0 ||
		cfg.Sync.StaleThreshold <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
