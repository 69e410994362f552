package config

import "errors"

// Validation errors returned by the config views when required configuration
// groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a remote address without a request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStateConfigs indicates missing client state file paths.
	ErrInvalidStateConfigs = errors.New("invalid state configuration")
	// ErrInvalidSyncConfigs indicates non-positive coordinator tunables.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidServerConfigs indicates invalid sync server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid snapshot database settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
