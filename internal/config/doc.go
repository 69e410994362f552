// SPDX-License-Identifier: Apache-2.0

// Package config loads and merges hearthkeep configuration from environment
// variables, command-line flags, an optional JSON file, and built-in defaults.
//
// The merged [StructuredConfig] is projected into binary-specific views:
// [ClientConfig] for the local-first client and [ServerConfig] for the
// snapshot sync server. Each view validates only the settings it actually
// uses, so the client does not require a database DSN and the server does not
// require state file paths.
package config
