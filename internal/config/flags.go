package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server listen address in [host]:[port] form
//	-d snapshot database DSN
//	-f local state file path
//	-session-file actor session file path
//	-remote sync server endpoint for the client
//	-request-timeout outbound request timeout (e.g. "10s")
//	-no-sync disable remote synchronization
//	-debounce-delay local-mutation coalescing window
//	-c/-config json config file path
func ParseFlags() *StructuredConfig {
	var (
		serverAddress  string
		databaseDSN    string
		stateFilePath  string
		sessionPath    string
		remoteAddress  string
		requestTimeout time.Duration
		noSync         bool
		debounceDelay  time.Duration
		jsonConfigPath string
	)

	flag.StringVar(&serverAddress, "a", "", "Server listen address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Snapshot database DSN")
	flag.StringVar(&stateFilePath, "f", "", "Local state file path")
	flag.StringVar(&sessionPath, "session-file", "", "Actor session file path")
	flag.StringVar(&remoteAddress, "remote", "", "Sync server endpoint")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g. 10s)")
	flag.BoolVar(&noSync, "no-sync", false, "Disable remote synchronization")
	flag.DurationVar(&debounceDelay, "debounce-delay", 0, "Push coalescing window (e.g. 2s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
			State: State{
				FilePath:    stateFilePath,
				SessionPath: sessionPath,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			Disabled:      noSync,
			DebounceDelay: debounceDelay,
		},
		JSONFilePath: jsonConfigPath,
	}
}
