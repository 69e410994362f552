package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly types so
// durations can be written as "2s" in config files.
type StructuredJSONConfig struct {
	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		State struct {
			FilePath    string `json:"file"`
			SessionPath string `json:"session_file"`
		} `json:"state,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"address"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Sync struct {
		Disabled          bool     `json:"disabled"`
		DebounceDelay     Duration `json:"debounce_delay"`
		RetryAttempts     int      `json:"retry_attempts"`
		RetryBaseDelay    Duration `json:"retry_base_delay"`
		ResumeMinInterval Duration `json:"resume_min_interval"`
		StaleThreshold    Duration `json:"stale_threshold"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
			State: State{
				FilePath:    jsonCfg.Storage.State.FilePath,
				SessionPath: jsonCfg.Storage.State.SessionPath,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Sync: Sync{
			Disabled:          jsonCfg.Sync.Disabled,
			DebounceDelay:     time.Duration(jsonCfg.Sync.DebounceDelay),
			RetryAttempts:     jsonCfg.Sync.RetryAttempts,
			RetryBaseDelay:    time.Duration(jsonCfg.Sync.RetryBaseDelay),
			ResumeMinInterval: time.Duration(jsonCfg.Sync.ResumeMinInterval),
			StaleThreshold:    time.Duration(jsonCfg.Sync.StaleThreshold),
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from either a number of
// nanoseconds or a duration string like "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}
