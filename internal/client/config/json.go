package config

import (
	"encoding/json"
	"os"

	"github.com/attendmark/attendmark/internal/flagx"
	"github.com/attendmark/attendmark/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can specify the timeout either as a string
// like "15s" or as integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL     string         `json:"server_base_url"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	DatabasePath      string         `json:"database_path"`
	PublicPathMarkers []string       `json:"public_path_markers"`
	LogLevel          string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; if absent, nothing is loaded.
// Fields missing from the JSON keep their current values. Read or
// unmarshal errors panic (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if len(jc.PublicPathMarkers) > 0 {
		cfg.PublicPathMarkers = jc.PublicPathMarkers
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
