package config

import "time"

// Config holds runtime settings for the attendance CLI.
//
// PublicPathMarkers is the deny-list for bearer-token attachment: any
// request whose path contains one of these segments goes out without an
// Authorization header. It is deliberately an explicit list, not a
// substring heuristic.
type Config struct {
	ServerBaseURL     string
	RequestTimeout    time.Duration
	DatabasePath      string
	PublicPathMarkers []string
	LogLevel          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "client.db"
	c.PublicPathMarkers = []string{"public"}
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
