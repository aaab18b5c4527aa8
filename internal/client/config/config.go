package config

import "time"

// Config holds runtime settings for the Influe CLI.
//
// Image bounds and JPEG quality govern the client-side shrink pipeline;
// they are product defaults, not server requirements.
type Config struct {
	// ServerBaseURL is the portal backend, e.g. "http://127.0.0.1:5000".
	ServerBaseURL string

	// OnlineCheckInterval is how often the client probes server reachability.
	OnlineCheckInterval time.Duration

	// DatabasePath is the local SQLite file holding the persisted token.
	DatabasePath string

	MaxImageWidth  int
	MaxImageHeight int
	JPEGQuality    int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:5000"
	c.OnlineCheckInterval = 30 * time.Second
	c.DatabasePath = "influe.db"
	c.MaxImageWidth = 1280
	c.MaxImageHeight = 1280
	c.JPEGQuality = 70
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
