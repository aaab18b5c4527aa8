package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/influeapp/influe-cli/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals are
// given in whole seconds. Zero-valued fields are treated as "not set" and
// leave the existing Config value alone.
type JsonConfig struct {
	ServerBaseURL        string `json:"server_base_url"`
	OnlineCheckIntervalS int    `json:"online_check_interval_s"`
	DatabasePath         string `json:"database_path"`
	MaxImageWidth        int    `json:"max_image_width"`
	MaxImageHeight       int    `json:"max_image_height"`
	JPEGQuality          int    `json:"jpeg_quality"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, nothing is loaded.
// Read or unmarshal errors panic (the config stage has no useful recovery).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
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
	if jc.OnlineCheckIntervalS > 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckIntervalS) * time.Second
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.MaxImageWidth > 0 {
		cfg.MaxImageWidth = jc.MaxImageWidth
	}
	if jc.MaxImageHeight > 0 {
		cfg.MaxImageHeight = jc.MaxImageHeight
	}
	if jc.JPEGQuality > 0 {
		cfg.JPEGQuality = jc.JPEGQuality
	}
}
