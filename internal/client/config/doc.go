// Package config loads runtime configuration for the Influe CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the portal backend
//	-i int      online status check interval (seconds)
//	-d string   path to the local database file
//
// # JSON schema
//
// Intervals in the JSON file are given as whole seconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:5000",
//	  "online_check_interval_s": 30,
//	  "database_path": "influe.db",
//	  "max_image_width": 1280,
//	  "max_image_height": 1280,
//	  "jpeg_quality": 70
//	}
//
// Primary API
//
//   - type Config                     — holds server, storage and imaging settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
