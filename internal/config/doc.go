// Package config loads the dashboard's TOML configuration.
//
// # Discovery
//
// Load reads the file at the given path, or ~/.config/vantage/config.toml
// when the path is empty. A missing file is not an error; Default values are
// used instead. Present but empty keys also keep their defaults.
//
// # Keys
//
//	stream_interval  = "4s"     # cadence of the simulated feed
//	stream_enabled   = true
//	max_alerts       = 5000     # capacity of the in-memory collection
//	search_debounce  = "300ms"
//	row_height       = 1        # terminal lines per row
//	overscan         = 5
//	anchor_threshold = 0        # distance from the top still treated as "at top"
//	seed_path        = ""       # optional .json, .yaml or .jsonl file
//	log_path         = "~/.local/state/vantage/vantage.log"
//	log_level        = "info"
//	metrics_addr     = ""       # e.g. "127.0.0.1:9090"; empty disables
//
// Paths support tilde expansion. Durations use time.ParseDuration syntax.
//
// # Errors
//
// Load fails on unreadable files, malformed TOML and values that do not pass
// Validate. Callers that override fields after loading (command-line flags)
// should call Validate again.
package config
