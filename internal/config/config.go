package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the runtime settings of the dashboard.
type Config struct {
	StreamInterval  time.Duration
	StreamEnabled   bool
	MaxAlerts       int
	SearchDebounce  time.Duration
	RowHeight       int
	Overscan        int
	AnchorThreshold int
	SeedPath        string
	LogPath         string
	LogLevel        string
	MetricsAddr     string
}

const (
	DefaultPath = "~/.config/vantage/config.toml"

	defaultLogPath        = "~/.local/state/vantage/vantage.log"
	defaultStreamInterval = 4 * time.Second
	defaultSearchDebounce = 300 * time.Millisecond
	defaultMaxAlerts      = 5000
	defaultOverscan       = 5
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		StreamInterval: defaultStreamInterval,
		StreamEnabled:  true,
		MaxAlerts:      defaultMaxAlerts,
		SearchDebounce: defaultSearchDebounce,
		RowHeight:      1,
		Overscan:       defaultOverscan,
		LogPath:        mustExpand(defaultLogPath),
		LogLevel:       "info",
	}
}

type rawConfig struct {
	StreamInterval  string  `toml:"stream_interval"`
	StreamEnabled   *bool   `toml:"stream_enabled"`
	MaxAlerts       *int    `toml:"max_alerts"`
	SearchDebounce  string  `toml:"search_debounce"`
	RowHeight       *int    `toml:"row_height"`
	Overscan        *int    `toml:"overscan"`
	AnchorThreshold *int    `toml:"anchor_threshold"`
	SeedPath        string  `toml:"seed_path"`
	LogPath         *string `toml:"log_path"`
	LogLevel        string  `toml:"log_level"`
	MetricsAddr     string  `toml:"metrics_addr"`
}

// Load parses the config at path, falling back to defaults when the file is
// missing. An empty path selects DefaultPath.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := raw.apply(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (raw rawConfig) apply(cfg *Config) error {
	if v := strings.TrimSpace(raw.StreamInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid stream_interval: %w", err)
		}
		cfg.StreamInterval = d
	}
	if v := strings.TrimSpace(raw.SearchDebounce); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid search_debounce: %w", err)
		}
		cfg.SearchDebounce = d
	}
	if raw.StreamEnabled != nil {
		cfg.StreamEnabled = *raw.StreamEnabled
	}
	if raw.MaxAlerts != nil {
		cfg.MaxAlerts = *raw.MaxAlerts
	}
	if raw.RowHeight != nil {
		cfg.RowHeight = *raw.RowHeight
	}
	if raw.Overscan != nil {
		cfg.Overscan = *raw.Overscan
	}
	if raw.AnchorThreshold != nil {
		cfg.AnchorThreshold = *raw.AnchorThreshold
	}
	if v := strings.TrimSpace(raw.SeedPath); v != "" {
		cfg.SeedPath = mustExpand(v)
	}
	if raw.LogPath != nil {
		// An explicit empty log_path disables file logging.
		cfg.LogPath = ""
		if v := strings.TrimSpace(*raw.LogPath); v != "" {
			cfg.LogPath = mustExpand(v)
		}
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)
	return nil
}

// Validate reports the first setting that is out of range.
func (c Config) Validate() error {
	switch {
	case c.StreamInterval <= 0:
		return fmt.Errorf("invalid stream_interval %s: must be positive", c.StreamInterval)
	case c.SearchDebounce < 0:
		return fmt.Errorf("invalid search_debounce %s: must not be negative", c.SearchDebounce)
	case c.MaxAlerts <= 0:
		return fmt.Errorf("invalid max_alerts %d: must be positive", c.MaxAlerts)
	case c.RowHeight <= 0:
		return fmt.Errorf("invalid row_height %d: must be positive", c.RowHeight)
	case c.Overscan < 0:
		return fmt.Errorf("invalid overscan %d: must not be negative", c.Overscan)
	case c.AnchorThreshold < 0:
		return fmt.Errorf("invalid anchor_threshold %d: must not be negative", c.AnchorThreshold)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(DefaultPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
