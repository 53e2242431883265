package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/vantage/internal/config"
	"github.com/five82/vantage/internal/logging"
	"github.com/five82/vantage/internal/prefs"
	"github.com/five82/vantage/internal/ui"
)

// Options configure the dashboard. Zero values leave the config file's
// settings in place.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/vantage/prefs.toml
	Interval    time.Duration
	SeedPath    string
	NoStream    bool
	MetricsAddr string
}

// apply layers command-line overrides on top of cfg.
func (o Options) apply(cfg *config.Config) {
	if o.Interval > 0 {
		cfg.StreamInterval = o.Interval
	}
	if o.SeedPath != "" {
		cfg.SeedPath = o.SeedPath
	}
	if o.NoStream {
		cfg.StreamEnabled = false
	}
	if o.MetricsAddr != "" {
		cfg.MetricsAddr = o.MetricsAddr
	}
}

// LoadConfig reads the config file and applies the overrides in opts.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	opts.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Run boots the dashboard until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}

	logger, sync, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer sync()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rt, err := Start(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		return err
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("load preferences failed", zap.Error(err))
	}

	logger.Info("dashboard starting",
		zap.Int("alerts", rt.Store.Len()),
		zap.Bool("stream", rt.Source != nil),
		zap.String("theme", userPrefs.Theme),
	)
	err = ui.Run(ui.Options{
		Context:         ctx,
		Store:           rt.Store,
		Source:          rt.Source,
		Visibility:      rt.Visibility,
		Logger:          logger,
		ThemeName:       userPrefs.Theme,
		Filter:          userPrefs.Filter(),
		PrefsPath:       opts.PrefsPath,
		RowHeight:       cfg.RowHeight,
		Overscan:        cfg.Overscan,
		AnchorThreshold: cfg.AnchorThreshold,
		SearchDebounce:  cfg.SearchDebounce,
	})
	logger.Info("dashboard stopped", zap.Error(err))
	return err
}
