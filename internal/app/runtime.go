package app

import (
	"context"
	"fmt"
	"net"

	"go.uber.org/zap"

	"github.com/five82/vantage/internal/config"
	"github.com/five82/vantage/internal/metrics"
	"github.com/five82/vantage/internal/seed"
	"github.com/five82/vantage/internal/state"
	"github.com/five82/vantage/internal/stream"
)

// Runtime holds the background pieces the UI attaches to.
type Runtime struct {
	Store      *state.Store
	Source     *stream.Source // nil when the feed is disabled
	Visibility *stream.Visibility
	// MetricsAddr is the bound metrics listener, nil when disabled.
	MetricsAddr net.Addr
}

// Start builds the store, loads the seed file and launches the alert feed
// and metrics listener. Background work stops when ctx is cancelled.
func Start(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Runtime, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	rt := &Runtime{
		Store:      state.NewStore(cfg.MaxAlerts),
		Visibility: &stream.Visibility{},
	}

	if cfg.SeedPath != "" {
		records, err := seed.Load(cfg.SeedPath, cfg.MaxAlerts)
		if err != nil {
			return nil, fmt.Errorf("load seed: %w", err)
		}
		dropped := rt.Store.Replace(records)
		logger.Info("seed loaded",
			zap.String("path", cfg.SeedPath),
			zap.Int("alerts", rt.Store.Len()),
			zap.Int("dropped", dropped),
		)
	}

	if cfg.MetricsAddr != "" {
		addr, err := metrics.Serve(ctx, cfg.MetricsAddr, logger)
		if err != nil {
			return nil, fmt.Errorf("serve metrics: %w", err)
		}
		rt.MetricsAddr = addr
	}

	if cfg.StreamEnabled {
		rt.Source = stream.New(stream.Options{
			Store:      rt.Store,
			Interval:   cfg.StreamInterval,
			Visibility: rt.Visibility,
			Logger:     logger,
		})
		rt.Source.Start(ctx)
	}

	return rt, nil
}
