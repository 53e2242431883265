package stream

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/five82/vantage/internal/metrics"
	"github.com/five82/vantage/internal/state"
)

// DefaultInterval is the cadence of the simulated feed.
const DefaultInterval = 4 * time.Second

// Visibility records whether the consuming surface can be seen.
type Visibility struct {
	hidden atomic.Bool
}

// SetVisible updates the visibility flag.
func (v *Visibility) SetVisible(visible bool) {
	v.hidden.Store(!visible)
}

// Visible reports whether the surface is visible. A nil Visibility is always
// visible.
func (v *Visibility) Visible() bool {
	return v == nil || !v.hidden.Load()
}

// TickResult describes what one tick did.
type TickResult int

const (
	TickAppended TickResult = iota
	TickHidden
	TickPaused
)

func (r TickResult) String() string {
	switch r {
	case TickHidden:
		return "hidden"
	case TickPaused:
		return "paused"
	default:
		return "appended"
	}
}

// Options configure a Source.
type Options struct {
	Store      *state.Store
	Generator  *Generator
	Interval   time.Duration
	Visibility *Visibility
	Logger     *zap.Logger
}

// Source appends generated alerts to a store.
type Source struct {
	store      *state.Store
	gen        *Generator
	interval   time.Duration
	visibility *Visibility
	logger     *zap.Logger
	paused     atomic.Bool
	quiet      rate.Sometimes
}

// New builds a Source from opts.
func New(opts Options) *Source {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	gen := opts.Generator
	if gen == nil {
		gen = NewGenerator()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{
		store:      opts.Store,
		gen:        gen,
		interval:   interval,
		visibility: opts.Visibility,
		logger:     logger.Named("stream"),
		quiet:      rate.Sometimes{First: 1, Interval: time.Minute},
	}
}

// Interval returns the tick cadence.
func (s *Source) Interval() time.Duration {
	return s.interval
}

// SetPaused pauses or resumes the feed.
func (s *Source) SetPaused(paused bool) {
	s.paused.Store(paused)
}

// Paused reports whether the feed is paused.
func (s *Source) Paused() bool {
	return s.paused.Load()
}

// Tick performs one step of the feed.
func (s *Source) Tick() TickResult {
	if !s.visibility.Visible() {
		metrics.TickSkipped(TickHidden.String())
		s.quiet.Do(func() {
			s.logger.Debug("surface hidden, skipping ticks")
		})
		return TickHidden
	}
	if s.Paused() {
		metrics.TickSkipped(TickPaused.String())
		return TickPaused
	}

	alert := s.gen.Next()
	evicted := s.store.Prepend(alert)
	metrics.AlertGenerated(string(alert.Severity))
	metrics.AlertsEvicted(evicted)
	s.logger.Debug("alert generated",
		zap.String("id", alert.ID),
		zap.String("severity", string(alert.Severity)),
		zap.Int("evicted", evicted),
	)
	return TickAppended
}

// Run ticks until ctx is cancelled.
func (s *Source) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("stream started", zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("stream stopped")
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Start launches Run on a background goroutine and returns immediately.
func (s *Source) Start(ctx context.Context) {
	go s.Run(ctx)
}
