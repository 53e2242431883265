// Package metrics exposes Prometheus counters for the alert stream and the
// list view, and an optional HTTP listener that serves them.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	alertsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vantage_alerts_generated_total",
			Help: "Alerts produced by the stream, by severity.",
		},
		[]string{"severity"},
	)
	alertsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vantage_alerts_evicted_total",
			Help: "Alerts dropped because the collection reached its capacity.",
		},
	)
	ticksSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vantage_stream_ticks_skipped_total",
			Help: "Stream ticks that produced no alert, by reason.",
		},
		[]string{"reason"},
	)
	anchorDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vantage_anchor_decisions_total",
			Help: "Scroll anchor decisions taken on collection length changes.",
		},
		[]string{"decision"},
	)
)

// AlertGenerated counts one generated alert.
func AlertGenerated(severity string) {
	alertsGenerated.WithLabelValues(severity).Inc()
}

// AlertsEvicted counts records dropped by the capacity cap.
func AlertsEvicted(n int) {
	if n > 0 {
		alertsEvicted.Add(float64(n))
	}
}

// TickSkipped counts a stream tick that was skipped.
func TickSkipped(reason string) {
	ticksSkipped.WithLabelValues(reason).Inc()
}

// AnchorDecision counts one scroll anchor decision.
func AnchorDecision(decision string) {
	anchorDecisions.WithLabelValues(decision).Inc()
}

const shutdownTimeout = 2 * time.Second

// Serve exposes /metrics on addr until ctx is cancelled. The listener is
// bound before Serve returns so bind errors surface to the caller; the HTTP
// loop itself runs in the background.
func Serve(ctx context.Context, addr string, logger *zap.Logger) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen metrics %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("metrics server stopped", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown", zap.Error(err))
		}
	}()

	logger.Info("metrics listener started", zap.String("addr", ln.Addr().String()))
	return ln.Addr(), nil
}
