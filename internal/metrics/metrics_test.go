package metrics

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(alertsGenerated.WithLabelValues("critical"))
	AlertGenerated("critical")
	assert.Equal(t, before+1, testutil.ToFloat64(alertsGenerated.WithLabelValues("critical")))

	evictedBefore := testutil.ToFloat64(alertsEvicted)
	AlertsEvicted(0)
	AlertsEvicted(3)
	assert.Equal(t, evictedBefore+3, testutil.ToFloat64(alertsEvicted))

	skippedBefore := testutil.ToFloat64(ticksSkipped.WithLabelValues("hidden"))
	TickSkipped("hidden")
	assert.Equal(t, skippedBefore+1, testutil.ToFloat64(ticksSkipped.WithLabelValues("hidden")))

	shiftBefore := testutil.ToFloat64(anchorDecisions.WithLabelValues("shift"))
	AnchorDecision("shift")
	assert.Equal(t, shiftBefore+1, testutil.ToFloat64(anchorDecisions.WithLabelValues("shift")))
}

func TestServe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	AlertGenerated("low")
	addr, err := Serve(ctx, "127.0.0.1:0", zap.NewNop())
	require.NoError(t, err)

	resp, err := http.Get("http://" + addr.String() + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "vantage_alerts_generated_total")
}

func TestServe_BindError(t *testing.T) {
	_, err := Serve(context.Background(), "not-an-address", zap.NewNop())
	assert.ErrorContains(t, err, "listen metrics")
}
