package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/five82/vantage/internal/config"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.LogPath = ""
	cfg.StreamEnabled = false
	return cfg
}

func writeSeed(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, `{"id":"s-%d","timestamp":"2026-01-14T10:%02d:00Z","sensor":"Edge-Node-1","severity":"high","ip":"10.0.0.1","message":"seeded %d"}`+"\n", i, i, i)
	}
	path := filepath.Join(t.TempDir(), "seed.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func TestStart_LoadsSeedWithinCapacity(t *testing.T) {
	cfg := testConfig()
	cfg.MaxAlerts = 5
	cfg.SeedPath = writeSeed(t, 8)

	rt, err := Start(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Nil(t, rt.Source)
	assert.Nil(t, rt.MetricsAddr)
	snap := rt.Store.Snapshot()
	require.Len(t, snap.Alerts, 5)
	assert.Equal(t, "s-7", snap.Alerts[0].ID, "newest first")
}

func TestStart_SeedErrorIsWrapped(t *testing.T) {
	cfg := testConfig()
	cfg.SeedPath = filepath.Join(t.TempDir(), "missing.json")

	_, err := Start(context.Background(), cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load seed")
}

func TestStart_StreamAppendsUntilCancelled(t *testing.T) {
	cfg := testConfig()
	cfg.StreamEnabled = true
	cfg.StreamInterval = 5 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rt, err := Start(ctx, cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NotNil(t, rt.Source)

	require.Eventually(t, func() bool { return rt.Store.Len() >= 2 }, time.Second, 5*time.Millisecond)

	rt.Visibility.SetVisible(false)
	time.Sleep(20 * time.Millisecond)
	before := rt.Store.Len()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, before, rt.Store.Len(), "hidden surface stops the feed")
}

func TestStart_ServesMetrics(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsAddr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rt, err := Start(ctx, cfg, nil)
	require.NoError(t, err)
	require.NotNil(t, rt.MetricsAddr)

	resp, err := http.Get("http://" + rt.MetricsAddr.String() + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestLoadConfig_AppliesOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("stream_interval = \"10s\"\nmetrics_addr = \"127.0.0.1:9000\"\n"), 0o600))

	cfg, err := LoadConfig(Options{
		ConfigPath: path,
		Interval:   2 * time.Second,
		SeedPath:   "/tmp/seed.json",
		NoStream:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.StreamInterval)
	assert.Equal(t, "/tmp/seed.json", cfg.SeedPath)
	assert.False(t, cfg.StreamEnabled)
	assert.Equal(t, "127.0.0.1:9000", cfg.MetricsAddr)
}

func TestLoadConfig_WrapsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_alerts = ["), 0o600))

	_, err := LoadConfig(Options{ConfigPath: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
