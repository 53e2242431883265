package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/vantage/internal/app"
)

func TestRootCmd_ParsesFlags(t *testing.T) {
	var got app.Options
	cmd := newRootCmd(func(_ context.Context, opts app.Options) error {
		got = opts
		return nil
	})
	cmd.SetArgs([]string{
		"--config", "/etc/vantage.toml",
		"--interval", "2s",
		"--seed", "alerts.jsonl",
		"--no-stream",
		"--metrics-addr", "127.0.0.1:9090",
	})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, app.Options{
		ConfigPath:  "/etc/vantage.toml",
		Interval:    2 * time.Second,
		SeedPath:    "alerts.jsonl",
		NoStream:    true,
		MetricsAddr: "127.0.0.1:9090",
	}, got)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd(func(context.Context, app.Options) error { return nil })
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}

func TestVersionCmd(t *testing.T) {
	cmd := newRootCmd(func(context.Context, app.Options) error {
		t.Fatal("dashboard should not start")
		return nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "vantage dev\n", out.String())
}
