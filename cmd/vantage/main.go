// vantage is a terminal dashboard for a live stream of security alerts.
//
// Usage:
//
//	vantage
//	vantage --seed alerts.jsonl --interval 2s
//	vantage --no-stream --seed capture.yaml
//	vantage --metrics-addr 127.0.0.1:9090
//	vantage version
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/vantage/internal/app"
)

var version = "dev"

type runFunc func(ctx context.Context, opts app.Options) error

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(runDashboard).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "vantage: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(runner runFunc) *cobra.Command {
	var opts app.Options

	rootCmd := &cobra.Command{
		Use:   "vantage",
		Short: "Watch a live stream of security alerts",
		Long: `vantage shows newest-first security alerts in a scrollable terminal list.

New alerts appear at the top while you are there; when you scroll away the
rows you are reading stay put and the status line counts what arrived.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runner(cmd.Context(), opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/vantage/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/vantage/prefs.toml)")
	flags.DurationVar(&opts.Interval, "interval", 0, "alert stream interval, e.g. 4s (overrides config)")
	flags.StringVar(&opts.SeedPath, "seed", "", "initial alerts from a .json, .yaml or .jsonl file")
	flags.BoolVar(&opts.NoStream, "no-stream", false, "disable the simulated alert stream")
	flags.StringVar(&opts.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the vantage version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vantage %s\n", version)
		},
	}
}

func runDashboard(ctx context.Context, opts app.Options) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("an interactive terminal is required")
	}
	return app.Run(ctx, opts)
}
