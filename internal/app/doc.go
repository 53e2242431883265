// Package app is the composition root of the dashboard.
//
// Run wires the pieces together in this order:
//
//  1. Load ~/.config/vantage/config.toml and apply command-line overrides
//  2. Open the zap file logger
//  3. Create the capped state.Store and load the optional seed file
//  4. Start the /metrics listener when metrics_addr is set
//  5. Start the simulated alert feed on its own goroutine
//  6. Load preferences and run the Bubble Tea UI until it exits
//
// Start covers steps 3 to 5 and is usable without a terminal, which is how
// the tests exercise it.
package app
