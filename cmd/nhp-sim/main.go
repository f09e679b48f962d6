// Command nhp-sim runs the NHP scenario simulation and writes its CSV, JSON,
// markdown and chart outputs.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/nhp-simulation/internal/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		logger := logging.New("info", "console", os.Stderr)
		logger.Error().Err(err).Msg("nhp-sim failed")
		cancel()
		os.Exit(1)
	}
}
