// Command outbound-api serves shipment cancellation over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ib-77/outbound/internal/app"
	"github.com/ib-77/outbound/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, os.Stdout, "outbound-api")
	if err != nil {
		fmt.Fprintln(os.Stderr, "startup:", err)
		os.Exit(2)
	}

	if err := a.Run(ctx); err != nil {
		log := a.Logger()
		log.Error().Err(err).Msg("server stopped")
		stop()
		os.Exit(1)
	}
}
