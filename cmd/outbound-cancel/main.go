// Command outbound-cancel derives the compensating events for cancelling
// one or more outbound shipments and prints them, one line per event.
//
//	outbound-cancel 1 2 3
//
// Exit status is 0 when every shipment could be cancelled, 1 when any
// cancellation was rejected and 2 on usage or configuration errors.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ib-77/outbound/internal/app"
	"github.com/ib-77/outbound/internal/config"
	"github.com/ib-77/outbound/pkg/outbound"
	"github.com/ib-77/outbound/pkg/rop/solo"
)

const (
	exitOK       = 0
	exitRejected = 1
	exitUsage    = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "usage: outbound-cancel <shipment-id>...")
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "config:", err)
		return exitUsage
	}

	a, err := app.New(ctx, cfg, stderr, "outbound-cancel")
	if err != nil {
		fmt.Fprintln(stderr, "startup:", err)
		return exitUsage
	}

	code := exitOK
	for _, raw := range args {
		out := a.Service().CancelRaw(ctx, raw)
		ok := solo.Finally(ctx, out.Result,
			func(_ context.Context, events []outbound.Event) bool {
				for _, e := range events {
					fmt.Fprintf(stdout, "%s\tcancelled\t%s\n", raw, e)
				}
				return true
			},
			func(_ context.Context, err error) bool {
				fmt.Fprintf(stdout, "%s\trejected\t%s: %s\n", raw, outbound.KindOf(err), err)
				return false
			})
		if !ok {
			code = exitRejected
		}
	}

	if err := a.WriteMetrics(); err != nil {
		log := a.Logger()
		log.Error().Err(err).Msg("write metrics textfile")
	}
	return code
}
