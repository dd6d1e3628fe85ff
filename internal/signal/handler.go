// Package signal provides signal handling for graceful shutdown of the
// narrato-guide CLI.
//
// SetupSignalHandler registers handlers for SIGINT and SIGTERM so an
// interrupted walkthrough can cancel in-flight tool probes and exit with
// the Interrupted code instead of dying mid-probe.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler registers SIGINT and SIGTERM handlers.
// When a signal is received, it calls the onInterrupt callback (if non-nil),
// then cancels the context.
//
// The listening goroutine terminates when either a signal is received or
// the context is canceled.
func SetupSignalHandler(ctx context.Context, cancel context.CancelFunc, onInterrupt func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			if onInterrupt != nil {
				onInterrupt()
			}
			cancel()
		case <-ctx.Done():
			return
		}
	}()
}
