// SPDX-License-Identifier: MIT

// Command rectscan finds fixed-size all-ones rectangles in a binary grid,
// clusters them and reports non-overlapping selections.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
