// gravity-games plays and inspects gravity chess and hop football positions.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

const programVersion = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "gravity-games: %v\n", err)
		stop()
		os.Exit(1)
	}
}
