package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pageza/recipe-finder/backend/cmd/api/commands"
)

var version = "dev"

func main() {
	// Cancelled on SIGINT or SIGTERM, which starts the graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx, os.Args, version); err != nil {
		fmt.Fprintf(os.Stderr, "recipe-finder: %v\n", err)
		os.Exit(1)
	}
}
