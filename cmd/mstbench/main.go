package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/mstbench/internal/cli"
)

var version = "dev"

func main() {
	// trap Ctrl+C and cancel the context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// run the command
	cli.Execute(ctx, version)
}
