// Command storefront is a terminal client for the storefront shop.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/storefront/internal/cli"
	"github.com/rshade/storefront/internal/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and returns the process exit code.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	if err := root.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
