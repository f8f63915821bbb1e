// Command research-sources runs the genealogical research CLI and MCP
// server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rootline/research-sources/internal/adapters/driving/cli"
)

func main() {
	// The cache handle is closed by the CLI's shutdown hook once the
	// command returns; SIGINT/SIGTERM cancel the context so MCP serve
	// unwinds cleanly first.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
