// Command playctx keeps conversational playback context between invocations
// of a music-control CLI and resolves references such as "play #3" against it.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	rootcmd "github.com/go-ports/playctx/cmd/playctx/root"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "playctx:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return rootcmd.New().ExecuteContext(ctx)
}
