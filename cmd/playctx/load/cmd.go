// Package loadcmd implements the `playctx load` command.
package loadcmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/playctx/cmd/playctx/shared"
	"github.com/go-ports/playctx/internal/service"
)

// Command implements `playctx load`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the load command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "load",
		Short: "Load the snapshot and print the resulting context as JSON",
		Long: "Load the snapshot and print the resulting context as JSON.\n\n" +
			"A snapshot older than the configured TTL is ignored, so the output shows empty context.",
		Args: cobra.NoArgs,
		RunE: c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	svc, err := service.New(c.ctx.Home)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(svc.State(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
