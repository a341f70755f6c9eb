// Package clearcmd implements the `playctx clear` command.
package clearcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/playctx/cmd/playctx/shared"
	"github.com/go-ports/playctx/internal/service"
)

// Command implements `playctx clear`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the clear command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "clear",
		Short: "Forget all conversational context and delete the snapshot",
		Args:  cobra.NoArgs,
		RunE:  c.run,
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
	svc.Store.Clear()
	fmt.Fprintln(cmd.OutOrStdout(), "Context cleared.")
	return nil
}
