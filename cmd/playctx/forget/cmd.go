// Package forgetcmd implements the `playctx forget-search` command.
package forgetcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/playctx/cmd/playctx/shared"
	"github.com/go-ports/playctx/internal/service"
)

// Command implements `playctx forget-search`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the forget-search command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "forget-search",
		Short: "Drop the last search results and leave conversation mode",
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
	svc.ForgetSearch()
	fmt.Fprintln(cmd.OutOrStdout(), "Search context cleared.")
	return nil
}
