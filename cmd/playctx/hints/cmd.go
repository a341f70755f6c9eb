// Package hintscmd implements the `playctx hints` command.
package hintscmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/playctx/cmd/playctx/shared"
	"github.com/go-ports/playctx/internal/service"
)

// Command implements `playctx hints`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the hints command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "hints",
		Short: "Print hints for the conversational references that currently resolve",
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
	for _, h := range svc.Store.Hints() {
		fmt.Fprintln(cmd.OutOrStdout(), h)
	}
	return nil
}
