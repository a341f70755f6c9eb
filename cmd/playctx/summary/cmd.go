// Package summarycmd implements the `playctx summary` command.
package summarycmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/playctx/cmd/playctx/shared"
	"github.com/go-ports/playctx/internal/service"
)

// Command implements `playctx summary`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the summary command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "summary",
		Short: "Show what conversational context is currently stored",
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
	sum := svc.Store.Summary()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Search results:    %d\n", sum.SearchResults)
	fmt.Fprintf(out, "Playlists cached:  %d\n", sum.Playlists)

	track := "none"
	if sum.CurrentTrack != nil {
		track = sum.CurrentTrack.Label()
		if d := sum.CurrentTrack.Duration(); d != "" {
			track += " (" + d + ")"
		}
	}
	fmt.Fprintf(out, "Current track:     %s\n", track)

	device := "none"
	if sum.Device != nil {
		device = sum.Device.Name
		if sum.Device.Type != "" {
			device += " [" + sum.Device.Type + "]"
		}
	}
	fmt.Fprintf(out, "Device:            %s\n", device)

	mode := "off"
	if sum.ConversationMode {
		mode = "on"
	}
	fmt.Fprintf(out, "Conversation mode: %s\n", mode)
	return nil
}
