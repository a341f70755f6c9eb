// Package updatecmd implements the `playctx update` command.
package updatecmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-ports/playctx/cmd/playctx/shared"
	"github.com/go-ports/playctx/internal/convo"
	"github.com/go-ports/playctx/internal/service"
)

var commands = []string{
	convo.CmdSearch, convo.CmdCurrent, convo.CmdPlaylists, convo.CmdDevices,
	convo.CmdPlay, convo.CmdNext, convo.CmdPrevious,
}

// Command implements `playctx update`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	data string
}

// New creates the update command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "update <" + strings.Join(commands, "|") + ">",
		Short: "Record a playback command's JSON output as conversational context",
		Long: "Record a playback command's JSON output as conversational context.\n\n" +
			"The payload is read from --data, or from stdin when --data is not given.\n" +
			"Empty or unrecognised payloads leave the stored context unchanged.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: commands,
		RunE:      c.run,
	}
	c.cmd.Flags().StringVar(&c.data, "data", "", "JSON payload (default: read stdin)")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	command := args[0]
	if _, ok := convo.Decode(command, nil); !ok {
		return fmt.Errorf("update: unknown command %q (want one of %s)", command, strings.Join(commands, ", "))
	}

	data := []byte(c.data)
	if !cmd.Flags().Changed("data") && !isPlayback(command) {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("update: read stdin: %w", err)
		}
		data = b
	}

	svc, err := service.New(c.ctx.Home)
	if err != nil {
		return err
	}
	svc.Update(command, data)

	sum := svc.Store.Summary()
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %d search results, %d playlists.\n", command, sum.SearchResults, sum.Playlists)
	return nil
}

func isPlayback(command string) bool {
	return command == convo.CmdPlay || command == convo.CmdNext || command == convo.CmdPrevious
}
