// Package resolvecmd implements the `playctx resolve` command group.
package resolvecmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-ports/playctx/cmd/playctx/shared"
	"github.com/go-ports/playctx/internal/payload"
	"github.com/go-ports/playctx/internal/service"
)

// Command implements `playctx resolve`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the resolve command group.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "resolve",
		Short: "Resolve an ambiguous phrase against stored context",
		Long: "Resolve an ambiguous phrase against stored context.\n\n" +
			"Each subcommand prints the matched record as JSON, or null when nothing matches.",
	}
	c.cmd.AddCommand(
		newStored(ctx, service.KindReference, "Resolve a pronoun such as \"play that again\" or \"add this\""),
		newStored(ctx, service.KindNumber, "Resolve a numbered pick such as \"play #3\" or \"result 2\""),
		newStored(ctx, service.KindPlaylist, "Resolve a loose playlist name such as \"workout\""),
		newDevice(ctx),
	)
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

// ---------------------------------------------------------------------------
// resolve reference|number|playlist
// ---------------------------------------------------------------------------

func newStored(ctx *shared.Context, kind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   kind + " <phrase...>",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service.New(ctx.Home)
			if err != nil {
				return err
			}
			got, err := svc.Resolve(kind, strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), got)
		},
	}
}

// ---------------------------------------------------------------------------
// resolve device
// ---------------------------------------------------------------------------

func newDevice(ctx *shared.Context) *cobra.Command {
	var devicesPath string
	cmd := &cobra.Command{
		Use:   "device <name...>",
		Short: "Resolve a loose device name against a device listing",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readDevices(cmd, devicesPath)
			if err != nil {
				return err
			}
			svc, err := service.New(ctx.Home)
			if err != nil {
				return err
			}
			d := svc.ResolveDevice(strings.Join(args, " "), payload.Devices(raw))
			if d == nil {
				return printJSON(cmd.OutOrStdout(), nil)
			}
			return printJSON(cmd.OutOrStdout(), d)
		},
	}
	cmd.Flags().StringVar(&devicesPath, "devices", "-", "Device listing JSON file, or - for stdin")
	return cmd
}

func readDevices(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("resolve device: read stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("resolve device: %w", err)
	}
	return b, nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(b))
	return nil
}
