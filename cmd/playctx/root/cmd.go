// Package rootcmd wires the root cobra.Command for the playctx CLI binary.
package rootcmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	clearcmd "github.com/go-ports/playctx/cmd/playctx/clear"
	configcmd "github.com/go-ports/playctx/cmd/playctx/config"
	forgetcmd "github.com/go-ports/playctx/cmd/playctx/forget"
	hintscmd "github.com/go-ports/playctx/cmd/playctx/hints"
	loadcmd "github.com/go-ports/playctx/cmd/playctx/load"
	mcpcmd "github.com/go-ports/playctx/cmd/playctx/mcp"
	resolvecmd "github.com/go-ports/playctx/cmd/playctx/resolve"
	"github.com/go-ports/playctx/cmd/playctx/shared"
	summarycmd "github.com/go-ports/playctx/cmd/playctx/summary"
	updatecmd "github.com/go-ports/playctx/cmd/playctx/update"
	"github.com/go-ports/playctx/internal/buildinfo"
)

// New creates and returns the root cobra.Command for the playctx CLI.
func New() *cobra.Command {
	ctx := &shared.Context{}

	root := &cobra.Command{
		Use:           "playctx",
		Short:         "Conversational context for music playback commands",
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if ctx.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
		RunE: func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	root.SetVersionTemplate(fmt.Sprintf(
		"playctx {{.Version}} (commit %s, built %s)\n", buildinfo.GitCommit, buildinfo.BuildDate,
	))

	root.PersistentFlags().StringVar(
		&ctx.Home, "home", "",
		"Override playctx home directory (default: $PLAYCTX_HOME env → $XDG_CONFIG_HOME/playctx → ~/.config/playctx)",
	)
	root.PersistentFlags().BoolVar(&ctx.Verbose, "verbose", false, "Log debug details to stderr")

	root.AddCommand(
		summarycmd.New(ctx).Cmd(),
		loadcmd.New(ctx).Cmd(),
		clearcmd.New(ctx).Cmd(),
		updatecmd.New(ctx).Cmd(),
		forgetcmd.New(ctx).Cmd(),
		resolvecmd.New(ctx).Cmd(),
		hintscmd.New(ctx).Cmd(),
		configcmd.New(ctx).Cmd(),
		mcpcmd.New(ctx).Cmd(),
	)

	return root
}
