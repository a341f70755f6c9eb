// Package shared holds the context passed to all CLI commands.
package shared

// Context carries global CLI state (flags set on the root command).
type Context struct {
	// Home overrides the playctx home directory.
	// When empty, resolution falls through to PLAYCTX_HOME env → $XDG_CONFIG_HOME/playctx → ~/.config/playctx.
	Home string

	// Verbose enables debug logging on stderr.
	Verbose bool
}
