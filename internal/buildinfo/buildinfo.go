// Package buildinfo holds build-time variables injected via ldflags, e.g.
//
//	go build -ldflags "-X github.com/go-ports/playctx/internal/buildinfo.Version=v0.3.0" ./cmd/playctx
package buildinfo

// Defaults are used for local builds.
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)
