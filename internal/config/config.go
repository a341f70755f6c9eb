// Package config handles configuration loading and playctx home resolution.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the per-home config file name.
const FileName = "config.yaml"

// ---------------------------------------------------------------------------
// Config types
// ---------------------------------------------------------------------------

// ContextConfig bounds how much conversational context is kept and for how long.
type ContextConfig struct {
	TTL              time.Duration `yaml:"ttl"`                // snapshot validity window
	MaxSearchResults int           `yaml:"max_search_results"` // persisted search results
	MaxPlaylists     int           `yaml:"max_playlists"`      // persisted playlists
}

// Config is the root configuration.
type Config struct {
	Context ContextConfig `yaml:"context"`
}

// Default returns a Config populated with the standard limits.
func Default() *Config {
	return &Config{
		Context: ContextConfig{
			TTL:              time.Hour,
			MaxSearchResults: 10,
			MaxPlaylists:     20,
		},
	}
}

// Load reads config.yaml from path.
// If the file does not exist it returns Default() with no error.
// Missing keys, unparsable durations and non-positive limits keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	// Unmarshal into a plain map so we can apply only the keys that are present.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	if ctx, ok := raw["context"].(map[string]any); ok {
		if v, ok := ctx["ttl"].(string); ok {
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				cfg.Context.TTL = d
			}
		}
		if v, ok := ctx["max_search_results"].(int); ok && v > 0 {
			cfg.Context.MaxSearchResults = v
		}
		if v, ok := ctx["max_playlists"].(int); ok && v > 0 {
			cfg.Context.MaxPlaylists = v
		}
	}

	return cfg, nil
}

// ---------------------------------------------------------------------------
// Home resolution
// ---------------------------------------------------------------------------

// normalizePath expands ~ and makes the path absolute.
func normalizePath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	}
	return filepath.Abs(os.ExpandEnv(path))
}

// ResolveHome returns the playctx home directory and the source of the resolution.
// Priority: override (the --home flag) → PLAYCTX_HOME env → $XDG_CONFIG_HOME/playctx → ~/.config/playctx.
// source is one of "flag", "env" or "default".
func ResolveHome(override string) (path, source string) {
	if override != "" {
		if p, err := normalizePath(override); err == nil {
			return p, "flag"
		}
	}

	if env := os.Getenv("PLAYCTX_HOME"); env != "" {
		if p, err := normalizePath(env); err == nil {
			return p, "env"
		}
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "playctx"), "default"
	}

	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "playctx"), "default"
}

// GetHome returns the resolved home path.
func GetHome(override string) string {
	path, _ := ResolveHome(override)
	return path
}
