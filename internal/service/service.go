// Package service wires configuration, home resolution and the context store
// together for the CLI commands and the MCP server.
package service

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ports/playctx/internal/config"
	"github.com/go-ports/playctx/internal/convo"
	"github.com/go-ports/playctx/internal/models"
	"github.com/go-ports/playctx/internal/snapshot"
)

// Resolution kinds accepted by Resolve.
const (
	KindReference = "reference"
	KindNumber    = "number"
	KindPlaylist  = "playlist"
	KindDevice    = "device"
)

// ResolveKinds lists the kinds that resolve against stored context alone.
var ResolveKinds = []string{KindReference, KindNumber, KindPlaylist}

// Service owns one context store rooted at a playctx home directory.
type Service struct {
	Home   string
	Config *config.Config
	Store  *convo.Store
}

// New initialises a Service rooted at home and loads any fresh snapshot.
// If home is empty it is resolved via config.GetHome.
func New(home string) (*Service, error) {
	home = config.GetHome(home)
	if err := os.MkdirAll(home, 0o755); err != nil {
		return nil, fmt.Errorf("service.New: create home: %w", err)
	}

	cfg, err := config.Load(filepath.Join(home, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("service.New: load config: %w", err)
	}

	store := convo.New(convo.Options{
		Path:             filepath.Join(home, snapshot.FileName),
		TTL:              cfg.Context.TTL,
		MaxSearchResults: cfg.Context.MaxSearchResults,
		MaxPlaylists:     cfg.Context.MaxPlaylists,
		Logger:           slog.Default().With("component", "convo"),
	})
	store.Load()

	return &Service{Home: home, Config: cfg, Store: store}, nil
}

// Close persists the store. It never fails; the error return keeps the
// usual defer svc.Close() shape.
func (s *Service) Close() error {
	s.Store.Save()
	return nil
}

// Update applies the output of a dispatcher command and persists the result.
// It reports whether commandType is one the store understands.
func (s *Service) Update(commandType string, data []byte) bool {
	ev, ok := convo.Decode(commandType, data)
	if !ok {
		return false
	}
	s.Store.Apply(ev)
	s.Store.Save()
	return true
}

// ForgetSearch drops the search results and persists the result.
func (s *Service) ForgetSearch() {
	s.Store.ClearSearchContext()
	s.Store.Save()
}

// Resolve runs the resolver for kind against phrase. The returned value is
// a *models.Track or *models.Playlist, or nil on a miss.
func (s *Service) Resolve(kind, phrase string) (any, error) {
	switch kind {
	case KindReference:
		if t, ok := s.Store.ResolveReference(phrase); ok {
			return t, nil
		}
	case KindNumber:
		if t, ok := s.Store.ResolveNumberedResult(phrase); ok {
			return t, nil
		}
	case KindPlaylist:
		if p, ok := s.Store.ResolvePlaylist(phrase); ok {
			return p, nil
		}
	default:
		return nil, fmt.Errorf("Resolve: unknown kind %q (want one of %s)", kind, strings.Join(ResolveKinds, ", "))
	}
	return nil, nil
}

// ResolveDevice matches name against devices.
func (s *Service) ResolveDevice(name string, devices []models.Device) *models.Device {
	d, _ := s.Store.ResolveDevice(name, devices)
	return d
}

// State returns the live store contents in snapshot form, untruncated and
// without a capture timestamp.
func (s *Service) State() *snapshot.Snapshot {
	cur, _ := s.Store.CurrentTrack()
	dev, _ := s.Store.Device()
	results := s.Store.SearchResults()
	if results == nil {
		results = make([]models.Track, 0)
	}
	playlists := s.Store.Playlists()
	if playlists == nil {
		playlists = make([]models.Playlist, 0)
	}
	return &snapshot.Snapshot{
		SearchResults:    results,
		CurrentTrack:     cur,
		LastPlaylists:    playlists,
		DeviceContext:    dev,
		ConversationMode: s.Store.ConversationMode(),
	}
}
