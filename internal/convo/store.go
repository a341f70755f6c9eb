// Package convo holds short-lived conversational playback context and
// resolves elliptical references ("play that again", "play #3", "add this to
// workout") against it.
//
// The store never returns errors. Resolution misses are reported as absence
// and persistence faults fall back to empty defaults.
package convo

import (
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-ports/playctx/internal/match"
	"github.com/go-ports/playctx/internal/models"
)

// Options configures a Store. Zero fields take the defaults.
type Options struct {
	// Path is the snapshot file. Empty disables persistence.
	Path             string
	TTL              time.Duration
	MaxSearchResults int
	MaxPlaylists     int
	// Now overrides the clock, for tests.
	Now    func() time.Time
	Logger *slog.Logger
}

// Store is the conversational context for one process.
type Store struct {
	mu sync.Mutex

	searchResults    []models.Track
	currentTrack     *models.Track
	playlists        []models.Playlist
	device           *models.Device
	conversationMode bool

	path         string
	ttl          time.Duration
	maxResults   int
	maxPlaylists int
	now          func() time.Time
	log          *slog.Logger
}

// New returns an empty Store.
func New(opts Options) *Store {
	s := &Store{
		path:         opts.Path,
		ttl:          opts.TTL,
		maxResults:   opts.MaxSearchResults,
		maxPlaylists: opts.MaxPlaylists,
		now:          opts.Now,
		log:          opts.Logger,
	}
	if s.ttl <= 0 {
		s.ttl = time.Hour
	}
	if s.maxResults <= 0 {
		s.maxResults = 10
	}
	if s.maxPlaylists <= 0 {
		s.maxPlaylists = 20
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// Path returns the snapshot path.
func (s *Store) Path() string { return s.path }

// ---------------------------------------------------------------------------
// Resolution
// ---------------------------------------------------------------------------

// ResolveReference maps a pronoun phrase to a track. Triggers are checked as
// plain substrings of the lowercased phrase, in this order:
//
//   - "this" or "current": the current track, even when none is set;
//   - "that": the top search result, when there are results;
//   - "it": the current track, else the top search result.
func (s *Store) ResolveReference(phrase string) (*models.Track, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := strings.ToLower(phrase)
	switch {
	case strings.Contains(p, "this") || strings.Contains(p, "current"):
		return cloneTrack(s.currentTrack), s.currentTrack != nil
	case strings.Contains(p, "that") && len(s.searchResults) > 0:
		return cloneTrack(&s.searchResults[0]), true
	case strings.Contains(p, "it"):
		if s.currentTrack != nil {
			return cloneTrack(s.currentTrack), true
		}
		if len(s.searchResults) > 0 {
			return cloneTrack(&s.searchResults[0]), true
		}
	}
	return nil, false
}

var numberedRe = regexp.MustCompile(`(?i)#(\d+)|number\s+(\d+)|result\s+(\d+)`)

// ResolveNumberedResult picks a search result by its 1-based position, written
// as "#N", "number N" or "result N". Only the first such mention counts.
func (s *Store) ResolveNumberedResult(phrase string) (*models.Track, bool) {
	m := numberedRe.FindStringSubmatch(phrase)
	if m == nil {
		return nil, false
	}
	var digits string
	for _, g := range m[1:] {
		if g != "" {
			digits = g
			break
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	idx := n - 1
	if idx < 0 || idx >= len(s.searchResults) {
		return nil, false
	}
	return cloneTrack(&s.searchResults[idx]), true
}

// ResolvePlaylist matches name against the cached playlist listing.
func (s *Store) ResolvePlaylist(name string) (*models.Playlist, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := match.Find(s.playlists, name, func(p models.Playlist) string { return p.Name })
	if !ok {
		return nil, false
	}
	return &p, true
}

// ResolveDevice matches name against the caller's current device list.
// The cached device context is not consulted.
func (*Store) ResolveDevice(name string, available []models.Device) (*models.Device, bool) {
	d, ok := match.Find(available, name, func(d models.Device) string { return d.Name })
	if !ok {
		return nil, false
	}
	return &d, true
}

// ---------------------------------------------------------------------------
// Mutation
// ---------------------------------------------------------------------------

// ClearSearchContext drops the search results and leaves conversation mode.
func (s *Store) ClearSearchContext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchResults = nil
	s.conversationMode = false
}

// reset empties every field. Callers hold mu.
func (s *Store) reset() {
	s.searchResults = nil
	s.currentTrack = nil
	s.playlists = nil
	s.device = nil
	s.conversationMode = false
}

// ---------------------------------------------------------------------------
// Read-only views
// ---------------------------------------------------------------------------

// Hints returns context-sensitive usage hints derived from which fields are set.
func (s *Store) Hints() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var hints []string
	if n := len(s.searchResults); n > 0 {
		hints = append(hints, "Say \"play #1\" to \"play #"+strconv.Itoa(min(5, n))+"\" to pick from the last search")
	}
	if s.currentTrack != nil {
		hints = append(hints,
			"Say \"add this to <playlist>\" to save the current track",
			"Say \"play it again\" to replay the current track",
		)
	}
	if len(s.playlists) > 0 {
		hints = append(hints, "Playlist names match loosely, e.g. \"workout\" finds \"Workout Mix\"")
	}
	return hints
}

// Summary returns a digest of the current state.
func (s *Store) Summary() models.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Summary{
		SearchResults:    len(s.searchResults),
		Playlists:        len(s.playlists),
		CurrentTrack:     cloneTrack(s.currentTrack),
		Device:           cloneDevice(s.device),
		ConversationMode: s.conversationMode,
	}
}

// SearchResults returns a copy of the installed search results.
func (s *Store) SearchResults() []models.Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.searchResults)
}

// Playlists returns a copy of the cached playlist listing.
func (s *Store) Playlists() []models.Playlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.playlists)
}

// CurrentTrack returns the now-playing track, if any.
func (s *Store) CurrentTrack() (*models.Track, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTrack(s.currentTrack), s.currentTrack != nil
}

// Device returns the remembered playback device, if any.
func (s *Store) Device() (*models.Device, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneDevice(s.device), s.device != nil
}

// ConversationMode reports whether pronouns are expected to resolve against
// the last search.
func (s *Store) ConversationMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversationMode
}

func cloneTrack(t *models.Track) *models.Track {
	if t == nil {
		return nil
	}
	cp := *t
	cp.Artists = slices.Clone(t.Artists)
	return &cp
}

func cloneDevice(d *models.Device) *models.Device {
	if d == nil {
		return nil
	}
	cp := *d
	return &cp
}
