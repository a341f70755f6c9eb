package convo

import (
	"errors"
	"os"

	"github.com/go-ports/playctx/internal/snapshot"
)

// Save writes the current state to the snapshot path, keeping only the first
// MaxSearchResults results and MaxPlaylists playlists. Failures are logged
// and otherwise ignored.
func (s *Store) Save() {
	if s.path == "" {
		return
	}
	s.mu.Lock()
	snap := &snapshot.Snapshot{
		SearchResults:    head(s.searchResults, s.maxResults),
		CurrentTrack:     cloneTrack(s.currentTrack),
		LastPlaylists:    head(s.playlists, s.maxPlaylists),
		DeviceContext:    cloneDevice(s.device),
		ConversationMode: s.conversationMode,
		Timestamp:        s.now().UnixMilli(),
	}
	s.mu.Unlock()

	if err := snapshot.Write(s.path, snap); err != nil {
		s.log.Debug("convo: save failed", "path", s.path, "err", err)
	}
}

// Load replaces the state with the snapshot when one exists and is younger
// than the TTL. A missing, corrupt or stale snapshot leaves the state as it
// was, which for a freshly constructed store means every field empty.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return
	}
	snap, err := snapshot.Read(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Debug("convo: load failed", "path", s.path, "err", err)
		}
		return
	}
	if !snap.Fresh(s.now(), s.ttl) {
		s.log.Debug("convo: snapshot expired", "path", s.path, "captured_at", snap.CapturedAt())
		return
	}

	s.searchResults = snap.SearchResults
	s.currentTrack = snap.CurrentTrack
	s.playlists = snap.LastPlaylists
	s.device = snap.DeviceContext
	s.conversationMode = snap.ConversationMode
}

// Clear resets every field and deletes the snapshot.
func (s *Store) Clear() {
	s.mu.Lock()
	s.reset()
	s.mu.Unlock()

	if s.path == "" {
		return
	}
	if err := snapshot.Remove(s.path); err != nil {
		s.log.Debug("convo: remove snapshot failed", "path", s.path, "err", err)
	}
}

// head copies at most n leading elements into a non-nil slice so the
// snapshot always carries JSON arrays.
func head[T any](xs []T, n int) []T {
	out := make([]T, min(len(xs), n))
	copy(out, xs)
	return out
}
