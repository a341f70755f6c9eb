// Package models defines the core data types for conversational playback context.
package models

import (
	"fmt"
	"strings"
)

// Track is a single playable item: a search hit or the now-playing record.
// Search results may also be albums or playlists; Type carries that when the
// producer supplies it.
type Track struct {
	Name       string   `json:"name"`
	Artists    []string `json:"artists,omitempty"`
	Album      string   `json:"album,omitempty"`
	DurationMS int      `json:"duration_ms,omitempty"`
	URI        string   `json:"uri,omitempty"`
	Type       string   `json:"type,omitempty"`
}

// ArtistLine joins the artist names for display.
func (t *Track) ArtistLine() string {
	return strings.Join(t.Artists, ", ")
}

// Label renders "Name by Artist, Artist" or just the name.
func (t *Track) Label() string {
	if len(t.Artists) == 0 {
		return t.Name
	}
	return t.Name + " by " + t.ArtistLine()
}

// Duration formats DurationMS as m:ss. Empty when unknown.
func (t *Track) Duration() string {
	if t.DurationMS <= 0 {
		return ""
	}
	secs := t.DurationMS / 1000
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Playlist is one entry from a playlist listing.
type Playlist struct {
	Name       string `json:"name"`
	TrackCount int    `json:"track_count"`
	URI        string `json:"uri,omitempty"`
}

// Device is one playback target from a device listing.
type Device struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Type     string `json:"type,omitempty"`
	IsActive bool   `json:"is_active"`
}

// Summary is a read-only digest of store state for display.
type Summary struct {
	SearchResults    int
	Playlists        int
	CurrentTrack     *Track
	Device           *Device
	ConversationMode bool
}
