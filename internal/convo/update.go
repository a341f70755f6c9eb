package convo

import (
	"fmt"
	"slices"

	"github.com/go-ports/playctx/internal/models"
	"github.com/go-ports/playctx/internal/payload"
)

// Command names accepted by Update.
const (
	CmdSearch    = "search"
	CmdCurrent   = "current"
	CmdPlaylists = "playlists"
	CmdDevices   = "devices"
	CmdPlay      = "play"
	CmdNext      = "next"
	CmdPrevious  = "previous"
)

// Event is one data-producing action reported by the dispatcher.
// The set is closed: SearchCompleted, NowPlaying, PlaylistsListed,
// DevicesListed and PlaybackChanged.
type Event interface {
	isEvent()
}

// SearchCompleted carries the results of a search, most relevant first.
type SearchCompleted struct {
	Results []models.Track
}

// NowPlaying carries the track reported by a current-track fetch.
type NowPlaying struct {
	Track *models.Track
}

// PlaylistsListed carries a full playlist listing.
type PlaylistsListed struct {
	Playlists []models.Playlist
}

// DevicesListed carries a full device listing.
type DevicesListed struct {
	Devices []models.Device
}

// PlaybackChanged reports play, next or previous.
type PlaybackChanged struct {
	Action string
}

func (SearchCompleted) isEvent() {}
func (NowPlaying) isEvent()      {}
func (PlaylistsListed) isEvent() {}
func (DevicesListed) isEvent()   {}
func (PlaybackChanged) isEvent() {}

// Apply folds ev into the store. Lists are replaced wholesale, never merged;
// empty lists and absent tracks leave state unchanged.
func (s *Store) Apply(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch e := ev.(type) {
	case SearchCompleted:
		if len(e.Results) == 0 {
			return
		}
		s.searchResults = slices.Clone(e.Results)
		s.conversationMode = true
	case NowPlaying:
		if e.Track == nil {
			return
		}
		s.currentTrack = cloneTrack(e.Track)
	case PlaylistsListed:
		if len(e.Playlists) == 0 {
			return
		}
		s.playlists = slices.Clone(e.Playlists)
	case DevicesListed:
		if len(e.Devices) == 0 {
			return
		}
		chosen := e.Devices[0]
		if i := slices.IndexFunc(e.Devices, func(d models.Device) bool { return d.IsActive }); i >= 0 {
			chosen = e.Devices[i]
		}
		s.device = &chosen
	case PlaybackChanged:
		// Deliberately a no-op. Refreshing the current track after a
		// playback change is left to a later current-track fetch.
	default:
		s.log.Debug("convo: ignoring unknown event", "type", fmt.Sprintf("%T", ev))
	}
}

// Update decodes data as the output of commandType and applies it.
// Unknown commands and payloads that decode to nothing are no-ops.
func (s *Store) Update(commandType string, data []byte) {
	ev, ok := Decode(commandType, data)
	if !ok {
		s.log.Debug("convo: update ignored", "command", commandType)
		return
	}
	s.Apply(ev)
}

// Decode turns a dispatcher command name and its JSON output into an Event.
func Decode(commandType string, data []byte) (Event, bool) {
	switch commandType {
	case CmdSearch:
		return SearchCompleted{Results: payload.Tracks(data)}, true
	case CmdCurrent:
		t, _ := payload.Track(data)
		return NowPlaying{Track: t}, true
	case CmdPlaylists:
		return PlaylistsListed{Playlists: payload.Playlists(data)}, true
	case CmdDevices:
		return DevicesListed{Devices: payload.Devices(data)}, true
	case CmdPlay, CmdNext, CmdPrevious:
		return PlaybackChanged{Action: commandType}, true
	}
	return nil, false
}
