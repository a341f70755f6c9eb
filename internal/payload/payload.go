// Package payload decodes the JSON produced by the playback dispatcher's
// search, now-playing, playlist and device commands into model records.
//
// Producers disagree on field names (artists vs artist, tracks.total vs
// track_count), so every field is read through a prepared JSONPath and
// missing or mistyped fields fall through to the next candidate.
// Records that are not objects, or carry no name, are dropped.
package payload

import (
	"bytes"
	"encoding/json"

	"github.com/yalp/jsonpath"

	"github.com/go-ports/playctx/internal/models"
)

var (
	pathName       = mustPrepare("$.name")
	pathURI        = mustPrepare("$.uri")
	pathType       = mustPrepare("$.type")
	pathID         = mustPrepare("$.id")
	pathArtists    = mustPrepare("$.artists")
	pathArtist     = mustPrepare("$.artist")
	pathAlbum      = mustPrepare("$.album")
	pathAlbumName  = mustPrepare("$.album.name")
	pathDuration   = mustPrepare("$.duration_ms")
	pathItem       = mustPrepare("$.item")
	pathItems      = mustPrepare("$.items")
	pathTrackItems = mustPrepare("$.tracks.items")
	pathDevices    = mustPrepare("$.devices")
	pathTotal      = mustPrepare("$.tracks.total")
	pathTrackCount = mustPrepare("$.track_count")
	pathIsActive   = mustPrepare("$.is_active")
)

func mustPrepare(path string) jsonpath.FilterFunc {
	f, err := jsonpath.Prepare(path)
	if err != nil {
		panic("payload: bad json path " + path + ": " + err.Error())
	}
	return f
}

// Tracks decodes a search result listing. The payload is either a JSON array
// of records or an object wrapping one under "items" or "tracks.items".
func Tracks(raw []byte) []models.Track {
	doc, ok := decode(raw)
	if !ok {
		return nil
	}
	records := list(doc, pathItems, pathTrackItems)
	out := make([]models.Track, 0, len(records))
	for _, r := range records {
		if t, ok := track(r); ok {
			out = append(out, t)
		}
	}
	return out
}

// Track decodes a single now-playing record. A record wrapped under "item"
// is unwrapped first.
func Track(raw []byte) (*models.Track, bool) {
	doc, ok := decode(raw)
	if !ok {
		return nil, false
	}
	if inner, ok := lookup(pathItem, doc); ok {
		if _, isObj := inner.(map[string]any); isObj {
			doc = inner
		}
	}
	t, ok := track(doc)
	if !ok {
		return nil, false
	}
	return &t, true
}

// Playlists decodes a playlist listing.
func Playlists(raw []byte) []models.Playlist {
	doc, ok := decode(raw)
	if !ok {
		return nil
	}
	records := list(doc, pathItems)
	out := make([]models.Playlist, 0, len(records))
	for _, r := range records {
		name := lookupString(pathName, r)
		if name == "" {
			continue
		}
		count, ok := lookupInt(pathTotal, r)
		if !ok {
			count, _ = lookupInt(pathTrackCount, r)
		}
		out = append(out, models.Playlist{
			Name:       name,
			TrackCount: count,
			URI:        lookupString(pathURI, r),
		})
	}
	return out
}

// Devices decodes a device listing, either a bare array or {"devices": [...]}.
func Devices(raw []byte) []models.Device {
	doc, ok := decode(raw)
	if !ok {
		return nil
	}
	records := list(doc, pathDevices)
	out := make([]models.Device, 0, len(records))
	for _, r := range records {
		name := lookupString(pathName, r)
		if name == "" {
			continue
		}
		active, _ := lookupValue[bool](pathIsActive, r)
		out = append(out, models.Device{
			ID:       lookupString(pathID, r),
			Name:     name,
			Type:     lookupString(pathType, r),
			IsActive: active,
		})
	}
	return out
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func decode(raw []byte) (any, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, false
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, false
	}
	if doc == nil {
		return nil, false
	}
	return doc, true
}

// list returns doc itself when it is an array, otherwise the first wrapper
// path that resolves to an array.
func list(doc any, wrappers ...jsonpath.FilterFunc) []any {
	if arr, ok := doc.([]any); ok {
		return arr
	}
	for _, w := range wrappers {
		if arr, ok := lookupValue[[]any](w, doc); ok {
			return arr
		}
	}
	return nil
}

func track(r any) (models.Track, bool) {
	name := lookupString(pathName, r)
	if name == "" {
		return models.Track{}, false
	}
	album := lookupString(pathAlbum, r)
	if album == "" {
		album = lookupString(pathAlbumName, r)
	}
	duration, _ := lookupInt(pathDuration, r)
	return models.Track{
		Name:       name,
		Artists:    artists(r),
		Album:      album,
		DurationMS: duration,
		URI:        lookupString(pathURI, r),
		Type:       lookupString(pathType, r),
	}, true
}

// artists accepts ["A", "B"], [{"name": "A"}], "A" under artists, or "A"
// under artist.
func artists(r any) []string {
	v, ok := lookup(pathArtists, r)
	if !ok {
		if s := lookupString(pathArtist, r); s != "" {
			return []string{s}
		}
		return nil
	}
	switch a := v.(type) {
	case string:
		if a == "" {
			return nil
		}
		return []string{a}
	case []any:
		out := make([]string, 0, len(a))
		for _, e := range a {
			switch x := e.(type) {
			case string:
				if x != "" {
					out = append(out, x)
				}
			case map[string]any:
				if n := lookupString(pathName, x); n != "" {
					out = append(out, n)
				}
			}
		}
		return out
	}
	return nil
}

func lookup(f jsonpath.FilterFunc, v any) (any, bool) {
	out, err := f(v)
	if err != nil || out == nil {
		return nil, false
	}
	return out, true
}

func lookupValue[T any](f jsonpath.FilterFunc, v any) (T, bool) {
	var zero T
	out, ok := lookup(f, v)
	if !ok {
		return zero, false
	}
	t, ok := out.(T)
	return t, ok
}

func lookupString(f jsonpath.FilterFunc, v any) string {
	s, _ := lookupValue[string](f, v)
	return s
}

func lookupInt(f jsonpath.FilterFunc, v any) (int, bool) {
	n, ok := lookupValue[float64](f, v)
	if !ok {
		return 0, false
	}
	return int(n), true
}
