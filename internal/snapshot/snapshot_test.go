package snapshot_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/playctx/internal/checkers"
	"github.com/go-ports/playctx/internal/models"
	"github.com/go-ports/playctx/internal/snapshot"
)

func TestWriteRead_HappyPath(t *testing.T) {
	c := qt.New(t)

	path := filepath.Join(t.TempDir(), "nested", "dir", snapshot.FileName)
	in := &snapshot.Snapshot{
		SearchResults:    []models.Track{{Name: "One"}, {Name: "Two"}},
		CurrentTrack:     &models.Track{Name: "Now", Artists: []string{"Someone"}},
		LastPlaylists:    []models.Playlist{{Name: "Chill", TrackCount: 3}},
		DeviceContext:    &models.Device{Name: "Kitchen", IsActive: true},
		ConversationMode: true,
		Timestamp:        1700000000000,
	}

	c.Assert(snapshot.Write(path, in), qt.IsNil)

	out, err := snapshot.Read(path)
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.DeepEquals, in)

	// No temp files are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	c.Assert(err, qt.IsNil)
	c.Assert(entries, qt.HasLen, 1)
}

func TestWrite_UsesWireFieldNames(t *testing.T) {
	c := qt.New(t)

	path := filepath.Join(t.TempDir(), snapshot.FileName)
	c.Assert(snapshot.Write(path, &snapshot.Snapshot{
		LastPlaylists:    []models.Playlist{{Name: "Chill", TrackCount: 3}},
		ConversationMode: false,
		Timestamp:        42,
	}), qt.IsNil)

	data, err := os.ReadFile(path)
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), checkers.JSONPathEquals("$.timestamp"), float64(42))
	c.Assert(string(data), checkers.JSONPathEquals("$.conversationMode"), false)
	c.Assert(string(data), checkers.JSONPathEquals("$.lastPlaylists[0].track_count"), float64(3))
}

func TestRead_FailurePath(t *testing.T) {
	c := qt.New(t)

	c.Run("missing file wraps ErrNotExist", func(c *qt.C) {
		_, err := snapshot.Read(filepath.Join(t.TempDir(), "absent.json"))
		c.Assert(errors.Is(err, os.ErrNotExist), qt.IsTrue)
	})

	c.Run("corrupt json", func(c *qt.C) {
		path := filepath.Join(t.TempDir(), snapshot.FileName)
		c.Assert(os.WriteFile(path, []byte("{not json"), 0o600), qt.IsNil)
		_, err := snapshot.Read(path)
		c.Assert(err, qt.ErrorMatches, "snapshot.Read: decode .*")
	})
}

func TestRemove(t *testing.T) {
	c := qt.New(t)

	path := filepath.Join(t.TempDir(), snapshot.FileName)
	c.Assert(os.WriteFile(path, []byte("{}"), 0o600), qt.IsNil)

	c.Assert(snapshot.Remove(path), qt.IsNil)
	_, err := os.Stat(path)
	c.Assert(errors.Is(err, os.ErrNotExist), qt.IsTrue)

	// Removing again is not an error.
	c.Assert(snapshot.Remove(path), qt.IsNil)
}

func TestFresh(t *testing.T) {
	c := qt.New(t)

	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{"just captured", 0, true},
		{"59 minutes old", 59 * time.Minute, true},
		{"exactly one hour old", time.Hour, false},
		{"two hours old", 2 * time.Hour, false},
		{"captured in the future", -5 * time.Minute, true},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			s := &snapshot.Snapshot{Timestamp: now.Add(-tc.age).UnixMilli()}
			c.Assert(s.Fresh(now, time.Hour), qt.Equals, tc.want)
		})
	}
}
