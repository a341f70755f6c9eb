package convo_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/playctx/internal/checkers"
	"github.com/go-ports/playctx/internal/convo"
	"github.com/go-ports/playctx/internal/models"
	"github.com/go-ports/playctx/internal/snapshot"
)

// clock is a settable time source.
type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newStore(c *qt.C, clk *clock) *convo.Store {
	return convo.New(convo.Options{
		Path: filepath.Join(c.TB.TempDir(), "playctx", snapshot.FileName),
		Now:  clk.now,
	})
}

func populate(s *convo.Store) {
	s.Apply(convo.SearchCompleted{Results: tracks(12)})
	s.Apply(convo.NowPlaying{Track: nowPlaying})
	pls := make([]models.Playlist, 25)
	for i := range pls {
		pls[i] = models.Playlist{Name: "List " + string(rune('A'+i)), TrackCount: i}
	}
	s.Apply(convo.PlaylistsListed{Playlists: pls})
	s.Apply(convo.DevicesListed{Devices: []models.Device{{Name: "A"}, {Name: "B", IsActive: true}}})
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	c := qt.New(t)

	clk := &clock{t: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)}
	s := newStore(c, clk)
	populate(s)
	s.Save()

	clk.t = clk.t.Add(30 * time.Second)
	loaded := convo.New(convo.Options{Path: s.Path(), Now: clk.now})
	loaded.Load()

	c.Assert(loaded.SearchResults(), qt.DeepEquals, tracks(10))
	c.Assert(loaded.Playlists(), qt.HasLen, 20)
	c.Assert(loaded.Playlists()[19].Name, qt.Equals, "List T")
	cur, ok := loaded.CurrentTrack()
	c.Assert(ok, qt.IsTrue)
	c.Assert(cur, qt.DeepEquals, nowPlaying)
	dev, ok := loaded.Device()
	c.Assert(ok, qt.IsTrue)
	c.Assert(dev.Name, qt.Equals, "B")
	c.Assert(loaded.ConversationMode(), qt.IsTrue)
}

func TestSave_WritesSnapshotShape(t *testing.T) {
	c := qt.New(t)

	clk := &clock{t: time.UnixMilli(1760864400000)}
	s := newStore(c, clk)
	s.Apply(convo.PlaylistsListed{Playlists: []models.Playlist{{Name: "Chill", TrackCount: 4}}})
	s.Save()

	data, err := os.ReadFile(s.Path())
	c.Assert(err, qt.IsNil)
	out := string(data)
	c.Assert(out, checkers.JSONPathEquals("$.timestamp"), float64(1760864400000))
	c.Assert(out, checkers.JSONPathEquals("$.conversationMode"), false)
	c.Assert(out, checkers.JSONPathEquals("$.lastPlaylists[0].name"), "Chill")
	c.Assert(out, checkers.JSONPathEquals("$.lastPlaylists[0].track_count"), float64(4))

	snap, err := snapshot.Read(s.Path())
	c.Assert(err, qt.IsNil)
	c.Assert(snap.SearchResults, qt.HasLen, 0)
	c.Assert(snap.SearchResults, qt.IsNotNil)
	c.Assert(snap.CurrentTrack, qt.IsNil)
	c.Assert(snap.DeviceContext, qt.IsNil)
}

func TestLoad_StaleSnapshotIgnored(t *testing.T) {
	c := qt.New(t)

	clk := &clock{t: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)}
	s := newStore(c, clk)
	populate(s)
	s.Save()

	clk.t = clk.t.Add(2 * time.Hour)
	loaded := convo.New(convo.Options{Path: s.Path(), Now: clk.now})
	loaded.Load()

	sum := loaded.Summary()
	c.Assert(sum, qt.DeepEquals, models.Summary{})
}

func TestLoad_CustomTTL(t *testing.T) {
	c := qt.New(t)

	clk := &clock{t: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)}
	s := newStore(c, clk)
	populate(s)
	s.Save()

	clk.t = clk.t.Add(90 * time.Minute)
	loaded := convo.New(convo.Options{Path: s.Path(), Now: clk.now, TTL: 2 * time.Hour})
	loaded.Load()
	c.Assert(loaded.SearchResults(), qt.HasLen, 10)
}

func TestLoad_FailurePath(t *testing.T) {
	c := qt.New(t)

	clk := &clock{t: time.Now()}

	c.Run("missing file", func(c *qt.C) {
		s := newStore(c, clk)
		s.Load()
		c.Assert(s.Summary(), qt.DeepEquals, models.Summary{})
	})

	c.Run("corrupt file", func(c *qt.C) {
		s := newStore(c, clk)
		c.Assert(os.MkdirAll(filepath.Dir(s.Path()), 0o755), qt.IsNil)
		c.Assert(os.WriteFile(s.Path(), []byte(`{"searchResults": [`), 0o600), qt.IsNil)
		s.Load()
		c.Assert(s.Summary(), qt.DeepEquals, models.Summary{})
	})

	c.Run("no path configured", func(c *qt.C) {
		s := convo.New(convo.Options{})
		s.Save()
		s.Load()
		s.Clear()
		c.Assert(s.Summary(), qt.DeepEquals, models.Summary{})
	})
}

func TestSave_FailureIsSwallowed(t *testing.T) {
	c := qt.New(t)

	// Parent "directory" is a regular file, so MkdirAll fails.
	blocker := filepath.Join(t.TempDir(), "blocker")
	c.Assert(os.WriteFile(blocker, []byte("x"), 0o600), qt.IsNil)

	s := convo.New(convo.Options{Path: filepath.Join(blocker, snapshot.FileName)})
	s.Apply(convo.SearchCompleted{Results: tracks(1)})
	s.Save()

	c.Assert(s.SearchResults(), qt.HasLen, 1)
}

func TestClear(t *testing.T) {
	c := qt.New(t)

	clk := &clock{t: time.Now()}
	s := newStore(c, clk)
	populate(s)
	s.Save()

	s.Clear()
	c.Assert(s.Summary(), qt.DeepEquals, models.Summary{})
	_, err := os.Stat(s.Path())
	c.Assert(errors.Is(err, os.ErrNotExist), qt.IsTrue)

	// A second clear with no file present is harmless.
	s.Clear()
}
