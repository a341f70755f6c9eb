package service_test

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/playctx/internal/models"
	"github.com/go-ports/playctx/internal/service"
)

func newService(c *qt.C, home string) *service.Service {
	c.TB.Helper()
	svc, err := service.New(home)
	c.Assert(err, qt.IsNil)
	return svc
}

func TestNew_HappyPath(t *testing.T) {
	c := qt.New(t)

	home := filepath.Join(t.TempDir(), "home")
	svc := newService(c, home)
	c.Assert(svc.Home, qt.Equals, home)
	c.Assert(svc.Config.Context.MaxSearchResults, qt.Equals, 10)
	c.Assert(svc.Store.Path(), qt.Equals, filepath.Join(home, "context.json"))

	info, err := os.Stat(home)
	c.Assert(err, qt.IsNil)
	c.Assert(info.IsDir(), qt.IsTrue)
}

func TestNew_FailurePath(t *testing.T) {
	c := qt.New(t)

	home := t.TempDir()
	c.Assert(os.WriteFile(filepath.Join(home, "config.yaml"), []byte("context: [bad"), 0o600), qt.IsNil)

	_, err := service.New(home)
	c.Assert(err, qt.ErrorMatches, "service.New: load config: .*")
}

func TestUpdate_PersistsAcrossInstances(t *testing.T) {
	c := qt.New(t)

	home := t.TempDir()
	svc := newService(c, home)
	c.Assert(svc.Update("search", []byte(`[{"name":"One"},{"name":"Two"},{"name":"Three"}]`)), qt.IsTrue)
	c.Assert(svc.Update("playlists", []byte(`[{"name":"Workout Mix","track_count":3}]`)), qt.IsTrue)
	c.Assert(svc.Update("volume", []byte(`{}`)), qt.IsFalse)
	c.Assert(svc.Close(), qt.IsNil)

	next := newService(c, home)
	got, err := next.Resolve(service.KindNumber, "play #2")
	c.Assert(err, qt.IsNil)
	c.Assert(got.(*models.Track).Name, qt.Equals, "Two")

	got, err = next.Resolve(service.KindPlaylist, "workout")
	c.Assert(err, qt.IsNil)
	c.Assert(got.(*models.Playlist).Name, qt.Equals, "Workout Mix")

	next.ForgetSearch()
	again := newService(c, home)
	got, err = again.Resolve(service.KindReference, "play that")
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.IsNil)
	c.Assert(again.State().LastPlaylists, qt.HasLen, 1)
}

func TestResolve_FailurePath(t *testing.T) {
	c := qt.New(t)

	svc := newService(c, t.TempDir())
	_, err := svc.Resolve("mood", "something upbeat")
	c.Assert(err, qt.ErrorMatches, `Resolve: unknown kind "mood".*`)
}

func TestResolveDevice(t *testing.T) {
	c := qt.New(t)

	svc := newService(c, t.TempDir())
	devices := []models.Device{{Name: "Kitchen"}, {Name: "Office Speaker"}}
	c.Assert(svc.ResolveDevice("office", devices).Name, qt.Equals, "Office Speaker")
	c.Assert(svc.ResolveDevice("garage", devices), qt.IsNil)
}

func TestState_EmptyStoreUsesArrays(t *testing.T) {
	c := qt.New(t)

	st := newService(c, t.TempDir()).State()
	c.Assert(st.SearchResults, qt.IsNotNil)
	c.Assert(st.LastPlaylists, qt.IsNotNil)
	c.Assert(st.CurrentTrack, qt.IsNil)
	c.Assert(st.ConversationMode, qt.IsFalse)
}
