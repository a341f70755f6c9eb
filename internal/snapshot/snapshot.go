// Package snapshot reads and writes the on-disk copy of conversational context.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-ports/playctx/internal/models"
)

// FileName is the snapshot file name inside the playctx home directory.
const FileName = "context.json"

// Snapshot is the persisted form of the context store.
type Snapshot struct {
	SearchResults    []models.Track    `json:"searchResults"`
	CurrentTrack     *models.Track     `json:"currentTrack"`
	LastPlaylists    []models.Playlist `json:"lastPlaylists"`
	DeviceContext    *models.Device    `json:"deviceContext"`
	ConversationMode bool              `json:"conversationMode"`
	Timestamp        int64             `json:"timestamp"` // epoch milliseconds
}

// CapturedAt returns the capture time.
func (s *Snapshot) CapturedAt() time.Time {
	return time.UnixMilli(s.Timestamp)
}

// Fresh reports whether the snapshot was captured less than ttl before now.
// Snapshots stamped in the future count as fresh.
func (s *Snapshot) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.CapturedAt()) < ttl
}

// Read loads the snapshot at path. A missing file yields an error wrapping
// os.ErrNotExist.
func Read(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var s Snapshot
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return nil, fmt.Errorf("snapshot.Read: decode %s: %w", path, err)
	}
	return &s, nil
}

// Write stores s at path, creating parent directories. The file is written
// to a temporary sibling and renamed into place.
func Write(path string, s *Snapshot) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("snapshot.Write: create dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("snapshot.Write: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("snapshot.Write: temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("snapshot.Write: write: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("snapshot.Write: close: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("snapshot.Write: rename: %w", err)
	}
	return nil
}

// Remove deletes the snapshot at path. A missing file is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
