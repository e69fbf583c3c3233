package image

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// StampFileName is the well-known pull-timestamp file under the system
// temp directory.
const StampFileName = "devkit-style-pull.stamp"

// StampStore persists the epoch of the last successful pull as a plain
// integer. Single local user, single run at a time; no locking.
type StampStore struct {
	path string
}

// NewStampStore creates a store at the default temp-file path.
func NewStampStore() *StampStore {
	return &StampStore{path: filepath.Join(os.TempDir(), StampFileName)}
}

// NewStampStoreAt creates a store at an explicit path (tests).
func NewStampStoreAt(path string) *StampStore {
	return &StampStore{path: path}
}

// Path returns the stamp file path.
func (s *StampStore) Path() string {
	return s.path
}

// Load returns the last pull time. ok is false when the stamp is absent
// or unreadable; a corrupt stamp is treated as absent so the next run
// repairs it with a fresh pull.
func (s *StampStore) Load() (last time.Time, ok bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return time.Time{}, false
	}
	epoch, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(epoch, 0), true
}

// Save writes the pull time. Called only after a successful pull.
func (s *StampStore) Save(t time.Time) error {
	data := strconv.FormatInt(t.Unix(), 10) + "\n"
	return os.WriteFile(s.path, []byte(data), 0644)
}

// Clear removes the stamp, forcing the next run to pull.
func (s *StampStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
