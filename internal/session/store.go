// Package session persists the split arrangement between runs.
package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/splitkit/splitkit/internal/layout"
)

// sessionFile is the path under the XDG state directory.
const sessionFile = "splitkit/session.toml"

// Store reads and writes layout snapshots to a state file.
type Store struct {
	path string
}

// NewStore resolves the default state file location.
func NewStore() (*Store, error) {
	path, err := xdg.StateFile(sessionFile)
	if err != nil {
		return nil, fmt.Errorf("could not determine session path: %w", err)
	}
	return &Store{path: path}, nil
}

// NewStoreAt uses an explicit file path. Used by tests and the
// --session flag.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the state file location.
func (s *Store) Path() string {
	return s.path
}

// sessionDocument is the on-disk shape of a saved session.
type sessionDocument struct {
	Version int              `toml:"version"`
	Tree    *layout.Snapshot `toml:"tree,omitempty"`
}

const documentVersion = 1

// Save writes snap to the state file. A nil snapshot records an empty
// arrangement rather than deleting the file.
func (s *Store) Save(snap *layout.Snapshot) error {
	data, err := toml.Marshal(sessionDocument{Version: documentVersion, Tree: snap})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Load reads the saved snapshot. A missing file is not an error; it
// returns (nil, nil) so callers start fresh. A corrupt file is logged
// and treated the same way rather than blocking startup.
func (s *Store) Load() (*layout.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var doc sessionDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		log.Warn("discarding corrupt session file", "path", s.path, "err", err)
		return nil, nil
	}
	if doc.Version != documentVersion {
		log.Warn("discarding session with unknown version", "version", doc.Version)
		return nil, nil
	}
	return doc.Tree, nil
}

// Clear removes the saved session, if any.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
