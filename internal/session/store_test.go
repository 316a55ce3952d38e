package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/splitkit/splitkit/internal/layout"
	"github.com/splitkit/splitkit/internal/session"
)

func tempStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStoreAt(filepath.Join(t.TempDir(), "session.toml"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := tempStore(t)

	l, pane1 := layout.WithInitialPane()
	pane2 := l.Split(pane1, layout.Horizontal)
	l.Split(pane2, layout.Vertical)

	if err := store.Save(l.Snapshot()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap == nil {
		t.Fatal("Expected a snapshot back")
	}

	restored := layout.FromSnapshot(snap)
	window := layout.Size{Width: 800, Height: 600}
	want := l.Compute(window)
	got := restored.Compute(window)
	if len(got) != len(want) {
		t.Fatalf("Restored %d panes, want %d", len(got), len(want))
	}
}

func TestLoadMissingFileStartsFresh(t *testing.T) {
	store := tempStore(t)

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Missing file must not error: %v", err)
	}
	if snap != nil {
		t.Errorf("Expected nil snapshot for missing file, got %+v", snap)
	}
}

func TestLoadCorruptFileStartsFresh(t *testing.T) {
	store := tempStore(t)
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.Path(), []byte("{{{ not toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Corrupt file must not error: %v", err)
	}
	if snap != nil {
		t.Errorf("Expected nil snapshot for corrupt file, got %+v", snap)
	}
}

func TestSaveNilSnapshotRecordsEmpty(t *testing.T) {
	store := tempStore(t)

	if err := store.Save(nil); err != nil {
		t.Fatalf("Save(nil) failed: %v", err)
	}
	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap != nil {
		t.Errorf("Expected empty session, got %+v", snap)
	}
}

func TestClear(t *testing.T) {
	store := tempStore(t)

	l, _ := layout.WithInitialPane()
	if err := store.Save(l.Snapshot()); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("Clear must remove the state file")
	}
	// Clearing twice is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("Second Clear must not error: %v", err)
	}
}
