package history

import (
	"os"
	"runtime"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	if runtime.GOOS == "darwin" {
		t.Skip("data dir is not overridable via XDG on darwin")
	}

	tmpDir := t.TempDir()

	originalXDG := os.Getenv("XDG_DATA_HOME")
	os.Setenv("XDG_DATA_HOME", tmpDir)

	store, err := Open()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
		os.Setenv("XDG_DATA_HOME", originalXDG)
	})

	return store
}

func TestOpen(t *testing.T) {
	store := setupTestStore(t)

	if store == nil {
		t.Fatal("Open() returned nil")
	}
}

func TestRecordAndList(t *testing.T) {
	store := setupTestStore(t)

	entry := NewCheckEntry("/home/u/.Brewfile", []string{"wget"}, []string{"htop"})
	if err := store.Record(entry); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	entries, err := store.List(10)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	got := entries[0]
	if got.Kind != KindCheck {
		t.Errorf("Kind = %s, want check", got.Kind)
	}
	if got.Manifest != "/home/u/.Brewfile" {
		t.Errorf("Manifest = %s, want /home/u/.Brewfile", got.Manifest)
	}
	if got.Clean {
		t.Error("entry with drift should not be clean")
	}
}

func TestListNewestFirst(t *testing.T) {
	store := setupTestStore(t)

	first := NewCheckEntry("/a", nil, nil)
	first.Timestamp = time.Now().Add(-time.Hour)
	second := NewCheckEntry("/b", nil, nil)

	if err := store.Record(first); err != nil {
		t.Fatal(err)
	}
	if err := store.Record(second); err != nil {
		t.Fatal(err)
	}

	entries, err := store.List(10)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Manifest != "/b" {
		t.Errorf("newest entry should come first, got %s", entries[0].Manifest)
	}
}

func TestListLimit(t *testing.T) {
	store := setupTestStore(t)

	for i := 0; i < 5; i++ {
		entry := NewLintEntry(10, 0)
		entry.Timestamp = time.Now().Add(time.Duration(i) * time.Second)
		if err := store.Record(entry); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := store.List(3)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 entries with limit, got %d", len(entries))
	}
}

func TestLast(t *testing.T) {
	store := setupTestStore(t)

	// Empty store
	entry, err := store.Last()
	if err != nil {
		t.Fatalf("Last() error: %v", err)
	}
	if entry != nil {
		t.Error("Last() on empty store should return nil")
	}

	recorded := NewLintEntry(4, 1)
	if err := store.Record(recorded); err != nil {
		t.Fatal(err)
	}

	entry, err = store.Last()
	if err != nil {
		t.Fatalf("Last() error: %v", err)
	}
	if entry == nil {
		t.Fatal("Last() returned nil after record")
	}
	if entry.Kind != KindLint || entry.Failures != 1 {
		t.Errorf("Last() = %+v, want recorded lint entry", entry)
	}
}

func TestClear(t *testing.T) {
	store := setupTestStore(t)

	if err := store.Record(NewCheckEntry("/a", nil, nil)); err != nil {
		t.Fatal(err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count() error: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 entries after Clear(), got %d", count)
	}
}

func TestPrune(t *testing.T) {
	store := setupTestStore(t)

	old := NewCheckEntry("/old", nil, nil)
	old.Timestamp = time.Now().Add(-48 * time.Hour)
	recent := NewCheckEntry("/recent", nil, nil)

	if err := store.Record(old); err != nil {
		t.Fatal(err)
	}
	if err := store.Record(recent); err != nil {
		t.Fatal(err)
	}

	deleted, err := store.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune() error: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Prune() deleted %d entries, want 1", deleted)
	}

	entries, err := store.List(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Manifest != "/recent" {
		t.Errorf("expected only the recent entry to survive, got %+v", entries)
	}
}

func TestEntrySummary(t *testing.T) {
	tests := []struct {
		name  string
		entry *Entry
		want  string
	}{
		{"clean check", NewCheckEntry("/b", nil, nil), "in sync"},
		{"drifted check", NewCheckEntry("/b", []string{"a"}, []string{"b", "c"}), "1 only in manifest, 2 only on system"},
		{"clean lint", NewLintEntry(7, 0), "7 files clean"},
		{"failed lint", NewLintEntry(7, 2), "2 of 7 files failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}
