package source

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWatcherMatches(t *testing.T) {
	tmpDir := t.TempDir()
	w, err := NewWatcher([]string{filepath.Join(tmpDir, "**", "*.csv")}, 0, quietLogger())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Stop()

	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join(tmpDir, "a.csv"), true},
		{filepath.Join(tmpDir, "nested", "deep", "b.csv"), true},
		{filepath.Join(tmpDir, "notes.txt"), false},
		{filepath.Join(os.TempDir(), "elsewhere.csv"), false},
	}
	for _, tt := range tests {
		if got := w.Matches(tt.path); got != tt.want {
			t.Errorf("Matches(%s) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWatcherDefaultDebounce(t *testing.T) {
	w, err := NewWatcher([]string{filepath.Join(t.TempDir(), "*.csv")}, 0, nil)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Stop()

	if w.debounce != DefaultDebounce {
		t.Errorf("expected default debounce %v, got %v", DefaultDebounce, w.debounce)
	}
}

func TestWatcherEmitsContentChanges(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "records.csv")
	if err := os.WriteFile(input, []byte("catalogNumber\nT1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher([]string{filepath.Join(tmpDir, "*.csv")}, 50*time.Millisecond, quietLogger())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	// Unrelated files are ignored
	if err := os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(input, []byte("catalogNumber\nT1\nT2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case cs := <-w.Changes():
		if len(cs.Paths) != 1 || cs.Paths[0] != input {
			t.Errorf("expected change to %s, got %v", input, cs.Paths)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change set")
	}
}

func TestWatcherFlushSkipsUnchangedContent(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "records.csv")
	if err := os.WriteFile(input, []byte("catalogNumber\nT1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher([]string{filepath.Join(tmpDir, "*.csv")}, 0, quietLogger())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Stop()

	hash, err := hashFile(input)
	if err != nil {
		t.Fatal(err)
	}
	w.setHash(input, hash)

	w.handleFSEvent(fsnotify.Event{Name: input, Op: fsnotify.Write})
	w.flushPending()
	select {
	case cs := <-w.Changes():
		t.Errorf("unexpected change set %v", cs.Paths)
	default:
	}

	if err := os.WriteFile(input, []byte("catalogNumber\nT2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	w.handleFSEvent(fsnotify.Event{Name: input, Op: fsnotify.Write})
	w.handleFSEvent(fsnotify.Event{Name: filepath.Join(tmpDir, "notes.txt"), Op: fsnotify.Write})
	w.flushPending()
	select {
	case cs := <-w.Changes():
		if len(cs.Paths) != 1 || cs.Paths[0] != input {
			t.Errorf("expected change to %s, got %v", input, cs.Paths)
		}
	default:
		t.Error("expected a change set")
	}

	if err := os.Remove(input); err != nil {
		t.Fatal(err)
	}
	w.handleFSEvent(fsnotify.Event{Name: input, Op: fsnotify.Remove})
	w.flushPending()
	select {
	case cs := <-w.Changes():
		if len(cs.Paths) != 1 {
			t.Errorf("expected removal to be reported, got %v", cs.Paths)
		}
	default:
		t.Error("expected a change set for the removed file")
	}
}
