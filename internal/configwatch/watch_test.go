package configwatch

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWatch_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imcore.toml")
	if err := os.WriteFile(path, []byte("nav_wrap = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path, quietLogger())
	if err != nil {
		t.Fatalf("Expected Watch to start, got %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("nav_wrap = true\nhover_delay = 0.25\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Updates():
			// A write may be delivered as several events; wait for the full file.
			if cfg.NavWrap && cfg.HoverDelay == 0.25 {
				return
			}
		case <-deadline:
			t.Fatal("Expected a reloaded config within 5s")
		}
	}
}

func TestWatch_InvalidFileSkipped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "imcore.toml")
	if err := os.WriteFile(path, []byte("nav_wrap = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	// Replace by rename so the watcher never sees a truncated file.
	tmp := filepath.Join(dir, "imcore.toml.tmp")
	if err := os.WriteFile(tmp, []byte("key_repeat_rate = 0.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
	// An unrelated file in the same directory is ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("nav_wrap = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Updates():
		t.Errorf("Expected no update for an invalid or unrelated file, got %+v", cfg)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatch_CloseClosesUpdates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imcore.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := Watch(path, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Expected a clean close, got %v", err)
	}
	if _, ok := <-w.Updates(); ok {
		t.Error("Expected Updates to be closed")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	if _, err := Watch(filepath.Join(t.TempDir(), "nope", "imcore.toml"), quietLogger()); err == nil {
		t.Error("Expected an error for a missing directory")
	}
}
