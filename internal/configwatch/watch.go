// Package configwatch reloads an imcore TOML config file when it changes on disk.
package configwatch

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/go-theft-auto/imcore"
)

// Watcher delivers a freshly loaded Config each time the watched file is
// written, created or renamed into place. Invalid files are logged and
// skipped; the last good config stays in effect.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan imcore.Config
	done    chan struct{}
	logger  *slog.Logger
}

// Watch starts watching path. The parent directory is watched so editors
// that save by renaming a temp file are seen.
func Watch(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		watcher: fw,
		updates: make(chan imcore.Config, 1),
		done:    make(chan struct{}),
		logger:  logger.With("subsystem", "configwatch"),
	}
	go w.loop()
	return w, nil
}

// Updates returns the channel of reloaded configs. Only the newest pending
// config is kept, so a slow reader sees the latest file contents.
func (w *Watcher) Updates() <-chan imcore.Config {
	return w.updates
}

// Close stops the watcher and closes the Updates channel.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.updates)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "err", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := imcore.LoadConfig(w.path)
	if err != nil {
		w.logger.Warn("config reload failed", "path", w.path, "err", err)
		return
	}
	w.logger.Info("config reloaded", "path", w.path)

	// Replace a pending update nobody has read yet.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
}
