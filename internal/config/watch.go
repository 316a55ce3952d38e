package config

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the configuration file when it changes on disk.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Watch begins watching the config file and invokes onChange with
// each successfully reloaded configuration. Editors replace files
// rather than writing in place, so the parent directory is watched
// and events are filtered by name.
func Watch(path string, onChange func(*UserConfig)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	w := &Watcher{path: path, watcher: fw, done: make(chan struct{})}
	go w.run(onChange)
	return w, nil
}

func (w *Watcher) run(onChange func(*UserConfig)) {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Debug("config file changed", "op", event.Op.String())
			cfg, err := LoadUserConfig()
			if err != nil {
				log.Warn("failed to reload config", "err", err)
				continue
			}
			onChange(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn("config watcher error", "err", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
