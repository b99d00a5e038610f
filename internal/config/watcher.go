package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-reads a config file whenever it changes on disk and hands
// the reloaded result to a callback. Editors replace files rather than
// writing in place, so the parent directory is watched and events are
// filtered by name.
type Watcher struct {
	fsw  *fsnotify.Watcher
	path string
	done chan struct{}
}

// Watch starts watching path. onChange is called from the watcher
// goroutine with each successfully reloaded config; parse or validation
// failures are reported through onError and the previous config stays
// in effect.
func Watch(path string, onChange func(*Config), onError func(error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{fsw: fsw, path: path, done: make(chan struct{})}
	go w.loop(onChange, onError)
	return w, nil
}

func (w *Watcher) loop(onChange func(*Config), onError func(error)) {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			cfg, err := LoadFile(w.path)
			if err != nil {
				if onError != nil {
					onError(err)
				}
				continue
			}
			onChange(cfg)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
