// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package catalog

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval coalesces the multiple write events editors emit
// per save.
const debounceInterval = 100 * time.Millisecond

// Watcher hot-reloads a file-backed catalog when the file changes.
type Watcher struct {
	catalog *Catalog
	path    string
	fw      *fsnotify.Watcher
	done    chan struct{}
	mu      sync.Mutex
	stopped bool
}

// NewWatcher creates a watcher for the catalog file at path. The
// parent directory is watched rather than the file itself, so editors
// that replace the file (rename-over-write) keep triggering reloads.
func NewWatcher(catalog *Catalog, path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}
	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch catalog dir: %w", err)
	}

	return &Watcher{
		catalog: catalog,
		path:    absPath,
		fw:      fw,
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go w.loop()
}

// loop consumes fsnotify events until Stop.
func (w *Watcher) loop() {
	var lastReload time.Time

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if time.Since(lastReload) < debounceInterval {
				continue
			}
			lastReload = time.Now()

			if err := w.catalog.LoadFile(w.path); err != nil {
				// Keep serving the previous snapshot.
				w.catalog.log.Warn().Err(err).Str("path", w.path).Msg("Catalog reload failed; keeping previous snapshot")
			} else {
				w.catalog.log.Info().Str("path", w.path).Msg("Catalog reloaded")
			}

		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}

		case <-w.done:
			return
		}
	}
}

// Stop ends the watch loop and releases the underlying watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
