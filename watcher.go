package main

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// shaderWatcher reports the names of shader programs whose sources changed on disk.
// Reloading must happen on the GL thread, so the watcher only forwards names.
type shaderWatcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}

	mu sync.Mutex
	// pending holds distinct names in the order they first changed
	pending []string
	err     error
}

func newShaderWatcher(dir string) (*shaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	sw := &shaderWatcher{
		watcher: w,
		done:    make(chan struct{}),
	}
	go sw.run()
	return sw, nil
}

func (sw *shaderWatcher) run() {
	defer close(sw.done)
	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			name, ok := shaderName(event.Name)
			if !ok {
				continue
			}
			sw.note(name)
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			sw.fail(err)
		}
	}
}

func (sw *shaderWatcher) note(name string) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if !slices.Contains(sw.pending, name) {
		sw.pending = append(sw.pending, name)
	}
}

// fail keeps the first error until the next drain.
func (sw *shaderWatcher) fail(err error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if sw.err == nil {
		sw.err = err
	}
}

// drain returns the distinct shader names reported since the last call without blocking.
func (sw *shaderWatcher) drain() ([]string, error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	names, err := sw.pending, sw.err
	sw.pending, sw.err = nil, nil
	return names, err
}

func (sw *shaderWatcher) Close() error {
	err := sw.watcher.Close()
	<-sw.done
	return err
}

// shaderName maps "dir/bloom.fs" to "bloom".
func shaderName(path string) (string, bool) {
	ext := filepath.Ext(path)
	switch ext {
	case ".vs", ".fs":
		return strings.TrimSuffix(filepath.Base(path), ext), true
	}
	return "", false
}
