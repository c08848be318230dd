package graph

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatcherOptions configures a Watcher: which directories back the cached
// packages, how long to debounce a burst of filesystem events, and which
// directory names to never descend into.
type WatcherOptions struct {
	Paths          []string
	DebounceMs     int
	IgnorePatterns []string

	// OnInvalidate is called after the cache has been cleared in response
	// to a change, with the path that triggered it. A nil OnInvalidate is
	// fine; the cache clear still happens.
	OnInvalidate func(changedFile string)
}

// Watcher clears a Cache whenever a source file under one of its watched
// paths changes. The engine itself has no timers or background state;
// this is a dev-mode convenience a host process can opt into so a
// long-running inspection server doesn't serve stale nodes after its
// source tree changes underneath it.
type Watcher struct {
	opts          WatcherOptions
	cache         *Cache
	fsw           *fsnotify.Watcher
	debounceTimer *time.Timer
	debounceDelay time.Duration
}

// NewWatcher returns a Watcher that clears cache on changes under
// opts.Paths. A nil cache uses DefaultCache.
func NewWatcher(opts WatcherOptions, cache *Cache) *Watcher {
	if cache == nil {
		cache = DefaultCache
	}
	debounceMs := opts.DebounceMs
	if debounceMs <= 0 {
		debounceMs = 500
	}
	return &Watcher{
		opts:          opts,
		cache:         cache,
		debounceDelay: time.Duration(debounceMs) * time.Millisecond,
	}
}

// Run watches every configured path until stop is closed, clearing the
// cache (debounced) on every .go file change. It returns an error if the
// watcher cannot be created or a path cannot be added; after that it
// blocks until stop is closed or fsnotify closes its channels. Errors
// delivered on fsnotify's Errors channel are ignored.
func (w *Watcher) Run(stop <-chan struct{}) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("typegraph: failed to create watcher: %w", err)
	}
	defer fsw.Close()
	w.fsw = fsw

	for _, path := range w.opts.Paths {
		if err := w.addRecursive(path); err != nil {
			return fmt.Errorf("typegraph: failed to watch %s: %w", path, err)
		}
	}

	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".go") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				w.scheduleInvalidate(event.Name)
			}
		case _, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
		case <-stop:
			return nil
		}
	}
}

func (w *Watcher) scheduleInvalidate(changedFile string) {
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounceDelay, func() {
		w.cache.Clear()
		if w.opts.OnInvalidate != nil {
			w.opts.OnInvalidate(changedFile)
		}
	})
}

func (w *Watcher) addRecursive(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return filepath.Walk(absPath, func(walkPath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if !w.shouldWatch(walkPath) {
			return filepath.SkipDir
		}
		return w.fsw.Add(walkPath)
	})
}

func (w *Watcher) shouldWatch(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	for _, pattern := range w.opts.IgnorePatterns {
		if base == pattern {
			return false
		}
	}
	return true
}
