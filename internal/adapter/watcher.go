package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	m "github.com/redress-dev/redress/internal/model"
)

// Watcher invokes a callback after file changes under the watched roots
// settle.
type Watcher interface {
	// Watch blocks until Close is called. Events under skip are ignored.
	Watch(roots []m.Path, skip m.Path, onChange func()) error
	Close() error
}

// FSWatcher watches directory trees with fsnotify, debouncing bursts of
// events into a single callback.
type FSWatcher struct {
	debounce time.Duration
	log      zerolog.Logger
	done     chan struct{}
	once     sync.Once
}

// NewFSWatcher constructs an FSWatcher with the given settle window.
func NewFSWatcher(debounce time.Duration, log zerolog.Logger) *FSWatcher {
	return &FSWatcher{
		debounce: debounce,
		log:      log,
		done:     make(chan struct{}),
	}
}

// Watch registers every directory under the roots and loops on events until
// Close. Each event restarts the debounce timer; onChange fires once the tree
// has been quiet for the whole window.
func (w *FSWatcher) Watch(roots []m.Path, skip m.Path, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	defer func() { _ = watcher.Close() }()

	for _, root := range roots {
		if err := addRecursive(watcher, root, skip); err != nil {
			return fmt.Errorf("failed to watch %s: %w", root, err)
		}
	}

	var timer *time.Timer

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if skip != "" && underDir(event.Name, string(skip)) {
				continue
			}

			if timer != nil {
				timer.Stop()
			}

			timer = time.AfterFunc(w.debounce, onChange)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}

// Close stops the watch loop. Safe to call more than once.
func (w *FSWatcher) Close() error {
	w.once.Do(func() { close(w.done) })

	return nil
}

func addRecursive(watcher *fsnotify.Watcher, root m.Path, skip m.Path) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}

		if !info.IsDir() {
			return nil
		}

		if filepath.Base(path) == ".git" || (skip != "" && underDir(path, string(skip))) {
			return filepath.SkipDir
		}

		return watcher.Add(path)
	})
}

func underDir(path, dir string) bool {
	sep := string(filepath.Separator)

	return path == dir ||
		strings.HasPrefix(path, dir+sep) ||
		strings.Contains(path, sep+dir+sep)
}
