// Package watcher reports changes to the path shown in the main panel.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/entrhq/slidemenu/pkg/logging"
	"github.com/fsnotify/fsnotify"
)

var debugLog *logging.Logger

func init() {
	var err error
	debugLog, err = logging.NewLogger("watcher")
	if err != nil {
		debugLog.Warnf("Failed to initialize watcher logger, using stderr fallback: %v", err)
	}
}

// Watcher calls onChange, debounced, whenever the watched path changes.
//
// A file is watched through its parent directory so that editors which
// replace the file on save are still seen.
type Watcher struct {
	path      string
	dir       string
	file      string // empty when watching a directory
	onChange  func()
	debouncer *Debouncer

	fs        *fsnotify.Watcher
	closeOnce sync.Once
	done      chan struct{}
}

// New creates a watcher for path. It does not start watching until Start.
func New(path string, debouncer *Debouncer, onChange func()) (*Watcher, error) {
	if onChange == nil {
		return nil, errors.New("watcher: onChange callback is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", abs, err)
	}
	if debouncer == nil {
		debouncer = NewDebouncer(0)
	}

	w := &Watcher{
		path:      abs,
		dir:       abs,
		onChange:  onChange,
		debouncer: debouncer,
		done:      make(chan struct{}),
	}
	if !info.IsDir() {
		w.dir = filepath.Dir(abs)
		w.file = filepath.Base(abs)
	}
	return w, nil
}

// Path returns the absolute watched path.
func (w *Watcher) Path() string {
	return w.path
}

// Start begins delivering events until ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fs.Add(w.dir); err != nil {
		fs.Close()
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.fs = fs
	debugLog.Debugf("watching %s", w.path)

	go w.loop(ctx)
	return nil
}

func (w *Watcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.Close()
			return
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				debugLog.Debugf("change: %s", event)
				w.debouncer.Trigger(w.onChange)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			debugLog.Warnf("watch error: %v", err)
		}
	}
}

// relevant filters events down to the watched file, or ignores pure chmods
// when watching a directory.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	if w.file == "" {
		return true
	}
	return filepath.Base(event.Name) == w.file
}

// Close stops the watcher and drops any pending callback. Safe to call twice.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.debouncer.Cancel()
		if w.fs != nil {
			err = w.fs.Close()
		}
	})
	return err
}
