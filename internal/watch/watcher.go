// Package watch monitors the gastos data directory for external changes.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	// DefaultDebounceInterval is the default interval to wait after the last change before triggering a reload.
	DefaultDebounceInterval = 100 * time.Millisecond
)

// ReloadFunc is called when the store has changed on disk.
type ReloadFunc func() error

// LogFunc is called to log messages.
type LogFunc func(format string, args ...interface{})

// Watcher monitors the data directory and triggers a reload when one of the
// store files changes.
type Watcher struct {
	dir              string
	files            map[string]bool
	reloadFn         ReloadFunc
	logFn            LogFunc
	debounceInterval time.Duration

	watcher   *fsnotify.Watcher
	stopChan  chan struct{}
	doneChan  chan struct{}
	closeOnce sync.Once

	// debounce state
	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher creates a watcher for the given data directory. files lists the
// store file names to react to; other files in the directory are ignored.
// logFn can be nil for no logging.
func NewWatcher(dir string, files []string, reloadFn ReloadFunc, logFn LogFunc) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logFn == nil {
		logFn = func(format string, args ...interface{}) {} // no-op
	}

	watched := make(map[string]bool, len(files))
	for _, f := range files {
		watched[f] = true
	}

	return &Watcher{
		dir:              dir,
		files:            watched,
		reloadFn:         reloadFn,
		logFn:            logFn,
		debounceInterval: DefaultDebounceInterval,
		watcher:          fsWatcher,
		stopChan:         make(chan struct{}),
		doneChan:         make(chan struct{}),
	}, nil
}

// SetDebounceInterval overrides the debounce interval. Must be called before
// Start.
func (w *Watcher) SetDebounceInterval(d time.Duration) {
	w.debounceInterval = d
}

// Start begins watching for file changes.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.dir); err != nil {
		return err
	}

	go w.processEvents()

	return nil
}

// Close stops the watcher and cleans up resources.
func (w *Watcher) Close() {
	w.closeOnce.Do(func() {
		close(w.stopChan)
		w.watcher.Close()

		// Cancel any pending debounce timer
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()

		// Wait for event processing to finish
		<-w.doneChan
	})
}

// processEvents handles filesystem events.
func (w *Watcher) processEvents() {
	defer close(w.doneChan)

	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logFn("Watch error: %v", err)
		}
	}
}

// handleEvent processes a single filesystem event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	filename := filepath.Base(event.Name)

	if !w.files[filename] {
		return
	}

	// The file store lands via rename, the sqlite store via write.
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	w.logFn("File change detected: %s", filename)

	w.scheduleReload()
}

// scheduleReload debounces reloads so a burst of writes triggers one.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.debounceInterval, func() {
		if err := w.reloadFn(); err != nil {
			w.logFn("Reload failed: %v", err)
		}
	})
}
