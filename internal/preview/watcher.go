package preview

import (
	"context"
	"os"
	"sync"
	"time"
)

// Change represents a detected change to the watched document.
type Change struct {
	Path    string
	Removed bool
}

// WatcherConfig configures the document watcher.
type WatcherConfig struct {
	// Path is the document file to watch.
	Path string

	// Interval is the poll interval (default: 250ms).
	Interval time.Duration
}

// Watcher polls a single document file for modifications.
type Watcher struct {
	config   WatcherConfig
	onChange func(Change)
	mu       sync.Mutex
	running  bool
	stopCh   chan struct{}
	lastMod  time.Time
	existed  bool
}

// NewWatcher creates a new document watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Interval == 0 {
		config.Interval = 250 * time.Millisecond
	}
	return &Watcher{config: config}
}

// OnChange sets the callback for document changes.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start begins watching for changes. It blocks until the context is
// cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	// Record the initial state so startup does not fire a change.
	if info, err := os.Stat(w.config.Path); err == nil {
		w.mu.Lock()
		w.lastMod = info.ModTime()
		w.existed = true
		w.mu.Unlock()
	}

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case <-ticker.C:
			w.check()
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// check compares the file's mtime against the last observation.
func (w *Watcher) check() {
	w.mu.Lock()
	callback := w.onChange
	lastMod := w.lastMod
	existed := w.existed
	w.mu.Unlock()

	info, err := os.Stat(w.config.Path)
	if err != nil {
		if existed {
			w.mu.Lock()
			w.existed = false
			w.mu.Unlock()
			if callback != nil {
				callback(Change{Path: w.config.Path, Removed: true})
			}
		}
		return
	}

	modTime := info.ModTime()
	if !existed || modTime.After(lastMod) {
		w.mu.Lock()
		w.lastMod = modTime
		w.existed = true
		w.mu.Unlock()
		if callback != nil {
			callback(Change{Path: w.config.Path})
		}
	}
}
