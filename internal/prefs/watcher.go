package prefs

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/zhubert/healthchat/internal/logger"
)

// Watcher keeps a Signal in sync with a preference file. When the file is
// missing or unreadable the signal falls back to the environment default.
type Watcher struct {
	mu       sync.Mutex
	path     string
	fallback bool
	signal   *Signal
	watcher  *fsnotify.Watcher
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// NewWatcher creates a watcher for path feeding signal. fallback is used
// whenever the file does not provide a value.
func NewWatcher(path string, fallback bool, signal *Signal) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		path:     path,
		fallback: fallback,
		signal:   signal,
		watcher:  fw,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start loads the current file value and begins watching. It is non-blocking.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Warn("PrefsWatcher: failed to create %s: %v", dir, err)
	}
	// Watch the directory so editors that replace the file are still seen
	if err := w.watcher.Add(dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	logger.Debug("PrefsWatcher: watching %s", w.path)

	w.reload()
	go w.run()
	return nil
}

// Stop ends the watch and waits for the goroutine to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		logger.Error("PrefsWatcher: error closing watcher: %v", err)
	}
	logger.Debug("PrefsWatcher: stopped")
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Error("PrefsWatcher error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	f, err := Load(w.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("PrefsWatcher: ignoring unreadable %s: %v", w.path, err)
		}
		w.signal.Set(w.fallback)
		return
	}
	logger.Debug("PrefsWatcher: reduced_motion=%v", f.ReducedMotion)
	w.signal.Set(f.ReducedMotion)
}
