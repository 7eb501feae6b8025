package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// HotReloader watches a binary for changes and triggers a callback when a
// newer version is written. Used during development to prompt for restart
// after recompilation.
type HotReloader struct {
	mu          sync.Mutex
	execPath    string
	baseline    time.Time
	watcher     *fsnotify.Watcher
	done        chan struct{}
	onNewBinary func()
}

// NewHotReloader creates a hot reloader that watches the running executable.
// Returns nil if the executable path cannot be determined.
func NewHotReloader() *HotReloader {
	execPath, err := os.Executable()
	if err != nil {
		return nil
	}
	h, err := NewFileReloader(execPath)
	if err != nil {
		return nil
	}
	return h
}

// NewFileReloader creates a hot reloader for an arbitrary file.
func NewFileReloader(path string) (*HotReloader, error) {
	// go build replaces the file, so follow symlinks to the real target
	if realPath, err := filepath.EvalSymlinks(path); err == nil {
		path = realPath
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("hot reload: %w", err)
	}

	return &HotReloader{
		execPath: path,
		baseline: info.ModTime(),
	}, nil
}

// OnNewBinary sets the callback to invoke when a newer binary is detected.
// The callback runs on the watcher goroutine.
func (h *HotReloader) OnNewBinary(callback func()) {
	h.mu.Lock()
	h.onNewBinary = callback
	h.mu.Unlock()
}

// Start begins watching the binary's directory. Watching the directory rather
// than the file survives the file being replaced by rename.
func (h *HotReloader) Start() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.watcher != nil {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("hot reload: creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(h.execPath)); err != nil {
		w.Close()
		return fmt.Errorf("hot reload: watching %s: %w", h.execPath, err)
	}

	h.watcher = w
	h.done = make(chan struct{})
	go h.watchLoop(w, h.done)
	return nil
}

// Stop stops the watcher goroutine.
func (h *HotReloader) Stop() {
	h.mu.Lock()
	w, done := h.watcher, h.done
	h.watcher, h.done = nil, nil
	h.mu.Unlock()

	if w != nil {
		w.Close()
		<-done
	}
}

func (h *HotReloader) watchLoop(w *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != h.execPath {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Chmod) {
				continue
			}
			if h.checkForUpdate() {
				// Only trigger once; ResetBaseline and Start again to re-arm
				h.detach(w)
				w.Close()
				h.fire()
				return
			}
		case _, ok := <-w.Errors:
			if !ok {
				return
			}
		}
	}
}

func (h *HotReloader) detach(w *fsnotify.Watcher) {
	h.mu.Lock()
	if h.watcher == w {
		h.watcher, h.done = nil, nil
	}
	h.mu.Unlock()
}

func (h *HotReloader) fire() {
	h.mu.Lock()
	cb := h.onNewBinary
	h.mu.Unlock()
	if cb != nil {
		cb()
	}
}

// checkForUpdate returns true if the binary has been modified since the baseline.
func (h *HotReloader) checkForUpdate() bool {
	info, err := os.Stat(h.execPath)
	if err != nil {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return info.ModTime().After(h.baseline)
}

// ExecPath returns the path of the watched file.
func (h *HotReloader) ExecPath() string {
	return h.execPath
}

// Baseline returns the modification time changes are compared against.
func (h *HotReloader) Baseline() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.baseline
}

// ResetBaseline updates the baseline to the binary's current mod time.
// Call this when the user declines a restart to avoid repeated prompts.
func (h *HotReloader) ResetBaseline() {
	if info, err := os.Stat(h.execPath); err == nil {
		h.mu.Lock()
		h.baseline = info.ModTime()
		h.mu.Unlock()
	}
}

// Restart replaces the current process with a new instance of the binary.
// Does not return on success.
func (h *HotReloader) Restart() error {
	return syscall.Exec(h.execPath, os.Args, os.Environ())
}
