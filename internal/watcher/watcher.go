package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"tuxedo-keyboard-manager/internal/logger"
)

// settle coalesces the burst of events a single save produces
const settle = 150 * time.Millisecond

// Watcher reports changes to a single file. The parent directory is
// watched so replacements done by rename are seen too.
type Watcher struct {
	path      string
	fsw       *fsnotify.Watcher
	logger    logger.Logger
	done      chan struct{}
	closeOnce sync.Once
}

func New(path string, log logger.Logger) (*Watcher, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &Watcher{
		path:   filepath.Clean(path),
		fsw:    fsw,
		logger: log,
		done:   make(chan struct{}),
	}, nil
}

// Run blocks until ctx is cancelled or Shutdown is called, invoking
// onChange from the watcher goroutine after each settled burst of events
func (w *Watcher) Run(ctx context.Context, onChange func()) {
	var timer *time.Timer
	var fire <-chan time.Time

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("Watcher", "config file event", map[string]interface{}{
				"op":   event.Op.String(),
				"path": event.Name,
			})
			if timer == nil {
				timer = time.NewTimer(settle)
			} else {
				timer.Reset(settle)
			}
			fire = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warning("Watcher", "watch error", map[string]interface{}{
				"error": err.Error(),
			})
		case <-fire:
			fire = nil
			onChange()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// Shutdown stops Run and releases the inotify handle
func (w *Watcher) Shutdown() {
	w.closeOnce.Do(func() {
		close(w.done)
		if err := w.fsw.Close(); err != nil {
			w.logger.Warning("Watcher", "close failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	})
}
