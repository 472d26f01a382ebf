// Package watch reports changes to scripts in the config directory.
package watch

import (
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/drake/tally/internal/logger"
)

// DefaultDebounce is how long a batch of changes must be quiet before it is reported.
const DefaultDebounce = 200 * time.Millisecond

// Watcher monitors one directory and calls OnChange with the files that
// were written or created, once writes have settled.
type Watcher struct {
	dir      string
	exts     []string
	debounce time.Duration
	onChange func(paths []string)

	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	done    chan struct{}

	mu      sync.Mutex
	running bool
}

// New creates a watcher for files in dir ending in one of exts.
func New(dir string, exts []string, debounce time.Duration, onChange func(paths []string)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		dir:      dir,
		exts:     exts,
		debounce: debounce,
		onChange: onChange,
		watcher:  fsWatcher,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. It is a no-op if already running.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.running = true
	go w.loop()
	return nil
}

// Stop ends watching and waits for the event goroutine to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return w.watcher.Close()
	}
	w.running = false
	close(w.stopCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) matches(name string) bool {
	return slices.Contains(w.exts, filepath.Ext(name))
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-w.stopCh:
			timer.Stop()
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 || !w.matches(ev.Name) {
				continue
			}
			pending[ev.Name] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.GetLogger().Warn().Err(err).Str("dir", w.dir).Msg("Watcher error")

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			clear(pending)
			w.onChange(paths)
		}
	}
}
