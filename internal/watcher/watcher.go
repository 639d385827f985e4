// Package watcher reports changes to the task file, coalescing the burst of
// events one save produces into a single notification.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long the file must stay quiet before a change is
// reported. A save truncates and then writes, which is two events.
const settleDelay = 100 * time.Millisecond

// Change describes what happened to the watched file.
type Change int

const (
	// Modified means the file was created or written.
	Modified Change = iota
	// Removed means the file was deleted or renamed away.
	Removed
)

func (c Change) String() string {
	if c == Removed {
		return "removed"
	}
	return "modified"
}

// Watcher reports changes to one file. Its directory is watched rather than
// the file itself, so the file may appear, be replaced or vanish.
type Watcher struct {
	fsw    *fsnotify.Watcher
	target string
	notify func(Change)
	delay  time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending Change
}

// New watches the file at path. The file need not exist yet, but its
// directory must.
func New(path string, notify func(Change)) (*Watcher, error) {
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return &Watcher{fsw: fsw, target: target, notify: notify, delay: settleDelay}, nil
}

// Run delivers changes until ctx is canceled or the watcher is closed.
// Watch errors go to onErr when it is non-nil.
func (w *Watcher) Run(ctx context.Context, onErr func(error)) {
	defer w.stopTimer()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if change, ok := w.classify(event); ok {
				w.schedule(change)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if onErr != nil {
				onErr(err)
			}
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// classify maps an event on the target file to a Change. Events on other
// files in the directory and attribute changes are dropped.
func (w *Watcher) classify(event fsnotify.Event) (Change, bool) {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != w.target {
		return 0, false
	}
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return Removed, true
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		return Modified, true
	}
	return 0, false
}

// schedule restarts the settle timer. The latest change in a burst wins.
func (w *Watcher) schedule(change Change) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = change
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	change := w.pending
	w.mu.Unlock()
	w.notify(change)
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}
