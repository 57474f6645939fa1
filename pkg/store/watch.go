package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"tableflip.dev/advcontrol/pkg/logging"
	"tableflip.dev/advcontrol/pkg/resource"
)

// EventType describes the nature of a store change notification.
type EventType int

const (
	// EventSessionChanged indicates the token or user slot was written or
	// erased, usually by another advcontrol process.
	EventSessionChanged EventType = iota

	// EventSnapshotChanged indicates a cached collection was replaced.
	EventSnapshotChanged
)

func (t EventType) String() string {
	switch t {
	case EventSessionChanged:
		return "session"
	case EventSnapshotChanged:
		return "snapshot"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Event is emitted by Disk.Watch when underlying storage changes.
type Event struct {
	Type EventType
	// Kind is set for snapshot events.
	Kind resource.Kind
}

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel to avoid blocking the watcher. The channel is closed once
// ctx is done or the watcher encounters an unrecoverable error.
func (p *Disk) Watch(ctx context.Context) (<-chan Event, error) {
	for _, bucket := range []string{sessionBucket, snapshotBucket} {
		if err := os.MkdirAll(filepath.Join(p.basePath, bucket), 0o700); err != nil {
			return nil, fmt.Errorf("store: ensure %s directory: %w", bucket, err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				logging.Warnf("store: watcher close: %v", err)
			}
		})
	}

	dirs, err := collectDirs(p.basePath)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		watched := make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			watched[dir] = struct{}{}
		}

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Consumer is busy; the next refresh picks the change up.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Debugf("store: watcher: %v", err)
				throttle.Enqueue(Event{Type: EventSessionChanged}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}

				if evt.Op&fsnotify.Create == fsnotify.Create {
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						absDir := filepath.Clean(evt.Name)
						if _, found := watched[absDir]; !found {
							if err := watcher.Add(absDir); err != nil {
								logging.Warnf("store: watch %s: %v", absDir, err)
							} else {
								watched[absDir] = struct{}{}
							}
						}
						continue
					}
				}

				if ev, ok := p.eventForPath(evt.Name); ok {
					throttle.Enqueue(ev, send)
				}
			}
		}
	}()

	return events, nil
}

// collectDirs walks base and returns all directories that should be watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() || path == base {
			return nil
		}
		if d.Name() == stagingDir {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	return dirs, err
}

// eventForPath classifies a diskv file path into a store event.
func (p *Disk) eventForPath(path string) (Event, bool) {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." {
		return Event{}, false
	}
	parts := strings.Split(rel, string(os.PathSeparator))
	if len(parts) != 2 {
		return Event{}, false
	}
	switch parts[0] {
	case sessionBucket:
		return Event{Type: EventSessionChanged}, true
	case snapshotBucket:
		return Event{Type: EventSnapshotChanged, Kind: resource.Kind(parts[1])}, true
	}
	return Event{}, false
}

// eventThrottle coalesces rapid change notifications so a save that touches
// both slots is reported once.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[Event]struct{}
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[Event]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev] = struct{}{}
	if t.timer == nil && !t.stopped {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

// flush sends while holding the lock so nothing is sent after Stop returns.
// send must not block.
func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	pending := t.pending
	t.pending = make(map[Event]struct{})
	t.timer = nil
	if t.stopped {
		return
	}
	for ev := range pending {
		send(ev)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
