package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/advcontrol/pkg/resource"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestDiskWatchEmitsSessionChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Put(ctx, "token", "abc"); err != nil {
		t.Fatalf("put token: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventSessionChanged {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for session change event")
		}
	}
}

func TestDiskWatchEmitsSnapshotKind(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	if err := p.PutSnapshot(resource.KindCases, []resource.Case{{ID: "1"}}); err != nil {
		t.Fatalf("put snapshot: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type != EventSnapshotChanged {
				continue
			}
			if evt.Kind != resource.KindCases {
				t.Fatalf("expected kind %q, got %q", resource.KindCases, evt.Kind)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for snapshot event")
		}
	}
}

func TestEventThrottleCoalesces(t *testing.T) {
	throttle := newEventThrottle(20 * time.Millisecond)
	defer throttle.Stop()

	got := make(chan Event, 8)
	send := func(ev Event) { got <- ev }
	for i := 0; i < 5; i++ {
		throttle.Enqueue(Event{Type: EventSessionChanged}, send)
	}

	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("expected a flushed event")
	}
	select {
	case ev := <-got:
		t.Fatalf("expected a single coalesced event, got extra %+v", ev)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestEventThrottleStopSuppressesFlush(t *testing.T) {
	throttle := newEventThrottle(10 * time.Millisecond)
	got := make(chan Event, 1)
	throttle.Enqueue(Event{Type: EventSessionChanged}, func(ev Event) { got <- ev })
	throttle.Stop()

	select {
	case ev := <-got:
		t.Fatalf("expected no event after stop, got %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}
