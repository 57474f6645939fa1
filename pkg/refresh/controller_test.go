package refresh

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestTriggerSuccess(t *testing.T) {
	c := New(func(context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})
	if c.State() != Idle {
		t.Fatalf("expected idle, got %s", c.State())
	}

	var notified []string
	c.OnChange(func(v []string) { notified = v })

	if !c.Trigger(context.Background()) {
		t.Fatalf("expected trigger to fetch")
	}
	v := c.Snapshot()
	if v.State != Success || v.Loading || len(v.Data) != 2 || v.Err != nil {
		t.Fatalf("unexpected view %+v", v)
	}
	if v.FetchedAt.IsZero() {
		t.Fatalf("expected fetch time")
	}
	if len(notified) != 2 {
		t.Fatalf("expected listener to see new data, got %v", notified)
	}
}

func TestTriggerWhileLoadingIsNoop(t *testing.T) {
	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})
	c := New(func(context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		close(started)
		<-release
		return 1, nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Trigger(context.Background())
	}()
	<-started

	if !c.Loading() {
		t.Fatalf("expected loading while fetch is unresolved")
	}
	if c.Trigger(context.Background()) {
		t.Fatalf("second trigger should be a no-op")
	}
	close(release)
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected exactly one fetch, got %d", got)
	}
	if c.State() != Success {
		t.Fatalf("expected success, got %s", c.State())
	}
}

func TestFailedRefreshKeepsData(t *testing.T) {
	fail := false
	boom := errors.New("boom")
	c := New(func(context.Context) ([]int, error) {
		if fail {
			return nil, boom
		}
		return []int{1, 2, 3}, nil
	})
	c.Trigger(context.Background())

	fail = true
	if !c.Trigger(context.Background()) {
		t.Fatalf("expected trigger to run")
	}
	v := c.Snapshot()
	if v.Loading || v.State != Failed {
		t.Fatalf("expected failed and not loading, got %+v", v)
	}
	if !errors.Is(v.Err, boom) {
		t.Fatalf("expected error to be recorded, got %v", v.Err)
	}
	if len(v.Data) != 3 {
		t.Fatalf("expected previous data to survive, got %v", v.Data)
	}

	// Re-enterable after failure.
	fail = false
	c.Trigger(context.Background())
	if c.State() != Success || c.Err() != nil {
		t.Fatalf("expected recovery, got %s %v", c.State(), c.Err())
	}
}

func TestSuccessReplacesData(t *testing.T) {
	round := 0
	c := New(func(context.Context) ([]int, error) {
		round++
		if round == 1 {
			return []int{1, 2, 3}, nil
		}
		return []int{9}, nil
	})
	c.Trigger(context.Background())
	c.Trigger(context.Background())
	if got := c.Data(); len(got) != 1 || got[0] != 9 {
		t.Fatalf("expected full replacement, got %v", got)
	}
}

func TestSeed(t *testing.T) {
	c := New(func(context.Context) (string, error) {
		return "", errors.New("offline")
	})
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c.Seed("cached", at)

	v := c.Snapshot()
	if v.State != Idle || v.Data != "cached" || !v.FetchedAt.Equal(at) {
		t.Fatalf("unexpected seeded view %+v", v)
	}

	c.Trigger(context.Background())
	if c.Data() != "cached" || c.State() != Failed {
		t.Fatalf("expected stale cached data after failed refresh, got %q %s", c.Data(), c.State())
	}

	c.Dismiss()
	if c.State() != Idle || c.Err() != nil {
		t.Fatalf("expected dismiss to clear failure")
	}
}

func TestSeedIgnoredAfterFetch(t *testing.T) {
	c := New(func(context.Context) (string, error) { return "fresh", nil })
	c.Trigger(context.Background())
	c.Seed("stale", time.Time{})
	if c.Data() != "fresh" {
		t.Fatalf("seed must not overwrite fetched data, got %q", c.Data())
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{Idle: "idle", Loading: "loading", Success: "success", Failed: "failed"} {
		if s.String() != want {
			t.Fatalf("expected %q, got %q", want, s.String())
		}
	}
}
