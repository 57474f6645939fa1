// Package refresh gates reloads of one screen's data so at most one fetch is
// in flight at a time.
package refresh

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// State of a Controller.
type State int

const (
	Idle State = iota
	Loading
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// FetchFunc loads a full replacement of the controller's data.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// View is a consistent read of a Controller.
type View[T any] struct {
	Data      T
	Loading   bool
	State     State
	Err       error
	FetchedAt time.Time
}

// Controller owns the last fetched value for one screen.
type Controller[T any] struct {
	fetch FetchFunc[T]
	now   func() time.Time

	mu        sync.Mutex
	state     State
	data      T
	err       error
	fetchedAt time.Time
	fetched   bool
	listeners []func(T)
}

func New[T any](fetch FetchFunc[T]) *Controller[T] {
	return &Controller[T]{fetch: fetch, now: time.Now}
}

// Trigger runs one fetch unless one is already running, in which case it
// returns false immediately. On failure the previous data is kept.
func (c *Controller[T]) Trigger(ctx context.Context) bool {
	c.mu.Lock()
	if c.state == Loading {
		c.mu.Unlock()
		return false
	}
	c.state = Loading
	c.mu.Unlock()

	data, err := c.fetch(ctx)

	c.mu.Lock()
	if err != nil {
		c.state = Failed
		c.err = err
		c.mu.Unlock()
		return true
	}
	c.state = Success
	c.err = nil
	c.data = data
	c.fetchedAt = c.now()
	c.fetched = true
	listeners := append([]func(T){}, c.listeners...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(data)
	}
	return true
}

// Seed installs previously cached data without changing state. It is ignored
// once a fetch has succeeded.
func (c *Controller[T]) Seed(data T, fetchedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fetched {
		return
	}
	c.data = data
	c.fetchedAt = fetchedAt
}

// OnChange registers fn to run after every successful fetch.
func (c *Controller[T]) OnChange(fn func(T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Dismiss clears the last error, returning a failed controller to idle.
func (c *Controller[T]) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Failed {
		c.state = Idle
	}
	c.err = nil
}

func (c *Controller[T]) Snapshot() View[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View[T]{
		Data:      c.data,
		Loading:   c.state == Loading,
		State:     c.state,
		Err:       c.err,
		FetchedAt: c.fetchedAt,
	}
}

func (c *Controller[T]) Data() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data
}

func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == Loading
}

func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}
