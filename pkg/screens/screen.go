// Package screens binds a refresh controller and the derived views for each
// part of the app: agenda, cases, finance and dashboard.
package screens

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tableflip.dev/advcontrol/pkg/api"
	"tableflip.dev/advcontrol/pkg/logging"
	"tableflip.dev/advcontrol/pkg/refresh"
	"tableflip.dev/advcontrol/pkg/resource"
)

// Source is the subset of api.Client the screens read from.
type Source interface {
	Deadlines(ctx context.Context) ([]resource.Deadline, error)
	Cases(ctx context.Context) ([]resource.Case, error)
	Financial(ctx context.Context) ([]resource.FinancialRecord, error)
	Dashboard(ctx context.Context) (resource.DashboardStats, error)
}

// Cache keeps the last good collection per kind. Nil disables caching.
type Cache interface {
	PutSnapshot(kind resource.Kind, v any) error
	LoadSnapshot(kind resource.Kind, v any) (time.Time, bool, error)
}

// Messages shown when a refresh fails.
const (
	MsgSessionExpired = "session expired, sign in again"
	msgCouldNotLoad   = "could not load %s"
)

// screen is the part every screen shares.
type screen[T any] struct {
	kind resource.Kind
	ctrl *refresh.Controller[T]

	mu sync.Mutex
}

func newScreen[T any](kind resource.Kind, fetch refresh.FetchFunc[T], cache Cache) *screen[T] {
	s := &screen[T]{kind: kind, ctrl: refresh.New(fetch)}
	if cache == nil {
		return s
	}
	var cached T
	at, ok, err := cache.LoadSnapshot(kind, &cached)
	switch {
	case err != nil:
		logging.Warnf("screens: %s cache: %v", kind, err)
	case ok:
		s.ctrl.Seed(cached, at)
	}
	s.ctrl.OnChange(func(v T) {
		if err := cache.PutSnapshot(kind, v); err != nil {
			logging.Warnf("screens: save %s cache: %v", kind, err)
		}
	})
	return s
}

// Kind returns the collection the screen shows.
func (s *screen[T]) Kind() resource.Kind { return s.kind }

// Refresh reloads the data unless a reload is already running.
func (s *screen[T]) Refresh(ctx context.Context) bool {
	return s.ctrl.Trigger(ctx)
}

// View returns the raw data, loading flag and state.
func (s *screen[T]) View() refresh.View[T] {
	return s.ctrl.Snapshot()
}

// Loading reports whether a refresh is in flight.
func (s *screen[T]) Loading() bool {
	return s.ctrl.Loading()
}

// Notice is the dismissable message for a failed refresh, empty otherwise.
func (s *screen[T]) Notice() string {
	return NoticeFor(s.kind, s.ctrl.Err())
}

// Dismiss hides the current notice.
func (s *screen[T]) Dismiss() {
	s.ctrl.Dismiss()
}

// Err returns the last refresh error.
func (s *screen[T]) Err() error {
	return s.ctrl.Err()
}

// Unavailable returns a *LoadError when the last refresh failed and nothing
// was ever loaded or cached, nil otherwise.
func (s *screen[T]) Unavailable() error {
	v := s.ctrl.Snapshot()
	if v.State != refresh.Failed || !v.FetchedAt.IsZero() {
		return nil
	}
	return &LoadError{Kind: s.kind, Notice: NoticeFor(s.kind, v.Err), Err: v.Err}
}

// LoadError is a failed refresh with no data to show.
type LoadError struct {
	Kind   resource.Kind
	Notice string
	Err    error
}

func (e *LoadError) Error() string { return e.Notice }

func (e *LoadError) Unwrap() error { return e.Err }

// NoticeFor turns a refresh error into what the user is told.
func NoticeFor(kind resource.Kind, err error) string {
	if err == nil {
		return ""
	}
	if api.IsUnauthorized(err) {
		return MsgSessionExpired
	}
	return fmt.Sprintf(msgCouldNotLoad, Title(kind))
}

// Title names a collection for people.
func Title(kind resource.Kind) string {
	switch kind {
	case resource.KindDeadlines:
		return "deadlines"
	case resource.KindCases:
		return "cases"
	case resource.KindFinancial:
		return "financial records"
	case resource.KindDashboard:
		return "dashboard"
	default:
		return string(kind)
	}
}
