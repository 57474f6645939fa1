package screens

import (
	"context"

	"golang.org/x/sync/errgroup"

	"tableflip.dev/advcontrol/pkg/refresh"
	"tableflip.dev/advcontrol/pkg/resource"
)

// Refresher is what every screen exposes to bulk operations.
type Refresher interface {
	Kind() resource.Kind
	Refresh(ctx context.Context) bool
	Loading() bool
	Err() error
	Notice() string
	Dismiss()
	Unavailable() error
}

// Set holds one of each screen, all reading from the same source.
type Set struct {
	Agenda    *Agenda
	Cases     *Cases
	Finance   *Finance
	Dashboard *Dashboard
}

func NewSet(src Source, cache Cache) *Set {
	return &Set{
		Agenda:    NewAgenda(src, cache),
		Cases:     NewCases(src, cache),
		Finance:   NewFinance(src, cache),
		Dashboard: NewDashboard(src, cache),
	}
}

// All lists the screens in display order.
func (s *Set) All() []Refresher {
	return []Refresher{s.Dashboard, s.Agenda, s.Cases, s.Finance}
}

// Result is the outcome of one screen's refresh.
type Result struct {
	Kind    resource.Kind
	Ran     bool
	Err     error
	Notice  string
	Records int
}

// RefreshAll reloads every screen concurrently. One screen failing does not
// stop the others; each outcome is reported separately.
func (s *Set) RefreshAll(ctx context.Context) []Result {
	all := s.All()
	results := make([]Result, len(all))
	var g errgroup.Group
	for i, scr := range all {
		i, scr := i, scr
		g.Go(func() error {
			ran := scr.Refresh(ctx)
			results[i] = Result{Kind: scr.Kind(), Ran: ran, Err: scr.Err(), Notice: scr.Notice(), Records: s.count(scr.Kind())}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (s *Set) count(kind resource.Kind) int {
	switch kind {
	case resource.KindDeadlines:
		return len(s.Agenda.ctrl.Data())
	case resource.KindCases:
		return len(s.Cases.ctrl.Data())
	case resource.KindFinancial:
		return len(s.Finance.ctrl.Data())
	case resource.KindDashboard:
		return len(s.Dashboard.ctrl.Data().Alerts)
	}
	return 0
}

var _ Refresher = (*screen[int])(nil)

// States reports each screen's controller state.
func (s *Set) States() map[resource.Kind]refresh.State {
	return map[resource.Kind]refresh.State{
		resource.KindDeadlines: s.Agenda.ctrl.State(),
		resource.KindCases:     s.Cases.ctrl.State(),
		resource.KindFinancial: s.Finance.ctrl.State(),
		resource.KindDashboard: s.Dashboard.ctrl.State(),
	}
}
