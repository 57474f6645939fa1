package agenda

import (
	"context"
	"fmt"
	"io"
	"time"

	"tableflip.dev/advcontrol/pkg/printers"
	"tableflip.dev/advcontrol/pkg/resource"
	"tableflip.dev/advcontrol/pkg/screens"
	"tableflip.dev/advcontrol/pkg/timeutil"
	"tableflip.dev/advcontrol/pkg/views"
)

// Agenda prints the calendar for a month and the deadlines of one day, or
// the deadlines coming up in a window when Next is set.
type Agenda struct {
	Screens *screens.Set
	On      string
	Next    string
	JSON    bool
	Out     io.Writer
	Now     func() time.Time
}

type dayReport struct {
	Date      string                `json:"date"`
	Marks     map[string]views.Mark `json:"marks"`
	Deadlines []resource.Deadline   `json:"deadlines"`
	Notice    string                `json:"notice,omitempty"`
}

type upcomingReport struct {
	From      string              `json:"from"`
	Window    string              `json:"window"`
	Deadlines []resource.Deadline `json:"deadlines"`
	Notice    string              `json:"notice,omitempty"`
}

func (a *Agenda) Do(ctx context.Context) error {
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	scr := a.Screens.Agenda

	day, err := timeutil.ParseDate(a.On, now())
	if err != nil {
		return err
	}
	scr.SetSelected(day.Format(resource.DateLayout))

	var days int
	var label string
	if a.Next != "" {
		if days, label, err = timeutil.ParseWindow(a.Next); err != nil {
			return err
		}
	}

	scr.Refresh(ctx)
	if err := scr.Unavailable(); err != nil {
		return err
	}
	v := scr.View()
	pp := printers.New(a.Out)

	if a.Next != "" {
		upcoming := views.Upcoming(v.Data, day, days)
		if a.JSON {
			return pp.JSON(upcomingReport{From: day.Format(resource.DateLayout), Window: label, Deadlines: upcoming, Notice: scr.Notice()})
		}
		pp.Notice(scr.Notice())
		if scr.Err() != nil {
			pp.Stale(v.FetchedAt)
		}
		pp.Agenda(fmt.Sprintf("Next %s from %s", label, day.Format("Jan 2")), upcoming, true)
		return nil
	}

	if a.JSON {
		return pp.JSON(dayReport{Date: scr.Selected(), Marks: scr.Marks(), Deadlines: scr.Day(), Notice: scr.Notice()})
	}
	pp.Notice(scr.Notice())
	if scr.Err() != nil {
		pp.Stale(v.FetchedAt)
	}
	pp.Calendar(day, scr.MonthCounts())
	pp.Agenda(day.Format("Monday, Jan 2 2006"), scr.Day(), false)
	return nil
}
