package screens

import (
	"time"

	"tableflip.dev/advcontrol/pkg/resource"
	"tableflip.dev/advcontrol/pkg/views"
)

// Agenda is the calendar screen.
type Agenda struct {
	*screen[[]resource.Deadline]

	selected string
	now      func() time.Time
}

func NewAgenda(src Source, cache Cache) *Agenda {
	return &Agenda{
		screen: newScreen[[]resource.Deadline](resource.KindDeadlines, src.Deadlines, cache),
		now:    time.Now,
	}
}

// SetSelected changes the selected date (YYYY-MM-DD).
func (a *Agenda) SetSelected(day string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.selected = day
}

// Selected returns the selected date, today when none was chosen.
func (a *Agenda) Selected() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.selected == "" {
		return a.now().Format(resource.DateLayout)
	}
	return a.selected
}

// Shift moves the selection by days.
func (a *Agenda) Shift(days int) {
	day, err := time.Parse(resource.DateLayout, a.Selected())
	if err != nil {
		day = a.now()
	}
	a.SetSelected(day.AddDate(0, 0, days).Format(resource.DateLayout))
}

func (a *Agenda) Marks() map[string]views.Mark {
	return views.MarkDates(a.ctrl.Data(), a.Selected())
}

// Day is the agenda for the selected date.
func (a *Agenda) Day() []resource.Deadline {
	return views.DayAgenda(a.ctrl.Data(), a.Selected())
}

func (a *Agenda) Upcoming(days int) []resource.Deadline {
	return views.Upcoming(a.ctrl.Data(), a.now(), days)
}

// MonthCounts counts deadlines per day in the selected month.
func (a *Agenda) MonthCounts() map[int]int {
	day, err := time.Parse(resource.DateLayout, a.Selected())
	if err != nil {
		day = a.now()
	}
	return views.MonthCounts(a.ctrl.Data(), day)
}
