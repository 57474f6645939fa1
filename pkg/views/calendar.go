package views

import (
	"sort"
	"time"

	"tableflip.dev/advcontrol/pkg/resource"
)

// Calendar colors.
const (
	EventDotColor = "#1e40af"
	SelectedColor = "#1e40af"
)

// Mark is the decoration of one calendar date.
type Mark struct {
	HasEvent      bool
	DotColor      string
	Selected      bool
	SelectedColor string
}

// MarkDates marks every date that has a deadline, then merges the selection
// into selected's entry. selected is always present in the result.
func MarkDates(deadlines []resource.Deadline, selected string) map[string]Mark {
	marks := make(map[string]Mark, len(deadlines)+1)
	for _, d := range deadlines {
		day, ok := d.CalendarDate()
		if !ok {
			continue
		}
		marks[day] = Mark{HasEvent: true, DotColor: EventDotColor}
	}
	if selected != "" {
		m := marks[selected]
		m.Selected = true
		m.SelectedColor = SelectedColor
		marks[selected] = m
	}
	return marks
}

// DayAgenda returns the deadlines on day sorted by time. Equal times keep
// their fetch order.
func DayAgenda(deadlines []resource.Deadline, day string) []resource.Deadline {
	out := make([]resource.Deadline, 0)
	for _, d := range deadlines {
		if date, ok := d.CalendarDate(); ok && date == day {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

// Upcoming returns deadlines dated from `from` through `days` days later,
// ordered by date then time.
func Upcoming(deadlines []resource.Deadline, from time.Time, days int) []resource.Deadline {
	if days < 0 {
		return []resource.Deadline{}
	}
	start := truncateDay(from)
	end := start.AddDate(0, 0, days)

	out := make([]resource.Deadline, 0)
	for _, d := range deadlines {
		t, ok := d.Day()
		if !ok || t.Before(start) || t.After(end) {
			continue
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, _ := out[i].CalendarDate()
		dj, _ := out[j].CalendarDate()
		if di != dj {
			return di < dj
		}
		return out[i].Time < out[j].Time
	})
	return out
}

// MonthCounts counts deadlines per day of month for the month containing
// `month`. Days without deadlines are absent.
func MonthCounts(deadlines []resource.Deadline, month time.Time) map[int]int {
	counts := make(map[int]int)
	y, m, _ := month.Date()
	for _, d := range deadlines {
		t, ok := d.Day()
		if !ok {
			continue
		}
		if ty, tm, td := t.Date(); ty == y && tm == m {
			counts[td]++
		}
	}
	return counts
}

// truncateDay drops the clock, keeping the calendar date in UTC so it compares
// with Deadline.Day.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
