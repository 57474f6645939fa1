package printers

import (
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/advcontrol/pkg/resource"
	"tableflip.dev/advcontrol/pkg/views"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month containing selected. Days with deadlines are
// bold, the selected day is underlined.
func (pp *PrettyPrint) Calendar(selected time.Time, counts map[int]int) {
	days := DaysIn(selected)
	count := make([]int, days)
	for day, n := range counts {
		if day >= 1 && day <= days {
			count[day-1] = n
		}
	}
	pp.PrintMonthCount(selected, count, selected.Day())
}

// PrintMonthCount prints a month grid. count[i] is the number of deadlines on
// day i+1; highlight is a day of month or 0.
func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int, highlight int) {
	out := pp.w()
	d := StartDay(then)

	tf := pp.c(color.FgWhite, color.Italic)

	m := then.Month().String() + " " + then.Format("2006")
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(out, "%s%s\n", strings.Repeat(" ", mid), m)
	_, _ = pp.c(color.Faint).Fprintln(out, "Su Mo Tu We Th Fr Sa")

	// Pad out the start of the month.
	_, _ = out.Write([]byte(strings.Repeat("   ", int(d))))

	l1 := pp.c(color.Faint, color.FgWhite)
	l2 := pp.c(color.Bold, color.FgHiBlue)
	sel := pp.c(color.Bold, color.Underline, color.FgHiWhite)

	days := DaysIn(then)
	for i := 0; i < days; i++ {
		p := l1
		if i < len(count) && count[i] > 0 {
			p = l2
		}
		if i+1 == highlight {
			p = sel
		}
		if pp.plain && i+1 == highlight {
			_, _ = p.Fprintf(out, "%2d]", i+1)
		} else if pp.plain && i < len(count) && count[i] > 0 {
			_, _ = p.Fprintf(out, "%2d*", i+1)
		} else {
			_, _ = p.Fprintf(out, "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = out.Write([]byte("\n"))
		}
	}
	_, _ = out.Write([]byte("\n\n"))
}

// Agenda prints deadlines with their time and type badge.
func (pp *PrettyPrint) Agenda(title string, deadlines []resource.Deadline, withDate bool) {
	pp.TitleWithCount(title, len(deadlines), "deadline")
	if len(deadlines) == 0 {
		pp.None()
		return
	}
	out := pp.w()
	t := pp.c(color.Bold)
	f := pp.c(color.Faint)
	for _, d := range deadlines {
		when := d.Time
		if withDate {
			day, ok := d.CalendarDate()
			if !ok {
				day = d.Date
			}
			when = day + " " + d.Time
		}
		_, _ = f.Fprintf(out, "%s ", when)
		_, _ = out.Write([]byte(pp.Badge(views.DeadlineType(d.Type)) + " "))
		_, _ = t.Fprintln(out, d.Title)
		if d.Description != "" {
			_, _ = f.Fprintln(out, pp.wrap(d.Description, 6))
		}
	}
	pp.NewLine()
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
