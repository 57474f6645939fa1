package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/advcontrol/pkg/printers"
	"tableflip.dev/advcontrol/pkg/resource"
	"tableflip.dev/advcontrol/pkg/tui/theme"
	"tableflip.dev/advcontrol/pkg/views"
)

func (m *Model) empty(what string) string {
	return m.theme.Panel.Faint.Render("no " + what)
}

func (m *Model) dashboardView() string {
	stats := m.set.Dashboard.Stats()
	p := m.theme.Panel
	rows := [][2]string{
		{"Deadlines today", fmt.Sprint(stats.DeadlinesToday)},
		{"Deadlines this week", fmt.Sprint(stats.DeadlinesWeek)},
		{"Pending tasks", fmt.Sprint(stats.PendingTasks)},
		{"Active cases", fmt.Sprint(stats.ActiveCases)},
		{"Receivable this month", printers.Money(stats.ReceivableThisMonth)},
		{"Overdue", printers.Money(stats.OverdueAmount)},
	}
	var counters strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&counters, "%s %s\n", p.Label.Render(fmt.Sprintf("%-22s", r[0])), r[1])
	}

	var alerts strings.Builder
	alerts.WriteString(p.Title.Render("Alerts") + "\n")
	list := m.set.Dashboard.Alerts()
	if len(list) == 0 {
		alerts.WriteString(m.empty("alerts"))
	}
	for _, a := range list {
		fmt.Fprintf(&alerts, "%s %s %s\n", theme.Badge("●", a.Presentation.Color), theme.Badge(a.Presentation.Label, a.Presentation.Color), a.Message)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		p.Frame.Render(strings.TrimRight(counters.String(), "\n")),
		strings.TrimRight(alerts.String(), "\n"),
	)
}

func (m *Model) agendaView() string {
	a := m.set.Agenda
	selected, err := time.Parse(resource.DateLayout, a.Selected())
	if err != nil {
		selected = time.Now()
	}
	cal := m.theme.Panel.Frame.Render(m.calendar(selected, a.Marks()))

	var day strings.Builder
	day.WriteString(m.theme.Panel.Title.Render(selected.Format("Monday, Jan 2 2006")) + "\n")
	list := a.Day()
	if len(list) == 0 {
		day.WriteString(m.empty("deadlines"))
	}
	for _, d := range list {
		t := views.DeadlineType(d.Type)
		fmt.Fprintf(&day, "%s %s %s\n", m.theme.Panel.Faint.Render(d.Time), theme.Badge(t.Label, t.Color), d.Title)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cal, "  ", strings.TrimRight(day.String(), "\n"))
}

// calendar renders the month containing selected. Days with deadlines get a
// dot color; the selected day is drawn on the selection color.
func (m *Model) calendar(selected time.Time, marks map[string]views.Mark) string {
	first := time.Date(selected.Year(), selected.Month(), 1, 0, 0, 0, 0, time.UTC)
	days := printers.DaysIn(first)

	var b strings.Builder
	b.WriteString(m.theme.Panel.Title.Render(first.Format("January 2006")) + "\n")
	b.WriteString(m.theme.Panel.Faint.Render("Su Mo Tu We Th Fr Sa") + "\n")
	b.WriteString(strings.Repeat("   ", int(first.Weekday())))
	for d := 1; d <= days; d++ {
		date := first.AddDate(0, 0, d-1)
		cell := fmt.Sprintf("%2d", d)
		mark, ok := marks[date.Format(resource.DateLayout)]
		style := lipgloss.NewStyle()
		if ok && mark.HasEvent {
			style = style.Bold(true).Foreground(lipgloss.Color(mark.DotColor))
		}
		if ok && mark.Selected {
			style = style.Reverse(true)
		}
		b.WriteString(style.Render(cell))
		if date.Weekday() == time.Saturday {
			b.WriteString("\n")
		} else if d < days {
			b.WriteString(" ")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) casesView() string {
	rows := m.set.Cases.Rows()
	if len(rows) == 0 {
		return m.empty("cases")
	}
	var b strings.Builder
	b.WriteString(m.theme.Panel.Title.Render(fmt.Sprintf("%d active", m.set.Cases.ActiveCount())) + "\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%-40s %-16s %s %s\n",
			truncate(r.Title, 40), truncate(r.Area, 16),
			theme.Badge(r.StatusView.Label, r.StatusView.Color),
			theme.Badge(r.PriorityView.Label, r.PriorityView.Color))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) financeView() string {
	f := m.set.Finance
	t := f.Totals()
	p := m.theme.Panel
	totals := p.Frame.Render(strings.Join([]string{
		p.Label.Render(fmt.Sprintf("%-11s", "Receivable")) + " " + printers.Money(t.Receivable),
		p.Label.Render(fmt.Sprintf("%-11s", "Payable")) + " " + printers.Money(t.Payable),
		p.Label.Render(fmt.Sprintf("%-11s", "Overdue")) + " " + printers.Money(t.Overdue),
	}, "\n"))

	var b strings.Builder
	b.WriteString(p.Title.Render(fmt.Sprintf("Records (%s)", f.Filter())) + "\n")
	rows := f.Rows()
	if len(rows) == 0 {
		b.WriteString(m.empty("records"))
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %-32s %14s %s %s\n",
			p.Faint.Render(r.DueDate), truncate(r.Description, 32), printers.Money(r.Amount),
			theme.Badge(r.DirectionView.Label, r.DirectionView.Color),
			theme.Badge(r.StatusView.Label, r.StatusView.Color))
	}
	return lipgloss.JoinVertical(lipgloss.Left, totals, strings.TrimRight(b.String(), "\n"))
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 1 {
		return string(r[:limit])
	}
	return string(r[:limit-1]) + "…"
}
