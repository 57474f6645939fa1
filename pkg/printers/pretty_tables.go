package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/advcontrol/pkg/resource"
	"tableflip.dev/advcontrol/pkg/screens"
	"tableflip.dev/advcontrol/pkg/views"
)

func (pp *PrettyPrint) table() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48
	tbl.Wrap = true
	return tbl
}

// Cases prints the case list.
func (pp *PrettyPrint) Cases(rows []screens.CaseRow) {
	pp.TitleWithCount("Cases", len(rows), "case")
	if len(rows) == 0 {
		pp.None()
		return
	}
	bold := pp.c(color.Bold)
	tbl := pp.table()
	tbl.AddRow(bold.Sprint("TITLE"), bold.Sprint("AREA"), bold.Sprint("PROCESS"), bold.Sprint("STATUS"), bold.Sprint("PRIORITY"))
	for _, r := range rows {
		process := r.ProcessNumber
		if process == "" {
			process = "-"
		}
		tbl.AddRow(r.Title, r.Area, process, pp.Badge(r.StatusView), pp.Badge(r.PriorityView))
	}
	_, _ = fmt.Fprintln(pp.w(), tbl)
	pp.NewLine()
}

// Totals prints the three financial aggregates.
func (pp *PrettyPrint) Totals(t views.Totals) {
	tbl := pp.table()
	tbl.AddRow(pp.c(color.FgGreen).Sprint("Receivable"), Money(t.Receivable))
	tbl.AddRow(pp.c(color.FgRed).Sprint("Payable"), Money(t.Payable))
	tbl.AddRow(pp.c(color.FgHiRed, color.Bold).Sprint("Overdue"), Money(t.Overdue))
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(pp.w(), tbl)
	pp.NewLine()
}

// Finance prints totals followed by the filtered record list.
func (pp *PrettyPrint) Finance(t views.Totals, filter views.Filter, rows []screens.FinanceRow) {
	pp.Title("Totals")
	pp.Totals(t)

	pp.TitleWithCount(fmt.Sprintf("Records (%s)", filter), len(rows), "record")
	if len(rows) == 0 {
		pp.None()
		return
	}
	bold := pp.c(color.Bold)
	tbl := pp.table()
	tbl.AddRow(bold.Sprint("DUE"), bold.Sprint("DESCRIPTION"), bold.Sprint("CATEGORY"), bold.Sprint("AMOUNT"), bold.Sprint("TYPE"), bold.Sprint("STATUS"))
	for _, r := range rows {
		tbl.AddRow(r.DueDate, r.Description, r.Category, Money(r.Amount), pp.Badge(r.DirectionView), pp.Badge(r.StatusView))
	}
	tbl.RightAlign(3)
	_, _ = fmt.Fprintln(pp.w(), tbl)
	pp.NewLine()
}

// Dashboard prints counters and alerts.
func (pp *PrettyPrint) Dashboard(stats resource.DashboardStats, alerts []views.AlertView) {
	pp.Title("Dashboard")
	tbl := pp.table()
	tbl.AddRow("Deadlines today", stats.DeadlinesToday)
	tbl.AddRow("Deadlines this week", stats.DeadlinesWeek)
	tbl.AddRow("Pending tasks", stats.PendingTasks)
	tbl.AddRow("Active cases", stats.ActiveCases)
	tbl.AddRow("Receivable this month", Money(stats.ReceivableThisMonth))
	tbl.AddRow("Overdue", Money(stats.OverdueAmount))
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(pp.w(), tbl)
	pp.NewLine()

	pp.TitleWithCount("Alerts", len(alerts), "alert")
	if len(alerts) == 0 {
		pp.None()
		return
	}
	for _, a := range alerts {
		_, _ = fmt.Fprintf(pp.w(), "%s %s %s\n", pp.Dot(a.Presentation.Color), pp.Badge(a.Presentation), a.Message)
	}
	pp.NewLine()
}
