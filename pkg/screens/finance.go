package screens

import (
	"tableflip.dev/advcontrol/pkg/resource"
	"tableflip.dev/advcontrol/pkg/views"
)

// FinanceRow is a financial record ready for display.
type FinanceRow struct {
	resource.FinancialRecord
	DirectionView views.Presentation `json:"direction_view"`
	StatusView    views.Presentation `json:"status_view"`
}

// Finance is the receivables and payables screen.
type Finance struct {
	*screen[[]resource.FinancialRecord]

	filter views.Filter
}

func NewFinance(src Source, cache Cache) *Finance {
	return &Finance{
		screen: newScreen[[]resource.FinancialRecord](resource.KindFinancial, src.Financial, cache),
		filter: views.FilterAll,
	}
}

func (f *Finance) SetFilter(filter views.Filter) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filter = filter
}

func (f *Finance) Filter() views.Filter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filter
}

// Totals always cover every record regardless of the filter.
func (f *Finance) Totals() views.Totals {
	return views.ComputeTotals(f.ctrl.Data())
}

// Rows lists records matching the current filter.
func (f *Finance) Rows() []FinanceRow {
	records := views.FilterRecords(f.ctrl.Data(), f.Filter())
	rows := make([]FinanceRow, len(records))
	for i, r := range records {
		rows[i] = FinanceRow{
			FinancialRecord: r,
			DirectionView:   views.Direction(r.Direction),
			StatusView:      views.PaymentStatus(r.Status),
		}
	}
	return rows
}
