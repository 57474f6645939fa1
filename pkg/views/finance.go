package views

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"tableflip.dev/advcontrol/pkg/resource"
)

// Totals are the three financial aggregates. They are independent sums, a
// record can count towards none or several of them.
type Totals struct {
	Receivable decimal.Decimal `json:"receivable"`
	Payable    decimal.Decimal `json:"payable"`
	Overdue    decimal.Decimal `json:"overdue"`
}

// ComputeTotals sums pending receivables, pending payables and everything
// overdue regardless of direction.
func ComputeTotals(records []resource.FinancialRecord) Totals {
	t := Totals{Receivable: decimal.Zero, Payable: decimal.Zero, Overdue: decimal.Zero}
	for _, r := range records {
		if r.Direction == resource.Receivable && r.Status == resource.Pending {
			t.Receivable = t.Receivable.Add(r.Amount)
		}
	}
	for _, r := range records {
		if r.Direction == resource.Payable && r.Status == resource.Pending {
			t.Payable = t.Payable.Add(r.Amount)
		}
	}
	for _, r := range records {
		if r.Status == resource.Overdue {
			t.Overdue = t.Overdue.Add(r.Amount)
		}
	}
	return t
}

// Filter selects financial records by direction for list rendering.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterReceivable Filter = "receivable"
	FilterPayable    Filter = "payable"
)

// ParseFilter accepts the English names and the backend codes.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "todos":
		return FilterAll, nil
	case "receivable", "receber":
		return FilterReceivable, nil
	case "payable", "pagar":
		return FilterPayable, nil
	}
	return "", fmt.Errorf("unknown filter %q (expected all, receivable or payable)", s)
}

// FilterRecords applies f to records. FilterAll returns every record.
func FilterRecords(records []resource.FinancialRecord, f Filter) []resource.FinancialRecord {
	var want resource.Direction
	switch f {
	case FilterReceivable:
		want = resource.Receivable
	case FilterPayable:
		want = resource.Payable
	default:
		return append([]resource.FinancialRecord(nil), records...)
	}
	out := make([]resource.FinancialRecord, 0, len(records))
	for _, r := range records {
		if r.Direction == want {
			out = append(out, r)
		}
	}
	return out
}
