package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tableflip.dev/advcontrol/pkg/resource"
	"tableflip.dev/advcontrol/pkg/screens"
	"tableflip.dev/advcontrol/pkg/views"
)

func TestMoney(t *testing.T) {
	tests := map[string]string{
		"1500.5":  "R$ 1.500,50",
		"0":       "R$ 0,00",
		"1234567": "R$ 1.234.567,00",
		"10.005":  "R$ 10,01",
	}
	for in, want := range tests {
		if got := Money(decimal.RequireFromString(in)); got != want {
			t.Fatalf("Money(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestTint(t *testing.T) {
	if got := Tint("#dc2626"); got == "#dc2626" || !strings.HasPrefix(got, "#f") {
		t.Fatalf("expected a light tint, got %s", got)
	}
	if got := Tint("nope"); got != views.NeutralColor {
		t.Fatalf("expected neutral fallback, got %s", got)
	}
}

func TestPlainOutputForBuffers(t *testing.T) {
	var buf bytes.Buffer
	pp := New(&buf)
	pp.Agenda("Friday", []resource.Deadline{{
		Type: resource.DeadlineTypeHearing, Title: "Hearing at court", Date: "2024-03-01", Time: "09:30",
		Description: "Bring the signed power of attorney",
	}}, false)

	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no escape codes writing to a buffer: %q", out)
	}
	for _, want := range []string{"Friday - 1 deadline", "09:30 [Hearing] Hearing at court", "      Bring the signed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestCalendarMarksDays(t *testing.T) {
	var buf bytes.Buffer
	pp := New(&buf)
	// March 2024 starts on a Friday.
	pp.Calendar(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), map[int]int{1: 2, 12: 1})

	out := buf.String()
	if !strings.Contains(out, "March 2024") {
		t.Fatalf("missing month header:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("   ", 5)+" 1* 2 ") {
		t.Fatalf("expected first week to be padded and day 1 marked:\n%s", out)
	}
	if !strings.Contains(out, " 5]") || !strings.Contains(out, "12*") {
		t.Fatalf("expected selection and event marks:\n%s", out)
	}
}

func TestFinanceAndCases(t *testing.T) {
	var buf bytes.Buffer
	pp := New(&buf)
	rec := resource.FinancialRecord{ID: "1", Direction: resource.Receivable, Status: resource.Pending, Amount: decimal.NewFromInt(100), Description: "Fees", DueDate: "2024-03-10"}
	pp.Finance(views.ComputeTotals([]resource.FinancialRecord{rec}), views.FilterAll, []screens.FinanceRow{{
		FinancialRecord: rec,
		DirectionView:   views.Direction(rec.Direction),
		StatusView:      views.PaymentStatus(rec.Status),
	}})
	pp.Cases(nil)

	out := buf.String()
	for _, want := range []string{"Receivable", "R$ 100,00", "[Pending]", "Records (all) - 1 record", "Cases - 0 cases", "none"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestDashboard(t *testing.T) {
	var buf bytes.Buffer
	pp := New(&buf)
	pp.Dashboard(resource.DashboardStats{DeadlinesToday: 3, OverdueAmount: decimal.NewFromInt(50)},
		views.SortAlerts([]resource.Alert{{Message: "Hearing tomorrow", Urgency: resource.UrgencyHigh}}))

	out := buf.String()
	for _, want := range []string{"Deadlines today", "R$ 50,00", "* [High] Hearing tomorrow"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
