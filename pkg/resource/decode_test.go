package resource

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecodeListSkipsMalformedRecords(t *testing.T) {
	data := []byte(`[
		{"id":"1","tipo":"receber","descricao":"Honorários","valor":100,"categoria":"honorários","status":"pendente","data_vencimento":"2024-03-10"},
		{"id":"2","tipo":"pagar","valor":"not-a-number"},
		{"id":"3","tipo":"pagar","descricao":"Custas","valor":"40.50","categoria":"custas","status":"pago","data_vencimento":"2024-03-01"}
	]`)

	records, skipped, err := DecodeList[FinancialRecord](data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skipped != 1 {
		t.Fatalf("expected 1 skipped record, got %d", skipped)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if !records[1].Amount.Equal(decimal.RequireFromString("40.50")) {
		t.Fatalf("unexpected amount %s", records[1].Amount)
	}
	if records[0].Direction != Receivable || records[0].Status != Pending {
		t.Fatalf("unexpected codes %q/%q", records[0].Direction, records[0].Status)
	}
}

func TestDecodeListRejectsNonArray(t *testing.T) {
	if _, _, err := DecodeList[Case]([]byte(`{"detail":"nope"}`)); err == nil {
		t.Fatalf("expected error for non-array payload")
	}
}

func TestDecodeDashboardDropsBadAlerts(t *testing.T) {
	data := []byte(`{
		"prazos_hoje": 2,
		"prazos_semana": 5,
		"tarefas_pendentes": 3,
		"processos_ativos": 4,
		"contas_receber_mes": 1500.25,
		"contas_atrasadas": 80,
		"alertas": [
			{"tipo":"prazo","mensagem":"HOJE: Audiência","urgencia":"alta"},
			"garbage",
			{"tipo":"prazo","mensagem":"Em 5 dias: Reunião","urgencia":"baixa"}
		]
	}`)

	stats, skipped, err := DecodeDashboard(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skipped != 1 {
		t.Fatalf("expected 1 skipped alert, got %d", skipped)
	}
	if stats.DeadlinesToday != 2 || stats.ActiveCases != 4 {
		t.Fatalf("unexpected counters %+v", stats)
	}
	if !stats.ReceivableThisMonth.Equal(decimal.RequireFromString("1500.25")) {
		t.Fatalf("unexpected receivable %s", stats.ReceivableThisMonth)
	}
	if len(stats.Alerts) != 2 || stats.Alerts[1].Urgency != UrgencyLow {
		t.Fatalf("unexpected alerts %+v", stats.Alerts)
	}
}

func TestDeadlineCalendarDate(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
		ok   bool
	}{
		"plain":     {in: "2024-03-01", want: "2024-03-01", ok: true},
		"timestamp": {in: "2024-03-01T14:00:00", want: "2024-03-01", ok: true},
		"garbage":   {in: "amanhã", ok: false},
		"empty":     {in: "", ok: false},
	}
	for name, tc := range cases {
		got, ok := Deadline{Date: tc.in}.CalendarDate()
		if ok != tc.ok || got != tc.want {
			t.Fatalf("%s: CalendarDate(%q) = %q, %v; want %q, %v", name, tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
