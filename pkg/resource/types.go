// Package resource defines the raw collections served by the AdvControl API.
//
// Field names on the wire follow the backend, enum codes are kept verbatim so
// an unknown code survives a round trip and can be shown as-is.
package resource

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind names a remote collection. It doubles as the endpoint path and the
// snapshot cache key.
type Kind string

const (
	KindDeadlines Kind = "prazos"
	KindCases     Kind = "casos"
	KindFinancial Kind = "financeiro"
	KindDashboard Kind = "dashboard"
)

// AllKinds returns every collection the client knows how to fetch.
func AllKinds() []Kind {
	return []Kind{KindDashboard, KindDeadlines, KindCases, KindFinancial}
}

// Path returns the API path for the collection.
func (k Kind) Path() string {
	return "/" + string(k)
}

// DateLayout is the calendar date format used by the API and every derived view.
const DateLayout = "2006-01-02"

// Deadline types known to the backend.
const (
	DeadlineTypeDeadline = "prazo"
	DeadlineTypeHearing  = "audiência"
	DeadlineTypeMeeting  = "reunião"
)

// Deadline is a dated, timed legal obligation or event (prazo).
type Deadline struct {
	ID          string `json:"id"`
	Type        string `json:"tipo"`
	Title       string `json:"titulo"`
	Date        string `json:"data"`
	Time        string `json:"hora"`
	Description string `json:"descricao,omitempty"`
}

// CalendarDate returns the YYYY-MM-DD part of Date. The API sometimes sends a
// full timestamp, everything from the T onwards is dropped. ok is false when
// the remaining value is not a valid calendar date.
func (d Deadline) CalendarDate() (string, bool) {
	day, _, _ := strings.Cut(strings.TrimSpace(d.Date), "T")
	if _, err := time.Parse(DateLayout, day); err != nil {
		return "", false
	}
	return day, true
}

// Day parses CalendarDate in UTC.
func (d Deadline) Day() (time.Time, bool) {
	day, ok := d.CalendarDate()
	if !ok {
		return time.Time{}, false
	}
	t, _ := time.Parse(DateLayout, day)
	return t, true
}

// CaseStatus is the lifecycle code of a case.
type CaseStatus string

const (
	CaseNew        CaseStatus = "novo"
	CaseInProgress CaseStatus = "em andamento"
	CaseWaiting    CaseStatus = "aguardando"
	CaseDone       CaseStatus = "concluído"
)

// Active reports whether the case still counts as an open matter.
func (s CaseStatus) Active() bool {
	return s == CaseNew || s == CaseInProgress
}

// Priority ranks cases.
type Priority string

const (
	PriorityLow    Priority = "baixa"
	PriorityMedium Priority = "media"
	PriorityHigh   Priority = "alta"
)

// Case is a tracked legal matter (caso).
type Case struct {
	ID            string     `json:"id"`
	Title         string     `json:"titulo"`
	Area          string     `json:"area"`
	ProcessNumber string     `json:"numero_processo,omitempty"`
	Status        CaseStatus `json:"status"`
	Priority      Priority   `json:"prioridade"`
	ClientID      string     `json:"cliente_id"`
}

// Direction tells receivables from payables.
type Direction string

const (
	Receivable Direction = "receber"
	Payable    Direction = "pagar"
)

// PaymentStatus is the settlement state of a financial record.
type PaymentStatus string

const (
	Paid    PaymentStatus = "pago"
	Pending PaymentStatus = "pendente"
	Overdue PaymentStatus = "atrasado"
)

// FinancialRecord is a receivable or payable entry (financeiro).
type FinancialRecord struct {
	ID          string          `json:"id"`
	Direction   Direction       `json:"tipo"`
	Description string          `json:"descricao"`
	Amount      decimal.Decimal `json:"valor"`
	Category    string          `json:"categoria"`
	Status      PaymentStatus   `json:"status"`
	DueDate     string          `json:"data_vencimento"`
	PaidDate    string          `json:"data_pagamento,omitempty"`
}

// Urgency is the severity tag of a dashboard alert.
type Urgency string

const (
	UrgencyHigh   Urgency = "alta"
	UrgencyMedium Urgency = "media"
	UrgencyLow    Urgency = "baixa"
)

// Alert is a server-aggregated dashboard notice.
type Alert struct {
	Type    string  `json:"tipo"`
	Message string  `json:"mensagem"`
	Urgency Urgency `json:"urgencia"`
}

// DashboardStats is the aggregate served by /dashboard.
type DashboardStats struct {
	DeadlinesToday      int             `json:"prazos_hoje"`
	DeadlinesWeek       int             `json:"prazos_semana"`
	PendingTasks        int             `json:"tarefas_pendentes"`
	ActiveCases         int             `json:"processos_ativos"`
	ReceivableThisMonth decimal.Decimal `json:"contas_receber_mes"`
	OverdueAmount       decimal.Decimal `json:"contas_atrasadas"`
	Alerts              []Alert         `json:"alertas"`
}
