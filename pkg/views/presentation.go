package views

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"tableflip.dev/advcontrol/pkg/resource"
)

// NeutralColor is used for any code without a mapping.
const NeutralColor = "#64748b"

// Palette.
const (
	colorBlue   = "#3b82f6"
	colorAmber  = "#f59e0b"
	colorPurple = "#8b5cf6"
	colorGreen  = "#10b981"
	colorRed    = "#dc2626"
)

// Presentation is a display label and a hex color.
type Presentation struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

func fallback(code string) Presentation {
	return Presentation{Label: code, Color: NeutralColor}
}

func CaseStatus(s resource.CaseStatus) Presentation {
	switch s {
	case resource.CaseNew:
		return Presentation{Label: "New", Color: colorBlue}
	case resource.CaseInProgress:
		return Presentation{Label: "In progress", Color: colorAmber}
	case resource.CaseWaiting:
		return Presentation{Label: "Waiting", Color: colorPurple}
	case resource.CaseDone:
		return Presentation{Label: "Done", Color: colorGreen}
	default:
		return fallback(string(s))
	}
}

func Priority(p resource.Priority) Presentation {
	switch p {
	case resource.PriorityLow:
		return Presentation{Label: "Low", Color: colorGreen}
	case resource.PriorityMedium:
		return Presentation{Label: "Medium", Color: colorAmber}
	case resource.PriorityHigh:
		return Presentation{Label: "High", Color: colorRed}
	default:
		return fallback(string(p))
	}
}

func PaymentStatus(s resource.PaymentStatus) Presentation {
	switch s {
	case resource.Paid:
		return Presentation{Label: "Paid", Color: colorGreen}
	case resource.Pending:
		return Presentation{Label: "Pending", Color: colorAmber}
	case resource.Overdue:
		return Presentation{Label: "Overdue", Color: colorRed}
	default:
		return fallback(string(s))
	}
}

func Direction(d resource.Direction) Presentation {
	switch d {
	case resource.Receivable:
		return Presentation{Label: "Receivable", Color: colorGreen}
	case resource.Payable:
		return Presentation{Label: "Payable", Color: colorRed}
	default:
		return fallback(string(d))
	}
}

// DeadlineType colors hearings red and meetings blue. Every other type,
// including unknown ones, is amber and labelled with its capitalised code.
func DeadlineType(typ string) Presentation {
	switch typ {
	case resource.DeadlineTypeHearing:
		return Presentation{Label: "Hearing", Color: colorRed}
	case resource.DeadlineTypeMeeting:
		return Presentation{Label: "Meeting", Color: colorBlue}
	case resource.DeadlineTypeDeadline:
		return Presentation{Label: "Deadline", Color: colorAmber}
	default:
		return Presentation{Label: capitalize(typ), Color: colorAmber}
	}
}

// Urgency codes are matched without regard to case.
func Urgency(u resource.Urgency) Presentation {
	switch normalizeUrgency(u) {
	case resource.UrgencyHigh:
		return Presentation{Label: "High", Color: colorRed}
	case resource.UrgencyMedium:
		return Presentation{Label: "Medium", Color: colorAmber}
	case resource.UrgencyLow:
		return Presentation{Label: "Low", Color: colorBlue}
	default:
		return fallback(string(u))
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// AlertView is an alert paired with its urgency presentation.
type AlertView struct {
	resource.Alert
	Presentation Presentation `json:"presentation"`
}

func normalizeUrgency(u resource.Urgency) resource.Urgency {
	return resource.Urgency(strings.ToLower(strings.TrimSpace(string(u))))
}

func severity(u resource.Urgency) int {
	switch normalizeUrgency(u) {
	case resource.UrgencyHigh:
		return 0
	case resource.UrgencyMedium:
		return 1
	case resource.UrgencyLow:
		return 2
	default:
		return 3
	}
}

// SortAlerts orders alerts high to low urgency, unknown urgencies last. Alerts
// of equal urgency keep the order the server sent.
func SortAlerts(alerts []resource.Alert) []AlertView {
	out := make([]AlertView, len(alerts))
	for i, a := range alerts {
		out[i] = AlertView{Alert: a, Presentation: Urgency(a.Urgency)}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return severity(out[i].Urgency) < severity(out[j].Urgency)
	})
	return out
}
