package views

import "tableflip.dev/advcontrol/pkg/resource"

// LegendEntry pairs a backend code with how it is shown.
type LegendEntry struct {
	Code string `json:"code"`
	Presentation
}

// LegendGroup is one enumerated mapping.
type LegendGroup struct {
	Name    string        `json:"name"`
	Entries []LegendEntry `json:"entries"`
}

// Legend lists every known code of every mapping, in severity or workflow
// order.
func Legend() []LegendGroup {
	return []LegendGroup{
		{Name: "Case status", Entries: []LegendEntry{
			entry(string(resource.CaseNew), CaseStatus(resource.CaseNew)),
			entry(string(resource.CaseInProgress), CaseStatus(resource.CaseInProgress)),
			entry(string(resource.CaseWaiting), CaseStatus(resource.CaseWaiting)),
			entry(string(resource.CaseDone), CaseStatus(resource.CaseDone)),
		}},
		{Name: "Priority", Entries: []LegendEntry{
			entry(string(resource.PriorityHigh), Priority(resource.PriorityHigh)),
			entry(string(resource.PriorityMedium), Priority(resource.PriorityMedium)),
			entry(string(resource.PriorityLow), Priority(resource.PriorityLow)),
		}},
		{Name: "Payment status", Entries: []LegendEntry{
			entry(string(resource.Paid), PaymentStatus(resource.Paid)),
			entry(string(resource.Pending), PaymentStatus(resource.Pending)),
			entry(string(resource.Overdue), PaymentStatus(resource.Overdue)),
		}},
		{Name: "Direction", Entries: []LegendEntry{
			entry(string(resource.Receivable), Direction(resource.Receivable)),
			entry(string(resource.Payable), Direction(resource.Payable)),
		}},
		{Name: "Deadline type", Entries: []LegendEntry{
			entry(resource.DeadlineTypeHearing, DeadlineType(resource.DeadlineTypeHearing)),
			entry(resource.DeadlineTypeMeeting, DeadlineType(resource.DeadlineTypeMeeting)),
			entry(resource.DeadlineTypeDeadline, DeadlineType(resource.DeadlineTypeDeadline)),
		}},
		{Name: "Alert urgency", Entries: []LegendEntry{
			entry(string(resource.UrgencyHigh), Urgency(resource.UrgencyHigh)),
			entry(string(resource.UrgencyMedium), Urgency(resource.UrgencyMedium)),
			entry(string(resource.UrgencyLow), Urgency(resource.UrgencyLow)),
		}},
	}
}

func entry(code string, p Presentation) LegendEntry {
	return LegendEntry{Code: code, Presentation: p}
}
