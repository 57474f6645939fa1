package screens

import (
	"tableflip.dev/advcontrol/pkg/resource"
	"tableflip.dev/advcontrol/pkg/views"
)

// CaseRow is a case ready for display.
type CaseRow struct {
	resource.Case
	StatusView   views.Presentation `json:"status_view"`
	PriorityView views.Presentation `json:"priority_view"`
}

// Cases is the case list screen.
type Cases struct {
	*screen[[]resource.Case]
}

func NewCases(src Source, cache Cache) *Cases {
	return &Cases{screen: newScreen[[]resource.Case](resource.KindCases, src.Cases, cache)}
}

func (c *Cases) Rows() []CaseRow {
	data := c.ctrl.Data()
	rows := make([]CaseRow, len(data))
	for i, cs := range data {
		rows[i] = CaseRow{
			Case:         cs,
			StatusView:   views.CaseStatus(cs.Status),
			PriorityView: views.Priority(cs.Priority),
		}
	}
	return rows
}

// ActiveCount counts cases that are new or in progress.
func (c *Cases) ActiveCount() int {
	n := 0
	for _, cs := range c.ctrl.Data() {
		if cs.Status.Active() {
			n++
		}
	}
	return n
}
