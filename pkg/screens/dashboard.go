package screens

import (
	"tableflip.dev/advcontrol/pkg/resource"
	"tableflip.dev/advcontrol/pkg/views"
)

// Dashboard is the overview screen.
type Dashboard struct {
	*screen[resource.DashboardStats]
}

func NewDashboard(src Source, cache Cache) *Dashboard {
	return &Dashboard{screen: newScreen[resource.DashboardStats](resource.KindDashboard, src.Dashboard, cache)}
}

func (d *Dashboard) Stats() resource.DashboardStats {
	return d.ctrl.Data()
}

// Alerts are sorted by urgency and colored.
func (d *Dashboard) Alerts() []views.AlertView {
	return views.SortAlerts(d.ctrl.Data().Alerts)
}
