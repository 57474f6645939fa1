package dashboard

import (
	"context"
	"io"

	"tableflip.dev/advcontrol/pkg/printers"
	"tableflip.dev/advcontrol/pkg/resource"
	"tableflip.dev/advcontrol/pkg/screens"
	"tableflip.dev/advcontrol/pkg/views"
)

type Dashboard struct {
	Screens *screens.Set
	JSON    bool
	Out     io.Writer
}

func (d *Dashboard) Do(ctx context.Context) error {
	scr := d.Screens.Dashboard
	scr.Refresh(ctx)
	if err := scr.Unavailable(); err != nil {
		return err
	}
	pp := printers.New(d.Out)
	if d.JSON {
		return pp.JSON(struct {
			Stats  resource.DashboardStats `json:"stats"`
			Alerts []views.AlertView       `json:"alerts"`
			Notice string                  `json:"notice,omitempty"`
		}{scr.Stats(), scr.Alerts(), scr.Notice()})
	}
	pp.Notice(scr.Notice())
	if scr.Err() != nil {
		pp.Stale(scr.View().FetchedAt)
	}
	pp.Dashboard(scr.Stats(), scr.Alerts())
	return nil
}
