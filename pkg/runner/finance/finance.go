package finance

import (
	"context"
	"io"

	"tableflip.dev/advcontrol/pkg/printers"
	"tableflip.dev/advcontrol/pkg/screens"
	"tableflip.dev/advcontrol/pkg/views"
)

// Finance prints the financial totals and the records matching Filter.
type Finance struct {
	Screens *screens.Set
	Filter  string
	JSON    bool
	Out     io.Writer
}

func (f *Finance) Do(ctx context.Context) error {
	filter, err := views.ParseFilter(f.Filter)
	if err != nil {
		return err
	}
	scr := f.Screens.Finance
	scr.SetFilter(filter)

	scr.Refresh(ctx)
	if err := scr.Unavailable(); err != nil {
		return err
	}
	pp := printers.New(f.Out)
	if f.JSON {
		return pp.JSON(struct {
			Filter  views.Filter         `json:"filter"`
			Totals  views.Totals         `json:"totals"`
			Records []screens.FinanceRow `json:"records"`
			Notice  string               `json:"notice,omitempty"`
		}{filter, scr.Totals(), scr.Rows(), scr.Notice()})
	}
	pp.Notice(scr.Notice())
	if scr.Err() != nil {
		pp.Stale(scr.View().FetchedAt)
	}
	pp.Finance(scr.Totals(), filter, scr.Rows())
	return nil
}
