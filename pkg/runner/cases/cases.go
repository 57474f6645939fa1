package cases

import (
	"context"
	"io"

	"tableflip.dev/advcontrol/pkg/printers"
	"tableflip.dev/advcontrol/pkg/screens"
)

type Cases struct {
	Screens *screens.Set
	JSON    bool
	Out     io.Writer
}

func (c *Cases) Do(ctx context.Context) error {
	scr := c.Screens.Cases
	scr.Refresh(ctx)
	if err := scr.Unavailable(); err != nil {
		return err
	}
	pp := printers.New(c.Out)
	if c.JSON {
		return pp.JSON(struct {
			Active int               `json:"active"`
			Cases  []screens.CaseRow `json:"cases"`
			Notice string            `json:"notice,omitempty"`
		}{scr.ActiveCount(), scr.Rows(), scr.Notice()})
	}
	pp.Notice(scr.Notice())
	if scr.Err() != nil {
		pp.Stale(scr.View().FetchedAt)
	}
	pp.Cases(scr.Rows())
	return nil
}
