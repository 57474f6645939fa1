// Package sync reloads every screen at once and reports each outcome.
package sync

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/advcontrol/pkg/printers"
	"tableflip.dev/advcontrol/pkg/resource"
	"tableflip.dev/advcontrol/pkg/screens"
)

type Sync struct {
	Screens *screens.Set
	JSON    bool
	Out     io.Writer
}

type outcome struct {
	Kind    resource.Kind `json:"kind"`
	OK      bool          `json:"ok"`
	Records int           `json:"records"`
	Notice  string        `json:"notice,omitempty"`
}

// ErrPartial is returned when at least one collection failed to load.
var ErrPartial = errors.New("some collections could not be loaded")

func (s *Sync) Do(ctx context.Context) error {
	results := s.Screens.RefreshAll(ctx)
	out := make([]outcome, len(results))
	failed := false
	for i, r := range results {
		out[i] = outcome{Kind: r.Kind, OK: r.Err == nil, Records: r.Records, Notice: r.Notice}
		failed = failed || r.Err != nil
	}

	pp := printers.New(s.Out)
	if s.JSON {
		if err := pp.JSON(out); err != nil {
			return err
		}
	} else {
		tbl := uitable.New()
		tbl.Separator = "  "
		bold := color.New(color.Bold)
		tbl.AddRow(bold.Sprint("COLLECTION"), bold.Sprint("RECORDS"), bold.Sprint("STATUS"))
		for _, o := range out {
			status := "ok"
			if !o.OK {
				status = o.Notice
			}
			tbl.AddRow(screens.Title(o.Kind), o.Records, status)
		}
		tbl.RightAlign(1)
		_, _ = fmt.Fprintln(pp.Out, tbl)
	}
	if failed {
		return ErrPartial
	}
	return nil
}
