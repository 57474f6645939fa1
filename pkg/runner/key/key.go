// Package key prints the legend of status, priority and urgency badges.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/advcontrol/pkg/printers"
	"tableflip.dev/advcontrol/pkg/views"
)

// Key prints every known code with its label and color.
type Key struct {
	JSON bool
	Out  io.Writer
}

func (k *Key) Do(_ context.Context) error {
	pp := printers.New(k.Out)
	groups := views.Legend()
	if k.JSON {
		return pp.JSON(groups)
	}

	_, _ = fmt.Fprintln(pp.Out, "")
	for _, g := range groups {
		k.Key(pp, g)
		_, _ = fmt.Fprintln(pp.Out, "")
	}
	return nil
}

// Key renders one legend group as a table.
func (k *Key) Key(pp *printers.PrettyPrint, g views.LegendGroup) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(g.Name), bold.Sprint("Code"), bold.Sprint("Color"))
	for _, e := range g.Entries {
		tbl.AddRow(pp.Badge(e.Presentation), e.Code, e.Color)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.Out, tbl)
}
