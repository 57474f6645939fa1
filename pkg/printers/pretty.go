package printers

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/shopspring/decimal"
)

// PrettyPrint renders screens for a terminal.
type PrettyPrint struct {
	Out   io.Writer
	Width int

	plain bool
}

// New returns a printer writing to w. Colors are dropped unless w is a
// terminal.
func New(w io.Writer) *PrettyPrint {
	if w == nil {
		w = color.Output
	}
	pp := &PrettyPrint{Out: w, Width: 80, plain: true}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		pp.plain = color.NoColor
	}
	return pp
}

func (pp *PrettyPrint) w() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) c(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if pp.plain {
		c.DisableColor()
	}
	return c
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.w(), "")
}

func (pp *PrettyPrint) Title(title string) {
	_, _ = pp.c(color.Bold, color.Underline).Fprintln(pp.w(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := pp.c(color.Bold, color.Underline)
	c := pp.c(color.Faint)

	_, _ = t.Fprint(pp.w(), title)
	_, _ = c.Fprintf(pp.w(), " - %d %s\n", count, plural(count, noun))
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}

func (pp *PrettyPrint) None() {
	_, _ = pp.c(color.Faint, color.Italic).Fprint(pp.w(), " none\n\n")
}

// Notice prints a refresh failure.
func (pp *PrettyPrint) Notice(msg string) {
	if msg == "" {
		return
	}
	_, _ = pp.c(color.FgYellow, color.Italic).Fprintf(pp.w(), "! %s\n", msg)
}

// Stale notes that the data shown came from the cache.
func (pp *PrettyPrint) Stale(fetchedAt time.Time) {
	if fetchedAt.IsZero() {
		return
	}
	_, _ = pp.c(color.Faint, color.Italic).Fprintf(pp.w(), "showing data from %s\n", humanize.Time(fetchedAt))
}

// wrap fits text to the printer width, indented by pad spaces.
func (pp *PrettyPrint) wrap(text string, pad uint) string {
	width := pp.Width
	if width <= int(pad)+10 {
		width = 80
	}
	return indent.String(wordwrap.String(strings.TrimSpace(text), width-int(pad)), pad)
}

// Money formats an amount in reais, e.g. R$ 1.500,50.
func Money(d decimal.Decimal) string {
	return "R$ " + humanize.FormatFloat("#.###,##", d.Round(2).InexactFloat64())
}
