package printers

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"tableflip.dev/advcontrol/pkg/views"
)

// tintAlpha matches the translucent chip background used by the mobile app.
const tintAlpha = 0x20 / 255.0

var white = colorful.Color{R: 1, G: 1, B: 1}

// Tint returns hex blended over white at the chip alpha.
func Tint(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return views.NeutralColor
	}
	return white.BlendRgb(c, tintAlpha).Clamped().Hex()
}

// Badge renders a label in its color on a light tint.
func (pp *PrettyPrint) Badge(p views.Presentation) string {
	if pp.plain {
		return "[" + p.Label + "]"
	}
	out := termenv.NewOutput(pp.w())
	return out.String(" " + p.Label + " ").
		Foreground(out.Color(p.Color)).
		Background(out.Color(Tint(p.Color))).
		Bold().
		String()
}

// Dot renders a single colored bullet.
func (pp *PrettyPrint) Dot(hex string) string {
	if pp.plain {
		return "*"
	}
	out := termenv.NewOutput(pp.w())
	return out.String("●").Foreground(out.Color(hex)).String()
}
