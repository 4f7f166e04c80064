package corner

import (
	"fmt"
	"image/color"
	"strings"
)

// -------------------------------------------------------------------------
// Plot kinds

// Kind selects how the off-diagonal 2D marginals of a corner plot are
// drawn.
type Kind int

const (
	Hist Kind = iota // rectangular 2D histogram
	Hex              // hexagonal binning
)

// ParseKind maps the spelling of a plot kind to its Kind value.
// Accepted are "hist", "histogram", "hex" and "hexbin"; anything else
// fails with ErrKind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "hist", "histogram":
		return Hist, nil
	case "hex", "hexbin":
		return Hex, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrKind, s)
}

func (k Kind) String() string {
	switch k {
	case Hist:
		return "hist"
	case Hex:
		return "hex"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// -------------------------------------------------------------------------
// Colors

// SetAlpha returns c with its alpha set to a in [0,1]. Any alpha
// already present in c is discarded.
func SetAlpha(c color.Color, a float64) color.Color {
	r, g, b, _ := c.RGBA()
	r >>= 8
	g >>= 8
	b >>= 8
	a *= float64(0xff)
	return color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}
}

var BuiltinColors = map[string]color.RGBA{
	"red":     color.RGBA{0xff, 0x00, 0x00, 0xff},
	"green":   color.RGBA{0x00, 0xff, 0x00, 0xff},
	"blue":    color.RGBA{0x00, 0x00, 0xff, 0xff},
	"cyan":    color.RGBA{0x00, 0xff, 0xff, 0xff},
	"magenta": color.RGBA{0xff, 0x00, 0xff, 0xff},
	"yellow":  color.RGBA{0xff, 0xff, 0x00, 0xff},
	"white":   color.RGBA{0xff, 0xff, 0xff, 0xff},
	"gray20":  color.RGBA{0x33, 0x33, 0x33, 0xff},
	"gray40":  color.RGBA{0x66, 0x66, 0x66, 0xff},
	"gray":    color.RGBA{0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  color.RGBA{0x99, 0x99, 0x99, 0xff},
	"gray80":  color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
	"black":   color.RGBA{0x00, 0x00, 0x00, 0xff},
}

// String2Color turns "#rrggbb", "#rrggbbaa" or one of the builtin
// color names into a color. Unparsable input yields an ugly pink.
func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.RGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.RGBA{0xaa, 0x66, 0x77, 0x7f}
}
