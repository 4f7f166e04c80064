package corner

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"
)

// Theme bundles the cosmetic defaults shared by corner plots and
// walker traces.
type Theme struct {
	// FaceColor fills the 1D histograms along the diagonal,
	// EdgeColor outlines them. A nil EdgeColor draws no outline.
	FaceColor color.Color
	EdgeColor color.Color

	// LineColor and LineAlpha style the walker trace lines.
	LineColor color.Color
	LineAlpha float64

	// MaxTicks caps the number of labelled ticks per axis.
	MaxTicks int

	// TickRotation is the x tick label rotation in radians.
	TickRotation float64

	// Pad is the whitespace between subplots.
	Pad vg.Length

	// BoundsFactor is the number of standard deviations NiceBounds
	// frames around the mean.
	BoundsFactor float64
}

var DefaultTheme = Theme{
	FaceColor:    String2Color("#1f77b4"),
	EdgeColor:    nil,
	LineColor:    BuiltinColors["black"],
	LineAlpha:    0.3,
	MaxTicks:     5,
	TickRotation: math.Pi / 4,
	Pad:          vg.Points(2),
	BoundsFactor: 3,
}

// DefaultPalette is the colormap used for 2D marginals when none is
// given. Kindlmann is perceptually sequential, the nearest ecosystem
// relative of matplotlib's viridis.
func DefaultPalette() palette.Palette {
	return moreland.Kindlmann().Palette(255)
}
