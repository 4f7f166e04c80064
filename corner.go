package corner

import (
	"errors"
	"fmt"
	"image/color"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg/draw"
)

// Validation errors reported by the plot builders.
var (
	// ErrShape means the sample tensor does not have the required
	// (steps, walkers, dims) layout.
	ErrShape = errors.New("corner: bad sample shape")

	// ErrTooFewSamples means steps*walkers does not exceed the
	// number of dimensions; variance based axis limits would be
	// meaningless.
	ErrTooFewSamples = errors.New("corner: too few samples")

	// ErrLengthMismatch means a bins, ranges or labels sequence does
	// not have one entry per dimension.
	ErrLengthMismatch = errors.New("corner: length mismatch")

	// ErrKind means an unknown plot kind.
	ErrKind = errors.New("corner: unknown plot kind")

	// ErrRange means an axis range is not a finite, ordered interval.
	// NaN samples surface here through the variance based limit
	// heuristic.
	ErrRange = errors.New("corner: bad axis range")
)

// DefaultBins is the number of bins per axis when none are configured.
const DefaultBins = 100

// Corner builds a corner plot: an N x N grid with the 1D marginal
// distribution of each dimension on the diagonal and the pairwise 2D
// marginals below it. Cells above the diagonal stay blank.
//
// The zero values of all optional fields resolve to the defaults named
// in their comments, so Corner{Samples: s} is a complete
// configuration.
type Corner struct {
	// Samples is the sampler output to plot.
	Samples *Samples

	// Bins is the number of bins along every axis; 0 means
	// DefaultBins. BinsByDim overrides it per dimension and must
	// have one entry per dimension when set.
	Bins      int
	BinsByDim []int

	// Ranges fixes the axis limits per dimension. A nil slice or a
	// nil entry falls back to NiceBounds for that dimension;
	// explicit entries are used verbatim.
	Ranges []*Interval

	// Labels names the dimensions. Nil means blank labels.
	Labels []string

	// Palette colors the 2D marginals; nil means DefaultPalette.
	Palette palette.Palette

	// Kind selects histogram or hexbin cells below the diagonal.
	Kind Kind

	// Counts plots raw bin counts on the diagonal instead of
	// normalized densities.
	Counts bool

	// FaceColor and EdgeColor style the diagonal histograms; unset
	// they come from the theme.
	FaceColor color.Color
	EdgeColor color.Color

	// Theme provides the cosmetic defaults; nil means DefaultTheme.
	Theme *Theme
}

// CornerPlot draws a corner plot of s onto dc with all defaults.
func CornerPlot(dc draw.Canvas, s *Samples) error {
	c := Corner{Samples: s}
	return c.Draw(dc)
}

// Draw validates the configuration and draws the full grid onto dc.
// Validation happens up front: on error nothing has been drawn.
func (c *Corner) Draw(dc draw.Canvas) error {
	plots, err := c.build()
	if err != nil {
		return err
	}
	subplots(dc, plots, c.theme().Pad)
	return nil
}

func (c *Corner) theme() *Theme {
	if c.Theme != nil {
		return c.Theme
	}
	return &DefaultTheme
}

// build resolves defaults and lays out the grid of subplots. Row 0 is
// the top of the figure.
func (c *Corner) build() ([][]*plot.Plot, error) {
	s := c.Samples
	if s == nil {
		return nil, fmt.Errorf("%w: no samples", ErrShape)
	}
	nd := s.Dims()

	if n := s.Steps() * s.Walkers(); n <= nd {
		return nil, fmt.Errorf("%w: %d samples for %d dimensions", ErrTooFewSamples, n, nd)
	}
	if c.Kind != Hist && c.Kind != Hex {
		return nil, fmt.Errorf("%w: %v", ErrKind, c.Kind)
	}
	bins, err := c.binCounts(nd)
	if err != nil {
		return nil, err
	}
	if c.Ranges != nil && len(c.Ranges) != nd {
		return nil, fmt.Errorf("%w: %d ranges for %d dimensions", ErrLengthMismatch, len(c.Ranges), nd)
	}
	labels, err := resolveLabels(c.Labels, nd)
	if err != nil {
		return nil, err
	}

	th := c.theme()
	pal := c.Palette
	if pal == nil {
		pal = DefaultPalette()
	}
	face := c.FaceColor
	if face == nil {
		face = th.FaceColor
	}
	edge := c.EdgeColor
	if edge == nil {
		edge = th.EdgeColor
	}

	cols := make([][]float64, nd)
	ranges := make([]Interval, nd)
	for d := 0; d < nd; d++ {
		cols[d] = s.Dim(d)
		if c.Ranges != nil && c.Ranges[d] != nil {
			ranges[d] = *c.Ranges[d]
		} else {
			ranges[d] = NiceBounds(cols[d], th.BoundsFactor)
		}
		if r := ranges[d]; !r.finite() || r.Width() < 0 {
			return nil, fmt.Errorf("%w: [%g, %g] for dimension %d",
				ErrRange, r.Min, r.Max, d)
		}
		if ranges[d].Width() == 0 {
			// A degenerate range still has to frame its value.
			ranges[d].Min -= 0.5
			ranges[d].Max += 0.5
		}
	}

	plots := make([][]*plot.Plot, nd)
	for i := 0; i < nd; i++ {
		plots[i] = make([]*plot.Plot, nd)
		bottom := i == nd-1

		plots[i][i] = c.diagonal(cols[i], bins[i], ranges[i], labels[i], face, edge, bottom, th)
		for j := 0; j < i; j++ {
			plots[i][j] = c.offDiagonal(
				cols[j], cols[i],
				bins[j], bins[i],
				ranges[j], ranges[i],
				labels[j], labels[i],
				bottom, j == 0, pal, th)
		}
	}
	return plots, nil
}

func (c *Corner) binCounts(nd int) ([]int, error) {
	if c.BinsByDim != nil {
		if len(c.BinsByDim) != nd {
			return nil, fmt.Errorf("%w: %d bin counts for %d dimensions",
				ErrLengthMismatch, len(c.BinsByDim), nd)
		}
		return c.BinsByDim, nil
	}
	n := c.Bins
	if n == 0 {
		n = DefaultBins
	}
	bins := make([]int, nd)
	for i := range bins {
		bins[i] = n
	}
	return bins, nil
}

func resolveLabels(labels []string, nd int) ([]string, error) {
	if labels == nil {
		return make([]string, nd), nil
	}
	if len(labels) != nd {
		return nil, fmt.Errorf("%w: %d labels for %d dimensions",
			ErrLengthMismatch, len(labels), nd)
	}
	return labels, nil
}

// diagonal builds the 1D marginal cell for one dimension.
func (c *Corner) diagonal(xs []float64, bins int, r Interval, label string, face, edge color.Color, bottom bool, th *Theme) *plot.Plot {
	p := plot.New()

	hh := hplot.NewH1D(hist1D(xs, bins, r, !c.Counts))
	hh.FillColor = face
	if edge != nil {
		hh.LineStyle.Color = edge
	} else {
		hh.LineStyle.Width = 0
	}
	p.Add(hh)

	p.X.Min, p.X.Max = r.Min, r.Max

	// The density axis carries no information worth labelling.
	p.Y.Tick.Marker = blankTicks{base: p.Y.Tick.Marker}

	styleXTicks(p, bottom, th)
	if bottom {
		relocateOffset(&p.X, label)
	}
	return p
}

// offDiagonal builds the 2D marginal cell for the pair (xdim, ydim).
func (c *Corner) offDiagonal(xs, ys []float64, xbins, ybins int, xr, yr Interval, xlabel, ylabel string, bottom, left bool, pal palette.Palette, th *Theme) *plot.Plot {
	p := plot.New()

	switch c.Kind {
	case Hex:
		// Half the bin count, as hexagon cells cover more area
		// than rectangular ones.
		p.Add(NewHexBin(xs, ys, xbins/2, ybins/2, xr, yr, pal))
	default:
		p.Add(hplot.NewH2D(hist2D(xs, ys, xbins, ybins, xr, yr), pal))
	}

	p.X.Min, p.X.Max = xr.Min, xr.Max
	p.Y.Min, p.Y.Max = yr.Min, yr.Max

	styleXTicks(p, bottom, th)
	p.Y.Tick.Marker = prunedTicks{base: p.Y.Tick.Marker, max: th.MaxTicks}
	if bottom {
		relocateOffset(&p.X, xlabel)
	}
	if left {
		relocateOffset(&p.Y, ylabel)
	} else {
		p.Y.Tick.Marker = blankTicks{base: p.Y.Tick.Marker}
	}
	return p
}

// styleXTicks applies the shared x axis treatment: at most MaxTicks
// labels with the top one pruned, rotated for readability, and no
// labels at all off the bottom row.
func styleXTicks(p *plot.Plot, bottom bool, th *Theme) {
	p.X.Tick.Marker = prunedTicks{base: p.X.Tick.Marker, max: th.MaxTicks}
	p.X.Tick.Label.Rotation = th.TickRotation
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	if !bottom {
		p.X.Tick.Marker = blankTicks{base: p.X.Tick.Marker}
	}
}
