package corner

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Trace builds a walker trace: one stacked panel per dimension, each
// overlaying the trajectory of every walker over the sampling steps.
type Trace struct {
	// Samples is the sampler output to plot.
	Samples *Samples

	// Labels names the dimensions. Nil means blank labels.
	Labels []string

	// LineStyle styles every trajectory. The zero value resolves to
	// a thin line in the theme's color and alpha.
	LineStyle draw.LineStyle

	// Theme provides the cosmetic defaults; nil means DefaultTheme.
	Theme *Theme
}

// WalkerTrace draws a walker trace of s onto dc with all defaults.
func WalkerTrace(dc draw.Canvas, s *Samples) error {
	t := Trace{Samples: s}
	return t.Draw(dc)
}

// Draw validates the configuration and draws all panels onto dc.
// Validation happens up front: on error nothing has been drawn.
func (t *Trace) Draw(dc draw.Canvas) error {
	plots, err := t.build()
	if err != nil {
		return err
	}
	subplots(dc, plots, t.theme().Pad)
	return nil
}

func (t *Trace) theme() *Theme {
	if t.Theme != nil {
		return t.Theme
	}
	return &DefaultTheme
}

func (t *Trace) build() ([][]*plot.Plot, error) {
	s := t.Samples
	if s == nil {
		return nil, fmt.Errorf("%w: no samples", ErrShape)
	}
	nd := s.Dims()
	labels, err := resolveLabels(t.Labels, nd)
	if err != nil {
		return nil, err
	}

	th := t.theme()
	style := t.LineStyle
	if style.Color == nil {
		style.Color = SetAlpha(th.LineColor, th.LineAlpha)
	}
	if style.Width == 0 {
		style.Width = vg.Points(1)
	}

	plots := make([][]*plot.Plot, nd)
	for d := 0; d < nd; d++ {
		p := plot.New()
		for w := 0; w < s.Walkers(); w++ {
			line, err := plotter.NewLine(traceXYs(s, w, d))
			if err != nil {
				// NaN or infinite trajectory values cannot become
				// axis limits.
				return nil, fmt.Errorf("%w: walker %d, dimension %d: %v",
					ErrRange, w, d, err)
			}
			line.LineStyle = style
			p.Add(line)
		}

		p.X.Min, p.X.Max = 0, float64(s.Steps())
		bottom := d == nd-1
		if bottom {
			p.X.Label.Text = "Step"
		} else {
			p.X.Tick.Marker = blankTicks{base: p.X.Tick.Marker}
		}
		relocateOffset(&p.Y, labels[d])

		plots[d] = []*plot.Plot{p}
	}
	return plots, nil
}

func traceXYs(s *Samples, w, d int) plotter.XYs {
	xys := make(plotter.XYs, s.Steps())
	for step := range xys {
		xys[step].X = float64(step)
		xys[step].Y = s.At(step, w, d)
	}
	return xys
}
