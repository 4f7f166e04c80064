package corner

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// Tick formatting for the subplot grids. Crowded grids need fewer
// labelled ticks than a standalone plot, inner cells need none at all,
// and large or tiny scales move their decade into the axis label
// instead of repeating it on every tick.

// offsetLimit is the decade beyond which an axis switches to a
// scientific-notation offset in its label.
const offsetLimit = 4

// prunedTicks wraps a Ticker so that at most max ticks keep their
// label and the topmost labelled tick loses its label, which stops
// neighbouring subplots from colliding.
type prunedTicks struct {
	base plot.Ticker
	max  int
}

func (pt prunedTicks) Ticks(min, max float64) []plot.Tick {
	base := pt.base
	if base == nil {
		base = plot.DefaultTicks{}
	}
	ticks := copyTicks(base.Ticks(min, max))

	var labelled []int
	for i := range ticks {
		if ticks[i].Label != "" {
			labelled = append(labelled, i)
		}
	}
	if pt.max > 0 && len(labelled) > pt.max {
		stride := (len(labelled) + pt.max - 1) / pt.max
		for k, i := range labelled {
			if k%stride != 0 {
				ticks[i].Label = ""
			}
		}
	}

	// Prune upper: the highest labelled tick belongs to the
	// neighbouring cell's corner.
	top := -1
	for i := range ticks {
		if ticks[i].Label == "" {
			continue
		}
		if top < 0 || ticks[i].Value > ticks[top].Value {
			top = i
		}
	}
	if top >= 0 {
		ticks[top].Label = ""
	}
	return ticks
}

// blankTicks keeps the tick marks of its base Ticker but drops every
// label. Inner cells of a grid show marks only.
type blankTicks struct {
	base plot.Ticker
}

func (bt blankTicks) Ticks(min, max float64) []plot.Tick {
	base := bt.base
	if base == nil {
		base = plot.DefaultTicks{}
	}
	ticks := copyTicks(base.Ticks(min, max))
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}

// copyTicks guards against tickers like plot.ConstantTicks that hand
// out the same slice on every call.
func copyTicks(ts []plot.Tick) []plot.Tick {
	out := make([]plot.Tick, len(ts))
	copy(out, ts)
	return out
}

// offsetTicks divides every labelled tick by 10^exp. The exponent
// itself lives in the axis label, see relocateOffset.
type offsetTicks struct {
	base plot.Ticker
	exp  int
}

func (ot offsetTicks) Ticks(min, max float64) []plot.Tick {
	base := ot.base
	if base == nil {
		base = plot.DefaultTicks{}
	}
	scale := math.Pow(10, float64(ot.exp))
	ticks := copyTicks(base.Ticks(min, max))
	for i := range ticks {
		if ticks[i].Label == "" {
			continue
		}
		ticks[i].Label = strconv.FormatFloat(ticks[i].Value/scale, 'g', 4, 64)
	}
	return ticks
}

// offsetExponent returns the decade to factor out of an axis spanning
// [min, max], or 0 when plain tick labels do fine.
func offsetExponent(min, max float64) int {
	m := math.Max(math.Abs(min), math.Abs(max))
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return 0
	}
	e := int(math.Floor(math.Log10(m)))
	if e >= offsetLimit || e <= -offsetLimit {
		return e
	}
	return 0
}

// relocateOffset suppresses the scientific-notation decade on the
// ticks of ax and appends it, parenthesized, to the axis label. The
// offset is recomputed from the axis limits, so the limits must be
// final when this is called.
func relocateOffset(ax *plot.Axis, label string) {
	e := offsetExponent(ax.Min, ax.Max)
	if e == 0 {
		ax.Label.Text = label
		return
	}
	ax.Tick.Marker = offsetTicks{base: ax.Tick.Marker, exp: e}
	off := "(1e" + strconv.Itoa(e) + ")"
	if label == "" {
		ax.Label.Text = off
	} else {
		ax.Label.Text = label + " " + off
	}
}
