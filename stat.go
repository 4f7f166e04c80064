package corner

import (
	"math"

	"go-hep.org/x/hep/hbook"
	"gonum.org/v1/gonum/stat"
)

// Interval is a closed axis range.
type Interval struct {
	Min, Max float64
}

// Width returns Max - Min.
func (iv Interval) Width() float64 { return iv.Max - iv.Min }

// finite reports whether both bounds are real numbers, so the interval
// can serve as an axis range.
func (iv Interval) finite() bool {
	return !math.IsNaN(iv.Width()) && !math.IsInf(iv.Width(), 0)
}

// NiceBounds returns sensible axis limits for distribution plots:
// mean - factor*stddev to mean + factor*stddev. A factor of 3 usually
// frames the bulk of a distribution without zooming out too far.
//
// Zero-variance input would give a zero-width interval no renderer can
// use, so it is widened to one unit on either side of the value. NaN
// input propagates into the result.
func NiceBounds(xs []float64, factor float64) Interval {
	mean, std := stat.MeanStdDev(xs, nil)
	if std == 0 || math.IsNaN(std) && !math.IsNaN(mean) {
		return Interval{Min: mean - 1, Max: mean + 1}
	}
	return Interval{Min: mean - factor*std, Max: mean + factor*std}
}

// hist1D bins xs into an hbook histogram over r. With density set the
// bin heights are scaled so they integrate to 1.
func hist1D(xs []float64, bins int, r Interval, density bool) *hbook.H1D {
	h := hbook.NewH1D(bins, r.Min, r.Max)
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		h.Fill(x, 1)
	}
	if density {
		w := r.Width() / float64(bins)
		if n := float64(len(xs)); n > 0 && w > 0 {
			h.Scale(1 / (n * w))
		}
	}
	return h
}

// hist2D bins the point set (xs, ys) into an hbook 2D histogram over
// the rectangle xr x yr. Rendering colors bins relative to each other,
// so no density scaling is needed here.
func hist2D(xs, ys []float64, xbins, ybins int, xr, yr Interval) *hbook.H2D {
	h := hbook.NewH2D(xbins, xr.Min, xr.Max, ybins, yr.Min, yr.Max)
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		h.Fill(xs[i], ys[i], 1)
	}
	return h
}
