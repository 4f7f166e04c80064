package corner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

func TestHexBinAssignsCells(t *testing.T) {
	unit := Interval{Min: 0, Max: 2}
	xs := []float64{0.05, 0.05, 0.5}
	ys := []float64{0.05, 0.10, 0.5}
	h := NewHexBin(xs, ys, 2, 2, unit, unit, DefaultPalette())

	// The two points near the origin land on the primary lattice
	// corner (0,0); the center point sits exactly on a shifted
	// lattice center.
	if got := h.counts[0]; got != 2 {
		t.Errorf("Got %d points in primary cell (0,0), want 2", got)
	}
	total := 0
	for _, c := range h.offsets {
		total += c
	}
	if total != 1 {
		t.Errorf("Got %d points on the shifted lattice, want 1", total)
	}
	if h.maxcnt != 2 {
		t.Errorf("Got max count %d, want 2", h.maxcnt)
	}
}

func TestHexBinDropsOutliers(t *testing.T) {
	unit := Interval{Min: 0, Max: 1}
	h := NewHexBin(
		[]float64{-5, 0.5, 9, math.NaN(), 0.5},
		[]float64{0.5, 0.5, 0.5, 0.5, math.NaN()},
		3, 3, unit, unit, DefaultPalette())

	total := 0
	for _, c := range h.counts {
		total += c
	}
	for _, c := range h.offsets {
		total += c
	}
	if total != 1 {
		t.Errorf("Got %d binned points, want 1", total)
	}
}

func TestHexBinDataRange(t *testing.T) {
	h := NewHexBin(nil, nil, 4, 4,
		Interval{Min: -1, Max: 3}, Interval{Min: 2, Max: 7}, DefaultPalette())
	xmin, xmax, ymin, ymax := h.DataRange()
	if xmin != -1 || xmax != 3 || ymin != 2 || ymax != 7 {
		t.Errorf("Got range (%g, %g, %g, %g), want (-1, 3, 2, 7)",
			xmin, xmax, ymin, ymax)
	}
}

func TestHexBinDraw(t *testing.T) {
	s := testSamples(t, 100, 4, 2)
	xr := NiceBounds(s.Dim(0), 3)
	yr := NiceBounds(s.Dim(1), 3)

	p := plot.New()
	p.Add(NewHexBin(s.Dim(0), s.Dim(1), 20, 20, xr, yr, DefaultPalette()))
	require.NotPanics(t, func() {
		p.Draw(testCanvas())
	})
}
