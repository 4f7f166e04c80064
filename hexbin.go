package corner

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// HexBin is a 2D density plotter with hexagonal bins. It implements
// plot.Plotter and plot.DataRanger, so it can be added to any
// gonum/plot plot.
//
// The hexagon grid consists of two interleaved rectangular lattices,
// the second shifted by half a cell in both directions. Every point is
// assigned to the nearest lattice center, counted, and each cell is
// filled with the palette color for its count relative to the fullest
// cell.
type HexBin struct {
	// XRange and YRange span the binned region. Points outside are
	// dropped.
	XRange, YRange Interval

	// Cols and Rows give the grid size of the primary lattice.
	Cols, Rows int

	// Palette maps relative counts to colors.
	Palette palette.Palette

	counts  []int // primary lattice, Cols+1 x Rows+1
	offsets []int // shifted lattice, Cols x Rows
	maxcnt  int
}

// NewHexBin bins the point set (xs, ys) onto a cols x rows hexagon
// grid spanning xr x yr.
func NewHexBin(xs, ys []float64, cols, rows int, xr, yr Interval, pal palette.Palette) *HexBin {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	h := &HexBin{
		XRange:  xr,
		YRange:  yr,
		Cols:    cols,
		Rows:    rows,
		Palette: pal,
		counts:  make([]int, (cols+1)*(rows+1)),
		offsets: make([]int, cols*rows),
	}
	for i := range xs {
		h.fill(xs[i], ys[i])
	}
	return h
}

func (h *HexBin) fill(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	if x < h.XRange.Min || x > h.XRange.Max || y < h.YRange.Min || y > h.YRange.Max {
		return
	}
	// Normalized coordinates: primary lattice centers sit on integer
	// positions, shifted lattice centers on half-integers.
	tx := (x - h.XRange.Min) / h.XRange.Width() * float64(h.Cols)
	ty := (y - h.YRange.Min) / h.YRange.Width() * float64(h.Rows)

	i1 := int(math.Round(tx))
	j1 := int(math.Round(ty))
	i2 := int(math.Floor(tx))
	j2 := int(math.Floor(ty))
	i2 = clamp(i2, 0, h.Cols-1)
	j2 = clamp(j2, 0, h.Rows-1)

	// Squared distances in normalized units. The vertical term is
	// weighted by 3 so cells stay hexagonal rather than square.
	d1 := sq(tx-float64(i1)) + 3*sq(ty-float64(j1))
	d2 := sq(tx-float64(i2)-0.5) + 3*sq(ty-float64(j2)-0.5)

	var cnt int
	if d1 <= d2 {
		k := j1*(h.Cols+1) + i1
		h.counts[k]++
		cnt = h.counts[k]
	} else {
		k := j2*h.Cols + i2
		h.offsets[k]++
		cnt = h.offsets[k]
	}
	if cnt > h.maxcnt {
		h.maxcnt = cnt
	}
}

func sq(x float64) float64 { return x * x }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Plot implements plot.Plotter.
func (h *HexBin) Plot(c draw.Canvas, plt *plot.Plot) {
	colors := h.Palette.Colors()
	if len(colors) == 0 {
		return
	}
	trX, trY := plt.Transforms(&c)

	dx := h.XRange.Width() / float64(h.Cols)
	dy := h.YRange.Width() / float64(h.Rows)

	for j := 0; j <= h.Rows; j++ {
		for i := 0; i <= h.Cols; i++ {
			cx := h.XRange.Min + float64(i)*dx
			cy := h.YRange.Min + float64(j)*dy
			h.cell(c, trX, trY, colors, cx, cy, dx, dy, h.counts[j*(h.Cols+1)+i])
		}
	}
	for j := 0; j < h.Rows; j++ {
		for i := 0; i < h.Cols; i++ {
			cx := h.XRange.Min + (float64(i)+0.5)*dx
			cy := h.YRange.Min + (float64(j)+0.5)*dy
			h.cell(c, trX, trY, colors, cx, cy, dx, dy, h.offsets[j*h.Cols+i])
		}
	}
}

// cell fills one hexagon centered at (cx, cy) in data coordinates.
func (h *HexBin) cell(c draw.Canvas, trX, trY func(float64) vg.Length, colors []color.Color, cx, cy, dx, dy float64, cnt int) {
	idx := 0
	if h.maxcnt > 0 {
		idx = int(float64(cnt) / float64(h.maxcnt) * float64(len(colors)-1))
	}

	rx, ry := dx/2, dy/2
	pts := []vg.Point{
		{X: trX(cx), Y: trY(cy + ry)},
		{X: trX(cx + rx), Y: trY(cy + ry/2)},
		{X: trX(cx + rx), Y: trY(cy - ry/2)},
		{X: trX(cx), Y: trY(cy - ry)},
		{X: trX(cx - rx), Y: trY(cy - ry/2)},
		{X: trX(cx - rx), Y: trY(cy + ry/2)},
	}
	c.FillPolygon(colors[idx], pts)
}

// DataRange implements plot.DataRanger.
func (h *HexBin) DataRange() (xmin, xmax, ymin, ymax float64) {
	return h.XRange.Min, h.XRange.Max, h.YRange.Min, h.YRange.Max
}
