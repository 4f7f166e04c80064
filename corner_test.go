package corner

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// testSamples builds a deterministic tensor of loosely gaussian
// samples with distinct location and scale per dimension.
func testSamples(t *testing.T, steps, walkers, dims int) *Samples {
	t.Helper()
	rnd := rand.New(rand.NewSource(42))
	data := make([]float64, steps*walkers*dims)
	for i := range data {
		d := i % dims
		data[i] = rnd.NormFloat64()*float64(d+1) + 10*float64(d)
	}
	s, err := NewSamples(steps, walkers, dims, data)
	require.NoError(t, err)
	return s
}

func testCanvas() draw.Canvas {
	return draw.New(vgimg.New(6*vg.Inch, 6*vg.Inch))
}

func TestCornerGrid(t *testing.T) {
	const nd = 4
	c := Corner{Samples: testSamples(t, 100, 8, nd)}
	plots, err := c.build()
	require.NoError(t, err)

	if len(plots) != nd {
		t.Fatalf("Got %d rows, want %d", len(plots), nd)
	}
	var diag, lower, upper int
	for i := range plots {
		if len(plots[i]) != nd {
			t.Fatalf("Row %d has %d cells, want %d", i, len(plots[i]), nd)
		}
		for j, p := range plots[i] {
			switch {
			case p == nil:
				continue
			case i == j:
				diag++
			case j < i:
				lower++
			default:
				upper++
			}
		}
	}
	if diag != nd {
		t.Errorf("Got %d diagonal cells, want %d", diag, nd)
	}
	if want := nd * (nd - 1) / 2; lower != want {
		t.Errorf("Got %d lower cells, want %d", lower, want)
	}
	if upper != 0 {
		t.Errorf("Got %d cells above the diagonal, want 0", upper)
	}
}

func TestCornerSingleDim(t *testing.T) {
	c := Corner{Samples: testSamples(t, 50, 4, 1)}
	plots, err := c.build()
	require.NoError(t, err)

	if len(plots) != 1 || len(plots[0]) != 1 {
		t.Fatalf("Got %dx%d grid, want 1x1", len(plots), len(plots[0]))
	}
	if plots[0][0] == nil {
		t.Error("The single cell is blank")
	}
}

func TestCornerExplicitRanges(t *testing.T) {
	s := testSamples(t, 100, 8, 2)
	c := Corner{
		Samples: s,
		Ranges:  []*Interval{{Min: -5, Max: 5}, nil},
	}
	plots, err := c.build()
	require.NoError(t, err)

	// Explicit bounds are used verbatim.
	if p := plots[0][0]; p.X.Min != -5 || p.X.Max != 5 {
		t.Errorf("Got x range [%g, %g], want [-5, 5]", p.X.Min, p.X.Max)
	}
	// The 2D cell shares them on its x axis, dim 0 being its column.
	if p := plots[1][0]; p.X.Min != -5 || p.X.Max != 5 {
		t.Errorf("Got 2D x range [%g, %g], want [-5, 5]", p.X.Min, p.X.Max)
	}

	// The nil entry falls back to the heuristic.
	want := NiceBounds(s.Dim(1), DefaultTheme.BoundsFactor)
	if p := plots[1][1]; p.X.Min != want.Min || p.X.Max != want.Max {
		t.Errorf("Got x range [%g, %g], want [%g, %g]",
			p.X.Min, p.X.Max, want.Min, want.Max)
	}
}

func TestCornerNaNSamples(t *testing.T) {
	data := make([]float64, 20*2*2)
	for i := range data {
		data[i] = float64(i)
	}
	data[11] = math.NaN()
	s, err := NewSamples(20, 2, 2, data)
	require.NoError(t, err)

	// The heuristic limits turn NaN, which must be rejected before
	// any axis sees it.
	c := Corner{Samples: s}
	_, err = c.build()
	require.ErrorIs(t, err, ErrRange)

	// Under finite explicit limits the NaN is simply not binned.
	c.Ranges = []*Interval{{Min: 0, Max: 80}, {Min: 0, Max: 80}}
	require.NoError(t, c.Draw(testCanvas()))
}

func TestCornerZeroWidthRange(t *testing.T) {
	c := Corner{
		Samples: testSamples(t, 100, 8, 2),
		Ranges:  []*Interval{{Min: 5, Max: 5}, nil},
	}
	plots, err := c.build()
	require.NoError(t, err)

	// A degenerate interval widens around its value.
	if p := plots[0][0]; p.X.Min != 4.5 || p.X.Max != 5.5 {
		t.Errorf("Got x range [%g, %g], want [4.5, 5.5]", p.X.Min, p.X.Max)
	}
	require.NoError(t, c.Draw(testCanvas()))
}

func TestCornerSharedYRange(t *testing.T) {
	c := Corner{Samples: testSamples(t, 100, 8, 3)}
	plots, err := c.build()
	require.NoError(t, err)

	a, b := plots[2][0], plots[2][1]
	if a.Y.Min != b.Y.Min || a.Y.Max != b.Y.Max {
		t.Errorf("Row 2 y ranges differ: [%g, %g] vs [%g, %g]",
			a.Y.Min, a.Y.Max, b.Y.Min, b.Y.Max)
	}
}

func TestCornerEdgeLabels(t *testing.T) {
	c := Corner{
		Samples: testSamples(t, 100, 8, 2),
		Labels:  []string{"a", "b"},
	}
	plots, err := c.build()
	require.NoError(t, err)

	if got := plots[1][1].X.Label.Text; got != "b" {
		t.Errorf("Bottom diagonal x label = %q, want %q", got, "b")
	}
	if got := plots[1][0].X.Label.Text; got != "a" {
		t.Errorf("Bottom 2D x label = %q, want %q", got, "a")
	}
	if got := plots[1][0].Y.Label.Text; got != "b" {
		t.Errorf("Left 2D y label = %q, want %q", got, "b")
	}
	if got := plots[0][0].X.Label.Text; got != "" {
		t.Errorf("Inner diagonal x label = %q, want blank", got)
	}
}

func TestCornerValidation(t *testing.T) {
	s := testSamples(t, 100, 8, 3)
	tests := []struct {
		name string
		c    Corner
		want error
	}{
		{"nil samples", Corner{}, ErrShape},
		{"too few samples", Corner{Samples: mustSamples(t, 1, 2, 3)}, ErrTooFewSamples},
		{"bins mismatch", Corner{Samples: s, BinsByDim: []int{10, 10}}, ErrLengthMismatch},
		{"ranges mismatch", Corner{Samples: s, Ranges: []*Interval{nil}}, ErrLengthMismatch},
		{"labels mismatch", Corner{Samples: s, Labels: []string{"a"}}, ErrLengthMismatch},
		{"bad kind", Corner{Samples: s, Kind: Kind(7)}, ErrKind},
		{"inverted range", Corner{Samples: s, Ranges: []*Interval{nil, nil, {Min: 1, Max: -1}}}, ErrRange},
		{"nan range", Corner{Samples: s, Ranges: []*Interval{{Min: math.NaN(), Max: 1}, nil, nil}}, ErrRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.c.build()
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func mustSamples(t *testing.T, steps, walkers, dims int) *Samples {
	t.Helper()
	s, err := NewSamples(steps, walkers, dims, make([]float64, steps*walkers*dims))
	require.NoError(t, err)
	return s
}

func TestCornerDraw(t *testing.T) {
	s := testSamples(t, 200, 8, 3)

	require.NoError(t, CornerPlot(testCanvas(), s))

	hex := Corner{Samples: s, Kind: Hex, Bins: 40}
	require.NoError(t, hex.Draw(testCanvas()))
}

func TestCornerOffsetRelocation(t *testing.T) {
	// Samples around 1e6 force a scientific-notation offset, which
	// must end up in the axis label, not on the ticks.
	rnd := rand.New(rand.NewSource(7))
	data := make([]float64, 100*4*2)
	for i := range data {
		data[i] = 1e6 + rnd.NormFloat64()
	}
	s, err := NewSamples(100, 4, 2, data)
	require.NoError(t, err)

	c := Corner{Samples: s, Labels: []string{"a", "b"}}
	plots, err := c.build()
	require.NoError(t, err)

	p := plots[1][1]
	if got := p.X.Label.Text; got == "b" || got == "" {
		t.Errorf("Got x label %q, want %q plus an offset", got, "b")
	}
	for _, tick := range p.X.Tick.Marker.Ticks(p.X.Min, p.X.Max) {
		if tick.Label == "" {
			continue
		}
		v, err := strconv.ParseFloat(tick.Label, 64)
		if err != nil {
			continue
		}
		if math.Abs(v) > 100 {
			t.Errorf("Tick label %q still carries the full magnitude", tick.Label)
		}
	}
}
