package corner_test

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vdobler/corner"
)

// Example samples a banana-shaped 2D density with a handful of
// Metropolis walkers and draws both figures.
func Example() {
	const (
		steps   = 500
		walkers = 8
		dims    = 2
	)

	logp := func(x, y float64) float64 {
		return -(x*x)/2 - (y-x*x)*(y-x*x)/2
	}

	rnd := rand.New(rand.NewSource(1))
	data := make([]float64, steps*walkers*dims)
	for w := 0; w < walkers; w++ {
		x, y := rnd.Float64(), rnd.Float64()
		lp := logp(x, y)
		for s := 0; s < steps; s++ {
			nx := x + rnd.NormFloat64()*0.5
			ny := y + rnd.NormFloat64()*0.5
			if nlp := logp(nx, ny); nlp-lp > math.Log(rnd.Float64()) {
				x, y, lp = nx, ny, nlp
			}
			data[(s*walkers+w)*dims+0] = x
			data[(s*walkers+w)*dims+1] = y
		}
	}

	samples, err := corner.NewSamples(steps, walkers, dims, data)
	if err != nil {
		log.Fatal(err)
	}

	c := corner.Corner{
		Samples: samples,
		Bins:    50,
		Labels:  []string{"x", "y"},
	}
	if err := c.Draw(draw.New(vgimg.New(8*vg.Inch, 8*vg.Inch))); err != nil {
		log.Fatal(err)
	}

	t := corner.Trace{Samples: samples, Labels: []string{"x", "y"}}
	if err := t.Draw(draw.New(vgimg.New(8*vg.Inch, 8*vg.Inch))); err != nil {
		log.Fatal(err)
	}

	fmt.Println("ok")
	// Output: ok
}
