package corner

import "fmt"

// Samples holds MCMC sampler output as a dense tensor of shape
// (steps, walkers, dims), stored steps-major. The zero value is not
// usable; use NewSamples.
type Samples struct {
	steps   int
	walkers int
	dims    int
	data    []float64
}

// NewSamples builds a sample tensor from a flat, steps-major value
// slice. The value at (step s, walker w, dim d) lives at index
// (s*walkers+w)*dims + d. The data is copied, so the caller may reuse
// its slice.
func NewSamples(steps, walkers, dims int, data []float64) (*Samples, error) {
	if steps <= 0 || walkers <= 0 || dims <= 0 {
		return nil, fmt.Errorf("%w: nonpositive extent in (%d, %d, %d)",
			ErrShape, steps, walkers, dims)
	}
	if n := steps * walkers * dims; len(data) != n {
		return nil, fmt.Errorf("%w: shape (%d, %d, %d) needs %d values, got %d",
			ErrShape, steps, walkers, dims, n, len(data))
	}
	s := &Samples{
		steps:   steps,
		walkers: walkers,
		dims:    dims,
		data:    make([]float64, len(data)),
	}
	copy(s.data, data)
	return s, nil
}

// Steps returns the number of sampling steps.
func (s *Samples) Steps() int { return s.steps }

// Walkers returns the number of independent chains.
func (s *Samples) Walkers() int { return s.walkers }

// Dims returns the number of model parameters.
func (s *Samples) Dims() int { return s.dims }

// At returns the value of dimension d for walker w at step.
func (s *Samples) At(step, w, d int) float64 {
	return s.data[(step*s.walkers+w)*s.dims+d]
}

// Dim returns all values of dimension d, flattened over steps and
// walkers. The result is a fresh slice of length Steps*Walkers.
func (s *Samples) Dim(d int) []float64 {
	out := make([]float64, s.steps*s.walkers)
	for i := range out {
		out[i] = s.data[i*s.dims+d]
	}
	return out
}

// Trace returns the trajectory of dimension d for walker w, one value
// per step.
func (s *Samples) Trace(w, d int) []float64 {
	out := make([]float64, s.steps)
	for step := range out {
		out[step] = s.At(step, w, d)
	}
	return out
}
