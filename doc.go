// Package corner draws corner plots and walker traces from the output
// of Markov-Chain-Monte-Carlo samplers.
//
//
// Sample Layout
//
// Sampler output is a three dimensional tensor of shape
//     (steps, walkers, dims)
// stored steps-major: step 0 of every walker comes first, then step 1
// and so on. Older tools disagree on whether steps or walkers come
// first; this package fixes the order above and the Samples type
// enforces it.
//
//
// Corner Plots
//
// A corner plot shows every 1-dimensional marginal distribution along
// the diagonal of an N x N grid and every pairwise 2-dimensional
// marginal below it. Cells above the diagonal stay blank. Histogram
// binning is done by go-hep's hbook package and rendering by hplot and
// gonum/plot; this package contributes the grid bookkeeping, the
// axis-limit heuristic and the cosmetic axis formatting.
//
//     s, err := corner.NewSamples(steps, walkers, dims, data)
//     ...
//     c := vgimg.New(10*vg.Inch, 10*vg.Inch)
//     err = corner.CornerPlot(draw.New(c), s)
//
//
// Walker Traces
//
// A walker trace stacks one time-series panel per dimension, each
// overlaying the trajectory of every walker. It is the standard visual
// check for burn-in and stuck chains.
//
//     err = corner.WalkerTrace(draw.New(c), s)
//
// Both builders draw onto a caller supplied draw.Canvas and never own
// its lifecycle. All calls are synchronous and single threaded.
package corner
