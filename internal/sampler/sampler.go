// Package sampler generates the coordinate sets the solver trains and
// evaluates on: random collocation points inside the domain and evenly
// spaced held-out grids.
package sampler

import "math/rand"

// Options configures a collocation draw.
type Options struct {
	XMin  float64
	XMax  float64
	Count int
	Seed  int64
}

// Uniform draws Count coordinates uniformly at random from
// [XMin, XMax]. The draw is deterministic for a given Seed: two calls
// with identical options return identical sequences.
//
// Inputs are assumed valid (XMin < XMax, Count > 0); config validation
// runs upstream.
func Uniform(opts Options) []float64 {
	rng := rand.New(rand.NewSource(opts.Seed))
	span := opts.XMax - opts.XMin

	points := make([]float64, opts.Count)
	for i := range points {
		points[i] = opts.XMin + rng.Float64()*span
	}
	return points
}

// Evenly returns count evenly spaced coordinates covering [xmin, xmax]
// inclusive of both endpoints. count of 1 yields just xmin.
func Evenly(xmin, xmax float64, count int) []float64 {
	points := make([]float64, count)
	if count == 1 {
		points[0] = xmin
		return points
	}
	step := (xmax - xmin) / float64(count-1)
	for i := range points {
		points[i] = xmin + float64(i)*step
	}
	// Guard the last point against accumulated rounding.
	points[count-1] = xmax
	return points
}
