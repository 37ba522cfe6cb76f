// Package metrics computes the scalar diagnostics comparing the trained
// network against the closed-form solution.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Report holds the verification diagnostics for one run.
type Report struct {
	R2   float64 // coefficient of determination
	RMSE float64 // root-mean-squared error
}

// Evaluate compares elementwise predictions against reference values.
// The slices must have equal, non-zero length.
func Evaluate(predicted, reference []float64) Report {
	return Report{
		R2:   RSquared(predicted, reference),
		RMSE: RMSE(predicted, reference),
	}
}

// RSquared returns the coefficient of determination between predicted
// and reference values.
func RSquared(predicted, reference []float64) float64 {
	return stat.RSquaredFrom(predicted, reference, nil)
}

// RMSE returns the root-mean-squared error between predicted and
// reference values.
func RMSE(predicted, reference []float64) float64 {
	n := float64(len(predicted))
	return floats.Distance(predicted, reference, 2) / math.Sqrt(n)
}
