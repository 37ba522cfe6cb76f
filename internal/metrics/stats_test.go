package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate_PerfectPrediction(t *testing.T) {
	ref := []float64{1.0, 0.95, 0.9}
	report := Evaluate(ref, ref)

	assert.InDelta(t, 1.0, report.R2, 1e-15)
	assert.InDelta(t, 0.0, report.RMSE, 1e-15)
}

func TestEvaluate_KnownValues(t *testing.T) {
	reference := []float64{1, 2, 3}
	predicted := []float64{1.1, 1.9, 3.05}

	report := Evaluate(predicted, reference)

	// SSres = 0.01 + 0.01 + 0.0025 = 0.0225; SStot = 2.
	assert.InDelta(t, 1-0.0225/2.0, report.R2, 1e-12)
	// sqrt(0.0225 / 3)
	assert.InDelta(t, 0.08660254037844387, report.RMSE, 1e-12)
}

func TestRMSE_SingleOffset(t *testing.T) {
	// Constant offset of 0.5 everywhere.
	rmse := RMSE([]float64{1.5, 2.5, 3.5, 4.5}, []float64{1, 2, 3, 4})
	assert.InDelta(t, 0.5, rmse, 1e-12)
}

func TestRSquared_WorseThanMean(t *testing.T) {
	// Predictions further from the truth than the mean give negative R².
	r2 := RSquared([]float64{10, -10, 10}, []float64{1, 2, 3})
	assert.Negative(t, r2)
}
