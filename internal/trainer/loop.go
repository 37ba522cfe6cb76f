// Package trainer runs the optimization loop: epoch by epoch it
// rebuilds the loss on a cleared tape, backpropagates, steps the
// optimizer, and tracks the best parameters seen so far.
package trainer

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/EMSL-Computing/PIML4PDE/internal/autodiff"
	"github.com/EMSL-Computing/PIML4PDE/internal/nn"
	"github.com/EMSL-Computing/PIML4PDE/internal/optim"
	"github.com/EMSL-Computing/PIML4PDE/internal/pde"
	"github.com/EMSL-Computing/PIML4PDE/internal/tensor"
)

// ErrDiverged reports a non-finite loss during training. The run is
// aborted immediately; the last finite best parameters remain applied
// to the network.
var ErrDiverged = errors.New("trainer: loss diverged")

// HistoryPoint is one (epoch, loss) observation.
type HistoryPoint struct {
	Epoch int
	Loss  float64
}

// Result summarizes a training run.
type Result struct {
	History   []HistoryPoint // append-only, one entry per completed epoch
	BestLoss  float64
	BestEpoch int
	EpochsRun int
}

// RunConfig captures the knobs required by the training loop.
type RunConfig struct {
	Epochs   int
	LogEvery int // 0 disables progress logging
}

// Run trains net against the problem's loss on a fixed collocation set.
//
// The loop always runs to the configured epoch count; there is no early
// stopping. Every epoch the loss is checked for finiteness — a NaN or
// Inf aborts with ErrDiverged, restoring the best snapshot so the
// caller never observes corrupted parameters.
//
// On return (normal or diverged) the network carries the best-seen
// parameters, restored from a deep-copy snapshot.
func Run(
	net *nn.Sequential,
	problem pde.Laplace1D,
	collocation []float64,
	opt optim.Optimizer,
	backend *autodiff.Backend,
	cfg RunConfig,
) (Result, error) {
	if cfg.Epochs <= 0 {
		return Result{}, fmt.Errorf("trainer: epochs must be > 0 (got %d)", cfg.Epochs)
	}

	params := net.Parameters()
	result := Result{
		History:  make([]HistoryPoint, 0, cfg.Epochs),
		BestLoss: math.Inf(1),
	}
	var best []*tensor.Tensor

	tape := backend.Tape()
	tape.StartRecording()
	defer tape.StopRecording()

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		tape.Clear()

		loss := problem.Loss(net, collocation, backend)
		lossValue := loss.Item()

		if math.IsNaN(lossValue) || math.IsInf(lossValue, 0) {
			restore(params, best)
			return result, fmt.Errorf("%w at epoch %d (loss=%v)", ErrDiverged, epoch, lossValue)
		}

		grads := autodiff.Backward(loss, backend)
		opt.Step(grads)
		opt.ZeroGrad()

		result.History = append(result.History, HistoryPoint{Epoch: epoch, Loss: lossValue})
		result.EpochsRun = epoch

		if lossValue < result.BestLoss {
			result.BestLoss = lossValue
			result.BestEpoch = epoch
			best = snapshot(params)
		}

		if cfg.LogEvery > 0 && epoch%cfg.LogEvery == 0 {
			log.Printf("epoch=%d loss=%.6e best=%.6e", epoch, lossValue, result.BestLoss)
		}
	}

	restore(params, best)
	return result, nil
}

// snapshot deep-copies the current parameter values.
func snapshot(params []*nn.Parameter) []*tensor.Tensor {
	out := make([]*tensor.Tensor, len(params))
	for i, p := range params {
		out[i] = p.Tensor().Clone()
	}
	return out
}

// restore copies a snapshot back into the live parameter tensors,
// preserving their pointer identity. A nil snapshot (divergence on the
// very first epoch) leaves the parameters as they are.
func restore(params []*nn.Parameter, best []*tensor.Tensor) {
	if best == nil {
		return
	}
	for i, p := range params {
		p.Tensor().CopyFrom(best[i])
	}
}
