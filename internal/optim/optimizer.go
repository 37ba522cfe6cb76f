// Package optim implements the gradient-based optimizers driving the
// training loop: Adam (the default) and SGD with momentum.
//
// Optimizers consume the gradient map produced by autodiff.Backward and
// update parameter tensors in place, preserving the pointer identity
// the tape and gradient lookup depend on.
package optim

import (
	"github.com/EMSL-Computing/PIML4PDE/internal/nn"
	"github.com/EMSL-Computing/PIML4PDE/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one gradient update to all parameters. Parameters
	// absent from the map did not participate in the forward pass and
	// are skipped.
	Step(grads map[*tensor.Tensor]*tensor.Tensor)

	// ZeroGrad clears stored parameter gradients before the next
	// backward pass.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64

	// SetLR updates the learning rate.
	SetLR(lr float64)
}

// gradientFor looks up the gradient recorded for a parameter's tensor.
func gradientFor(param *nn.Parameter, grads map[*tensor.Tensor]*tensor.Tensor) *tensor.Tensor {
	if param == nil {
		return nil
	}
	return grads[param.Tensor()]
}
