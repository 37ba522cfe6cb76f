// Package ops defines the differentiable operations recorded on the
// gradient tape.
//
// Each operation captures its input and output tensors during the
// forward pass and knows how to map an output gradient back onto its
// inputs via the chain rule:
//   - AddOp, SubOp, MulOp: element-wise arithmetic, broadcast aware
//   - MatMulOp: d(A@B)/dA = grad@Bᵀ, d(A@B)/dB = Aᵀ@grad
//   - ScaleOp: multiplication by a constant
//   - TanhOp: d(tanh x)/dx = 1 - tanh²x
//   - SumOp, MeanOp: full reductions to a one-element tensor
package ops

import "github.com/EMSL-Computing/PIML4PDE/internal/tensor"

// Operation is one differentiable step in the recorded computation.
type Operation interface {
	// Backward computes gradients for the inputs given the gradient of
	// the loss with respect to the output. The returned slice matches
	// Inputs() positionally; a nil entry means no gradient flows there.
	Backward(outputGrad *tensor.Tensor, backend tensor.Backend) []*tensor.Tensor

	// Inputs returns the operation's input tensors.
	Inputs() []*tensor.Tensor

	// Output returns the tensor produced by the operation.
	Output() *tensor.Tensor
}
