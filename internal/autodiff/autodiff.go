// Package autodiff implements reverse-mode automatic differentiation
// using the decorator pattern.
//
// Backend wraps any tensor.Backend and records every operation on a
// GradientTape during the forward pass. Backward walks the tape in
// reverse, applying each operation's chain rule and accumulating
// gradients for tensors used more than once.
//
// Usage:
//
//	ad := autodiff.New(cpu.New())
//	ad.Tape().StartRecording()
//	loss := ... // built from tensors bound to ad
//	grads := autodiff.Backward(loss, ad)
package autodiff

import (
	"github.com/EMSL-Computing/PIML4PDE/internal/autodiff/ops"
	"github.com/EMSL-Computing/PIML4PDE/internal/tensor"
)

// Backend wraps an inner compute backend and adds gradient tracking.
// It implements tensor.Backend.
type Backend struct {
	inner tensor.Backend
	tape  *GradientTape
}

// New creates an autodiff backend wrapping the given compute backend.
func New(inner tensor.Backend) *Backend {
	return &Backend{
		inner: inner,
		tape:  NewGradientTape(),
	}
}

// Tape returns the gradient tape for recording control: starting and
// stopping recording, and clearing between training epochs.
func (b *Backend) Tape() *GradientTape {
	return b.tape
}

// Inner returns the wrapped compute backend.
func (b *Backend) Inner() tensor.Backend {
	return b.inner
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "Autodiff(" + b.inner.Name() + ")"
}

// Add performs element-wise addition and records the operation.
func (b *Backend) Add(x, y *tensor.Tensor) *tensor.Tensor {
	result := b.inner.Add(x, y)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewAddOp(x, y, result))
	}
	return result
}

// Sub performs element-wise subtraction and records the operation.
func (b *Backend) Sub(x, y *tensor.Tensor) *tensor.Tensor {
	result := b.inner.Sub(x, y)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewSubOp(x, y, result))
	}
	return result
}

// Mul performs element-wise multiplication and records the operation.
func (b *Backend) Mul(x, y *tensor.Tensor) *tensor.Tensor {
	result := b.inner.Mul(x, y)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewMulOp(x, y, result))
	}
	return result
}

// MatMul performs matrix multiplication and records the operation.
func (b *Backend) MatMul(x, y *tensor.Tensor) *tensor.Tensor {
	result := b.inner.MatMul(x, y)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewMatMulOp(x, y, result))
	}
	return result
}

// Transpose delegates to the inner backend. The solver stores weights
// so that no forward pass transposes a tracked tensor; transposes occur
// only inside backward computations, which are never recorded.
func (b *Backend) Transpose(t *tensor.Tensor) *tensor.Tensor {
	return b.inner.Transpose(t)
}

// Scale multiplies by a constant and records the operation.
func (b *Backend) Scale(t *tensor.Tensor, s float64) *tensor.Tensor {
	result := b.inner.Scale(t, s)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewScaleOp(t, result, s))
	}
	return result
}

// Tanh applies the activation and records the operation.
func (b *Backend) Tanh(t *tensor.Tensor) *tensor.Tensor {
	result := b.inner.Tanh(t)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewTanhOp(t, result))
	}
	return result
}

// Sum reduces to the total sum and records the operation.
func (b *Backend) Sum(t *tensor.Tensor) *tensor.Tensor {
	result := b.inner.Sum(t)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewSumOp(t, result))
	}
	return result
}

// Mean reduces to the arithmetic mean and records the operation.
func (b *Backend) Mean(t *tensor.Tensor) *tensor.Tensor {
	result := b.inner.Mean(t)
	if b.tape.IsRecording() {
		b.tape.Record(ops.NewMeanOp(t, result))
	}
	return result
}
