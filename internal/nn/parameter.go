package nn

import "github.com/EMSL-Computing/PIML4PDE/internal/tensor"

// Parameter is a trainable tensor with an optional gradient slot.
//
// The tensor's pointer identity is load-bearing: the tape records it as
// an operation input, and the optimizer looks its gradient up by that
// pointer, so parameter updates mutate the tensor's data in place and
// never replace the tensor itself.
type Parameter struct {
	name   string
	tensor *tensor.Tensor
	grad   *tensor.Tensor
}

// NewParameter wraps an initialized tensor as a trainable parameter.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{name: name, tensor: t}
}

// Name returns the parameter name, e.g. "layer0.weight".
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// Grad returns the gradient tensor, nil before the first backward pass.
func (p *Parameter) Grad() *tensor.Tensor {
	return p.grad
}

// SetGrad stores a gradient tensor.
func (p *Parameter) SetGrad(grad *tensor.Tensor) {
	p.grad = grad
}

// ZeroGrad clears the stored gradient.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}
