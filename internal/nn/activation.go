package nn

import "github.com/EMSL-Computing/PIML4PDE/internal/tensor"

// Tanh is the hyperbolic tangent activation module.
//
// Tanh is the activation of choice for physics-informed networks: it is
// smooth to all orders, so the second derivatives the PDE residual
// needs exist everywhere (unlike ReLU's kink).
type Tanh struct{}

// NewTanh creates a Tanh activation.
func NewTanh() *Tanh {
	return &Tanh{}
}

// Forward applies tanh element-wise.
func (t *Tanh) Forward(input *tensor.Tensor) *tensor.Tensor {
	return input.Tanh()
}

// Parameters returns no parameters.
func (t *Tanh) Parameters() []*Parameter {
	return nil
}
