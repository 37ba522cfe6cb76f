package nn

import "github.com/EMSL-Computing/PIML4PDE/internal/tensor"

// Sequential chains modules, feeding each output to the next input.
type Sequential struct {
	layers []Module
}

// NewSequential creates a Sequential container from the given layers.
func NewSequential(layers ...Module) *Sequential {
	return &Sequential{layers: layers}
}

// Forward applies every layer in order.
func (s *Sequential) Forward(input *tensor.Tensor) *tensor.Tensor {
	out := input
	for _, layer := range s.layers {
		out = layer.Forward(out)
	}
	return out
}

// Parameters returns the concatenated parameters of all layers.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, layer := range s.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// Layers returns the contained modules in order. The PDE residual
// walks these to propagate coordinate derivatives layer by layer.
func (s *Sequential) Layers() []Module {
	return s.layers
}
