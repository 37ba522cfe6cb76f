package nn

import (
	"fmt"
	"math/rand"

	"github.com/EMSL-Computing/PIML4PDE/internal/tensor"
)

// Linear implements a fully connected layer: y = x @ W + b.
//
// The weight is stored [in_features, out_features] so the forward pass
// multiplies directly without a transpose appearing on the gradient
// tape. The bias is stored [1, out_features] and broadcast across the
// batch.
//
// Weights use Xavier/Glorot uniform initialization drawn from the
// supplied rand source; biases start at zero.
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter
	bias        *Parameter
}

// NewLinear creates a Linear layer with Xavier-initialized weights.
// The name prefixes the layer's parameter names.
func NewLinear(name string, inFeatures, outFeatures int, rng *rand.Rand, backend tensor.Backend) *Linear {
	weight := Xavier(inFeatures, outFeatures, tensor.Shape{inFeatures, outFeatures}, rng, backend)
	bias := tensor.Zeros(tensor.Shape{1, outFeatures}, backend)

	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter(name+".weight", weight),
		bias:        NewParameter(name+".bias", bias),
	}
}

// Forward computes y = x @ W + b for a [batch, in_features] input.
func (l *Linear) Forward(input *tensor.Tensor) *tensor.Tensor {
	shape := input.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("Linear.Forward: expected 2D input [batch, features], got %v", shape))
	}
	if shape.Cols() != l.inFeatures {
		panic(fmt.Sprintf("Linear.Forward: expected %d input features, got %d", l.inFeatures, shape.Cols()))
	}

	return input.MatMul(l.weight.Tensor()).Add(l.bias.Tensor())
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter, shape [in_features, out_features].
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter, shape [1, out_features].
func (l *Linear) Bias() *Parameter {
	return l.bias
}

// InFeatures returns the input width.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the output width.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}
