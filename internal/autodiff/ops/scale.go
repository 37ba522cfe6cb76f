package ops

import "github.com/EMSL-Computing/PIML4PDE/internal/tensor"

// ScaleOp records multiplication by a constant: output = s * x.
// The constant is not a tensor, so no gradient is produced for it.
type ScaleOp struct {
	input  *tensor.Tensor
	output *tensor.Tensor
	scalar float64
}

// NewScaleOp creates a ScaleOp.
func NewScaleOp(x, output *tensor.Tensor, scalar float64) *ScaleOp {
	return &ScaleOp{
		input:  x,
		output: output,
		scalar: scalar,
	}
}

// Backward scales the output gradient by the same constant.
func (op *ScaleOp) Backward(outputGrad *tensor.Tensor, backend tensor.Backend) []*tensor.Tensor {
	return []*tensor.Tensor{backend.Scale(outputGrad, op.scalar)}
}

// Inputs returns [x].
func (op *ScaleOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.input}
}

// Output returns s * x.
func (op *ScaleOp) Output() *tensor.Tensor {
	return op.output
}
