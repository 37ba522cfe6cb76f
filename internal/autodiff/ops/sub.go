package ops

import "github.com/EMSL-Computing/PIML4PDE/internal/tensor"

// SubOp records element-wise subtraction: output = a - b.
type SubOp struct {
	inputs []*tensor.Tensor
	output *tensor.Tensor
}

// NewSubOp creates a SubOp.
func NewSubOp(a, b, output *tensor.Tensor) *SubOp {
	return &SubOp{
		inputs: []*tensor.Tensor{a, b},
		output: output,
	}
}

// Backward routes the gradient to a unchanged and negated to b.
func (op *SubOp) Backward(outputGrad *tensor.Tensor, backend tensor.Backend) []*tensor.Tensor {
	a, b := op.inputs[0], op.inputs[1]
	gradA := reduceBroadcast(outputGrad, a.Shape(), backend)
	gradB := reduceBroadcast(backend.Scale(outputGrad, -1), b.Shape(), backend)
	return []*tensor.Tensor{gradA, gradB}
}

// Inputs returns [a, b].
func (op *SubOp) Inputs() []*tensor.Tensor {
	return op.inputs
}

// Output returns a - b.
func (op *SubOp) Output() *tensor.Tensor {
	return op.output
}
