package ops

import "github.com/EMSL-Computing/PIML4PDE/internal/tensor"

// MulOp records element-wise multiplication: output = a * b.
//
// d(a*b)/da = b and d(a*b)/db = a. When both operands are the same
// tensor (squaring), the tape's gradient accumulation yields the
// expected 2x factor.
type MulOp struct {
	inputs []*tensor.Tensor
	output *tensor.Tensor
}

// NewMulOp creates a MulOp.
func NewMulOp(a, b, output *tensor.Tensor) *MulOp {
	return &MulOp{
		inputs: []*tensor.Tensor{a, b},
		output: output,
	}
}

// Backward computes grad*b for a and grad*a for b.
func (op *MulOp) Backward(outputGrad *tensor.Tensor, backend tensor.Backend) []*tensor.Tensor {
	a, b := op.inputs[0], op.inputs[1]
	gradA := reduceBroadcast(backend.Mul(outputGrad, b), a.Shape(), backend)
	gradB := reduceBroadcast(backend.Mul(outputGrad, a), b.Shape(), backend)
	return []*tensor.Tensor{gradA, gradB}
}

// Inputs returns [a, b].
func (op *MulOp) Inputs() []*tensor.Tensor {
	return op.inputs
}

// Output returns a * b.
func (op *MulOp) Output() *tensor.Tensor {
	return op.output
}
