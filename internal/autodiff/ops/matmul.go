package ops

import "github.com/EMSL-Computing/PIML4PDE/internal/tensor"

// MatMulOp records matrix multiplication: output = a @ b.
type MatMulOp struct {
	inputs []*tensor.Tensor
	output *tensor.Tensor
}

// NewMatMulOp creates a MatMulOp.
func NewMatMulOp(a, b, output *tensor.Tensor) *MatMulOp {
	return &MatMulOp{
		inputs: []*tensor.Tensor{a, b},
		output: output,
	}
}

// Backward computes the matrix-calculus gradients:
//
//	grad_a = outputGrad @ bᵀ
//	grad_b = aᵀ @ outputGrad
func (op *MatMulOp) Backward(outputGrad *tensor.Tensor, backend tensor.Backend) []*tensor.Tensor {
	a, b := op.inputs[0], op.inputs[1]
	gradA := backend.MatMul(outputGrad, backend.Transpose(b))
	gradB := backend.MatMul(backend.Transpose(a), outputGrad)
	return []*tensor.Tensor{gradA, gradB}
}

// Inputs returns [a, b].
func (op *MatMulOp) Inputs() []*tensor.Tensor {
	return op.inputs
}

// Output returns a @ b.
func (op *MatMulOp) Output() *tensor.Tensor {
	return op.output
}
