package ops

import "github.com/EMSL-Computing/PIML4PDE/internal/tensor"

// TanhOp records the hyperbolic tangent activation.
type TanhOp struct {
	input  *tensor.Tensor
	output *tensor.Tensor
}

// NewTanhOp creates a TanhOp.
func NewTanhOp(input, output *tensor.Tensor) *TanhOp {
	return &TanhOp{
		input:  input,
		output: output,
	}
}

// Backward computes grad_input = outputGrad * (1 - tanh²x) using the
// already-computed forward output.
func (op *TanhOp) Backward(outputGrad *tensor.Tensor, backend tensor.Backend) []*tensor.Tensor {
	out := op.output
	ones := tensor.Ones(out.Shape(), backend)
	derivative := backend.Sub(ones, backend.Mul(out, out))
	return []*tensor.Tensor{backend.Mul(outputGrad, derivative)}
}

// Inputs returns [x].
func (op *TanhOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.input}
}

// Output returns tanh(x).
func (op *TanhOp) Output() *tensor.Tensor {
	return op.output
}
