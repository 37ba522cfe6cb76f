package ops

import "github.com/EMSL-Computing/PIML4PDE/internal/tensor"

// SumOp records a full reduction to the total sum, shape [1].
type SumOp struct {
	input  *tensor.Tensor
	output *tensor.Tensor
}

// NewSumOp creates a SumOp.
func NewSumOp(input, output *tensor.Tensor) *SumOp {
	return &SumOp{input: input, output: output}
}

// Backward broadcasts the scalar output gradient to the input shape.
func (op *SumOp) Backward(outputGrad *tensor.Tensor, backend tensor.Backend) []*tensor.Tensor {
	g := outputGrad.Data()[0]
	return []*tensor.Tensor{tensor.Full(op.input.Shape(), g, backend)}
}

// Inputs returns [x].
func (op *SumOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.input}
}

// Output returns sum(x).
func (op *SumOp) Output() *tensor.Tensor {
	return op.output
}

// MeanOp records a full reduction to the arithmetic mean, shape [1].
type MeanOp struct {
	input  *tensor.Tensor
	output *tensor.Tensor
}

// NewMeanOp creates a MeanOp.
func NewMeanOp(input, output *tensor.Tensor) *MeanOp {
	return &MeanOp{input: input, output: output}
}

// Backward broadcasts outputGrad / n to the input shape.
func (op *MeanOp) Backward(outputGrad *tensor.Tensor, backend tensor.Backend) []*tensor.Tensor {
	g := outputGrad.Data()[0] / float64(op.input.NumElements())
	return []*tensor.Tensor{tensor.Full(op.input.Shape(), g, backend)}
}

// Inputs returns [x].
func (op *MeanOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.input}
}

// Output returns mean(x).
func (op *MeanOp) Output() *tensor.Tensor {
	return op.output
}
