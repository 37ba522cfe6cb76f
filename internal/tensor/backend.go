package tensor

// Backend defines the compute operations tensors dispatch to.
//
// Implementations must allocate a fresh result for every call and leave
// their inputs untouched: the autodiff layer records input/output
// pointers, and in-place updates would corrupt the recorded graph.
//
// Binary ops support two shape combinations: identical shapes, or a
// [1, C] row vector broadcast against an [N, C] matrix (either operand).
type Backend interface {
	// Element-wise binary operations
	Add(a, b *Tensor) *Tensor
	Sub(a, b *Tensor) *Tensor
	Mul(a, b *Tensor) *Tensor

	// Matrix operations
	MatMul(a, b *Tensor) *Tensor
	Transpose(t *Tensor) *Tensor

	// Element-wise unary operations
	Scale(t *Tensor, s float64) *Tensor
	Tanh(t *Tensor) *Tensor

	// Reductions to shape [1]
	Sum(t *Tensor) *Tensor
	Mean(t *Tensor) *Tensor

	// Metadata
	Name() string
}
