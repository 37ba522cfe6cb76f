// Package tensor implements the dense float64 tensors the solver trains
// on, together with the Backend interface compute backends implement.
//
// Tensors are identified by pointer: the autodiff tape keys recorded
// operations and accumulated gradients on *Tensor, so backends always
// allocate fresh result tensors and never modify their inputs.
package tensor

import "fmt"

// Tensor is a dense row-major float64 tensor bound to a compute backend.
// The backend handle makes method chaining possible: t.MatMul(w).Add(b)
// dispatches every op through the backend t was created with.
type Tensor struct {
	shape   Shape
	data    []float64
	backend Backend
}

// New creates a tensor from a data slice. The slice is copied.
func New(data []float64, shape Shape, b Backend) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, got %d", shape, shape.NumElements(), len(data))
	}
	t := newDense(shape)
	copy(t.data, data)
	t.backend = b
	return t, nil
}

// newDense allocates a zero-filled tensor with no backend attached.
// Backends use this (via Dense) to build results; the chaining methods
// below stamp the caller's backend onto every result.
func newDense(shape Shape) *Tensor {
	return &Tensor{
		shape: shape.Clone(),
		data:  make([]float64, shape.NumElements()),
	}
}

// Dense allocates an uninitialized (zero) tensor for backend results.
func Dense(shape Shape) *Tensor {
	return newDense(shape)
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Data returns the underlying storage. Mutating it mutates the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// NumElements returns the total element count.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Backend returns the compute backend the tensor is bound to.
func (t *Tensor) Backend() Backend {
	return t.backend
}

// At returns the element at row i, column j.
func (t *Tensor) At(i, j int) float64 {
	return t.data[i*t.shape.Cols()+j]
}

// Set assigns the element at row i, column j.
func (t *Tensor) Set(i, j int, v float64) {
	t.data[i*t.shape.Cols()+j] = v
}

// Item returns the single value of a one-element tensor.
func (t *Tensor) Item() float64 {
	if len(t.data) != 1 {
		panic(fmt.Sprintf("Item: tensor has %d elements, want 1", len(t.data)))
	}
	return t.data[0]
}

// Clone returns a deep copy sharing nothing with the original.
func (t *Tensor) Clone() *Tensor {
	out := newDense(t.shape)
	copy(out.data, t.data)
	out.backend = t.backend
	return out
}

// CopyFrom overwrites the tensor's data in place from src.
// Shapes must match. Used to restore parameter snapshots without
// breaking pointer identity.
func (t *Tensor) CopyFrom(src *Tensor) {
	if !t.shape.Equal(src.shape) {
		panic(fmt.Sprintf("CopyFrom: shape mismatch %v vs %v", t.shape, src.shape))
	}
	copy(t.data, src.data)
}

// stamp binds a backend-produced result to this tensor's backend so
// further chained calls keep dispatching through it.
func (t *Tensor) stamp(r *Tensor) *Tensor {
	r.backend = t.backend
	return r
}

// Add returns t + other (element-wise, with row broadcasting).
func (t *Tensor) Add(other *Tensor) *Tensor {
	return t.stamp(t.backend.Add(t, other))
}

// Sub returns t - other (element-wise, with row broadcasting).
func (t *Tensor) Sub(other *Tensor) *Tensor {
	return t.stamp(t.backend.Sub(t, other))
}

// Mul returns t * other (element-wise, with row broadcasting).
func (t *Tensor) Mul(other *Tensor) *Tensor {
	return t.stamp(t.backend.Mul(t, other))
}

// MatMul returns the matrix product t @ other.
func (t *Tensor) MatMul(other *Tensor) *Tensor {
	return t.stamp(t.backend.MatMul(t, other))
}

// Transpose returns the 2-D transpose of t.
func (t *Tensor) Transpose() *Tensor {
	return t.stamp(t.backend.Transpose(t))
}

// Scale returns t multiplied by the constant s.
func (t *Tensor) Scale(s float64) *Tensor {
	return t.stamp(t.backend.Scale(t, s))
}

// Tanh returns the element-wise hyperbolic tangent of t.
func (t *Tensor) Tanh() *Tensor {
	return t.stamp(t.backend.Tanh(t))
}

// Sum reduces t to its total sum, shape [1].
func (t *Tensor) Sum() *Tensor {
	return t.stamp(t.backend.Sum(t))
}

// Mean reduces t to its arithmetic mean, shape [1].
func (t *Tensor) Mean() *Tensor {
	return t.stamp(t.backend.Mean(t))
}
