package cpu

import (
	"fmt"
	"math"

	"github.com/EMSL-Computing/PIML4PDE/internal/tensor"
)

// Backend is the CPU compute backend.
type Backend struct{}

// New creates a CPU backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend name.
func (c *Backend) Name() string {
	return "CPU"
}

// binaryOp applies op element-wise over a and b, supporting a [1, C]
// row vector broadcast against an [N, C] matrix on either side.
func binaryOp(name string, a, b *tensor.Tensor, op func(x, y float64) float64) *tensor.Tensor {
	aShape, bShape := a.Shape(), b.Shape()

	switch {
	case aShape.Equal(bShape):
		out := tensor.Dense(aShape)
		ad, bd, od := a.Data(), b.Data(), out.Data()
		for i := range od {
			od[i] = op(ad[i], bd[i])
		}
		return out

	case bShape.Rows() == 1 && aShape.Cols() == bShape.Cols():
		// a [N, C] op b [1, C]: broadcast b across rows of a.
		out := tensor.Dense(aShape)
		ad, bd, od := a.Data(), b.Data(), out.Data()
		cols := aShape.Cols()
		for i := range od {
			od[i] = op(ad[i], bd[i%cols])
		}
		return out

	case aShape.Rows() == 1 && bShape.Cols() == aShape.Cols():
		// a [1, C] op b [N, C]: broadcast a across rows of b.
		out := tensor.Dense(bShape)
		ad, bd, od := a.Data(), b.Data(), out.Data()
		cols := bShape.Cols()
		for i := range od {
			od[i] = op(ad[i%cols], bd[i])
		}
		return out

	default:
		panic(fmt.Sprintf("%s: incompatible shapes %v and %v", name, aShape, bShape))
	}
}

// Add performs element-wise addition.
func (c *Backend) Add(a, b *tensor.Tensor) *tensor.Tensor {
	return binaryOp("add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction.
func (c *Backend) Sub(a, b *tensor.Tensor) *tensor.Tensor {
	return binaryOp("sub", a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication.
func (c *Backend) Mul(a, b *tensor.Tensor) *tensor.Tensor {
	return binaryOp("mul", a, b, func(x, y float64) float64 { return x * y })
}

// Scale multiplies every element by the constant s.
func (c *Backend) Scale(t *tensor.Tensor, s float64) *tensor.Tensor {
	out := tensor.Dense(t.Shape())
	td, od := t.Data(), out.Data()
	for i := range od {
		od[i] = td[i] * s
	}
	return out
}

// Tanh applies the hyperbolic tangent element-wise.
func (c *Backend) Tanh(t *tensor.Tensor) *tensor.Tensor {
	out := tensor.Dense(t.Shape())
	td, od := t.Data(), out.Data()
	for i := range od {
		od[i] = math.Tanh(td[i])
	}
	return out
}

// Transpose returns the 2-D transpose.
func (c *Backend) Transpose(t *tensor.Tensor) *tensor.Tensor {
	shape := t.Shape()
	rows, cols := shape.Rows(), shape.Cols()
	out := tensor.Dense(tensor.Shape{cols, rows})
	td, od := t.Data(), out.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			od[j*rows+i] = td[i*cols+j]
		}
	}
	return out
}

// Sum reduces to the total sum with shape [1]. Accumulation runs in
// slice order so repeated runs reduce identically.
func (c *Backend) Sum(t *tensor.Tensor) *tensor.Tensor {
	var sum float64
	for _, v := range t.Data() {
		sum += v
	}
	out := tensor.Dense(tensor.Shape{1})
	out.Data()[0] = sum
	return out
}

// Mean reduces to the arithmetic mean with shape [1].
func (c *Backend) Mean(t *tensor.Tensor) *tensor.Tensor {
	out := c.Sum(t)
	out.Data()[0] /= float64(t.NumElements())
	return out
}
