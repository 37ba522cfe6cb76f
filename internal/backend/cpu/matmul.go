package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/EMSL-Computing/PIML4PDE/internal/tensor"
)

// MatMul performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
// The inner product is computed by gonum's BLAS Gemm.
func (c *Backend) MatMul(a, b *tensor.Tensor) *tensor.Tensor {
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: only 2D tensors supported, got %v @ %v", aShape, bShape))
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]
	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch %v @ %v", aShape, bShape))
	}

	out := tensor.Dense(tensor.Shape{m, n})

	ga := blas64.General{Rows: m, Cols: k, Stride: k, Data: a.Data()}
	gb := blas64.General{Rows: k, Cols: n, Stride: n, Data: b.Data()}
	gc := blas64.General{Rows: m, Cols: n, Stride: n, Data: out.Data()}
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, ga, gb, 0, gc)

	return out
}
