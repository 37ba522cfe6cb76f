package ops

import (
	"fmt"

	"github.com/EMSL-Computing/PIML4PDE/internal/tensor"
)

// reduceBroadcast folds a gradient back to the shape of a broadcast
// input. The forward broadcast supported by the backends is a [1, C]
// row vector stretched over [N, C] rows, so the reduction is a column
// sum over those rows.
func reduceBroadcast(grad *tensor.Tensor, targetShape tensor.Shape, backend tensor.Backend) *tensor.Tensor {
	gradShape := grad.Shape()
	if gradShape.Equal(targetShape) {
		return grad
	}

	if targetShape.Rows() == 1 && targetShape.Cols() == gradShape.Cols() {
		return sumRows(grad, targetShape)
	}

	panic(fmt.Sprintf("reduceBroadcast: cannot reduce %v to %v", gradShape, targetShape))
}

// sumRows collapses an [N, C] gradient to the [1, C] (or [C]) target.
func sumRows(grad *tensor.Tensor, targetShape tensor.Shape) *tensor.Tensor {
	cols := grad.Shape().Cols()
	out := tensor.Dense(targetShape)
	gd, od := grad.Data(), out.Data()
	for i, v := range gd {
		od[i%cols] += v
	}
	return out
}
