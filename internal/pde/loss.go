package pde

import (
	"github.com/EMSL-Computing/PIML4PDE/internal/nn"
	"github.com/EMSL-Computing/PIML4PDE/internal/tensor"
)

// Loss assembles the training objective for the current parameters:
//
//	pde      = mean over collocation points of (d²h/dx²)²
//	boundary = (h(xmin) - leftHead)² + (h(xmax) - rightHead)²
//	total    = Weights.PDE·pde + Weights.Boundary·boundary
//
// The boundary conditions enter as a soft penalty, not a hard
// constraint. The returned tensor has shape [1] and sits at the end of
// the tape, ready for a backward pass.
func (p Laplace1D) Loss(net *nn.Sequential, collocation []float64, backend tensor.Backend) *tensor.Tensor {
	residual := Residual(net, collocation, backend)
	pdeTerm := residual.Mul(residual).Mean()

	boundaryX := tensor.FromColumn([]float64{p.XMin, p.XMax}, backend)
	predicted := net.Forward(boundaryX)
	target := tensor.FromColumn([]float64{p.BC.LeftHead, p.BC.RightHead}, backend)
	mismatch := predicted.Sub(target)
	boundaryTerm := mismatch.Mul(mismatch).Sum()

	return pdeTerm.Scale(p.Weights.PDE).Add(boundaryTerm.Scale(p.Weights.Boundary))
}
