package pde

import (
	"fmt"

	"github.com/EMSL-Computing/PIML4PDE/internal/nn"
	"github.com/EMSL-Computing/PIML4PDE/internal/tensor"
)

// Taylor carries a batch of layer activations together with their first
// and second derivatives with respect to the input coordinate.
//
// Propagating the triple forward through the network computes d²h/dx²
// exactly — forward-mode differentiation in the coordinate — while
// every arithmetic step lands on the reverse-mode tape, keeping the
// result differentiable with respect to the network parameters. No
// finite differences are involved at any point.
type Taylor struct {
	V   *tensor.Tensor // activations            [batch, width]
	Dx  *tensor.Tensor // d(activation)/dx       [batch, width]
	Dxx *tensor.Tensor // d²(activation)/dx²     [batch, width]
}

// NewCoordinate seeds the propagation at the input coordinate itself:
// dx/dx = 1 and d²x/dx² = 0.
func NewCoordinate(xs []float64, backend tensor.Backend) Taylor {
	n := len(xs)
	return Taylor{
		V:   tensor.FromColumn(xs, backend),
		Dx:  tensor.Ones(tensor.Shape{n, 1}, backend),
		Dxx: tensor.Zeros(tensor.Shape{n, 1}, backend),
	}
}

// Propagate pushes the derivative triple through every layer of the
// network and returns the output triple: the head prediction, its
// gradient, and its Laplacian term d²h/dx².
func Propagate(net *nn.Sequential, state Taylor) Taylor {
	for _, layer := range net.Layers() {
		switch l := layer.(type) {
		case *nn.Linear:
			state = propagateLinear(l, state)
		case *nn.Tanh:
			state = propagateTanh(state)
		default:
			panic(fmt.Sprintf("pde: cannot differentiate through layer type %T", layer))
		}
	}
	return state
}

// propagateLinear applies y = v@W + b. The map is affine in v, so both
// derivatives transform by the weight alone:
//
//	y_x  = v_x  @ W
//	y_xx = v_xx @ W
func propagateLinear(l *nn.Linear, s Taylor) Taylor {
	w := l.Weight().Tensor()
	return Taylor{
		V:   s.V.MatMul(w).Add(l.Bias().Tensor()),
		Dx:  s.Dx.MatMul(w),
		Dxx: s.Dxx.MatMul(w),
	}
}

// propagateTanh applies a = tanh(v) with the chain rule
//
//	a_x  = (1 - a²) · v_x
//	a_xx = (1 - a²) · v_xx - 2a · a_x · v_x
//
// using the identity tanh' = 1 - tanh² so only the forward output is
// needed.
func propagateTanh(s Taylor) Taylor {
	a := s.V.Tanh()
	ones := tensor.Ones(a.Shape(), a.Backend())
	deriv := ones.Sub(a.Mul(a))

	ax := deriv.Mul(s.Dx)
	axx := deriv.Mul(s.Dxx).Sub(a.Mul(ax).Mul(s.Dx).Scale(2))

	return Taylor{V: a, Dx: ax, Dxx: axx}
}

// Residual evaluates the pointwise PDE residual d²h/dx² of the network
// at each coordinate, as an [n, 1] tensor. For an affine network the
// result is exactly zero everywhere.
func Residual(net *nn.Sequential, xs []float64, backend tensor.Backend) *tensor.Tensor {
	out := Propagate(net, NewCoordinate(xs, backend))
	return out.Dxx
}
