// Package pde formulates the governing equation as a trainable loss:
// the Laplace residual of the network (obtained by exact second-order
// differentiation through its layers) plus the Dirichlet boundary
// mismatch.
package pde

// Dirichlet fixes the hydraulic head at both domain boundaries.
type Dirichlet struct {
	LeftHead  float64
	RightHead float64
}

// Weights balances the loss terms. The governing policy is equal
// weighting (both 1.0); the knobs exist for experimentation, not as
// tuned defaults.
type Weights struct {
	PDE      float64
	Boundary float64
}

// EqualWeights returns the default 1.0/1.0 weighting.
func EqualWeights() Weights {
	return Weights{PDE: 1.0, Boundary: 1.0}
}

// Laplace1D is the steady-state 1-D groundwater-flow problem:
// d²h/dx² = 0 on [XMin, XMax] with Dirichlet boundary heads.
type Laplace1D struct {
	XMin    float64
	XMax    float64
	BC      Dirichlet
	Weights Weights
}

// Analytic returns the closed-form solution at x: the linear
// interpolation between the boundary heads,
// h(x) = h_left + (h_right - h_left) * (x - xmin) / (xmax - xmin).
func (p Laplace1D) Analytic(x float64) float64 {
	frac := (x - p.XMin) / (p.XMax - p.XMin)
	return p.BC.LeftHead + (p.BC.RightHead-p.BC.LeftHead)*frac
}

// AnalyticAll evaluates the closed form over a coordinate slice.
func (p Laplace1D) AnalyticAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = p.Analytic(x)
	}
	return out
}
