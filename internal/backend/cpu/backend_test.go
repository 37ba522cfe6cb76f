package cpu

import (
	"math"
	"testing"

	"github.com/EMSL-Computing/PIML4PDE/internal/tensor"
)

func almostEqual(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestAddSubMul(t *testing.T) {
	be := New()
	a := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, be)
	b := tensor.FromSlice([]float64{10, 20, 30, 40}, tensor.Shape{2, 2}, be)

	if got := a.Add(b).Data(); !almostEqual(got, []float64{11, 22, 33, 44}, 0) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a).Data(); !almostEqual(got, []float64{9, 18, 27, 36}, 0) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(b).Data(); !almostEqual(got, []float64{10, 40, 90, 160}, 0) {
		t.Errorf("Mul = %v", got)
	}
}

func TestBroadcastRow(t *testing.T) {
	be := New()
	m := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2}, be)
	row := tensor.FromSlice([]float64{10, 100}, tensor.Shape{1, 2}, be)

	want := []float64{11, 102, 13, 104, 15, 106}
	if got := m.Add(row).Data(); !almostEqual(got, want, 0) {
		t.Errorf("Add broadcast = %v, want %v", got, want)
	}
	// Broadcasting works from either side.
	if got := row.Add(m).Data(); !almostEqual(got, want, 0) {
		t.Errorf("Add broadcast (reversed) = %v, want %v", got, want)
	}
	if got := m.Mul(row).Data(); !almostEqual(got, []float64{10, 200, 30, 400, 50, 600}, 0) {
		t.Errorf("Mul broadcast = %v", got)
	}
}

func TestMatMul(t *testing.T) {
	be := New()
	a := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, be)
	b := tensor.FromSlice([]float64{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2}, be)

	c := a.MatMul(b)
	if !c.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("MatMul shape = %v, want [2, 2]", c.Shape())
	}
	want := []float64{58, 64, 139, 154}
	if !almostEqual(c.Data(), want, 1e-12) {
		t.Errorf("MatMul = %v, want %v", c.Data(), want)
	}
}

func TestTranspose(t *testing.T) {
	be := New()
	a := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, be)
	at := a.Transpose()
	if !at.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("Transpose shape = %v", at.Shape())
	}
	if !almostEqual(at.Data(), []float64{1, 4, 2, 5, 3, 6}, 0) {
		t.Errorf("Transpose = %v", at.Data())
	}
}

func TestScaleAndTanh(t *testing.T) {
	be := New()
	a := tensor.FromSlice([]float64{-1, 0, 2}, tensor.Shape{3, 1}, be)

	if got := a.Scale(-3).Data(); !almostEqual(got, []float64{3, 0, -6}, 0) {
		t.Errorf("Scale = %v", got)
	}

	th := a.Tanh().Data()
	want := []float64{math.Tanh(-1), 0, math.Tanh(2)}
	if !almostEqual(th, want, 1e-15) {
		t.Errorf("Tanh = %v, want %v", th, want)
	}
}

func TestReductions(t *testing.T) {
	be := New()
	a := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{4, 1}, be)

	s := a.Sum()
	if !s.Shape().Equal(tensor.Shape{1}) || s.Item() != 10 {
		t.Errorf("Sum = %v %v, want [1] 10", s.Shape(), s.Item())
	}

	m := a.Mean()
	if m.Item() != 2.5 {
		t.Errorf("Mean = %v, want 2.5", m.Item())
	}
}
