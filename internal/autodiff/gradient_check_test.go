package autodiff

import (
	"math"
	"testing"

	"github.com/EMSL-Computing/PIML4PDE/internal/backend/cpu"
	"github.com/EMSL-Computing/PIML4PDE/internal/tensor"
)

// Compares reverse-mode gradients against central finite differences on a
// small composite expression exercising matmul, tanh, mul and mean.
func TestGradientCheck_Composite(t *testing.T) {
	ad := New(cpu.New())

	x := tensor.FromSlice([]float64{-0.5, 0.1, 0.8}, tensor.Shape{3, 1}, ad)
	w := tensor.FromSlice([]float64{0.7, -0.3}, tensor.Shape{1, 2}, ad)

	loss := func() float64 {
		h := x.MatMul(w).Tanh()
		return h.Mul(h).Mean().Item()
	}

	ad.Tape().StartRecording()
	h := x.MatMul(w).Tanh()
	out := h.Mul(h).Mean()
	grads := Backward(out, ad)
	ad.Tape().StopRecording()

	gw, ok := grads[w]
	if !ok {
		t.Fatal("no gradient recorded for w")
	}

	const eps = 1e-6
	wd := w.Data()
	for i := range wd {
		orig := wd[i]
		wd[i] = orig + eps
		plus := loss()
		wd[i] = orig - eps
		minus := loss()
		wd[i] = orig

		numerical := (plus - minus) / (2 * eps)
		analytic := gw.Data()[i]
		if math.Abs(numerical-analytic) > 1e-7 {
			t.Errorf("w[%d]: numerical %v vs analytic %v", i, numerical, analytic)
		}
	}
}
