package autodiff

import (
	"github.com/EMSL-Computing/PIML4PDE/internal/tensor"
)

// Backward computes gradients of t with respect to every tensor on the
// backend's tape, seeding the walk with an all-ones gradient of t's
// shape. t is normally the scalar loss.
//
// Gradient arithmetic runs on the inner compute backend so the tape is
// left untouched for inspection.
func Backward(t *tensor.Tensor, backend *Backend) map[*tensor.Tensor]*tensor.Tensor {
	tape := backend.Tape()
	if tape.NumOps() == 0 {
		panic("backward: no operations recorded (did you forget Tape().StartRecording()?)")
	}

	seed := tensor.Ones(t.Shape(), backend.Inner())
	return tape.Backward(seed, backend.Inner())
}
