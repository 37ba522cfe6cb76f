package nn

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/EMSL-Computing/PIML4PDE/internal/tensor"
)

// Xavier returns a tensor initialized with Xavier/Glorot uniform
// values: U(-b, b) with b = sqrt(6 / (fan_in + fan_out)).
//
// The rand source is passed explicitly so that a run is fully
// determined by its initialization seed.
func Xavier(fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand, backend tensor.Backend) *tensor.Tensor {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	t := tensor.Zeros(shape, backend)
	data := t.Data()
	for i := range data {
		data[i] = (rng.Float64()*2.0 - 1.0) * bound
	}
	return t
}

// NewMLP builds a multilayer perceptron from a full layer-width list
// (inputs included), with tanh activations between layers and a pure
// affine final layer as the regression head.
//
// widths [1, 50, 1] yields Linear(1→50) → Tanh → Linear(50→1).
//
// The width list must already be validated (at least two positive
// entries); NewMLP panics on misuse.
func NewMLP(widths []int, rng *rand.Rand, backend tensor.Backend) *Sequential {
	if len(widths) < 2 {
		panic(fmt.Sprintf("NewMLP: need at least two widths, got %v", widths))
	}

	var layers []Module
	for i := 0; i < len(widths)-1; i++ {
		name := fmt.Sprintf("layer%d", i)
		layers = append(layers, NewLinear(name, widths[i], widths[i+1], rng, backend))
		if i < len(widths)-2 {
			layers = append(layers, NewTanh())
		}
	}
	return NewSequential(layers...)
}
