// Package nn implements the neural network building blocks of the
// solver: trainable parameters, the Linear layer, the Tanh activation,
// and the Sequential container used to assemble the head-prediction
// network from a layer-width list.
package nn

import "github.com/EMSL-Computing/PIML4PDE/internal/tensor"

// Module is the base interface for all network components.
type Module interface {
	// Forward computes the module's output for a batched input.
	// Inputs are [batch, features] matrices.
	Forward(input *tensor.Tensor) *tensor.Tensor

	// Parameters returns the module's trainable parameters, empty for
	// parameter-free modules such as activations.
	Parameters() []*Parameter
}
