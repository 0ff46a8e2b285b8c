// Package nn provides the trainable-parameter machinery shared by the
// simulation components: the Parameter type and the Module interface that
// exposes parameters to optimizers.
package nn

import (
	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/tensor"
)

// Module is the interface for components with a tensor-in, tensor-out
// forward computation and a discoverable set of trainable parameters.
//
// A LIF neuron group is a Module: Forward runs one deterministic simulation
// step on an input current and returns the spike indicators as float32, and
// Parameters lists whichever of threshold, tau and eta were marked trainable
// at construction.
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns all trainable parameters of this module.
	// Returns an empty slice for modules without trainable parameters.
	Parameters() []*Parameter[B]
}
