// Copyright 2025 The Extended LIF Neurons Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/nn"
	"github.com/NullPointerExcy/Extended-LIF-Neurons/tensor"
)

// Module is the base interface for trainable simulation components.
//
// Every module must implement:
//   - Forward: compute output from input
//   - Parameters: return all trainable parameters
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	// For a neuron group this advances the simulation one timestep and
	// returns the spike mask as float32.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns all trainable parameters of this module.
	// Returns an empty slice for modules with nothing trainable.
	Parameters() []*Parameter[B]
}

// Parameter is a trainable tensor with an associated gradient slot.
// Gradients are produced externally (typically through a surrogate
// gradient) via SetGrad and consumed by an optimizer.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a new named trainable parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter[B](name, t)
}
