// Copyright 2025 The Extended LIF Neurons Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package lif

import (
	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/lif"
	"github.com/NullPointerExcy/Extended-LIF-Neurons/tensor"
)

// NeuronGroup is a vectorized group of leaky integrate-and-fire neurons.
// All state lives in (batch, neurons) tensors; one Step advances every
// neuron in the group by one timestep.
type NeuronGroup[B tensor.Backend] = lif.NeuronGroup[B]

// Config holds the full construction-time configuration of a neuron
// group. Build one with Defaults and override fields as needed; Validate
// rejects invalid values, naming the offending parameter.
type Config[B tensor.Backend] = lif.Config[B]

// ModulationTransform maps a raw modulation signal to a gain tensor.
type ModulationTransform[B tensor.Backend] = lif.ModulationTransform[B]

// ThresholdPolicy selects how the adaptive threshold is updated.
type ThresholdPolicy = lif.ThresholdPolicy

// Threshold policies.
const (
	// PushDecay pushes the threshold up on spiking neurons and decays it
	// toward 1.0 on silent ones.
	PushDecay ThresholdPolicy = lif.PushDecay
	// ClipOnly only clips the threshold to its range, leaving movement to
	// an external optimizer.
	ClipOnly ThresholdPolicy = lif.ClipOnly
)

// DynamicProb is the self-locking spike probability mechanism used in
// stochastic mode.
type DynamicProb[B tensor.Backend] = lif.DynamicProb[B]

// DynamicProbConfig configures the dynamic spike probability mechanism.
type DynamicProbConfig = lif.DynamicProbConfig

// Defaults returns the canonical configuration for n neurons.
func Defaults[B tensor.Backend](n int) Config[B] {
	return lif.Defaults[B](n)
}

// New validates cfg and constructs a neuron group with fresh state.
func New[B tensor.Backend](cfg Config[B], backend B) (*NeuronGroup[B], error) {
	return lif.New[B](cfg, backend)
}

// NewDynamicProb allocates a standalone dynamic probability mechanism.
// Groups construct their own when Config.DynamicSpikeProbability is set;
// this is for callers composing custom spike generation.
func NewDynamicProb[B tensor.Backend](cfg DynamicProbConfig, batchSize, numNeurons int, backend B) *DynamicProb[B] {
	return lif.NewDynamicProb[B](cfg, batchSize, numNeurons, backend)
}
