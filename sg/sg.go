// Copyright 2025 The Extended LIF Neurons Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package sg provides surrogate spike functions for deterministic spike
// generation.
//
// The forward pass is always the Heaviside step on the membrane margin
// V - V_th; the variants differ only in the smooth derivative
// approximation used to backpropagate through the spike:
//
//	spikes := sg.Spikes(margin)
//	grad := sg.Grad(sg.FastSigmoid, margin, alpha)
package sg

import (
	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/sg"
	"github.com/NullPointerExcy/Extended-LIF-Neurons/tensor"
)

// Name identifies a surrogate gradient variant.
type Name = sg.Name

// The supported surrogate gradient variants.
const (
	Heaviside   Name = sg.Heaviside
	FastSigmoid Name = sg.FastSigmoid
	Gaussian    Name = sg.Gaussian
	Arctan      Name = sg.Arctan
)

// Parse resolves a surrogate name, rejecting unknown identifiers with an
// error that lists the valid ones.
func Parse(s string) (Name, error) {
	return sg.Parse(s)
}

// Names returns all registered surrogate names.
func Names() []Name {
	return sg.Names()
}

// Spikes computes the Heaviside forward pass: a neuron spikes when its
// membrane margin V - V_th is non-negative.
func Spikes[B tensor.Backend](margin *tensor.Tensor[float32, B]) *tensor.Tensor[bool, B] {
	return sg.Spikes(margin)
}

// Grad computes the surrogate derivative of the spike function for the
// given margin, using the named variant with sharpness alpha.
func Grad[B tensor.Backend](name Name, margin *tensor.Tensor[float32, B], alpha float32) *tensor.Tensor[float32, B] {
	return sg.Grad(name, margin, alpha)
}
