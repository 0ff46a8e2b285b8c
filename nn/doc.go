// Copyright 2025 The Extended LIF Neurons Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the module and parameter abstractions that make
// neuron groups trainable.
//
// # Overview
//
// This package contains:
//   - Module: the interface every trainable component implements
//   - Parameter: a named tensor with a gradient slot
//
// A lif.NeuronGroup is a Module: Forward advances the simulation one
// timestep and Parameters exposes whichever of threshold, tau and eta
// were marked trainable, ready to hand to an optimizer:
//
//	group, _ := lif.New(cfg, backend)
//	sgd := optim.NewSGD(group.Parameters(), optim.SGDConfig{LR: 0.01}, backend)
package nn
