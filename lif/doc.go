// Copyright 2025 The Extended LIF Neurons Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package lif simulates vectorized groups of leaky integrate-and-fire
// neurons.
//
// # Overview
//
// A NeuronGroup holds all neuron state in (batch, neurons) tensors and
// advances every neuron by one timestep per Step call. Beyond plain leaky
// integration it models:
//   - Spike-frequency adaptation (a per-neuron current that grows with
//     spiking and decays otherwise)
//   - Short-term synaptic depression with recovery
//   - An adaptive firing threshold, clipped to a configured range
//   - Neuromodulatory gain driven by an external signal
//   - Stochastic spiking, optionally with a self-locking dynamic
//     probability that makes recently active neurons lock into their
//     firing pattern
//
// # Basic Usage
//
//	backend := cpu.New()
//	cfg := lif.Defaults[*cpu.Backend](100)
//	cfg.Rand = rand.New(rand.NewSource(42))
//
//	group, err := lif.New(cfg, backend)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	input := tensor.Full[float32](tensor.Shape{1, 100}, 2.0, backend)
//	for t := 0; t < 100; t++ {
//	    spikes := group.Step(input, nil)
//	    _ = spikes
//	}
//
// # Training
//
// Mark threshold, tau or eta trainable in the Config and the group
// exposes them through Parameters() for an optimizer; the sg package
// provides the surrogate derivative of the spike function.
package lif
