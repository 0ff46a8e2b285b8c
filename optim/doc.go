// Copyright 2025 The Extended LIF Neurons Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for trainable neuron
// group parameters.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Optimizer: the interface for custom optimizers
//
// # Basic Usage
//
//	backend := cpu.New()
//	group, _ := lif.New(cfg, backend)
//
//	optimizer := optim.NewSGD(
//	    group.Parameters(),
//	    optim.SGDConfig{LR: 0.01, Momentum: 0.9},
//	    backend,
//	)
//
//	for step := 0; step < steps; step++ {
//	    spikes := group.Step(input, nil)
//	    // ... derive parameter gradients from the surrogate ...
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	    _ = spikes
//	}
package optim
