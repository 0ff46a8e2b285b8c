// Copyright 2025 The Extended LIF Neurons Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/nn"
	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/optim"
	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/tensor"
)

// Optimizer defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config represents the base configuration shared by optimizers.
type Config = optim.Config

// SGD (Stochastic Gradient Descent)

// SGD implements stochastic gradient descent with optional momentum.
type SGD[B tensor.Backend] = optim.SGD[B]

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer over the given parameters.
//
// Example:
//
//	optimizer := optim.NewSGD(
//	    group.Parameters(),
//	    optim.SGDConfig{LR: 0.01, Momentum: 0.9},
//	    backend,
//	)
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], config SGDConfig, backend B) *SGD[B] {
	return optim.NewSGD[B](params, config, backend)
}
