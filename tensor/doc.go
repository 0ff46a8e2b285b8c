// Copyright 2025 The Extended LIF Neurons Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor operations for spiking neuron
// simulations.
//
// # Overview
//
// Neuron state (membrane potentials, thresholds, spike masks) lives in
// (batch, neurons) tensors. This package provides:
//   - Generic type-safe tensors (Tensor[T, B]) over float32 and bool
//   - NumPy-style broadcasting
//   - Device abstraction via the Backend interface
//   - Seedable random tensor creation for reproducible simulations
//
// # Basic Usage
//
//	import (
//	    "github.com/NullPointerExcy/Extended-LIF-Neurons/tensor"
//	    "github.com/NullPointerExcy/Extended-LIF-Neurons/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    v := tensor.Zeros[float32](tensor.Shape{2, 100}, backend)
//	    th := tensor.Full[float32](tensor.Shape{2, 100}, 1.0, backend)
//
//	    spikes := v.Sub(th).GreaterEqualScalar(0)
//	}
//
// # Supported Data Types
//
// The DType constraint admits float32 for numeric state and bool for
// spike masks. Cast and BoolToFloat convert between the two.
package tensor
