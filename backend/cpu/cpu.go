// Copyright 2025 The Extended LIF Neurons Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/NullPointerExcy/Extended-LIF-Neurons/internal/backend/cpu"
	"github.com/NullPointerExcy/Extended-LIF-Neurons/tensor"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend provides pure Go implementations of all tensor
// operations, with elementwise sweeps chunked across worker goroutines
// for large neuron groups.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/NullPointerExcy/Extended-LIF-Neurons/backend/cpu"
//	    "github.com/NullPointerExcy/Extended-LIF-Neurons/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    v := tensor.Zeros[float32](tensor.Shape{2, 100}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewSequential creates a CPU backend that never spawns worker
// goroutines, useful for profiling and tiny groups.
func NewSequential() *Backend {
	return internalcpu.NewSequential()
}
