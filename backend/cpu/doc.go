// Copyright 2025 The Extended LIF Neurons Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU compute backend.
//
// # Overview
//
// The CPU backend implements every tensor.Backend operation in pure Go:
//   - Element-wise arithmetic with NumPy-style broadcasting
//   - float32 math via chewxy/math32, no float64 round trips
//   - Chunked parallel sweeps over large state buffers
//
// # Usage
//
//	backend := cpu.New()
//	group, err := lif.New(lif.Defaults[*cpu.Backend](100), backend)
//
// Use NewSequential to pin all work to the calling goroutine.
package cpu
