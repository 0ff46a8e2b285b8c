// Copyright 2025 The Extended LIF Neurons Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: Pure Go with chunked parallel sweeps
//   - backend/cuda: NVIDIA GPU via CUDA (planned)
//   - backend/webgpu: Cross-platform GPU compute (planned)
//
// Example:
//
//	import (
//	    "github.com/NullPointerExcy/Extended-LIF-Neurons/tensor"
//	    "github.com/NullPointerExcy/Extended-LIF-Neurons/backend/cpu"
//	)
//
//	backend := cpu.New()
//	v := tensor.Zeros[float32](tensor.Shape{2, 100}, backend)
//	th := tensor.Ones[float32](tensor.Shape{2, 100}, backend)
//	margin := v.Sub(th) // Uses backend.Sub under the hood
type Backend interface {
	// Element-wise binary operations with broadcasting.
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.
	Div(a, b *RawTensor) *RawTensor // Element-wise division.

	// Scalar operations (element-wise with scalar).
	AddScalar(x *RawTensor, s float32) *RawTensor // Add scalar.
	SubScalar(x *RawTensor, s float32) *RawTensor // Subtract scalar.
	MulScalar(x *RawTensor, s float32) *RawTensor // Multiply by scalar.
	DivScalar(x *RawTensor, s float32) *RawTensor // Divide by scalar.

	// Element-wise math.
	Exp(x *RawTensor) *RawTensor                // Exponential.
	Abs(x *RawTensor) *RawTensor                // Absolute value.
	Atan(x *RawTensor) *RawTensor               // Arctangent.
	Sigmoid(x *RawTensor) *RawTensor            // Logistic function.
	Clamp(x *RawTensor, lo, hi float32) *RawTensor // Limit to [lo, hi].

	// Comparisons, producing Bool tensors.
	Greater(a, b *RawTensor) *RawTensor                // a > b with broadcasting.
	Lower(a, b *RawTensor) *RawTensor                  // a < b with broadcasting.
	GreaterEqualScalar(x *RawTensor, s float32) *RawTensor // x >= s.

	// Selection and conversion.
	Where(cond, x, y *RawTensor) *RawTensor       // Select x where cond else y.
	Cast(x *RawTensor, dtype DataType) *RawTensor // Convert between Float32 and Bool.

	// Reductions.
	Sum(x *RawTensor) float32 // Total sum over all elements.

	// Backend metadata.
	Name() string   // Human-readable backend name.
	Device() Device // Device this backend computes on.
}
