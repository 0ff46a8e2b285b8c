// Copyright 2025 The Extended LIF Neurons Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor data types.
// Supported types: float32, bool.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Bool    DataType = tensor.Bool
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	CUDA   Device = tensor.CUDA
	WebGPU Device = tensor.WebGPU
)

// ParseDevice resolves a device identifier such as "cpu" or "cuda".
func ParseDevice(s string) (Device, error) {
	return tensor.ParseDevice(s)
}

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 100} represents a batch of 2 rows of 100 neurons.
type Shape = tensor.Shape

// BroadcastShapes computes the broadcast result shape of a and b, and
// whether broadcasting is actually needed.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// Tensor is a generic type-safe tensor.
//
// T is the data type (float32 or bool).
// B is the backend implementation (CPU today; the Backend interface leaves
// room for GPU backends).
//
// Example:
//
//	backend := cpu.New()
//	v := tensor.Zeros[float32](tensor.Shape{2, 100}, backend)
//	th := tensor.Ones[float32](tensor.Shape{2, 100}, backend)
//	margin := v.Sub(th)
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Creation functions

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with a specific value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	return tensor.Full[T, B](shape, value, b)
}

// Randn creates a float32 tensor of Gaussian noise N(0, std) from the
// process-global random source.
func Randn[B Backend](shape Shape, std float32, b B) *Tensor[float32, B] {
	return tensor.Randn[B](shape, std, b)
}

// RandnSource is Randn drawing from the given source; a nil source falls
// back to the process-global one. Seed the source for reproducible noise.
func RandnSource[B Backend](rng *rand.Rand, shape Shape, std float32, b B) *Tensor[float32, B] {
	return tensor.RandnSource[B](rng, shape, std, b)
}

// Rand creates a float32 tensor of uniform values in [0, 1).
func Rand[B Backend](shape Shape, b B) *Tensor[float32, B] {
	return tensor.Rand[B](shape, b)
}

// RandSource is Rand drawing from the given source; a nil source falls
// back to the process-global one.
func RandSource[B Backend](rng *rand.Rand, shape Shape, b B) *Tensor[float32, B] {
	return tensor.RandSource[B](rng, shape, b)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation functions
// like Zeros, Ones, or FromSlice instead.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// Selection functions

// Where selects elements from x where cond is true and from y otherwise,
// with broadcasting across all three arguments.
func Where[T DType, B Backend](cond *Tensor[bool, B], x, y *Tensor[T, B]) *Tensor[T, B] {
	return tensor.Where(cond, x, y)
}

// BoolToFloat converts a spike mask to an exact 0/1 float32 tensor.
func BoolToFloat[B Backend](t *Tensor[bool, B]) *Tensor[float32, B] {
	return tensor.BoolToFloat(t)
}
