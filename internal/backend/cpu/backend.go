// Package cpu implements the pure-Go CPU backend for the simulation kernel.
package cpu

import (
	"fmt"

	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/parallel"
	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/tensor"
)

// CPUBackend implements tensor.Backend on the host CPU.
// All operations allocate their result; state buffers are written back
// explicitly by the caller. Elementwise sweeps over large buffers are
// chunked across worker goroutines.
type CPUBackend struct {
	device tensor.Device
	par    parallel.Config
}

// New creates a new CPU backend with default parallelism.
func New() *CPUBackend {
	return &CPUBackend{device: tensor.CPU, par: parallel.DefaultConfig()}
}

// NewSequential creates a CPU backend that never spawns worker
// goroutines, useful for profiling and tiny groups.
func NewSequential() *CPUBackend {
	return &CPUBackend{device: tensor.CPU, par: parallel.Sequential()}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition with broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("add", a, b, func(x, y float32) float32 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("sub", a, b, func(x, y float32) float32 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("mul", a, b, func(x, y float32) float32 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("div", a, b, func(x, y float32) float32 { return x / y })
}

// binaryOp applies fn element-wise with a same-shape fast path and a
// stride-0 broadcasting slow path.
func (cpu *CPUBackend) binaryOp(name string, a, b *tensor.RawTensor, fn func(x, y float32) float32) *tensor.RawTensor {
	if a.DType() != tensor.Float32 || b.DType() != tensor.Float32 {
		panic(fmt.Sprintf("%s: float32 tensors required, got %s and %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, tensor.Float32, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	dst := result.AsFloat32()
	src1, src2 := a.AsFloat32(), b.AsFloat32()
	if !needsBroadcast {
		// Fast path: same shape, flat iteration.
		parallel.ForRange(len(dst), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = fn(src1[i], src2[i])
			}
		}, cpu.par)
		return result
	}

	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = fn(src1[flatIndex(i, outStrides, aStrides)], src2[flatIndex(i, outStrides, bStrides)])
		}
	}, cpu.par)
	return result
}

// broadcastStrides computes strides for broadcasting inShape to outShape.
// Broadcast dimensions (size 1 or missing) get stride 0.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)
	offset := outDim - len(inShape)
	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0:
			strides[i] = 0
		case inShape[inIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}
	return strides
}

// flatIndex maps a flat output index to the flat source index given
// broadcast-adjusted source strides.
func flatIndex(outIdx int, outStrides, inStrides []int) int {
	flat := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flat += coord * inStrides[i]
	}
	return flat
}
