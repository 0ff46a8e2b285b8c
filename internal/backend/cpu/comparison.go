package cpu

import (
	"fmt"

	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/tensor"
)

// Comparison operations - return bool tensors.

// Greater returns a > b element-wise.
func (cpu *CPUBackend) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compareOp("greater", a, b, func(x, y float32) bool { return x > y })
}

// Lower returns a < b element-wise.
func (cpu *CPUBackend) Lower(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compareOp("lower", a, b, func(x, y float32) bool { return x < y })
}

// GreaterEqualScalar returns x >= s element-wise.
func (cpu *CPUBackend) GreaterEqualScalar(x *tensor.RawTensor, s float32) *tensor.RawTensor {
	if x.DType() != tensor.Float32 {
		panic(fmt.Sprintf("greaterEqualScalar: float32 tensor required, got %s", x.DType()))
	}
	result, err := tensor.NewRaw(x.Shape(), tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("greaterEqualScalar: %v", err))
	}
	src := x.AsFloat32()
	dst := result.AsBool()
	for i, v := range src {
		dst[i] = v >= s
	}
	return result
}

func (cpu *CPUBackend) compareOp(name string, a, b *tensor.RawTensor, fn func(x, y float32) bool) *tensor.RawTensor {
	if a.DType() != tensor.Float32 || b.DType() != tensor.Float32 {
		panic(fmt.Sprintf("%s: float32 tensors required, got %s and %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	dst := result.AsBool()
	src1, src2 := a.AsFloat32(), b.AsFloat32()
	if !needsBroadcast {
		for i := range dst {
			dst[i] = fn(src1[i], src2[i])
		}
		return result
	}

	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)
	for i := range dst {
		dst[i] = fn(src1[flatIndex(i, outStrides, aStrides)], src2[flatIndex(i, outStrides, bStrides)])
	}
	return result
}
