package cpu

import (
	"fmt"

	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/parallel"
	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/tensor"
)

// Scalar operations - element-wise operations with a scalar value.

// AddScalar adds a scalar to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, s float32) *tensor.RawTensor {
	return cpu.scalarOp("addScalar", x, func(v float32) float32 { return v + s })
}

// SubScalar subtracts a scalar from every element.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, s float32) *tensor.RawTensor {
	return cpu.scalarOp("subScalar", x, func(v float32) float32 { return v - s })
}

// MulScalar multiplies every element by a scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, s float32) *tensor.RawTensor {
	return cpu.scalarOp("mulScalar", x, func(v float32) float32 { return v * s })
}

// DivScalar divides every element by a scalar.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, s float32) *tensor.RawTensor {
	return cpu.scalarOp("divScalar", x, func(v float32) float32 { return v / s })
}

func (cpu *CPUBackend) scalarOp(name string, x *tensor.RawTensor, fn func(v float32) float32) *tensor.RawTensor {
	if x.DType() != tensor.Float32 {
		panic(fmt.Sprintf("%s: float32 tensor required, got %s", name, x.DType()))
	}
	result, err := tensor.NewRaw(x.Shape(), tensor.Float32, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}
	src := x.AsFloat32()
	dst := result.AsFloat32()
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = fn(src[i])
		}
	}, cpu.par)
	return result
}
