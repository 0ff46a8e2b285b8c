package cpu

import (
	"github.com/chewxy/math32"

	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/tensor"
)

// Element-wise math. float32 throughout via math32, no float64 round trips.

// Exp computes the element-wise exponential.
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.scalarOp("exp", x, math32.Exp)
}

// Abs computes the element-wise absolute value.
func (cpu *CPUBackend) Abs(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.scalarOp("abs", x, math32.Abs)
}

// Atan computes the element-wise arctangent.
func (cpu *CPUBackend) Atan(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.scalarOp("atan", x, math32.Atan)
}

// Sigmoid computes the element-wise logistic function 1/(1+exp(-x)).
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.scalarOp("sigmoid", x, func(v float32) float32 {
		return 1 / (1 + math32.Exp(-v))
	})
}

// Clamp limits every element to [lo, hi].
func (cpu *CPUBackend) Clamp(x *tensor.RawTensor, lo, hi float32) *tensor.RawTensor {
	return cpu.scalarOp("clamp", x, func(v float32) float32 {
		return math32.Min(math32.Max(v, lo), hi)
	})
}

// Sum returns the total sum over all elements.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) float32 {
	var sum float32
	for _, v := range x.AsFloat32() {
		sum += v
	}
	return sum
}
