package cpu

import (
	"fmt"

	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/tensor"
)

// Where selects elements from x where condition is true, otherwise from y.
// All three tensors broadcast to a common shape. This is the select-where
// primitive behind the membrane reset: fired neurons take V_reset, the rest
// keep their integrated potential.
func (cpu *CPUBackend) Where(condition, x, y *tensor.RawTensor) *tensor.RawTensor {
	if condition.DType() != tensor.Bool {
		panic(fmt.Sprintf("where: condition must be bool, got %s", condition.DType()))
	}
	if x.DType() != y.DType() {
		panic(fmt.Sprintf("where: x and y must have same dtype, got %s and %s", x.DType(), y.DType()))
	}

	outShape1, _, err := tensor.BroadcastShapes(condition.Shape(), x.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: failed to broadcast condition and x: %v", err))
	}
	outShape, _, err := tensor.BroadcastShapes(outShape1, y.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: failed to broadcast with y: %v", err))
	}

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}

	outStrides := outShape.ComputeStrides()
	condStrides := broadcastStrides(condition.Shape(), outShape)
	xStrides := broadcastStrides(x.Shape(), outShape)
	yStrides := broadcastStrides(y.Shape(), outShape)
	cond := condition.AsBool()

	switch x.DType() {
	case tensor.Float32:
		dst := result.AsFloat32()
		xs, ys := x.AsFloat32(), y.AsFloat32()
		for i := range dst {
			if cond[flatIndex(i, outStrides, condStrides)] {
				dst[i] = xs[flatIndex(i, outStrides, xStrides)]
			} else {
				dst[i] = ys[flatIndex(i, outStrides, yStrides)]
			}
		}
	case tensor.Bool:
		dst := result.AsBool()
		xs, ys := x.AsBool(), y.AsBool()
		for i := range dst {
			if cond[flatIndex(i, outStrides, condStrides)] {
				dst[i] = xs[flatIndex(i, outStrides, xStrides)]
			} else {
				dst[i] = ys[flatIndex(i, outStrides, yStrides)]
			}
		}
	default:
		panic(fmt.Sprintf("where: unsupported dtype %s", x.DType()))
	}
	return result
}

// Cast converts a tensor to a different data type. Bool casts to exact 0/1
// float values so spike indicators double as multiplicative masks.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x
	}

	result, err := tensor.NewRaw(x.Shape(), dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}

	switch {
	case x.DType() == tensor.Bool && dtype == tensor.Float32:
		src := x.AsBool()
		dst := result.AsFloat32()
		for i, v := range src {
			if v {
				dst[i] = 1
			}
		}
	case x.DType() == tensor.Float32 && dtype == tensor.Bool:
		src := x.AsFloat32()
		dst := result.AsBool()
		for i, v := range src {
			dst[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("cast: unsupported conversion %s -> %s", x.DType(), dtype))
	}
	return result
}
