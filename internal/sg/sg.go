// Package sg implements the surrogate-gradient spike functions used by
// deterministic spike generation.
//
// Every variant shares the same forward pass, a Heaviside step on the
// membrane margin V - V_th; what distinguishes them is the gradient
// approximation substituted for the step's zero-almost-everywhere
// derivative. The gradient tensors are consumed by external training code;
// the simulation itself only uses the forward pass.
package sg

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/tensor"
)

// Name identifies a surrogate-gradient spike function.
type Name string

// Registered surrogate-gradient functions.
const (
	Heaviside   Name = "heaviside"
	FastSigmoid Name = "fast_sigmoid"
	Gaussian    Name = "gaussian"
	Arctan      Name = "arctan"
)

var registry = map[Name]struct{}{
	Heaviside:   {},
	FastSigmoid: {},
	Gaussian:    {},
	Arctan:      {},
}

// Parse validates a surrogate-function name. Unregistered names are
// rejected here, at configuration time, never deferred to first use.
func Parse(s string) (Name, error) {
	name := Name(s)
	if _, ok := registry[name]; !ok {
		return "", fmt.Errorf("unknown surrogate gradient function %q (must be one of heaviside, fast_sigmoid, gaussian, arctan)", s)
	}
	return name, nil
}

// Names returns the registered function names.
func Names() []Name {
	return []Name{Heaviside, FastSigmoid, Gaussian, Arctan}
}

// Spikes is the shared forward pass: a neuron fires when its margin
// V - V_th is non-negative.
func Spikes[B tensor.Backend](margin *tensor.Tensor[float32, B]) *tensor.Tensor[bool, B] {
	return margin.GreaterEqualScalar(0)
}

// Grad evaluates the gradient approximation of the named variant at the
// given margin, with sharpness alpha > 0. Larger alpha concentrates the
// gradient mass around the threshold.
//
// The approximations:
//
//	heaviside:    box window, 1 inside |alpha*m| <= 1/2, 0 outside
//	fast_sigmoid: alpha/2 / (1 + alpha*|m|)^2
//	gaussian:     alpha/sqrt(pi) * exp(-(alpha*m)^2)
//	arctan:       alpha/2 / (1 + (pi/2 * alpha * m)^2)
func Grad[B tensor.Backend](name Name, margin *tensor.Tensor[float32, B], alpha float32) *tensor.Tensor[float32, B] {
	switch name {
	case Heaviside:
		outside := margin.Abs().MulScalar(alpha).GreaterEqualScalar(0.5)
		zeros := tensor.Zeros[float32](margin.Shape(), margin.Backend())
		ones := tensor.Ones[float32](margin.Shape(), margin.Backend())
		return tensor.Where(outside, zeros, ones)
	case FastSigmoid:
		denom := margin.Abs().MulScalar(alpha).AddScalar(1)
		denom = denom.Mul(denom)
		num := tensor.Full[float32](margin.Shape(), alpha/2, margin.Backend())
		return num.Div(denom)
	case Gaussian:
		scaled := margin.MulScalar(alpha)
		return scaled.Mul(scaled).MulScalar(-1).Exp().MulScalar(alpha / math32.Sqrt(math32.Pi))
	case Arctan:
		scaled := margin.MulScalar(math32.Pi / 2 * alpha)
		denom := scaled.Mul(scaled).AddScalar(1)
		num := tensor.Full[float32](margin.Shape(), alpha/2, margin.Backend())
		return num.Div(denom)
	default:
		panic(fmt.Sprintf("unknown surrogate gradient function %q", name))
	}
}
