package nn

import (
	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/tensor"
)

// Parameter is a trainable tensor with an associated gradient slot.
//
// A parameter wraps the same numeric content a plain state buffer would
// hold, so reads treat both uniformly; the wrapper only adds gradient
// bookkeeping and optimizer discoverability. Gradients are produced
// externally (e.g. from a surrogate-gradient consumer) via SetGrad and
// consumed by an optimizer between simulation steps.
type Parameter[B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[float32, B]
	grad   *tensor.Tensor[float32, B]
}

// NewParameter creates a new trainable parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return &Parameter[B]{name: name, tensor: t}
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float32, B] {
	return p.tensor
}

// Replace swaps in a new tensor, discarding any pending gradient.
// Used when state reallocation (batch resize) changes parameter shape.
func (p *Parameter[B]) Replace(t *tensor.Tensor[float32, B]) {
	p.tensor = t
	p.grad = nil
}

// Grad returns the gradient tensor, or nil before one has been set.
func (p *Parameter[B]) Grad() *tensor.Tensor[float32, B] {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter[B]) SetGrad(grad *tensor.Tensor[float32, B]) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor.
// Call before each training iteration to avoid stale gradients.
func (p *Parameter[B]) ZeroGrad() {
	p.grad = nil
}
