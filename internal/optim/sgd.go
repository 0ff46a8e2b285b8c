package optim

import (
	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/nn"
	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/tensor"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD[B tensor.Backend] struct {
	params     []*nn.Parameter[B]
	lr         float32
	momentum   float32
	velocities map[*nn.Parameter[B]]*tensor.Tensor[float32, B]
	backend    B
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float32 // learning rate (default 0.01)
	Momentum float32 // momentum factor (default 0, range [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], config SGDConfig, backend B) *SGD[B] {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD[B]{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter[B]]*tensor.Tensor[float32, B]),
		backend:    backend,
	}
}

// Step applies the gradient update to every parameter holding a gradient.
func (s *SGD[B]) Step() {
	for _, param := range s.params {
		grad := param.Grad()
		if grad == nil {
			continue
		}
		if s.momentum == 0 {
			s.update(param, grad)
		} else {
			s.updateWithMomentum(param, grad)
		}
	}
}

func (s *SGD[B]) update(param *nn.Parameter[B], grad *tensor.Tensor[float32, B]) {
	updated := param.Tensor().Sub(grad.MulScalar(s.lr))
	param.Tensor().CopyFrom(updated)
}

func (s *SGD[B]) updateWithMomentum(param *nn.Parameter[B], grad *tensor.Tensor[float32, B]) {
	velocity, ok := s.velocities[param]
	if !ok || !velocity.Shape().Equal(param.Tensor().Shape()) {
		// First step, or the parameter was reallocated by a batch resize.
		velocity = tensor.Zeros[float32](param.Tensor().Shape(), s.backend)
		s.velocities[param] = velocity
	}

	newVelocity := velocity.MulScalar(s.momentum).Add(grad)
	velocity.CopyFrom(newVelocity)

	updated := param.Tensor().Sub(velocity.MulScalar(s.lr))
	param.Tensor().CopyFrom(updated)
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD[B]) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD[B]) GetLR() float32 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD[B]) SetLR(lr float32) {
	s.lr = lr
}
