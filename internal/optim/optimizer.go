// Package optim implements gradient-based optimizers for the trainable
// scalar/threshold parameters a neuron group exposes.
//
// Gradients are stored on the parameters themselves (set externally by
// whatever consumes the surrogate-gradient outputs); Step reads them and
// updates parameter values in place. Updates must happen between simulation
// steps, never concurrently with one.
//
// Example:
//
//	group, _ := lif.New(cfg, backend)
//	opt := optim.NewSGD(group.Parameters(), optim.SGDConfig{LR: 0.01}, backend)
//
//	for i := 0; i < steps; i++ {
//	    spikes := group.Step(input, nil)
//	    setGradients(group.Parameters(), spikes)
//	    opt.Step()
//	    opt.ZeroGrad()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies gradient updates to all parameters that currently hold
	// a gradient. Parameters without one are skipped.
	Step()

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float32
}

// Config is the base configuration for optimizers.
type Config struct {
	LR float32 // learning rate
}
