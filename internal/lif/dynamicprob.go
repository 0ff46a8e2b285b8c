package lif

import (
	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/tensor"
)

// DynamicProb computes the self-locking spike probability used in
// stochastic mode. It keeps a per-neuron firing trace that decays with
// TauAdapt and accumulates the previous step's spikes; the trace sharpens
// the probability transform so that recently active neurons lock into
// their firing pattern:
//
//	trace <- trace * (1 - 1/tauAdapt) + prev_spikes
//	p     <- sigmoid(beta * (1 + trace) * (V - V_th))
//
// With a zero trace this reduces to the plain sigmoid of the membrane
// margin scaled by beta.
type DynamicProb[B tensor.Backend] struct {
	beta     float32
	tauAdapt float32
	backend  B

	trace *tensor.Tensor[float32, B]
}

// NewDynamicProb allocates the mechanism with a zero trace of shape
// (batchSize, numNeurons).
func NewDynamicProb[B tensor.Backend](cfg DynamicProbConfig, batchSize, numNeurons int, backend B) *DynamicProb[B] {
	return &DynamicProb[B]{
		beta:     cfg.Beta,
		tauAdapt: cfg.TauAdapt,
		backend:  backend,
		trace:    tensor.Zeros[float32](tensor.Shape{batchSize, numNeurons}, backend),
	}
}

// Probability advances the firing trace with the previous step's spikes
// and returns the spike probability for the given membrane margin
// (V - V_th). Both inputs must have the trace's shape.
func (d *DynamicProb[B]) Probability(margin *tensor.Tensor[float32, B], prevSpikes *tensor.Tensor[bool, B]) *tensor.Tensor[float32, B] {
	prev := tensor.BoolToFloat(prevSpikes)
	d.trace = d.trace.MulScalar(1 - 1/d.tauAdapt).Add(prev)
	sharpness := d.trace.AddScalar(1).MulScalar(d.beta)
	return margin.Mul(sharpness).Sigmoid()
}

// Trace exposes the current firing trace, mainly for inspection in tests
// and diagnostics.
func (d *DynamicProb[B]) Trace() *tensor.Tensor[float32, B] {
	return d.trace
}

// Reset clears the trace and reallocates it for a new batch size.
func (d *DynamicProb[B]) Reset(batchSize, numNeurons int) {
	d.trace = tensor.Zeros[float32](tensor.Shape{batchSize, numNeurons}, d.backend)
}
