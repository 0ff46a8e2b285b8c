package lif

import (
	"fmt"

	"github.com/emer/etable/minmax"

	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/nn"
	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/sg"
	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/tensor"
)

// NeuronGroup is a vectorized group of leaky integrate-and-fire neurons
// with spike-frequency adaptation, short-term synaptic depression, an
// adaptive firing threshold and optional neuromodulatory gain. All state
// lives in (batch, neurons) tensors on a single backend; one Step advances
// every neuron in the group by one timestep.
//
// A group implements nn.Module: Forward runs one step and returns the
// spike mask as float32, and Parameters exposes whichever of threshold,
// tau and eta were marked trainable at construction.
type NeuronGroup[B tensor.Backend] struct {
	cfg     Config[B]
	backend B
	device  tensor.Device

	surrogate   sg.Name
	threshRange minmax.F32
	modulate    ModulationTransform[B]

	batchSize int

	v        *tensor.Tensor[float32, B]
	spikes   *tensor.Tensor[bool, B]
	adapt    *tensor.Tensor[float32, B]
	synEff   *tensor.Tensor[float32, B]
	neuromod *tensor.Tensor[float32, B]

	// vth holds the threshold when it is not trainable, one row per batch
	// sample. A trainable threshold lives in thresholdParam instead, with
	// a single broadcast row shared across the batch.
	vth            *tensor.Tensor[float32, B]
	thresholdParam *nn.Parameter[B]
	tauParam       *nn.Parameter[B]
	etaParam       *nn.Parameter[B]

	dyn *DynamicProb[B]
}

// New validates cfg and constructs a group with fresh state at the
// configured batch size: zero membrane potential and adaptation current,
// unit synaptic efficiency and neuromodulatory gain, no spikes, and the
// threshold at cfg.VTh everywhere.
func New[B tensor.Backend](cfg Config[B], backend B) (*NeuronGroup[B], error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid neuron group config: %w", err)
	}
	dev, _ := tensor.ParseDevice(cfg.Device)
	if dev != backend.Device() {
		return nil, fmt.Errorf("config device %q does not match backend device %q", dev, backend.Device())
	}
	name, _ := sg.Parse(cfg.SurrogateGradient)

	g := &NeuronGroup[B]{
		cfg:         cfg,
		backend:     backend,
		device:      dev,
		surrogate:   name,
		threshRange: cfg.thresholdRange(),
		modulate:    cfg.Modulation,
	}
	if g.modulate == nil {
		g.modulate = logisticModulation[B]
	}
	if cfg.TrainThreshold {
		t := tensor.Full[float32](tensor.Shape{1, cfg.NumNeurons}, cfg.VTh, backend)
		g.thresholdParam = nn.NewParameter("threshold", t)
	}
	if cfg.TrainTau {
		t := tensor.Full[float32](tensor.Shape{1}, cfg.Tau, backend)
		g.tauParam = nn.NewParameter("tau", t)
	}
	if cfg.TrainEta {
		t := tensor.Full[float32](tensor.Shape{1}, cfg.Eta, backend)
		g.etaParam = nn.NewParameter("eta", t)
	}
	if cfg.Stochastic && cfg.DynamicSpikeProbability {
		g.dyn = NewDynamicProb(cfg.DynamicProb, cfg.BatchSize, cfg.NumNeurons, backend)
	}
	g.InitStates(cfg.BatchSize)
	return g, nil
}

// NumNeurons returns the neuron count of the group.
func (g *NeuronGroup[B]) NumNeurons() int { return g.cfg.NumNeurons }

// BatchSize returns the current batch size of the state tensors.
func (g *NeuronGroup[B]) BatchSize() int { return g.batchSize }

// Device returns the compute device the group runs on.
func (g *NeuronGroup[B]) Device() tensor.Device { return g.device }

// ThresholdRange returns the bounds the threshold is clipped to.
func (g *NeuronGroup[B]) ThresholdRange() minmax.F32 { return g.threshRange }

// Potentials returns the membrane potential tensor, shape (batch, neurons).
func (g *NeuronGroup[B]) Potentials() *tensor.Tensor[float32, B] { return g.v }

// Spikes returns the spike mask produced by the most recent Step.
func (g *NeuronGroup[B]) Spikes() *tensor.Tensor[bool, B] { return g.spikes }

// Thresholds returns the live threshold tensor. Shape is (1, neurons) when
// the threshold is trainable and (batch, neurons) otherwise.
func (g *NeuronGroup[B]) Thresholds() *tensor.Tensor[float32, B] { return g.threshold() }

// AdaptationCurrent returns the spike-frequency adaptation current.
func (g *NeuronGroup[B]) AdaptationCurrent() *tensor.Tensor[float32, B] { return g.adapt }

// SynapticEfficiency returns the short-term plasticity state in [0, 1].
func (g *NeuronGroup[B]) SynapticEfficiency() *tensor.Tensor[float32, B] { return g.synEff }

// Neuromodulator returns the current neuromodulatory gain. It persists
// across steps until a new modulation signal is supplied.
func (g *NeuronGroup[B]) Neuromodulator() *tensor.Tensor[float32, B] { return g.neuromod }

// DynamicProbability returns the self-locking probability mechanism, or
// nil when it is disabled.
func (g *NeuronGroup[B]) DynamicProbability() *DynamicProb[B] { return g.dyn }

func (g *NeuronGroup[B]) threshold() *tensor.Tensor[float32, B] {
	if g.thresholdParam != nil {
		return g.thresholdParam.Tensor()
	}
	return g.vth
}

// writeThreshold routes threshold updates through the parameter when the
// threshold is trainable, so optimizer and homeostasis see the same data.
func (g *NeuronGroup[B]) writeThreshold(t *tensor.Tensor[float32, B]) {
	if g.thresholdParam != nil {
		g.thresholdParam.Tensor().CopyFrom(t)
		return
	}
	g.vth = t
}

// tau returns the live membrane time constant, reading the trainable
// parameter when present. A non-positive value is a caller error: the
// optimizer must keep tau in a physical range.
func (g *NeuronGroup[B]) tau() float32 {
	t := g.cfg.Tau
	if g.tauParam != nil {
		t = g.tauParam.Tensor().Data()[0]
	}
	if t <= 0 {
		panic(fmt.Sprintf("lif: membrane time constant driven to %v, must stay positive", t))
	}
	return t
}

// eta returns the live threshold adaptation rate.
func (g *NeuronGroup[B]) eta() float32 {
	if g.etaParam != nil {
		return g.etaParam.Tensor().Data()[0]
	}
	return g.cfg.Eta
}

// InitStates reallocates all state tensors for the given batch size and
// restores them to their construction values, including the threshold at
// the configured VTh. The firing trace of the dynamic probability
// mechanism is cleared as well.
func (g *NeuronGroup[B]) InitStates(batchSize int) {
	if batchSize <= 0 {
		panic(fmt.Sprintf("lif: batch size must be positive, got %d", batchSize))
	}
	n := g.cfg.NumNeurons
	shape := tensor.Shape{batchSize, n}
	g.v = tensor.Zeros[float32](shape, g.backend)
	g.spikes = tensor.Zeros[bool](shape, g.backend)
	g.adapt = tensor.Zeros[float32](shape, g.backend)
	g.synEff = tensor.Ones[float32](shape, g.backend)
	g.neuromod = tensor.Ones[float32](shape, g.backend)
	if g.thresholdParam != nil {
		g.thresholdParam.Replace(tensor.Full[float32](tensor.Shape{1, n}, g.cfg.VTh, g.backend))
	} else {
		g.vth = tensor.Full[float32](shape, g.cfg.VTh, g.backend)
	}
	if g.dyn != nil {
		g.dyn.Reset(batchSize, n)
	}
	g.batchSize = batchSize
}

// Resize adapts the group to a new batch size, discarding per-sample state
// but preserving the learned threshold level: the new threshold tensor is
// filled with the mean of the old one. Step calls this automatically when
// the input batch size changes.
func (g *NeuronGroup[B]) Resize(batchSize int) {
	if batchSize <= 0 {
		panic(fmt.Sprintf("lif: batch size must be positive, got %d", batchSize))
	}
	if batchSize == g.batchSize {
		return
	}
	meanTh := g.threshold().Mean()
	n := g.cfg.NumNeurons
	shape := tensor.Shape{batchSize, n}
	g.v = tensor.Zeros[float32](shape, g.backend)
	g.spikes = tensor.Zeros[bool](shape, g.backend)
	g.adapt = tensor.Zeros[float32](shape, g.backend)
	g.synEff = tensor.Ones[float32](shape, g.backend)
	g.neuromod = tensor.Ones[float32](shape, g.backend)
	if g.thresholdParam != nil {
		g.thresholdParam.Tensor().Fill(meanTh)
	} else {
		g.vth = tensor.Full[float32](shape, meanTh, g.backend)
	}
	if g.dyn != nil {
		g.dyn.Reset(batchSize, n)
	}
	g.batchSize = batchSize
}

// Reset restores the dynamical state in place without reallocating:
// membrane potential, spikes and adaptation current go to zero, synaptic
// efficiency and neuromodulatory gain to one, and the firing trace is
// cleared. The threshold keeps its current values; use InitStates to
// restore it to the configured VTh.
func (g *NeuronGroup[B]) Reset() {
	g.v.Fill(0)
	g.spikes.Fill(false)
	g.adapt.Fill(0)
	g.synEff.Fill(1)
	g.neuromod.Fill(1)
	if g.dyn != nil {
		g.dyn.Reset(g.batchSize, g.cfg.NumNeurons)
	}
}

// Step advances the whole group by one timestep.
//
// The input must have shape (batch, neurons); a batch size different from
// the current one triggers an automatic Resize, a neuron count mismatch
// panics. The optional modulation signal updates the neuromodulatory gain
// through the configured transform before integration; pass nil to keep
// the previous gain.
//
// The effective input current is
//
//	I_eff = input * synaptic_efficiency + neuromodulator - adaptation
//
// integrated with the explicit Euler step
//
//	V <- V + dt * (I_eff - V) / tau + noise
//
// after which spikes are drawn (Bernoulli in stochastic mode, threshold
// crossing otherwise), fired neurons are reset to VReset, and the
// adaptation current, synaptic efficiency and adaptive threshold are
// updated from the spike mask. The returned mask aliases the group's
// spike state.
func (g *NeuronGroup[B]) Step(input, modulation *tensor.Tensor[float32, B]) *tensor.Tensor[bool, B] {
	shape := input.Shape()
	if len(shape) != 2 || shape[1] != g.cfg.NumNeurons {
		panic(fmt.Sprintf("lif: input shape %v does not match group with %d neurons", shape, g.cfg.NumNeurons))
	}
	if shape[0] != g.batchSize {
		g.Resize(shape[0])
	}
	if modulation != nil {
		g.neuromod = g.modulate(modulation)
	}

	ieff := input.Mul(g.synEff).Add(g.neuromod).Sub(g.adapt)

	v := g.v.Add(ieff.Sub(g.v).MulScalar(g.cfg.Dt / g.tau()))
	if g.cfg.Stochastic {
		noise := tensor.RandnSource(g.cfg.Rand, tensor.Shape{g.batchSize, g.cfg.NumNeurons}, g.cfg.NoiseStd, g.backend)
		v = v.Add(noise)
	}

	margin := v.Sub(g.threshold())

	var spikes *tensor.Tensor[bool, B]
	if g.cfg.Stochastic {
		var prob *tensor.Tensor[float32, B]
		if g.dyn != nil {
			prob = g.dyn.Probability(margin, g.spikes)
		} else {
			prob = margin.Sigmoid()
		}
		u := tensor.RandSource(g.cfg.Rand, prob.Shape(), g.backend)
		spikes = u.Lower(prob)
	} else {
		spikes = sg.Spikes(margin)
	}

	reset := tensor.Full[float32](tensor.Shape{1}, g.cfg.VReset, g.backend)
	g.v = tensor.Where(spikes, reset, v)
	g.spikes = spikes

	fired := tensor.BoolToFloat(spikes)

	g.adapt = g.adapt.MulScalar(g.cfg.AdaptationDecay).Add(fired.MulScalar(g.cfg.SpikeIncrease))

	// efficiency <- eff * (1 - d*spike) + r * (1 - eff)
	retained := g.synEff.Mul(fired.MulScalar(-g.cfg.DepressionRate).AddScalar(1))
	recovered := g.synEff.MulScalar(-1).AddScalar(1).MulScalar(g.cfg.RecoveryRate)
	g.synEff = retained.Add(recovered)

	if g.cfg.AdaptiveThreshold {
		g.updateThreshold(spikes)
	}

	return spikes
}

// updateThreshold applies the configured homeostatic policy and clips the
// result to the threshold range.
func (g *NeuronGroup[B]) updateThreshold(spikes *tensor.Tensor[bool, B]) {
	th := g.threshold()
	if g.cfg.ThresholdPolicy == PushDecay {
		eta := g.eta()
		pushed := th.AddScalar(eta)
		decayed := th.Sub(th.AddScalar(-1).MulScalar(eta))
		th = tensor.Where(spikes, pushed, decayed)
	}
	g.writeThreshold(th.Clamp(g.threshRange.Min, g.threshRange.Max))
}

// SurrogateGrad returns the surrogate derivative of the spike function for
// the given membrane margin (V - V_th), using the configured variant and
// sharpness. Training code combines this with upstream gradients to
// backpropagate through the non-differentiable spike.
func (g *NeuronGroup[B]) SurrogateGrad(margin *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return sg.Grad(g.surrogate, margin, g.cfg.Alpha)
}

// Forward runs one timestep with no modulation signal and returns the
// spike mask as float32, satisfying nn.Module.
func (g *NeuronGroup[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return tensor.BoolToFloat(g.Step(input, nil))
}

// Parameters returns the trainable parameters of the group in a stable
// order: threshold, tau, eta. Values not marked trainable are omitted.
func (g *NeuronGroup[B]) Parameters() []*nn.Parameter[B] {
	var params []*nn.Parameter[B]
	if g.thresholdParam != nil {
		params = append(params, g.thresholdParam)
	}
	if g.tauParam != nil {
		params = append(params, g.tauParam)
	}
	if g.etaParam != nil {
		params = append(params, g.etaParam)
	}
	return params
}
