package lif

import (
	"fmt"
	"math/rand"

	"github.com/emer/etable/minmax"

	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/sg"
	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/tensor"
)

// ThresholdPolicy selects how the adaptive threshold is updated each step.
type ThresholdPolicy int

const (
	// PushDecay pushes the threshold up on spiking neurons by eta and decays
	// it toward 1.0 on silent ones, then clips to the threshold range.
	PushDecay ThresholdPolicy = iota

	// ClipOnly only clips the threshold to its range each step, leaving
	// threshold movement to an external optimizer acting on a trainable
	// threshold parameter.
	ClipOnly
)

func (p ThresholdPolicy) String() string {
	switch p {
	case PushDecay:
		return "push-decay"
	case ClipOnly:
		return "clip-only"
	default:
		return "unknown"
	}
}

// ModulationTransform maps a raw external modulation signal to a gain
// tensor in a bounded range. The default squashes through the logistic
// function into (0, 1).
type ModulationTransform[B tensor.Backend] func(raw *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

// DynamicProbConfig configures the dynamic spike probability mechanism.
type DynamicProbConfig struct {
	// Beta is the base sharpness of the probability transform. Must be > 0.
	Beta float32

	// TauAdapt is the time constant of the firing trace that couples
	// successive timesteps. Must be >= 1.
	TauAdapt float32
}

// Config holds the full construction-time configuration of a neuron group.
// Every constraint is checked by Validate; invalid values fail construction
// and are never silently clamped.
type Config[B tensor.Backend] struct {
	// NumNeurons is the number of neurons in the group. Must be > 0.
	NumNeurons int

	// BatchSize is the initial batch size. Must be > 0. The group resizes
	// itself automatically when an input with a different leading dimension
	// arrives.
	BatchSize int

	// Device identifies the compute device ("cpu", "cuda", "webgpu").
	Device string

	// VTh is the initial spiking threshold.
	VTh float32

	// VReset is the membrane potential assigned to fired neurons.
	VReset float32

	// Tau is the membrane time constant. Must be > 0.
	Tau float32

	// Dt is the integration timestep. Must be > 0.
	Dt float32

	// Eta is the threshold adaptation rate used by the push-decay policy.
	Eta float32

	// AdaptiveThreshold enables the per-step threshold update.
	AdaptiveThreshold bool

	// ThresholdPolicy selects between the push-decay and clip-only
	// homeostatic updates.
	ThresholdPolicy ThresholdPolicy

	// MinThreshold and MaxThreshold bound the threshold. Both must be > 0
	// with MinThreshold < MaxThreshold.
	MinThreshold float32
	MaxThreshold float32

	// Stochastic switches spike generation from the deterministic surrogate
	// branch to Bernoulli sampling from a membrane-margin probability.
	Stochastic bool

	// NoiseStd is the standard deviation of the Gaussian membrane noise.
	// Must be > 0 in stochastic mode; must be >= 0 otherwise.
	NoiseStd float32

	// SurrogateGradient names the spike function used in deterministic
	// mode: heaviside, fast_sigmoid, gaussian or arctan.
	SurrogateGradient string

	// Alpha is the surrogate sharpness. Must be > 0.
	Alpha float32

	// DynamicSpikeProbability enables the self-locking probability
	// mechanism in stochastic mode.
	DynamicSpikeProbability bool

	// DynamicProb configures the mechanism when enabled.
	DynamicProb DynamicProbConfig

	// AdaptationDecay is the per-step multiplicative decay of the
	// spike-frequency adaptation current. Must be >= 0.
	AdaptationDecay float32

	// SpikeIncrease is the adaptation current added per spike. Must be >= 0.
	SpikeIncrease float32

	// DepressionRate is the fraction of synaptic efficiency consumed by a
	// spike. Must be in [0, 1].
	DepressionRate float32

	// RecoveryRate is the per-step relaxation of synaptic efficiency toward
	// 1. Must be >= 0.
	RecoveryRate float32

	// Modulation transforms raw external modulation into a gain. Nil
	// selects the default logistic squashing into (0, 1).
	Modulation ModulationTransform[B]

	// Rand is the random source for membrane noise and Bernoulli spike
	// draws. Nil falls back to the process-global source. Seed it for
	// reproducible stochastic simulations.
	Rand *rand.Rand

	// TrainThreshold, TrainTau and TrainEta mark the respective values as
	// trainable parameters, discoverable through Parameters().
	TrainThreshold bool
	TrainTau       bool
	TrainEta       bool
}

// Defaults returns the canonical configuration for n neurons, matching the
// reference parameterization: unit threshold in a [0.5, 2] range, tau=20,
// dt=1, moderate adaptation and short-term depression.
func Defaults[B tensor.Backend](n int) Config[B] {
	return Config[B]{
		NumNeurons:        n,
		BatchSize:         1,
		Device:            "cpu",
		VTh:               1.0,
		VReset:            0.0,
		Tau:               20.0,
		Dt:                1.0,
		Eta:               0.1,
		AdaptiveThreshold: true,
		ThresholdPolicy:   PushDecay,
		MinThreshold:      0.5,
		MaxThreshold:      2.0,
		Stochastic:        true,
		NoiseStd:          0.1,
		SurrogateGradient: string(sg.Heaviside),
		Alpha:             1.0,
		DynamicProb:       DynamicProbConfig{Beta: 5.0, TauAdapt: 20.0},
		AdaptationDecay:   0.9,
		SpikeIncrease:     0.1,
		DepressionRate:    0.2,
		RecoveryRate:      0.05,
	}
}

// Validate checks every construction constraint, naming the offending
// parameter. Configurations that fail here must not construct a group.
func (c *Config[B]) Validate() error {
	if c.NumNeurons <= 0 {
		return fmt.Errorf("NumNeurons must be positive, got %d", c.NumNeurons)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("BatchSize must be positive, got %d", c.BatchSize)
	}
	if _, err := tensor.ParseDevice(c.Device); err != nil {
		return fmt.Errorf("Device: %w", err)
	}
	if c.Tau <= 0 {
		return fmt.Errorf("Tau (membrane time constant) must be positive, got %v", c.Tau)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("Dt (integration timestep) must be positive, got %v", c.Dt)
	}
	if c.MinThreshold <= 0 {
		return fmt.Errorf("MinThreshold must be positive, got %v", c.MinThreshold)
	}
	if c.MaxThreshold <= c.MinThreshold {
		return fmt.Errorf("MaxThreshold (%v) must be greater than MinThreshold (%v)", c.MaxThreshold, c.MinThreshold)
	}
	if c.Stochastic && c.NoiseStd <= 0 {
		return fmt.Errorf("NoiseStd must be positive in stochastic mode, got %v", c.NoiseStd)
	}
	if c.NoiseStd < 0 {
		return fmt.Errorf("NoiseStd must not be negative, got %v", c.NoiseStd)
	}
	if _, err := sg.Parse(c.SurrogateGradient); err != nil {
		return fmt.Errorf("SurrogateGradient: %w", err)
	}
	if c.Alpha <= 0 {
		return fmt.Errorf("Alpha (surrogate sharpness) must be positive, got %v", c.Alpha)
	}
	if c.DynamicSpikeProbability {
		if c.DynamicProb.Beta <= 0 {
			return fmt.Errorf("DynamicProb.Beta must be positive, got %v", c.DynamicProb.Beta)
		}
		if c.DynamicProb.TauAdapt < 1 {
			return fmt.Errorf("DynamicProb.TauAdapt must be at least 1, got %v", c.DynamicProb.TauAdapt)
		}
	}
	if c.AdaptationDecay < 0 {
		return fmt.Errorf("AdaptationDecay must not be negative, got %v", c.AdaptationDecay)
	}
	if c.SpikeIncrease < 0 {
		return fmt.Errorf("SpikeIncrease must not be negative, got %v", c.SpikeIncrease)
	}
	if c.DepressionRate < 0 || c.DepressionRate > 1 {
		return fmt.Errorf("DepressionRate must be in [0, 1], got %v", c.DepressionRate)
	}
	if c.RecoveryRate < 0 {
		return fmt.Errorf("RecoveryRate must not be negative, got %v", c.RecoveryRate)
	}
	if c.TrainThreshold && c.AdaptiveThreshold && c.ThresholdPolicy == PushDecay {
		// The push-decay update is per-batch-sample; a trainable threshold
		// is shared across the batch and is adjusted by the optimizer
		// instead. Only the clip-only policy composes with training.
		return fmt.Errorf("ThresholdPolicy push-decay requires a non-trainable threshold; use ClipOnly with TrainThreshold")
	}
	return nil
}

// thresholdRange returns the configured threshold bounds.
func (c *Config[B]) thresholdRange() minmax.F32 {
	return minmax.F32{Min: c.MinThreshold, Max: c.MaxThreshold}
}
