package lif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/backend/cpu"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := Defaults[*cpu.CPUBackend](16)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 16, cfg.NumNeurons)
	assert.Equal(t, 1, cfg.BatchSize)
	assert.Equal(t, float32(1.0), cfg.VTh)
	assert.Equal(t, float32(20.0), cfg.Tau)
	assert.True(t, cfg.Stochastic)
	assert.Equal(t, PushDecay, cfg.ThresholdPolicy)
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config[*cpu.CPUBackend])
		wantErr string
	}{
		{"zero neurons", func(c *Config[*cpu.CPUBackend]) { c.NumNeurons = 0 }, "NumNeurons"},
		{"negative neurons", func(c *Config[*cpu.CPUBackend]) { c.NumNeurons = -3 }, "NumNeurons"},
		{"zero batch", func(c *Config[*cpu.CPUBackend]) { c.BatchSize = 0 }, "BatchSize"},
		{"unknown device", func(c *Config[*cpu.CPUBackend]) { c.Device = "tpu" }, "Device"},
		{"zero tau", func(c *Config[*cpu.CPUBackend]) { c.Tau = 0 }, "Tau"},
		{"negative dt", func(c *Config[*cpu.CPUBackend]) { c.Dt = -0.5 }, "Dt"},
		{"zero min threshold", func(c *Config[*cpu.CPUBackend]) { c.MinThreshold = 0 }, "MinThreshold"},
		{"inverted threshold range", func(c *Config[*cpu.CPUBackend]) { c.MinThreshold, c.MaxThreshold = 2, 0.5 }, "MaxThreshold"},
		{"stochastic without noise", func(c *Config[*cpu.CPUBackend]) { c.NoiseStd = 0 }, "NoiseStd"},
		{"negative noise", func(c *Config[*cpu.CPUBackend]) { c.Stochastic = false; c.NoiseStd = -0.1 }, "NoiseStd"},
		{"unknown surrogate", func(c *Config[*cpu.CPUBackend]) { c.SurrogateGradient = "triangle" }, "SurrogateGradient"},
		{"zero alpha", func(c *Config[*cpu.CPUBackend]) { c.Alpha = 0 }, "Alpha"},
		{"dynamic prob zero beta", func(c *Config[*cpu.CPUBackend]) {
			c.DynamicSpikeProbability = true
			c.DynamicProb.Beta = 0
		}, "DynamicProb.Beta"},
		{"dynamic prob tau below one", func(c *Config[*cpu.CPUBackend]) {
			c.DynamicSpikeProbability = true
			c.DynamicProb.TauAdapt = 0.5
		}, "DynamicProb.TauAdapt"},
		{"negative adaptation decay", func(c *Config[*cpu.CPUBackend]) { c.AdaptationDecay = -0.1 }, "AdaptationDecay"},
		{"negative spike increase", func(c *Config[*cpu.CPUBackend]) { c.SpikeIncrease = -1 }, "SpikeIncrease"},
		{"depression above one", func(c *Config[*cpu.CPUBackend]) { c.DepressionRate = 1.5 }, "DepressionRate"},
		{"negative recovery", func(c *Config[*cpu.CPUBackend]) { c.RecoveryRate = -0.2 }, "RecoveryRate"},
		{"trainable threshold with push-decay", func(c *Config[*cpu.CPUBackend]) { c.TrainThreshold = true }, "push-decay"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults[*cpu.CPUBackend](8)
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidDynamicProbConfig(t *testing.T) {
	cfg := Defaults[*cpu.CPUBackend](8)
	cfg.DynamicSpikeProbability = true
	assert.NoError(t, cfg.Validate())
}

func TestTrainableThresholdNeedsClipOnly(t *testing.T) {
	cfg := Defaults[*cpu.CPUBackend](8)
	cfg.TrainThreshold = true
	cfg.ThresholdPolicy = ClipOnly
	assert.NoError(t, cfg.Validate())

	// Disabling the adaptive update entirely also composes with training.
	cfg.ThresholdPolicy = PushDecay
	cfg.AdaptiveThreshold = false
	assert.NoError(t, cfg.Validate())
}

func TestNewRejectsDeviceMismatch(t *testing.T) {
	cfg := Defaults[*cpu.CPUBackend](8)
	cfg.Device = "cuda"
	_, err := New(cfg, cpu.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match backend device")
}

func TestThresholdPolicyString(t *testing.T) {
	assert.Equal(t, "push-decay", PushDecay.String())
	assert.Equal(t, "clip-only", ClipOnly.String())
}
