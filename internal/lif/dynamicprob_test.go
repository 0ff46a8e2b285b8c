package lif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/backend/cpu"
	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/tensor"
)

func TestDynamicProbZeroTraceIsScaledSigmoid(t *testing.T) {
	b := cpu.New()
	d := NewDynamicProb(DynamicProbConfig{Beta: 2.0, TauAdapt: 10.0}, 1, 3, b)

	margin, err := tensor.FromSlice([]float32{-1, 0, 1}, tensor.Shape{1, 3}, b)
	require.NoError(t, err)
	prev := tensor.Zeros[bool](tensor.Shape{1, 3}, b)

	p := d.Probability(margin, prev).Data()
	// sigmoid(2*m) for m in {-1, 0, 1}
	assert.InDelta(t, 0.1192, p[0], 1e-3)
	assert.InDelta(t, 0.5, p[1], 1e-6)
	assert.InDelta(t, 0.8808, p[2], 1e-3)
}

func TestDynamicProbMonotoneInMargin(t *testing.T) {
	b := cpu.New()
	d := NewDynamicProb(DynamicProbConfig{Beta: 5.0, TauAdapt: 20.0}, 1, 5, b)

	margin, err := tensor.FromSlice([]float32{-0.5, -0.1, 0, 0.1, 0.5}, tensor.Shape{1, 5}, b)
	require.NoError(t, err)
	prev := tensor.Zeros[bool](tensor.Shape{1, 5}, b)

	p := d.Probability(margin, prev).Data()
	for i := 1; i < len(p); i++ {
		assert.Greater(t, p[i], p[i-1])
	}
}

func TestDynamicProbTraceSharpensRepeatedFiring(t *testing.T) {
	b := cpu.New()
	d := NewDynamicProb(DynamicProbConfig{Beta: 5.0, TauAdapt: 20.0}, 1, 2, b)

	margin, err := tensor.FromSlice([]float32{0.2, 0.2}, tensor.Shape{1, 2}, b)
	require.NoError(t, err)

	// Neuron 0 fired on the previous step, neuron 1 did not.
	prev, err := tensor.FromSlice([]bool{true, false}, tensor.Shape{1, 2}, b)
	require.NoError(t, err)

	p := d.Probability(margin, prev).Data()
	assert.Greater(t, p[0], p[1], "a positive firing trace must raise the probability at equal margin")

	trace := d.Trace().Data()
	assert.InDelta(t, 1.0, trace[0], 1e-6)
	assert.Equal(t, float32(0), trace[1])
}

func TestDynamicProbTraceDecays(t *testing.T) {
	b := cpu.New()
	d := NewDynamicProb(DynamicProbConfig{Beta: 5.0, TauAdapt: 4.0}, 1, 1, b)

	margin := tensor.Zeros[float32](tensor.Shape{1, 1}, b)
	fired, err := tensor.FromSlice([]bool{true}, tensor.Shape{1, 1}, b)
	require.NoError(t, err)
	silent := tensor.Zeros[bool](tensor.Shape{1, 1}, b)

	d.Probability(margin, fired)
	after := d.Trace().Data()[0]
	d.Probability(margin, silent)
	decayed := d.Trace().Data()[0]

	assert.InDelta(t, 1.0, after, 1e-6)
	assert.InDelta(t, 0.75, decayed, 1e-6) // 1 * (1 - 1/4)
}

func TestDynamicProbReset(t *testing.T) {
	b := cpu.New()
	d := NewDynamicProb(DynamicProbConfig{Beta: 5.0, TauAdapt: 20.0}, 1, 2, b)

	margin := tensor.Zeros[float32](tensor.Shape{1, 2}, b)
	fired, err := tensor.FromSlice([]bool{true, true}, tensor.Shape{1, 2}, b)
	require.NoError(t, err)
	d.Probability(margin, fired)

	d.Reset(3, 2)
	trace := d.Trace()
	assert.Equal(t, tensor.Shape{3, 2}, trace.Shape())
	for _, v := range trace.Data() {
		assert.Equal(t, float32(0), v)
	}
}
