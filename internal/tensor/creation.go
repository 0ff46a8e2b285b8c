package tensor

import (
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), b.Device())
	if err != nil {
		panic(err)
	}
	// buffer is already zero-initialized
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones (true for bool tensors).
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	var dummy T
	var one any
	switch any(dummy).(type) {
	case float32:
		one = float32(1)
	case bool:
		one = true
	}
	t.Fill(one.(T))
	return t
}

// Full creates a tensor filled with a specific value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	t.Fill(value)
	return t
}

// Randn creates a float32 tensor with samples from N(0, std²) drawn from the
// process-global source. Uses math/rand (not crypto/rand) intentionally for
// reproducible simulations.
func Randn[B Backend](shape Shape, std float32, b B) *Tensor[float32, B] {
	return RandnSource(nil, shape, std, b)
}

// RandnSource is Randn with an explicit random source, so stochastic
// simulations can be seeded and reproduced. A nil source falls back to the
// process-global one.
func RandnSource[B Backend](rng *rand.Rand, shape Shape, std float32, b B) *Tensor[float32, B] {
	t := Zeros[float32, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = float32(normFloat64(rng)) * std
	}
	return t
}

// Rand creates a float32 tensor with samples from U[0, 1) drawn from the
// process-global source.
func Rand[B Backend](shape Shape, b B) *Tensor[float32, B] {
	return RandSource(nil, shape, b)
}

// RandSource is Rand with an explicit random source; nil falls back to the
// process-global one.
func RandSource[B Backend](rng *rand.Rand, shape Shape, b B) *Tensor[float32, B] {
	t := Zeros[float32, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = float32(uniformFloat64(rng))
	}
	return t
}

func normFloat64(rng *rand.Rand) float64 {
	if rng != nil {
		return rng.NormFloat64()
	}
	// Box-Muller on the global source
	u1 := rand.Float64() //nolint:gosec // simulation randomness, not security
	u2 := rand.Float64() //nolint:gosec // simulation randomness, not security
	return math.Sqrt(-2.0*math.Log(1-u1)) * math.Cos(2.0*math.Pi*u2)
}

func uniformFloat64(rng *rand.Rand) float64 {
	if rng != nil {
		return rng.Float64()
	}
	return rand.Float64() //nolint:gosec // simulation randomness, not security
}
