package tensor

// Backend defines the interface compute backends must implement.
// Every per-neuron update in the simulation is expressed through these
// whole-tensor operations, so backends are free to vectorize or offload
// across the batch and neuron dimensions.
type Backend interface {
	// Element-wise binary operations with broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Element-wise operations with a scalar.
	AddScalar(x *RawTensor, s float32) *RawTensor
	SubScalar(x *RawTensor, s float32) *RawTensor
	MulScalar(x *RawTensor, s float32) *RawTensor
	DivScalar(x *RawTensor, s float32) *RawTensor

	// Element-wise math.
	Exp(x *RawTensor) *RawTensor
	Abs(x *RawTensor) *RawTensor
	Atan(x *RawTensor) *RawTensor
	Sigmoid(x *RawTensor) *RawTensor
	Clamp(x *RawTensor, lo, hi float32) *RawTensor

	// Comparisons, returning Bool tensors.
	Greater(a, b *RawTensor) *RawTensor
	Lower(a, b *RawTensor) *RawTensor
	GreaterEqualScalar(x *RawTensor, s float32) *RawTensor

	// Conditional selection and type conversion.
	Where(cond, x, y *RawTensor) *RawTensor
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Reduction.
	Sum(x *RawTensor) float32

	// Metadata.
	Name() string
	Device() Device
}
