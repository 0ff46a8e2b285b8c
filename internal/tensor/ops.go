package tensor

// Operator methods delegate to the backend. Binary ops broadcast following
// NumPy rules, so a (1, neurons) threshold parameter combines directly with
// (batch, neurons) state.

// Add performs element-wise addition with broadcasting.
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Add(t.raw, other.raw), t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Sub(t.raw, other.raw), t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Mul(t.raw, other.raw), t.backend)
}

// Div performs element-wise division with broadcasting.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Div(t.raw, other.raw), t.backend)
}

// AddScalar adds a scalar to every element.
func (t *Tensor[T, B]) AddScalar(s float32) *Tensor[T, B] {
	return New[T, B](t.backend.AddScalar(t.raw, s), t.backend)
}

// SubScalar subtracts a scalar from every element.
func (t *Tensor[T, B]) SubScalar(s float32) *Tensor[T, B] {
	return New[T, B](t.backend.SubScalar(t.raw, s), t.backend)
}

// MulScalar multiplies every element by a scalar.
func (t *Tensor[T, B]) MulScalar(s float32) *Tensor[T, B] {
	return New[T, B](t.backend.MulScalar(t.raw, s), t.backend)
}

// DivScalar divides every element by a scalar.
func (t *Tensor[T, B]) DivScalar(s float32) *Tensor[T, B] {
	return New[T, B](t.backend.DivScalar(t.raw, s), t.backend)
}

// Exp computes the element-wise exponential.
func (t *Tensor[T, B]) Exp() *Tensor[T, B] {
	return New[T, B](t.backend.Exp(t.raw), t.backend)
}

// Abs computes the element-wise absolute value.
func (t *Tensor[T, B]) Abs() *Tensor[T, B] {
	return New[T, B](t.backend.Abs(t.raw), t.backend)
}

// Atan computes the element-wise arctangent.
func (t *Tensor[T, B]) Atan() *Tensor[T, B] {
	return New[T, B](t.backend.Atan(t.raw), t.backend)
}

// Sigmoid computes the element-wise logistic function 1/(1+exp(-x)).
func (t *Tensor[T, B]) Sigmoid() *Tensor[T, B] {
	return New[T, B](t.backend.Sigmoid(t.raw), t.backend)
}

// Clamp limits every element to the range [lo, hi].
func (t *Tensor[T, B]) Clamp(lo, hi float32) *Tensor[T, B] {
	return New[T, B](t.backend.Clamp(t.raw, lo, hi), t.backend)
}

// Greater returns the element-wise comparison t > other as a bool tensor.
func (t *Tensor[T, B]) Greater(other *Tensor[T, B]) *Tensor[bool, B] {
	return New[bool, B](t.backend.Greater(t.raw, other.raw), t.backend)
}

// Lower returns the element-wise comparison t < other as a bool tensor.
func (t *Tensor[T, B]) Lower(other *Tensor[T, B]) *Tensor[bool, B] {
	return New[bool, B](t.backend.Lower(t.raw, other.raw), t.backend)
}

// GreaterEqualScalar returns the element-wise comparison t >= s as a bool tensor.
func (t *Tensor[T, B]) GreaterEqualScalar(s float32) *Tensor[bool, B] {
	return New[bool, B](t.backend.GreaterEqualScalar(t.raw, s), t.backend)
}

// Mean returns the arithmetic mean over all elements of a float tensor.
func (t *Tensor[T, B]) Mean() float32 {
	return t.backend.Sum(t.raw) / float32(t.NumElements())
}

// Where selects elements from x where cond is true, otherwise from y.
func Where[T DType, B Backend](cond *Tensor[bool, B], x, y *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](cond.backend.Where(cond.raw, x.raw, y.raw), cond.backend)
}

// BoolToFloat casts a bool tensor to a float32 tensor of exact zeros and
// ones, so spike indicators can be used as multiplicative masks.
func BoolToFloat[B Backend](t *Tensor[bool, B]) *Tensor[float32, B] {
	return New[float32, B](t.backend.Cast(t.raw, Float32), t.backend)
}
