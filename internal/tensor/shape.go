package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
// Neuron-group state tensors are always Shape{batch, neurons}.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// BroadcastShapes implements NumPy-style broadcasting rules: shapes are
// compared right to left, dimensions are compatible when equal or when one
// of them is 1, and missing leading dimensions count as 1.
//
// Returns the broadcast shape, whether any operand needs broadcasting, and
// an error for incompatible shapes.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	result := make(Shape, n)
	needsBroadcast := false

	for i := 0; i < n; i++ {
		adim, bdim := 1, 1
		if ai := len(a) - 1 - i; ai >= 0 {
			adim = a[ai]
		}
		if bi := len(b) - 1 - i; bi >= 0 {
			bdim = b[bi]
		}
		switch {
		case adim == bdim:
			result[n-1-i] = adim
		case adim == 1:
			result[n-1-i] = bdim
			needsBroadcast = true
		case bdim == 1:
			result[n-1-i] = adim
			needsBroadcast = true
		default:
			return nil, false, fmt.Errorf("shapes not compatible for broadcasting: %v vs %v (dimension %d: %d vs %d)",
				a, b, n-1-i, adim, bdim)
		}
	}
	return result, needsBroadcast, nil
}
