// Package tensor provides the core tensor types for the Extended-LIF-Neurons
// simulation kernel.
//
// The simulation works on two kinds of data: float32 state tensors (membrane
// potential, thresholds, currents) and bool spike tensors. Everything is laid
// out as dense row-major buffers so compute backends can treat every
// per-neuron update as a whole-tensor operation.
package tensor

// DType is a constraint for supported tensor element types.
type DType interface {
	~float32 | ~bool
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Bool
)

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case bool:
		return Bool
	default:
		panic("unsupported type")
	}
}
