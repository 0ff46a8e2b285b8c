package cpu

import (
	"math/rand"
	"testing"

	"github.com/NullPointerExcy/Extended-LIF-Neurons/internal/tensor"
)

// The parallel and sequential sweeps must produce identical results; the
// chunking only changes who writes each element, not what is written.
func TestParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 50000
	a := make([]float32, n)
	b := make([]float32, n)
	for i := range a {
		a[i] = rng.Float32()*4 - 2
		b[i] = rng.Float32()*4 - 2
	}
	shape := tensor.Shape{n}
	ra, rb := fromSlice(t, a, shape), fromSlice(t, b, shape)

	par := New()
	seq := NewSequential()

	assertFloat32Slice(t, seq.Add(ra, rb).AsFloat32(), par.Add(ra, rb).AsFloat32(), "Add")
	assertFloat32Slice(t, seq.Mul(ra, rb).AsFloat32(), par.Mul(ra, rb).AsFloat32(), "Mul")
	assertFloat32Slice(t, seq.Sigmoid(ra).AsFloat32(), par.Sigmoid(ra).AsFloat32(), "Sigmoid")
	assertFloat32Slice(t, seq.MulScalar(ra, 0.5).AsFloat32(), par.MulScalar(ra, 0.5).AsFloat32(), "MulScalar")
}

func TestParallelBroadcast(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	rows, cols := 64, 256
	a := make([]float32, rows*cols)
	row := make([]float32, cols)
	for i := range a {
		a[i] = rng.Float32()
	}
	for i := range row {
		row[i] = rng.Float32()
	}
	ra := fromSlice(t, a, tensor.Shape{rows, cols})
	rr := fromSlice(t, row, tensor.Shape{1, cols})

	par := New()
	seq := NewSequential()
	assertFloat32Slice(t, seq.Add(ra, rr).AsFloat32(), par.Add(ra, rr).AsFloat32(), "broadcast Add")
}
