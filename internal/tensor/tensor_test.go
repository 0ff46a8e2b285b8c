package tensor

import (
	"math"
	"math/rand"
	"testing"
)

// Test helpers

func assertEqualFloat32(t *testing.T, expected, actual float32, msg string) {
	t.Helper()
	if math.Abs(float64(expected-actual)) > 1e-6 {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Bool, 1},
	}
	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestParseDevice(t *testing.T) {
	tests := []struct {
		in      string
		dev     Device
		wantErr bool
	}{
		{"cpu", CPU, false},
		{"cuda", CUDA, false},
		{"webgpu", WebGPU, false},
		{"tpu", CPU, true},
		{"", CPU, true},
	}
	for _, tt := range tests {
		dev, err := ParseDevice(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDevice(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDevice(%q): unexpected error %v", tt.in, err)
		}
		if dev != tt.dev {
			t.Errorf("ParseDevice(%q) = %v, want %v", tt.in, dev, tt.dev)
		}
	}
}

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{3, 4}, 12},
		{Shape{1, 128}, 128},
	}
	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Shape{2,3}.Validate() = %v, want nil", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("Shape{2,0}.Validate() should fail")
	}
	if err := (Shape{-1, 3}).Validate(); err == nil {
		t.Error("Shape{-1,3}.Validate() should fail")
	}
}

func TestShapeComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("strides = %v, want %v", strides, want)
			break
		}
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b    Shape
		want    Shape
		needs   bool
		wantErr bool
	}{
		{Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false, false},
		{Shape{1, 5}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{1}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{3, 4}, Shape{3, 5}, nil, false, true},
	}
	for _, tt := range tests {
		got, needs, err := BroadcastShapes(tt.a, tt.b)
		if tt.wantErr {
			if err == nil {
				t.Errorf("BroadcastShapes(%v, %v): expected error", tt.a, tt.b)
			}
			continue
		}
		if err != nil {
			t.Errorf("BroadcastShapes(%v, %v): unexpected error %v", tt.a, tt.b, err)
			continue
		}
		assertEqualShape(t, tt.want, got, "broadcast shape")
		if needs != tt.needs {
			t.Errorf("BroadcastShapes(%v, %v) needs = %v, want %v", tt.a, tt.b, needs, tt.needs)
		}
	}
}

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements = %d, want 6", raw.NumElements())
	}
	data := raw.AsFloat32()
	for i, v := range data {
		if v != 0 {
			t.Errorf("element %d = %v, want 0", i, v)
		}
	}

	if _, err := NewRaw(Shape{0, 3}, Float32, CPU); err == nil {
		t.Error("NewRaw with zero dimension should fail")
	}
}

func TestRawClone(t *testing.T) {
	raw, _ := NewRaw(Shape{4}, Float32, CPU)
	raw.AsFloat32()[0] = 7

	clone := raw.Clone()
	clone.AsFloat32()[0] = 9

	if raw.AsFloat32()[0] != 7 {
		t.Error("Clone should not share memory with the original")
	}
}

func TestFillAndCopyFrom(t *testing.T) {
	// testBackend is defined in mock_test.go
	b := testBackend{}
	a := Zeros[float32](Shape{2, 2}, b)
	a.Fill(3)
	for _, v := range a.Data() {
		assertEqualFloat32(t, 3, v, "Fill")
	}

	c := Zeros[float32](Shape{2, 2}, b)
	c.CopyFrom(a)
	for _, v := range c.Data() {
		assertEqualFloat32(t, 3, v, "CopyFrom")
	}
}

func TestFromSlice(t *testing.T) {
	b := testBackend{}
	x, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, b)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	assertEqualFloat32(t, 6, x.At(1, 2), "At(1,2)")

	x.Set(9, 0, 1)
	assertEqualFloat32(t, 9, x.At(0, 1), "Set/At")

	if _, err := FromSlice([]float32{1, 2}, Shape{3}, b); err == nil {
		t.Error("FromSlice with mismatched length should fail")
	}
}

func TestRandSourceReproducible(t *testing.T) {
	b := testBackend{}
	a := RandSource(rand.New(rand.NewSource(42)), Shape{100}, b)
	c := RandSource(rand.New(rand.NewSource(42)), Shape{100}, b)
	for i := range a.Data() {
		if a.Data()[i] != c.Data()[i] {
			t.Fatal("identical seeds must produce identical uniform draws")
		}
		if a.Data()[i] < 0 || a.Data()[i] >= 1 {
			t.Fatalf("uniform draw %v outside [0,1)", a.Data()[i])
		}
	}
}

func TestRandnSourceReproducible(t *testing.T) {
	b := testBackend{}
	a := RandnSource(rand.New(rand.NewSource(7)), Shape{100}, 0.5, b)
	c := RandnSource(rand.New(rand.NewSource(7)), Shape{100}, 0.5, b)
	for i := range a.Data() {
		if a.Data()[i] != c.Data()[i] {
			t.Fatal("identical seeds must produce identical normal draws")
		}
	}
}
