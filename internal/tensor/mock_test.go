package tensor

// testBackend is a stub Backend for tests that only exercise creation and
// data access. Compute methods are not used here; the real implementation
// is covered by the cpu backend tests.
type testBackend struct{}

func (testBackend) Add(a, b *RawTensor) *RawTensor                      { panic("not implemented") }
func (testBackend) Sub(a, b *RawTensor) *RawTensor                      { panic("not implemented") }
func (testBackend) Mul(a, b *RawTensor) *RawTensor                      { panic("not implemented") }
func (testBackend) Div(a, b *RawTensor) *RawTensor                      { panic("not implemented") }
func (testBackend) AddScalar(x *RawTensor, s float32) *RawTensor        { panic("not implemented") }
func (testBackend) SubScalar(x *RawTensor, s float32) *RawTensor        { panic("not implemented") }
func (testBackend) MulScalar(x *RawTensor, s float32) *RawTensor        { panic("not implemented") }
func (testBackend) DivScalar(x *RawTensor, s float32) *RawTensor        { panic("not implemented") }
func (testBackend) Exp(x *RawTensor) *RawTensor                         { panic("not implemented") }
func (testBackend) Abs(x *RawTensor) *RawTensor                         { panic("not implemented") }
func (testBackend) Atan(x *RawTensor) *RawTensor                        { panic("not implemented") }
func (testBackend) Sigmoid(x *RawTensor) *RawTensor                     { panic("not implemented") }
func (testBackend) Clamp(x *RawTensor, lo, hi float32) *RawTensor       { panic("not implemented") }
func (testBackend) Greater(a, b *RawTensor) *RawTensor                  { panic("not implemented") }
func (testBackend) Lower(a, b *RawTensor) *RawTensor                    { panic("not implemented") }
func (testBackend) GreaterEqualScalar(x *RawTensor, s float32) *RawTensor {
	panic("not implemented")
}
func (testBackend) Where(cond, x, y *RawTensor) *RawTensor      { panic("not implemented") }
func (testBackend) Cast(x *RawTensor, dtype DataType) *RawTensor { panic("not implemented") }
func (testBackend) Sum(x *RawTensor) float32                     { panic("not implemented") }
func (testBackend) Name() string                                 { return "test" }
func (testBackend) Device() Device                               { return CPU }
