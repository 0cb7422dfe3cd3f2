package matrix

import "math"

// Verify that MockKernels implements Kernels.
var _ Kernels = (*MockKernels)(nil)

// MockKernels is a naive kernel strategy for testing. It materializes
// broadcast operands and loops; correctness over speed.
type MockKernels struct{}

// NewMockKernels creates a new MockKernels.
func NewMockKernels() *MockKernels {
	return &MockKernels{}
}

// Name returns the strategy name.
func (mk *MockKernels) Name() string { return "mock" }

// Accelerated reports whether native kernels back this strategy.
func (mk *MockKernels) Accelerated() bool { return false }

// Add performs elementwise addition with broadcasting.
func (mk *MockKernels) Add(a, b *Dense) (*Dense, error) {
	return mk.elementwise(a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs elementwise subtraction with broadcasting.
func (mk *MockKernels) Sub(a, b *Dense) (*Dense, error) {
	return mk.elementwise(a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs elementwise multiplication with broadcasting.
func (mk *MockKernels) Mul(a, b *Dense) (*Dense, error) {
	return mk.elementwise(a, b, func(x, y float64) float64 { return x * y })
}

// MatMul performs naive matrix multiplication.
func (mk *MockKernels) MatMul(a, b *Dense) (*Dense, error) {
	if err := checkNonNil("matmul", a, b); err != nil {
		return nil, err
	}
	if a.cols != b.rows {
		return nil, dimensionErrorf("matrix: matmul %dx%d @ %dx%d: inner dimensions %d and %d differ",
			a.rows, a.cols, b.rows, b.cols, a.cols, b.rows)
	}
	out, err := NewDense(a.rows, b.cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			sum := 0.0
			for k := 0; k < a.cols; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, sum)
		}
	}
	return out, nil
}

// Pow performs elementwise power with a scalar exponent.
func (mk *MockKernels) Pow(a *Dense, exp float64) (*Dense, error) {
	if err := checkNonNil("pow", a); err != nil {
		return nil, err
	}
	out, err := NewDense(a.rows, a.cols)
	if err != nil {
		return nil, err
	}
	for i, v := range a.data {
		out.data[i] = math.Pow(v, exp)
	}
	return out, nil
}

func (mk *MockKernels) elementwise(a, b *Dense, op func(float64, float64) float64) (*Dense, error) {
	if err := checkNonNil("elementwise", a, b); err != nil {
		return nil, err
	}
	rows, cols, _, err := BroadcastDims(a.rows, a.cols, b.rows, b.cols)
	if err != nil {
		return nil, err
	}
	ea, err := a.Broadcast(rows, cols)
	if err != nil {
		return nil, err
	}
	eb, err := b.Broadcast(rows, cols)
	if err != nil {
		return nil, err
	}
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range out.data {
		out.data[i] = op(ea.data[i], eb.data[i])
	}
	return out, nil
}
