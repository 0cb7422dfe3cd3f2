// Package generic implements the pure Go kernel set. It is the fallback
// path of the dual-backend dispatch and the reference for numerical parity:
// the native kernels must reproduce its results.
package generic

import (
	"math"

	"github.com/matlite-ml/matlite/internal/matrix"
)

// Verify that Backend implements matrix.Kernels.
var _ matrix.Kernels = (*Backend)(nil)

// Backend computes every kernel in pure Go.
type Backend struct{}

// New creates a new generic backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the kernel set name.
func (g *Backend) Name() string { return "generic" }

// Accelerated reports whether native kernels back this strategy.
func (g *Backend) Accelerated() bool { return false }

// Add performs elementwise addition with broadcasting.
func (g *Backend) Add(a, b *matrix.Dense) (*matrix.Dense, error) {
	return g.elementwise(a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs elementwise subtraction with broadcasting.
func (g *Backend) Sub(a, b *matrix.Dense) (*matrix.Dense, error) {
	return g.elementwise(a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs elementwise multiplication with broadcasting.
func (g *Backend) Mul(a, b *matrix.Dense) (*matrix.Dense, error) {
	return g.elementwise(a, b, func(x, y float64) float64 { return x * y })
}

// Pow performs elementwise power with a scalar exponent.
func (g *Backend) Pow(a *matrix.Dense, exp float64) (*matrix.Dense, error) {
	out, err := matrix.NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, err
	}
	in := a.Data()
	res := out.Data()
	for i, v := range in {
		res[i] = math.Pow(v, exp)
	}
	return out, nil
}

// elementwise applies op over broadcast-aligned operands. Same-shape inputs
// take the flat fast path; mismatched shapes iterate with stride-0
// broadcasting (dimensions of size 1 repeat their single value).
func (g *Backend) elementwise(a, b *matrix.Dense, op func(float64, float64) float64) (*matrix.Dense, error) {
	rows, cols, needsBroadcast, err := matrix.BroadcastDims(a.Rows(), a.Cols(), b.Rows(), b.Cols())
	if err != nil {
		return nil, err
	}
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	res := out.Data()

	if !needsBroadcast {
		// Fast path: identical shapes, single flat loop.
		av := a.Data()
		bv := b.Data()
		for i := range res {
			res[i] = op(av[i], bv[i])
		}
		return out, nil
	}

	ar0, ar1 := broadcastStrides(a.Rows(), a.Cols())
	br0, br1 := broadcastStrides(b.Rows(), b.Cols())
	av := a.Data()
	bv := b.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			res[i*cols+j] = op(av[i*ar0+j*ar1], bv[i*br0+j*br1])
		}
	}
	return out, nil
}

// broadcastStrides returns row/column strides for broadcast iteration:
// a dimension of size 1 gets stride 0 so its single value repeats.
func broadcastStrides(rows, cols int) (rowStride, colStride int) {
	rowStride = cols
	colStride = 1
	if rows == 1 {
		rowStride = 0
	}
	if cols == 1 {
		colStride = 0
	}
	return rowStride, colStride
}
