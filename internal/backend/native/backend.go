// Package native implements the accelerated kernel set. Kernels live in a
// natively compiled shared library resolved at process start; when
// resolution fails on every strategy the package degrades to reporting
// fallback mode and the generic kernels carry all arithmetic.
package native

import (
	"github.com/matlite-ml/matlite/internal/backend/generic"
	"github.com/matlite-ml/matlite/internal/matrix"
)

// Verify that Backend implements matrix.Kernels.
var _ matrix.Kernels = (*Backend)(nil)

// kernelTable holds the four resolved kernel entry points. A Backend is
// only constructed from a fully populated table: either all four symbols
// resolve from one library or none do.
type kernelTable struct {
	add    func(a, b, out []float64, n int)
	sub    func(a, b, out []float64, n int)
	matmul func(a, b, out []float64, m, k, n int)
	pow    func(a []float64, e float64, out []float64, n int)
}

func (t kernelTable) complete() bool {
	return t.add != nil && t.sub != nil && t.matmul != nil && t.pow != nil
}

// Backend dispatches arithmetic to the native kernels. Elementwise multiply
// has no native entry point and delegates to the generic kernels.
type Backend struct {
	table    kernelTable
	fallback *generic.Backend
	library  string
}

// Name returns the kernel set name.
func (b *Backend) Name() string { return "native" }

// Accelerated reports whether native kernels back this strategy.
func (b *Backend) Accelerated() bool { return true }

// Library returns the path of the loaded kernel library.
func (b *Backend) Library() string { return b.library }

// Add performs elementwise addition with broadcasting via the native kernel.
func (b *Backend) Add(a, o *matrix.Dense) (*matrix.Dense, error) {
	return b.elementwise(a, o, b.table.add)
}

// Sub performs elementwise subtraction with broadcasting via the native kernel.
func (b *Backend) Sub(a, o *matrix.Dense) (*matrix.Dense, error) {
	return b.elementwise(a, o, b.table.sub)
}

// Mul performs elementwise multiplication. No native kernel exists for this
// operation, so it always runs on the generic path.
func (b *Backend) Mul(a, o *matrix.Dense) (*matrix.Dense, error) {
	return b.fallback.Mul(a, o)
}

// MatMul performs matrix multiplication via the native kernel.
func (b *Backend) MatMul(a, o *matrix.Dense) (*matrix.Dense, error) {
	// Shape validation stays in Go; reuse the generic kernel's error for
	// mismatched inner dimensions so both paths fail identically.
	if a.Cols() != o.Rows() {
		_, err := b.fallback.MatMul(a, o)
		return nil, err
	}
	m, k, n := a.Rows(), a.Cols(), o.Cols()
	out, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, err
	}
	b.table.matmul(a.Data(), o.Data(), out.Data(), m, k, n)
	return out, nil
}

// Pow performs elementwise power via the native kernel.
func (b *Backend) Pow(a *matrix.Dense, exp float64) (*matrix.Dense, error) {
	out, err := matrix.NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, err
	}
	b.table.pow(a.Data(), exp, out.Data(), a.NumElements())
	return out, nil
}

// elementwise aligns the operands under broadcasting rules, materializes
// same-shape inputs, and hands flat arrays to the native kernel.
func (b *Backend) elementwise(a, o *matrix.Dense, kern func(a, b, out []float64, n int)) (*matrix.Dense, error) {
	rows, cols, needsBroadcast, err := matrix.BroadcastDims(a.Rows(), a.Cols(), o.Rows(), o.Cols())
	if err != nil {
		return nil, err
	}
	ea, eb := a, o
	if needsBroadcast {
		if ea, err = a.Broadcast(rows, cols); err != nil {
			return nil, err
		}
		if eb, err = o.Broadcast(rows, cols); err != nil {
			return nil, err
		}
	}
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	kern(ea.Data(), eb.Data(), out.Data(), rows*cols)
	return out, nil
}
