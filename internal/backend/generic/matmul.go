package generic

import (
	"github.com/cockroachdb/errors"

	"github.com/matlite-ml/matlite/internal/matrix"
)

// MatMul performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
// Naive O(M*K*N) implementation; the native kernel exists for the cases
// where this is too slow.
func (g *Backend) MatMul(a, b *matrix.Dense) (*matrix.Dense, error) {
	m, k := a.Rows(), a.Cols()
	kAlt, n := b.Rows(), b.Cols()
	if k != kAlt {
		return nil, errors.Mark(
			errors.Newf("matrix: matmul %dx%d @ %dx%d: inner dimensions %d and %d differ", m, k, kAlt, n, k, kAlt),
			matrix.ErrDimensionMismatch)
	}

	out, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, err
	}
	av := a.Data()
	bv := b.Data()
	res := out.Data()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for kk := 0; kk < k; kk++ {
				sum += av[i*k+kk] * bv[kk*n+j]
			}
			res[i*n+j] = sum
		}
	}
	return out, nil
}
