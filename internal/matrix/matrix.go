package matrix

import (
	"fmt"
	"strings"
)

// Matrix is an immutable 2-D numeric value. It owns its data exclusively:
// constructors copy their input, operators return new instances, and no
// method mutates the receiver. The kernel strategy is injected at
// construction and carried to every derived Matrix.
//
// Example:
//
//	kern := generic.New()
//	a, _ := matrix.New([][]float64{{1, 2}, {3, 4}}, kern)
//	b, _ := matrix.FromSlice([]float64{5, 6}, kern) // promoted to 1x2
//	c, _ := a.Add(b)
type Matrix struct {
	dense *Dense
	kern  Kernels
}

// New constructs a Matrix from nested rows. Rows must be non-empty and
// rectangular; ragged input fails with ErrConstruction.
func New(rows [][]float64, k Kernels) (*Matrix, error) {
	if k == nil {
		return nil, constructionErrorf("matrix: nil kernel strategy")
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, constructionErrorf("matrix: empty input")
	}
	cols := len(rows[0])
	d, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, constructionErrorf("matrix: ragged input: row %d has %d elements, expected %d", i, len(row), cols)
		}
		copy(d.data[i*cols:(i+1)*cols], row)
	}
	return &Matrix{dense: d, kern: k}, nil
}

// FromSlice constructs a Matrix from a flat sequence, promoted to a single
// row (1×N).
func FromSlice(data []float64, k Kernels) (*Matrix, error) {
	if k == nil {
		return nil, constructionErrorf("matrix: nil kernel strategy")
	}
	if len(data) == 0 {
		return nil, constructionErrorf("matrix: empty input")
	}
	d, err := DenseFromSlice(data, 1, len(data))
	if err != nil {
		return nil, err
	}
	return &Matrix{dense: d, kern: k}, nil
}

// FromDense constructs a Matrix by copying an existing Dense.
func FromDense(d *Dense, k Kernels) (*Matrix, error) {
	if k == nil {
		return nil, constructionErrorf("matrix: nil kernel strategy")
	}
	if d == nil {
		return nil, constructionErrorf("matrix: nil dense input")
	}
	return &Matrix{dense: d.Clone(), kern: k}, nil
}

// fromResult wraps a kernel result without copying. The Dense comes fresh
// out of a kernel and has no other owner.
func (m *Matrix) fromResult(d *Dense) *Matrix {
	return &Matrix{dense: d, kern: m.kern}
}

// Shape returns the (rows, columns) pair.
func (m *Matrix) Shape() (rows, cols int) {
	return m.dense.rows, m.dense.cols
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.dense.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.dense.cols }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.dense.rows || j < 0 || j >= m.dense.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of bounds for %dx%d", i, j, m.dense.rows, m.dense.cols))
	}
	return m.dense.At(i, j)
}

// Data returns the matrix contents as nested rows. The result is a copy;
// modifying it does not affect the Matrix.
func (m *Matrix) Data() [][]float64 {
	out := make([][]float64, m.dense.rows)
	for i := range out {
		out[i] = make([]float64, m.dense.cols)
		copy(out[i], m.dense.data[i*m.dense.cols:(i+1)*m.dense.cols])
	}
	return out
}

// Raw returns the underlying Dense.
// Used by kernel implementations and the benchmark harness for low-level
// access. The Dense must be treated as read-only.
func (m *Matrix) Raw() *Dense { return m.dense }

// Kernels returns the injected compute strategy.
func (m *Matrix) Kernels() Kernels { return m.kern }

// Equal reports exact elementwise equality of shape and contents.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || !sameShape(m.dense, other.dense) {
		return false
	}
	for i, v := range m.dense.data {
		if other.dense.data[i] != v {
			return false
		}
	}
	return true
}

// EqualApprox reports elementwise equality within eps.
func (m *Matrix) EqualApprox(other *Matrix, eps float64) bool {
	if other == nil || !sameShape(m.dense, other.dense) {
		return false
	}
	for i, v := range m.dense.data {
		diff := v - other.dense.data[i]
		if diff < -eps || diff > eps {
			return false
		}
	}
	return true
}

// String renders the matrix row by row.
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Matrix %dx%d [", m.dense.rows, m.dense.cols)
	for i := 0; i < m.dense.rows; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("[")
		for j := 0; j < m.dense.cols; j++ {
			if j > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%g", m.dense.At(i, j))
		}
		sb.WriteString("]")
	}
	sb.WriteString("]")
	return sb.String()
}
