package matrix

import "github.com/cockroachdb/errors"

// Dense is the low-level 2-D storage for matrix data: a flat float64 slice
// in row-major order plus explicit dimensions. Kernels operate on Dense
// values; the Matrix type wraps a Dense together with its kernel strategy.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense allocates a zeroed rows×cols Dense.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, constructionErrorf("matrix: invalid dimensions %dx%d (must be > 0)", rows, cols)
	}
	return &Dense{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// DenseFromSlice builds a rows×cols Dense by copying data. The slice length
// must equal rows*cols.
func DenseFromSlice(data []float64, rows, cols int) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, constructionErrorf("matrix: %dx%d requires %d elements, got %d", rows, cols, rows*cols, len(data))
	}
	copy(d.data, data)
	return d, nil
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.cols }

// NumElements returns the total number of elements.
func (d *Dense) NumElements() int { return d.rows * d.cols }

// Data returns the backing slice.
// WARNING: direct access to underlying memory. Kernels use this for
// zero-copy computation; everything above the kernel layer must copy.
func (d *Dense) Data() []float64 { return d.data }

// At returns the element at row i, column j.
func (d *Dense) At(i, j int) float64 { return d.data[i*d.cols+j] }

// Set stores v at row i, column j.
func (d *Dense) Set(i, j int, v float64) { d.data[i*d.cols+j] = v }

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	out := &Dense{rows: d.rows, cols: d.cols, data: make([]float64, len(d.data))}
	copy(out.data, d.data)
	return out
}

// Broadcast materializes d expanded to rows×cols under broadcasting rules
// (each dimension must equal the target or be 1). Accelerated kernels take
// pre-expanded same-shape inputs, so expansion here and stride-0 iteration
// in the generic kernels must agree element for element.
func (d *Dense) Broadcast(rows, cols int) (*Dense, error) {
	if (d.rows != rows && d.rows != 1) || (d.cols != cols && d.cols != 1) {
		return nil, shapeErrorf("matrix: cannot broadcast %dx%d to %dx%d", d.rows, d.cols, rows, cols)
	}
	if d.rows == rows && d.cols == cols {
		return d.Clone(), nil
	}
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		si := i
		if d.rows == 1 {
			si = 0
		}
		for j := 0; j < cols; j++ {
			sj := j
			if d.cols == 1 {
				sj = 0
			}
			out.data[i*cols+j] = d.data[si*d.cols+sj]
		}
	}
	return out, nil
}

// BroadcastDims applies the two-operand broadcasting rules to a pair of 2-D
// shapes: dimensions are compatible if equal or if one of them is 1.
// Returns the output dimensions and whether either operand needs expansion.
func BroadcastDims(ar, ac, br, bc int) (rows, cols int, needsBroadcast bool, err error) {
	rows, rok := broadcastDim(ar, br)
	cols, cok := broadcastDim(ac, bc)
	if !rok || !cok {
		return 0, 0, false, shapeErrorf("matrix: shapes %dx%d and %dx%d not compatible for broadcasting", ar, ac, br, bc)
	}
	return rows, cols, ar != br || ac != bc, nil
}

func broadcastDim(a, b int) (int, bool) {
	switch {
	case a == b:
		return a, true
	case a == 1:
		return b, true
	case b == 1:
		return a, true
	default:
		return 0, false
	}
}

// sameShape reports whether two Dense values have identical dimensions.
func sameShape(a, b *Dense) bool {
	return a.rows == b.rows && a.cols == b.cols
}

// checkNonNil guards kernel entry points against nil operands.
func checkNonNil(op string, ds ...*Dense) error {
	for _, d := range ds {
		if d == nil {
			return errors.Newf("matrix: %s: nil operand", op)
		}
	}
	return nil
}
