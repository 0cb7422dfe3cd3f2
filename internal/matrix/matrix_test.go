package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	kern := NewMockKernels()

	m, err := New([][]float64{{1, 2, 3}, {4, 5, 6}}, kern)
	require.NoError(t, err)

	rows, cols := m.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 6.0, m.At(1, 2))
}

func TestNewRagged(t *testing.T) {
	kern := NewMockKernels()

	_, err := New([][]float64{{1, 2}, {3}}, kern)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConstruction)
}

func TestNewEmpty(t *testing.T) {
	kern := NewMockKernels()

	_, err := New(nil, kern)
	assert.ErrorIs(t, err, ErrConstruction)

	_, err = New([][]float64{{}}, kern)
	assert.ErrorIs(t, err, ErrConstruction)

	_, err = FromSlice(nil, kern)
	assert.ErrorIs(t, err, ErrConstruction)
}

func TestNewNilKernels(t *testing.T) {
	_, err := New([][]float64{{1}}, nil)
	assert.ErrorIs(t, err, ErrConstruction)
}

// Flat input is promoted to a single row.
func TestFromSlicePromotion(t *testing.T) {
	kern := NewMockKernels()

	m, err := FromSlice([]float64{1, 2, 3}, kern)
	require.NoError(t, err)

	rows, cols := m.Shape()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, [][]float64{{1, 2, 3}}, m.Data())
}

// Constructing from Matrix(x).Data() yields an identical Matrix.
func TestConstructionIdempotence(t *testing.T) {
	kern := NewMockKernels()

	m, err := New([][]float64{{1.5, 2}, {3, 4.25}}, kern)
	require.NoError(t, err)

	again, err := New(m.Data(), kern)
	require.NoError(t, err)
	assert.True(t, m.Equal(again))
}

// New copies its input; later mutation of the source must not show through.
func TestConstructionCopies(t *testing.T) {
	kern := NewMockKernels()
	rows := [][]float64{{1, 2}, {3, 4}}

	m, err := New(rows, kern)
	require.NoError(t, err)

	rows[0][0] = 99
	assert.Equal(t, 1.0, m.At(0, 0))
}

// Data returns a copy; mutating it must not affect the Matrix.
func TestDataCopies(t *testing.T) {
	kern := NewMockKernels()

	m, err := New([][]float64{{1, 2}}, kern)
	require.NoError(t, err)

	d := m.Data()
	d[0][0] = 99
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestFromDense(t *testing.T) {
	kern := NewMockKernels()

	d, err := DenseFromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	m, err := FromDense(d, kern)
	require.NoError(t, err)

	// FromDense copies: mutating the source Dense must not show through.
	d.Set(0, 0, 99)
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestEqualApprox(t *testing.T) {
	kern := NewMockKernels()

	a, err := New([][]float64{{1, 2}}, kern)
	require.NoError(t, err)
	b, err := New([][]float64{{1, 2 + 1e-12}}, kern)
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
	assert.True(t, a.EqualApprox(b, 1e-9))
	assert.False(t, a.EqualApprox(b, 1e-15))
}

func TestString(t *testing.T) {
	kern := NewMockKernels()

	m, err := New([][]float64{{1, 2}, {3, 4}}, kern)
	require.NoError(t, err)
	assert.Equal(t, "Matrix 2x2 [[1 2] [3 4]]", m.String())
}

func TestCreationHelpers(t *testing.T) {
	kern := NewMockKernels()

	z, err := Zeros(2, 3, kern)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z.Data())

	o, err := Ones(1, 2, kern)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1}}, o.Data())

	f, err := Full(2, 2, 3.5, kern)
	require.NoError(t, err)
	assert.Equal(t, 3.5, f.At(1, 1))

	e, err := Eye(3, kern)
	require.NoError(t, err)
	assert.Equal(t, 1.0, e.At(1, 1))
	assert.Equal(t, 0.0, e.At(0, 1))

	_, err = Zeros(0, 3, kern)
	assert.ErrorIs(t, err, ErrConstruction)
}
