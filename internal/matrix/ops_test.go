package matrix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, rows [][]float64) *Matrix {
	t.Helper()
	m, err := New(rows, NewMockKernels())
	require.NoError(t, err)
	return m
}

func TestAddScalar(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})

	got, err := a.Add(Scalar(10))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{11, 12}, {13, 14}}, got.Data())
}

func TestAddBroadcast(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{5}, {6}})

	got, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{6, 7}, {9, 10}}, got.Data())
}

func TestSub(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{5}, {6}})

	got, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-4, -3}, {-3, -2}}, got.Data())

	got, err = a.Sub(Scalar(1))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}, {2, 3}}, got.Data())
}

func TestElemMul(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{2, 2}, {3, 3}})

	got, err := a.ElemMul(b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 4}, {9, 12}}, got.Data())

	got, err = a.ElemMul(Scalar(2))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 4}, {6, 8}}, got.Data())
}

func TestMatMul(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{1, 0}, {0, 1}})

	got, err := a.MatMul(b)
	require.NoError(t, err)
	assert.True(t, got.Equal(a))
}

func TestMatMulShape(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2x3
	b := mustNew(t, [][]float64{{1}, {1}, {1}})        // 3x1

	got, err := a.MatMul(b)
	require.NoError(t, err)

	rows, cols := got.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 1, cols)
}

func TestMatMulDimensionMismatch(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}}) // 1x2
	b := mustNew(t, [][]float64{{1, 2}}) // 1x2: inner dims 2 vs 1

	_, err := a.MatMul(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "2")
	assert.Contains(t, err.Error(), "1")
}

func TestMatMulRejectsScalar(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}})

	_, err := a.MatMul(Scalar(2))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedOperand)
	assert.True(t, strings.Contains(err.Error(), "@"))
}

func TestPowScalar(t *testing.T) {
	a := mustNew(t, [][]float64{{-4, -3}, {-3, -2}})

	got, err := a.Pow(Scalar(2))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{16, 9}, {9, 4}}, got.Data())
}

func TestPowRejectsMatrix(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}})
	b := mustNew(t, [][]float64{{1, 2}})

	_, err := a.Pow(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedOperand)
	assert.True(t, strings.Contains(err.Error(), "**"))
}

func TestNilOperands(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}})

	for _, op := range []func(Operand) (*Matrix, error){a.Add, a.Sub, a.ElemMul, a.MatMul, a.Pow} {
		_, err := op(nil)
		assert.ErrorIs(t, err, ErrUnsupportedOperand)

		_, err = op((*Matrix)(nil))
		assert.ErrorIs(t, err, ErrUnsupportedOperand)
	}
}

func TestShapeMismatch(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2x3
	b := mustNew(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}) // 3x2

	_, err := a.Add(b)
	assert.ErrorIs(t, err, ErrShape)

	_, err = a.Sub(b)
	assert.ErrorIs(t, err, ErrShape)

	_, err = a.ElemMul(b)
	assert.ErrorIs(t, err, ErrShape)
}

// Operators never mutate their operands.
func TestOperandsImmutable(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{5}, {6}})

	_, err := a.Add(b)
	require.NoError(t, err)
	_, err = a.Sub(b)
	require.NoError(t, err)
	_, err = a.ElemMul(Scalar(3))
	require.NoError(t, err)
	_, err = a.Pow(Scalar(2))
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.Data())
	assert.Equal(t, [][]float64{{5}, {6}}, b.Data())
}

// The worked chain: (A+B) @ ((A-B)**2) for A=[[1,2],[3,4]], B=[[5],[6]].
func TestOperationChain(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{5}, {6}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	diff, err := a.Sub(b)
	require.NoError(t, err)
	sq, err := diff.Pow(Scalar(2))
	require.NoError(t, err)
	final, err := sum.MatMul(sq)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{159, 82}, {234, 121}}, final.Data())
}
