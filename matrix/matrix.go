// Copyright 2025 The matlite authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/matlite-ml/matlite/internal/matrix"
)

// Matrix is an immutable 2-D numeric value with kernel-dispatched
// arithmetic. Operators never mutate their operands; each returns a new
// Matrix.
type Matrix = matrix.Matrix

// Dense is the low-level row-major storage behind a Matrix. Most users
// never touch it; kernel implementations and the benchmark harness do.
type Dense = matrix.Dense

// Operand is the closed set of operator right-hand sides: Scalar or *Matrix.
type Operand = matrix.Operand

// Scalar is a plain numeric operand.
type Scalar = matrix.Scalar

// Sentinel errors, matched with errors.Is.
var (
	ErrConstruction       = matrix.ErrConstruction
	ErrShape              = matrix.ErrShape
	ErrDimensionMismatch  = matrix.ErrDimensionMismatch
	ErrUnsupportedOperand = matrix.ErrUnsupportedOperand
)

// New constructs a Matrix from nested rows. Ragged input fails with
// ErrConstruction.
func New(rows [][]float64, k Kernels) (*Matrix, error) {
	return matrix.New(rows, k)
}

// FromSlice constructs a Matrix from a flat sequence, promoted to a single
// row (1×N).
func FromSlice(data []float64, k Kernels) (*Matrix, error) {
	return matrix.FromSlice(data, k)
}

// FromDense constructs a Matrix by copying an existing Dense.
func FromDense(d *Dense, k Kernels) (*Matrix, error) {
	return matrix.FromDense(d, k)
}

// Zeros creates a rows×cols matrix filled with zeros.
func Zeros(rows, cols int, k Kernels) (*Matrix, error) {
	return matrix.Zeros(rows, cols, k)
}

// Ones creates a rows×cols matrix filled with ones.
func Ones(rows, cols int, k Kernels) (*Matrix, error) {
	return matrix.Ones(rows, cols, k)
}

// Full creates a rows×cols matrix filled with value.
func Full(rows, cols int, value float64, k Kernels) (*Matrix, error) {
	return matrix.Full(rows, cols, value, k)
}

// Eye creates an n×n identity matrix.
func Eye(n int, k Kernels) (*Matrix, error) {
	return matrix.Eye(n, k)
}

// Rand creates a rows×cols matrix with values uniformly distributed in [0, 1).
func Rand(rows, cols int, k Kernels) (*Matrix, error) {
	return matrix.Rand(rows, cols, k)
}

// BroadcastDims applies the two-operand broadcasting rules to a pair of
// 2-D shapes.
func BroadcastDims(ar, ac, br, bc int) (rows, cols int, needsBroadcast bool, err error) {
	return matrix.BroadcastDims(ar, ac, br, bc)
}
