// Copyright 2025 The matlite authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API for 2-D matrix arithmetic with
// dual-backend kernel dispatch.
//
// # Overview
//
// A Matrix is an immutable 2-D float64 value. Arithmetic runs through a
// Kernels strategy resolved once at startup: natively compiled kernels when
// a kernel library can be loaded or built, pure Go kernels otherwise. Both
// paths share one set of broadcasting rules and produce identical results.
//
// # Basic Usage
//
//	import (
//	    "github.com/matlite-ml/matlite/backend/native"
//	    "github.com/matlite-ml/matlite/matrix"
//	)
//
//	func main() {
//	    kern, _ := native.Default() // native kernels, or generic fallback
//
//	    a, _ := matrix.New([][]float64{{1, 2}, {3, 4}}, kern)
//	    b, _ := matrix.New([][]float64{{5}, {6}}, kern)
//
//	    sum, _ := a.Add(b)                  // broadcasting: 2x1 across columns
//	    prod, _ := a.MatMul(b)              // matrix product
//	    sq, _ := a.Pow(matrix.Scalar(2))    // elementwise power
//	    _ = sum; _ = prod; _ = sq
//	}
//
// # Errors
//
// Operations return sentinel errors matched with errors.Is: ErrConstruction,
// ErrShape, ErrDimensionMismatch, ErrUnsupportedOperand.
package matrix
