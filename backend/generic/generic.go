// Copyright 2025 The matlite authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package generic provides the pure Go kernel set. It is the fallback path
// of the dual-backend dispatch and is always available.
package generic

import (
	internalgeneric "github.com/matlite-ml/matlite/internal/backend/generic"
	"github.com/matlite-ml/matlite/matrix"
)

// Backend computes every kernel in pure Go.
type Backend = internalgeneric.Backend

// Compile-time check that Backend implements matrix.Kernels.
var _ matrix.Kernels = (*Backend)(nil)

// New creates a new generic kernel set.
//
// Example:
//
//	kern := generic.New()
//	a, _ := matrix.New([][]float64{{1, 2}, {3, 4}}, kern)
func New() *Backend {
	return internalgeneric.New()
}
