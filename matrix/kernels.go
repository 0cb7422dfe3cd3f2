// Copyright 2025 The matlite authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import "github.com/matlite-ml/matlite/internal/matrix"

// Kernels is the compute strategy behind matrix arithmetic.
//
// Implementations:
//   - backend/generic: pure Go kernels, always available
//   - backend/native: natively compiled kernels resolved at startup
//
// Both must produce identical results for identical inputs; the native
// implementation delegates elementwise multiply to the generic kernels
// because no accelerated entry point exists for it.
type Kernels = matrix.Kernels
