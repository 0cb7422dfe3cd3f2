// Copyright 2025 The matlite authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package native provides the accelerated kernel set backed by a natively
// compiled shared library resolved at process start.
//
// Resolution tries three strategies in order: loading a pre-built library,
// jit compilation of the embedded kernel source, and a full toolchain build
// of a configured source tree. Every failure is absorbed; when all three
// fail the process runs in fallback mode on the generic kernels and no
// error reaches arithmetic code.
//
// Example:
//
//	kern, status := native.Default()
//	if status.Available {
//	    fmt.Println("accelerated kernels:", status.Library)
//	}
//	a, _ := matrix.New([][]float64{{1, 2}, {3, 4}}, kern)
package native

import (
	internalnative "github.com/matlite-ml/matlite/internal/backend/native"
	"github.com/matlite-ml/matlite/matrix"
)

// Backend dispatches arithmetic to the native kernels.
type Backend = internalnative.Backend

// Compile-time check that Backend implements matrix.Kernels.
var _ matrix.Kernels = (*Backend)(nil)

// Options configures kernel resolution.
type Options = internalnative.Options

// Status describes the resolution outcome.
type Status = internalnative.Status

// Environment overrides consumed by Resolve.
const (
	EnvLibraryPath = internalnative.EnvLibraryPath
	EnvSourceDir   = internalnative.EnvSourceDir
)

// Resolve attempts to load the native kernels. It never returns an error:
// total failure yields a nil Backend and Status.Available == false.
func Resolve(opts Options) (*Backend, Status) {
	return internalnative.Resolve(opts)
}

// Default resolves at most once per process and returns the kernel strategy
// for all arithmetic: native when resolution succeeded, generic otherwise.
func Default() (matrix.Kernels, Status) {
	return internalnative.Default()
}

// Active reports whether the accelerated backend resolved for this process.
func Active() bool {
	return internalnative.Active()
}
