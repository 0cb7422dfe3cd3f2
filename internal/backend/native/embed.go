package native

import _ "embed"

// kernelSource is the C source for the native kernels, carried in the
// binary so the jit strategy can compile it without a checkout.
//
//go:embed src/matkern.c
var kernelSource []byte
