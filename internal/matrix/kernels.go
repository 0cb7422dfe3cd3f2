package matrix

// Kernels is the compute strategy behind matrix arithmetic. It is resolved
// once at startup and injected into every Matrix; the Matrix operators
// delegate to it without knowing which implementation is active.
//
// Implementations:
//   - internal/backend/generic: pure Go kernels (always available)
//   - internal/backend/native: natively compiled kernels loaded at runtime
//
// Both implementations must be numerically equivalent for identical inputs:
// exact for integer-valued data, within standard floating-point rounding
// otherwise. The native implementation delegates Mul to the generic kernels
// because no accelerated elementwise-multiply entry point exists.
type Kernels interface {
	// Elementwise binary operations with broadcasting.
	Add(a, b *Dense) (*Dense, error) // Elementwise addition.
	Sub(a, b *Dense) (*Dense, error) // Elementwise subtraction.
	Mul(a, b *Dense) (*Dense, error) // Elementwise multiplication.

	// Matrix product. Inner dimensions must match.
	MatMul(a, b *Dense) (*Dense, error)

	// Elementwise power with a scalar exponent.
	Pow(a *Dense, exp float64) (*Dense, error)

	// Metadata.
	Name() string      // Kernel set name (e.g. "generic", "native").
	Accelerated() bool // True when backed by natively compiled kernels.
}
