// Package matrix provides the core 2-D matrix type and kernel dispatch for matlite.
package matrix

import "github.com/cockroachdb/errors"

// Sentinel error set for the matrix package. All operations return these
// sentinels (possibly annotated with context via errors.Mark) and callers
// match them with errors.Is. No operation panics on user-triggered
// conditions; panics are reserved for programmer errors in private helpers.
var (
	// ErrConstruction is returned when the input to a constructor has the
	// wrong dimensionality, is ragged, or is otherwise not a rectangular
	// numeric layout.
	ErrConstruction = errors.New("matrix: invalid construction input")

	// ErrShape is returned when two operands cannot be aligned under
	// broadcasting rules for an elementwise operation.
	ErrShape = errors.New("matrix: incompatible shapes for broadcasting")

	// ErrDimensionMismatch is returned by matrix multiplication when the
	// inner dimensions of the operands differ.
	ErrDimensionMismatch = errors.New("matrix: inner dimension mismatch")

	// ErrUnsupportedOperand is returned when an operand is outside the
	// closed {Scalar, *Matrix} set accepted by an operator, or when an
	// operator does not define a meaning for the given operand kind
	// (scalar for `@`, matrix exponent for `**`).
	ErrUnsupportedOperand = errors.New("matrix: unsupported operand")
)

// shapeErrorf builds an ErrShape with operand context attached.
func shapeErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrShape)
}

// dimensionErrorf builds an ErrDimensionMismatch with the offending inner
// dimensions attached.
func dimensionErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrDimensionMismatch)
}

// operandErrorf builds an ErrUnsupportedOperand naming the operator symbol.
func operandErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrUnsupportedOperand)
}

// constructionErrorf builds an ErrConstruction with input context attached.
func constructionErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrConstruction)
}
