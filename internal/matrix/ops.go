package matrix

// Operator dispatch. Each operation resolves its Operand through the closed
// {Scalar, *Matrix} set, then delegates to the injected kernel strategy.
// Scalars are promoted to 1×1 matrices so the kernel broadcasting path is
// the only elementwise code path; the power operator is the exception, its
// kernel takes the scalar exponent directly.

// Add returns m + rhs elementwise, with broadcasting for matrix operands.
func (m *Matrix) Add(rhs Operand) (*Matrix, error) {
	other, err := m.elementwiseOperand("+", rhs)
	if err != nil {
		return nil, err
	}
	d, err := m.kern.Add(m.dense, other)
	if err != nil {
		return nil, err
	}
	return m.fromResult(d), nil
}

// Sub returns m - rhs elementwise, with broadcasting for matrix operands.
func (m *Matrix) Sub(rhs Operand) (*Matrix, error) {
	other, err := m.elementwiseOperand("-", rhs)
	if err != nil {
		return nil, err
	}
	d, err := m.kern.Sub(m.dense, other)
	if err != nil {
		return nil, err
	}
	return m.fromResult(d), nil
}

// ElemMul returns m * rhs elementwise, with broadcasting for matrix
// operands. This operation has no accelerated entry point; every kernel
// strategy computes it generically.
func (m *Matrix) ElemMul(rhs Operand) (*Matrix, error) {
	other, err := m.elementwiseOperand("*", rhs)
	if err != nil {
		return nil, err
	}
	d, err := m.kern.Mul(m.dense, other)
	if err != nil {
		return nil, err
	}
	return m.fromResult(d), nil
}

// MatMul returns the matrix product m @ rhs. The operand must be a Matrix
// whose row count equals m's column count; a scalar operand is not defined
// for this operator.
func (m *Matrix) MatMul(rhs Operand) (*Matrix, error) {
	switch v := rhs.(type) {
	case *Matrix:
		if v == nil {
			return nil, operandErrorf("matrix: operator @ requires a matrix operand, got nil")
		}
		d, err := m.kern.MatMul(m.dense, v.dense)
		if err != nil {
			return nil, err
		}
		return m.fromResult(d), nil
	case Scalar:
		return nil, operandErrorf("matrix: operator @ is not defined for scalar operands")
	default:
		return nil, operandErrorf("matrix: operator @ requires a matrix operand, got %T", rhs)
	}
}

// Pow returns m raised elementwise to a scalar exponent. A matrix exponent
// is not defined for this operator.
func (m *Matrix) Pow(rhs Operand) (*Matrix, error) {
	switch v := rhs.(type) {
	case Scalar:
		d, err := m.kern.Pow(m.dense, float64(v))
		if err != nil {
			return nil, err
		}
		return m.fromResult(d), nil
	case *Matrix:
		return nil, operandErrorf("matrix: operator ** is not defined for matrix exponents")
	default:
		return nil, operandErrorf("matrix: operator ** requires a scalar exponent, got %T", rhs)
	}
}

// elementwiseOperand resolves the right-hand side of +, -, * into a Dense:
// scalars become 1×1 matrices and broadcast like any other operand.
func (m *Matrix) elementwiseOperand(op string, rhs Operand) (*Dense, error) {
	switch v := rhs.(type) {
	case Scalar:
		d, err := DenseFromSlice([]float64{float64(v)}, 1, 1)
		if err != nil {
			return nil, err
		}
		return d, nil
	case *Matrix:
		if v == nil {
			return nil, operandErrorf("matrix: operator %s: nil matrix operand", op)
		}
		return v.dense, nil
	default:
		return nil, operandErrorf("matrix: operator %s requires a scalar or matrix operand, got %T", op, rhs)
	}
}
