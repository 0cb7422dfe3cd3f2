package matrix

// Operand is the closed set of right-hand-side values accepted by the
// arithmetic operators: a Scalar or a *Matrix. Keeping the set closed means
// operand dispatch is an exhaustive type switch instead of open-ended
// runtime inspection.
type Operand interface {
	isOperand()
}

// Scalar is a plain numeric operand.
type Scalar float64

func (Scalar) isOperand()  {}
func (*Matrix) isOperand() {}
