package fhestrings

// CompareChar returns the encryption of the boolean c1 op c2, evaluated over the 8-bit
// integer domain. op = OpLess and op = OpGreater are the inclusive operators <= and >=.
func (eval Evaluator) CompareChar(c1, c2 EncChar, op Op) EncInt {
	switch op {
	case OpEqual:
		return eval.IntegerEvaluator.Eq(c1.V, c2.V)
	case OpLess:
		return eval.IntegerEvaluator.Le(c1.V, c2.V)
	default:
		return eval.IntegerEvaluator.Ge(c1.V, c2.V)
	}
}

// CompareClearChar returns the encryption of the boolean c op scalar, evaluated over the
// 8-bit integer domain against a public byte.
func (eval Evaluator) CompareClearChar(c EncChar, scalar byte, op Op) EncInt {
	switch op {
	case OpEqual:
		return eval.ScalarEq(c.V, scalar)
	case OpLess:
		return eval.ScalarLe(c.V, scalar)
	default:
		return eval.ScalarGe(c.V, scalar)
	}
}
