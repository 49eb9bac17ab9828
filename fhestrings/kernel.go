package fhestrings

// EqNoInitPadding checks whether s1 and s2 encrypt the same string. It assumes both
// operands carry padding None or Final, so that a trailing zero can be read unambiguously
// as end-of-string.
func (eval Evaluator) EqNoInitPadding(s1, s2 EncString) EncInt {
	b1, b2 := s1.BufferLen(), s2.BufferLen()
	b := b1
	if b2 < b {
		b = b2
	}

	result := eval.One()
	for i := 0; i < b; i++ {
		eval.BitAndAssign(&result, eval.CompareChar(s1.Content[i], s2.Content[i], OpEqual))
	}

	switch {
	case b1 > b2:
		return eval.BitAnd(result, eval.ScalarEq(s1.Content[b2].V, 0))
	case b2 > b1:
		return eval.BitAnd(result, eval.ScalarEq(s2.Content[b1].V, 0))
	default:
		return result
	}
}

// EqClearNoInitPadding checks whether s encrypts the clear string t. It assumes s
// carries padding None or Final.
func (eval Evaluator) EqClearNoInitPadding(s EncString, t []byte) EncInt {
	bs := s.BufferLen()
	if len(t) > bs {
		return eval.Zero()
	}

	b := bs
	if len(t) < b {
		b = len(t)
	}

	result := eval.One()
	for i := 0; i < b; i++ {
		eval.BitAndAssign(&result, eval.CompareClearChar(s.Content[i], t[i], OpEqual))
	}

	if bs > len(t) {
		return eval.BitAnd(result, eval.ScalarEq(s.Content[len(t)].V, 0))
	}
	return result
}

// StartsWithEncryptedNoInitPadding checks whether s encrypts a string that has the
// string encrypted by prefix as a byte-prefix. It assumes both operands carry padding
// None or Final. A padding zero inside prefix matches any byte of s at that position,
// since it marks the end of prefix's true content.
func (eval Evaluator) StartsWithEncryptedNoInitPadding(s, prefix EncString) EncInt {
	bs, bp := s.BufferLen(), prefix.BufferLen()
	b := bs
	if bp < b {
		b = bp
	}

	result := eval.One()
	for i := 0; i < b; i++ {
		eq := eval.CompareChar(s.Content[i], prefix.Content[i], OpEqual)

		term := eq
		if prefix.Padding != PaddingNone {
			term = eval.BitOr(eq, eval.ScalarEq(prefix.Content[i].V, 0))
		}
		eval.BitAndAssign(&result, term)
	}

	if bp > bs {
		return eval.BitAnd(result, eval.ScalarEq(prefix.Content[bs].V, 0))
	}
	return result
}

// StartsWithClearNoInitPadding checks whether s encrypts a string that has the clear
// string prefix as a byte-prefix. It assumes s carries padding None or Final. The
// dispatcher (StartsWithClear) is responsible for rejecting a prefix buffer longer than
// s up front; this kernel does not re-check that case.
func (eval Evaluator) StartsWithClearNoInitPadding(s EncString, prefix []byte) EncInt {
	bs := s.BufferLen()
	b := bs
	if len(prefix) < b {
		b = len(prefix)
	}

	result := eval.One()
	for i := 0; i < b; i++ {
		eval.BitAndAssign(&result, eval.CompareClearChar(s.Content[i], prefix[i], OpEqual))
	}
	return result
}

// CompareNoInitPadding evaluates the lexicographic relation op (OpLess or OpGreater,
// both inclusive) between s1 and s2, assuming both carry padding None or Final. It folds
// an "equal so far" ciphertext across positions so that only the first differing
// position contributes to the result, without branching on where that position is: every
// position updates the accumulator the same way regardless of whether a difference has
// already been found.
func (eval Evaluator) CompareNoInitPadding(s1, s2 EncString, op Op) EncInt {
	b1, b2 := s1.BufferLen(), s2.BufferLen()
	b := b1
	if b2 < b {
		b = b2
	}

	result := eval.Zero()
	eqPrev := eval.One()
	eqCur := eval.One()

	for i := 0; i < b; i++ {
		eqCur = eval.BitAnd(eqPrev, eval.CompareChar(s1.Content[i], s2.Content[i], OpEqual))
		firstDiff := eval.BitAnd(eqPrev, eval.BitNot(eqCur))
		result = eval.Cmux(firstDiff, eval.CompareChar(s1.Content[i], s2.Content[i], op), result)
		eqPrev = eqCur
	}

	switch {
	case b1 > b2:
		if op == OpGreater {
			return eval.BitOr(result, eqCur)
		}
		return eval.BitOr(result, eval.BitAnd(eqCur, eval.ScalarEq(s1.Content[b2].V, 0)))
	case b2 > b1:
		if op == OpLess {
			return eval.BitOr(result, eqCur)
		}
		return eval.BitOr(result, eval.BitAnd(eqCur, eval.ScalarEq(s2.Content[b1].V, 0)))
	default:
		return eval.BitOr(result, eqCur)
	}
}

// CompareClearNoInitPadding evaluates the lexicographic relation op (OpLess or
// OpGreater) between s and the clear string t, assuming s carries padding None or Final.
func (eval Evaluator) CompareClearNoInitPadding(s EncString, t []byte, op Op) EncInt {
	bs := s.BufferLen()
	b := bs
	if len(t) < b {
		b = len(t)
	}

	result := eval.Zero()
	eqPrev := eval.One()
	eqCur := eval.One()

	for i := 0; i < b; i++ {
		eqCur = eval.BitAnd(eqPrev, eval.CompareClearChar(s.Content[i], t[i], OpEqual))
		firstDiff := eval.BitAnd(eqPrev, eval.BitNot(eqCur))
		result = eval.Cmux(firstDiff, eval.CompareClearChar(s.Content[i], t[i], op), result)
		eqPrev = eqCur
	}

	switch {
	case bs > len(t):
		if op == OpGreater {
			return eval.BitOr(result, eqCur)
		}
		return eval.BitOr(result, eval.BitAnd(eqCur, eval.ScalarEq(s.Content[len(t)].V, 0)))
	case len(t) > bs:
		if op == OpLess {
			return eval.BitOr(result, eqCur)
		}
		return result
	default:
		return eval.BitOr(result, eqCur)
	}
}
