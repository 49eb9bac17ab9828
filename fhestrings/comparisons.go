package fhestrings

// normalize replaces s with the output of RemoveInitialPadding when its padding tag
// might hide zeros before the true content (Initial or InitialAndFinal); operands that
// already satisfy the no-initial-padding precondition are returned unchanged.
func (eval Evaluator) normalize(s EncString) EncString {
	if s.Padding.hasNoInitialPadding() {
		return s
	}
	return eval.RemoveInitialPadding(s)
}

// Eq checks whether s1 and s2 encrypt the same string.
func (eval Evaluator) Eq(s1, s2 EncString) EncInt {
	if l1, ok1 := s1.Length.Clear(); ok1 {
		if l2, ok2 := s2.Length.Clear(); ok2 && l1 != l2 {
			return eval.Zero()
		}
	}
	return eval.EqNoInitPadding(eval.normalize(s1), eval.normalize(s2))
}

// EqClear checks whether s encrypts the clear string t.
func (eval Evaluator) EqClear(s EncString, t string) EncInt {
	tb := []byte(t)
	if l, ok := s.Length.Clear(); ok && l != len(tb) {
		return eval.Zero()
	}
	return eval.EqClearNoInitPadding(eval.normalize(s), tb)
}

// StartsWithEncrypted checks whether s encrypts a string that has the string encrypted
// by prefix as a byte-prefix.
func (eval Evaluator) StartsWithEncrypted(s, prefix EncString) EncInt {
	if sLen, sOk := s.Length.Clear(); sOk {
		if pLen, pOk := prefix.Length.Clear(); pOk && pLen > sLen {
			return eval.Zero()
		}
	}
	if pLen, pOk := prefix.Length.Clear(); pOk && pLen > s.BufferLen() {
		return eval.Zero()
	}
	return eval.StartsWithEncryptedNoInitPadding(eval.normalize(s), eval.normalize(prefix))
}

// StartsWithClear checks whether s encrypts a string that has the clear string prefix as
// a byte-prefix.
func (eval Evaluator) StartsWithClear(s EncString, prefix string) EncInt {
	pb := []byte(prefix)
	if l, ok := s.Length.Clear(); ok && len(pb) > l {
		return eval.Zero()
	}
	if len(pb) > s.BufferLen() {
		return eval.Zero()
	}
	return eval.StartsWithClearNoInitPadding(eval.normalize(s), pb)
}

// Compare evaluates the lexicographic relation op between s1 and s2. op = OpLess and
// op = OpGreater are inclusive (<=, >=). op = OpEqual is accepted for completeness but
// forwarded to Eq, which is strictly cheaper.
func (eval Evaluator) Compare(s1, s2 EncString, op Op) EncInt {
	if op == OpEqual {
		return eval.Eq(s1, s2)
	}
	return eval.CompareNoInitPadding(eval.normalize(s1), eval.normalize(s2), op)
}

// Le checks whether the string encrypted by s1 is lexicographically <= the string
// encrypted by s2.
func (eval Evaluator) Le(s1, s2 EncString) EncInt {
	return eval.Compare(s1, s2, OpLess)
}

// Ge checks whether the string encrypted by s1 is lexicographically >= the string
// encrypted by s2.
func (eval Evaluator) Ge(s1, s2 EncString) EncInt {
	return eval.Compare(s1, s2, OpGreater)
}

// CompareClear evaluates the lexicographic relation op between s and the clear string t.
func (eval Evaluator) CompareClear(s EncString, t string, op Op) EncInt {
	if op == OpEqual {
		return eval.EqClear(s, t)
	}
	return eval.CompareClearNoInitPadding(eval.normalize(s), []byte(t), op)
}

// LeClear checks whether the string encrypted by s is lexicographically <= t.
func (eval Evaluator) LeClear(s EncString, t string) EncInt {
	return eval.CompareClear(s, t, OpLess)
}

// GeClear checks whether the string encrypted by s is lexicographically >= t.
func (eval Evaluator) GeClear(s EncString, t string) EncInt {
	return eval.CompareClear(s, t, OpGreater)
}
