package fhestrings

// PopFirstNonZeroChar obliviously returns the encryption of the first non-zero byte in
// content and zeros that position out in place; if every position is zero, it returns an
// encryption of zero and leaves content unchanged. The sequence of homomorphic operations
// it performs is the same regardless of where (or whether) a non-zero byte occurs, which
// is what lets RemoveInitialPadding build a data-independent normalizer out of repeated
// calls to this primitive.
func (eval Evaluator) PopFirstNonZeroChar(content []EncChar) EncChar {
	prevAllZero := eval.One()
	result := eval.Zero()

	for i := range content {
		cur := &content[i]

		curZero := eval.ScalarEq(cur.V, 0)
		first := eval.BitAnd(prevAllZero, eval.BitNot(curZero))

		// toSub encrypts cur's value iff cur is the first non-zero char seen so far,
		// zero otherwise.
		toSub := eval.Mul(cur.V, first)

		eval.AddAssign(&result, toSub)
		eval.SubAssign(&cur.V, toSub)

		prevAllZero = eval.BitAnd(prevAllZero, curZero)
	}

	return EncChar{V: result}
}

// RemoveInitialPadding returns a fresh EncString encrypting the same plaintext and true
// length as s, left-justified in a buffer of the same length B, with padding tag Final.
// It runs B iterations of PopFirstNonZeroChar over a scratch copy of s.Content so that,
// after the k-th iteration, the first k positions of the result hold the first k
// non-zero bytes of s in order.
func (eval Evaluator) RemoveInitialPadding(s EncString) EncString {
	b := s.BufferLen()

	working := make([]EncChar, b)
	copy(working, s.Content)

	result := make([]EncChar, b)
	for i := 0; i < b; i++ {
		result[i] = eval.PopFirstNonZeroChar(working[i:])
	}

	return EncString{Content: result, Padding: PaddingFinal, Length: s.Length}
}

// RemoveInitialPaddingAssign is the in-place counterpart of RemoveInitialPadding: it
// overwrites s.Content and s.Padding with the normalized buffer. It runs the same B
// iterations as the functional variant (the original formulation ran B-1, which shrinks
// the buffer by one position; this implementation preserves the buffer length instead,
// per the documented fix).
func (eval Evaluator) RemoveInitialPaddingAssign(s *EncString) {
	b := s.BufferLen()

	working := make([]EncChar, b)
	copy(working, s.Content)

	result := make([]EncChar, b)
	for i := 0; i < b; i++ {
		result[i] = eval.PopFirstNonZeroChar(working[i:])
	}

	s.Content = result
	s.Padding = PaddingFinal
}
