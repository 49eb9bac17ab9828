package fhestrings

import "fmt"

// clearInt is the cleartext stand-in ciphertext used by ClearEvaluator: it carries its
// plaintext value in the open. It must never be used to protect real data.
type clearInt struct {
	v uint8
}

func (clearInt) isEncInt() {}

func wrapClear(v uint8) EncInt {
	return clearInt{v: v}
}

func unwrapClear(e EncInt) uint8 {
	ci, ok := e.(clearInt)
	if !ok {
		panic(fmt.Sprintf("fhestrings: ClearEvaluator received a foreign EncInt of type %T", e))
	}
	return ci.v
}

func boolToClear(b bool) EncInt {
	if b {
		return wrapClear(1)
	}
	return wrapClear(0)
}

// ClearEvaluator is a cleartext reference implementation of IntegerEvaluator: every
// "ciphertext" it produces actually carries its plaintext value in the open. It exists
// so this package's own tests, and demos, can exercise the oblivious
// algorithms in char.go, padding.go, kernel.go and comparisons.go without wiring a real
// homomorphic backend. It must never be used outside of tests and demos.
type ClearEvaluator struct{}

func (ClearEvaluator) Eq(a, b EncInt) EncInt { return boolToClear(unwrapClear(a) == unwrapClear(b)) }
func (ClearEvaluator) Le(a, b EncInt) EncInt { return boolToClear(unwrapClear(a) <= unwrapClear(b)) }
func (ClearEvaluator) Ge(a, b EncInt) EncInt { return boolToClear(unwrapClear(a) >= unwrapClear(b)) }

func (ClearEvaluator) ScalarEq(a EncInt, scalar uint8) EncInt {
	return boolToClear(unwrapClear(a) == scalar)
}
func (ClearEvaluator) ScalarLe(a EncInt, scalar uint8) EncInt {
	return boolToClear(unwrapClear(a) <= scalar)
}
func (ClearEvaluator) ScalarGe(a EncInt, scalar uint8) EncInt {
	return boolToClear(unwrapClear(a) >= scalar)
}

func (ClearEvaluator) BitAnd(a, b EncInt) EncInt {
	return boolToClear(unwrapClear(a) != 0 && unwrapClear(b) != 0)
}

func (ClearEvaluator) BitAndAssign(dst *EncInt, b EncInt) {
	*dst = boolToClear(unwrapClear(*dst) != 0 && unwrapClear(b) != 0)
}

func (ClearEvaluator) BitOr(a, b EncInt) EncInt {
	return boolToClear(unwrapClear(a) != 0 || unwrapClear(b) != 0)
}

func (ClearEvaluator) BitNot(a EncInt) EncInt {
	return boolToClear(unwrapClear(a) == 0)
}

func (ClearEvaluator) Mul(a, b EncInt) EncInt {
	return wrapClear(unwrapClear(a) * unwrapClear(b))
}

func (ClearEvaluator) AddAssign(dst *EncInt, b EncInt) {
	*dst = wrapClear(unwrapClear(*dst) + unwrapClear(b))
}

func (ClearEvaluator) SubAssign(dst *EncInt, b EncInt) {
	*dst = wrapClear(unwrapClear(*dst) - unwrapClear(b))
}

func (ClearEvaluator) Cmux(selector, then, els EncInt) EncInt {
	if unwrapClear(selector) != 0 {
		return then
	}
	return els
}

func (ClearEvaluator) Zero() EncInt { return wrapClear(0) }
func (ClearEvaluator) One() EncInt  { return wrapClear(1) }

// ClearEncoder is the Encoder counterpart of ClearEvaluator: it builds an EncString
// whose characters carry their plaintext byte in the open.
type ClearEncoder struct{}

// Encode builds an EncString from plain, tagging it with padding and length.
func (ClearEncoder) Encode(plain []byte, padding PaddingKind, length Length) (EncString, error) {
	content := make([]EncChar, len(plain))
	for i, b := range plain {
		content[i] = EncChar{V: wrapClear(b)}
	}
	return EncString{Content: content, Padding: padding, Length: length}, nil
}

// ClearDecoder is the Decoder counterpart of ClearEvaluator.
type ClearDecoder struct{}

// Decode returns the non-zero bytes of s.Content in order, i.e. the true plaintext
// string with its padding stripped.
func (ClearDecoder) Decode(s EncString) ([]byte, error) {
	out := make([]byte, 0, len(s.Content))
	for _, c := range s.Content {
		if v := unwrapClear(c.V); v != 0 {
			out = append(out, v)
		}
	}
	return out, nil
}

// DecodeBool reads the plaintext boolean carried by a comparison predicate's result,
// assuming it was produced by ClearEvaluator.
func DecodeBool(e EncInt) bool {
	return unwrapClear(e) != 0
}

// DecodeByte reads the plaintext byte carried by e, assuming it was produced by
// ClearEvaluator. It is mostly useful to tests inspecting PopFirstNonZeroChar's result
// directly rather than through a whole EncString.
func DecodeByte(e EncInt) byte {
	return unwrapClear(e)
}

// NewClearEvaluator returns an *Evaluator backed by ClearEvaluator, ready to drive the
// predicates in comparisons.go against plaintext test vectors.
func NewClearEvaluator() *Evaluator {
	return NewEvaluator(ClearEvaluator{})
}

// EncryptClear is a test/demo convenience that builds an EncString out of plain using
// ClearEncoder, without the caller needing to instantiate one itself.
func EncryptClear(plain []byte, padding PaddingKind, length Length) EncString {
	s, _ := ClearEncoder{}.Encode(plain, padding, length)
	return s
}
