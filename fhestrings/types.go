package fhestrings

import "fmt"

// EncInt is a ciphertext encrypting an unsigned 8-bit integer. The same representation
// backs both encrypted ASCII bytes (see EncChar) and the 0/1 results returned by every
// comparison predicate in this package. It carries no exported fields: concrete backends
// (see IntegerEvaluator) are the only code allowed to construct or inspect one, which is
// what keeps the kernels in this package oblivious to the underlying scheme.
type EncInt interface {
	isEncInt()
}

// EncChar is a ciphertext encrypting a single ASCII byte, with the value 0 reserved to
// mark a padding position. It is a thin newtype over EncInt so that character kernels
// and integer kernels cannot be mixed up at the type level.
type EncChar struct {
	V EncInt
}

// PaddingKind describes which positions of an EncString's buffer are allowed to carry
// encrypted zero (padding) bytes.
type PaddingKind uint8

const (
	// PaddingNone means every position encrypts a non-zero byte; true length equals the
	// buffer length.
	PaddingNone PaddingKind = iota
	// PaddingFinal means zero bytes, if any, occupy only a trailing suffix.
	PaddingFinal
	// PaddingInitial means zero bytes, if any, occupy only a leading prefix.
	PaddingInitial
	// PaddingInitialAndFinal means zeros may appear at both ends, never interleaved
	// with non-zero bytes.
	PaddingInitialAndFinal
)

func (p PaddingKind) String() string {
	switch p {
	case PaddingNone:
		return "None"
	case PaddingFinal:
		return "Final"
	case PaddingInitial:
		return "Initial"
	case PaddingInitialAndFinal:
		return "InitialAndFinal"
	default:
		return fmt.Sprintf("PaddingKind(%d)", uint8(p))
	}
}

// hasNoInitialPadding reports whether p guarantees that padding zeros, if any, occupy
// only a trailing suffix - the precondition shared by every kernel in kernel.go.
func (p PaddingKind) hasNoInitialPadding() bool {
	return p == PaddingNone || p == PaddingFinal
}

// Length is the true (unpadded) length of an EncString: either a public integer or a
// ciphertext encrypting it. The zero value is the clear length 0.
type Length struct {
	clear     int
	encLen    EncInt
	encrypted bool
}

// ClearLength builds a Length whose value n is public.
func ClearLength(n int) Length {
	return Length{clear: n}
}

// EncryptedLength builds a Length whose value is hidden behind the ciphertext ct.
func EncryptedLength(ct EncInt) Length {
	return Length{encLen: ct, encrypted: true}
}

// Clear returns the public length and true if l is public.
func (l Length) Clear() (int, bool) {
	if l.encrypted {
		return 0, false
	}
	return l.clear, true
}

// Encrypted returns the hidden length ciphertext and true if l is hidden.
func (l Length) Encrypted() (EncInt, bool) {
	return l.encLen, l.encrypted
}

// Op selects the relation evaluated by a character or string comparison kernel.
// OpLess and OpGreater are the inclusive operators <= and >=; strict inequality is never
// needed because the dispatchers compose Eq separately (see Compare).
type Op uint8

const (
	OpLess Op = iota
	OpEqual
	OpGreater
)

// EncString is an encrypted ASCII string: an ordered sequence of EncChar of public
// buffer length, a padding tag, and a true (possibly hidden) length.
//
// Padding invariant: in a well-formed EncString, the set of positions whose plaintext is
// zero forms a prefix, a suffix, or both, consistent with Padding. The true plaintext is
// the sub-sequence of non-zero bytes in their original order. EncString values are
// immutable inputs to every function in this package except RemoveInitialPaddingAssign,
// which mutates its operand in place.
type EncString struct {
	Content []EncChar
	Padding PaddingKind
	Length  Length
}

// BufferLen returns the public buffer length B of s, i.e. len(s.Content).
func (s EncString) BufferLen() int {
	return len(s.Content)
}
