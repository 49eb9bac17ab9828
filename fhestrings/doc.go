// Package fhestrings implements comparison and prefix-matching operations on
// homomorphically-encrypted ASCII strings.
//
// Strings are represented as EncString values: an ordered sequence of single-byte
// ciphertexts (EncChar) of public buffer length, plus a padding tag describing where
// encrypted zero bytes may hide absent characters, plus a true (possibly encrypted)
// length. Every predicate exported by this package - equality, lexicographic order and
// prefix tests - returns a single EncInt ciphertext encrypting 0 or 1, with no
// data-dependent control flow observable to whoever runs the circuit.
//
// The package is agnostic to the concrete homomorphic scheme: every homomorphic
// operation is routed through the IntegerEvaluator interface, which callers inject
// (see Evaluator and NewEvaluator). Key and parameter generation for a radix-integer
// backend built on github.com/tuneinsight/lattigo/v5 is provided as thin glue in
// keys.go; a cleartext stand-in used by this package's own tests lives in
// testutils.go.
package fhestrings
