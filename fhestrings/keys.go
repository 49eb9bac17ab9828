package fhestrings

import (
	"github.com/tuneinsight/lattigo/v5/core/rlwe"
	"github.com/tuneinsight/lattigo/v5/schemes/bgv"
)

// ParametersLiteral is the user-facing description of the radix-integer parameters
// backing an EncString's characters. It mirrors heint.ParametersLiteral so that the same
// literal can be handed to either package; this package only ever needs it to size the
// plaintext modulus T (it must be large enough to hold 256 distinct ASCII byte values).
type ParametersLiteral = bgv.ParametersLiteral

// Parameters wraps bgv.Parameters, the concrete radix-integer parameter set that a
// production IntegerEvaluator (see evaluator.go) is built on. This package never reads
// into it directly; it exists purely so client code can generate keys through a single
// import.
type Parameters struct {
	bgv.Parameters
}

// NewParametersFromLiteral validates paramsLit and derives the corresponding Parameters.
func NewParametersFromLiteral(paramsLit ParametersLiteral) (Parameters, error) {
	params, err := bgv.NewParametersFromLiteral(paramsLit)
	return Parameters{Parameters: params}, err
}

// KeyPair is a client secret key paired with the public material it was derived from.
type KeyPair struct {
	SecretKey *rlwe.SecretKey
	PublicKey *rlwe.PublicKey
}

// GenKeyPair runs the key generator for params and returns a fresh client/public key
// pair, the same way an fhestrings client would before handing the public key (and the
// evaluation keys derived from it) to whichever server evaluates comparisons.
func GenKeyPair(params Parameters) KeyPair {
	kgen := rlwe.NewKeyGenerator(params)
	sk, pk := kgen.GenKeyPairNew()
	return KeyPair{SecretKey: sk, PublicKey: pk}
}

// GenRelinearizationKey derives the relinearization key needed by Mul in an
// IntegerEvaluator built on bgv.Evaluator, from the client secret key.
func GenRelinearizationKey(params Parameters, sk *rlwe.SecretKey) *rlwe.RelinearizationKey {
	kgen := rlwe.NewKeyGenerator(params)
	return kgen.GenRelinearizationKeyNew(sk)
}

// NewEncryptor returns an rlwe.Encryptor under key, suitable for an Encoder
// implementation to encrypt individual ASCII bytes into EncChar values.
func NewEncryptor(params Parameters, key rlwe.EncryptionKey) *rlwe.Encryptor {
	return rlwe.NewEncryptor(params, key)
}

// NewDecryptor returns an rlwe.Decryptor under sk, suitable for a Decoder implementation
// used in tests.
func NewDecryptor(params Parameters, sk *rlwe.SecretKey) *rlwe.Decryptor {
	return rlwe.NewDecryptor(params, sk)
}
