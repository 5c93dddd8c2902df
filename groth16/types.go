// Package groth16 verifies Groth16 proofs over BLS12-381 decoded from raw
// byte buffers. Decoding validates every curve point (canonical encoding,
// curve equation, prime-order subgroup) before any pairing arithmetic runs.
// All functions are pure and safe for concurrent use.
package groth16

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Encoded element sizes in bytes. Points use the uncompressed canonical
// encoding with flag bits in the most significant byte, scalars are
// big-endian fr elements.
const (
	SizeG1     = 96
	SizeG2     = 192
	SizeScalar = fr.Bytes

	// SizeProof is A(G1) || B(G2) || C(G1).
	SizeProof = 2*SizeG1 + SizeG2

	// sizeVKFixed is alpha(G1) || beta(G2) || gamma(G2) || delta(G2),
	// before the variable IC tail.
	sizeVKFixed = SizeG1 + 3*SizeG2
)

// Proof is a decoded Groth16 proof.
type Proof struct {
	A bls12381.G1Affine
	B bls12381.G2Affine
	C bls12381.G1Affine
}

// VerifyingKey is a decoded Groth16 verifying key. IC holds one G1 point per
// public input plus the constant term, so len(IC) == NumPublicInputs() + 1.
type VerifyingKey struct {
	Alpha bls12381.G1Affine
	Beta  bls12381.G2Affine
	Gamma bls12381.G2Affine
	Delta bls12381.G2Affine
	IC    []bls12381.G1Affine
}

// NumPublicInputs returns the number of public inputs the key expects.
func (vk *VerifyingKey) NumPublicInputs() int {
	return len(vk.IC) - 1
}

// PreparedVerifyingKey is the precomputed form of a VerifyingKey used by
// Verify: e(alpha, beta) is paired once, gamma and delta are negated so the
// whole check runs as a single batched Miller loop.
type PreparedVerifyingKey struct {
	AlphaBeta bls12381.GT
	GammaNeg  bls12381.G2Affine
	DeltaNeg  bls12381.G2Affine
	IC        []bls12381.G1Affine
}
