package groth16

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Prepare precomputes the fixed-key side of the pairing check: e(alpha, beta)
// and the negations of gamma and delta. The result is read-only and may be
// reused across verifications of the same key.
func Prepare(vk *VerifyingKey) PreparedVerifyingKey {
	var pvk PreparedVerifyingKey
	// Pair errs only on mismatched slice lengths
	pvk.AlphaBeta, _ = bls12381.Pair([]bls12381.G1Affine{vk.Alpha}, []bls12381.G2Affine{vk.Beta})
	pvk.GammaNeg.Neg(&vk.Gamma)
	pvk.DeltaNeg.Neg(&vk.Delta)
	pvk.IC = vk.IC
	return pvk
}

// Verify evaluates the Groth16 pairing check
//
//	e(A, B) == e(alpha, beta) * e(IC_sum, gamma) * e(C, delta)
//
// with IC_sum = IC[0] + sum_i inputs[i]*IC[i+1]. A failing check returns
// (false, nil); only a public-input count violation is an error.
func Verify(pvk *PreparedVerifyingKey, proof *Proof, inputs []fr.Element) (bool, error) {
	if len(inputs)+1 != len(pvk.IC) {
		return false, fmt.Errorf("%w: got %d inputs, key expects %d", ErrInputCountMismatch, len(inputs), len(pvk.IC)-1)
	}

	var icSum bls12381.G1Jac
	icSum.FromAffine(&pvk.IC[0])
	if len(inputs) > 0 {
		var acc bls12381.G1Jac
		if _, err := acc.MultiExp(pvk.IC[1:], inputs, ecc.MultiExpConfig{}); err != nil {
			return false, err
		}
		icSum.AddAssign(&acc)
	}
	var icSumAff bls12381.G1Affine
	icSumAff.FromJacobian(&icSum)

	// one Miller loop for e(A,B) * e(IC_sum,-gamma) * e(C,-delta), then a
	// single final exponentiation; points at infinity are skipped inside the
	// loop rather than faulting
	ml, err := bls12381.MillerLoop(
		[]bls12381.G1Affine{proof.A, icSumAff, proof.C},
		[]bls12381.G2Affine{proof.B, pvk.GammaNeg, pvk.DeltaNeg},
	)
	if err != nil {
		return false, err
	}
	res := bls12381.FinalExponentiation(&ml)
	return res.Equal(&pvk.AlphaBeta), nil
}

// VerifyBlob decodes a proof, a verifying key and a public-input buffer, then
// runs the pairing check. Decode errors surface before any pairing
// arithmetic.
func VerifyBlob(proofBytes, keyBytes, inputBytes []byte) (bool, error) {
	proof, err := DecodeProof(proofBytes)
	if err != nil {
		return false, err
	}
	vk, err := DecodeVerifyingKey(keyBytes)
	if err != nil {
		return false, err
	}
	inputs, err := DecodeScalars(inputBytes)
	if err != nil {
		return false, err
	}
	pvk := Prepare(&vk)
	return Verify(&pvk, &proof, inputs)
}

// VerifyBytes is the minimal embedding boundary: zero public inputs, with
// every decode error and failing check collapsed into 0. A valid proof
// returns 1. It never panics, whatever the buffer contents.
func VerifyBytes(proofBytes, keyBytes []byte) int {
	ok, err := VerifyBlob(proofBytes, keyBytes, nil)
	if err != nil || !ok {
		return 0
	}
	return 1
}
