package groth16

import (
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

func generatorProof() Proof {
	_, _, g1, g2 := bls12381.Generators()
	return Proof{A: g1, B: g2, C: g1}
}

func generatorKey(numInputs int) VerifyingKey {
	_, _, g1, g2 := bls12381.Generators()
	vk := VerifyingKey{Alpha: g1, Beta: g2, Gamma: g2, Delta: g2}
	vk.IC = make([]bls12381.G1Affine, numInputs+1)
	for i := range vk.IC {
		vk.IC[i] = g1
	}
	return vk
}

// g1NotInSubgroup searches for a point on the curve but outside the
// prime-order subgroup. With cofactor ~0x396c8c005555e1568c00aaab0000aaab
// almost every curve point qualifies.
func g1NotInSubgroup(t *testing.T) bls12381.G1Affine {
	t.Helper()
	var four fp.Element
	four.SetUint64(4)
	for i := uint64(1); i < 1000; i++ {
		var x, rhs, y fp.Element
		x.SetUint64(i)
		rhs.Square(&x)
		rhs.Mul(&rhs, &x)
		rhs.Add(&rhs, &four)
		if y.Sqrt(&rhs) == nil {
			continue
		}
		p := bls12381.G1Affine{X: x, Y: y}
		if p.IsOnCurve() && !p.IsInSubGroup() {
			return p
		}
	}
	t.Fatal("no G1 point outside the subgroup found")
	return bls12381.G1Affine{}
}

func g2NotInSubgroup(t *testing.T) bls12381.G2Affine {
	t.Helper()
	var b bls12381.E2
	b.A0.SetUint64(4)
	b.A1.SetUint64(4)
	for i := uint64(1); i < 1000; i++ {
		var x, rhs, y bls12381.E2
		x.A0.SetUint64(i)
		rhs.Square(&x)
		rhs.Mul(&rhs, &x)
		rhs.Add(&rhs, &b)
		if rhs.Legendre() != 1 {
			continue
		}
		y.Sqrt(&rhs)
		p := bls12381.G2Affine{X: x, Y: y}
		if p.IsOnCurve() && !p.IsInSubGroup() {
			return p
		}
	}
	t.Fatal("no G2 point outside the subgroup found")
	return bls12381.G2Affine{}
}

func TestProofRoundTrip(t *testing.T) {
	proof := generatorProof()
	buf := EncodeProof(&proof)
	require.Len(t, buf, SizeProof)

	decoded, err := DecodeProof(buf)
	require.NoError(t, err)
	require.True(t, decoded.A.Equal(&proof.A))
	require.True(t, decoded.B.Equal(&proof.B))
	require.True(t, decoded.C.Equal(&proof.C))
}

func TestProofLengthValidation(t *testing.T) {
	proof := generatorProof()
	buf := EncodeProof(&proof)

	_, err := DecodeProof(nil)
	require.ErrorIs(t, err, ErrMalformedLength)

	_, err = DecodeProof(buf[:SizeProof-1])
	require.ErrorIs(t, err, ErrMalformedLength)

	_, err = DecodeProof(append(buf, 0))
	require.ErrorIs(t, err, ErrTrailingBytes)
}

func TestProofFlagBits(t *testing.T) {
	proof := generatorProof()
	buf := EncodeProof(&proof)
	buf[0] |= 0b100 << 5 // compressed flag has no place in this encoding

	_, err := DecodeProof(buf)
	require.ErrorIs(t, err, ErrPointNotOnCurve)
}

func TestProofNonCanonicalCoordinate(t *testing.T) {
	proof := generatorProof()
	buf := EncodeProof(&proof)
	// x above the field modulus, flag bits clear
	buf[0] = 0x1f
	for i := 1; i < fp.Bytes; i++ {
		buf[i] = 0xff
	}

	_, err := DecodeProof(buf)
	require.ErrorIs(t, err, ErrPointNotOnCurve)
}

func TestProofPointNotOnCurve(t *testing.T) {
	proof := generatorProof()
	var one fp.Element
	one.SetOne()
	proof.A.Y.Add(&proof.A.Y, &one)

	_, err := DecodeProof(EncodeProof(&proof))
	require.ErrorIs(t, err, ErrPointNotOnCurve)
}

func TestProofPointNotInSubgroup(t *testing.T) {
	proof := generatorProof()
	proof.A = g1NotInSubgroup(t)
	_, err := DecodeProof(EncodeProof(&proof))
	require.ErrorIs(t, err, ErrPointNotInSubgroup)

	proof = generatorProof()
	proof.B = g2NotInSubgroup(t)
	_, err = DecodeProof(EncodeProof(&proof))
	require.ErrorIs(t, err, ErrPointNotInSubgroup)
}

func TestProofInfinity(t *testing.T) {
	// all three elements at infinity decode fine; rejecting them is the
	// verifier equation's job, not the codec's
	var proof Proof
	buf := EncodeProof(&proof)
	require.Equal(t, flagInfinity, buf[0])

	decoded, err := DecodeProof(buf)
	require.NoError(t, err)
	require.True(t, decoded.A.IsInfinity())
	require.True(t, decoded.B.IsInfinity())

	// non-canonical infinity padding is rejected
	buf[5] = 1
	_, err = DecodeProof(buf)
	require.ErrorIs(t, err, ErrPointNotOnCurve)
}

func TestVerifyingKeyRoundTrip(t *testing.T) {
	vk := generatorKey(2)
	buf := EncodeVerifyingKey(&vk)
	require.Len(t, buf, sizeVKFixed+3*SizeG1)

	decoded, err := DecodeVerifyingKey(buf)
	require.NoError(t, err)
	require.Equal(t, 2, decoded.NumPublicInputs())
	require.True(t, decoded.Alpha.Equal(&vk.Alpha))
	require.True(t, decoded.Beta.Equal(&vk.Beta))
	require.True(t, decoded.Gamma.Equal(&vk.Gamma))
	require.True(t, decoded.Delta.Equal(&vk.Delta))
	for i := range vk.IC {
		require.True(t, decoded.IC[i].Equal(&vk.IC[i]))
	}
}

func TestVerifyingKeyLengthValidation(t *testing.T) {
	vk := generatorKey(0)
	buf := EncodeVerifyingKey(&vk)

	// an empty IC tail would mean a key with no constant term
	_, err := DecodeVerifyingKey(buf[:sizeVKFixed])
	require.ErrorIs(t, err, ErrMalformedLength)

	_, err = DecodeVerifyingKey(buf[:len(buf)-1])
	require.ErrorIs(t, err, ErrMalformedLength)

	_, err = DecodeVerifyingKey(append(buf, 0))
	require.ErrorIs(t, err, ErrTrailingBytes)

	// half a point past the last whole IC element
	_, err = DecodeVerifyingKey(append(buf, make([]byte, SizeG1/2)...))
	require.ErrorIs(t, err, ErrTrailingBytes)
}

func TestVerifyingKeySubgroupValidation(t *testing.T) {
	vk := generatorKey(1)
	vk.IC[1] = g1NotInSubgroup(t)
	_, err := DecodeVerifyingKey(EncodeVerifyingKey(&vk))
	require.ErrorIs(t, err, ErrPointNotInSubgroup)

	vk = generatorKey(1)
	vk.Gamma = g2NotInSubgroup(t)
	_, err = DecodeVerifyingKey(EncodeVerifyingKey(&vk))
	require.ErrorIs(t, err, ErrPointNotInSubgroup)
}

func TestScalars(t *testing.T) {
	var a, b fr.Element
	a.SetUint64(35)
	b.SetUint64(1)
	b.Neg(&b) // r-1, the largest canonical scalar
	buf := EncodeScalars([]fr.Element{a, b})
	require.Len(t, buf, 2*SizeScalar)

	decoded, err := DecodeScalars(buf)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	require.True(t, decoded[0].Equal(&a))
	require.True(t, decoded[1].Equal(&b))

	_, err = DecodeScalars(buf[:SizeScalar-1])
	require.ErrorIs(t, err, ErrMalformedLength)

	// a value at or above the scalar field modulus is non-canonical
	over := make([]byte, SizeScalar)
	for i := range over {
		over[i] = 0xff
	}
	_, err = DecodeScalars(over)
	require.Error(t, err)

	decoded, err = DecodeScalars(nil)
	require.NoError(t, err)
	require.Empty(t, decoded)
}
