package groth16

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Flag bits carried in the most significant byte of a point encoding,
// following the ZCash BLS12-381 serialization convention (the format
// gnark-crypto's RawBytes emits).
const (
	flagMask     byte = 0b111 << 5
	flagInfinity byte = 0b010 << 5
)

// DecodeProof decodes A || B || C from buf. The buffer must be exactly
// SizeProof bytes; every point is checked for canonical encoding, curve
// membership and subgroup membership.
func DecodeProof(buf []byte) (Proof, error) {
	var proof Proof
	if len(buf) > SizeProof {
		return proof, fmt.Errorf("%w: %d bytes past the %d-byte proof encoding", ErrTrailingBytes, len(buf)-SizeProof, SizeProof)
	}
	if len(buf) < SizeProof {
		return proof, fmt.Errorf("%w: got %d bytes, proof encoding is %d", ErrMalformedLength, len(buf), SizeProof)
	}

	var err error
	if proof.A, err = decodeG1(buf[:SizeG1]); err != nil {
		return Proof{}, fmt.Errorf("proof element A: %w", err)
	}
	if proof.B, err = decodeG2(buf[SizeG1 : SizeG1+SizeG2]); err != nil {
		return Proof{}, fmt.Errorf("proof element B: %w", err)
	}
	if proof.C, err = decodeG1(buf[SizeG1+SizeG2:]); err != nil {
		return Proof{}, fmt.Errorf("proof element C: %w", err)
	}
	return proof, nil
}

// DecodeVerifyingKey decodes alpha || beta || gamma || delta followed by the
// IC tail. The IC count is inferred from the remaining length, which must be
// a non-zero exact multiple of SizeG1 (one point per public input plus the
// constant term).
func DecodeVerifyingKey(buf []byte) (VerifyingKey, error) {
	var vk VerifyingKey
	if len(buf) < sizeVKFixed+SizeG1 {
		return vk, fmt.Errorf("%w: got %d bytes, verifying key encoding is at least %d", ErrMalformedLength, len(buf), sizeVKFixed+SizeG1)
	}
	tail := len(buf) - sizeVKFixed
	if tail%SizeG1 != 0 {
		return vk, fmt.Errorf("%w: %d bytes past the last whole IC point", ErrTrailingBytes, tail%SizeG1)
	}

	var err error
	if vk.Alpha, err = decodeG1(buf[:SizeG1]); err != nil {
		return VerifyingKey{}, fmt.Errorf("verifying key alpha: %w", err)
	}
	off := SizeG1
	if vk.Beta, err = decodeG2(buf[off : off+SizeG2]); err != nil {
		return VerifyingKey{}, fmt.Errorf("verifying key beta: %w", err)
	}
	off += SizeG2
	if vk.Gamma, err = decodeG2(buf[off : off+SizeG2]); err != nil {
		return VerifyingKey{}, fmt.Errorf("verifying key gamma: %w", err)
	}
	off += SizeG2
	if vk.Delta, err = decodeG2(buf[off : off+SizeG2]); err != nil {
		return VerifyingKey{}, fmt.Errorf("verifying key delta: %w", err)
	}
	off += SizeG2

	vk.IC = make([]bls12381.G1Affine, tail/SizeG1)
	for i := range vk.IC {
		if vk.IC[i], err = decodeG1(buf[off : off+SizeG1]); err != nil {
			return VerifyingKey{}, fmt.Errorf("verifying key IC[%d]: %w", i, err)
		}
		off += SizeG1
	}
	return vk, nil
}

// DecodeScalars decodes a concatenation of big-endian fr elements, as public
// input buffers are laid out. Values at or above the field modulus are
// rejected.
func DecodeScalars(buf []byte) ([]fr.Element, error) {
	if len(buf)%SizeScalar != 0 {
		return nil, fmt.Errorf("%w: got %d bytes, scalars encode as %d each", ErrMalformedLength, len(buf), SizeScalar)
	}
	scalars := make([]fr.Element, len(buf)/SizeScalar)
	for i := range scalars {
		var err error
		if scalars[i], err = fr.BigEndian.Element((*[fr.Bytes]byte)(buf[i*SizeScalar : (i+1)*SizeScalar])); err != nil {
			return nil, fmt.Errorf("scalar %d: %w", i, err)
		}
	}
	return scalars, nil
}

// EncodeProof is the inverse of DecodeProof.
func EncodeProof(proof *Proof) []byte {
	buf := make([]byte, 0, SizeProof)
	a := proof.A.RawBytes()
	buf = append(buf, a[:]...)
	b := proof.B.RawBytes()
	buf = append(buf, b[:]...)
	c := proof.C.RawBytes()
	buf = append(buf, c[:]...)
	return buf
}

// EncodeVerifyingKey is the inverse of DecodeVerifyingKey.
func EncodeVerifyingKey(vk *VerifyingKey) []byte {
	buf := make([]byte, 0, sizeVKFixed+len(vk.IC)*SizeG1)
	alpha := vk.Alpha.RawBytes()
	buf = append(buf, alpha[:]...)
	beta := vk.Beta.RawBytes()
	buf = append(buf, beta[:]...)
	gamma := vk.Gamma.RawBytes()
	buf = append(buf, gamma[:]...)
	delta := vk.Delta.RawBytes()
	buf = append(buf, delta[:]...)
	for i := range vk.IC {
		ic := vk.IC[i].RawBytes()
		buf = append(buf, ic[:]...)
	}
	return buf
}

// EncodeScalars is the inverse of DecodeScalars.
func EncodeScalars(scalars []fr.Element) []byte {
	buf := make([]byte, 0, len(scalars)*SizeScalar)
	for i := range scalars {
		b := scalars[i].Bytes()
		buf = append(buf, b[:]...)
	}
	return buf
}

func decodeG1(buf []byte) (bls12381.G1Affine, error) {
	var p bls12381.G1Affine
	if len(buf) != SizeG1 {
		return p, fmt.Errorf("%w: got %d bytes, G1 points encode as %d", ErrMalformedLength, len(buf), SizeG1)
	}
	flags := buf[0] & flagMask
	if flags == flagInfinity {
		if err := checkInfinityPadding(buf); err != nil {
			return p, err
		}
		// X = Y = 0, the affine representation of the identity
		return p, nil
	}
	if flags != 0 {
		return p, fmt.Errorf("%w: unexpected flag bits 0b%03b", ErrPointNotOnCurve, flags>>5)
	}
	var err error
	if p.X, err = fp.BigEndian.Element((*[fp.Bytes]byte)(buf[:fp.Bytes])); err != nil {
		return p, fmt.Errorf("%w: x coordinate: %v", ErrPointNotOnCurve, err)
	}
	if p.Y, err = fp.BigEndian.Element((*[fp.Bytes]byte)(buf[fp.Bytes:])); err != nil {
		return p, fmt.Errorf("%w: y coordinate: %v", ErrPointNotOnCurve, err)
	}
	if !p.IsOnCurve() {
		return bls12381.G1Affine{}, ErrPointNotOnCurve
	}
	if !p.IsInSubGroup() {
		return bls12381.G1Affine{}, ErrPointNotInSubgroup
	}
	return p, nil
}

func decodeG2(buf []byte) (bls12381.G2Affine, error) {
	var p bls12381.G2Affine
	if len(buf) != SizeG2 {
		return p, fmt.Errorf("%w: got %d bytes, G2 points encode as %d", ErrMalformedLength, len(buf), SizeG2)
	}
	flags := buf[0] & flagMask
	if flags == flagInfinity {
		if err := checkInfinityPadding(buf); err != nil {
			return p, err
		}
		return p, nil
	}
	if flags != 0 {
		return p, fmt.Errorf("%w: unexpected flag bits 0b%03b", ErrPointNotOnCurve, flags>>5)
	}
	// coordinates are serialized A1 before A0 per the ZCash convention
	var err error
	if p.X.A1, err = fp.BigEndian.Element((*[fp.Bytes]byte)(buf[:fp.Bytes])); err != nil {
		return p, fmt.Errorf("%w: x coordinate: %v", ErrPointNotOnCurve, err)
	}
	if p.X.A0, err = fp.BigEndian.Element((*[fp.Bytes]byte)(buf[fp.Bytes : 2*fp.Bytes])); err != nil {
		return p, fmt.Errorf("%w: x coordinate: %v", ErrPointNotOnCurve, err)
	}
	if p.Y.A1, err = fp.BigEndian.Element((*[fp.Bytes]byte)(buf[2*fp.Bytes : 3*fp.Bytes])); err != nil {
		return p, fmt.Errorf("%w: y coordinate: %v", ErrPointNotOnCurve, err)
	}
	if p.Y.A0, err = fp.BigEndian.Element((*[fp.Bytes]byte)(buf[3*fp.Bytes:])); err != nil {
		return p, fmt.Errorf("%w: y coordinate: %v", ErrPointNotOnCurve, err)
	}
	if !p.IsOnCurve() {
		return bls12381.G2Affine{}, ErrPointNotOnCurve
	}
	if !p.IsInSubGroup() {
		return bls12381.G2Affine{}, ErrPointNotInSubgroup
	}
	return p, nil
}

func checkInfinityPadding(buf []byte) error {
	if buf[0] != flagInfinity {
		return fmt.Errorf("%w: non-canonical point at infinity", ErrPointNotOnCurve)
	}
	for _, b := range buf[1:] {
		if b != 0 {
			return fmt.Errorf("%w: non-canonical point at infinity", ErrPointNotOnCurve)
		}
	}
	return nil
}
