package groth16

import "errors"

var (
	// ErrMalformedLength is returned when a buffer is shorter or longer than
	// the fixed-size encoding of the structure being decoded.
	ErrMalformedLength = errors.New("buffer length does not match encoding")

	// ErrPointNotOnCurve is returned when bytes do not decode to a point on
	// the curve: non-canonical coordinates, unexpected flag bits, or
	// coordinates failing the curve equation.
	ErrPointNotOnCurve = errors.New("point is not on the curve")

	// ErrPointNotInSubgroup is returned when a decoded point is on the curve
	// but outside the prime-order subgroup.
	ErrPointNotInSubgroup = errors.New("point is not in the prime-order subgroup")

	// ErrTrailingBytes is returned when a buffer holds leftover bytes that
	// cannot form a whole encoded element.
	ErrTrailingBytes = errors.New("trailing bytes after encoded structure")

	// ErrInputCountMismatch is returned when the number of public inputs
	// disagrees with the verifying key. It is a caller error, distinct from a
	// failing verification.
	ErrInputCountMismatch = errors.New("public input count does not match verifying key")
)
