package bls

import (
	"errors"
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// SizeCompressedG1 is the length in bytes of a compressed G1 point.
const SizeCompressedG1 = bls12381.SizeOfG1AffineCompressed

// ErrInvalidEncoding is returned when a compressed point buffer has the
// wrong length or malformed flag bits.
var ErrInvalidEncoding = errors.New("bls: invalid compressed point encoding")

// ErrNotOnCurve is returned when a decoded point does not satisfy the
// curve equation.
var ErrNotOnCurve = errors.New("bls: point not on curve")

// ErrNotInSubgroup is returned when a decoded point is on the curve but
// outside the prime-order subgroup of order r.
var ErrNotInSubgroup = errors.New("bls: point not in prime-order subgroup")

// G1Point is an element of the G1 subgroup of BLS12-381, kept internally
// in Jacobian (projective) form and converted to affine on demand for
// compression, the infinity check, and pairing.
type G1Point struct {
	p bls12381.G1Jac
}

// G1Generator returns the distinguished generator of G1.
func G1Generator() G1Point {
	_, _, g1, _ := bls12381.Generators()
	var out G1Point
	out.p.FromAffine(&g1)
	return out
}

// G1Infinity returns the identity element of G1.
func G1Infinity() G1Point {
	return G1Point{}
}

// Add returns p + q.
func (p G1Point) Add(q G1Point) G1Point {
	var out G1Point
	out.p.Set(&p.p)
	out.p.AddAssign(&q.p)
	return out
}

// Neg returns -p.
func (p G1Point) Neg() G1Point {
	var out G1Point
	out.p.Neg(&p.p)
	return out
}

// ScalarMul returns s*p.
func (p G1Point) ScalarMul(s Scalar) G1Point {
	var out G1Point
	out.p.ScalarMultiplication(&p.p, s.bigInt())
	return out
}

// MulFr returns f*p, f interpreted as a scalar.
func (p G1Point) MulFr(f Fr) G1Point {
	return p.ScalarMul(f.toScalar())
}

// Affine returns the affine encoding of p.
func (p G1Point) Affine() bls12381.G1Affine {
	var aff bls12381.G1Affine
	aff.FromJacobian(&p.p)
	return aff
}

// Equal reports whether p and q represent the same point.
func (p G1Point) Equal(q G1Point) bool {
	return p.p.Equal(&q.p)
}

// IsInfinity reports whether p is the identity element.
func (p G1Point) IsInfinity() bool {
	aff := p.Affine()
	return aff.IsInfinity()
}

// Compress serializes p to its 48-byte compressed form (ZCash/IETF
// encoding). The point at infinity encodes as 0xc0 followed by 47 zero
// bytes.
func (p G1Point) Compress() []byte {
	aff := p.Affine()
	out := aff.Bytes()
	return out[:]
}

// DecompressG1 parses a 48-byte compressed G1 point, validating that it
// lies on the curve and inside the prime-order subgroup before returning
// it. Round-trips with Compress: DecompressG1(p.Compress()) == p.
func DecompressG1(data []byte) (G1Point, error) {
	if len(data) != SizeCompressedG1 {
		return G1Point{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidEncoding, SizeCompressedG1, len(data))
	}
	var aff bls12381.G1Affine
	if _, err := aff.SetBytes(data); err != nil {
		return G1Point{}, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if aff.IsInfinity() {
		var out G1Point
		out.p.FromAffine(&aff)
		return out, nil
	}
	if !aff.IsOnCurve() {
		return G1Point{}, ErrNotOnCurve
	}
	if !aff.IsInSubGroup() {
		return G1Point{}, ErrNotInSubgroup
	}
	var out G1Point
	out.p.FromAffine(&aff)
	return out, nil
}
