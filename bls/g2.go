package bls

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// SizeCompressedG2 is the length in bytes of a compressed G2 point.
const SizeCompressedG2 = bls12381.SizeOfG2AffineCompressed

// G2Point is an element of the G2 subgroup of BLS12-381 (the twist),
// kept internally in Jacobian form.
type G2Point struct {
	p bls12381.G2Jac
}

// G2Generator returns the distinguished generator of G2.
func G2Generator() G2Point {
	_, _, _, g2 := bls12381.Generators()
	var out G2Point
	out.p.FromAffine(&g2)
	return out
}

// G2Infinity returns the identity element of G2.
func G2Infinity() G2Point {
	return G2Point{}
}

// Add returns p + q.
func (p G2Point) Add(q G2Point) G2Point {
	var out G2Point
	out.p.Set(&p.p)
	out.p.AddAssign(&q.p)
	return out
}

// Neg returns -p.
func (p G2Point) Neg() G2Point {
	var out G2Point
	out.p.Neg(&p.p)
	return out
}

// ScalarMul returns s*p.
func (p G2Point) ScalarMul(s Scalar) G2Point {
	var out G2Point
	out.p.ScalarMultiplication(&p.p, s.bigInt())
	return out
}

// MulFr returns f*p, f interpreted as a scalar.
func (p G2Point) MulFr(f Fr) G2Point {
	return p.ScalarMul(f.toScalar())
}

// Affine returns the affine encoding of p.
func (p G2Point) Affine() bls12381.G2Affine {
	var aff bls12381.G2Affine
	aff.FromJacobian(&p.p)
	return aff
}

// Equal reports whether p and q represent the same point.
func (p G2Point) Equal(q G2Point) bool {
	return p.p.Equal(&q.p)
}

// IsInfinity reports whether p is the identity element.
func (p G2Point) IsInfinity() bool {
	aff := p.Affine()
	return aff.IsInfinity()
}

// Compress serializes p to its 96-byte compressed form.
func (p G2Point) Compress() []byte {
	aff := p.Affine()
	out := aff.Bytes()
	return out[:]
}

// DecompressG2 parses a 96-byte compressed G2 point, validating curve
// membership and subgroup membership.
func DecompressG2(data []byte) (G2Point, error) {
	if len(data) != SizeCompressedG2 {
		return G2Point{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidEncoding, SizeCompressedG2, len(data))
	}
	var aff bls12381.G2Affine
	if _, err := aff.SetBytes(data); err != nil {
		return G2Point{}, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if aff.IsInfinity() {
		var out G2Point
		out.p.FromAffine(&aff)
		return out, nil
	}
	if !aff.IsOnCurve() {
		return G2Point{}, ErrNotOnCurve
	}
	if !aff.IsInSubGroup() {
		return G2Point{}, ErrNotInSubgroup
	}
	var out G2Point
	out.p.FromAffine(&aff)
	return out, nil
}
