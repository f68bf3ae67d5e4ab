package bls

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Fp12 is an element of the degree-12 extension field that the BLS12-381
// pairing maps into (the target group GT).
type Fp12 struct {
	v bls12381.GT
}

// Mul returns x * y.
func (x Fp12) Mul(y Fp12) Fp12 {
	var out Fp12
	out.v.Mul(&x.v, &y.v)
	return out
}

// IsOne reports whether x is the multiplicative identity of Fp12. A
// pairing equality e(a,b) == e(c,d) is checked as
// e(a,b) * e(c,d)^-1 == 1, which VerifyPairings reduces to an IsOne call
// after negating one side and multiplying Miller loops.
func (x Fp12) IsOne() bool {
	var one bls12381.GT
	one.SetOne()
	return x.v.Equal(&one)
}

// Equal reports whether x and y are the same Fp12 element.
func (x Fp12) Equal(y Fp12) bool {
	return x.v.Equal(&y.v)
}
