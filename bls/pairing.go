package bls

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// VerifyPairings reports whether e(x1, x2) == e(y1, y2).
//
// It does not compute the two pairings and compare them; instead it
// negates x1, runs a single combined Miller loop over both point pairs,
// and applies one final exponentiation, checking that the result is 1.
// This is the standard pairing-equality trick: e(x1,x2) == e(y1,y2) iff
// e(-x1,x2) * e(y1,y2) == 1, and the Miller loop is linear enough in its
// inputs that both products can be accumulated before the (expensive)
// final exponentiation, which then runs once instead of twice.
func VerifyPairings(x1 G1Point, x2 G2Point, y1 G1Point, y2 G2Point) bool {
	negX1 := x1.Neg()

	p := []bls12381.G1Affine{negX1.Affine(), y1.Affine()}
	q := []bls12381.G2Affine{x2.Affine(), y2.Affine()}

	millerResult, err := bls12381.MillerLoop(p, q)
	if err != nil {
		return false
	}

	result := bls12381.FinalExponentiation(&millerResult)
	out := Fp12{v: result}
	return out.IsOne()
}
