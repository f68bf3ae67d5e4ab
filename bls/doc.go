// Package bls is a narrow algebraic façade over BLS12-381, the
// pairing-friendly curve the KZG scheme in this module is built on.
//
// It wraps github.com/consensys/gnark-crypto's ecc/bls12-381 primitives so
// the rest of this module can write readable expressions like
// commitment.Add(y.Neg()) without reaching into a pairing library's raw
// Jacobian/affine handles directly. Fr is the scalar field of order r (the
// subgroup order); G1Point and G2Point are the two prime-order subgroups;
// Fp12 is the pairing target group.
package bls
