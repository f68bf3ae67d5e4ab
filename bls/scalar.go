package bls

import (
	"fmt"
	"math/big"
)

// Scalar is an opaque representation of an integer of at most 256 bits,
// used to drive scalar multiplication on G1Point/G2Point. It is morally
// the same integer mod r as Fr, but kept distinct since it is what the
// underlying curve library's scalar-multiplication routines consume;
// convert from Fr at the boundary, or build one directly from 32
// big-endian bytes with an explicit range check against r.
//
// The zero value represents 0, matching every other value type in this
// package.
type Scalar struct {
	v *big.Int
}

// ScalarFromFr converts an Fr value to a Scalar.
func ScalarFromFr(f Fr) Scalar {
	return f.toScalar()
}

// ScalarFromBEBytes decodes 32 big-endian bytes into a Scalar, rejecting
// values >= r.
func ScalarFromBEBytes(b [32]byte) (Scalar, error) {
	f, err := FrFromBEBytes(b)
	if err != nil {
		return Scalar{}, fmt.Errorf("scalar from bytes: %w", err)
	}
	return ScalarFromFr(f), nil
}

// bigInt returns the *big.Int this Scalar wraps, treating a zero-value
// Scalar (nil v) as 0.
func (s Scalar) bigInt() *big.Int {
	if s.v == nil {
		return big.NewInt(0)
	}
	return s.v
}
