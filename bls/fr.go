package bls

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ErrOutOfRange is returned when a big-endian byte input decodes to an
// integer greater than or equal to r, the scalar field modulus.
var ErrOutOfRange = errors.New("bls: value out of range for Fr")

// Order is r, the order of the BLS12-381 scalar field (and of the G1/G2
// prime-order subgroups): 52435875175126190479447740508185965837690552500527637822603658699938581184513.
func Order() *big.Int {
	return fr.Modulus()
}

// Fr is an element of the scalar field of order r. The zero value is 0.
// All Fr values produced by this package are canonical, i.e. in [0, r).
type Fr struct {
	v fr.Element
}

// FrFromU64 zero-extends u into Fr.
func FrFromU64(u uint64) Fr {
	var f Fr
	f.v.SetUint64(u)
	return f
}

// FrFromBEBytes decodes a 32-byte big-endian integer into Fr. It returns
// ErrOutOfRange if the integer is >= r; inputs are never silently reduced.
func FrFromBEBytes(b [32]byte) (Fr, error) {
	n := new(big.Int).SetBytes(b[:])
	if n.Cmp(fr.Modulus()) >= 0 {
		return Fr{}, fmt.Errorf("%w: %s", ErrOutOfRange, n.String())
	}
	var f Fr
	f.v.SetBigInt(n)
	return f, nil
}

// AsU64 returns the low 64 bits of the canonical integer represented by f.
// It is lossy and intended for tests and small scenario values only.
func (f Fr) AsU64() uint64 {
	var n big.Int
	f.v.BigInt(&n)
	return n.Uint64()
}

// Add returns f + g.
func (f Fr) Add(g Fr) Fr {
	var out Fr
	out.v.Add(&f.v, &g.v)
	return out
}

// Sub returns f - g.
func (f Fr) Sub(g Fr) Fr {
	var out Fr
	out.v.Sub(&f.v, &g.v)
	return out
}

// Neg returns -f.
func (f Fr) Neg() Fr {
	var out Fr
	out.v.Neg(&f.v)
	return out
}

// Mul returns f * g.
func (f Fr) Mul(g Fr) Fr {
	var out Fr
	out.v.Mul(&f.v, &g.v)
	return out
}

// Div returns f * g^-1. Division by zero is undefined; callers must
// ensure g is nonzero before calling Div (per spec, DivideByZero is
// reserved and never triggered from within this package).
func (f Fr) Div(g Fr) Fr {
	var inv fr.Element
	inv.Inverse(&g.v)
	var out Fr
	out.v.Mul(&f.v, &inv)
	return out
}

// Equal reports whether f and g represent the same residue mod r.
func (f Fr) Equal(g Fr) bool {
	return f.v.Equal(&g.v)
}

// IsZero reports whether f is the additive identity.
func (f Fr) IsZero() bool {
	return f.v.IsZero()
}

// bigInt returns the canonical big.Int value of f, used internally to
// drive scalar multiplication on curve points.
func (f Fr) bigInt() *big.Int {
	var n big.Int
	return f.v.BigInt(&n)
}

// toScalar converts f to a Scalar, the representation used to drive
// curve scalar multiplication.
func (f Fr) toScalar() Scalar {
	return Scalar{v: f.bigInt()}
}
