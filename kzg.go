// Package kzg implements the Kate-Zaverucha-Goldberg polynomial
// commitment scheme over BLS12-381: a prover commits to a polynomial
// with a single G1 element, then opens it at a challenged point with a
// single-element proof that a verifier checks with one pairing
// equation.
package kzg

import (
	"errors"
	"fmt"

	"github.com/kzg-go/kzg-bls12381/bls"
	"github.com/kzg-go/kzg-bls12381/polynomial"
	"github.com/kzg-go/kzg-bls12381/setup"
)

// ErrDegreeExceedsSetup is returned by Create when the polynomial has
// more coefficients than the setup has powers of s to commit against.
var ErrDegreeExceedsSetup = errors.New("kzg: polynomial degree exceeds setup")

// ErrEmptyPolynomial is returned when committing to or opening an empty
// polynomial.
var ErrEmptyPolynomial = errors.New("kzg: empty polynomial")

// Commitment is a KZG commitment to a polynomial: a single G1 element,
// together with the polynomial and setup it was produced against, which
// OpenAt needs to build a proof. Both are borrowed for the lifetime of
// the Commitment value; nothing here mutates them.
type Commitment struct {
	// C is the committed group element, sum_i coeffs[i] * setup.InG1[i].
	C bls.G1Point

	poly *polynomial.Polynomial
	srs  *setup.Setup
}

// Opening is the result of opening a Commitment at a point z: the
// claimed value f(z) and a single-element proof of it.
type Opening struct {
	Value bls.Fr
	Proof bls.G1Point
}

// Create commits to poly under srs. It fails if poly has more
// coefficients than srs has powers of s available.
func Create(poly *polynomial.Polynomial, srs *setup.Setup) (*Commitment, error) {
	if poly.IsEmpty() {
		return nil, ErrEmptyPolynomial
	}
	if len(poly.Coefficients) > len(srs.InG1) {
		return nil, fmt.Errorf("%w: polynomial has %d coefficients, setup has %d", ErrDegreeExceedsSetup, len(poly.Coefficients), len(srs.InG1))
	}

	c := bls.G1Infinity()
	for i, coefficient := range poly.Coefficients {
		c = c.Add(srs.InG1[i].MulFr(coefficient))
	}

	return &Commitment{C: c, poly: poly, srs: srs}, nil
}

// OpenAt evaluates the committed polynomial at z and produces a proof
// of that evaluation.
//
// The proof is the commitment to q(x) = poly(x) / (x - z), computed via
// polynomial.Quotient against the divisor [-z, 1] (low-order first).
// poly(x) - poly(z) is exactly divisible by (x - z), so the quotient of
// poly itself by (x - z) already gives a usable q: the remainder that
// dividing poly directly (instead of poly minus the constant y) would
// leave behind cancels out of the verification equation.
func (c *Commitment) OpenAt(z bls.Fr) (*Opening, error) {
	if c.poly.IsEmpty() {
		return nil, ErrEmptyPolynomial
	}

	y := c.poly.EvaluateAt(z)

	divisor := polynomial.New([]bls.Fr{z.Neg(), bls.FrFromU64(1)})
	q, err := polynomial.Quotient(*c.poly, divisor)
	if err != nil {
		return nil, fmt.Errorf("open at: %w", err)
	}

	proofCommitment, err := Create(&q, c.srs)
	if err != nil {
		return nil, fmt.Errorf("open at: %w", err)
	}

	return &Opening{Value: y, Proof: proofCommitment.C}, nil
}

// Verify reports whether o is a valid opening of c at z, i.e. whether
// e(C - [y]_1, G2) == e(proof, [s]_2 - [z]_2). This is the only
// operation in the package that checks a cryptographic claim, and it
// never returns an error: an invalid proof is reported as false, not a
// failure.
func (o *Opening) Verify(z bls.Fr, c *Commitment) bool {
	g1 := bls.G1Generator()
	g2 := bls.G2Generator()

	lhs := c.C.Add(g1.MulFr(o.Value).Neg())
	rhs := c.srs.InG2.Add(g2.MulFr(z).Neg())

	return bls.VerifyPairings(lhs, g2, o.Proof, rhs)
}
