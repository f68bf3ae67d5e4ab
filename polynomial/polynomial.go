// Package polynomial implements dense polynomials over the BLS12-381
// scalar field, represented low-order-coefficient first, together with
// the evaluation and division routines the KZG scheme is built on.
package polynomial

import (
	"errors"
	"fmt"

	"github.com/kzg-go/kzg-bls12381/bls"
)

// ErrEmptyPolynomial is returned when an operation requires at least one
// coefficient but is given none.
var ErrEmptyPolynomial = errors.New("polynomial: empty polynomial")

// ErrDivideByZero is returned by Quotient when the divisor's leading
// coefficient is zero.
var ErrDivideByZero = errors.New("polynomial: divide by zero")

// Polynomial is a dense polynomial over bls.Fr, stored low-order-first:
// Coefficients[i] is the coefficient of x^i. The zero polynomial is
// written as a single zero coefficient; an empty slice has no
// coefficients and Quotient rejects it with ErrEmptyPolynomial.
type Polynomial struct {
	Coefficients []bls.Fr
}

// New wraps coefficients, low-order-first, as a Polynomial. It does not
// strip trailing zero coefficients.
func New(coefficients []bls.Fr) Polynomial {
	return Polynomial{Coefficients: coefficients}
}

// Degree returns len(Coefficients) - 1, the formal degree (which may
// overstate the true degree if the leading coefficients are zero).
func (p Polynomial) Degree() int {
	return len(p.Coefficients) - 1
}

// IsEmpty reports whether p has no coefficients at all.
func (p Polynomial) IsEmpty() bool {
	return len(p.Coefficients) == 0
}

// EvaluateAt computes p(z) by accumulating terms from the lowest-order
// coefficient to the highest, multiplying a running power of z by each
// coefficient and tracking z^i incrementally rather than recomputing it:
//
//	result = 0
//	power  = 1
//	for each coefficient c (low to high):
//	    result += c * power
//	    power  *= z
func (p Polynomial) EvaluateAt(z bls.Fr) bls.Fr {
	result := bls.FrFromU64(0)
	power := bls.FrFromU64(1)
	for _, c := range p.Coefficients {
		result = result.Add(c.Mul(power))
		power = power.Mul(z)
	}
	return result
}

// Quotient divides dividend by divisor and returns the quotient
// polynomial. Any remainder is discarded, so the division need not be
// exact (it is exact for (p(x) - p(z)) / (x - z)). It is an error if
// either polynomial is empty or the divisor's leading coefficient is
// zero.
//
// The algorithm is schoolbook long division on the coefficient vectors,
// working from the highest-order term down. At each step it eliminates
// the current highest-order term of the running remainder by
// subtracting an appropriately scaled and shifted copy of the divisor;
// the boundary check that controls how many steps to take must be
// difference >= 0, not difference > 0, since the last term to eliminate
// lands exactly on the divisor's degree (difference == 0) and skipping
// that step silently drops the constant term of the quotient.
func Quotient(dividend, divisor Polynomial) (Polynomial, error) {
	if dividend.IsEmpty() {
		return Polynomial{}, fmt.Errorf("quotient of dividend: %w", ErrEmptyPolynomial)
	}
	if divisor.IsEmpty() {
		return Polynomial{}, fmt.Errorf("quotient of divisor: %w", ErrEmptyPolynomial)
	}

	divisorDegree := divisor.Degree()
	divisorLead := divisor.Coefficients[divisorDegree]
	if divisorLead.IsZero() {
		return Polynomial{}, ErrDivideByZero
	}

	remainder := make([]bls.Fr, len(dividend.Coefficients))
	copy(remainder, dividend.Coefficients)

	difference := len(remainder) - 1 - divisorDegree
	if difference < 0 {
		return Polynomial{Coefficients: []bls.Fr{bls.FrFromU64(0)}}, nil
	}

	quotient := make([]bls.Fr, difference+1)

	for difference >= 0 {
		lead := remainder[difference+divisorDegree]
		coefficient := lead.Div(divisorLead)
		quotient[difference] = coefficient

		for i, dc := range divisor.Coefficients {
			remainder[difference+i] = remainder[difference+i].Sub(coefficient.Mul(dc))
		}

		difference--
	}

	return Polynomial{Coefficients: quotient}, nil
}
