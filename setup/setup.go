package setup

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/kzg-go/kzg-bls12381/bls"
)

// ErrDegreeTooSmall is returned when a requested setup degree is negative.
var ErrDegreeTooSmall = errors.New("setup: degree must be non-negative")

// Setup is a structured reference string: the powers of a secret s,
// encoded in G1 up to the configured degree, plus [s]_2 in G2. It is
// produced once (by Generate, GenerateWithRandomSecret, or FromCeremony)
// and then used read-only by every commitment and opening in this
// module.
type Setup struct {
	// InG1 holds [s^0]_1, [s^1]_1, ..., [s^degree]_1.
	InG1 []bls.G1Point
	// InG2 holds [s]_2.
	InG2 bls.G2Point
}

// Generate deterministically derives a Setup of the given degree from
// secret. It rejects secrets >= r outright rather than reducing them,
// since the whole point of a trusted setup is that its secret is known
// to nobody after the fact, and silently reducing an out-of-range input
// would make that property depend on an implementation detail the
// caller didn't ask for.
func Generate(secret [32]byte, degree int) (*Setup, error) {
	if degree < 0 {
		return nil, fmt.Errorf("generate with degree %d: %w", degree, ErrDegreeTooSmall)
	}

	s, err := bls.FrFromBEBytes(secret)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	g1 := bls.G1Generator()
	g2 := bls.G2Generator()

	inG1 := make([]bls.G1Point, degree+1)
	power := bls.FrFromU64(1)
	for i := 0; i <= degree; i++ {
		inG1[i] = g1.MulFr(power)
		power = power.Mul(s)
	}

	return &Setup{
		InG1: inG1,
		InG2: g2.MulFr(s),
	}, nil
}

// GenerateWithRandomSecret draws a secret from crypto/rand (resampling
// until the draw lands below r, so every secret in [0, r) is equally
// likely) and calls Generate with it. The secret is overwritten with
// zeros before returning, on the theory that a trusted-setup secret is
// toxic waste: nothing in this process should need it again once the
// SRS exists.
func GenerateWithRandomSecret(degree int) (*Setup, error) {
	order := bls.Order()
	var secret [32]byte

	for {
		if _, err := rand.Read(secret[:]); err != nil {
			return nil, fmt.Errorf("generate with random secret: %w", err)
		}
		n := new(big.Int).SetBytes(secret[:])
		if n.Cmp(order) < 0 {
			break
		}
	}

	s, err := Generate(secret, degree)
	for i := range secret {
		secret[i] = 0
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Degree returns the highest power of s this Setup can commit to.
func (s *Setup) Degree() int {
	return len(s.InG1) - 1
}
