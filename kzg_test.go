package kzg

import (
	"encoding/hex"
	"testing"

	"github.com/kzg-go/kzg-bls12381/bls"
	"github.com/kzg-go/kzg-bls12381/polynomial"
	"github.com/kzg-go/kzg-bls12381/setup"
)

func frs(values ...uint64) []bls.Fr {
	out := make([]bls.Fr, len(values))
	for i, v := range values {
		out[i] = bls.FrFromU64(v)
	}
	return out
}

// scenario is one row of the end-to-end table: a zero-secret setup
// committing to a fixed polynomial, opened at z = 15, with the
// commitment and proof given as known-good compressed G1 hex strings.
type scenario struct {
	name         string
	coefficients []uint64
	value        uint64
	commitment   string
	proof        string
}

var scenarios = []scenario{
	{
		name:         "zero polynomial",
		coefficients: []uint64{0},
		value:        0,
		commitment:   "c0" + zeros(94),
		proof:        "c0" + zeros(94),
	},
	{
		name:         "constant polynomial",
		coefficients: []uint64{11},
		value:        11,
		commitment:   "80fd75ebcc0a21649e3177bcce15426da0e4f25d6828fbf4038d4d7ed3bd4421de3ef61d70f794687b12b2d571971a55",
		proof:        "c0" + zeros(94),
	},
	{
		name:         "identity polynomial",
		coefficients: []uint64{0, 1},
		value:        15,
		commitment:   "c0" + zeros(94),
		proof:        "97f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb",
	},
	{
		name:         "linear polynomial",
		coefficients: []uint64{1, 12},
		value:        181,
		commitment:   "97f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb",
		proof:        "8345dd80ffef0eaec8920e39ebb7f5e9ae9c1d6179e9129b705923df7830c67f3690cbc48649d4079eadf5397339580c",
	},
	{
		name:         "quadratic polynomial",
		coefficients: []uint64{1, 2, 2},
		value:        481,
		commitment:   "97f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb",
		proof:        "a72841987e4f219d54f2b6a9eac5fe6e78704644753c3579e776a3691bc123743f8c63770ed0f72a71e9e964dbf58f43",
	},
	{
		name:         "degree fifteen polynomial",
		coefficients: []uint64{1, 2, 3, 4, 7, 7, 7, 7, 13, 13, 13, 13, 13, 13, 13, 13},
		value:        6099236329206434206,
		commitment:   "97f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb",
		proof:        "95c2663b029a933ca94f346061b52dfc85da11386c9aaffe2b604a00589299c10b0855f90c5f7db31cc1cc45353dc948",
	},
}

func zeros(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = '0'
	}
	return string(out)
}

func TestEndToEndScenarios(t *testing.T) {
	var secret [32]byte // prover secret s = 0 for every scenario below
	srs, err := setup.Generate(secret, 15)
	if err != nil {
		t.Fatalf("unexpected error building setup: %v", err)
	}
	z := bls.FrFromU64(15)

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			poly := polynomial.New(frs(sc.coefficients...))

			commitment, err := Create(&poly, srs)
			if err != nil {
				t.Fatalf("create: unexpected error: %v", err)
			}
			gotCommitment := hex.EncodeToString(commitment.C.Compress())
			if gotCommitment != sc.commitment {
				t.Errorf("commitment = %s, want %s", gotCommitment, sc.commitment)
			}

			opening, err := commitment.OpenAt(z)
			if err != nil {
				t.Fatalf("open_at: unexpected error: %v", err)
			}
			if opening.Value.AsU64() != sc.value {
				t.Errorf("value = %d, want %d", opening.Value.AsU64(), sc.value)
			}
			gotProof := hex.EncodeToString(opening.Proof.Compress())
			if gotProof != sc.proof {
				t.Errorf("proof = %s, want %s", gotProof, sc.proof)
			}

			if !opening.Verify(z, commitment) {
				t.Errorf("verify returned false, want true")
			}
		})
	}
}

func TestVerifyRejectsTamperedProof(t *testing.T) {
	var secret [32]byte
	secret[31] = 42
	srs, err := setup.Generate(secret, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	poly := polynomial.New(frs(1, 2, 3, 4))
	commitment, err := Create(&poly, srs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	z := bls.FrFromU64(9)
	opening, err := commitment.OpenAt(z)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !opening.Verify(z, commitment) {
		t.Fatalf("expected valid opening to verify")
	}

	tampered := opening.Proof.Compress()
	tampered[len(tampered)-1] ^= 0x01
	proof, err := bls.DecompressG1(tampered)
	if err != nil {
		// a single flipped bit may also land off-curve; either way
		// the tampered proof must not verify as before.
		return
	}
	badOpening := &Opening{Value: opening.Value, Proof: proof}
	if badOpening.Verify(z, commitment) {
		t.Errorf("tampered proof verified, want false")
	}
}

func TestCreateRejectsDegreeExceedingSetup(t *testing.T) {
	var secret [32]byte
	srs, err := setup.Generate(secret, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	poly := polynomial.New(frs(1, 2, 3))
	if _, err := Create(&poly, srs); err == nil {
		t.Errorf("expected error when polynomial degree exceeds setup")
	}
}

func TestOpenAtValueMatchesEvaluateAt(t *testing.T) {
	var secret [32]byte
	secret[31] = 5
	srs, err := setup.Generate(secret, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	poly := polynomial.New(frs(3, 1, 4, 1, 5, 9, 2))
	commitment, err := Create(&poly, srs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	z := bls.FrFromU64(23)
	opening, err := commitment.OpenAt(z)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := poly.EvaluateAt(z)
	if !opening.Value.Equal(want) {
		t.Errorf("opening value %d != poly.EvaluateAt(z) %d", opening.Value.AsU64(), want.AsU64())
	}
}
