package setup

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kzg-go/kzg-bls12381/bls"
)

// ErrMalformedTranscript is returned when a ceremony transcript cannot be
// parsed into a usable Setup: the wrong JSON shape, hex that doesn't
// decode, or a G1Powers/G2Powers list that is too short for the degree
// being requested.
var ErrMalformedTranscript = errors.New("setup: malformed ceremony transcript")

// transcriptFile mirrors the shape of the Ethereum KZG ceremony's
// transcript.json: a list of sub-ceremonies, each contributing powers of
// tau at a fixed size, with points hex-encoded as "0x"-prefixed strings.
type transcriptFile struct {
	Transcripts []struct {
		NumG1Powers int `json:"numG1Powers"`
		NumG2Powers int `json:"numG2Powers"`
		PowersOfTau struct {
			G1Powers []string `json:"G1Powers"`
			G2Powers []string `json:"G2Powers"`
		} `json:"powersOfTau"`
	} `json:"transcripts"`
}

// FromCeremony builds a Setup by reading an Ethereum KZG ceremony
// transcript (the JSON format published at the end of the EIP-4844
// ceremony) and taking the sub-ceremony whose G1Powers list is long
// enough for degree. It reads and parses the transcript only; it takes
// no part in, and has no support for, running or contributing to a
// ceremony.
func FromCeremony(r io.Reader, degree int) (*Setup, error) {
	if degree < 0 {
		return nil, fmt.Errorf("from ceremony with degree %d: %w", degree, ErrDegreeTooSmall)
	}

	var tf transcriptFile
	if err := json.NewDecoder(r).Decode(&tf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTranscript, err)
	}

	for _, transcript := range tf.Transcripts {
		if transcript.NumG1Powers < degree+1 || transcript.NumG2Powers < 2 {
			continue
		}
		if len(transcript.PowersOfTau.G1Powers) < degree+1 || len(transcript.PowersOfTau.G2Powers) < 2 {
			continue
		}

		inG1 := make([]bls.G1Point, degree+1)
		for i := 0; i <= degree; i++ {
			point, err := decodeHexPoint(transcript.PowersOfTau.G1Powers[i], bls.DecompressG1)
			if err != nil {
				return nil, fmt.Errorf("%w: G1Powers[%d]: %v", ErrMalformedTranscript, i, err)
			}
			inG1[i] = point
		}

		inG2, err := decodeHexPoint(transcript.PowersOfTau.G2Powers[1], bls.DecompressG2)
		if err != nil {
			return nil, fmt.Errorf("%w: G2Powers[1]: %v", ErrMalformedTranscript, err)
		}

		return &Setup{InG1: inG1, InG2: inG2}, nil
	}

	return nil, fmt.Errorf("%w: no sub-ceremony has at least %d G1 powers", ErrMalformedTranscript, degree+1)
}

func decodeHexPoint[T any](s string, decode func([]byte) (T, error)) (T, error) {
	var zero T
	s = strings.TrimPrefix(s, "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return zero, err
	}
	return decode(raw)
}
