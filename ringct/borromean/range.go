package borromean

import (
	"errors"
	"io"

	"github.com/veiltx/ringct/crypto"
	"github.com/veiltx/ringct/ringct"
	"github.com/veiltx/ringct/secp256k1"
	"github.com/veiltx/ringct/types"
)

// Range proves a committed value lies in [0, 2^64): one commitment per bit,
// summing to the blinded value point, and a Borromean bundle proving each
// commitment is either b_i*G or b_i*G + 2^i*H.
type Range struct {
	Signatures  Signatures
	Commitments [Elements]secp256k1.Point
}

var ErrBlindCount = errors.New("blind count does not match proof size")

// GenerateBlindedCommitment draws the 64 per-bit blinds and returns the
// blinded value point value*H + sum(b_i*G). The caller owns the blinds and
// must pass the same vector into Prove; the prover never re-draws them.
func GenerateBlindedCommitment(value uint64, random io.Reader) (blinded secp256k1.Point, blinds []secp256k1.Scalar, err error) {
	blinds = make([]secp256k1.Scalar, Elements)

	var sum, term secp256k1.Point
	for i := range blinds {
		if crypto.RandomScalar(&blinds[i], random) == nil {
			return secp256k1.Point{}, nil, ErrRandomSource
		}
		term.ScalarBaseMult(&blinds[i])
		if i == 0 {
			sum.Set(&term)
		} else {
			sum.Add(&sum, &term)
		}
	}

	// A zero value carries no H term; the commitment is pure blinding.
	if value != 0 {
		var amountK secp256k1.Scalar
		term.ScalarMult(ringct.AmountToScalar(&amountK, value), &secp256k1.GeneratorH)
		sum.Add(&sum, &term)
	}

	return sum, blinds, nil
}

// Prove builds the range proof for value under the given per-bit blinds,
// bound to transactionHash. The bit commitments are B_i = b_i*G when bit i
// is clear and B_i = b_i*G + 2^i*H when set, so their sum equals the
// blinded commitment produced from the same blinds.
func Prove(value uint64, blinds []secp256k1.Scalar, transactionHash types.Hash, random io.Reader) (*Range, error) {
	if len(blinds) != Elements {
		return nil, ErrBlindCount
	}

	var ringsA, ringsB [Elements]secp256k1.Point
	var secrets [Elements]secp256k1.Scalar
	var known [Elements]int

	for i := 0; i < Elements; i++ {
		bit := int(value >> uint(i) & 1)

		ringsA[i].ScalarBaseMult(&blinds[i])
		if bit == 1 {
			ringsA[i].Add(&ringsA[i], &generatorHPow2[i])
		}
		ringsB[i].Subtract(&ringsA[i], &generatorHPow2[i])

		// The signer knows the discrete log of exactly the member
		// matching the actual bit.
		secrets[i] = blinds[i]
		known[i] = bit
	}

	signatures, err := Sign(transactionHash, &ringsA, &ringsB, &secrets, &known, random)
	if err != nil {
		return nil, err
	}

	return &Range{
		Signatures:  *signatures,
		Commitments: ringsA,
	}, nil
}

// Verify checks the proof against the blinded commitment it was bound to:
// the bit commitments must sum to commitment, and each recomputed ring
// {B_i, B_i - 2^i*H} must pass the Borromean verification under
// transactionHash.
func (s *Range) Verify(transactionHash types.Hash, commitment *secp256k1.Point) bool {
	var sum secp256k1.Point
	sum.Set(&s.Commitments[0])
	for i := 1; i < Elements; i++ {
		sum.Add(&sum, &s.Commitments[i])
	}
	if sum.Equal(commitment) == 0 {
		return false
	}

	var ringsB [Elements]secp256k1.Point
	for i := range ringsB {
		ringsB[i].Subtract(&s.Commitments[i], &generatorHPow2[i])
	}

	return s.Signatures.Verify(transactionHash, &s.Commitments, &ringsB)
}
