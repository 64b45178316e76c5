package borromean

import (
	"errors"
	"io"

	"github.com/veiltx/ringct/crypto"
	"github.com/veiltx/ringct/ringct"
	"github.com/veiltx/ringct/secp256k1"
	"github.com/veiltx/ringct/types"
)

// Elements is the number of two-member rings, one per bit of the value.
const Elements = 64

// Signatures is a bundle of 64 Borromean ring signatures over two-member
// rings {A_i, B_i}. EE is the shared closure challenge: every ring starts
// its walk from EE at position 0, and the final walk commitments must hash
// back to EE. S0/S1 are the per-position response scalars.
type Signatures struct {
	S0 [Elements]secp256k1.Scalar
	S1 [Elements]secp256k1.Scalar
	EE secp256k1.Scalar
}

var ErrRandomSource = errors.New("random scalar source failed")
var ErrInvalidTranscript = errors.New("transcript produced an out-of-range challenge")

// Sign builds the bundle for rings {A_i, B_i} bound to m. known[i] selects
// the position whose discrete log (with respect to G) the signer holds in
// secrets[i]: 0 for A_i, 1 for B_i.
func Sign(m types.Hash, ringsA, ringsB *[Elements]secp256k1.Point, secrets *[Elements]secp256k1.Scalar, known *[Elements]int, random io.Reader) (*Signatures, error) {
	var s Signatures
	var seeds [Elements]secp256k1.Scalar

	walk := ringct.NewRingMatrix(1, Elements)
	final := ringct.NewRingMatrix(1, Elements)
	keysA := ringct.NewRingMatrix(1, Elements)
	keysB := ringct.NewRingMatrix(1, Elements)
	for i := range ringsA {
		keysA[0][i] = ringsA[i]
		keysB[0][i] = ringsB[i]
	}

	// Forward pass: walk each ring from its known position to the end.
	for i := range ringsA {
		if crypto.RandomScalar(&seeds[i], random) == nil ||
			crypto.RandomScalar(&s.S0[i], random) == nil ||
			crypto.RandomScalar(&s.S1[i], random) == nil {
			return nil, ErrRandomSource
		}

		if known[i] == 0 {
			// Walk start at position 0, then one decoy step.
			walk[0][i].ScalarBaseMult(&seeds[i])
			e1 := ringct.BorromeanHash(m, walk, keysA, uint32(i))
			final[0][i].DoubleScalarBaseMult(&e1, &ringsB[i], &s.S1[i])
		} else {
			final[0][i].ScalarBaseMult(&seeds[i])
		}
	}

	// Shared closure over every ring's final commitment.
	s.EE = ringct.HashRings(m[:], final, keysB)

	// Backward pass: restart each ring from EE and solve the response at
	// the known position, s = k - x*e.
	for i := range ringsA {
		var cx secp256k1.Scalar
		if known[i] == 0 {
			cx.Multiply(&secrets[i], &s.EE)
			s.S0[i].Subtract(&seeds[i], &cx)
		} else {
			walk[0][i].DoubleScalarBaseMult(&s.EE, &ringsA[i], &s.S0[i])
			e1 := ringct.BorromeanHash(m, walk, keysA, uint32(i))
			cx.Multiply(&secrets[i], &e1)
			s.S1[i].Subtract(&seeds[i], &cx)
		}

		if !s.S0[i].IsValid() || !s.S1[i].IsValid() {
			return nil, ErrInvalidTranscript
		}
	}

	return &s, nil
}

// Verify recomputes every ring walk from the responses and accepts iff the
// final commitments hash back to EE.
func (s *Signatures) Verify(m types.Hash, ringsA, ringsB *[Elements]secp256k1.Point) bool {
	walk := ringct.NewRingMatrix(1, Elements)
	final := ringct.NewRingMatrix(1, Elements)
	keysA := ringct.NewRingMatrix(1, Elements)
	keysB := ringct.NewRingMatrix(1, Elements)
	for i := range ringsA {
		keysA[0][i] = ringsA[i]
		keysB[0][i] = ringsB[i]
	}

	for i := range ringsA {
		walk[0][i].DoubleScalarBaseMult(&s.EE, &ringsA[i], &s.S0[i])
		e1 := ringct.BorromeanHash(m, walk, keysA, uint32(i))
		final[0][i].DoubleScalarBaseMult(&e1, &ringsB[i], &s.S1[i])
	}

	ee := ringct.HashRings(m[:], final, keysB)
	return ee.Equal(&s.EE) == 1
}
