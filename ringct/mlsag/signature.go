package mlsag

import (
	"errors"
	"io"

	"github.com/veiltx/ringct/crypto"
	"github.com/veiltx/ringct/ringct"
	"github.com/veiltx/ringct/secp256k1"
	"github.com/veiltx/ringct/utils"
)

// Signature is an MLSAG over a rows-by-columns ring table: one key image per
// row, one challenge per column, and one response scalar per cell. The
// challenges form a closed cycle, sum(c) == HashRings(M, L, R), anchored by
// the single column whose secrets the signer knows.
type Signature struct {
	KeyImages  []secp256k1.Point
	Challenges []secp256k1.Scalar
	Salts      [][]secp256k1.Scalar
}

var (
	ErrEmptyRing      = errors.New("empty ring")
	ErrNotRectangular = errors.New("ring table is not rectangular")
	ErrSecretCount    = errors.New("secret count does not match ring rows")
	ErrSignerIndex    = errors.New("signer index out of range")
	ErrRandomSource   = errors.New("random scalar source failed")
)

// Sign produces an MLSAG over publics for the given message. index selects
// the signer's column; secrets[i] must be the discrete log of
// publics[i][index] for the signature to verify, though only the structural
// preconditions are checked here. random supplies all salt and challenge
// draws, so a deterministic reader yields a byte-identical signature
// regardless of worker count: every draw happens serially before the
// parallel column fill, and workers write only their own cells.
func Sign(secrets []secp256k1.Scalar, publics ringct.RingMatrix, index int, message []byte, random io.Reader) (*Signature, error) {
	rows := len(publics)
	if rows == 0 {
		return nil, ErrEmptyRing
	}
	if !publics.IsRectangular() {
		return nil, ErrNotRectangular
	}
	columns := publics.Columns()
	if columns == 0 {
		return nil, ErrEmptyRing
	}
	if len(secrets) != rows {
		return nil, ErrSecretCount
	}
	if index < 0 || index >= columns {
		return nil, ErrSignerIndex
	}

	signature := &Signature{
		KeyImages:  make([]secp256k1.Point, rows),
		Challenges: make([]secp256k1.Scalar, columns),
		Salts:      make([][]secp256k1.Scalar, rows),
	}

	// Response values. The cells at the signer column are placeholders
	// overwritten after closure.
	for i := range signature.Salts {
		signature.Salts[i] = make([]secp256k1.Scalar, columns)
		for j := range signature.Salts[i] {
			if crypto.RandomScalar(&signature.Salts[i][j], random) == nil {
				return nil, ErrRandomSource
			}
		}
	}

	// Decoy challenges. A draw lands at the signer column too, keeping the
	// access pattern independent of index; closure replaces it.
	for j := range signature.Challenges {
		if crypto.RandomScalar(&signature.Challenges[j], random) == nil {
			return nil, ErrRandomSource
		}
	}

	// I = x * H_p(x G)
	for i := range secrets {
		signature.KeyImages[i] = crypto.KeyImage(&secrets[i])
	}

	left := ringct.NewRingMatrix(rows, columns)
	right := ringct.NewRingMatrix(rows, columns)

	// Signer column first: L = kG, R = k H_p(P).
	for i := 0; i < rows; i++ {
		left[i][index].ScalarBaseMult(&signature.Salts[i][index])
		hashed := crypto.HashToPointPoint(&publics[i][index])
		right[i][index].ScalarMult(&signature.Salts[i][index], &hashed)
	}

	utils.Debugf("MLSAG", "signing %d rows x %d columns", rows, columns)

	// Decoy columns are independent of each other; shard them across
	// hardware concurrency and join before the transcript hash.
	_ = utils.SplitWork(0, uint64(columns), func(work uint64, _ int) error {
		if j := int(work); j != index {
			fillColumn(left, right, publics, signature, j)
		}
		return nil
	})

	// Close the cycle: c[index] = e* - sum of the other challenges.
	total := ringct.HashRings(message, left, right)

	sum := secp256k1.ScalarFromUint64(0)
	for j := range signature.Challenges {
		if j == index {
			continue
		}
		sum.Add(&sum, &signature.Challenges[j])
	}
	signature.Challenges[index].Subtract(&total, &sum)

	// Fix up the signer column responses: s = k - c*x.
	for i := 0; i < rows; i++ {
		var cx secp256k1.Scalar
		cx.Multiply(&signature.Challenges[index], &secrets[i])
		signature.Salts[i][index].Subtract(&signature.Salts[i][index], &cx)
	}

	return signature, nil
}

// fillColumn computes the L/R pair of every row in column j from public
// data: L = sG + cP, R = s H_p(P) + cI. Each cell is written exactly once,
// so concurrent calls on distinct columns need no locks.
func fillColumn(left, right ringct.RingMatrix, publics ringct.RingMatrix, signature *Signature, j int) {
	c := &signature.Challenges[j]
	for i := range publics {
		s := &signature.Salts[i][j]
		left[i][j].DoubleScalarBaseMult(c, &publics[i][j], s)
		hashed := crypto.HashToPointPoint(&publics[i][j])
		right[i][j].DoubleScalarMult(s, &hashed, c, &signature.KeyImages[i])
	}
}

// Verify reconstructs every L/R cell from public data and accepts iff the
// challenges sum to the transcript hash. It is total: malformed input
// returns false rather than an error.
func (s *Signature) Verify(publics ringct.RingMatrix, message []byte) bool {
	rows := len(publics)
	if rows == 0 || !publics.IsRectangular() {
		return false
	}
	columns := publics.Columns()
	if columns == 0 {
		return false
	}
	if len(s.KeyImages) != rows || len(s.Challenges) != columns || len(s.Salts) != rows {
		return false
	}
	for i := range s.Salts {
		if len(s.Salts[i]) != columns {
			return false
		}
	}

	left := ringct.NewRingMatrix(rows, columns)
	right := ringct.NewRingMatrix(rows, columns)

	utils.Debugf("MLSAG", "verifying %d rows x %d columns", rows, columns)

	_ = utils.SplitWork(0, uint64(columns), func(work uint64, _ int) error {
		fillColumn(left, right, publics, s, int(work))
		return nil
	})

	total := ringct.HashRings(message, left, right)

	sum := secp256k1.ScalarFromUint64(0)
	for j := range s.Challenges {
		sum.Add(&sum, &s.Challenges[j])
	}

	return sum.Equal(&total) == 1
}
