package ringct

import (
	"errors"

	"github.com/veiltx/ringct/secp256k1"
)

// Ring is one row of an MLSAG table: the public keys a single secret could
// hide among, one per column.
type Ring []secp256k1.Point

// RingMatrix is a rectangular table of public keys, rows by columns. Column
// entries across rows belong to the same ring member; exactly one column is
// fully known to the signer.
type RingMatrix []Ring

var ErrInvalidRing = errors.New("invalid ring")

// NewRingMatrix allocates a zeroed rows-by-columns table.
func NewRingMatrix(rows, columns int) RingMatrix {
	matrix := make(RingMatrix, rows)
	for i := range matrix {
		matrix[i] = make(Ring, columns)
	}
	return matrix
}

// Columns returns the table width, 0 for an empty table.
func (r RingMatrix) Columns() int {
	if len(r) == 0 {
		return 0
	}
	return len(r[0])
}

// IsRectangular reports whether every row has the same number of columns.
func (r RingMatrix) IsRectangular() bool {
	if len(r) == 0 {
		return true
	}
	for _, row := range r[1:] {
		if len(row) != len(r[0]) {
			return false
		}
	}
	return true
}
