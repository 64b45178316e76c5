package ringct

import (
	"encoding/binary"

	"github.com/veiltx/ringct/crypto"
	"github.com/veiltx/ringct/secp256k1"
	"github.com/veiltx/ringct/types"
)

// transcriptTagSize budgets the per-cell big-endian row/column tags in the
// transcript layout. The reference encoding reserves the space but hashes
// the points alone, and producers and consumers must agree on that, so the
// tags are never written here.
const transcriptTagSize = 8

// HashRings derives the closure challenge binding a message to every L/R
// cell of a ring table: SHA256(M || cells) with cells emitted row-major,
// left before right, 33 bytes each. The digest is interpreted reduced
// modulo the group order.
func HashRings(message []byte, left, right RingMatrix) (e secp256k1.Scalar) {
	rows := len(left)
	columns := left.Columns()

	buf := make([]byte, 0, len(message)+rows*columns*(2*secp256k1.PointSize+transcriptTagSize))
	buf = append(buf, message...)
	for i := 0; i < rows; i++ {
		for j := 0; j < columns; j++ {
			buf = append(buf, left[i][j].Slice()...)
			buf = append(buf, right[i][j].Slice()...)
		}
	}

	e.SetBytesReduced(secp256k1.ScalarBytes(crypto.Sha256(buf)))
	return e
}

// BorromeanHash derives the per-column challenge of the Borromean
// construction: SHA256(M || L[0][j] || R[0][j] || ... || be32(j)) over the
// rows of column j. The digest bytes land in the scalar without modular
// reduction, as the original construction wrote them; a digest at or above
// the group order (odds about 2^-128) therefore comes back invalid instead
// of wrapping.
func BorromeanHash(m types.Hash, left, right RingMatrix, j uint32) (e secp256k1.Scalar) {
	buf := make([]byte, 0, types.HashSize+2*len(left)*secp256k1.PointSize+4)
	buf = append(buf, m[:]...)
	for i := range left {
		buf = append(buf, left[i][j].Slice()...)
		buf = append(buf, right[i][j].Slice()...)
	}
	buf = binary.BigEndian.AppendUint32(buf, j)

	e.SetBytes(secp256k1.ScalarBytes(crypto.Sha256(buf)))
	return e
}
