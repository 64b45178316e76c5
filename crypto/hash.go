package crypto

import (
	"crypto/sha256"

	"github.com/veiltx/ringct/types"
)

// Sha256 hashes the concatenation of the given byte slices.
func Sha256(data ...[]byte) (result types.Hash) {
	h := sha256.New()
	for _, b := range data {
		_, _ = h.Write(b)
	}
	h.Sum(result[:0])
	return result
}

// BitcoinHash is the double SHA-256 used to seed hash-to-point.
func BitcoinHash(data []byte) types.Hash {
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}
