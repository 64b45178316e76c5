package crypto

import (
	"io"

	"github.com/veiltx/ringct/secp256k1"
)

// maxRandomScalarAttempts bounds rejection sampling so a broken randomness
// source surfaces as a nil return instead of an infinite loop.
const maxRandomScalarAttempts = 128

// RandomScalar fills dst with a uniformly random nonzero scalar drawn from
// random, rejecting draws outside [1, n). Returns nil if the source fails or
// keeps producing out-of-range bytes.
func RandomScalar(dst *secp256k1.Scalar, random io.Reader) *secp256k1.Scalar {
	var buf secp256k1.ScalarBytes
	for range maxRandomScalarAttempts {
		if _, err := io.ReadFull(random, buf[:]); err != nil {
			return nil
		}

		dst.SetBytes(buf)
		if dst.IsValid() && !dst.IsZero() {
			return dst
		}
	}
	return nil
}
