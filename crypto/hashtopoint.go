package crypto

import (
	"github.com/veiltx/ringct/secp256k1"
)

var scalarOne = secp256k1.ScalarFromUint64(1)

// hashToPoint maps arbitrary bytes onto the curve by try-and-increment:
// interpret BitcoinHash(preimage) as an X candidate with even-Y prefix and
// bump X by one until the curve accepts it. Deterministic, and deliberately
// not constant time: the loop length leaks the preimage, which is fine for
// decoy generation and key images over public data but rules this map out
// for anything secret-dependent in production.
func hashToPoint(preimage []byte) secp256k1.Point {
	digest := BitcoinHash(preimage)

	var x secp256k1.Scalar
	x.SetBytesReduced(secp256k1.ScalarBytes(digest))

	// Roughly half of all X candidates decompress, so a few hundred tries
	// bounds the walk far beyond anything reachable in practice while still
	// guaranteeing termination.
	var candidate secp256k1.PointBytes
	for range 512 {
		candidate[0] = 2
		copy(candidate[1:], x.Slice())

		if point := secp256k1.NewPoint(candidate); point.IsValid() {
			return point
		}

		x.Add(&x, &scalarOne)
		if !x.IsValid() {
			break
		}
	}

	return secp256k1.Point{}
}

// HashToPointScalar maps a scalar's raw bytes onto the curve.
func HashToPointScalar(s *secp256k1.Scalar) secp256k1.Point {
	return hashToPoint(s.Slice())
}

// HashToPointPoint maps a point's compressed bytes onto the curve.
func HashToPointPoint(p *secp256k1.Point) secp256k1.Point {
	return hashToPoint(p.Slice())
}
