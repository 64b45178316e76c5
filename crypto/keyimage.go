package crypto

import (
	"github.com/veiltx/ringct/secp256k1"
)

// KeyImage derives I = x * H_p(x*G), the linkability tag of a secret. Two
// signatures made with the same secret carry the same image regardless of
// the surrounding ring.
func KeyImage(x *secp256k1.Scalar) (image secp256k1.Point) {
	var pub secp256k1.Point
	pub.ScalarBaseMult(x)
	hashed := HashToPointPoint(&pub)
	image.ScalarMult(x, &hashed)
	return image
}
