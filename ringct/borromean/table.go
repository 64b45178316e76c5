package borromean

import (
	"github.com/veiltx/ringct/secp256k1"
)

// generatorHPow2 holds H multiplied by 2^i for each bit column, the value
// points subtracted when recomputing the second ring member.
var generatorHPow2 [Elements]secp256k1.Point

//nolint:gochecknoinits
func init() {
	var digit secp256k1.Scalar
	for i := range generatorHPow2 {
		digit.SetUint64(uint64(1) << i)
		generatorHPow2[i].ScalarMult(&digit, &secp256k1.GeneratorH)
	}
}
