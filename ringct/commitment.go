package ringct

import (
	"github.com/veiltx/ringct/secp256k1"
)

// AmountToScalar converts a 64-bit amount into scalar form, big-endian in
// the low bytes.
func AmountToScalar(dst *secp256k1.Scalar, amount uint64) *secp256k1.Scalar {
	return dst.SetUint64(amount)
}

// Commit generates the Pedersen commitment C = blind*G + amount*H.
func Commit(dst *secp256k1.Point, blind *secp256k1.Scalar, amount uint64) *secp256k1.Point {
	// A zero amount carries no H term; 0*H is the unrepresentable identity.
	if amount == 0 {
		return dst.ScalarBaseMult(blind)
	}
	var amountK secp256k1.Scalar
	return dst.DoubleScalarBaseMult(AmountToScalar(&amountK, amount), &secp256k1.GeneratorH, blind)
}

// BlindSum computes the net blinding factor of a balance argument,
// sum(plus) - sum(minus). With commitments C = bG + vH this is the secret
// whose public counterpart is sum(plus commitments) - sum(minus commitments)
// whenever the amounts balance.
func BlindSum(dst *secp256k1.Scalar, plus, minus []secp256k1.Scalar) *secp256k1.Scalar {
	sum := secp256k1.ScalarFromUint64(0)
	for i := range plus {
		sum.Add(&sum, &plus[i])
	}
	for i := range minus {
		sum.Subtract(&sum, &minus[i])
	}
	return dst.Set(&sum)
}

// CommitmentSum accumulates sum(plus) - sum(minus) over commitment points.
func CommitmentSum(dst *secp256k1.Point, plus, minus []secp256k1.Point) *secp256k1.Point {
	if len(plus) == 0 {
		*dst = secp256k1.Point{}
		return dst
	}
	sum := plus[0]
	for i := range plus[1:] {
		sum.Add(&sum, &plus[i+1])
	}
	for i := range minus {
		sum.Subtract(&sum, &minus[i])
	}
	return dst.Set(&sum)
}
