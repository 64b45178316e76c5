package secp256k1

var (
	// GeneratorG is the standard secp256k1 base point.
	GeneratorG = MustPointFromString("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")

	// GeneratorH is the second Pedersen generator, a fixed curve point whose
	// discrete log with respect to G must stay unknown.
	//
	// FIXME: this literal is a placeholder carried over for reproducible
	// outputs, not a nothing-up-my-sleeve point. Deployments must derive a
	// proper H and gate the change behind a proof version.
	GeneratorH = MustPointFromString("02182f2b3da9f6a8538dabac0e4208bad135e93b8f4824c54f2fa1b974ece63762")
)
