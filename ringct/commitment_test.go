package ringct

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veiltx/ringct/crypto"
	"github.com/veiltx/ringct/secp256k1"
)

func TestCommitHomomorphism(t *testing.T) {
	r := seededReader(t, "commit-homomorphism")

	var b1, b2 secp256k1.Scalar
	require.NotNil(t, crypto.RandomScalar(&b1, r))
	require.NotNil(t, crypto.RandomScalar(&b2, r))

	var c1, c2, sum secp256k1.Point
	Commit(&c1, &b1, 7000)
	Commit(&c2, &b2, 3000)
	sum.Add(&c1, &c2)

	var bSum secp256k1.Scalar
	bSum.Add(&b1, &b2)

	var expected secp256k1.Point
	Commit(&expected, &bSum, 10000)
	require.Equal(t, 1, sum.Equal(&expected))
}

func TestBlindSumMatchesCommitmentSum(t *testing.T) {
	r := seededReader(t, "blind-sum")

	var bIn, bOut1, bOut2 secp256k1.Scalar
	require.NotNil(t, crypto.RandomScalar(&bIn, r))
	require.NotNil(t, crypto.RandomScalar(&bOut1, r))
	require.NotNil(t, crypto.RandomScalar(&bOut2, r))

	var cIn, cOut1, cOut2 secp256k1.Point
	Commit(&cIn, &bIn, 10000)
	Commit(&cOut1, &bOut1, 7000)
	Commit(&cOut2, &bOut2, 3000)

	// With balanced amounts the commitment difference is a pure blinding
	// key: the net blind times G.
	var netBlind secp256k1.Scalar
	BlindSum(&netBlind, []secp256k1.Scalar{bIn}, []secp256k1.Scalar{bOut1, bOut2})

	var diff secp256k1.Point
	CommitmentSum(&diff, []secp256k1.Point{cIn}, []secp256k1.Point{cOut1, cOut2})

	var expected secp256k1.Point
	expected.ScalarBaseMult(&netBlind)
	require.Equal(t, 1, diff.Equal(&expected))
}

func TestCommitmentSumEmpty(t *testing.T) {
	var out secp256k1.Point
	require.False(t, CommitmentSum(&out, nil, nil).IsValid())
}
