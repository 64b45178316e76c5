package mlsag

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veiltx/ringct/crypto"
	"github.com/veiltx/ringct/ringct"
	"github.com/veiltx/ringct/secp256k1"
)

// TestRingCTScenario runs the confidential-transaction balance argument end
// to end: one 10000 input spent into 7000 + 3000 outputs, authenticated by a
// two-row MLSAG whose second row proves the commitments cancel, hidden among
// hash-derived decoy columns.
func TestRingCTScenario(t *testing.T) {
	decoys := 100_000
	if testing.Short() {
		decoys = 1_000
	}

	blindA := secp256k1.MustScalarFromString("174ff68c2a964701642e343a0a0fc3437e5c2d7242d150d0173ec006fbd900b7")
	blindB := secp256k1.MustScalarFromString("41e146a7bb895fcdbb7ab6b33c598b5693be6480455f878964f45fdac7266393")
	blindC := secp256k1.MustScalarFromString("027338898dd3e3bc42b1da0c1b4dbfa1989cef8afb9dbe6960015c5f83f11aef")
	privateKey := secp256k1.MustScalarFromString("6184aee9c77893796f3c780ea43db9de8dfa24f1df5260f4acb148f0c6a7609f")

	var commitA, commitB, commitC secp256k1.Point
	ringct.Commit(&commitA, &blindA, 10000)
	ringct.Commit(&commitB, &blindB, 7000)
	ringct.Commit(&commitC, &blindC, 3000)

	var publicKey secp256k1.Point
	publicKey.ScalarBaseMult(&privateKey)

	// The spend leaves no value behind, so input minus outputs commits to
	// zero and its blinding difference signs the second row.
	var commitmentSecret secp256k1.Scalar
	ringct.BlindSum(&commitmentSecret,
		[]secp256k1.Scalar{blindA}, []secp256k1.Scalar{blindB, blindC})

	var outputCommit, balanceKey secp256k1.Point
	outputCommit.Add(&commitB, &commitC)
	balanceKey.Subtract(&commitA, &outputCommit)

	var expectedBalanceKey secp256k1.Point
	expectedBalanceKey.ScalarBaseMult(&commitmentSecret)
	require.Equal(t, 1, balanceKey.Equal(&expectedBalanceKey))

	secrets := []secp256k1.Scalar{privateKey, commitmentSecret}
	publics := ringct.NewRingMatrix(2, 1+decoys)
	publics[0][0] = publicKey
	publics[1][0] = balanceKey

	for i := 0; i < decoys; i++ {
		seed := secp256k1.ScalarFromUint64(uint64(i) + 110)
		publics[0][1+i] = crypto.HashToPointScalar(&seed)

		seed.SetUint64(uint64(i) + 4)
		decoyCommit := crypto.HashToPointScalar(&seed)
		publics[1][1+i].Subtract(&decoyCommit, &outputCommit)
	}

	message := []byte{0xde, 0xad, 0xbe, 0xef}

	signature, err := Sign(secrets, publics, 0, message, seededReader(t, "ring-ct-scenario"))
	require.NoError(t, err)

	// Verification recomputes every L/R cell and accepts exactly when the
	// challenge sum equals the ring transcript hash of the message.
	require.True(t, signature.Verify(publics, message))

	var challengeSum secp256k1.Scalar
	challengeSum.SetUint64(0)
	for j := range signature.Challenges {
		challengeSum.Add(&challengeSum, &signature.Challenges[j])
	}
	require.True(t, challengeSum.IsValid())
}
