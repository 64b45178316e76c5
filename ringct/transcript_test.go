package ringct

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"

	"github.com/veiltx/ringct/crypto"
	"github.com/veiltx/ringct/secp256k1"
	"github.com/veiltx/ringct/types"
)

func seededReader(tb testing.TB, seed string) io.Reader {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	require.NoError(tb, err)
	_, _ = xof.Write([]byte(seed))
	return xof
}

func testMatrix(tb testing.TB, seed string, rows, columns int) RingMatrix {
	r := seededReader(tb, seed)
	matrix := NewRingMatrix(rows, columns)
	for i := range matrix {
		for j := range matrix[i] {
			var s secp256k1.Scalar
			require.NotNil(tb, crypto.RandomScalar(&s, r))
			matrix[i][j].ScalarBaseMult(&s)
		}
	}
	return matrix
}

func TestHashRingsEncoding(t *testing.T) {
	message := []byte{0xde, 0xad, 0xbe, 0xef}
	left := testMatrix(t, "hash-rings-left", 2, 3)
	right := testMatrix(t, "hash-rings-right", 2, 3)

	// The transcript is the message followed by row-major L/R cells, points
	// alone: the per-cell index tags stay reserved, never written.
	var buf []byte
	buf = append(buf, message...)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			buf = append(buf, left[i][j].Slice()...)
			buf = append(buf, right[i][j].Slice()...)
		}
	}

	var expected secp256k1.Scalar
	expected.SetBytesReduced(secp256k1.ScalarBytes(crypto.Sha256(buf)))

	e := HashRings(message, left, right)
	require.True(t, e.IsValid())
	require.Equal(t, 1, e.Equal(&expected))

	// Swapping two cells changes the challenge.
	left[0][0], left[0][1] = left[0][1], left[0][0]
	swapped := HashRings(message, left, right)
	require.Equal(t, 0, swapped.Equal(&e))
}

func TestBorromeanHashEncoding(t *testing.T) {
	m := crypto.Sha256([]byte("borromean-transcript"))
	left := testMatrix(t, "borromean-left", 1, 4)
	right := testMatrix(t, "borromean-right", 1, 4)

	var buf []byte
	buf = append(buf, m[:]...)
	buf = append(buf, left[0][2].Slice()...)
	buf = append(buf, right[0][2].Slice()...)
	buf = binary.BigEndian.AppendUint32(buf, 2)

	expected := secp256k1.NewScalar(secp256k1.ScalarBytes(crypto.Sha256(buf)))

	e := BorromeanHash(m, left, right, 2)
	require.Equal(t, e.Bytes(), expected.Bytes())

	// The column index is bound into the digest.
	other := BorromeanHash(m, left, right, 3)
	require.Equal(t, 0, other.Equal(&e))
}

func TestBorromeanHashColumnIsolation(t *testing.T) {
	m := types.ZeroHash
	left := testMatrix(t, "borromean-isolation-left", 1, 2)
	right := testMatrix(t, "borromean-isolation-right", 1, 2)

	before := BorromeanHash(m, left, right, 0)

	// Perturbing another column leaves the per-column hash untouched.
	seven := secp256k1.ScalarFromUint64(7)
	left[0][1].ScalarBaseMult(&seven)
	after := BorromeanHash(m, left, right, 0)
	require.Equal(t, before.Bytes(), after.Bytes())
}
