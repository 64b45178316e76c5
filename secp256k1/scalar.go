package secp256k1

import (
	"encoding/binary"
	"errors"

	dcrec "github.com/decred/dcrd/dcrec/secp256k1/v4"
	fasthex "github.com/tmthrgd/go-hex"
)

const ScalarSize = 32

type ScalarBytes [ScalarSize]byte

// Scalar is a 32-byte big-endian integer modulo the secp256k1 group order,
// together with a validity flag. Every operator is total: an invalid operand
// produces an invalid result, and a result the group backend rejects (a sum
// or product of zero, bytes outside the order) comes back invalidated rather
// than silently coerced. Zero itself is a valid scalar, but IsZero reports it
// so callers can treat it as falsy.
//
//nolint:recvcheck
type Scalar struct {
	b     ScalarBytes
	valid bool
}

// NewScalar interprets buf as a big-endian integer. The scalar is valid iff
// the value is below the group order; zero is allowed.
func NewScalar(buf ScalarBytes) (s Scalar) {
	s.SetBytes(buf)
	return s
}

// ScalarFromUint64 places value big-endian in the last 8 bytes, zero padding
// the rest.
func ScalarFromUint64(value uint64) (s Scalar) {
	s.SetUint64(value)
	return s
}

func ScalarFromString(str string) (Scalar, error) {
	var buf ScalarBytes
	if err := decodeExact(buf[:], str); err != nil {
		return Scalar{}, err
	}
	return NewScalar(buf), nil
}

func MustScalarFromString(str string) Scalar {
	s, err := ScalarFromString(str)
	if err != nil {
		panic(err)
	}
	return s
}

func decodeExact(dst []byte, str string) error {
	buf, err := fasthex.DecodeString(str)
	if err != nil {
		return err
	}
	if len(buf) != len(dst) {
		return errors.New("wrong size")
	}
	copy(dst, buf)
	return nil
}

// SetBytes loads buf as-is. Validity requires the value to be canonical,
// below the group order.
func (s *Scalar) SetBytes(buf ScalarBytes) *Scalar {
	s.b = buf
	var m dcrec.ModNScalar
	s.valid = m.SetBytes((*[ScalarSize]byte)(&buf)) == 0
	return s
}

// SetBytesReduced loads buf reduced modulo the group order, so the result is
// always valid. This is how hash outputs are interpreted as challenges.
func (s *Scalar) SetBytesReduced(buf ScalarBytes) *Scalar {
	var m dcrec.ModNScalar
	m.SetBytes((*[ScalarSize]byte)(&buf))
	return s.setModN(&m)
}

func (s *Scalar) SetUint64(value uint64) *Scalar {
	s.b = ScalarBytes{}
	binary.BigEndian.PutUint64(s.b[ScalarSize-8:], value)
	s.valid = true
	return s
}

func (s *Scalar) Set(a *Scalar) *Scalar {
	*s = *a
	return s
}

func (s *Scalar) invalidate() *Scalar {
	s.valid = false
	return s
}

func (s *Scalar) setModN(m *dcrec.ModNScalar) *Scalar {
	m.PutBytes((*[ScalarSize]byte)(&s.b))
	s.valid = true
	return s
}

// modN loads the scalar into the group backend. Only call on valid scalars.
func (s *Scalar) modN(m *dcrec.ModNScalar) {
	m.SetBytes((*[ScalarSize]byte)(&s.b))
}

// Add sets s = a + b mod n. A zero result is rejected by the backend's tweak
// semantics and invalidates s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	if !a.valid || !b.valid {
		return s.invalidate()
	}
	var ma, mb dcrec.ModNScalar
	a.modN(&ma)
	b.modN(&mb)
	ma.Add(&mb)
	if ma.IsZero() {
		return s.invalidate()
	}
	return s.setModN(&ma)
}

// Subtract sets s = a - b, defined as a + (-b).
func (s *Scalar) Subtract(a, b *Scalar) *Scalar {
	var nb Scalar
	nb.Negate(b)
	return s.Add(a, &nb)
}

// Multiply sets s = a * b mod n, invalidating a zero result.
func (s *Scalar) Multiply(a, b *Scalar) *Scalar {
	if !a.valid || !b.valid {
		return s.invalidate()
	}
	var ma, mb dcrec.ModNScalar
	a.modN(&ma)
	b.modN(&mb)
	ma.Mul(&mb)
	if ma.IsZero() {
		return s.invalidate()
	}
	return s.setModN(&ma)
}

// Negate sets s = -a mod n. Negating zero keeps zero.
func (s *Scalar) Negate(a *Scalar) *Scalar {
	if !a.valid {
		return s.invalidate()
	}
	var m dcrec.ModNScalar
	a.modN(&m)
	m.Negate()
	return s.setModN(&m)
}

// Equal reports whether s and b hold identical valid values, returning 1 when
// equal. An invalid scalar compares unequal to everything, itself included.
func (s *Scalar) Equal(b *Scalar) int {
	if !s.valid || !b.valid {
		return 0
	}
	if s.b == b.b {
		return 1
	}
	return 0
}

func (s *Scalar) IsZero() bool {
	return s.b == ScalarBytes{}
}

func (s *Scalar) IsValid() bool {
	return s.valid
}

func (s *Scalar) Bytes() ScalarBytes {
	return s.b
}

func (s *Scalar) Slice() []byte {
	return s.b[:]
}

func (s *Scalar) String() string {
	return fasthex.EncodeToString(s.b[:])
}
