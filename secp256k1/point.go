package secp256k1

import (
	dcrec "github.com/decred/dcrd/dcrec/secp256k1/v4"
	fasthex "github.com/tmthrgd/go-hex"
)

const PointSize = 33

type PointBytes [PointSize]byte

// Point is a curve point in 33-byte SEC1 compressed form: a 0x02 or 0x03
// prefix followed by the big-endian X coordinate. Invalidity is encoded in
// the prefix byte being zeroed, so the zero value is invalid. As with Scalar,
// every operator is total and propagates invalidity; a sum that lands on the
// group identity is invalidated since the identity has no compressed form.
//
//nolint:recvcheck
type Point struct {
	b PointBytes
}

// NewPoint builds a point from compressed bytes, checking the prefix and the
// curve equation through the group backend.
func NewPoint(buf PointBytes) (p Point) {
	p.SetBytes(buf)
	return p
}

func PointFromString(str string) (Point, error) {
	var buf PointBytes
	if err := decodeExact(buf[:], str); err != nil {
		return Point{}, err
	}
	return NewPoint(buf), nil
}

func MustPointFromString(str string) Point {
	p, err := PointFromString(str)
	if err != nil {
		panic(err)
	}
	return p
}

// DecodeCompressedPoint decodes buf into dst, returning nil if buf is not a
// valid compressed point.
func DecodeCompressedPoint(dst *Point, buf PointBytes) *Point {
	dst.SetBytes(buf)
	if !dst.IsValid() {
		return nil
	}
	return dst
}

func (p *Point) SetBytes(buf PointBytes) *Point {
	p.b = buf
	if buf[0] != 2 && buf[0] != 3 {
		return p.invalidate()
	}
	if _, err := dcrec.ParsePubKey(buf[:]); err != nil {
		return p.invalidate()
	}
	return p
}

func (p *Point) Set(a *Point) *Point {
	*p = *a
	return p
}

func (p *Point) invalidate() *Point {
	p.b[0] = 0
	return p
}

func (p *Point) IsValid() bool {
	return p.b[0] == 2 || p.b[0] == 3
}

// asJacobian parses the compressed form into the group backend, reporting
// failure for invalid points.
func (p *Point) asJacobian(dst *dcrec.JacobianPoint) bool {
	if !p.IsValid() {
		return false
	}
	pub, err := dcrec.ParsePubKey(p.b[:])
	if err != nil {
		return false
	}
	pub.AsJacobian(dst)
	return true
}

// fromJacobian stores j in compressed form, invalidating p when j is the
// point at infinity.
func (p *Point) fromJacobian(j *dcrec.JacobianPoint) *Point {
	var z dcrec.FieldVal
	if z.Set(&j.Z).Normalize().IsZero() {
		return p.invalidate()
	}
	j.ToAffine()
	if j.X.IsZero() && j.Y.IsZero() {
		return p.invalidate()
	}
	copy(p.b[:], dcrec.NewPublicKey(&j.X, &j.Y).SerializeCompressed())
	return p
}

// Add sets p = a + b. The identity is not representable, so a + (-a) comes
// back invalid.
func (p *Point) Add(a, b *Point) *Point {
	var ja, jb, jr dcrec.JacobianPoint
	if !a.asJacobian(&ja) || !b.asJacobian(&jb) {
		return p.invalidate()
	}
	dcrec.AddNonConst(&ja, &jb, &jr)
	return p.fromJacobian(&jr)
}

// Subtract sets p = a - b, defined as a + (-b).
func (p *Point) Subtract(a, b *Point) *Point {
	var nb Point
	nb.Negate(b)
	return p.Add(a, &nb)
}

// Negate sets p = -a, the point with the same X and negated Y.
func (p *Point) Negate(a *Point) *Point {
	var j dcrec.JacobianPoint
	if !a.asJacobian(&j) {
		return p.invalidate()
	}
	j.Y.Negate(1)
	j.Y.Normalize()
	return p.fromJacobian(&j)
}

// ScalarMult sets p = k * q. A zero scalar yields the identity and therefore
// an invalid result, matching the backend's tweak semantics.
func (p *Point) ScalarMult(k *Scalar, q *Point) *Point {
	if !k.IsValid() {
		return p.invalidate()
	}
	var j, jr dcrec.JacobianPoint
	if !q.asJacobian(&j) {
		return p.invalidate()
	}
	var m dcrec.ModNScalar
	k.modN(&m)
	dcrec.ScalarMultNonConst(&m, &j, &jr)
	return p.fromJacobian(&jr)
}

// ScalarBaseMult sets p = k * G.
func (p *Point) ScalarBaseMult(k *Scalar) *Point {
	if !k.IsValid() {
		return p.invalidate()
	}
	var m dcrec.ModNScalar
	k.modN(&m)
	var jr dcrec.JacobianPoint
	dcrec.ScalarBaseMultNonConst(&m, &jr)
	return p.fromJacobian(&jr)
}

// DoubleScalarBaseMult sets p = a*A + b*G, composed from the primitive
// operators so validity propagates exactly as in the single-step forms.
func (p *Point) DoubleScalarBaseMult(a *Scalar, A *Point, b *Scalar) *Point {
	var t1, t2 Point
	t1.ScalarMult(a, A)
	t2.ScalarBaseMult(b)
	return p.Add(&t1, &t2)
}

// DoubleScalarMult sets p = a*A + b*B.
func (p *Point) DoubleScalarMult(a *Scalar, A *Point, b *Scalar, B *Point) *Point {
	var t1, t2 Point
	t1.ScalarMult(a, A)
	t2.ScalarMult(b, B)
	return p.Add(&t1, &t2)
}

// Equal reports byte identity of the compressed forms, returning 1 when
// equal. Invalid points compare unequal to everything.
func (p *Point) Equal(q *Point) int {
	if !p.IsValid() || !q.IsValid() {
		return 0
	}
	if p.b == q.b {
		return 1
	}
	return 0
}

func (p *Point) Bytes() PointBytes {
	return p.b
}

func (p *Point) Slice() []byte {
	return p.b[:]
}

func (p *Point) String() string {
	return fasthex.EncodeToString(p.b[:])
}
