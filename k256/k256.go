package k256

import (
	"crypto/subtle"
	"errors"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/Adarsh-Kumar28/gennaro-dkg/group"
)

const (
	scalarSize  = 32
	elementSize = 33
)

// Scalar wraps decred's ModNScalar to implement group.Scalar.
type Scalar struct {
	inner secp256k1.ModNScalar
}

// Add implements group.Scalar.Add.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	var t secp256k1.ModNScalar
	t.Add2(&a.(*Scalar).inner, &b.(*Scalar).inner)
	s.inner.Set(&t)
	return s
}

// Sub implements group.Scalar.Sub.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	var t secp256k1.ModNScalar
	t.NegateVal(&b.(*Scalar).inner)
	t.Add(&a.(*Scalar).inner)
	s.inner.Set(&t)
	return s
}

// Mul implements group.Scalar.Mul.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	var t secp256k1.ModNScalar
	t.Mul2(&a.(*Scalar).inner, &b.(*Scalar).inner)
	s.inner.Set(&t)
	return s
}

// Negate implements group.Scalar.Negate.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner.NegateVal(&a.(*Scalar).inner)
	return s
}

// Invert implements group.Scalar.Invert.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.inner.IsZero() {
		return nil, errors.New("cannot invert zero scalar")
	}
	s.inner.InverseValNonConst(&aScalar.inner)
	return s, nil
}

// Set implements group.Scalar.Set.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(&a.(*Scalar).inner)
	return s
}

// SetUint64 implements group.Scalar.SetUint64.
func (s *Scalar) SetUint64(v uint64) group.Scalar {
	var buf [32]byte
	buf[24] = byte(v >> 56)
	buf[25] = byte(v >> 48)
	buf[26] = byte(v >> 40)
	buf[27] = byte(v >> 32)
	buf[28] = byte(v >> 24)
	buf[29] = byte(v >> 16)
	buf[30] = byte(v >> 8)
	buf[31] = byte(v)
	s.inner.SetBytes(&buf)
	return s
}

// Bytes implements group.Scalar.Bytes. Scalars encode as 32 big-endian bytes.
func (s *Scalar) Bytes() []byte {
	b := s.inner.Bytes()
	return b[:]
}

// SetBytes implements group.Scalar.SetBytes. Non-canonical encodings
// (values at or above the group order) are rejected.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != scalarSize {
		return nil, errors.New("invalid scalar length")
	}
	var buf [32]byte
	copy(buf[:], data)
	if overflow := s.inner.SetBytes(&buf); overflow != 0 {
		s.inner.Zero()
		return nil, errors.New("scalar out of range")
	}
	return s, nil
}

// Equal implements group.Scalar.Equal.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Equals(&b.(*Scalar).inner)
}

// IsZero implements group.Scalar.IsZero.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// Zeroize implements group.Scalar.Zeroize.
func (s *Scalar) Zeroize() {
	s.inner.Zero()
}

// Point wraps decred's JacobianPoint to implement group.Point.
// The point at infinity encodes as 33 zero bytes; the compressed
// SEC1 form is used for all other points.
type Point struct {
	inner secp256k1.JacobianPoint
}

// Add implements group.Point.Add.
func (p *Point) Add(a, b group.Point) group.Point {
	var r secp256k1.JacobianPoint
	secp256k1.AddNonConst(&a.(*Point).inner, &b.(*Point).inner, &r)
	p.inner = r
	return p
}

// Sub implements group.Point.Sub.
func (p *Point) Sub(a, b group.Point) group.Point {
	nb := b.(*Point).inner
	nb.Y.Normalize()
	nb.Y.Negate(1).Normalize()
	var r secp256k1.JacobianPoint
	secp256k1.AddNonConst(&a.(*Point).inner, &nb, &r)
	p.inner = r
	return p
}

// Negate implements group.Point.Negate.
func (p *Point) Negate(a group.Point) group.Point {
	p.inner = a.(*Point).inner
	p.inner.Y.Normalize()
	p.inner.Y.Negate(1).Normalize()
	return p
}

// ScalarMult implements group.Point.ScalarMult.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	var r secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&s.(*Scalar).inner, &q.(*Point).inner, &r)
	p.inner = r
	return p
}

// Set implements group.Point.Set.
func (p *Point) Set(a group.Point) group.Point {
	p.inner = a.(*Point).inner
	return p
}

// Bytes implements group.Point.Bytes.
func (p *Point) Bytes() []byte {
	buf := make([]byte, elementSize)
	aff := p.inner
	aff.ToAffine()
	if aff.X.IsZero() && aff.Y.IsZero() {
		return buf
	}
	buf[0] = 0x02
	if aff.Y.IsOdd() {
		buf[0] = 0x03
	}
	aff.X.PutBytesUnchecked(buf[1:])
	return buf
}

// SetBytes implements group.Point.SetBytes.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != elementSize {
		return nil, errors.New("invalid point length")
	}
	var zero [elementSize]byte
	if subtle.ConstantTimeCompare(data, zero[:]) == 1 {
		p.inner = secp256k1.JacobianPoint{}
		return p, nil
	}
	if data[0] != 0x02 && data[0] != 0x03 {
		return nil, errors.New("invalid point prefix")
	}
	var x secp256k1.FieldVal
	if overflow := x.SetByteSlice(data[1:]); overflow {
		return nil, errors.New("point coordinate out of range")
	}
	var y secp256k1.FieldVal
	if !secp256k1.DecompressY(&x, data[0] == 0x03, &y) {
		return nil, errors.New("invalid point encoding")
	}
	y.Normalize()
	p.inner.X.Set(&x)
	p.inner.Y.Set(&y)
	p.inner.Z.SetInt(1)
	return p, nil
}

// Equal implements group.Point.Equal.
func (p *Point) Equal(b group.Point) bool {
	return subtle.ConstantTimeCompare(p.Bytes(), b.Bytes()) == 1
}

// IsIdentity implements group.Point.IsIdentity.
func (p *Point) IsIdentity() bool {
	aff := p.inner
	aff.ToAffine()
	return aff.X.IsZero() && aff.Y.IsZero()
}

// K256 implements group.Group for the secp256k1 curve.
type K256 struct{}

// New returns the secp256k1 group.
func New() *K256 {
	return &K256{}
}

// NewScalar implements group.Group.NewScalar.
func (g *K256) NewScalar() group.Scalar {
	return &Scalar{}
}

// NewPoint implements group.Group.NewPoint.
func (g *K256) NewPoint() group.Point {
	return &Point{}
}

// Generator implements group.Group.Generator.
func (g *K256) Generator() group.Point {
	var one secp256k1.ModNScalar
	one.SetInt(1)
	var p Point
	secp256k1.ScalarBaseMultNonConst(&one, &p.inner)
	return &p
}

// RandomScalar implements group.Group.RandomScalar. Sampling is by
// rejection so the result is uniform over the scalar field.
func (g *K256) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [32]byte
	var s Scalar
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		if overflow := s.inner.SetBytes(&buf); overflow == 0 {
			return &s, nil
		}
	}
}

// ScalarSize implements group.Group.ScalarSize.
func (g *K256) ScalarSize() int {
	return scalarSize
}

// ElementSize implements group.Group.ElementSize.
func (g *K256) ElementSize() int {
	return elementSize
}
