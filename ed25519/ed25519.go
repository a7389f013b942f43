package ed25519

import (
	"errors"
	"io"

	"filippo.io/edwards25519"

	"github.com/Adarsh-Kumar28/gennaro-dkg/group"
)

const (
	scalarSize  = 32
	elementSize = 32
)

// Scalar wraps filippo.io/edwards25519's Scalar to implement group.Scalar.
type Scalar struct {
	inner edwards25519.Scalar
}

// Add implements group.Scalar.Add.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Sub implements group.Scalar.Sub.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner.Subtract(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Mul implements group.Scalar.Mul.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Multiply(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Negate implements group.Scalar.Negate.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner.Negate(&a.(*Scalar).inner)
	return s
}

// Invert implements group.Scalar.Invert.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.IsZero() {
		return nil, errors.New("cannot invert zero scalar")
	}
	s.inner.Invert(&aScalar.inner)
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
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	// v is far below the group order, so the encoding is canonical
	if _, err := s.inner.SetCanonicalBytes(buf[:]); err != nil {
		panic("ed25519: small integer out of range: " + err.Error())
	}
	return s
}

// Bytes implements group.Scalar.Bytes. Scalars encode as 32 little-endian bytes.
func (s *Scalar) Bytes() []byte {
	return s.inner.Bytes()
}

// SetBytes implements group.Scalar.SetBytes. Non-canonical encodings
// are rejected.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != scalarSize {
		return nil, errors.New("invalid scalar length")
	}
	if _, err := s.inner.SetCanonicalBytes(data); err != nil {
		return nil, err
	}
	return s, nil
}

// Equal implements group.Scalar.Equal.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Equal(&b.(*Scalar).inner) == 1
}

// IsZero implements group.Scalar.IsZero.
func (s *Scalar) IsZero() bool {
	return s.inner.Equal(edwards25519.NewScalar()) == 1
}

// Zeroize implements group.Scalar.Zeroize.
func (s *Scalar) Zeroize() {
	s.inner.Set(edwards25519.NewScalar())
}

// Point wraps filippo.io/edwards25519's Point to implement group.Point.
type Point struct {
	inner edwards25519.Point
}

// Add implements group.Point.Add.
func (p *Point) Add(a, b group.Point) group.Point {
	p.inner.Add(&a.(*Point).inner, &b.(*Point).inner)
	return p
}

// Sub implements group.Point.Sub.
func (p *Point) Sub(a, b group.Point) group.Point {
	p.inner.Subtract(&a.(*Point).inner, &b.(*Point).inner)
	return p
}

// Negate implements group.Point.Negate.
func (p *Point) Negate(a group.Point) group.Point {
	p.inner.Negate(&a.(*Point).inner)
	return p
}

// ScalarMult implements group.Point.ScalarMult.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	p.inner.ScalarMult(&s.(*Scalar).inner, &q.(*Point).inner)
	return p
}

// Set implements group.Point.Set.
func (p *Point) Set(a group.Point) group.Point {
	p.inner.Set(&a.(*Point).inner)
	return p
}

// Bytes implements group.Point.Bytes.
func (p *Point) Bytes() []byte {
	return p.inner.Bytes()
}

// SetBytes implements group.Point.SetBytes.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != elementSize {
		return nil, errors.New("invalid point length")
	}
	if _, err := p.inner.SetBytes(data); err != nil {
		return nil, err
	}
	return p, nil
}

// Equal implements group.Point.Equal.
func (p *Point) Equal(b group.Point) bool {
	return p.inner.Equal(&b.(*Point).inner) == 1
}

// IsIdentity implements group.Point.IsIdentity.
func (p *Point) IsIdentity() bool {
	return p.inner.Equal(edwards25519.NewIdentityPoint()) == 1
}

// Ed25519 implements group.Group for the edwards25519 prime-order subgroup.
type Ed25519 struct{}

// New returns the edwards25519 group.
func New() *Ed25519 {
	return &Ed25519{}
}

// NewScalar implements group.Group.NewScalar.
func (g *Ed25519) NewScalar() group.Scalar {
	return &Scalar{}
}

// NewPoint implements group.Group.NewPoint.
func (g *Ed25519) NewPoint() group.Point {
	var p Point
	p.inner.Set(edwards25519.NewIdentityPoint())
	return &p
}

// Generator implements group.Group.Generator.
func (g *Ed25519) Generator() group.Point {
	var p Point
	p.inner.Set(edwards25519.NewGeneratorPoint())
	return &p
}

// RandomScalar implements group.Group.RandomScalar. A 64-byte wide
// reduction keeps the result uniform over the scalar field.
func (g *Ed25519) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	var s Scalar
	if _, err := s.inner.SetUniformBytes(buf[:]); err != nil {
		return nil, err
	}
	return &s, nil
}

// ScalarSize implements group.Group.ScalarSize.
func (g *Ed25519) ScalarSize() int {
	return scalarSize
}

// ElementSize implements group.Group.ElementSize.
func (g *Ed25519) ElementSize() int {
	return elementSize
}
