package bjj

import (
	"crypto/subtle"
	"errors"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"

	"github.com/Adarsh-Kumar28/gennaro-dkg/group"
)

const (
	scalarSize  = 32
	elementSize = 32
)

// order is the order of the curve's base point, which gnark-crypto
// exposes through the curve parameters rather than a field type.
var order = func() *big.Int {
	curve := twistededwards.GetEdwardsCurve()
	return new(big.Int).Set(&curve.Order)
}()

// identityBytes is the canonical encoding of the identity point (0, 1).
var identityBytes = func() []byte {
	var p twistededwards.PointAffine
	p.X.SetZero()
	p.Y.SetOne()
	b := p.Bytes()
	return b[:]
}()

// Scalar is an integer modulo the base point order, implementing
// group.Scalar on math/big arithmetic.
type Scalar struct {
	inner big.Int
}

// Add implements group.Scalar.Add.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add(&a.(*Scalar).inner, &b.(*Scalar).inner)
	s.inner.Mod(&s.inner, order)
	return s
}

// Sub implements group.Scalar.Sub.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner.Sub(&a.(*Scalar).inner, &b.(*Scalar).inner)
	s.inner.Mod(&s.inner, order)
	return s
}

// Mul implements group.Scalar.Mul.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Mul(&a.(*Scalar).inner, &b.(*Scalar).inner)
	s.inner.Mod(&s.inner, order)
	return s
}

// Negate implements group.Scalar.Negate.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner.Neg(&a.(*Scalar).inner)
	s.inner.Mod(&s.inner, order)
	return s
}

// Invert implements group.Scalar.Invert.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.IsZero() {
		return nil, errors.New("cannot invert zero scalar")
	}
	if s.inner.ModInverse(&aScalar.inner, order) == nil {
		return nil, errors.New("scalar is not invertible")
	}
	return s, nil
}

// Set implements group.Scalar.Set.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(&a.(*Scalar).inner)
	return s
}

// SetUint64 implements group.Scalar.SetUint64.
func (s *Scalar) SetUint64(v uint64) group.Scalar {
	s.inner.SetUint64(v)
	return s
}

// Bytes implements group.Scalar.Bytes. Scalars encode as 32 big-endian bytes.
func (s *Scalar) Bytes() []byte {
	buf := make([]byte, scalarSize)
	s.inner.FillBytes(buf)
	return buf
}

// SetBytes implements group.Scalar.SetBytes.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != scalarSize {
		return nil, errors.New("invalid scalar length")
	}
	s.inner.SetBytes(data)
	if s.inner.Cmp(order) >= 0 {
		s.inner.SetInt64(0)
		return nil, errors.New("scalar out of range")
	}
	return s, nil
}

// Equal implements group.Scalar.Equal. big.Int comparisons branch on
// magnitude, so equality goes over the fixed-width encoding instead.
func (s *Scalar) Equal(b group.Scalar) bool {
	return subtle.ConstantTimeCompare(s.Bytes(), b.Bytes()) == 1
}

// IsZero implements group.Scalar.IsZero.
func (s *Scalar) IsZero() bool {
	return subtle.ConstantTimeCompare(s.Bytes(), make([]byte, scalarSize)) == 1
}

// Zeroize implements group.Scalar.Zeroize.
func (s *Scalar) Zeroize() {
	s.inner.SetInt64(0)
}

// Point wraps gnark-crypto's PointAffine to implement group.Point.
type Point struct {
	inner twistededwards.PointAffine
}

// Add implements group.Point.Add.
func (p *Point) Add(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	p.inner.Add(&aPoint.inner, &bPoint.inner)
	return p
}

// Sub implements group.Point.Sub.
func (p *Point) Sub(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	var negB twistededwards.PointAffine
	negB.Neg(&bPoint.inner)
	p.inner.Add(&aPoint.inner, &negB)
	return p
}

// Negate implements group.Point.Negate.
func (p *Point) Negate(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Neg(&aPoint.inner)
	return p
}

// ScalarMult implements group.Point.ScalarMult.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	scalar := s.(*Scalar)
	qPoint := q.(*Point)
	p.inner.ScalarMultiplication(&qPoint.inner, &scalar.inner)
	return p
}

// Set implements group.Point.Set.
func (p *Point) Set(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Set(&aPoint.inner)
	return p
}

// Bytes implements group.Point.Bytes.
func (p *Point) Bytes() []byte {
	bytes := p.inner.Bytes()
	return bytes[:]
}

// SetBytes implements group.Point.SetBytes.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if err := p.inner.Unmarshal(data); err != nil {
		return nil, err
	}
	return p, nil
}

// Equal implements group.Point.Equal. gnark-crypto's point comparison
// is not constant-time, so equality goes over the canonical encoding.
func (p *Point) Equal(b group.Point) bool {
	return subtle.ConstantTimeCompare(p.Bytes(), b.Bytes()) == 1
}

// IsIdentity implements group.Point.IsIdentity.
func (p *Point) IsIdentity() bool {
	return subtle.ConstantTimeCompare(p.Bytes(), identityBytes) == 1
}

// BJJ implements group.Group for the BabyJubJub curve.
type BJJ struct{}

// New returns the BabyJubJub group.
func New() *BJJ {
	return &BJJ{}
}

// NewScalar implements group.Group.NewScalar.
func (g *BJJ) NewScalar() group.Scalar {
	return &Scalar{}
}

// NewPoint implements group.Group.NewPoint.
func (g *BJJ) NewPoint() group.Point {
	var p Point
	p.inner.X.SetZero()
	p.inner.Y.SetOne()
	return &p
}

// Generator implements group.Group.Generator.
func (g *BJJ) Generator() group.Point {
	var p Point
	// Get BJJ generator from gnark-crypto
	p.inner = twistededwards.GetEdwardsCurve().Base
	return &p
}

// RandomScalar implements group.Group.RandomScalar. A 64-byte wide
// reduction keeps the result uniform over the scalar field.
func (g *BJJ) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	var s Scalar
	s.inner.SetBytes(buf[:])
	s.inner.Mod(&s.inner, order)
	return &s, nil
}

// ScalarSize implements group.Group.ScalarSize.
func (g *BJJ) ScalarSize() int {
	return scalarSize
}

// ElementSize implements group.Group.ElementSize.
func (g *BJJ) ElementSize() int {
	return elementSize
}
