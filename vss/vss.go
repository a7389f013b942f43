package vss

import (
	"io"

	"github.com/pkg/errors"

	"github.com/Adarsh-Kumar28/gennaro-dkg/group"
)

// Polynomial is a polynomial over the scalar field, represented by its
// coefficients [a0, a1, ..., a_{t-1}] where p(x) = a0 + a1*x + ... .
// The constant term a0 carries the dealt secret.
type Polynomial struct {
	Coefficients []group.Scalar
}

// NewRandomPolynomial samples a polynomial of the given degree with the
// provided constant term. The remaining coefficients are drawn from r.
func NewRandomPolynomial(g group.Group, constant group.Scalar, degree int, r io.Reader) (*Polynomial, error) {
	if degree < 0 {
		return nil, errors.New("vss: polynomial degree must be non-negative")
	}
	coeffs := make([]group.Scalar, degree+1)
	coeffs[0] = g.NewScalar().Set(constant)
	for i := 1; i <= degree; i++ {
		c, err := g.RandomScalar(r)
		if err != nil {
			return nil, errors.Wrap(err, "vss: sampling coefficient")
		}
		coeffs[i] = c
	}
	return &Polynomial{Coefficients: coeffs}, nil
}

// Evaluate computes p(x) using Horner's method.
func (p *Polynomial) Evaluate(g group.Group, x group.Scalar) group.Scalar {
	result := g.NewScalar().Set(p.Coefficients[len(p.Coefficients)-1])
	for i := len(p.Coefficients) - 2; i >= 0; i-- {
		result = result.Mul(result, x)
		result = result.Add(result, p.Coefficients[i])
	}
	return result
}

// Zeroize wipes every coefficient.
func (p *Polynomial) Zeroize() {
	for _, c := range p.Coefficients {
		c.Zeroize()
	}
}

// Share is a polynomial evaluation bound to its evaluation point: the
// first byte holds the recipient identifier, the remainder is the
// canonical scalar encoding of the value.
type Share []byte

// NewShare encodes value as a share for the given identifier.
func NewShare(id int, value group.Scalar) Share {
	v := value.Bytes()
	s := make(Share, 1+len(v))
	s[0] = byte(id)
	copy(s[1:], v)
	return s
}

// Identifier returns the evaluation point the share belongs to.
func (s Share) Identifier() int {
	if len(s) == 0 {
		return 0
	}
	return int(s[0])
}

// Value decodes the share's scalar value.
func (s Share) Value(g group.Group) (group.Scalar, error) {
	if len(s) != 1+g.ScalarSize() {
		return nil, errors.New("vss: malformed share")
	}
	v, err := g.NewScalar().SetBytes(s[1:])
	if err != nil {
		return nil, errors.Wrap(err, "vss: decoding share value")
	}
	return v, nil
}

// IsZero reports whether the share's value decodes to zero. Malformed
// shares report false; callers validate shape through Value.
func (s Share) IsZero(g group.Group) bool {
	v, err := s.Value(g)
	if err != nil {
		return false
	}
	defer v.Zeroize()
	return v.IsZero()
}

// Zeroize wipes the share bytes.
func (s Share) Zeroize() {
	for i := range s {
		s[i] = 0
	}
}

// SecretComponents is the output of a Pedersen split: the two dealt
// polynomials, the per-participant share lists, and the Pedersen and
// Feldman commitment vectors.
type SecretComponents struct {
	SecretPolynomial   *Polynomial
	BlindingPolynomial *Polynomial

	// SecretShares[i] and BlindShares[i] belong to participant i+1.
	SecretShares []Share
	BlindShares  []Share

	// Commitments[k] = a_k*M + b_k*H.
	Commitments []group.Point
	// FeldmanCommitments[k] = a_k*M.
	FeldmanCommitments []group.Point
}

// Zeroize wipes the polynomials and share lists. Commitments are public
// and left intact.
func (c *SecretComponents) Zeroize() {
	c.SecretPolynomial.Zeroize()
	c.BlindingPolynomial.Zeroize()
	for _, s := range c.SecretShares {
		s.Zeroize()
	}
	for _, s := range c.BlindShares {
		s.Zeroize()
	}
}

// SplitSecret performs a Pedersen verifiable secret split: it samples a
// secret polynomial f with f(0) = secret and a blinding polynomial r
// with r(0) = blinder, both of degree threshold-1, evaluates them at
// 1..limit, and commits to the coefficients under both generators.
func SplitSecret(g group.Group, threshold, limit int, secret, blinder group.Scalar, msgGen, blindGen group.Point, rng io.Reader) (*SecretComponents, error) {
	if threshold < 1 || threshold > limit {
		return nil, errors.New("vss: threshold must be in [1, limit]")
	}
	if msgGen.IsIdentity() || blindGen.IsIdentity() {
		return nil, errors.New("vss: generators must not be the identity")
	}

	secretPoly, err := NewRandomPolynomial(g, secret, threshold-1, rng)
	if err != nil {
		return nil, err
	}
	blindPoly, err := NewRandomPolynomial(g, blinder, threshold-1, rng)
	if err != nil {
		return nil, err
	}

	secretShares := make([]Share, limit)
	blindShares := make([]Share, limit)
	for i := 1; i <= limit; i++ {
		x := g.NewScalar().SetUint64(uint64(i))
		fx := secretPoly.Evaluate(g, x)
		rx := blindPoly.Evaluate(g, x)
		secretShares[i-1] = NewShare(i, fx)
		blindShares[i-1] = NewShare(i, rx)
		fx.Zeroize()
		rx.Zeroize()
	}

	commitments := make([]group.Point, threshold)
	feldman := make([]group.Point, threshold)
	for k := 0; k < threshold; k++ {
		aM := g.NewPoint().ScalarMult(secretPoly.Coefficients[k], msgGen)
		bH := g.NewPoint().ScalarMult(blindPoly.Coefficients[k], blindGen)
		feldman[k] = aM
		commitments[k] = g.NewPoint().Add(aM, bH)
	}

	return &SecretComponents{
		SecretPolynomial:   secretPoly,
		BlindingPolynomial: blindPoly,
		SecretShares:       secretShares,
		BlindShares:        blindShares,
		Commitments:        commitments,
		FeldmanCommitments: feldman,
	}, nil
}

// EvaluateCommitments computes the committed polynomial at the integer
// point id, using Horner's method over the commitment vector.
func EvaluateCommitments(g group.Group, id int, commitments []group.Point) group.Point {
	x := g.NewScalar().SetUint64(uint64(id))
	result := g.NewPoint().Set(commitments[len(commitments)-1])
	for k := len(commitments) - 2; k >= 0; k-- {
		result = result.ScalarMult(x, result)
		result = result.Add(result, commitments[k])
	}
	return result
}

// VerifyPedersen checks a share pair against a Pedersen commitment
// vector: s*M + b*H must equal the committed polynomial evaluated at
// the share's identifier.
func VerifyPedersen(g group.Group, secretShare, blindShare Share, commitments []group.Point, msgGen, blindGen group.Point) error {
	if secretShare.Identifier() != blindShare.Identifier() {
		return errors.New("vss: share identifiers disagree")
	}
	s, err := secretShare.Value(g)
	if err != nil {
		return err
	}
	defer s.Zeroize()
	b, err := blindShare.Value(g)
	if err != nil {
		return err
	}
	defer b.Zeroize()

	lhs := g.NewPoint().ScalarMult(s, msgGen)
	lhs = lhs.Add(lhs, g.NewPoint().ScalarMult(b, blindGen))
	rhs := EvaluateCommitments(g, secretShare.Identifier(), commitments)
	if !lhs.Equal(rhs) {
		return errors.New("vss: share does not match pedersen commitments")
	}
	return nil
}

// VerifyFeldman checks a share against a Feldman commitment vector:
// s*M must equal the committed polynomial evaluated at the share's
// identifier.
func VerifyFeldman(g group.Group, secretShare Share, commitments []group.Point, msgGen group.Point) error {
	s, err := secretShare.Value(g)
	if err != nil {
		return err
	}
	defer s.Zeroize()

	lhs := g.NewPoint().ScalarMult(s, msgGen)
	rhs := EvaluateCommitments(g, secretShare.Identifier(), commitments)
	if !lhs.Equal(rhs) {
		return errors.New("vss: share does not match feldman commitments")
	}
	return nil
}

// Combine reconstructs the dealt secret from at least threshold shares
// via Lagrange interpolation at zero.
func Combine(g group.Group, threshold int, shares []Share) (group.Scalar, error) {
	if len(shares) < threshold {
		return nil, errors.Errorf("vss: need at least %d shares, got %d", threshold, len(shares))
	}

	ids := make([]group.Scalar, len(shares))
	values := make([]group.Scalar, len(shares))
	seen := make(map[int]bool, len(shares))
	for i, s := range shares {
		id := s.Identifier()
		if id == 0 {
			return nil, errors.New("vss: share identifier must be positive")
		}
		if seen[id] {
			return nil, errors.Errorf("vss: duplicate share for identifier %d", id)
		}
		seen[id] = true
		v, err := s.Value(g)
		if err != nil {
			return nil, err
		}
		ids[i] = g.NewScalar().SetUint64(uint64(id))
		values[i] = v
	}

	secret := g.NewScalar()
	for j := range shares {
		num := g.NewScalar().SetUint64(1)
		den := g.NewScalar().SetUint64(1)
		for m := range shares {
			if m == j {
				continue
			}
			num = num.Mul(num, ids[m])
			diff := g.NewScalar().Sub(ids[m], ids[j])
			den = den.Mul(den, diff)
		}
		denInv, err := g.NewScalar().Invert(den)
		if err != nil {
			return nil, errors.Wrap(err, "vss: interpolating")
		}
		lambda := g.NewScalar().Mul(num, denInv)
		term := g.NewScalar().Mul(lambda, values[j])
		secret = secret.Add(secret, term)
		term.Zeroize()
	}
	for _, v := range values {
		v.Zeroize()
	}
	return secret, nil
}
