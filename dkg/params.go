package dkg

import (
	"golang.org/x/crypto/blake2b"

	"github.com/Adarsh-Kumar28/gennaro-dkg/group"
)

// Parameters holds the run configuration shared by every participant:
// the threshold, the participant limit, and the two commitment
// generators. All participants of one run must use identical
// parameters; divergence is detected and the divergent peer dropped in
// round 2.
type Parameters struct {
	g                group.Group
	threshold        int
	limit            int
	messageGenerator group.Point
	blinderGenerator group.Point
}

// NewParameters creates parameters with the group's base point as the
// message generator and a blinder generator derived deterministically
// from it: a blake2b XOF is seeded with the message generator's
// encoding and a scalar sampled from the stream fixes the blinder
// generator. Every party recomputes the same generator pair from the
// group alone.
func NewParameters(g group.Group, threshold, limit int) (*Parameters, error) {
	m := g.Generator()
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		return nil, &InitializationError{Msg: "creating xof", Cause: err}
	}
	if _, err := xof.Write(m.Bytes()); err != nil {
		return nil, &InitializationError{Msg: "seeding xof", Cause: err}
	}
	s, err := g.RandomScalar(xof)
	if err != nil {
		return nil, &InitializationError{Msg: "deriving blinder generator", Cause: err}
	}
	defer s.Zeroize()
	h := g.NewPoint().ScalarMult(s, m)
	return NewParametersWithGenerators(g, threshold, limit, m, h)
}

// NewParametersWithGenerators creates parameters from caller-supplied
// generators. The caller is responsible for the blinder generator's
// discrete log with respect to the message generator being unknown.
func NewParametersWithGenerators(g group.Group, threshold, limit int, messageGenerator, blinderGenerator group.Point) (*Parameters, error) {
	if threshold < 1 {
		return nil, initErr("threshold must be at least 1")
	}
	if limit < threshold {
		return nil, initErr("limit must be at least the threshold")
	}
	if limit > 255 {
		return nil, initErr("limit must be at most 255")
	}
	if messageGenerator == nil || messageGenerator.IsIdentity() {
		return nil, initErr("message generator must not be the identity")
	}
	if blinderGenerator == nil || blinderGenerator.IsIdentity() {
		return nil, initErr("blinder generator must not be the identity")
	}
	return &Parameters{
		g:                g,
		threshold:        threshold,
		limit:            limit,
		messageGenerator: g.NewPoint().Set(messageGenerator),
		blinderGenerator: g.NewPoint().Set(blinderGenerator),
	}, nil
}

// Group returns the group the run operates in.
func (p *Parameters) Group() group.Group { return p.g }

// Threshold returns the minimum number of participants required to
// reconstruct the secret.
func (p *Parameters) Threshold() int { return p.threshold }

// Limit returns the total number of enrolled participants.
func (p *Parameters) Limit() int { return p.limit }

// MessageGenerator returns a copy of the generator the joint public key
// is expressed in.
func (p *Parameters) MessageGenerator() group.Point {
	return p.g.NewPoint().Set(p.messageGenerator)
}

// BlinderGenerator returns a copy of the Pedersen blinder generator.
func (p *Parameters) BlinderGenerator() group.Point {
	return p.g.NewPoint().Set(p.blinderGenerator)
}
