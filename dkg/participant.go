package dkg

import (
	"crypto/rand"
	"sort"

	"github.com/Adarsh-Kumar28/gennaro-dkg/group"
	"github.com/Adarsh-Kumar28/gennaro-dkg/vss"
)

// Participant is the per-party state machine for one DKG run. It
// advances strictly through rounds 1 to 5; each round method consumes
// the messages delivered since the previous round and emits the next
// messages. Calling a round method out of order returns a RoundError
// and leaves the state untouched.
//
// A Participant is not safe for concurrent use; the caller serializes
// round calls.
type Participant struct {
	g      group.Group
	params *Parameters

	id         int
	threshold  int
	limit      int
	components *vss.SecretComponents

	round     int
	completed bool

	secretShare group.Scalar
	publicKey   group.Point

	round1Broadcasts map[int]*Round1Broadcast
	round1P2P        map[int]*Round1P2P
	validIDs         map[int]struct{}
}

// NewParticipant creates a participant that deals a fresh random secret
// contribution.
func NewParticipant(id int, params *Parameters) (*Participant, error) {
	g := params.Group()
	secret, err := g.RandomScalar(rand.Reader)
	if err != nil {
		return nil, &InitializationError{Msg: "sampling secret", Cause: err}
	}
	blinder, err := g.RandomScalar(rand.Reader)
	if err != nil {
		secret.Zeroize()
		return nil, &InitializationError{Msg: "sampling blinder", Cause: err}
	}
	return initialize(id, params, secret, blinder, false)
}

// RefreshParticipant creates a participant that deals a zero secret.
// Running a full DKG in this mode produces refresh shares: adding a
// refresh share to an existing share yields a new share of the same
// secret, enabling proactive share rotation without ever exposing the
// secret. Dealing zero rather than re-dealing the existing secret keeps
// captured traffic useless to an attacker.
func RefreshParticipant(id int, params *Parameters) (*Participant, error) {
	g := params.Group()
	blinder, err := g.RandomScalar(rand.Reader)
	if err != nil {
		return nil, &InitializationError{Msg: "sampling blinder", Cause: err}
	}
	return initialize(id, params, g.NewScalar(), blinder, true)
}

func initialize(id int, params *Parameters, secret, blinder group.Scalar, refresh bool) (*Participant, error) {
	defer secret.Zeroize()
	defer blinder.Zeroize()

	g := params.Group()
	if id < 1 || id > params.Limit() {
		return nil, initErr("identifier must be in [1, %d], got %d", params.Limit(), id)
	}

	components, err := vss.SplitSecret(
		g, params.Threshold(), params.Limit(),
		secret, blinder,
		params.messageGenerator, params.blinderGenerator,
		rand.Reader,
	)
	if err != nil {
		return nil, &InitializationError{Msg: "splitting secret", Cause: err}
	}

	for _, c := range components.Commitments {
		if c.IsIdentity() {
			components.Zeroize()
			return nil, initErr("pedersen commitment at identity")
		}
	}
	for k, c := range components.FeldmanCommitments {
		// A zero secret legitimately commits its constant term to the
		// identity, so refresh participants skip that single check.
		if k == 0 && refresh {
			continue
		}
		if c.IsIdentity() {
			components.Zeroize()
			return nil, initErr("feldman commitment at identity")
		}
	}
	for i := range components.SecretShares {
		if components.SecretShares[i].IsZero(g) || components.BlindShares[i].IsZero(g) {
			components.Zeroize()
			return nil, initErr("zero share produced")
		}
	}

	return &Participant{
		g:                g,
		params:           params,
		id:               id,
		threshold:        params.Threshold(),
		limit:            params.Limit(),
		components:       components,
		round:            1,
		secretShare:      g.NewScalar(),
		publicKey:        g.NewPoint(),
		round1Broadcasts: make(map[int]*Round1Broadcast),
		round1P2P:        make(map[int]*Round1P2P),
		validIDs:         make(map[int]struct{}),
	}, nil
}

// ID returns the participant's identifier.
func (p *Participant) ID() int { return p.id }

// SecretShare returns a copy of the computed secret share. The value is
// meaningless until round 4 has completed.
func (p *Participant) SecretShare() group.Scalar {
	return p.g.NewScalar().Set(p.secretShare)
}

// PublicKey returns a copy of the computed joint public key. The value
// is meaningless until round 4 has completed.
func (p *Participant) PublicKey() group.Point {
	return p.g.NewPoint().Set(p.publicKey)
}

// ValidParticipants returns the identifiers accepted so far, in
// ascending order.
func (p *Participant) ValidParticipants() []int {
	return sortedIDs(p.validIDs)
}

// Zeroize wipes the participant's secret material: the dealt
// polynomials, all stashed shares, and the computed secret share.
func (p *Participant) Zeroize() {
	p.components.Zeroize()
	p.secretShare.Zeroize()
	for _, d := range p.round1P2P {
		d.SecretShare.Zeroize()
		d.BlindShare.Zeroize()
	}
}

func sortedIDs(set map[int]struct{}) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func sortedKeys[V any](m map[int]V) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
