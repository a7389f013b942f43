package dkg

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/Adarsh-Kumar28/gennaro-dkg/vss"
)

// Round2EchoBroadcast is the round 2 message: the sender's view of
// which participants survived the round 1 checks, identifiers in
// ascending order.
type Round2EchoBroadcast struct {
	ValidParticipants []int
}

// Round2 verifies every peer's round 1 broadcast and private share
// pair. A peer failing any check is dropped from the valid set rather
// than aborting the round; the round aborts only when fewer than
// threshold participants remain, in which case the returned error
// aggregates every drop reason. Maps keyed by the participant's own
// identifier are a structural violation and abort immediately.
func (p *Participant) Round2(bdata map[int]*Round1Broadcast, p2p map[int]*Round1P2P) (*Round2EchoBroadcast, error) {
	if p.round != 2 {
		return nil, roundErr(2, "invalid call, participant is at round %d", p.round)
	}
	if _, ok := bdata[p.id]; ok {
		return nil, roundErr(2, "broadcast data contains own identifier")
	}
	if _, ok := p2p[p.id]; ok {
		return nil, roundErr(2, "peer data contains own identifier")
	}

	valid := map[int]struct{}{p.id: {}}
	var dropReasons error
	for _, j := range sortedKeys(bdata) {
		if err := p.verifyRound1(j, bdata[j], p2p[j]); err != nil {
			dropReasons = multierror.Append(dropReasons, errors.Wrapf(err, "participant %d", j))
			continue
		}
		valid[j] = struct{}{}
	}

	if len(valid) < p.threshold {
		return nil, roundErrCause(2, dropReasons,
			"too few valid participants, %d of %d required", len(valid), p.threshold)
	}

	p.validIDs = valid
	for j := range valid {
		if j == p.id {
			continue
		}
		p.round1Broadcasts[j] = bdata[j]
		p.round1P2P[j] = p2p[j]
	}

	p.round = 3
	return &Round2EchoBroadcast{ValidParticipants: sortedIDs(valid)}, nil
}

func (p *Participant) verifyRound1(j int, b *Round1Broadcast, d *Round1P2P) error {
	if j < 1 || j > p.limit {
		return errors.New("identifier out of range")
	}
	if b == nil {
		return errors.New("missing broadcast data")
	}
	if b.MessageGenerator == nil || !b.MessageGenerator.Equal(p.params.messageGenerator) {
		return errors.New("message generator mismatch")
	}
	if b.BlinderGenerator == nil || !b.BlinderGenerator.Equal(p.params.blinderGenerator) {
		return errors.New("blinder generator mismatch")
	}
	if len(b.PedersenCommitments) != p.threshold {
		return errors.Errorf("expected %d pedersen commitments, got %d", p.threshold, len(b.PedersenCommitments))
	}
	for _, c := range b.PedersenCommitments {
		if c == nil || c.IsIdentity() {
			return errors.New("pedersen commitment at identity")
		}
	}
	if d == nil {
		return errors.New("missing peer share data")
	}
	if d.SecretShare.Identifier() != p.id || d.BlindShare.Identifier() != p.id {
		return errors.New("share addressed to another participant")
	}
	sv, err := d.SecretShare.Value(p.g)
	if err != nil {
		return err
	}
	svZero := sv.IsZero()
	sv.Zeroize()
	bv, err := d.BlindShare.Value(p.g)
	if err != nil {
		return err
	}
	bvZero := bv.IsZero()
	bv.Zeroize()
	if svZero || bvZero {
		return errors.New("zero share")
	}
	return vss.VerifyPedersen(p.g, d.SecretShare, d.BlindShare, b.PedersenCommitments,
		p.params.messageGenerator, p.params.blinderGenerator)
}
