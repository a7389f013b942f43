package dkg

import (
	"github.com/pkg/errors"

	"github.com/Adarsh-Kumar28/gennaro-dkg/group"
	"github.com/Adarsh-Kumar28/gennaro-dkg/vss"
)

// Round4EchoBroadcast is the round 4 message: the sender's computed
// joint public key, echoed so round 5 can confirm agreement.
type Round4EchoBroadcast struct {
	PublicKey group.Point
}

// Round4 verifies each valid participant's round 1 share against its
// newly published Feldman commitments, then aggregates the secret
// share and the joint public key. Every failure here is fatal: a
// participant whose Feldman vector contradicts the Pedersen vector it
// passed round 2 with has publicly equivocated, and a missing
// broadcast from an agreed-valid participant breaks the echo
// guarantee. On success the participant's secret share is the sum of
// all verified shares and the public key is the sum of the constant
// term commitments.
func (p *Participant) Round4(bdata map[int]*Round3Broadcast) (*Round4EchoBroadcast, error) {
	if p.round != 4 {
		return nil, roundErr(4, "invalid call, participant is at round %d", p.round)
	}

	secretShare := p.g.NewScalar()
	publicKey := p.g.NewPoint()
	for _, j := range sortedIDs(p.validIDs) {
		var feldman []group.Point
		if j == p.id {
			feldman = p.components.FeldmanCommitments
		} else {
			b, ok := bdata[j]
			if !ok || b == nil {
				return nil, roundErr(4, "missing broadcast from valid participant %d", j)
			}
			if b.MessageGenerator == nil || !b.MessageGenerator.Equal(p.params.messageGenerator) {
				return nil, roundErr(4, "participant %d: message generator mismatch", j)
			}
			if len(b.Commitments) != p.threshold {
				return nil, roundErr(4, "participant %d: expected %d commitments, got %d",
					j, p.threshold, len(b.Commitments))
			}
			feldman = b.Commitments
			if err := vss.VerifyFeldman(p.g, p.round1P2P[j].SecretShare, feldman, p.params.messageGenerator); err != nil {
				return nil, roundErrCause(4, err, "participant %d: feldman verification failed", j)
			}
		}

		sv, err := p.round1P2P[j].SecretShare.Value(p.g)
		if err != nil {
			return nil, roundErrCause(4, errors.Wrapf(err, "participant %d", j), "decoding stored share")
		}
		secretShare = secretShare.Add(secretShare, sv)
		sv.Zeroize()
		publicKey = publicKey.Add(publicKey, feldman[0])
	}

	p.secretShare = secretShare
	p.publicKey = publicKey
	p.round = 5
	return &Round4EchoBroadcast{PublicKey: p.g.NewPoint().Set(publicKey)}, nil
}
