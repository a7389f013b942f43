package dkg

import (
	"github.com/Adarsh-Kumar28/gennaro-dkg/group"
	"github.com/Adarsh-Kumar28/gennaro-dkg/vss"
)

// Round1Broadcast is the round 1 message sent to every other
// participant: the sender's view of the generators and its Pedersen
// commitment vector. The sender identity travels outside the payload;
// the transport attaches it and receivers key their input maps by it.
type Round1Broadcast struct {
	MessageGenerator    group.Point
	BlinderGenerator    group.Point
	PedersenCommitments []group.Point
}

// Round1P2P is the round 1 message sent privately to a single
// participant: that participant's secret and blinding shares. It must
// travel over a confidential, authenticated channel.
type Round1P2P struct {
	SecretShare vss.Share
	BlindShare  vss.Share
}

// Round1 emits the commit-and-deal messages: a broadcast carrying the
// Pedersen commitments and, for every other participant, the private
// share pair evaluated at that participant's identifier. The
// participant's own broadcast is stashed, and its own share pair is kept
// for the round 4 aggregation.
func (p *Participant) Round1() (*Round1Broadcast, map[int]*Round1P2P, error) {
	if p.round != 1 {
		return nil, nil, roundErr(1, "invalid call, participant is at round %d", p.round)
	}

	broadcast := &Round1Broadcast{
		MessageGenerator:    p.params.MessageGenerator(),
		BlinderGenerator:    p.params.BlinderGenerator(),
		PedersenCommitments: clonePoints(p.g, p.components.Commitments),
	}
	p.round1Broadcasts[p.id] = broadcast

	p2p := make(map[int]*Round1P2P, p.limit-1)
	for j := 1; j <= p.limit; j++ {
		data := &Round1P2P{
			SecretShare: cloneShare(p.components.SecretShares[j-1]),
			BlindShare:  cloneShare(p.components.BlindShares[j-1]),
		}
		if j == p.id {
			// our own share pair feeds the round 4 aggregation
			p.round1P2P[p.id] = data
			continue
		}
		p2p[j] = data
	}

	p.round = 2
	return broadcast, p2p, nil
}

func clonePoints(g group.Group, points []group.Point) []group.Point {
	out := make([]group.Point, len(points))
	for i, pt := range points {
		out[i] = g.NewPoint().Set(pt)
	}
	return out
}

func cloneShare(s vss.Share) vss.Share {
	out := make(vss.Share, len(s))
	copy(out, s)
	return out
}
