package dkg

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/Adarsh-Kumar28/gennaro-dkg/group"
)

// Round3Broadcast is the round 3 message: the sender's Feldman
// commitment vector. Publishing it is safe only after round 2
// reconciliation, which is why it is withheld until now.
type Round3Broadcast struct {
	MessageGenerator group.Point
	Commitments      []group.Point
}

// Round3 reconciles the valid sets reported by the surviving
// participants. A participant that failed to echo, or whose reported
// set differs from the local one, is dropped. Every survivor therefore
// agrees on the membership before Feldman commitments are published.
// The round aborts when fewer than threshold participants remain.
func (p *Participant) Round3(echoes map[int]*Round2EchoBroadcast) (*Round3Broadcast, error) {
	if p.round != 3 {
		return nil, roundErr(3, "invalid call, participant is at round %d", p.round)
	}

	myView := sortedIDs(p.validIDs)
	survivors := map[int]struct{}{p.id: {}}
	var dropReasons error
	for j := range p.validIDs {
		if j == p.id {
			continue
		}
		echo, ok := echoes[j]
		switch {
		case !ok || echo == nil:
			dropReasons = multierror.Append(dropReasons,
				errors.Errorf("participant %d: no echo received", j))
		case !equalIDSets(echo.ValidParticipants, myView):
			dropReasons = multierror.Append(dropReasons,
				errors.Errorf("participant %d: echoed valid set disagrees", j))
		default:
			survivors[j] = struct{}{}
		}
	}

	if len(survivors) < p.threshold {
		return nil, roundErrCause(3, dropReasons,
			"too few valid participants, %d of %d required", len(survivors), p.threshold)
	}

	p.validIDs = survivors
	p.round = 4
	return &Round3Broadcast{
		MessageGenerator: p.params.MessageGenerator(),
		Commitments:      clonePoints(p.g, p.components.FeldmanCommitments),
	}, nil
}

// equalIDSets compares an unordered id list against a sorted reference.
func equalIDSets(ids, sortedRef []int) bool {
	if len(ids) != len(sortedRef) {
		return false
	}
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	if len(seen) != len(sortedRef) {
		return false
	}
	for _, id := range sortedRef {
		if _, ok := seen[id]; !ok {
			return false
		}
	}
	return true
}
