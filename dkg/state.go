package dkg

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"

	"github.com/Adarsh-Kumar28/gennaro-dkg/group"
	"github.com/Adarsh-Kumar28/gennaro-dkg/vss"
)

// participantState is the CBOR image of a Participant between rounds.
// Stashed peer messages reuse the compact wire encoding.
type participantState struct {
	ID        int  `cbor:"id"`
	Threshold int  `cbor:"threshold"`
	Limit     int  `cbor:"limit"`
	Round     int  `cbor:"round"`
	Completed bool `cbor:"completed"`

	MessageGenerator []byte `cbor:"message_generator"`
	BlinderGenerator []byte `cbor:"blinder_generator"`

	SecretCoefficients   [][]byte `cbor:"secret_coefficients"`
	BlindingCoefficients [][]byte `cbor:"blinding_coefficients"`
	SecretShares         [][]byte `cbor:"secret_shares"`
	BlindShares          [][]byte `cbor:"blind_shares"`
	PedersenCommitments  [][]byte `cbor:"pedersen_commitments"`
	FeldmanCommitments   [][]byte `cbor:"feldman_commitments"`

	SecretShare []byte `cbor:"secret_share"`
	PublicKey   []byte `cbor:"public_key"`

	Round1Broadcasts  map[int][]byte `cbor:"round1_broadcast_data"`
	Round1P2P         map[int][]byte `cbor:"round1_p2p_data"`
	ValidParticipants []int          `cbor:"valid_participant_ids"`
}

// Snapshot serializes the participant's full state so a host can
// persist it between rounds and continue later with
// [RestoreParticipant]. The snapshot contains the participant's secret
// material in the clear; the caller owns protecting the bytes at rest.
func (p *Participant) Snapshot() ([]byte, error) {
	state := participantState{
		ID:                p.id,
		Threshold:         p.threshold,
		Limit:             p.limit,
		Round:             p.round,
		Completed:         p.completed,
		MessageGenerator:  p.params.messageGenerator.Bytes(),
		BlinderGenerator:  p.params.blinderGenerator.Bytes(),
		SecretShare:       p.secretShare.Bytes(),
		PublicKey:         p.publicKey.Bytes(),
		Round1Broadcasts:  make(map[int][]byte, len(p.round1Broadcasts)),
		Round1P2P:         make(map[int][]byte, len(p.round1P2P)),
		ValidParticipants: sortedIDs(p.validIDs),
	}

	state.SecretCoefficients = encodeScalars(p.components.SecretPolynomial.Coefficients)
	state.BlindingCoefficients = encodeScalars(p.components.BlindingPolynomial.Coefficients)
	state.SecretShares = encodeShares(p.components.SecretShares)
	state.BlindShares = encodeShares(p.components.BlindShares)
	state.PedersenCommitments = encodePoints(p.components.Commitments)
	state.FeldmanCommitments = encodePoints(p.components.FeldmanCommitments)

	for id, b := range p.round1Broadcasts {
		raw, err := b.MarshalBinary()
		if err != nil {
			return nil, serdeErr(errors.Wrapf(err, "encoding broadcast %d", id))
		}
		state.Round1Broadcasts[id] = raw
	}
	for id, d := range p.round1P2P {
		raw, err := d.MarshalBinary()
		if err != nil {
			return nil, serdeErr(errors.Wrapf(err, "encoding peer data %d", id))
		}
		state.Round1P2P[id] = raw
	}

	out, err := cbor.Marshal(state)
	if err != nil {
		return nil, serdeErr(err)
	}
	return out, nil
}

// RestoreParticipant rebuilds a participant from a [Participant.Snapshot]
// image over the given group. The group must match the one the snapshot
// was taken with.
func RestoreParticipant(g group.Group, snapshot []byte) (*Participant, error) {
	var state participantState
	if err := cbor.Unmarshal(snapshot, &state); err != nil {
		return nil, serdeErr(err)
	}

	m, err := g.NewPoint().SetBytes(state.MessageGenerator)
	if err != nil {
		return nil, serdeErr(errors.Wrap(err, "decoding message generator"))
	}
	h, err := g.NewPoint().SetBytes(state.BlinderGenerator)
	if err != nil {
		return nil, serdeErr(errors.Wrap(err, "decoding blinder generator"))
	}
	params, err := NewParametersWithGenerators(g, state.Threshold, state.Limit, m, h)
	if err != nil {
		return nil, err
	}
	if state.ID < 1 || state.ID > state.Limit {
		return nil, serdeErr(errors.Errorf("participant id %d out of range", state.ID))
	}
	if state.Round < 1 || state.Round > 5 {
		return nil, serdeErr(errors.Errorf("round %d out of range", state.Round))
	}

	secretCoeffs, err := decodeScalars(g, state.SecretCoefficients)
	if err != nil {
		return nil, serdeErr(errors.Wrap(err, "decoding secret polynomial"))
	}
	blindCoeffs, err := decodeScalars(g, state.BlindingCoefficients)
	if err != nil {
		return nil, serdeErr(errors.Wrap(err, "decoding blinding polynomial"))
	}
	pedersen, err := decodePoints(g, state.PedersenCommitments)
	if err != nil {
		return nil, serdeErr(errors.Wrap(err, "decoding pedersen commitments"))
	}
	feldman, err := decodePoints(g, state.FeldmanCommitments)
	if err != nil {
		return nil, serdeErr(errors.Wrap(err, "decoding feldman commitments"))
	}

	secretShare, err := g.NewScalar().SetBytes(state.SecretShare)
	if err != nil {
		return nil, serdeErr(errors.Wrap(err, "decoding secret share"))
	}
	publicKey, err := g.NewPoint().SetBytes(state.PublicKey)
	if err != nil {
		return nil, serdeErr(errors.Wrap(err, "decoding public key"))
	}

	p := &Participant{
		g:         g,
		params:    params,
		id:        state.ID,
		threshold: state.Threshold,
		limit:     state.Limit,
		components: &vss.SecretComponents{
			SecretPolynomial:   &vss.Polynomial{Coefficients: secretCoeffs},
			BlindingPolynomial: &vss.Polynomial{Coefficients: blindCoeffs},
			SecretShares:       decodeShares(state.SecretShares),
			BlindShares:        decodeShares(state.BlindShares),
			Commitments:        pedersen,
			FeldmanCommitments: feldman,
		},
		round:            state.Round,
		completed:        state.Completed,
		secretShare:      secretShare,
		publicKey:        publicKey,
		round1Broadcasts: make(map[int]*Round1Broadcast, len(state.Round1Broadcasts)),
		round1P2P:        make(map[int]*Round1P2P, len(state.Round1P2P)),
		validIDs:         make(map[int]struct{}, len(state.ValidParticipants)),
	}

	for id, raw := range state.Round1Broadcasts {
		b, err := DecodeRound1Broadcast(g, raw)
		if err != nil {
			return nil, err
		}
		p.round1Broadcasts[id] = b
	}
	for id, raw := range state.Round1P2P {
		d, err := DecodeRound1P2P(g, raw)
		if err != nil {
			return nil, err
		}
		p.round1P2P[id] = d
	}
	for _, id := range state.ValidParticipants {
		p.validIDs[id] = struct{}{}
	}
	return p, nil
}

func encodeScalars(scalars []group.Scalar) [][]byte {
	out := make([][]byte, len(scalars))
	for i, s := range scalars {
		out[i] = s.Bytes()
	}
	return out
}

func decodeScalars(g group.Group, raw [][]byte) ([]group.Scalar, error) {
	out := make([]group.Scalar, len(raw))
	for i, b := range raw {
		s, err := g.NewScalar().SetBytes(b)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func encodePoints(points []group.Point) [][]byte {
	out := make([][]byte, len(points))
	for i, p := range points {
		out[i] = p.Bytes()
	}
	return out
}

func decodePoints(g group.Group, raw [][]byte) ([]group.Point, error) {
	out := make([]group.Point, len(raw))
	for i, b := range raw {
		p, err := g.NewPoint().SetBytes(b)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func encodeShares(shares []vss.Share) [][]byte {
	out := make([][]byte, len(shares))
	for i, s := range shares {
		out[i] = cloneShare(s)
	}
	return out
}

func decodeShares(raw [][]byte) []vss.Share {
	out := make([]vss.Share, len(raw))
	for i, b := range raw {
		out[i] = vss.Share(b)
	}
	return out
}
