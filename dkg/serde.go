package dkg

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/Adarsh-Kumar28/gennaro-dkg/group"
	"github.com/Adarsh-Kumar28/gennaro-dkg/vss"
)

// Wire structs carry two encodings. The human-readable form is JSON
// with scalars, points and shares as unpadded base64url of their
// canonical bytes. The compact form is binary: points and scalars are
// fixed-size byte strings of the group's canonical length, and vectors
// are prefixed with a ZigZag varint element count. Decoders reject
// short input, trailing bytes, and vector counts beyond the protocol's
// 255-participant bound.

var b64 = base64.RawURLEncoding

// maxVectorLen bounds decoded vector counts; no commitment vector or id
// set can exceed the participant limit.
const maxVectorLen = 255

type round1BroadcastJSON struct {
	MessageGenerator    string   `json:"message_generator"`
	BlinderGenerator    string   `json:"blinder_generator"`
	PedersenCommitments []string `json:"pedersen_commitments"`
}

// MarshalJSON implements json.Marshaler.
func (b *Round1Broadcast) MarshalJSON() ([]byte, error) {
	return json.Marshal(round1BroadcastJSON{
		MessageGenerator:    b64.EncodeToString(b.MessageGenerator.Bytes()),
		BlinderGenerator:    b64.EncodeToString(b.BlinderGenerator.Bytes()),
		PedersenCommitments: encodePointStrings(b.PedersenCommitments),
	})
}

// DecodeRound1BroadcastJSON parses the human-readable encoding of a
// round 1 broadcast.
func DecodeRound1BroadcastJSON(g group.Group, data []byte) (*Round1Broadcast, error) {
	var raw round1BroadcastJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, serdeErr(err)
	}
	m, err := decodePointString(g, raw.MessageGenerator)
	if err != nil {
		return nil, serdeErr(err)
	}
	h, err := decodePointString(g, raw.BlinderGenerator)
	if err != nil {
		return nil, serdeErr(err)
	}
	commitments, err := decodePointStrings(g, raw.PedersenCommitments)
	if err != nil {
		return nil, serdeErr(err)
	}
	return &Round1Broadcast{
		MessageGenerator:    m,
		BlinderGenerator:    h,
		PedersenCommitments: commitments,
	}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b *Round1Broadcast) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(b.MessageGenerator.Bytes())
	buf.Write(b.BlinderGenerator.Bytes())
	writePointVector(&buf, b.PedersenCommitments)
	return buf.Bytes(), nil
}

// DecodeRound1Broadcast parses the compact encoding of a round 1
// broadcast.
func DecodeRound1Broadcast(g group.Group, data []byte) (*Round1Broadcast, error) {
	r := bytes.NewReader(data)
	m, err := readPoint(g, r)
	if err != nil {
		return nil, serdeErr(err)
	}
	h, err := readPoint(g, r)
	if err != nil {
		return nil, serdeErr(err)
	}
	commitments, err := readPointVector(g, r)
	if err != nil {
		return nil, serdeErr(err)
	}
	if err := expectEOF(r); err != nil {
		return nil, serdeErr(err)
	}
	return &Round1Broadcast{
		MessageGenerator:    m,
		BlinderGenerator:    h,
		PedersenCommitments: commitments,
	}, nil
}

type round1P2PJSON struct {
	SecretShare string `json:"secret_share"`
	BlindShare  string `json:"blind_share"`
}

// MarshalJSON implements json.Marshaler.
func (d *Round1P2P) MarshalJSON() ([]byte, error) {
	return json.Marshal(round1P2PJSON{
		SecretShare: b64.EncodeToString(d.SecretShare),
		BlindShare:  b64.EncodeToString(d.BlindShare),
	})
}

// DecodeRound1P2PJSON parses the human-readable encoding of a round 1
// peer message.
func DecodeRound1P2PJSON(g group.Group, data []byte) (*Round1P2P, error) {
	var raw round1P2PJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, serdeErr(err)
	}
	secret, err := decodeShareString(g, raw.SecretShare)
	if err != nil {
		return nil, serdeErr(err)
	}
	blind, err := decodeShareString(g, raw.BlindShare)
	if err != nil {
		return nil, serdeErr(err)
	}
	return &Round1P2P{SecretShare: secret, BlindShare: blind}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d *Round1P2P) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	writeByteVector(&buf, d.SecretShare)
	writeByteVector(&buf, d.BlindShare)
	return buf.Bytes(), nil
}

// DecodeRound1P2P parses the compact encoding of a round 1 peer
// message.
func DecodeRound1P2P(g group.Group, data []byte) (*Round1P2P, error) {
	r := bytes.NewReader(data)
	secret, err := readShare(g, r)
	if err != nil {
		return nil, serdeErr(err)
	}
	blind, err := readShare(g, r)
	if err != nil {
		return nil, serdeErr(err)
	}
	if err := expectEOF(r); err != nil {
		return nil, serdeErr(err)
	}
	return &Round1P2P{SecretShare: secret, BlindShare: blind}, nil
}

type round2EchoJSON struct {
	ValidParticipants []uint64 `json:"valid_participant_ids"`
}

// MarshalJSON implements json.Marshaler.
func (e *Round2EchoBroadcast) MarshalJSON() ([]byte, error) {
	ids := make([]uint64, len(e.ValidParticipants))
	for i, id := range e.ValidParticipants {
		ids[i] = uint64(id)
	}
	return json.Marshal(round2EchoJSON{ValidParticipants: ids})
}

// DecodeRound2EchoBroadcastJSON parses the human-readable encoding of a
// round 2 echo.
func DecodeRound2EchoBroadcastJSON(data []byte) (*Round2EchoBroadcast, error) {
	var raw round2EchoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, serdeErr(err)
	}
	ids, err := convertIDs(raw.ValidParticipants)
	if err != nil {
		return nil, serdeErr(err)
	}
	return &Round2EchoBroadcast{ValidParticipants: ids}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (e *Round2EchoBroadcast) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	writeUint(&buf, uint64(len(e.ValidParticipants)))
	for _, id := range e.ValidParticipants {
		writeUint(&buf, uint64(id))
	}
	return buf.Bytes(), nil
}

// DecodeRound2EchoBroadcast parses the compact encoding of a round 2
// echo.
func DecodeRound2EchoBroadcast(data []byte) (*Round2EchoBroadcast, error) {
	r := bytes.NewReader(data)
	count, err := readUint(r)
	if err != nil {
		return nil, serdeErr(err)
	}
	if count > maxVectorLen {
		return nil, serdeErr(errors.Errorf("id set length %d exceeds protocol bounds", count))
	}
	raw := make([]uint64, count)
	for i := range raw {
		raw[i], err = readUint(r)
		if err != nil {
			return nil, serdeErr(err)
		}
	}
	if err := expectEOF(r); err != nil {
		return nil, serdeErr(err)
	}
	ids, err := convertIDs(raw)
	if err != nil {
		return nil, serdeErr(err)
	}
	return &Round2EchoBroadcast{ValidParticipants: ids}, nil
}

type round3BroadcastJSON struct {
	MessageGenerator string   `json:"message_generator"`
	Commitments      []string `json:"commitments"`
}

// MarshalJSON implements json.Marshaler.
func (b *Round3Broadcast) MarshalJSON() ([]byte, error) {
	return json.Marshal(round3BroadcastJSON{
		MessageGenerator: b64.EncodeToString(b.MessageGenerator.Bytes()),
		Commitments:      encodePointStrings(b.Commitments),
	})
}

// DecodeRound3BroadcastJSON parses the human-readable encoding of a
// round 3 broadcast.
func DecodeRound3BroadcastJSON(g group.Group, data []byte) (*Round3Broadcast, error) {
	var raw round3BroadcastJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, serdeErr(err)
	}
	m, err := decodePointString(g, raw.MessageGenerator)
	if err != nil {
		return nil, serdeErr(err)
	}
	commitments, err := decodePointStrings(g, raw.Commitments)
	if err != nil {
		return nil, serdeErr(err)
	}
	return &Round3Broadcast{MessageGenerator: m, Commitments: commitments}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b *Round3Broadcast) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(b.MessageGenerator.Bytes())
	writePointVector(&buf, b.Commitments)
	return buf.Bytes(), nil
}

// DecodeRound3Broadcast parses the compact encoding of a round 3
// broadcast.
func DecodeRound3Broadcast(g group.Group, data []byte) (*Round3Broadcast, error) {
	r := bytes.NewReader(data)
	m, err := readPoint(g, r)
	if err != nil {
		return nil, serdeErr(err)
	}
	commitments, err := readPointVector(g, r)
	if err != nil {
		return nil, serdeErr(err)
	}
	if err := expectEOF(r); err != nil {
		return nil, serdeErr(err)
	}
	return &Round3Broadcast{MessageGenerator: m, Commitments: commitments}, nil
}

type round4EchoJSON struct {
	PublicKey string `json:"public_key"`
}

// MarshalJSON implements json.Marshaler.
func (e *Round4EchoBroadcast) MarshalJSON() ([]byte, error) {
	return json.Marshal(round4EchoJSON{PublicKey: b64.EncodeToString(e.PublicKey.Bytes())})
}

// DecodeRound4EchoBroadcastJSON parses the human-readable encoding of a
// round 4 echo.
func DecodeRound4EchoBroadcastJSON(g group.Group, data []byte) (*Round4EchoBroadcast, error) {
	var raw round4EchoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, serdeErr(err)
	}
	pk, err := decodePointString(g, raw.PublicKey)
	if err != nil {
		return nil, serdeErr(err)
	}
	return &Round4EchoBroadcast{PublicKey: pk}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (e *Round4EchoBroadcast) MarshalBinary() ([]byte, error) {
	return e.PublicKey.Bytes(), nil
}

// DecodeRound4EchoBroadcast parses the compact encoding of a round 4
// echo.
func DecodeRound4EchoBroadcast(g group.Group, data []byte) (*Round4EchoBroadcast, error) {
	r := bytes.NewReader(data)
	pk, err := readPoint(g, r)
	if err != nil {
		return nil, serdeErr(err)
	}
	if err := expectEOF(r); err != nil {
		return nil, serdeErr(err)
	}
	return &Round4EchoBroadcast{PublicKey: pk}, nil
}

func encodePointStrings(points []group.Point) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = b64.EncodeToString(p.Bytes())
	}
	return out
}

func decodePointString(g group.Group, s string) (group.Point, error) {
	raw, err := b64.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "decoding base64")
	}
	p, err := g.NewPoint().SetBytes(raw)
	if err != nil {
		return nil, errors.Wrap(err, "decoding point")
	}
	return p, nil
}

func decodePointStrings(g group.Group, ss []string) ([]group.Point, error) {
	out := make([]group.Point, len(ss))
	for i, s := range ss {
		p, err := decodePointString(g, s)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func decodeShareString(g group.Group, s string) (vss.Share, error) {
	raw, err := b64.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "decoding base64")
	}
	if len(raw) != 1+g.ScalarSize() {
		return nil, errors.Errorf("share length %d does not match group", len(raw))
	}
	return vss.Share(raw), nil
}

func convertIDs(raw []uint64) ([]int, error) {
	ids := make([]int, len(raw))
	for i, v := range raw {
		if v < 1 || v > maxVectorLen {
			return nil, errors.Errorf("participant id %d out of range", v)
		}
		ids[i] = int(v)
	}
	return ids, nil
}

// writeUint appends v as a ZigZag-encoded varint.
func writeUint(buf *bytes.Buffer, v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v<<1)
	buf.Write(tmp[:n])
}

// readUint reads a ZigZag-encoded varint; odd (negative) values are
// invalid wherever the protocol expects an unsigned quantity.
func readUint(r *bytes.Reader) (uint64, error) {
	v, err := binary.ReadUvarint(r)
	if err != nil {
		return 0, errors.Wrap(err, "reading varint")
	}
	if v&1 != 0 {
		return 0, errors.New("negative varint where unsigned expected")
	}
	return v >> 1, nil
}

func writePointVector(buf *bytes.Buffer, points []group.Point) {
	writeUint(buf, uint64(len(points)))
	for _, p := range points {
		buf.Write(p.Bytes())
	}
}

func readPoint(g group.Group, r *bytes.Reader) (group.Point, error) {
	raw := make([]byte, g.ElementSize())
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, errors.Wrap(err, "short point encoding")
	}
	p, err := g.NewPoint().SetBytes(raw)
	if err != nil {
		return nil, errors.Wrap(err, "decoding point")
	}
	return p, nil
}

func readPointVector(g group.Group, r *bytes.Reader) ([]group.Point, error) {
	count, err := readUint(r)
	if err != nil {
		return nil, err
	}
	if count > maxVectorLen {
		return nil, errors.Errorf("vector length %d exceeds protocol bounds", count)
	}
	out := make([]group.Point, count)
	for i := range out {
		p, err := readPoint(g, r)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d of %d", i, count)
		}
		out[i] = p
	}
	return out, nil
}

func writeByteVector(buf *bytes.Buffer, data []byte) {
	writeUint(buf, uint64(len(data)))
	buf.Write(data)
}

func readShare(g group.Group, r *bytes.Reader) (vss.Share, error) {
	length, err := readUint(r)
	if err != nil {
		return nil, err
	}
	if length != uint64(1+g.ScalarSize()) {
		return nil, errors.Errorf("share length %d does not match group", length)
	}
	raw := make([]byte, length)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, errors.Wrap(err, "short share encoding")
	}
	return vss.Share(raw), nil
}

func expectEOF(r *bytes.Reader) error {
	if r.Len() != 0 {
		return errors.Errorf("%d trailing bytes after message", r.Len())
	}
	return nil
}
