package dkg_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Adarsh-Kumar28/gennaro-dkg/dkg"
	"github.com/Adarsh-Kumar28/gennaro-dkg/ed25519"
	"github.com/Adarsh-Kumar28/gennaro-dkg/group"
	"github.com/Adarsh-Kumar28/gennaro-dkg/k256"
)

func serdeGroups() map[string]group.Group {
	return map[string]group.Group{
		"k256":    k256.New(),
		"ed25519": ed25519.New(),
	}
}

// wireMessages runs one participant far enough to produce every wire
// struct with realistic contents.
func wireMessages(t *testing.T, g group.Group) (*dkg.Round1Broadcast, *dkg.Round1P2P, *dkg.Round2EchoBroadcast, *dkg.Round3Broadcast, *dkg.Round4EchoBroadcast) {
	t.Helper()
	params, err := dkg.NewParameters(g, 2, 3)
	require.NoError(t, err)

	r := newRun(t, params, false, 1, 2, 3)
	r.round1()
	r.round2()
	r.round3()
	r.round4()

	return r.r1Broadcasts[1], r.r1P2P[1][2], r.r2Echoes[1], r.r3Broadcasts[1], r.r4Echoes[1]
}

func TestWireRoundtripJSON(t *testing.T) {
	for name, g := range serdeGroups() {
		t.Run(name, func(t *testing.T) {
			b1, p2p, echo2, b3, echo4 := wireMessages(t, g)

			t.Run("Round1Broadcast", func(t *testing.T) {
				raw, err := json.Marshal(b1)
				require.NoError(t, err)
				decoded, err := dkg.DecodeRound1BroadcastJSON(g, raw)
				require.NoError(t, err)
				require.True(t, decoded.MessageGenerator.Equal(b1.MessageGenerator))
				require.True(t, decoded.BlinderGenerator.Equal(b1.BlinderGenerator))
				require.Len(t, decoded.PedersenCommitments, len(b1.PedersenCommitments))
				for i := range decoded.PedersenCommitments {
					require.True(t, decoded.PedersenCommitments[i].Equal(b1.PedersenCommitments[i]))
				}
			})

			t.Run("Round1P2P", func(t *testing.T) {
				raw, err := json.Marshal(p2p)
				require.NoError(t, err)
				decoded, err := dkg.DecodeRound1P2PJSON(g, raw)
				require.NoError(t, err)
				require.Equal(t, p2p.SecretShare, decoded.SecretShare)
				require.Equal(t, p2p.BlindShare, decoded.BlindShare)
			})

			t.Run("Round2Echo", func(t *testing.T) {
				raw, err := json.Marshal(echo2)
				require.NoError(t, err)
				decoded, err := dkg.DecodeRound2EchoBroadcastJSON(raw)
				require.NoError(t, err)
				require.Equal(t, echo2.ValidParticipants, decoded.ValidParticipants)
			})

			t.Run("Round3Broadcast", func(t *testing.T) {
				raw, err := json.Marshal(b3)
				require.NoError(t, err)
				decoded, err := dkg.DecodeRound3BroadcastJSON(g, raw)
				require.NoError(t, err)
				require.True(t, decoded.MessageGenerator.Equal(b3.MessageGenerator))
				for i := range decoded.Commitments {
					require.True(t, decoded.Commitments[i].Equal(b3.Commitments[i]))
				}
			})

			t.Run("Round4Echo", func(t *testing.T) {
				raw, err := json.Marshal(echo4)
				require.NoError(t, err)
				decoded, err := dkg.DecodeRound4EchoBroadcastJSON(g, raw)
				require.NoError(t, err)
				require.True(t, decoded.PublicKey.Equal(echo4.PublicKey))
			})
		})
	}
}

func TestWireRoundtripBinary(t *testing.T) {
	for name, g := range serdeGroups() {
		t.Run(name, func(t *testing.T) {
			b1, p2p, echo2, b3, echo4 := wireMessages(t, g)

			t.Run("Round1Broadcast", func(t *testing.T) {
				raw, err := b1.MarshalBinary()
				require.NoError(t, err)
				decoded, err := dkg.DecodeRound1Broadcast(g, raw)
				require.NoError(t, err)
				require.True(t, decoded.MessageGenerator.Equal(b1.MessageGenerator))
				require.True(t, decoded.BlinderGenerator.Equal(b1.BlinderGenerator))
				for i := range decoded.PedersenCommitments {
					require.True(t, decoded.PedersenCommitments[i].Equal(b1.PedersenCommitments[i]))
				}
			})

			t.Run("Round1P2P", func(t *testing.T) {
				raw, err := p2p.MarshalBinary()
				require.NoError(t, err)
				decoded, err := dkg.DecodeRound1P2P(g, raw)
				require.NoError(t, err)
				require.Equal(t, p2p.SecretShare, decoded.SecretShare)
				require.Equal(t, p2p.BlindShare, decoded.BlindShare)
			})

			t.Run("Round2Echo", func(t *testing.T) {
				raw, err := echo2.MarshalBinary()
				require.NoError(t, err)
				decoded, err := dkg.DecodeRound2EchoBroadcast(raw)
				require.NoError(t, err)
				require.Equal(t, echo2.ValidParticipants, decoded.ValidParticipants)
			})

			t.Run("Round3Broadcast", func(t *testing.T) {
				raw, err := b3.MarshalBinary()
				require.NoError(t, err)
				decoded, err := dkg.DecodeRound3Broadcast(g, raw)
				require.NoError(t, err)
				require.True(t, decoded.MessageGenerator.Equal(b3.MessageGenerator))
				for i := range decoded.Commitments {
					require.True(t, decoded.Commitments[i].Equal(b3.Commitments[i]))
				}
			})

			t.Run("Round4Echo", func(t *testing.T) {
				raw, err := echo4.MarshalBinary()
				require.NoError(t, err)
				decoded, err := dkg.DecodeRound4EchoBroadcast(g, raw)
				require.NoError(t, err)
				require.True(t, decoded.PublicKey.Equal(echo4.PublicKey))
			})
		})
	}
}

func TestBinaryDecodingRejections(t *testing.T) {
	g := k256.New()
	b1, p2p, echo2, _, echo4 := wireMessages(t, g)

	var serdeErr *dkg.SerializationError

	t.Run("ShortInput", func(t *testing.T) {
		raw, err := b1.MarshalBinary()
		require.NoError(t, err)
		// drop the final commitment's last byte: the declared element
		// count can no longer be satisfied
		_, err = dkg.DecodeRound1Broadcast(g, raw[:len(raw)-1])
		require.ErrorAs(t, err, &serdeErr)

		praw, err := p2p.MarshalBinary()
		require.NoError(t, err)
		_, err = dkg.DecodeRound1P2P(g, praw[:len(praw)-2])
		require.ErrorAs(t, err, &serdeErr)
	})

	t.Run("TrailingBytes", func(t *testing.T) {
		raw, err := echo2.MarshalBinary()
		require.NoError(t, err)
		_, err = dkg.DecodeRound2EchoBroadcast(append(raw, 0x00))
		require.ErrorAs(t, err, &serdeErr)

		eraw, err := echo4.MarshalBinary()
		require.NoError(t, err)
		_, err = dkg.DecodeRound4EchoBroadcast(g, append(eraw, 0x00))
		require.ErrorAs(t, err, &serdeErr)
	})

	t.Run("NegativeVarint", func(t *testing.T) {
		// odd ZigZag value decodes to a negative count
		_, err := dkg.DecodeRound2EchoBroadcast([]byte{0x03})
		require.ErrorAs(t, err, &serdeErr)
	})

	t.Run("OversizedVector", func(t *testing.T) {
		// count 300, ZigZag encoded, with no elements following
		var buf []byte
		v := uint64(300) << 1
		for v >= 0x80 {
			buf = append(buf, byte(v)|0x80)
			v >>= 7
		}
		buf = append(buf, byte(v))
		_, err := dkg.DecodeRound2EchoBroadcast(buf)
		require.ErrorAs(t, err, &serdeErr)
	})

	t.Run("InvalidPoint", func(t *testing.T) {
		raw, err := echo4.MarshalBinary()
		require.NoError(t, err)
		raw[0] = 0xff // not a valid SEC1 prefix
		_, err = dkg.DecodeRound4EchoBroadcast(g, raw)
		require.ErrorAs(t, err, &serdeErr)
	})

	t.Run("ZeroID", func(t *testing.T) {
		bad := &dkg.Round2EchoBroadcast{ValidParticipants: []int{0}}
		raw, err := bad.MarshalBinary()
		require.NoError(t, err)
		_, err = dkg.DecodeRound2EchoBroadcast(raw)
		require.ErrorAs(t, err, &serdeErr)
	})
}
