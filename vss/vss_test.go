package vss

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Adarsh-Kumar28/gennaro-dkg/group"
	"github.com/Adarsh-Kumar28/gennaro-dkg/k256"
)

func testGenerators(t *testing.T, g group.Group) (group.Point, group.Point) {
	t.Helper()
	m := g.Generator()
	s, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)
	return m, g.NewPoint().ScalarMult(s, m)
}

func TestSplitSecret(t *testing.T) {
	g := k256.New()
	m, h := testGenerators(t, g)

	secret, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)
	blinder, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)

	components, err := SplitSecret(g, 2, 3, secret, blinder, m, h, rand.Reader)
	require.NoError(t, err)

	require.Len(t, components.SecretShares, 3)
	require.Len(t, components.BlindShares, 3)
	require.Len(t, components.Commitments, 2)
	require.Len(t, components.FeldmanCommitments, 2)

	t.Run("ConstantTermsCarrySecrets", func(t *testing.T) {
		require.True(t, components.SecretPolynomial.Coefficients[0].Equal(secret))
		require.True(t, components.BlindingPolynomial.Coefficients[0].Equal(blinder))

		expected := g.NewPoint().ScalarMult(secret, m)
		require.True(t, components.FeldmanCommitments[0].Equal(expected))
	})

	t.Run("SharesCarryIdentifiers", func(t *testing.T) {
		for i, s := range components.SecretShares {
			require.Equal(t, i+1, s.Identifier())
		}
	})

	t.Run("PedersenVerifies", func(t *testing.T) {
		for i := range components.SecretShares {
			err := VerifyPedersen(g, components.SecretShares[i], components.BlindShares[i],
				components.Commitments, m, h)
			require.NoError(t, err)
		}
	})

	t.Run("FeldmanVerifies", func(t *testing.T) {
		for _, s := range components.SecretShares {
			require.NoError(t, VerifyFeldman(g, s, components.FeldmanCommitments, m))
		}
	})

	t.Run("TamperedShareRejected", func(t *testing.T) {
		v, err := components.SecretShares[0].Value(g)
		require.NoError(t, err)
		one := g.NewScalar().SetUint64(1)
		tampered := NewShare(1, g.NewScalar().Add(v, one))

		err = VerifyPedersen(g, tampered, components.BlindShares[0], components.Commitments, m, h)
		require.Error(t, err)
		require.Error(t, VerifyFeldman(g, tampered, components.FeldmanCommitments, m))
	})

	t.Run("InvalidThreshold", func(t *testing.T) {
		_, err := SplitSecret(g, 0, 3, secret, blinder, m, h, rand.Reader)
		require.Error(t, err)
		_, err = SplitSecret(g, 4, 3, secret, blinder, m, h, rand.Reader)
		require.Error(t, err)
	})

	t.Run("IdentityGeneratorRejected", func(t *testing.T) {
		_, err := SplitSecret(g, 2, 3, secret, blinder, g.NewPoint(), h, rand.Reader)
		require.Error(t, err)
	})
}

func TestCombine(t *testing.T) {
	g := k256.New()
	m, h := testGenerators(t, g)

	secret, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)
	blinder, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)

	components, err := SplitSecret(g, 3, 5, secret, blinder, m, h, rand.Reader)
	require.NoError(t, err)

	t.Run("ThresholdSubsetsRecover", func(t *testing.T) {
		subsets := [][]int{{0, 1, 2}, {0, 2, 4}, {1, 3, 4}, {0, 1, 2, 3, 4}}
		for _, subset := range subsets {
			shares := make([]Share, len(subset))
			for i, idx := range subset {
				shares[i] = components.SecretShares[idx]
			}
			recovered, err := Combine(g, 3, shares)
			require.NoError(t, err)
			require.True(t, recovered.Equal(secret))
		}
	})

	t.Run("TooFewShares", func(t *testing.T) {
		_, err := Combine(g, 3, components.SecretShares[:2])
		require.Error(t, err)
	})

	t.Run("DuplicateShares", func(t *testing.T) {
		shares := []Share{
			components.SecretShares[0],
			components.SecretShares[0],
			components.SecretShares[1],
		}
		_, err := Combine(g, 3, shares)
		require.Error(t, err)
	})
}

func TestZeroSecretSplit(t *testing.T) {
	g := k256.New()
	m, h := testGenerators(t, g)

	blinder, err := g.RandomScalar(rand.Reader)
	require.NoError(t, err)

	components, err := SplitSecret(g, 2, 3, g.NewScalar(), blinder, m, h, rand.Reader)
	require.NoError(t, err)

	// the constant-term Feldman commitment of a zero secret is the
	// identity, but the Pedersen commitment still hides behind b*H
	require.True(t, components.FeldmanCommitments[0].IsIdentity())
	require.False(t, components.Commitments[0].IsIdentity())

	for i := range components.SecretShares {
		err := VerifyPedersen(g, components.SecretShares[i], components.BlindShares[i],
			components.Commitments, m, h)
		require.NoError(t, err)
	}

	recovered, err := Combine(g, 2, components.SecretShares[:2])
	require.NoError(t, err)
	require.True(t, recovered.IsZero())
}

func TestPolynomial(t *testing.T) {
	g := k256.New()

	t.Run("EvaluateDegreeOne", func(t *testing.T) {
		// p(x) = 3 + 2x
		p := &Polynomial{Coefficients: []group.Scalar{
			g.NewScalar().SetUint64(3),
			g.NewScalar().SetUint64(2),
		}}
		at4 := p.Evaluate(g, g.NewScalar().SetUint64(4))
		require.True(t, at4.Equal(g.NewScalar().SetUint64(11)))
	})

	t.Run("Zeroize", func(t *testing.T) {
		secret, err := g.RandomScalar(rand.Reader)
		require.NoError(t, err)
		p, err := NewRandomPolynomial(g, secret, 2, rand.Reader)
		require.NoError(t, err)

		p.Zeroize()
		for _, c := range p.Coefficients {
			require.True(t, c.IsZero())
		}
	})
}

func TestShare(t *testing.T) {
	g := k256.New()

	t.Run("Roundtrip", func(t *testing.T) {
		v, err := g.RandomScalar(rand.Reader)
		require.NoError(t, err)
		s := NewShare(7, v)
		require.Equal(t, 7, s.Identifier())

		decoded, err := s.Value(g)
		require.NoError(t, err)
		require.True(t, decoded.Equal(v))
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := Share([]byte{1, 2, 3}).Value(g)
		require.Error(t, err)
	})

	t.Run("Zeroize", func(t *testing.T) {
		v, err := g.RandomScalar(rand.Reader)
		require.NoError(t, err)
		s := NewShare(1, v)
		s.Zeroize()
		for _, b := range s {
			require.Zero(t, b)
		}
	})
}
