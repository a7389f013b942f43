package k256

import (
	"crypto/rand"
	"testing"
)

func TestScalar(t *testing.T) {
	g := New()

	t.Run("AddSub", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		b, _ := g.RandomScalar(rand.Reader)

		sum := g.NewScalar().Add(a, b)
		diff := g.NewScalar().Sub(sum, b)

		if !diff.Equal(a) {
			t.Error("(a+b)-b != a")
		}
	})

	t.Run("MulInvert", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		aInv, err := g.NewScalar().Invert(a)
		if err != nil {
			t.Fatal(err)
		}

		one := g.NewScalar().SetUint64(1)
		product := g.NewScalar().Mul(a, aInv)
		if !product.Equal(one) {
			t.Error("a*a^-1 != 1")
		}
	})

	t.Run("InvertZeroFails", func(t *testing.T) {
		if _, err := g.NewScalar().Invert(g.NewScalar()); err == nil {
			t.Error("expected error inverting zero")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)

		bytes := a.Bytes()
		if len(bytes) != g.ScalarSize() {
			t.Errorf("scalar encoding should be %d bytes, got %d", g.ScalarSize(), len(bytes))
		}
		restored, err := g.NewScalar().SetBytes(bytes)
		if err != nil {
			t.Fatal(err)
		}

		if !restored.Equal(a) {
			t.Error("scalar bytes roundtrip failed")
		}
	})

	t.Run("NonCanonicalRejected", func(t *testing.T) {
		over := make([]byte, 32)
		for i := range over {
			over[i] = 0xff
		}
		if _, err := g.NewScalar().SetBytes(over); err == nil {
			t.Error("expected error for scalar above group order")
		}
	})

	t.Run("Zeroize", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		a.Zeroize()
		if !a.IsZero() {
			t.Error("zeroized scalar should be zero")
		}
	})
}

func TestPoint(t *testing.T) {
	g := New()

	t.Run("AddSubNegate", func(t *testing.T) {
		s1, _ := g.RandomScalar(rand.Reader)
		s2, _ := g.RandomScalar(rand.Reader)
		P := g.NewPoint().ScalarMult(s1, g.Generator())
		Q := g.NewPoint().ScalarMult(s2, g.Generator())

		sum := g.NewPoint().Add(P, Q)
		diff := g.NewPoint().Sub(sum, Q)
		if !diff.Equal(P) {
			t.Error("(P+Q)-Q != P")
		}

		negP := g.NewPoint().Negate(P)
		if !g.NewPoint().Add(P, negP).IsIdentity() {
			t.Error("P + (-P) != identity")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		s, _ := g.RandomScalar(rand.Reader)
		P := g.NewPoint().ScalarMult(s, g.Generator())

		bytes := P.Bytes()
		if len(bytes) != g.ElementSize() {
			t.Errorf("point encoding should be %d bytes, got %d", g.ElementSize(), len(bytes))
		}
		restored, err := g.NewPoint().SetBytes(bytes)
		if err != nil {
			t.Fatal(err)
		}

		if !restored.Equal(P) {
			t.Error("point bytes roundtrip failed")
		}
	})

	t.Run("IdentityRoundtrip", func(t *testing.T) {
		identity := g.NewPoint()
		if !identity.IsIdentity() {
			t.Error("new point should be identity")
		}

		restored, err := g.NewPoint().SetBytes(identity.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		if !restored.IsIdentity() {
			t.Error("identity bytes roundtrip failed")
		}
	})

	t.Run("InvalidEncodingRejected", func(t *testing.T) {
		bad := make([]byte, 33)
		bad[0] = 0x05
		if _, err := g.NewPoint().SetBytes(bad); err == nil {
			t.Error("expected error for invalid prefix")
		}

		if _, err := g.NewPoint().SetBytes(make([]byte, 16)); err == nil {
			t.Error("expected error for truncated encoding")
		}
	})

	t.Run("ScalarMultDistributive", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		b, _ := g.RandomScalar(rand.Reader)

		aPlusB := g.NewScalar().Add(a, b)
		lhs := g.NewPoint().ScalarMult(aPlusB, g.Generator())

		aG := g.NewPoint().ScalarMult(a, g.Generator())
		bG := g.NewPoint().ScalarMult(b, g.Generator())
		rhs := g.NewPoint().Add(aG, bG)

		if !lhs.Equal(rhs) {
			t.Error("(a+b)*G != a*G + b*G")
		}
	})
}
