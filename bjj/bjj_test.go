package bjj

import (
	"math/big"
	"testing"

	"github.com/f3rmion/schnorr/group"
	"github.com/f3rmion/schnorr/internal/testrand"
)

func TestScalar(t *testing.T) {
	g := &BJJ{}
	rng := testrand.New("bjj-scalar")

	t.Run("AddSub", func(t *testing.T) {
		a, _ := g.RandomScalar(rng)
		b, _ := g.RandomScalar(rng)

		sum := g.NewScalar().Add(a, b)
		diff := g.NewScalar().Sub(sum, b)

		if !diff.Equal(a) {
			t.Error("(a+b)-b != a")
		}
	})

	t.Run("MulDistributes", func(t *testing.T) {
		a, _ := g.RandomScalar(rng)
		b, _ := g.RandomScalar(rng)
		c, _ := g.RandomScalar(rng)

		lhs := g.NewScalar().Mul(a, g.NewScalar().Add(b, c))
		rhs := g.NewScalar().Add(g.NewScalar().Mul(a, b), g.NewScalar().Mul(a, c))

		if !lhs.Equal(rhs) {
			t.Error("a(b+c) != ab+ac")
		}
	})

	t.Run("BigIntRoundtrip", func(t *testing.T) {
		a, _ := g.RandomScalar(rng)

		restored := g.NewScalar().SetBigInt(a.BigInt())
		if !restored.Equal(a) {
			t.Error("scalar big.Int roundtrip failed")
		}
	})

	t.Run("SetBigIntReduces", func(t *testing.T) {
		s := g.NewScalar().SetBigInt(g.Order())
		if !s.IsZero() {
			t.Error("order should reduce to zero")
		}
	})

	t.Run("NewScalarIsZero", func(t *testing.T) {
		zero := g.NewScalar()
		if !zero.IsZero() {
			t.Error("new scalar should be zero")
		}
	})

	t.Run("Equal", func(t *testing.T) {
		var a group.Scalar
		for {
			a, _ = g.RandomScalar(rng)
			if !a.IsZero() {
				break
			}
		}
		b := g.NewScalar().Set(a)
		if !a.Equal(b) {
			t.Error("copied scalar should equal original")
		}

		b = g.NewScalar().Sub(g.NewScalar(), a)
		if a.Equal(b) {
			t.Error("a should not equal -a")
		}
	})
}

func TestPoint(t *testing.T) {
	g := &BJJ{}
	rng := testrand.New("bjj-point")

	t.Run("ExpHomomorphism", func(t *testing.T) {
		s1, _ := g.RandomScalar(rng)
		s2, _ := g.RandomScalar(rng)
		P := g.NewElement().Exp(g.Generator(), s1)
		Q := g.NewElement().Exp(g.Generator(), s2)

		sum := g.NewElement().Mul(P, Q)
		direct := g.NewElement().Exp(g.Generator(), g.NewScalar().Add(s1, s2))

		if !sum.Equal(direct) {
			t.Error("s1*G + s2*G != (s1+s2)*G")
		}
	})

	t.Run("OrderAnnihilates", func(t *testing.T) {
		// Exp by the order reduces the scalar to zero, so go through
		// order-1 and one more addition instead.
		nm1 := g.NewScalar().SetBigInt(new(big.Int).Sub(g.Order(), big.NewInt(1)))
		P := g.NewElement().Exp(g.Generator(), nm1)
		result := g.NewElement().Mul(P, g.Generator())

		if !result.IsIdentity() {
			t.Error("(n-1)*G + G != identity")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		s, _ := g.RandomScalar(rng)
		P := g.NewElement().Exp(g.Generator(), s)

		restored, err := g.NewElement().SetBytes(P.Bytes())
		if err != nil {
			t.Fatal(err)
		}

		if !restored.Equal(P) {
			t.Error("point bytes roundtrip failed")
		}
	})

	t.Run("SetBytesRejectsGarbage", func(t *testing.T) {
		if _, err := g.NewElement().SetBytes([]byte{1, 2, 3}); err == nil {
			t.Error("expected error decoding short input")
		}
	})

	t.Run("IsIdentity", func(t *testing.T) {
		identity := g.NewElement()
		if !identity.IsIdentity() {
			t.Error("new point should be identity")
		}

		gen := g.Generator()
		if gen.IsIdentity() {
			t.Error("generator should not be identity")
		}
	})

	t.Run("GroupEqual", func(t *testing.T) {
		if !g.Equal(new(BJJ)) {
			t.Error("BJJ instances should be equal")
		}
		if g.Equal(nil) {
			t.Error("BJJ should not equal nil group")
		}
	})
}
