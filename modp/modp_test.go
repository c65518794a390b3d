package modp

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/schnorr/internal/testrand"
)

func testGroup(t *testing.T) *Group {
	t.Helper()
	grp, err := GenerateFromQ(testrand.New("modp-test"), big.NewInt(65521), 100)
	require.NoError(t, err)
	return grp
}

func TestScalar(t *testing.T) {
	g := testGroup(t)
	rng := testrand.New("scalar")

	t.Run("AddSub", func(t *testing.T) {
		a, err := g.RandomScalar(rng)
		require.NoError(t, err)
		b, err := g.RandomScalar(rng)
		require.NoError(t, err)

		sum := g.NewScalar().Add(a, b)
		diff := g.NewScalar().Sub(sum, b)
		assert.True(t, diff.Equal(a), "(a+b)-b != a")
	})

	t.Run("RandomInRange", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			s, err := g.RandomScalar(rng)
			require.NoError(t, err)
			v := s.BigInt()
			require.True(t, v.Sign() >= 0 && v.Cmp(g.Q()) < 0, "scalar %v out of range", v)
		}
	})

	t.Run("SetBigIntReduces", func(t *testing.T) {
		q := g.Q()
		s := g.NewScalar().SetBigInt(new(big.Int).Add(q, big.NewInt(7)))
		assert.Zero(t, s.BigInt().Cmp(big.NewInt(7)))

		neg := g.NewScalar().SetBigInt(big.NewInt(-1))
		assert.Zero(t, neg.BigInt().Cmp(new(big.Int).Sub(q, big.NewInt(1))))
	})

	t.Run("NewScalarIsZero", func(t *testing.T) {
		assert.True(t, g.NewScalar().IsZero())
	})
}

func TestElement(t *testing.T) {
	g := testGroup(t)
	rng := testrand.New("element")

	t.Run("ExpHomomorphism", func(t *testing.T) {
		a, _ := g.RandomScalar(rng)
		b, _ := g.RandomScalar(rng)
		ga := g.NewElement().Exp(g.Generator(), a)
		gb := g.NewElement().Exp(g.Generator(), b)

		lhs := g.NewElement().Exp(g.Generator(), g.NewScalar().Add(a, b))
		rhs := g.NewElement().Mul(ga, gb)
		assert.True(t, lhs.Equal(rhs), "g^(a+b) != g^a * g^b")
	})

	t.Run("OrderQ", func(t *testing.T) {
		q := g.NewScalar().SetBigInt(g.Q())
		assert.True(t, q.IsZero())
		id := g.NewElement().Exp(g.Generator(), q)
		assert.True(t, id.IsIdentity())
		assert.False(t, g.Generator().IsIdentity())
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		s, _ := g.RandomScalar(rng)
		e := g.NewElement().Exp(g.Generator(), s)
		restored, err := g.NewElement().SetBytes(e.Bytes())
		require.NoError(t, err)
		assert.True(t, restored.Equal(e))
	})

	t.Run("IdentityEncoding", func(t *testing.T) {
		assert.Equal(t, []byte{0x01}, g.NewElement().Bytes())
	})

	t.Run("SetBytesRejects", func(t *testing.T) {
		pm1 := new(big.Int).Sub(g.P(), big.NewInt(1))
		for name, data := range map[string][]byte{
			"empty":        nil,
			"leading zero": append([]byte{0}, g.Generator().Bytes()...),
			"zero":         {0},
			"not in group": pm1.Bytes(),
			"not below p":  g.P().Bytes(),
		} {
			_, err := g.NewElement().SetBytes(data)
			assert.Error(t, err, name)
		}
	})

	t.Run("ElementFromInt", func(t *testing.T) {
		e, err := g.ElementFromInt(g.G())
		require.NoError(t, err)
		assert.True(t, e.Equal(g.Generator()))

		_, err = g.ElementFromInt(big.NewInt(0))
		assert.Error(t, err)
	})
}

func TestGroupEqual(t *testing.T) {
	a := testGroup(t)
	b := testGroup(t)
	assert.True(t, a.Equal(b))
	assert.Equal(t, fmt.Sprintf("modp-%d", a.P().BitLen()), a.Name())

	other, err := GenerateFromQ(testrand.New("other"), big.NewInt(65519), 100)
	require.NoError(t, err)
	assert.False(t, a.Equal(other))
	assert.False(t, a.Equal(nil))
}

func TestZeroValueGroup(t *testing.T) {
	var g Group

	assert.Equal(t, 0, g.P().Sign())
	assert.Equal(t, 0, g.Order().Sign())
	assert.Equal(t, 0, g.Cofactor().Sign())
	assert.False(t, g.Contains(big.NewInt(1)))

	_, err := g.ElementFromInt(big.NewInt(1))
	require.Error(t, err)

	_, err = g.RandomScalar(testrand.New("zero"))
	require.Error(t, err)
}
