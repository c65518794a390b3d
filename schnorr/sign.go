package schnorr

import (
	"io"
	"math/big"

	"github.com/f3rmion/schnorr/group"
)

// Sign produces a signature over message with priv.
//
// A fresh nonce k is drawn from r on every call; reusing a nonce across two
// signatures reveals the private key, so r must be a secure source in
// production.
func (s *Scheme) Sign(r io.Reader, priv *PrivateKey, message []byte) (*Signature, error) {
	if priv == nil || priv.X == nil {
		return nil, ErrInvalidPrivateKey
	}
	if !s.group.Equal(priv.group) {
		return nil, ErrGroupMismatch
	}

	// X may hold a scalar of another group; only its value is used.
	xv := priv.X.BigInt()
	if xv.Sign() < 0 || xv.Cmp(s.group.Order()) >= 0 {
		return nil, ErrInvalidPrivateKey
	}
	x := s.group.NewScalar().SetBigInt(xv)
	defer x.Set(s.group.NewScalar())

	k, err := s.group.RandomScalar(r)
	if err != nil {
		return nil, err
	}

	// Commitment r = g^k
	commitment := s.group.NewElement().Exp(s.group.Generator(), k)

	// Challenge e = H(message || r)
	e := s.Challenge(message, commitment)

	// Response s = k - x*e mod q
	xe := s.group.NewScalar().Mul(x, s.group.NewScalar().SetBigInt(e))
	resp := s.group.NewScalar().Sub(k, xe)

	k.Set(s.group.NewScalar())

	return &Signature{E: e, S: resp.BigInt()}, nil
}

// Verify reports whether sig is a valid signature over message by pub.
//
// It returns false, rather than an error, for keys from another group, for a
// Y that does not decode as a member of the scheme's group, and for
// out-of-range signature values.
func (s *Scheme) Verify(pub *PublicKey, message []byte, sig *Signature) bool {
	if pub == nil || pub.Y == nil || sig == nil || sig.E == nil || sig.S == nil {
		return false
	}
	if !s.group.Equal(pub.group) {
		return false
	}
	if sig.E.Sign() < 0 || sig.E.BitLen() > 8*s.hasher.Size() {
		return false
	}
	if sig.S.Sign() < 0 || sig.S.Cmp(s.group.Order()) >= 0 {
		return false
	}

	y, err := s.group.NewElement().SetBytes(pub.Y.Bytes())
	if err != nil {
		return false
	}

	// rv = g^s * y^e
	gs := s.group.NewElement().Exp(s.group.Generator(), s.group.NewScalar().SetBigInt(sig.S))
	ye := s.group.NewElement().Exp(y, s.group.NewScalar().SetBigInt(sig.E))
	rv := s.group.NewElement().Mul(gs, ye)

	return s.Challenge(message, rv).Cmp(sig.E) == 0
}

// Challenge computes e = H(message ∥ commitment) using the canonical
// encoding of commitment. Sign and Verify both go through this method.
func (s *Scheme) Challenge(message []byte, commitment group.Element) *big.Int {
	return s.hasher.Challenge(message, commitment.Bytes())
}
