package schnorr

import (
	"errors"
	"io"
	"math/big"

	"github.com/f3rmion/schnorr/modp"
)

// The functions below work on plain integers over a modp group with the
// default SHA-256 challenge. Use a Scheme for other groups or hashers.

var errNoGroup = errors.New("schnorr: group is required")

// GenerateGroup generates a Schnorr group whose order has bits bits, with
// primality error probability at most 2^-certainty.
func GenerateGroup(r io.Reader, bits, certainty int) (*modp.Group, error) {
	return modp.Generate(r, bits, certainty)
}

// GenerateKeys returns a private key x uniform in [0, q) and the public key
// y = g^x mod p.
func GenerateKeys(r io.Reader, g *modp.Group) (x, y *big.Int, err error) {
	if g == nil {
		return nil, nil, errNoGroup
	}
	s, err := New(g)
	if err != nil {
		return nil, nil, err
	}
	key, err := s.GenerateKey(r)
	if err != nil {
		return nil, nil, err
	}
	return key.X.BigInt(), key.Y.(*modp.Element).BigInt(), nil
}

// Sign signs message with the private key x, which must lie in [0, q).
func Sign(r io.Reader, g *modp.Group, message []byte, x *big.Int) (*Signature, error) {
	if g == nil {
		return nil, errNoGroup
	}
	s, err := New(g)
	if err != nil {
		return nil, err
	}
	key, err := s.NewPrivateKey(x)
	if err != nil {
		return nil, err
	}
	return s.Sign(r, key, message)
}

// Verify reports whether sig is a valid signature over message under the
// public key y. A y outside the order-q subgroup never verifies.
func Verify(g *modp.Group, sig *Signature, message []byte, y *big.Int) bool {
	if g == nil || y == nil {
		return false
	}
	s, err := New(g)
	if err != nil {
		return false
	}
	el, err := g.ElementFromInt(y)
	if err != nil {
		return false
	}
	return s.Verify(&PublicKey{group: g, Y: el}, message, sig)
}
