package schnorr

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/f3rmion/schnorr/group"
)

// Scheme holds the group and challenge hash shared by signer and verifier.
// It carries no mutable state and is safe for concurrent use.
type Scheme struct {
	group  group.Group
	hasher Hasher
}

// PublicKey is a verification key y = g^x, bound to the group it was
// created in.
type PublicKey struct {
	group group.Group
	Y     group.Element
}

// PrivateKey is a signing key x in [0, q) together with its public key.
type PrivateKey struct {
	PublicKey
	X group.Scalar
}

// Signature is a Schnorr signature (e, s): e is the hash challenge and
// s = k - x·e mod q is the response.
type Signature struct {
	E *big.Int
	S *big.Int
}

// New creates a Scheme over g using SHA-256 challenges.
func New(g group.Group) (*Scheme, error) {
	return NewWithHasher(g, &SHA256Hasher{})
}

// NewWithHasher creates a Scheme over g with a custom challenge hash.
func NewWithHasher(g group.Group, h Hasher) (*Scheme, error) {
	if g == nil {
		return nil, errNoGroup
	}
	if h == nil {
		return nil, errors.New("schnorr: hasher is required")
	}
	if g.Order().Sign() <= 0 {
		return nil, errors.New("schnorr: group has no order; use a constructed group")
	}
	return &Scheme{group: g, hasher: h}, nil
}

// Group returns the scheme's group.
func (s *Scheme) Group() group.Group { return s.group }

// Hasher returns the scheme's challenge hash.
func (s *Scheme) Hasher() Hasher { return s.hasher }

// GenerateKey draws x uniformly from [0, q) using r and returns the key
// pair (x, g^x). It fails only if r fails, with [group.ErrRandomSource].
func (s *Scheme) GenerateKey(r io.Reader) (*PrivateKey, error) {
	x, err := s.group.RandomScalar(r)
	if err != nil {
		return nil, err
	}
	return s.privateKey(x), nil
}

// NewPrivateKey wraps an existing private scalar. x must lie in [0, q).
func (s *Scheme) NewPrivateKey(x *big.Int) (*PrivateKey, error) {
	if x == nil || x.Sign() < 0 || x.Cmp(s.group.Order()) >= 0 {
		return nil, ErrInvalidPrivateKey
	}
	return s.privateKey(s.group.NewScalar().SetBigInt(x)), nil
}

func (s *Scheme) privateKey(x group.Scalar) *PrivateKey {
	return &PrivateKey{
		PublicKey: PublicKey{
			group: s.group,
			Y:     s.group.NewElement().Exp(s.group.Generator(), x),
		},
		X: x,
	}
}

// NewPublicKey decodes a public key from its canonical element encoding.
func (s *Scheme) NewPublicKey(data []byte) (*PublicKey, error) {
	y, err := s.group.NewElement().SetBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return &PublicKey{group: s.group, Y: y}, nil
}

// Public returns the public half of the key pair.
func (k *PrivateKey) Public() *PublicKey {
	return &k.PublicKey
}

// Bytes returns the canonical encoding of y.
func (k *PublicKey) Bytes() []byte {
	return k.Y.Bytes()
}

// Group returns the group the key belongs to.
func (k *PublicKey) Group() group.Group {
	return k.group
}
