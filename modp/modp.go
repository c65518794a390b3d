package modp

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/f3rmion/schnorr/group"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Group is a Schnorr group: the subgroup of order q of the multiplicative
// group of integers modulo the prime p, generated by g. It implements
// [group.Group].
//
// A Group is immutable after construction and safe for concurrent use.
// Create one with [Generate], [GenerateFromQ] or [New]. The zero value is
// not a usable group: its accessors return 0 and it contains no elements.
type Group struct {
	p, q, g  *big.Int
	cofactor *big.Int // (p-1)/q
}

func copyInt(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

// P returns a copy of the modulus p.
func (g *Group) P() *big.Int { return copyInt(g.p) }

// Q returns a copy of the subgroup order q.
func (g *Group) Q() *big.Int { return copyInt(g.q) }

// G returns a copy of the generator g.
func (g *Group) G() *big.Int { return copyInt(g.g) }

// Cofactor returns a copy of (p-1)/q.
func (g *Group) Cofactor() *big.Int { return copyInt(g.cofactor) }

// Name returns an identifier of the form "modp-<bits of p>".
func (g *Group) Name() string {
	return fmt.Sprintf("modp-%d", g.P().BitLen())
}

// NewScalar returns a new zero scalar.
func (g *Group) NewScalar() group.Scalar {
	return g.newScalar()
}

func (g *Group) newScalar() *Scalar {
	return &Scalar{q: g.q, v: new(big.Int)}
}

// NewElement returns a new identity element (the integer 1).
func (g *Group) NewElement() group.Element {
	return g.newElement()
}

func (g *Group) newElement() *Element {
	return &Element{grp: g, v: big.NewInt(1)}
}

// Generator returns g as an element.
func (g *Group) Generator() group.Element {
	return &Element{grp: g, v: new(big.Int).Set(g.g)}
}

// RandomScalar returns a scalar drawn uniformly from [0, q) using r.
func (g *Group) RandomScalar(r io.Reader) (group.Scalar, error) {
	v, err := group.RandomInt(r, g.Q())
	if err != nil {
		return nil, err
	}
	return &Scalar{q: g.q, v: v}, nil
}

// Order returns a copy of q.
func (g *Group) Order() *big.Int {
	return g.Q()
}

// Equal reports whether other is a modp group with the same p, q and g.
func (g *Group) Equal(other group.Group) bool {
	o, ok := other.(*Group)
	if !ok || o == nil {
		return false
	}
	if g == o {
		return true
	}
	if g.p == nil || o.p == nil {
		return false
	}
	return g.p.Cmp(o.p) == 0 && g.q.Cmp(o.q) == 0 && g.g.Cmp(o.g) == 0
}

// Contains reports whether v is a member of the order-q subgroup,
// i.e. 1 <= v < p and v^q = 1 (mod p).
func (g *Group) Contains(v *big.Int) bool {
	if g.p == nil || v == nil || v.Cmp(one) < 0 || v.Cmp(g.p) >= 0 {
		return false
	}
	return new(big.Int).Exp(v, g.q, g.p).Cmp(one) == 0
}

// ElementFromInt returns v as an element. It fails if v is not a member of
// the order-q subgroup.
func (g *Group) ElementFromInt(v *big.Int) (*Element, error) {
	if !g.Contains(v) {
		return nil, fmt.Errorf("modp: %v is not in the order-q subgroup", v)
	}
	return &Element{grp: g, v: new(big.Int).Set(v)}, nil
}

// Scalar is an integer modulo q. It implements [group.Scalar].
type Scalar struct {
	q *big.Int
	v *big.Int
}

// reduce ensures the scalar is in the range [0, q).
func (s *Scalar) reduce() {
	s.v.Mod(s.v, s.q)
}

// Add sets s to a + b (mod q) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.v.Add(a.(*Scalar).v, b.(*Scalar).v)
	s.reduce()
	return s
}

// Sub sets s to a - b (mod q) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.v.Sub(a.(*Scalar).v, b.(*Scalar).v)
	s.reduce()
	return s
}

// Mul sets s to a * b (mod q) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.v.Mul(a.(*Scalar).v, b.(*Scalar).v)
	s.reduce()
	return s
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.v.Set(a.(*Scalar).v)
	return s
}

// SetBigInt sets s to v mod q and returns s.
func (s *Scalar) SetBigInt(v *big.Int) group.Scalar {
	s.v.Set(v)
	s.reduce()
	return s
}

// BigInt returns a copy of the scalar value.
func (s *Scalar) BigInt() *big.Int {
	return new(big.Int).Set(s.v)
}

// Equal reports whether s and b represent the same value.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.v.Cmp(b.(*Scalar).v) == 0
}

// IsZero reports whether s is zero.
func (s *Scalar) IsZero() bool {
	return s.v.Sign() == 0
}

// Element is a member of the order-q subgroup modulo p. It implements
// [group.Element].
type Element struct {
	grp *Group
	v   *big.Int
}

// Mul sets e to a·b (mod p) and returns e.
func (e *Element) Mul(a, b group.Element) group.Element {
	e.v.Mul(a.(*Element).v, b.(*Element).v)
	e.v.Mod(e.v, e.grp.p)
	return e
}

// Exp sets e to a^s (mod p) and returns e.
func (e *Element) Exp(a group.Element, s group.Scalar) group.Element {
	e.v.Exp(a.(*Element).v, s.(*Scalar).v, e.grp.p)
	return e
}

// Set copies the value of a into e and returns e.
func (e *Element) Set(a group.Element) group.Element {
	e.v.Set(a.(*Element).v)
	return e
}

// Bytes returns the minimal big-endian encoding of the element's integer
// value. The identity encodes as the single byte 0x01.
func (e *Element) Bytes() []byte {
	return e.v.Bytes()
}

// SetBytes decodes a minimal big-endian integer and sets e to it. Leading
// zero bytes are rejected so that every element has exactly one encoding.
func (e *Element) SetBytes(data []byte) (group.Element, error) {
	if len(data) == 0 || data[0] == 0 {
		return nil, errors.New("modp: non-canonical element encoding")
	}
	v := new(big.Int).SetBytes(data)
	if !e.grp.Contains(v) {
		return nil, errors.New("modp: encoded value is not in the order-q subgroup")
	}
	e.v = v
	return e, nil
}

// BigInt returns a copy of the element's integer value.
func (e *Element) BigInt() *big.Int {
	return new(big.Int).Set(e.v)
}

// Equal reports whether e and b represent the same value.
func (e *Element) Equal(b group.Element) bool {
	return e.v.Cmp(b.(*Element).v) == 0
}

// IsIdentity reports whether e is 1.
func (e *Element) IsIdentity() bool {
	return e.v.Cmp(one) == 0
}
