// Package k256 implements [group.Group] for the secp256k1 curve using the
// decred secp256k1 library. The group operation Mul is point addition and
// Exp is scalar multiplication.
//
// Points encode in the 33-byte SEC1 compressed form; the point at infinity
// encodes as the single byte 0x00.
package k256

import (
	"errors"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/f3rmion/schnorr/group"
)

var curveOrder = new(big.Int).Set(secp256k1.Params().N)

// Scalar is an integer modulo the secp256k1 group order.
type Scalar struct {
	inner secp256k1.ModNScalar
}

// Add sets s to a + b and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add2(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Sub sets s to a - b and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	var negB secp256k1.ModNScalar
	negB.NegateVal(&b.(*Scalar).inner)
	s.inner.Add2(&a.(*Scalar).inner, &negB)
	return s
}

// Mul sets s to a * b and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Mul2(&a.(*Scalar).inner, &b.(*Scalar).inner)
	return s
}

// Set copies a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(&a.(*Scalar).inner)
	return s
}

// SetBigInt sets s to v mod N and returns s.
func (s *Scalar) SetBigInt(v *big.Int) group.Scalar {
	reduced := new(big.Int).Mod(v, curveOrder)
	var buf [32]byte
	reduced.FillBytes(buf[:])
	s.inner.SetBytes(&buf)
	return s
}

// BigInt returns the scalar as a non-negative integer.
func (s *Scalar) BigInt() *big.Int {
	b := s.inner.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// Equal reports whether s equals b.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Equals(&b.(*Scalar).inner)
}

// IsZero reports whether s is zero.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// Point is a secp256k1 point kept in affine form.
type Point struct {
	inner secp256k1.JacobianPoint
}

func (p *Point) isInfinity() bool {
	return (p.inner.X.IsZero() && p.inner.Y.IsZero()) || p.inner.Z.IsZero()
}

func (p *Point) setInfinity() {
	p.inner.X.SetInt(0)
	p.inner.Y.SetInt(0)
	p.inner.Z.SetInt(0)
}

// Mul sets p to a + b and returns p.
func (p *Point) Mul(a, b group.Element) group.Element {
	var result secp256k1.JacobianPoint
	secp256k1.AddNonConst(&a.(*Point).inner, &b.(*Point).inner, &result)
	p.inner.Set(&result)
	p.normalize()
	return p
}

// Exp sets p to s * a and returns p.
func (p *Point) Exp(a group.Element, s group.Scalar) group.Element {
	base := a.(*Point)
	k := &s.(*Scalar).inner
	if base.isInfinity() || k.IsZero() {
		p.setInfinity()
		return p
	}
	var result secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(k, &base.inner, &result)
	p.inner.Set(&result)
	p.normalize()
	return p
}

func (p *Point) normalize() {
	if p.isInfinity() {
		p.setInfinity()
		return
	}
	p.inner.ToAffine()
}

// Set copies a into p and returns p.
func (p *Point) Set(a group.Element) group.Element {
	p.inner.Set(&a.(*Point).inner)
	return p
}

// Bytes returns the compressed SEC1 encoding, or 0x00 for infinity.
func (p *Point) Bytes() []byte {
	if p.isInfinity() {
		return []byte{0x00}
	}
	return secp256k1.NewPublicKey(&p.inner.X, &p.inner.Y).SerializeCompressed()
}

// SetBytes decodes a compressed SEC1 point or the 0x00 infinity encoding.
// The curve has cofactor one, so every decoded point is in the group.
func (p *Point) SetBytes(data []byte) (group.Element, error) {
	if len(data) == 1 && data[0] == 0x00 {
		p.setInfinity()
		return p, nil
	}
	if len(data) != secp256k1.PubKeyBytesLenCompressed {
		return nil, errors.New("k256: point must use the compressed encoding")
	}
	pub, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return nil, err
	}
	pub.AsJacobian(&p.inner)
	return p, nil
}

// Equal reports whether p and b are the same point.
func (p *Point) Equal(b group.Element) bool {
	o := b.(*Point)
	if p.isInfinity() || o.isInfinity() {
		return p.isInfinity() && o.isInfinity()
	}
	return p.inner.X.Equals(&o.inner.X) && p.inner.Y.Equals(&o.inner.Y)
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.isInfinity()
}

// K256 implements [group.Group] for secp256k1.
type K256 struct{}

// Name returns "secp256k1".
func (g *K256) Name() string {
	return "secp256k1"
}

// NewScalar returns a zero scalar.
func (g *K256) NewScalar() group.Scalar {
	return new(Scalar)
}

// NewElement returns the point at infinity.
func (g *K256) NewElement() group.Element {
	p := new(Point)
	p.setInfinity()
	return p
}

// Generator returns the standard base point G.
func (g *K256) Generator() group.Element {
	var one secp256k1.ModNScalar
	one.SetInt(1)
	p := new(Point)
	secp256k1.ScalarBaseMultNonConst(&one, &p.inner)
	p.inner.ToAffine()
	return p
}

// RandomScalar draws a scalar uniformly from [0, N).
func (g *K256) RandomScalar(r io.Reader) (group.Scalar, error) {
	v, err := group.RandomInt(r, curveOrder)
	if err != nil {
		return nil, err
	}
	return new(Scalar).SetBigInt(v), nil
}

// Order returns a copy of N.
func (g *K256) Order() *big.Int {
	return new(big.Int).Set(curveOrder)
}

// Equal reports whether other is also secp256k1.
func (g *K256) Equal(other group.Group) bool {
	_, ok := other.(*K256)
	return ok
}
