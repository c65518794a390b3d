package bjj

import (
	"errors"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"

	"github.com/f3rmion/schnorr/group"
)

// curveOrder is the Baby Jubjub subgroup order.
// This is distinct from the BN254 scalar field order (Fr).
var curveOrder *big.Int

func init() {
	curve := twistededwards.GetEdwardsCurve()
	curveOrder = new(big.Int).Set(&curve.Order)
}

// Scalar represents an element of the Baby Jubjub scalar field.
// It implements [group.Scalar] using big.Int with modular arithmetic
// over the curve's subgroup order.
type Scalar struct {
	inner *big.Int
}

func newScalar() *Scalar {
	return &Scalar{inner: new(big.Int)}
}

// reduce ensures the scalar is in the range [0, curveOrder).
func (s *Scalar) reduce() {
	s.inner.Mod(s.inner, curveOrder)
}

// Add sets s to a + b (mod curveOrder) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add(a.(*Scalar).inner, b.(*Scalar).inner)
	s.reduce()
	return s
}

// Sub sets s to a - b (mod curveOrder) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner.Sub(a.(*Scalar).inner, b.(*Scalar).inner)
	s.reduce()
	return s
}

// Mul sets s to a * b (mod curveOrder) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Mul(a.(*Scalar).inner, b.(*Scalar).inner)
	s.reduce()
	return s
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Set(a.(*Scalar).inner)
	return s
}

// SetBigInt sets s to v (mod curveOrder) and returns s.
func (s *Scalar) SetBigInt(v *big.Int) group.Scalar {
	s.inner.Set(v)
	s.reduce()
	return s
}

// BigInt returns a copy of the scalar value.
func (s *Scalar) BigInt() *big.Int {
	return new(big.Int).Set(s.inner)
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Cmp(b.(*Scalar).inner) == 0
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.Sign() == 0
}

// Point represents a point in the prime-order subgroup of Baby Jubjub.
// It implements [group.Element] by wrapping gnark-crypto's PointAffine:
// the group operation Mul is point addition and Exp is scalar
// multiplication.
//
// The identity element is (0, 1).
type Point struct {
	inner twistededwards.PointAffine
}

// Mul sets p to a + b and returns p.
func (p *Point) Mul(a, b group.Element) group.Element {
	p.inner.Add(&a.(*Point).inner, &b.(*Point).inner)
	return p
}

// Exp sets p to s * a and returns p.
func (p *Point) Exp(a group.Element, s group.Scalar) group.Element {
	p.inner.ScalarMultiplication(&a.(*Point).inner, s.(*Scalar).inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Element) group.Element {
	p.inner.Set(&a.(*Point).inner)
	return p
}

// Bytes returns the 32-byte compressed point encoding.
func (p *Point) Bytes() []byte {
	bytes := p.inner.Bytes()
	return bytes[:]
}

// SetBytes sets p from a compressed point encoding and returns p.
// Returns an error if the data is not a point of the prime-order subgroup.
func (p *Point) SetBytes(data []byte) (group.Element, error) {
	var pt twistededwards.PointAffine
	if err := pt.Unmarshal(data); err != nil {
		return nil, err
	}
	if !pt.IsOnCurve() {
		return nil, errors.New("bjj: point is not on the curve")
	}
	var check twistededwards.PointAffine
	check.ScalarMultiplication(&pt, curveOrder)
	if !check.IsZero() {
		return nil, errors.New("bjj: point is not in the prime-order subgroup")
	}
	p.inner = pt
	return p, nil
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Element) bool {
	return p.inner.Equal(&b.(*Point).inner)
}

// IsIdentity reports whether p is the identity element (0, 1).
func (p *Point) IsIdentity() bool {
	return p.inner.IsZero()
}

// BJJ implements [group.Group] for the Baby Jubjub curve.
//
// BJJ is a zero-sized type that provides access to Baby Jubjub curve
// operations. Create an instance with &BJJ{} or new(BJJ).
type BJJ struct{}

// Name returns "babyjubjub".
func (g *BJJ) Name() string {
	return "babyjubjub"
}

// NewScalar returns a new scalar initialized to zero.
func (g *BJJ) NewScalar() group.Scalar {
	return newScalar()
}

// NewElement returns a new point initialized to the identity element (0, 1).
func (g *BJJ) NewElement() group.Element {
	var p Point
	p.inner.X.SetZero()
	p.inner.Y.SetOne()
	return &p
}

// Generator returns the standard base point for the Baby Jubjub curve.
func (g *BJJ) Generator() group.Element {
	var p Point
	p.inner = twistededwards.GetEdwardsCurve().Base
	return &p
}

// RandomScalar generates a scalar uniformly distributed in
// [0, curveOrder) using the provided random source.
func (g *BJJ) RandomScalar(r io.Reader) (group.Scalar, error) {
	v, err := group.RandomInt(r, curveOrder)
	if err != nil {
		return nil, err
	}
	return &Scalar{inner: v}, nil
}

// Order returns the order of the Baby Jubjub curve's prime-order subgroup.
func (g *BJJ) Order() *big.Int {
	return new(big.Int).Set(curveOrder)
}

// Equal reports whether other is also the Baby Jubjub group.
func (g *BJJ) Equal(other group.Group) bool {
	_, ok := other.(*BJJ)
	return ok
}
