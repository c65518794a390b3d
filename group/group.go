package group

import (
	"errors"
	"io"
	"math/big"
)

// ErrRandomSource is returned when a random source cannot supply the bytes
// needed to draw a scalar or a group parameter.
var ErrRandomSource = errors.New("group: random source unavailable")

// Scalar represents an exponent of a prime-order group: an integer modulo
// the group order q.
//
// All arithmetic methods use a mutable receiver pattern: they modify
// the receiver, store the result in it, and return it. This allows for
// efficient method chaining while minimizing memory allocations.
//
// Implementations must ensure all operations produce results in the
// valid range [0, order).
type Scalar interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Scalar) Scalar
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Scalar) Scalar
	// Mul sets the receiver to a*b and returns it.
	Mul(a, b Scalar) Scalar
	// Set sets the receiver to a and returns it.
	Set(a Scalar) Scalar
	// SetBigInt sets the receiver to v reduced modulo the order and returns it.
	// Negative values are reduced into [0, order) as well.
	SetBigInt(v *big.Int) Scalar
	// BigInt returns a copy of the scalar as a non-negative integer.
	BigInt() *big.Int
	// Equal reports whether the receiver equals b.
	Equal(b Scalar) bool
	// IsZero reports whether the receiver is zero.
	IsZero() bool
}

// Element represents a member of a prime-order group. The group operation
// is written multiplicatively: Mul combines two elements and Exp raises an
// element to a scalar power. For elliptic-curve groups Mul is point addition
// and Exp is scalar multiplication.
//
// Like [Scalar], all arithmetic methods use a mutable receiver pattern.
type Element interface {
	// Mul sets the receiver to a·b and returns it.
	Mul(a, b Element) Element
	// Exp sets the receiver to a^s and returns it.
	Exp(a Element, s Scalar) Element
	// Set sets the receiver to a and returns it.
	Set(a Element) Element
	// Bytes returns the canonical byte encoding of the element. Signing and
	// verification hash this encoding, so it must be a pure function of
	// the element's value.
	Bytes() []byte
	// SetBytes sets the receiver from its canonical encoding and returns it.
	// Returns an error if data does not encode a member of the prime-order
	// subgroup.
	SetBytes(data []byte) (Element, error)
	// Equal reports whether the receiver equals b.
	Equal(b Element) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
}

// Group defines a prime-order group suitable for Schnorr signatures. It
// provides factory methods for scalars and elements, access to the
// generator and the order, and uniform random scalar generation.
//
// Example usage:
//
//	g, _ := modp.Generate(rand.Reader, 256, 100)
//	x, _ := g.RandomScalar(rand.Reader)
//	y := g.NewElement().Exp(g.Generator(), x)
type Group interface {
	// Name returns a short human-readable identifier for the group.
	Name() string
	// NewScalar returns a new zero scalar.
	NewScalar() Scalar
	// NewElement returns a new identity element.
	NewElement() Element
	// Generator returns the generator of the prime-order subgroup.
	Generator() Element
	// RandomScalar returns a scalar drawn uniformly from [0, order).
	// Failures of r are reported wrapped with [ErrRandomSource].
	RandomScalar(r io.Reader) (Scalar, error)
	// Order returns a copy of the group order q.
	Order() *big.Int
	// Equal reports whether other describes the same group.
	Equal(other Group) bool
}
