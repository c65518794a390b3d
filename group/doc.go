// Package group defines abstract interfaces for the prime-order groups
// that Schnorr signatures are computed in.
//
// This package provides three core interfaces:
//
//   - [Scalar]: exponents, i.e. integers modulo the group order q
//   - [Element]: members of the order-q group, written multiplicatively
//   - [Group]: factory and utility methods for creating scalars and elements
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern for efficiency. Operations
// like Add, Mul, and Exp set the receiver to the result and return it,
// allowing method chaining while minimizing allocations:
//
//	// Compute g^s · y^e
//	gs := grp.NewElement().Exp(grp.Generator(), s)
//	ye := grp.NewElement().Exp(y, e)
//	rv := grp.NewElement().Mul(gs, ye)
//
// Operations that depend on external input (decoding, random sampling)
// return errors rather than panicking.
//
// # Implementations
//
// The modp package implements a classic Schnorr group: the order-q subgroup
// of the integers modulo a prime p. The bjj and k256 packages provide the
// Baby Jubjub and secp256k1 prime-order curve groups.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Scalar arithmetic is performed modulo the group order
//   - Random scalars are uniform and drawn from the supplied source
//   - SetBytes rejects values outside the prime-order subgroup
//   - Mixing scalars or elements of different groups is a programming error
package group
