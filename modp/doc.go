// Package modp implements Schnorr groups: prime-order subgroups of the
// multiplicative group of integers modulo a prime.
//
// A Schnorr group is described by three integers (p, q, g) where p and q
// are prime, q divides p-1, and g generates the subgroup of order q. The
// [Group] type holds such a triple and implements [group.Group], so it can
// be used directly with the schnorr package.
//
// # Generation
//
// [Generate] searches for fresh parameters:
//
//  1. q is a random odd integer of the requested bit length that passes a
//     probabilistic primality test.
//  2. p = q·m + 1 for m = 1, 2, 3, ... until p is prime, so p ≡ 1 (mod q)
//     by construction.
//  3. g = a^((p-1)/q) mod p for random a in [2, p), retried while g = 1.
//
// Every random draw comes from the io.Reader supplied by the caller:
//
//	grp, err := modp.Generate(rand.Reader, 256, 100)
//
// # Stored parameters
//
// Parameters read back from storage go through [New], which checks the
// divisibility and generator-order invariants, and optionally
// [Group.Validate], which tests p and q for primality.
//
// # Encoding
//
// Elements encode as the minimal big-endian bytes of their integer value.
// This is the encoding hashed into Schnorr challenges.
package modp
