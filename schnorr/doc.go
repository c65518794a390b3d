// Package schnorr implements Schnorr signatures over any prime-order group
// that satisfies [group.Group].
//
// # Key Generation
//
// A private key is a scalar x drawn uniformly from [0, q); the public key is
// y = g^x. Use [Scheme.GenerateKey] for fresh keys and [Scheme.NewPrivateKey]
// or [Scheme.NewPublicKey] to load existing ones.
//
// # Signing
//
// To sign a message M with private key x:
//
//  1. Draw a fresh nonce k uniformly from [0, q).
//  2. Compute the commitment r = g^k.
//  3. Compute the challenge e = H(M ∥ r), hashing the canonical encoding of r
//     and reading the digest as a big-endian integer.
//  4. Compute the response s = k - x·e mod q.
//
// The signature is the pair (e, s).
//
// # Verification
//
// The verifier recomputes rv = g^s · y^e and accepts iff H(M ∥ rv) = e.
// Because g has order q, g^s · y^e = g^(k - xe) · g^(xe) = g^k = r for an
// honest signature.
//
// # Example
//
//	grp, _ := modp.Generate(rand.Reader, 256, 100)
//	s, _ := schnorr.New(grp)
//
//	key, _ := s.GenerateKey(rand.Reader)
//	sig, _ := s.Sign(rand.Reader, key, []byte("hello"))
//
//	valid := s.Verify(key.Public(), []byte("hello"), sig)
//
// [GenerateGroup], [GenerateKeys], [Sign] and [Verify] offer the same
// operations on plain integers over a modp group.
//
// # Hash Functions
//
// The challenge hash is configurable through [Hasher]. SHA-256 is the
// default; SHA3-256, BLAKE2b-512 and the legacy SHA-1 are also provided.
// Signer and verifier must agree on the hasher.
//
// # Security Considerations
//
// Nonces generated in [Scheme.Sign] must never be reused: two signatures
// made with the same k reveal x. Sign draws a new nonce on every call and
// never caches it. Keys and signatures are only meaningful relative to the
// group they were made in; Verify rejects keys from other groups.
package schnorr
