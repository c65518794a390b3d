// Package session provides a single-use signing flow on top of the
// [schnorr] package. It mirrors the classic command-line workflow: every
// run creates a fresh key pair, signs one message, and publishes the
// public key next to the signature.
//
// The session package is for callers who do not manage long-lived keys.
// For full control over keys and nonces, use the [schnorr] package
// directly.
//
// # Signing
//
//	s, _ := schnorr.New(grp)
//
//	signer, err := session.NewSigner(rand.Reader, s)
//	if err != nil {
//		return err
//	}
//
//	env, err := signer.Sign(rand.Reader, message)
//	if err != nil {
//		return err
//	}
//
//	// Publish env.PublicKey and env.Signature.
//
// A Signer is designed to be used exactly once. Calling Sign a second time
// returns [ErrSignerUsed]. The private scalar is cleared after the first
// call, whether or not it succeeded.
//
// # Verification
//
//	ok := env.Verify(s, message)
//
// The verifier needs the same group and hasher as the signer.
package session
