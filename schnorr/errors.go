package schnorr

import "errors"

var (
	// ErrInvalidPrivateKey is returned for a missing private key or one
	// outside [0, q).
	ErrInvalidPrivateKey = errors.New("schnorr: private key out of range")

	// ErrInvalidPublicKey is returned when a public key does not decode to
	// a member of the scheme's group.
	ErrInvalidPublicKey = errors.New("schnorr: public key is not a group element")

	// ErrGroupMismatch is returned when a key created under one group is
	// used with a Scheme over another.
	ErrGroupMismatch = errors.New("schnorr: key belongs to a different group")

	// ErrUnknownHash is returned by HasherByName for unsupported names.
	ErrUnknownHash = errors.New("schnorr: unknown hash algorithm")
)
