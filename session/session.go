package session

import (
	"errors"
	"io"
	"sync"

	"github.com/f3rmion/schnorr/schnorr"
)

// ErrSignerUsed is returned when Sign is called on a consumed Signer.
var ErrSignerUsed = errors.New("session: signer already used")

// Envelope is the output of a signing session: the signer's encoded public
// key and the signature it produced.
type Envelope struct {
	PublicKey []byte
	Signature *schnorr.Signature
}

// Signer holds an ephemeral key pair that can sign exactly one message.
// Create instances using [NewSigner].
type Signer struct {
	mu     sync.Mutex
	scheme *schnorr.Scheme
	key    *schnorr.PrivateKey
	public []byte
	used   bool
}

// NewSigner generates a fresh key pair over the scheme's group.
func NewSigner(rng io.Reader, scheme *schnorr.Scheme) (*Signer, error) {
	if scheme == nil {
		return nil, errors.New("session: scheme is required")
	}

	key, err := scheme.GenerateKey(rng)
	if err != nil {
		return nil, err
	}

	return &Signer{
		scheme: scheme,
		key:    key,
		public: key.Bytes(),
	}, nil
}

// PublicKey returns the canonical encoding of the signer's public key.
func (s *Signer) PublicKey() []byte {
	out := make([]byte, len(s.public))
	copy(out, s.public)
	return out
}

// Sign signs message and consumes the signer.
//
// The signer is marked used before signing starts, so a failed call cannot
// be retried with the same key. The private scalar is zeroed on return.
func (s *Signer) Sign(rng io.Reader, message []byte) (*Envelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.used {
		return nil, ErrSignerUsed
	}
	s.used = true
	defer s.zeroKey()

	sig, err := s.scheme.Sign(rng, s.key, message)
	if err != nil {
		return nil, err
	}

	return &Envelope{
		PublicKey: s.PublicKey(),
		Signature: sig,
	}, nil
}

func (s *Signer) zeroKey() {
	if s.key == nil {
		return
	}
	s.key.X.Set(s.scheme.Group().NewScalar())
	s.key = nil
}

// Used reports whether Sign has been called.
func (s *Signer) Used() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.used
}

// Verify reports whether the envelope's signature over message is valid
// under its embedded public key. A public key that does not decode in the
// scheme's group never verifies.
func (e *Envelope) Verify(scheme *schnorr.Scheme, message []byte) bool {
	if e == nil || scheme == nil {
		return false
	}
	pub, err := scheme.NewPublicKey(e.PublicKey)
	if err != nil {
		return false
	}
	return scheme.Verify(pub, message, e.Signature)
}
