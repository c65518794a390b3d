// Package testrand provides seeded, reproducible byte streams for tests.
// The streams are ChaCha20 keystreams and must never be used outside tests.
package testrand

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/chacha20"
)

type reader struct {
	c *chacha20.Cipher
}

// New returns a reader whose output is fully determined by seed.
func New(seed string) io.Reader {
	key := sha256.Sum256([]byte(seed))
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		// Key and nonce sizes are fixed above.
		panic(err)
	}
	return &reader{c: c}
}

func (r *reader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.c.XORKeyStream(p, p)
	return len(p), nil
}
