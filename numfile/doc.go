// Package numfile reads and writes the plain-text record format used by the
// schnorr command: one non-negative decimal integer per line.
//
// A group file holds p, q and g in that order. A signature file holds the
// signer's public key y followed by e and s.
package numfile
