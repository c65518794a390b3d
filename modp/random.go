package modp

import (
	"fmt"
	"io"
	"math/big"

	"github.com/f3rmion/schnorr/group"
)

// randOdd returns a random odd integer of exactly bits bits.
func randOdd(r io.Reader, bits int) (*big.Int, error) {
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", group.ErrRandomSource, err)
	}
	excess := uint(len(buf)*8 - bits)
	buf[0] &= byte(0xff >> excess)
	buf[0] |= byte(0x80 >> excess)
	buf[len(buf)-1] |= 1
	return new(big.Int).SetBytes(buf), nil
}
