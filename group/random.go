package group

import (
	"fmt"
	"io"
	"math/big"
)

// RandomInt returns an integer drawn uniformly from [0, max) by rejection
// sampling over masked big-endian bytes read from r. Unlike crypto/rand.Int
// it consumes r deterministically, so seeded readers give reproducible
// output. max must be positive.
func RandomInt(r io.Reader, max *big.Int) (*big.Int, error) {
	if max.Sign() <= 0 {
		return nil, fmt.Errorf("group: RandomInt bound %v is not positive", max)
	}
	bitLen := max.BitLen()
	buf := make([]byte, (bitLen+7)/8)
	mask := byte(0xff >> uint(len(buf)*8-bitLen))
	n := new(big.Int)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
		}
		buf[0] &= mask
		n.SetBytes(buf)
		if n.Cmp(max) < 0 {
			return n, nil
		}
	}
}
