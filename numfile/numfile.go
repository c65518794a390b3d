package numfile

import (
	"bufio"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/f3rmion/schnorr/modp"
	"github.com/f3rmion/schnorr/schnorr"
)

// ErrMalformed is returned for input that is not one non-negative decimal
// integer per line, or that holds the wrong number of integers.
var ErrMalformed = errors.New("numfile: malformed input")

// WriteInts writes each integer in decimal on its own line.
func WriteInts(w io.Writer, ints ...*big.Int) error {
	bw := bufio.NewWriter(w)
	for i, v := range ints {
		if v == nil || v.Sign() < 0 {
			return errors.Wrapf(ErrMalformed, "value %d is not a non-negative integer", i)
		}
		if _, err := bw.WriteString(v.String() + "\n"); err != nil {
			return errors.Wrap(err, "numfile: write")
		}
	}
	return errors.Wrap(bw.Flush(), "numfile: flush")
}

// ReadInts parses one decimal integer per line. Blank lines are skipped and
// surrounding whitespace is ignored.
func ReadInts(r io.Reader) ([]*big.Int, error) {
	var ints []*big.Int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if text[0] == '+' || text[0] == '-' {
			return nil, errors.Wrapf(ErrMalformed, "line %d: %q", line, text)
		}
		v, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return nil, errors.Wrapf(ErrMalformed, "line %d: %q", line, text)
		}
		ints = append(ints, v)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "numfile: read")
	}
	return ints, nil
}

func writeFile(path string, ints ...*big.Int) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrapf(err, "numfile: create %s", path)
	}
	if err := WriteInts(f, ints...); err != nil {
		f.Close()
		return errors.Wrapf(err, "numfile: %s", path)
	}
	return errors.Wrapf(f.Close(), "numfile: close %s", path)
}

func readFile(path string, want int) ([]*big.Int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "numfile: open %s", path)
	}
	defer f.Close()

	ints, err := ReadInts(f)
	if err != nil {
		return nil, errors.Wrapf(err, "numfile: %s", path)
	}
	if len(ints) != want {
		return nil, errors.Wrapf(ErrMalformed, "%s: got %d integers, want %d", path, len(ints), want)
	}
	return ints, nil
}

// SaveGroup writes p, q and g to path.
func SaveGroup(path string, g *modp.Group) error {
	if g == nil {
		return errors.New("numfile: group is required")
	}
	return writeFile(path, g.P(), g.Q(), g.G())
}

// LoadGroup reads p, q and g from path and checks their structure with
// [modp.New]. Primality is not re-tested; call Validate for that.
func LoadGroup(path string) (*modp.Group, error) {
	ints, err := readFile(path, 3)
	if err != nil {
		return nil, err
	}
	g, err := modp.New(ints[0], ints[1], ints[2])
	if err != nil {
		return nil, errors.Wrapf(err, "numfile: %s", path)
	}
	return g, nil
}

// SaveSignature writes the public key y followed by the signature's e and s.
func SaveSignature(path string, y *big.Int, sig *schnorr.Signature) error {
	if sig == nil {
		return errors.New("numfile: signature is required")
	}
	return writeFile(path, y, sig.E, sig.S)
}

// LoadSignature reads y, e and s from path.
func LoadSignature(path string) (*big.Int, *schnorr.Signature, error) {
	ints, err := readFile(path, 3)
	if err != nil {
		return nil, nil, err
	}
	return ints[0], &schnorr.Signature{E: ints[1], S: ints[2]}, nil
}
