package modp

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"go.uber.org/zap"

	"github.com/f3rmion/schnorr/group"
)

// ErrInvalidParams is returned when group parameters, or the arguments used
// to generate them, violate the Schnorr group invariants.
var ErrInvalidParams = errors.New("modp: invalid group parameters")

// Option configures group generation.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger that receives debug output about the prime
// search. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// PrimalityRounds converts a certainty c (error probability at most 2^-c)
// into the number of Miller-Rabin rounds passed to [big.Int.ProbablyPrime].
// Each round has error at most 1/4.
func PrimalityRounds(certainty int) int {
	n := (certainty + 1) / 2
	if n < 1 {
		n = 1
	}
	return n
}

// Generate produces a fresh Schnorr group whose order q has exactly bits
// bits. Primes are accepted when they pass a probabilistic test with error
// probability at most 2^-certainty.
//
// The search reads all randomness from r, so a deterministic reader yields
// deterministic parameters. Production callers should pass crypto/rand.Reader.
func Generate(r io.Reader, bits, certainty int, opts ...Option) (*Group, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: bit length %d is below 2", ErrInvalidParams, bits)
	}
	if certainty < 1 {
		return nil, fmt.Errorf("%w: certainty %d is below 1", ErrInvalidParams, certainty)
	}
	o := newOptions(opts)
	rounds := PrimalityRounds(certainty)

	var q *big.Int
	for candidates := 1; ; candidates++ {
		c, err := randOdd(r, bits)
		if err != nil {
			return nil, err
		}
		if c.ProbablyPrime(rounds) {
			q = c
			o.logger.Debug("found prime q",
				zap.Int("bits", bits),
				zap.Int("candidates", candidates))
			break
		}
	}
	return deriveFromQ(r, q, rounds, o)
}

// GenerateFromQ derives p and g for a caller-chosen prime q. It fails with
// [ErrInvalidParams] if q is not a prime at the requested certainty.
func GenerateFromQ(r io.Reader, q *big.Int, certainty int, opts ...Option) (*Group, error) {
	if certainty < 1 {
		return nil, fmt.Errorf("%w: certainty %d is below 1", ErrInvalidParams, certainty)
	}
	rounds := PrimalityRounds(certainty)
	if q == nil || q.Cmp(two) < 0 || !q.ProbablyPrime(rounds) {
		return nil, fmt.Errorf("%w: q is not prime", ErrInvalidParams)
	}
	return deriveFromQ(r, new(big.Int).Set(q), rounds, newOptions(opts))
}

// deriveFromQ searches p = q·m + 1 for m = 1, 2, ... and then draws
// g = a^((p-1)/q) for random a in [2, p) until g != 1.
func deriveFromQ(r io.Reader, q *big.Int, rounds int, o *options) (*Group, error) {
	m := new(big.Int)
	p := new(big.Int)
	for {
		m.Add(m, one)
		p.Mul(q, m)
		p.Add(p, one)
		if p.ProbablyPrime(rounds) {
			break
		}
	}
	o.logger.Debug("found prime p",
		zap.Int("bits", p.BitLen()),
		zap.String("multiplier", m.String()))

	span := new(big.Int).Sub(p, two)
	var g *big.Int
	for draws := 1; ; draws++ {
		a, err := group.RandomInt(r, span)
		if err != nil {
			return nil, err
		}
		a.Add(a, two)
		g = a.Exp(a, m, p)
		if g.Cmp(one) != 0 {
			o.logger.Debug("found generator", zap.Int("draws", draws))
			break
		}
	}
	return &Group{p: p, q: q, g: g, cofactor: m}, nil
}

// New builds a group from stored parameters. It checks the structural
// invariants: q >= 2, q divides p-1, 1 < g < p and g^q = 1 (mod p). Since q
// is expected to be prime, a g != 1 with g^q = 1 has order exactly q.
//
// Primality of p and q is not tested here; call [Group.Validate] for
// parameters from an untrusted source.
func New(p, q, g *big.Int) (*Group, error) {
	if p == nil || q == nil || g == nil {
		return nil, fmt.Errorf("%w: missing value", ErrInvalidParams)
	}
	if q.Cmp(two) < 0 || p.Cmp(q) <= 0 {
		return nil, fmt.Errorf("%w: need 2 <= q < p", ErrInvalidParams)
	}
	pm1 := new(big.Int).Sub(p, one)
	cofactor, rem := new(big.Int).QuoRem(pm1, q, new(big.Int))
	if rem.Sign() != 0 {
		return nil, fmt.Errorf("%w: q does not divide p-1", ErrInvalidParams)
	}
	if g.Cmp(one) <= 0 || g.Cmp(p) >= 0 {
		return nil, fmt.Errorf("%w: generator out of range", ErrInvalidParams)
	}
	if new(big.Int).Exp(g, q, p).Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: generator does not have order q", ErrInvalidParams)
	}
	return &Group{
		p:        new(big.Int).Set(p),
		q:        new(big.Int).Set(q),
		g:        new(big.Int).Set(g),
		cofactor: cofactor,
	}, nil
}

// Validate checks that p and q are prime with error probability at most
// 2^-certainty. The remaining invariants already hold for any Group.
func (g *Group) Validate(certainty int) error {
	rounds := PrimalityRounds(certainty)
	if !g.q.ProbablyPrime(rounds) {
		return fmt.Errorf("%w: q is not prime", ErrInvalidParams)
	}
	if !g.p.ProbablyPrime(rounds) {
		return fmt.Errorf("%w: p is not prime", ErrInvalidParams)
	}
	return nil
}
