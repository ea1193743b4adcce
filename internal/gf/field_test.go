package gf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/gfshare/internal/gf"
)

func TestNewRejectsOutOfRangeBits(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{0, 1, 2, 21, 32, -5} {
		_, err := gf.New(bits)
		require.Error(t, err)
	}
}

func TestNewBuildsExpectedSize(t *testing.T) {
	t.Parallel()

	for bits := gf.MinBits; bits <= gf.MaxBits; bits++ {
		cfg, err := gf.New(bits)
		require.NoError(t, err)
		assert.Equal(t, 1<<uint(bits), cfg.Size)
		assert.Equal(t, cfg.Size-1, cfg.Max)
		assert.Equal(t, gf.Radix, cfg.Radix)
	}
}

func TestAddIsXOR(t *testing.T) {
	t.Parallel()

	cfg, err := gf.New(8)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Add(5, 5))
	assert.Equal(t, 6, cfg.Add(5, 3))
}

func TestMulIdentityAndZero(t *testing.T) {
	t.Parallel()

	cfg, err := gf.New(8)
	require.NoError(t, err)

	for a := 1; a <= cfg.Max; a++ {
		assert.Equal(t, a, cfg.Mul(a, 1), "a*1 should be a")
		assert.Equal(t, 0, cfg.Mul(a, 0), "a*0 should be 0")
	}
}

func TestMulDivRoundTrip(t *testing.T) {
	t.Parallel()

	cfg, err := gf.New(8)
	require.NoError(t, err)

	for a := 1; a <= cfg.Max; a++ {
		for b := 1; b <= cfg.Max; b++ {
			product := cfg.Mul(a, b)
			quotient, divErr := cfg.Div(product, b)
			require.NoError(t, divErr)
			assert.Equal(t, a, quotient, "a*b/b should be a")
		}
	}
}

func TestDivByZeroErrors(t *testing.T) {
	t.Parallel()

	cfg, err := gf.New(8)
	require.NoError(t, err)

	_, divErr := cfg.Div(5, 0)
	require.Error(t, divErr)
}

func TestMulCommutative(t *testing.T) {
	t.Parallel()

	cfg, err := gf.New(6)
	require.NoError(t, err)

	for a := 0; a <= cfg.Max; a++ {
		for b := 0; b <= cfg.Max; b++ {
			assert.Equal(t, cfg.Mul(a, b), cfg.Mul(b, a))
		}
	}
}

func TestExpsPeriodicOverWholeDoubledTable(t *testing.T) {
	t.Parallel()

	cfg, err := gf.New(4)
	require.NoError(t, err)

	period := cfg.Size - 1
	for i := 0; i+period < 2*cfg.Size; i++ {
		assert.Equal(t, cfg.Exp(i), cfg.Exp(i+period), "exps must repeat with period Size-1 at index %d", i)
	}
}

func TestEveryNonZeroElementHasDistinctLog(t *testing.T) {
	t.Parallel()

	cfg, err := gf.New(5)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for a := 1; a <= cfg.Max; a++ {
		l := cfg.Log(a)
		assert.False(t, seen[l], "log %d repeated", l)
		seen[l] = true
	}
	assert.Len(t, seen, cfg.Max)
}
