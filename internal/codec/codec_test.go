package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/gfshare/internal/codec"
)

func TestPadLeftNoOpForSmallMultiple(t *testing.T) {
	t.Parallel()

	out, err := codec.PadLeft("abc", 1)
	require.NoError(t, err)
	assert.Equal(t, "abc", out)

	out, err = codec.PadLeft("abc", 0)
	require.NoError(t, err)
	assert.Equal(t, "abc", out)
}

func TestPadLeftPadsToMultiple(t *testing.T) {
	t.Parallel()

	out, err := codec.PadLeft("101", 8)
	require.NoError(t, err)
	assert.Equal(t, "00000101", out)
	assert.Len(t, out, 8)
}

func TestPadLeftRejectsOversizedMultiple(t *testing.T) {
	t.Parallel()

	_, err := codec.PadLeft("abc", 2000)
	require.Error(t, err)
}

func TestHex2BinRoundTripsThroughBin2Hex(t *testing.T) {
	t.Parallel()

	for _, h := range []string{"00", "ff", "abc123", "0badc0de"} {
		bin, err := codec.Hex2Bin(h)
		require.NoError(t, err)
		assert.Equal(t, h, codec.Bin2Hex(bin))
	}
}

func TestHex2BinRejectsNonHex(t *testing.T) {
	t.Parallel()

	_, err := codec.Hex2Bin("not-hex!")
	require.Error(t, err)
}

func TestHex2BinAcceptsUpperCase(t *testing.T) {
	t.Parallel()

	lower, err := codec.Hex2Bin("abc123")
	require.NoError(t, err)
	upper, err := codec.Hex2Bin("ABC123")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func TestBytesToHex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00ff0a", codec.BytesToHex([]byte{0x00, 0xff, 0x0a}))
}

func TestSplitNumStringToIntArrayLeastSignificantFirst(t *testing.T) {
	t.Parallel()

	// 16 bits = 0b1111_0000_1110_0001 split in chunks of 4 from the right.
	chunks, err := codec.SplitNumStringToIntArray("1111000011100001", 4, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 14, 0, 15}, chunks)
}

func TestSplitNumStringToIntArrayPadsFirst(t *testing.T) {
	t.Parallel()

	chunks, err := codec.SplitNumStringToIntArray("101", 4, 8)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 0}, chunks)
}
