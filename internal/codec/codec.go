// Package codec converts between hex strings, binary strings, and
// fixed-width integer chunks of b bits. It has no notion of a field or
// a share; it is pure text/number plumbing used by the share and
// sharecodec packages.
package codec

import (
	"strconv"
	"strings"

	gfserr "github.com/mrz1836/gfshare/pkg/errors"
)

const maxPaddingMultiple = 1024

var hexDigits = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// nibbleToBin maps a hex digit to its 4-bit binary representation.
var nibbleToBin = map[byte]string{
	'0': "0000", '1': "0001", '2': "0010", '3': "0011",
	'4': "0100", '5': "0101", '6': "0110", '7': "0111",
	'8': "1000", '9': "1001", 'a': "1010", 'b': "1011",
	'c': "1100", 'd': "1101", 'e': "1110", 'f': "1111",
	'A': "1010", 'B': "1011", 'C': "1100", 'D': "1101", 'E': "1110", 'F': "1111",
}

// PadLeft left-pads s with '0' until its length is the smallest positive
// multiple of "multiple" that is >= len(s). A multiple of 1 or less
// returns s unchanged. A multiple above 1024 is rejected as a config
// error; the library has no legitimate use for wider padding.
func PadLeft(s string, multiple int) (string, error) {
	if multiple <= 1 {
		return s, nil
	}
	if multiple > maxPaddingMultiple {
		return "", gfserr.WithDetails(gfserr.ErrPaddingMultiple, map[string]string{"multiple": strconv.Itoa(multiple)})
	}

	n := len(s)
	target := ((n + multiple - 1) / multiple) * multiple
	if target == 0 {
		target = multiple
	}
	if target == n {
		return s, nil
	}
	return strings.Repeat("0", target-n) + s, nil
}

// Hex2Bin converts a hex string to its binary expansion, 4 bits per
// character. Both cases are accepted; any non-hex character is rejected.
func Hex2Bin(h string) (string, error) {
	var b strings.Builder
	b.Grow(len(h) * 4)
	for i := 0; i < len(h); i++ {
		bits, ok := nibbleToBin[h[i]]
		if !ok {
			return "", gfserr.WithDetails(gfserr.ErrNotHex, map[string]string{"input": h})
		}
		b.WriteString(bits)
	}
	return b.String(), nil
}

// Bin2Hex left-pads b to a multiple of 4 and groups it into nibbles. Per
// the documented behavior of the source this is ported from, characters
// other than '0'/'1' are not validated; well-formed binary strings
// always round-trip correctly.
func Bin2Hex(bin string) string {
	padded, _ := PadLeft(bin, 4)

	var out strings.Builder
	out.Grow(len(padded) / 4)
	for i := 0; i < len(padded); i += 4 {
		nibble := padded[i : i+4]
		var v byte
		for _, c := range []byte(nibble) {
			v <<= 1
			if c == '1' {
				v |= 1
			}
		}
		out.WriteByte(hexDigits[v&0xF])
	}
	return out.String()
}

// BytesToHex concatenates each byte as two lowercase hex digits, built up
// element by element rather than via a single bulk conversion, so the
// encoding never depends on a host/runtime-specific bulk formatter.
func BytesToHex(data []byte) string {
	var out strings.Builder
	out.Grow(len(data) * 2)
	for _, b := range data {
		out.WriteByte(hexDigits[b>>4])
		out.WriteByte(hexDigits[b&0xF])
	}
	return out.String()
}

// SplitNumStringToIntArray optionally pads bin to padTo bits, then
// consumes it from right to left in chunks of "bits" bits, returning the
// integer value of each chunk with the least-significant chunk first.
func SplitNumStringToIntArray(bin string, bits int, padTo int) ([]int, error) {
	s := bin
	if padTo > 0 {
		padded, err := PadLeft(s, padTo)
		if err != nil {
			return nil, err
		}
		s = padded
	}

	var out []int
	for end := len(s); end > 0; end -= bits {
		start := end - bits
		if start < 0 {
			start = 0
		}
		chunk := s[start:end]
		v, err := strconv.ParseInt(chunk, 2, 64)
		if err != nil {
			return nil, gfserr.WithDetails(gfserr.ErrNotHex, map[string]string{"chunk": chunk})
		}
		out = append(out, int(v))
	}
	return out, nil
}
