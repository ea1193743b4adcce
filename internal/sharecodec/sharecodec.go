// Package sharecodec encodes and decodes the public share string format:
// a single base-36 bits tag, followed by a fixed-width hex share id,
// followed by the share's hex data payload.
package sharecodec

import (
	"strconv"
	"strings"

	"github.com/mrz1836/gfshare/internal/gf"
	gfserr "github.com/mrz1836/gfshare/pkg/errors"
)

// idHexWidth returns ceil(log16(max)), the number of hex digits needed
// to represent every id in [1, max].
func idHexWidth(max int) int {
	width := 0
	for v := max; v > 0; v >>= 4 {
		width++
	}
	if width == 0 {
		width = 1
	}
	return width
}

// Construct builds the public share string for the given field width,
// share id, and already-encoded data hex.
func Construct(bits, id int, dataHex string) (string, error) {
	max := (1 << uint(bits)) - 1
	if id < 1 || id > max {
		return "", gfserr.WithDetails(gfserr.ErrInvalidShareID, map[string]string{
			"id": strconv.Itoa(id), "max": strconv.Itoa(max),
		})
	}

	tag := strconv.FormatInt(int64(bits), gf.Radix)

	width := idHexWidth(max)
	idHex := strconv.FormatInt(int64(id), 16)
	if len(idHex) < width {
		idHex = strings.Repeat("0", width-len(idHex)) + idHex
	}

	return tag + idHex + dataHex, nil
}

// Components is the decoded form of a public share string.
type Components struct {
	Bits int
	ID   int
	Data string // hex
}

// Extract parses a public share string into its components, validating
// the bits tag, the share id range, and that the data portion is hex.
func Extract(share string) (Components, error) {
	if len(share) < 1 {
		return Components{}, gfserr.ErrShareTooShort
	}

	bits, err := strconv.ParseInt(share[0:1], gf.Radix, 64)
	if err != nil || bits < gf.MinBits || bits > gf.MaxBits {
		return Components{}, gfserr.WithDetails(gfserr.ErrShareBitsOutOfRange, map[string]string{"tag": share[0:1]})
	}

	max := (1 << uint(bits)) - 1
	width := idHexWidth(max)

	if len(share) < 1+width {
		return Components{}, gfserr.ErrShareTooShort
	}

	idHex := share[1 : 1+width]
	id64, err := strconv.ParseInt(idHex, 16, 64)
	if err != nil {
		return Components{}, gfserr.WithDetails(gfserr.ErrShareIDOutOfRange, map[string]string{"id": idHex})
	}
	id := int(id64)
	if id < 1 || id > max {
		return Components{}, gfserr.WithDetails(gfserr.ErrShareIDOutOfRange, map[string]string{"id": idHex})
	}

	data := share[1+width:]
	for i := 0; i < len(data); i++ {
		if !isHexChar(data[i]) {
			return Components{}, gfserr.WithDetails(gfserr.ErrShareDataNotHex, map[string]string{"data": data})
		}
	}

	return Components{Bits: int(bits), ID: id, Data: data}, nil
}

func isHexChar(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
