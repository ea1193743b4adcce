// Package share implements the share engine: splitting a secret into n
// shares requiring k to reconstruct, recombining a share set back into
// the secret, and minting an additional share at a new id from an
// existing threshold-sized set, all without ever materializing the
// secret polynomial's coefficients outside of a single Split call.
package share

import (
	"strconv"
	"strings"

	"github.com/mrz1836/gfshare/internal/codec"
	"github.com/mrz1836/gfshare/internal/entropy"
	"github.com/mrz1836/gfshare/internal/gf"
	"github.com/mrz1836/gfshare/internal/poly"
	"github.com/mrz1836/gfshare/internal/sharecodec"
	gfserr "github.com/mrz1836/gfshare/pkg/errors"
)

// Engine ties the field configuration and an active random source
// together to perform split/combine/newShare operations.
type Engine struct {
	cfg *gf.Config
	rng entropy.Source
}

// NewEngine builds a share Engine for the given field and random source.
func NewEngine(cfg *gf.Config, rng entropy.Source) *Engine {
	return &Engine{cfg: cfg, rng: rng}
}

// Split divides secretHex into n public share strings, any k of which
// reconstruct it. padTo optionally left-pads the marked secret to a
// fixed bit length before chunking (useful for hiding secret length).
func (e *Engine) Split(secretHex string, n, k, padTo int) ([]string, error) {
	if k < 2 {
		return nil, gfserr.ErrThresholdTooSmall
	}
	if n < k {
		return nil, gfserr.ErrSharesBelowThreshold
	}
	if n > e.cfg.Max {
		return nil, gfserr.WithDetails(gfserr.ErrSharesExceedMax, map[string]string{
			"n": strconv.Itoa(n), "max": strconv.Itoa(e.cfg.Max),
		})
	}
	if secretHex == "" {
		return nil, gfserr.ErrSecretEmpty
	}

	bin, err := codec.Hex2Bin(secretHex)
	if err != nil {
		return nil, err
	}
	marked := "1" + bin

	if padTo > 0 {
		marked, err = codec.PadLeft(marked, padTo)
		if err != nil {
			return nil, err
		}
	}
	marked, err = codec.PadLeft(marked, e.cfg.Bits)
	if err != nil {
		return nil, err
	}

	chunkValues := make([]int, 0, len(marked)/e.cfg.Bits)
	for i := 0; i < len(marked); i += e.cfg.Bits {
		v, parseErr := strconv.ParseInt(marked[i:i+e.cfg.Bits], 2, 64)
		if parseErr != nil {
			return nil, gfserr.ErrNotHex
		}
		chunkValues = append(chunkValues, int(v))
	}

	yLists := make([][]int, n) // yLists[x-1] accumulates one y-value per chunk, MSB-chunk first
	for i := range yLists {
		yLists[i] = make([]int, 0, len(chunkValues))
	}

	for _, v := range chunkValues {
		coeffs := make([]int, k)
		coeffs[0] = v
		for c := 1; c < k; c++ {
			r, rErr := e.randomFieldElement()
			if rErr != nil {
				return nil, rErr
			}
			coeffs[c] = r
		}

		for x := 1; x <= n; x++ {
			yLists[x-1] = append(yLists[x-1], poly.Horner(e.cfg, coeffs, x))
		}
	}

	shares := make([]string, n)
	for i, ys := range yLists {
		x := i + 1
		var bin strings.Builder
		for _, y := range ys {
			bin.WriteString(toBinary(y, e.cfg.Bits))
		}
		hex := codec.Bin2Hex(bin.String())

		s, cErr := sharecodec.Construct(e.cfg.Bits, x, hex)
		if cErr != nil {
			return nil, cErr
		}
		shares[i] = s
	}

	return shares, nil
}

// Combine reconstructs the secret hex string from a slice of public
// share strings, at least k of which (the original threshold) must be
// present.
func (e *Engine) Combine(shareStrings []string) (string, error) {
	ids, chunkColumns, err := e.decodeShares(shareStrings)
	if err != nil {
		return "", err
	}

	var accumulator strings.Builder
	built := make([]byte, 0, len(chunkColumns)*e.cfg.Bits)
	for j := range chunkColumns {
		val, lErr := poly.Lagrange(e.cfg, 0, ids, chunkColumns[j])
		if lErr != nil {
			return "", lErr
		}
		built = append([]byte(toBinary(val, e.cfg.Bits)), built...)
	}
	accumulator.Write(built)

	return stripMarkerAndHex(accumulator.String())
}

// NewShare mints an additional share at id from an existing share set,
// without reconstructing the secret in the caller's code.
func (e *Engine) NewShare(id int, shareStrings []string) (string, error) {
	ids, chunkColumns, err := e.decodeShares(shareStrings)
	if err != nil {
		return "", err
	}

	built := make([]byte, 0, len(chunkColumns)*e.cfg.Bits)
	for j := range chunkColumns {
		val, lErr := poly.Lagrange(e.cfg, id, ids, chunkColumns[j])
		if lErr != nil {
			return "", lErr
		}
		built = append([]byte(toBinary(val, e.cfg.Bits)), built...)
	}

	hex := codec.Bin2Hex(string(built))
	return sharecodec.Construct(e.cfg.Bits, id, hex)
}

// decodeShares extracts ids and a per-chunk-column matrix of y-values
// (chunkColumns[j][i] is share i's value for chunk j, least-significant
// chunk first) from a slice of public share strings. It validates that
// every share uses the same field width and rejects duplicate ids.
func (e *Engine) decodeShares(shareStrings []string) ([]int, [][]int, error) {
	if len(shareStrings) == 0 {
		return nil, nil, gfserr.ErrNoShares
	}

	ids := make([]int, 0, len(shareStrings))
	seen := make(map[int]bool, len(shareStrings))
	perShareChunks := make([][]int, 0, len(shareStrings))

	bits := e.cfg.Bits
	var numChunks int

	for i, s := range shareStrings {
		comps, err := sharecodec.Extract(s)
		if err != nil {
			return nil, nil, err
		}

		// Every share must match this engine's field width: the field
		// arithmetic below (Lagrange/Div) is performed with e.cfg's
		// exp/log tables, so a share encoded under a different bits
		// would otherwise interpolate silently with the wrong field
		// instead of failing loudly.
		if comps.Bits != bits {
			return nil, nil, gfserr.ErrMixedBits
		}

		if seen[comps.ID] {
			return nil, nil, gfserr.WithDetails(gfserr.ErrDuplicateShareID, map[string]string{"id": strconv.Itoa(comps.ID)})
		}
		seen[comps.ID] = true
		ids = append(ids, comps.ID)

		dataBin, err := codec.Hex2Bin(comps.Data)
		if err != nil {
			return nil, nil, err
		}

		chunks, err := codec.SplitNumStringToIntArray(dataBin, bits, 0)
		if err != nil {
			return nil, nil, err
		}

		if i == 0 {
			numChunks = len(chunks)
		} else if len(chunks) != numChunks {
			return nil, nil, gfserr.ErrMixedBits
		}

		perShareChunks = append(perShareChunks, chunks)
	}

	chunkColumns := make([][]int, numChunks)
	for j := 0; j < numChunks; j++ {
		column := make([]int, len(perShareChunks))
		for i, chunks := range perShareChunks {
			column[i] = chunks[j]
		}
		chunkColumns[j] = column
	}

	return ids, chunkColumns, nil
}

// randomFieldElement draws bits random bits from the active RNG and
// interprets them as an integer coefficient in [0, size).
func (e *Engine) randomFieldElement() (int, error) {
	bin, err := e.rng(e.cfg.Bits)
	if err != nil {
		return 0, gfserr.Wrap(err, "drawing random coefficient")
	}
	v, err := strconv.ParseInt(bin, 2, 64)
	if err != nil {
		return 0, gfserr.ErrRNGNotBinary
	}
	return int(v), nil
}

func toBinary(v, bits int) string {
	s := strconv.FormatInt(int64(v), 2)
	if len(s) >= bits {
		return s[len(s)-bits:]
	}
	return strings.Repeat("0", bits-len(s)) + s
}

// stripMarkerAndHex locates the leading-one marker in bin, discards it
// and everything before it, and converts the remainder to hex.
func stripMarkerAndHex(bin string) (string, error) {
	idx := strings.IndexByte(bin, '1')
	if idx == -1 {
		return "", gfserr.Wrap(gfserr.ErrGeneral, "recovered secret has no leading-one marker")
	}
	return codec.Bin2Hex(bin[idx+1:]), nil
}
