// Package poly implements the polynomial engine used by the share
// engine: Horner evaluation to build a share's y-value, and Lagrange
// interpolation to recover a chunk either at x=0 (reconstruction) or at
// an arbitrary x (minting a new share), all arithmetic performed in the
// field supplied by the caller.
package poly

import "github.com/mrz1836/gfshare/internal/gf"

// Horner evaluates the polynomial described by coeffs at the field
// element x, using Horner's rule starting from the highest-degree term.
//
// coeffs is in ascending-degree order: coeffs[0] is the constant term
// (the secret chunk for a split polynomial), coeffs[len(coeffs)-1] is
// the highest-degree coefficient. This is the natural order the share
// engine builds the coefficient list in ([v, r_1, ..., r_{k-1}]); Horner
// itself walks it from the tail.
func Horner(cfg *gf.Config, coeffs []int, x int) int {
	if len(coeffs) == 0 {
		return 0
	}

	val := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		val = cfg.Add(cfg.Mul(val, x), coeffs[i])
	}
	return val
}

// Lagrange interpolates the unique polynomial passing through the points
// (xs[i], ys[i]) and evaluates it at "at". xs must be pairwise distinct
// and non-zero; callers are responsible for that precondition (the
// share engine rejects duplicate share ids before this is ever called).
func Lagrange(cfg *gf.Config, at int, xs, ys []int) (int, error) {
	result := 0

	for i := range xs {
		if ys[i] == 0 {
			continue
		}

		term := ys[i]
		for j := range xs {
			if i == j {
				continue
			}

			numerator := cfg.Add(at, xs[j])
			denominator := cfg.Add(xs[i], xs[j])

			factor, err := cfg.Div(numerator, denominator)
			if err != nil {
				return 0, err
			}
			term = cfg.Mul(term, factor)
		}
		result = cfg.Add(result, term)
	}

	return result, nil
}
