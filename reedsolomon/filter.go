package reedsolomon

import (
	"github.com/ThatGuyVanquish/ReedSolomon-Sage/gf"
	"github.com/ThatGuyVanquish/ReedSolomon-Sage/poly"
)

// FilterCandidates keeps exactly the candidate polynomials with degree below
// degreeBound and at most maxErrors mismatches against the received values
// over the evaluation domain xs. Pure and deterministic; counting stops early
// once a candidate exceeds the budget.
func FilterCandidates(f gf.Field, candidates []poly.Poly, xs, received []uint64, maxErrors, degreeBound int) []poly.Poly {
	var out []poly.Poly
	for _, p := range candidates {
		if p.Degree() >= degreeBound {
			continue
		}
		mismatches := 0
		for i, x := range xs {
			if p.Eval(f, x) != received[i] {
				mismatches++
				if mismatches > maxErrors {
					break
				}
			}
		}
		if mismatches <= maxErrors {
			out = append(out, p)
		}
	}
	return out
}
