package reedsolomon

import (
	"math"

	"golang.org/x/xerrors"

	"github.com/ThatGuyVanquish/ReedSolomon-Sage/bivariate"
	"github.com/ThatGuyVanquish/ReedSolomon-Sage/matrix"
)

// DecodeList returns every message within t errors of the received word that
// the interpolation degree D = floor(sqrt(2kn)) can reach: it interpolates a
// bivariate polynomial Q(x,y) vanishing on all received points, extracts its
// y-roots and keeps those passing the degree and error-count filters. The
// list is unordered and may legitimately be empty, reported as
// ErrNoCandidates; degenerate interpolation is reported as
// ErrDegenerateInterpolation. Both are recoverable "no decode" outcomes.
func (c *Codec) DecodeList(received []uint64, t int) ([][]uint64, error) {
	if err := c.checkWord(received, c.n); err != nil {
		return nil, err
	}
	if err := c.checkErrorBound(t); err != nil {
		return nil, err
	}
	f := c.field

	d := int(math.Sqrt(float64(2 * c.k * c.n)))
	monos := monomials(d, c.k)
	if len(monos) == 0 {
		return nil, xerrors.Errorf("interpolation degree %d: %w", d, ErrDegenerateInterpolation)
	}

	// One constraint per received point: Q(i, received[i]) = 0, with the
	// monomial values i^a * received[i]^b as coefficients (0^0 = 1, so a
	// received 0 still contributes to the y^0 block).
	rows := make([][]uint64, c.n)
	for i := 0; i < c.n; i++ {
		row := make([]uint64, len(monos))
		for idx, m := range monos {
			row[idx] = f.Mul(f.Exp(uint64(i), uint64(m.a)), f.Exp(received[i], uint64(m.b)))
		}
		rows[i] = row
	}

	basis := matrix.NullSpace(f, rows)
	if len(basis) == 0 {
		return nil, xerrors.Errorf("interpolation degree %d: %w", d, ErrDegenerateInterpolation)
	}
	coeffs := make(map[bivariate.Term]uint64, len(monos))
	for idx, m := range monos {
		coeffs[bivariate.Term{X: m.a, Y: m.b}] = basis[0][idx]
	}
	q := bivariate.New(coeffs)
	if q.IsZero() {
		return nil, xerrors.Errorf("interpolation degree %d: %w", d, ErrDegenerateInterpolation)
	}

	candidates := FilterCandidates(f, bivariate.YRoots(f, q, c.k), c.points(c.n), received, t, c.k)
	if len(candidates) == 0 {
		return nil, xerrors.Errorf("declared bound %d: %w", t, ErrNoCandidates)
	}

	msgs := make([][]uint64, len(candidates))
	for i, p := range candidates {
		msg := make([]uint64, c.k)
		for j := range msg {
			msg[j] = p.Eval(f, uint64(j))
		}
		msgs[i] = msg
	}
	return msgs, nil
}

type monomial struct {
	a, b int
}

// monomials enumerates the x^a y^b with b <= d/k and a <= d - k*b, the
// (1, k-1)-weighted degree-d monomial set.
func monomials(d, k int) []monomial {
	var out []monomial
	for b := 0; b <= d/k; b++ {
		for a := 0; a <= d-k*b; a++ {
			out = append(out, monomial{a: a, b: b})
		}
	}
	return out
}
