// Package bivariate implements bivariate polynomials over GF(q) and the
// extraction of their y-roots, the univariate polynomials P with
// (y - P(x)) dividing Q(x,y). Root extraction uses the Roth-Ruckenstein
// algorithm, which yields exactly the factors a Guruswami-Sudan style list
// decoder consumes.
package bivariate

import (
	"github.com/ThatGuyVanquish/ReedSolomon-Sage/gf"
	"github.com/ThatGuyVanquish/ReedSolomon-Sage/poly"
)

// Term indexes a monomial x^X * y^Y.
type Term struct {
	X, Y int
}

// Poly is a bivariate polynomial stored as a sparse coefficient map.
type Poly struct {
	coeffs map[Term]uint64
}

// New builds a polynomial from a coefficient map. Zero coefficients are
// dropped; the map is copied.
func New(coeffs map[Term]uint64) Poly {
	p := Poly{coeffs: make(map[Term]uint64, len(coeffs))}
	for t, c := range coeffs {
		if c != 0 {
			p.coeffs[t] = c
		}
	}
	return p
}

func (p Poly) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coeff returns the coefficient of x^i * y^j.
func (p Poly) Coeff(i, j int) uint64 {
	return p.coeffs[Term{X: i, Y: j}]
}

// DegY returns the y-degree, or -1 for the zero polynomial.
func (p Poly) DegY() int {
	d := -1
	for t := range p.coeffs {
		if t.Y > d {
			d = t.Y
		}
	}
	return d
}

// DegX returns the x-degree, or -1 for the zero polynomial.
func (p Poly) DegX() int {
	d := -1
	for t := range p.coeffs {
		if t.X > d {
			d = t.X
		}
	}
	return d
}

// Eval returns p(x, y).
func (p Poly) Eval(f gf.Field, x, y uint64) uint64 {
	var r uint64
	for t, c := range p.coeffs {
		r = f.Add(r, f.Mul(c, f.Mul(f.Exp(x, uint64(t.X)), f.Exp(y, uint64(t.Y)))))
	}
	return r
}

// EvalY substitutes the univariate polynomial s for y, returning the
// univariate polynomial p(x, s(x)).
func (p Poly) EvalY(f gf.Field, s poly.Poly) poly.Poly {
	// Group by y-degree, then substitute powers of s.
	byY := make(map[int]poly.Poly)
	maxY := 0
	for t, c := range p.coeffs {
		row := byY[t.Y]
		if t.X >= len(row) {
			grown := make(poly.Poly, t.X+1)
			copy(grown, row)
			row = grown
		}
		row[t.X] = c
		byY[t.Y] = row
		if t.Y > maxY {
			maxY = t.Y
		}
	}

	r := poly.Poly{}
	pow := poly.Poly{1}
	for j := 0; j <= maxY; j++ {
		if row, ok := byY[j]; ok {
			r = poly.Add(f, r, poly.Mul(f, poly.New(row), pow))
		}
		pow = poly.Mul(f, pow, s)
	}
	return r
}

// YRoots returns every univariate polynomial P with degree < k such that
// (y - P(x)) divides p, via Roth-Ruckenstein root finding. Candidates are
// verified against p before being returned; the result may be empty.
//
// Roots of the univariate sections involved are found by scanning the whole
// field, so the cost grows linearly with q.
func YRoots(f gf.Field, p Poly, k int) []poly.Poly {
	if p.IsZero() || k < 1 {
		return nil
	}

	var prefixes [][]uint64
	descend(f, p, nil, k, &prefixes)

	var roots []poly.Poly
	seen := make(map[string]struct{})
	for _, c := range prefixes {
		cand := poly.New(c)
		if !p.EvalY(f, cand).IsZero() {
			continue
		}
		key := fingerprint(cand, k)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		roots = append(roots, cand)
	}
	return roots
}

func fingerprint(p poly.Poly, k int) string {
	b := make([]byte, 0, 8*k)
	for i := 0; i < k; i++ {
		c := p.Coeff(i)
		for s := 0; s < 64; s += 8 {
			b = append(b, byte(c>>s))
		}
	}
	return string(b)
}

// descend explores one level of the Roth-Ruckenstein tree: prefix holds the
// coefficients c_0..c_{len-1} chosen so far, and p is the current transformed
// polynomial, whose order-0 section's y-roots are the choices for the next
// coefficient.
func descend(f gf.Field, p Poly, prefix []uint64, k int, out *[][]uint64) {
	if p.IsZero() {
		// Every extension is a root; the all-zero tail is the degree-bounded one.
		*out = append(*out, append([]uint64(nil), prefix...))
		return
	}
	if len(prefix) == k {
		*out = append(*out, append([]uint64(nil), prefix...))
		return
	}

	p = stripX(p)

	// Section at x = 0: a univariate polynomial in y. After stripX it is
	// never identically zero, so it has at most DegY roots.
	section := make(poly.Poly, p.DegY()+1)
	for t, c := range p.coeffs {
		if t.X == 0 {
			section[t.Y] = c
		}
	}
	section = poly.New(section)

	for gamma := uint64(0); gamma < f.Order(); gamma++ {
		if section.Eval(f, gamma) != 0 {
			continue
		}
		next := shiftY(f, p, gamma)
		descend(f, next, append(prefix, gamma), k, out)
	}
}

// stripX divides out the largest power of x dividing every term.
func stripX(p Poly) Poly {
	m := -1
	for t := range p.coeffs {
		if m == -1 || t.X < m {
			m = t.X
		}
	}
	if m <= 0 {
		return p
	}
	out := Poly{coeffs: make(map[Term]uint64, len(p.coeffs))}
	for t, c := range p.coeffs {
		out.coeffs[Term{X: t.X - m, Y: t.Y}] = c
	}
	return out
}

// shiftY substitutes y -> x*y + gamma.
func shiftY(f gf.Field, p Poly, gamma uint64) Poly {
	maxY := p.DegY()
	binom := pascal(f, maxY)

	out := Poly{coeffs: make(map[Term]uint64)}
	for t, c := range p.coeffs {
		// (x*y + gamma)^b contributes C(b,j) * gamma^(b-j) to x^j y^j.
		for j := 0; j <= t.Y; j++ {
			w := f.Mul(c, f.Mul(binom[t.Y][j], f.Exp(gamma, uint64(t.Y-j))))
			if w == 0 {
				continue
			}
			key := Term{X: t.X + j, Y: j}
			s := f.Add(out.coeffs[key], w)
			if s == 0 {
				delete(out.coeffs, key)
			} else {
				out.coeffs[key] = s
			}
		}
	}
	return out
}

// pascal returns binomial coefficients C(i,j) mod q for i, j <= n.
func pascal(f gf.Field, n int) [][]uint64 {
	rows := make([][]uint64, n+1)
	for i := range rows {
		rows[i] = make([]uint64, i+1)
		rows[i][0] = 1 % f.Order()
		rows[i][i] = 1 % f.Order()
		for j := 1; j < i; j++ {
			rows[i][j] = f.Add(rows[i-1][j-1], rows[i-1][j])
		}
	}
	return rows
}
