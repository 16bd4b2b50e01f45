// Package poly implements univariate polynomials over GF(q) in coefficient
// form: coefficient i is the degree-i term. Polynomials are kept normalized,
// with no trailing zero coefficients; the zero polynomial is the empty slice.
package poly

import (
	"golang.org/x/xerrors"

	"github.com/ThatGuyVanquish/ReedSolomon-Sage/gf"
)

type Poly []uint64

// New returns a normalized polynomial with the given coefficients.
func New(coeffs []uint64) Poly {
	p := make(Poly, len(coeffs))
	copy(p, coeffs)
	return p.trim()
}

func (p Poly) trim() Poly {
	i := len(p)
	for i > 0 && p[i-1] == 0 {
		i--
	}
	return p[:i]
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	return len(p) - 1
}

func (p Poly) IsZero() bool {
	return len(p) == 0
}

// Coeff returns the degree-i coefficient, 0 for i beyond the degree.
func (p Poly) Coeff(i int) uint64 {
	if i < 0 || i >= len(p) {
		return 0
	}
	return p[i]
}

func (p Poly) Equal(q Poly) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Eval returns p(x) by Horner's rule.
func (p Poly) Eval(f gf.Field, x uint64) uint64 {
	var r uint64
	for i := len(p) - 1; i >= 0; i-- {
		r = f.Add(f.Mul(r, x), p[i])
	}
	return r
}

func Add(f gf.Field, p, q Poly) Poly {
	if len(q) > len(p) {
		p, q = q, p
	}
	r := make(Poly, len(p))
	copy(r, p)
	for i := range q {
		r[i] = f.Add(r[i], q[i])
	}
	return r.trim()
}

func Sub(f gf.Field, p, q Poly) Poly {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	r := make(Poly, n)
	for i := range r {
		r[i] = f.Sub(p.Coeff(i), q.Coeff(i))
	}
	return r.trim()
}

func Mul(f gf.Field, p, q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{}
	}
	r := make(Poly, len(p)+len(q)-1)
	for i := range p {
		if p[i] == 0 {
			continue
		}
		for j := range q {
			r[i+j] = f.Add(r[i+j], f.Mul(p[i], q[j]))
		}
	}
	return r.trim()
}

// Scale returns c * p.
func Scale(f gf.Field, c uint64, p Poly) Poly {
	if c == 0 {
		return Poly{}
	}
	r := make(Poly, len(p))
	for i := range p {
		r[i] = f.Mul(c, p[i])
	}
	return r.trim()
}

// DivMod returns quotient and remainder of p / d. Panics on a zero divisor.
func DivMod(f gf.Field, p, d Poly) (Poly, Poly) {
	if d.IsZero() {
		panic("poly: division by zero polynomial")
	}
	rem := make(Poly, len(p))
	copy(rem, p)
	rem = rem.trim()
	if rem.Degree() < d.Degree() {
		return Poly{}, rem
	}

	quo := make(Poly, rem.Degree()-d.Degree()+1)
	leadInv := f.Inv(d[len(d)-1])
	for rem.Degree() >= d.Degree() {
		shift := rem.Degree() - d.Degree()
		c := f.Mul(rem[len(rem)-1], leadInv)
		quo[shift] = c
		for i := range d {
			rem[shift+i] = f.Sub(rem[shift+i], f.Mul(c, d[i]))
		}
		rem = rem.trim()
	}
	return Poly(quo).trim(), rem
}

// Interpolate returns the unique polynomial of degree < len(xs) through the
// points (xs[i], ys[i]), in Lagrange form. The xs must be distinct.
func Interpolate(f gf.Field, xs, ys []uint64) (Poly, error) {
	if len(xs) != len(ys) {
		return nil, xerrors.Errorf("interpolate: %d x values against %d y values", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return Poly{}, nil
	}
	seen := make(map[uint64]struct{}, len(xs))
	for _, x := range xs {
		if _, dup := seen[x]; dup {
			return nil, xerrors.Errorf("interpolate: duplicate x value %d", x)
		}
		seen[x] = struct{}{}
	}

	r := Poly{}
	for i := range xs {
		if ys[i] == 0 {
			continue
		}
		// Lagrange basis polynomial l_i, scaled by ys[i].
		li := Poly{1}
		denom := uint64(1)
		for j := range xs {
			if j == i {
				continue
			}
			li = Mul(f, li, Poly{f.Neg(xs[j]), 1})
			denom = f.Mul(denom, f.Sub(xs[i], xs[j]))
		}
		r = Add(f, r, Scale(f, f.Div(ys[i], denom), li))
	}
	return r, nil
}
