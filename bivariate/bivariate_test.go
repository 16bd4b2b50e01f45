package bivariate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ThatGuyVanquish/ReedSolomon-Sage/gf"
	"github.com/ThatGuyVanquish/ReedSolomon-Sage/poly"
)

func field(t *testing.T, q uint64) gf.Field {
	t.Helper()
	f, err := gf.New(q)
	require.NoError(t, err)
	return f
}

// yMinus returns the polynomial y - s(x) as a coefficient map.
func yMinus(f gf.Field, s poly.Poly) map[Term]uint64 {
	m := map[Term]uint64{{X: 0, Y: 1}: 1}
	for i := 0; i <= s.Degree(); i++ {
		m[Term{X: i, Y: 0}] = f.Neg(s.Coeff(i))
	}
	return m
}

// mulInto multiplies two coefficient maps.
func mulInto(f gf.Field, a, b map[Term]uint64) map[Term]uint64 {
	out := make(map[Term]uint64)
	for ta, ca := range a {
		for tb, cb := range b {
			key := Term{X: ta.X + tb.X, Y: ta.Y + tb.Y}
			out[key] = f.Add(out[key], f.Mul(ca, cb))
		}
	}
	return out
}

func TestNewDropsZeroCoefficients(t *testing.T) {
	p := New(map[Term]uint64{{X: 1, Y: 1}: 3, {X: 0, Y: 2}: 0})
	require.Equal(t, uint64(3), p.Coeff(1, 1))
	require.Equal(t, uint64(0), p.Coeff(0, 2))
	require.Equal(t, 1, p.DegX())
	require.Equal(t, 1, p.DegY())
}

func TestEval(t *testing.T) {
	f := field(t, 7)
	// 2 + 3xy + y^2
	p := New(map[Term]uint64{{X: 0, Y: 0}: 2, {X: 1, Y: 1}: 3, {X: 0, Y: 2}: 1})

	// 2 + 3*2*3 + 9 = 29 = 1 mod 7
	require.Equal(t, uint64(1), p.Eval(f, 2, 3))
	require.Equal(t, uint64(2), p.Eval(f, 0, 0), "0^0 monomial must contribute")
}

func TestEvalY(t *testing.T) {
	f := field(t, 97)
	s := poly.New([]uint64{4, 1}) // x + 4
	p := New(yMinus(f, s))

	require.True(t, p.EvalY(f, s).IsZero())

	other := poly.New([]uint64{5, 1})
	require.False(t, p.EvalY(f, other).IsZero())
}

func TestYRootsSingleFactor(t *testing.T) {
	f := field(t, 7)
	s := poly.New([]uint64{1, 2, 3})
	p := New(yMinus(f, s))

	roots := YRoots(f, p, 3)
	require.Len(t, roots, 1)
	require.True(t, roots[0].Equal(s))
}

func TestYRootsTwoFactors(t *testing.T) {
	f := field(t, 97)
	s1 := poly.New([]uint64{1, 2, 3})
	s2 := poly.New([]uint64{5, 0, 1})
	prod := mulInto(f, yMinus(f, s1), yMinus(f, s2))
	p := New(prod)

	roots := YRoots(f, p, 3)
	require.Len(t, roots, 2)

	found := map[string]bool{}
	for _, r := range roots {
		if r.Equal(s1) {
			found["s1"] = true
		}
		if r.Equal(s2) {
			found["s2"] = true
		}
	}
	require.True(t, found["s1"] && found["s2"])
}

// TestYRootsIgnoresIrreducibleCofactor checks that a factor with no
// y - P(x) shape does not produce candidates.
func TestYRootsIgnoresIrreducibleCofactor(t *testing.T) {
	f := field(t, 7)
	s := poly.New([]uint64{2, 5})
	// (y - s(x)) * (y^2 + x): the quadratic cofactor has no y-root of the
	// required shape whenever x is a non-residue somewhere, and any root it
	// does contribute is filtered by verification.
	prod := mulInto(f, yMinus(f, s), map[Term]uint64{{X: 0, Y: 2}: 1, {X: 1, Y: 0}: 1})
	p := New(prod)

	roots := YRoots(f, p, 2)
	require.Len(t, roots, 1)
	require.True(t, roots[0].Equal(s))
}

func TestYRootsDegreeBound(t *testing.T) {
	f := field(t, 7)
	s := poly.New([]uint64{1, 2, 3}) // degree 2
	p := New(yMinus(f, s))

	// k = 2 bounds candidates to degree < 2, so s must not appear.
	require.Empty(t, YRoots(f, p, 2))
}

func TestYRootsZeroPolynomial(t *testing.T) {
	f := field(t, 7)
	require.Empty(t, YRoots(f, Poly{}, 3))
}
