package poly

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ThatGuyVanquish/ReedSolomon-Sage/gf"
)

func field(t *testing.T, q uint64) gf.Field {
	t.Helper()
	f, err := gf.New(q)
	require.NoError(t, err)
	return f
}

func TestNewTrims(t *testing.T) {
	p := New([]uint64{1, 2, 0, 0})
	require.Equal(t, 1, p.Degree())

	z := New([]uint64{0, 0})
	require.True(t, z.IsZero())
	require.Equal(t, -1, z.Degree())
}

func TestEval(t *testing.T) {
	f := field(t, 7)
	// 1 + 2x + 3x^2
	p := New([]uint64{1, 2, 3})

	require.Equal(t, uint64(1), p.Eval(f, 0))
	require.Equal(t, uint64(6), p.Eval(f, 1))
	require.Equal(t, uint64(3), p.Eval(f, 2)) // 17 mod 7
	require.Equal(t, uint64(6), p.Eval(f, 3)) // 34 mod 7
}

func TestArithmetic(t *testing.T) {
	f := field(t, 7)
	p := New([]uint64{1, 2, 3})
	q := New([]uint64{6, 5, 4})

	require.True(t, Add(f, p, q).Equal(New([]uint64{0, 0, 0})), "p + q should vanish termwise")
	require.True(t, Sub(f, Add(f, p, q), q).Equal(p))

	// (1 + x)(1 + 6x) = 1 + 7x + 6x^2 = 1 + 6x^2 over GF(7)
	prod := Mul(f, New([]uint64{1, 1}), New([]uint64{1, 6}))
	require.True(t, prod.Equal(New([]uint64{1, 0, 6})))
}

func TestDivMod(t *testing.T) {
	f := field(t, 97)
	d := New([]uint64{3, 1})       // x + 3
	q := New([]uint64{5, 0, 2, 1}) // x^3 + 2x^2 + 5

	quo, rem := DivMod(f, Mul(f, q, d), d)
	require.True(t, quo.Equal(q))
	require.True(t, rem.IsZero())

	// Now with a remainder.
	num := Add(f, Mul(f, q, d), New([]uint64{11}))
	quo, rem = DivMod(f, num, d)
	require.True(t, quo.Equal(q))
	require.True(t, rem.Equal(New([]uint64{11})))
}

func TestDivModZeroDivisorPanics(t *testing.T) {
	f := field(t, 7)
	require.Panics(t, func() { DivMod(f, New([]uint64{1, 2}), Poly{}) })
}

func TestInterpolate(t *testing.T) {
	f := field(t, 929)
	p := New([]uint64{17, 0, 3, 500})

	xs := []uint64{0, 1, 2, 3}
	ys := make([]uint64, len(xs))
	for i, x := range xs {
		ys[i] = p.Eval(f, x)
	}

	got, err := Interpolate(f, xs, ys)
	require.NoError(t, err)
	require.True(t, got.Equal(p))
}

func TestInterpolateRejectsDuplicates(t *testing.T) {
	f := field(t, 7)
	_, err := Interpolate(f, []uint64{1, 1}, []uint64{2, 3})
	require.Error(t, err)

	_, err = Interpolate(f, []uint64{1, 2}, []uint64{2})
	require.Error(t, err)
}

func TestInterpolateSinglePoint(t *testing.T) {
	f := field(t, 7)
	p, err := Interpolate(f, []uint64{4}, []uint64{5})
	require.NoError(t, err)
	require.True(t, p.Equal(New([]uint64{5})))
}
