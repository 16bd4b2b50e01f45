package gf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_RejectsComposite(t *testing.T) {
	for _, q := range []uint64{0, 1, 4, 6, 91, 929 * 929} {
		_, err := New(q)
		require.Error(t, err, "order %d", q)
	}
	for _, q := range []uint64{2, 7, 97, 929, 65537} {
		f, err := New(q)
		require.NoError(t, err)
		require.Equal(t, q, f.Order())
	}
}

// TestFieldAxioms spot-checks the field laws over every pair of elements in a
// small field.
func TestFieldAxioms(t *testing.T) {
	f, err := New(7)
	require.NoError(t, err)

	for a := uint64(0); a < 7; a++ {
		for b := uint64(0); b < 7; b++ {
			require.Equal(t, f.Add(a, b), f.Add(b, a))
			require.Equal(t, f.Mul(a, b), f.Mul(b, a))
			require.Equal(t, a, f.Sub(f.Add(a, b), b))
			require.Equal(t, a, f.Add(f.Sub(a, b), b))
			if b != 0 {
				require.Equal(t, a, f.Mul(f.Div(a, b), b))
			}
		}
		require.Equal(t, uint64(0), f.Add(a, f.Neg(a)))
		if a != 0 {
			require.Equal(t, uint64(1), f.Mul(a, f.Inv(a)))
		}
	}
}

func TestExp(t *testing.T) {
	f, err := New(97)
	require.NoError(t, err)

	require.Equal(t, uint64(1), f.Exp(5, 0))
	require.Equal(t, uint64(1), f.Exp(0, 0), "0^0 must be 1")
	require.Equal(t, uint64(0), f.Exp(0, 3))

	// a^(q-1) = 1 for a != 0 (Fermat).
	for a := uint64(1); a < 97; a++ {
		require.Equal(t, uint64(1), f.Exp(a, 96))
	}
}

func TestReduce(t *testing.T) {
	f, err := New(7)
	require.NoError(t, err)

	require.Equal(t, uint64(3), f.Reduce(10))
	require.Equal(t, uint64(4), f.Reduce(-3))
	require.Equal(t, uint64(0), f.Reduce(-7))
}

func TestElement(t *testing.T) {
	f, err := New(7)
	require.NoError(t, err)

	v, err := f.Element(6)
	require.NoError(t, err)
	require.Equal(t, uint64(6), v)

	_, err = f.Element(7)
	require.Error(t, err)
}

func TestInvZeroPanics(t *testing.T) {
	f, err := New(7)
	require.NoError(t, err)
	require.Panics(t, func() { f.Inv(0) })
}

// TestLargePrime exercises the 128-bit multiply path with operands close to
// the modulus.
func TestLargePrime(t *testing.T) {
	const q = 2305843009213693951 // 2^61 - 1
	f, err := New(q)
	require.NoError(t, err)

	a := uint64(q - 2)
	b := uint64(q - 3)
	// (q-2)(q-3) = q^2 - 5q + 6 = 6 mod q
	require.Equal(t, uint64(6), f.Mul(a, b))
	require.Equal(t, uint64(1), f.Mul(a, f.Inv(a)))
	require.Equal(t, uint64(q-5), f.Add(a, b))
}
