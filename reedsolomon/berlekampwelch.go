package reedsolomon

import (
	"golang.org/x/xerrors"

	"github.com/ThatGuyVanquish/ReedSolomon-Sage/matrix"
	"github.com/ThatGuyVanquish/ReedSolomon-Sage/poly"
)

// bwSystem is the Berlekamp-Welch linear system for a received word and a
// declared error bound t. The unknown vector has two named blocks: the low
// coefficients e_0..e_{t-1} of the error locator E (its degree-t coefficient
// is fixed to 1 and absorbed into the right-hand side), followed by the
// coefficients q_0..q_{n-1-t} of the numerator Q. Row i enforces
// Q(i) = received[i] * E(i).
type bwSystem struct {
	a       [][]uint64
	b       []uint64
	locator int // width of the E block
}

func (c *Codec) buildSystem(received []uint64, t int) bwSystem {
	f := c.field
	qCols := c.n - t // deg Q <= n-1-t

	sys := bwSystem{
		a:       make([][]uint64, c.n),
		b:       make([]uint64, c.n),
		locator: t,
	}
	for i := 0; i < c.n; i++ {
		x := uint64(i)
		row := make([]uint64, t+qCols)
		for j := 0; j < t; j++ {
			row[j] = f.Mul(received[i], f.Exp(x, uint64(j)))
		}
		for m := 0; m < qCols; m++ {
			row[t+m] = f.Neg(f.Exp(x, uint64(m)))
		}
		sys.a[i] = row
		sys.b[i] = f.Neg(f.Mul(received[i], f.Exp(x, uint64(t))))
	}
	return sys
}

// split reads the two unknown blocks back out of a solution vector,
// reattaching E's fixed leading coefficient.
func (sys bwSystem) split(u []uint64) (locator, numerator poly.Poly) {
	eCoeffs := make([]uint64, sys.locator+1)
	copy(eCoeffs, u[:sys.locator])
	eCoeffs[sys.locator] = 1
	return poly.New(eCoeffs), poly.New(u[sys.locator:])
}

// DecodeUnique recovers the message from a received word carrying at most t
// symbol errors, using the Berlekamp-Welch algorithm. Recovery is exact
// whenever the true error count is <= t and t <= (n-k)/2. The bound t is
// trusted (see RSDecoder); beyond the unique-decoding radius the decoder
// fails cleanly or, rarely, returns a wrong message.
func (c *Codec) DecodeUnique(received []uint64, t int) ([]uint64, error) {
	if err := c.checkWord(received, c.n); err != nil {
		return nil, err
	}
	if err := c.checkErrorBound(t); err != nil {
		return nil, err
	}
	f := c.field

	sys := c.buildSystem(received, t)
	u, err := matrix.Solve(f, sys.a, sys.b)
	if err != nil {
		return nil, xerrors.Errorf("declared bound %d: %w", t, ErrUnsolvable)
	}
	locator, numerator := sys.split(u)

	if _, rem := poly.DivMod(f, numerator, locator); !rem.IsZero() {
		return nil, xerrors.Errorf("declared bound %d: %w", t, ErrInconsistentFactorization)
	}

	// Roots of the locator among 0..n-1 are the error positions; interpolate
	// the message polynomial through the remaining ones.
	var xs, ys []uint64
	for i := 0; i < c.n; i++ {
		if locator.Eval(f, uint64(i)) != 0 {
			xs = append(xs, uint64(i))
			ys = append(ys, received[i])
		}
	}
	if len(xs) < c.k {
		return nil, xerrors.Errorf("%d correct symbols, need %d: %w", len(xs), c.k, ErrInsufficientCorrectSymbols)
	}

	p, err := poly.Interpolate(f, xs, ys)
	if err != nil {
		return nil, xerrors.Errorf("%v: %w", err, ErrInvalidInput)
	}

	msg := make([]uint64, c.k)
	for i := range msg {
		msg[i] = p.Eval(f, uint64(i))
	}
	return msg, nil
}
