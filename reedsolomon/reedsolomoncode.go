// Package reedsolomon implements a Reed-Solomon codec over a prime field
// GF(q): encoding by interpolation, unique decoding with Berlekamp-Welch and
// list decoding in the Guruswami-Sudan style.
//
// A message is k field symbols read as the coefficients of a polynomial of
// degree < k; the codeword is its evaluation at the points 0..n-1. All
// operations are pure; a Codec is stateless after construction and safe for
// concurrent use.
package reedsolomon

import (
	"golang.org/x/xerrors"

	"github.com/ThatGuyVanquish/ReedSolomon-Sage/gf"
	"github.com/ThatGuyVanquish/ReedSolomon-Sage/poly"
)

type RSEncoder interface {
	// Encode receives a message of k symbols and encodes it into a codeword
	// of n symbols.
	Encode(msg []uint64) ([]uint64, error)
}

type RSDecoder interface {
	// DecodeUnique takes a received word of n symbols and a declared error
	// bound t and tries to recover the original k symbol message. t is
	// trusted: a bound inconsistent with the true error count may produce a
	// wrong message instead of an error.
	DecodeUnique(received []uint64, t int) ([]uint64, error)
}

type RSListDecoder interface {
	// DecodeList takes a received word of n symbols and a declared error
	// bound t and returns every candidate message within t errors of it.
	DecodeList(received []uint64, t int) ([][]uint64, error)
}

type RSCodes interface {
	RSEncoder
	RSDecoder
	RSListDecoder
}

// Codec is a Reed-Solomon code of length n and dimension k over GF(q).
type Codec struct {
	field gf.Field
	k     int
	n     int
}

var _ RSCodes = (*Codec)(nil)

// NewCodec returns a codec over GF(q) encoding k symbol messages into n
// symbol codewords. It requires q prime, k >= 1 and k < n <= q (the
// evaluation points 0..n-1 must be distinct field elements).
func NewCodec(q uint64, k, n int) (*Codec, error) {
	f, err := gf.New(q)
	if err != nil {
		return nil, xerrors.Errorf("%v: %w", err, ErrInvalidInput)
	}
	if k < 1 {
		return nil, xerrors.Errorf("message length %d must be at least 1: %w", k, ErrInvalidInput)
	}
	if n <= k {
		return nil, xerrors.Errorf("codeword length %d must exceed message length %d: %w", n, k, ErrInvalidInput)
	}
	if uint64(n) > q {
		return nil, xerrors.Errorf("codeword length %d exceeds field order %d: %w", n, q, ErrInvalidInput)
	}
	return &Codec{field: f, k: k, n: n}, nil
}

// Field returns the codec's field.
func (c *Codec) Field() gf.Field {
	return c.field
}

// MessageLength returns k.
func (c *Codec) MessageLength() int {
	return c.k
}

// CodewordLength returns n.
func (c *Codec) CodewordLength() int {
	return c.n
}

// Encode interpolates the polynomial of degree < k through (i, msg[i]) and
// evaluates it at 0..n-1. The interpolation step cross-checks the coefficient
// and point-value views of the message; output symbol i always equals
// sum_j msg[j] * i^j mod q.
func (c *Codec) Encode(msg []uint64) ([]uint64, error) {
	if err := c.checkWord(msg, c.k); err != nil {
		return nil, err
	}

	p, err := poly.Interpolate(c.field, c.points(c.k), msg)
	if err != nil {
		// Points are distinct by construction.
		return nil, xerrors.Errorf("%v: %w", err, ErrInvalidInput)
	}

	codeword := make([]uint64, c.n)
	for i := range codeword {
		codeword[i] = p.Eval(c.field, uint64(i))
	}
	return codeword, nil
}

// points returns the first m evaluation points 0..m-1.
func (c *Codec) points(m int) []uint64 {
	xs := make([]uint64, m)
	for i := range xs {
		xs[i] = uint64(i)
	}
	return xs
}

func (c *Codec) checkWord(w []uint64, want int) error {
	if len(w) != want {
		return xerrors.Errorf("word has %d symbols, want %d: %w", len(w), want, ErrInvalidInput)
	}
	for i, v := range w {
		if v >= c.field.Order() {
			return xerrors.Errorf("symbol %d value %d out of range for GF(%d): %w", i, v, c.field.Order(), ErrInvalidInput)
		}
	}
	return nil
}

func (c *Codec) checkErrorBound(t int) error {
	if t < 0 || t >= c.n {
		return xerrors.Errorf("declared error bound %d outside [0, %d): %w", t, c.n, ErrInvalidInput)
	}
	return nil
}
