// Package gf implements arithmetic in the prime field GF(q).
//
// Elements are uint64 values already reduced into [0, q). Operations on
// out-of-range inputs are programming errors; use Element to validate
// untrusted symbols first.
package gf

import (
	"math/big"
	"math/bits"

	"golang.org/x/xerrors"
)

// Field is a prime field of order q. The zero value is not usable; construct
// with New.
type Field struct {
	q uint64
}

// New returns the field GF(q). q must be prime.
func New(q uint64) (Field, error) {
	if q < 2 || !new(big.Int).SetUint64(q).ProbablyPrime(32) {
		return Field{}, xerrors.Errorf("field order %d is not prime", q)
	}
	return Field{q: q}, nil
}

// Order returns q.
func (f Field) Order() uint64 {
	return f.q
}

// Element validates that v is a field element in [0, q).
func (f Field) Element(v uint64) (uint64, error) {
	if v >= f.q {
		return 0, xerrors.Errorf("value %d out of range for GF(%d)", v, f.q)
	}
	return v, nil
}

// Reduce maps a signed integer into [0, q).
func (f Field) Reduce(v int64) uint64 {
	r := v % int64(f.q)
	if r < 0 {
		r += int64(f.q)
	}
	return uint64(r)
}

func (f Field) Add(a, b uint64) uint64 {
	s := a + b
	if s >= f.q || s < a {
		s -= f.q
	}
	return s
}

func (f Field) Sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + f.q - b
}

func (f Field) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}
	return f.q - a
}

func (f Field) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, f.q)
	return rem
}

// Exp returns a^e by square and multiply.
func (f Field) Exp(a, e uint64) uint64 {
	r := uint64(1 % f.q)
	base := a
	for e > 0 {
		if e&1 == 1 {
			r = f.Mul(r, base)
		}
		base = f.Mul(base, base)
		e >>= 1
	}
	return r
}

// Inv returns the multiplicative inverse of a. Panics on a == 0.
func (f Field) Inv(a uint64) uint64 {
	if a == 0 {
		panic("gf: inverse of zero")
	}
	// Fermat: a^(q-2) = a^-1 in GF(q).
	return f.Exp(a, f.q-2)
}

func (f Field) Div(a, b uint64) uint64 {
	return f.Mul(a, f.Inv(b))
}
