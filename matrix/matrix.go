// Package matrix implements the dense linear algebra over GF(q) that the
// decoders need: solving A·u = b and computing a right null-space basis.
// Matrices are row-major [][]uint64 slices of reduced field elements.
package matrix

import (
	"errors"

	"github.com/ThatGuyVanquish/ReedSolomon-Sage/gf"
)

var ErrNoSolution = errors.New("matrix: linear system has no solution")

// Clone copies a matrix, sharing no storage with the original.
func Clone(a [][]uint64) [][]uint64 {
	out := make([][]uint64, len(a))
	for i, row := range a {
		out[i] = make([]uint64, len(row))
		copy(out[i], row)
	}
	return out
}

// rref reduces m in place to reduced row echelon form and returns, per
// column, the pivot row index (-1 for free columns).
func rref(f gf.Field, m [][]uint64) []int {
	rows := len(m)
	cols := 0
	if rows > 0 {
		cols = len(m[0])
	}
	pivotRow := make([]int, cols)
	for i := range pivotRow {
		pivotRow[i] = -1
	}

	r := 0
	for c := 0; c < cols && r < rows; c++ {
		// Find a row with a nonzero entry in this column.
		pivot := -1
		for i := r; i < rows; i++ {
			if m[i][c] != 0 {
				pivot = i
				break
			}
		}
		if pivot == -1 {
			continue
		}
		m[r], m[pivot] = m[pivot], m[r]

		inv := f.Inv(m[r][c])
		for j := c; j < cols; j++ {
			m[r][j] = f.Mul(m[r][j], inv)
		}
		for i := 0; i < rows; i++ {
			if i == r || m[i][c] == 0 {
				continue
			}
			factor := m[i][c]
			for j := c; j < cols; j++ {
				m[i][j] = f.Sub(m[i][j], f.Mul(factor, m[r][j]))
			}
		}
		pivotRow[c] = r
		r++
	}
	return pivotRow
}

// Solve returns one solution u of A·u = b over GF(q), with free variables set
// to zero. It returns ErrNoSolution if the system is inconsistent.
func Solve(f gf.Field, a [][]uint64, b []uint64) ([]uint64, error) {
	rows := len(a)
	cols := 0
	if rows > 0 {
		cols = len(a[0])
	}

	aug := make([][]uint64, rows)
	for i := range aug {
		aug[i] = make([]uint64, cols+1)
		copy(aug[i], a[i])
		aug[i][cols] = b[i]
	}

	pivotRow := rref(f, aug)

	// A pivot in the augmented column means a row 0 = 1.
	for _, row := range aug {
		allZero := true
		for j := 0; j < cols; j++ {
			if row[j] != 0 {
				allZero = false
				break
			}
		}
		if allZero && row[cols] != 0 {
			return nil, ErrNoSolution
		}
	}

	u := make([]uint64, cols)
	for c := 0; c < cols; c++ {
		if pivotRow[c] >= 0 {
			u[c] = aug[pivotRow[c]][cols]
		}
	}
	return u, nil
}

// NullSpace returns a basis of the right null space of A over GF(q), one
// vector per free column of the reduced form. The basis is empty exactly
// when A has full column rank.
func NullSpace(f gf.Field, a [][]uint64) [][]uint64 {
	m := Clone(a)
	cols := 0
	if len(m) > 0 {
		cols = len(m[0])
	}
	pivotRow := rref(f, m)

	var basis [][]uint64
	for c := 0; c < cols; c++ {
		if pivotRow[c] >= 0 {
			continue
		}
		// Free column: set u[c] = 1 and solve the pivot variables.
		v := make([]uint64, cols)
		v[c] = 1
		for j := 0; j < cols; j++ {
			if pivotRow[j] >= 0 {
				v[j] = f.Neg(m[pivotRow[j]][c])
			}
		}
		basis = append(basis, v)
	}
	return basis
}
