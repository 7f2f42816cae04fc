// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise micro-kernels (ew*) shared by statistics and distance code.
//   - Keep tight loops centralized so facades stay thin.
//
// Determinism:
//   - Fixed i→j traversal; outputs are fresh *Dense unless the name says InPlace.

package matrix

import "math"

const (
	opBroadcastSubCols = "ewBroadcastSubCols"
	opReplaceInf       = "ReplaceInfInPlace"
	opMaxFinite        = "MaxFinite"
)

// ewBroadcastSubCols returns X - 1·meansᵀ (subtract colMeans[j] from column j).
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when len(colMeans) != Cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ewBroadcastSubCols(X Matrix, colMeans []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}
	if err := ValidateVecLen(colMeans, X.Cols()); err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] - colMeans[j]
			}
		}

		return out, nil
	}

	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opBroadcastSubCols, err)
			}
			out.data[i*c+j] = v - colMeans[j]
		}
	}

	return out, nil
}

// MaxFinite returns the largest finite entry of m and whether one was found.
// +Inf/-Inf/NaN entries are skipped.
//
// Complexity: O(r*c).
func MaxFinite(m Matrix) (float64, bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, false, matrixErrorf(opMaxFinite, err)
	}

	best := math.Inf(-1)
	found := false
	visit := func(v float64) {
		if isNonFinite(v) {
			return
		}
		if !found || v > best {
			best, found = v, true
		}
	}

	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			visit(v)
		}
	} else {
		var i, j int
		var v float64
		var err error
		for i = 0; i < m.Rows(); i++ {
			for j = 0; j < m.Cols(); j++ {
				if v, err = m.At(i, j); err != nil {
					return 0, false, matrixErrorf(opMaxFinite, err)
				}
				visit(v)
			}
		}
	}
	if !found {
		return 0, false, nil
	}

	return best, true, nil
}

// ReplaceInfInPlace overwrites every ±Inf entry with val and returns how many
// entries were replaced. NaN entries are left untouched.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when val itself is not finite.
//
// Complexity: O(r*c), no allocations.
func ReplaceInfInPlace(m Matrix, val float64) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opReplaceInf, err)
	}
	if isNonFinite(val) {
		return 0, matrixErrorf(opReplaceInf, ErrNaNInf)
	}

	replaced := 0
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			if math.IsInf(v, 0) {
				d.data[idx] = val
				replaced++
			}
		}

		return replaced, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return replaced, matrixErrorf(opReplaceInf, err)
			}
			if !math.IsInf(v, 0) {
				continue
			}
			if err = m.Set(i, j, val); err != nil {
				return replaced, matrixErrorf(opReplaceInf, err)
			}
			replaced++
		}
	}

	return replaced, nil
}
