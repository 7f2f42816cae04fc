// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// with flat-buffer fast paths for *Dense.
//
// Purpose:
//   - Canonical kernels (Mul, Transpose, Scale, MatVec) used by the statistics
//     layer and by the projection engines.
//   - In-place updates used by iterative eigen-solvers: rank-1 update
//     (deflation) and diagonal shift (regularization).
//
// Notes:
//   - Every kernel validates inputs first and wraps errors with its op tag.
//   - Loop orders are fixed (i→j→k) for deterministic accumulation.

package matrix

import "fmt"

// ZeroSum is the initial value for dot-product style accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opMatVec      = "MatVec"
	opAddOuter    = "AddOuterInPlace"
	opAddDiagonal = "AddDiagonalInPlace"
)

// matrixErrorf wraps err with an operation tag: "Op: underlying".
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: Dense fast path with i→k→j order (row of B streamed per a[i,k]).
//   - Stage 3: generic fallback via At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	r, n, c := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		var aik float64
		for i = 0; i < r; i++ {
			rowOut := res.data[i*c : (i+1)*c]
			for k = 0; k < n; k++ {
				aik = da.data[i*n+k]
				if aik == 0 {
					continue
				}
				rowB := db.data[k*c : (k+1)*c]
				for j = 0; j < c; j++ {
					rowOut[j] += aik * rowB[j]
				}
			}
		}

		return res, nil
	}

	var av, bv, acc float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			acc = ZeroSum
			for k = 0; k < n; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				acc += av * bv
			}
			res.data[i*c+j] = acc
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := m.Rows(), m.Cols()
	res, err := NewDense(c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				res.data[j*r+i] = d.data[i*c+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*r+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	r, c := m.Rows(), m.Cols()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			res.data[idx] = alpha * v
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*c+j] = alpha * v
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var i, j int
	var acc float64
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// AddOuterInPlace performs the rank-1 update m += alpha * u * vᵀ.
//
// Implementation:
//   - Stage 1: validate m non-nil, len(u) == Rows, len(v) == Cols.
//   - Stage 2: fixed i→j update on the flat buffer (Dense) or via At/Set.
//
// Behavior highlights:
//   - With alpha = -λ and u = v = eigenvector this is Hotelling deflation.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AddOuterInPlace(m Matrix, alpha float64, u, v []float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opAddOuter, err)
	}
	if err := ValidateVecLen(u, m.Rows()); err != nil {
		return matrixErrorf(opAddOuter, err)
	}
	if err := ValidateVecLen(v, m.Cols()); err != nil {
		return matrixErrorf(opAddOuter, err)
	}

	var i, j int
	var s float64
	if d, ok := m.(*Dense); ok {
		for i = 0; i < d.r; i++ {
			s = alpha * u[i]
			if s == 0 {
				continue
			}
			row := d.data[i*d.c : (i+1)*d.c]
			for j = 0; j < d.c; j++ {
				row[j] += s * v[j]
			}
		}

		return nil
	}

	var cur float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		s = alpha * u[i]
		for j = 0; j < m.Cols(); j++ {
			if cur, err = m.At(i, j); err != nil {
				return matrixErrorf(opAddOuter, err)
			}
			if err = m.Set(i, j, cur+s*v[j]); err != nil {
				return matrixErrorf(opAddOuter, err)
			}
		}
	}

	return nil
}

// AddDiagonalInPlace adds lambda to every diagonal entry of a square matrix
// (Tikhonov-style shift: m += lambda * I).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func AddDiagonalInPlace(m Matrix, lambda float64) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opAddDiagonal, err)
	}

	var i int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < d.r; i++ {
			d.data[i*d.c+i] += lambda
		}

		return nil
	}

	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return matrixErrorf(opAddDiagonal, err)
		}
		if err = m.Set(i, i, v+lambda); err != nil {
			return matrixErrorf(opAddDiagonal, err)
		}
	}

	return nil
}
