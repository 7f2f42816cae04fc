// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the statistical transforms the projection engines are built on
//     (column means, centering, Gram/scatter, covariance, pairwise distances)
//     as deterministic compositions over canonical kernels and ew* micro-kernels.
//
// Exposed API (see api.go):
//   - ColumnMeans(X)        -> means              // Σ_i X[i,j] / r
//   - CenterColumns(X)      -> (Xc, means)        // subtract per-column mean
//   - Gram(X)               -> XᵀX                // scatter of rows about the origin
//   - Covariance(X)         -> (Cov, means)       // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//   - PairwiseEuclidean(X)  -> D                  // r×r, symmetric, zero diagonal
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opColumnMeans       = "ColumnMeans"
	opCenterColumns     = "CenterColumns"
	opGram              = "Gram"
	opCovariance        = "Covariance"
	opPairwiseEuclidean = "PairwiseEuclidean"
)

// columnMeans computes Σ_i X[i,j] / r for every column j.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func columnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		var v float64
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, matrixErrorf(opColumnMeans, err)
				}
				means[j] += v
			}
		}
	}

	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// centerColumns subtracts the per-column mean from every element.
//
// Implementation:
//   - Stage 1: compute column means (deterministic pass).
//   - Stage 2: apply ewBroadcastSubCols to produce a centered copy.
//
// Returns:
//   - *Dense: centered copy (r×c).
//   - []float64: column means (len=c), reusable to center new samples.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func centerColumns(X Matrix) (*Dense, []float64, error) {
	means, err := columnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// gram computes G = XᵀX (c×c), the scatter of the rows of X about the origin.
//
// Behavior highlights:
//   - Symmetric by construction: only the upper triangle is accumulated and
//     mirrored, so G[i,j] == G[j,i] bit-for-bit.
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func gram(X Matrix) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	d, ok := X.(*Dense)
	if !ok {
		// materialize once; the accumulation below wants the flat buffer
		var err error
		if d, err = toDense(X); err != nil {
			return nil, matrixErrorf(opGram, err)
		}
	}
	r, c := d.r, d.c
	G, err := NewDense(c, c)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	var k, i, j int
	var xi float64
	for k = 0; k < r; k++ { // one outer product per sample
		row := d.data[k*c : (k+1)*c]
		for i = 0; i < c; i++ {
			xi = row[i]
			if xi == 0 {
				continue
			}
			base := i * c
			for j = i; j < c; j++ {
				G.data[base+j] += xi * row[j]
			}
		}
	}
	for i = 0; i < c; i++ { // mirror upper → lower
		for j = i + 1; j < c; j++ {
			G.data[j*c+i] = G.data[i*c+j]
		}
	}

	return G, nil
}

// covariance computes the sample covariance of columns: Cov = (Xcᵀ Xc)/(r-1).
//
// Implementation:
//   - Stage 1: validate X, require r>=2 (sample denominator).
//   - Stage 2: center columns once; Gram of the centered copy; scale by 1/(r-1).
//
// Returns:
//   - *Dense: covariance (c×c), symmetric.
//   - []float64: column means used for centering.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2).
//
// Complexity:
//   - Time O(r*c²), Space O(r*c + c²).
func covariance(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r := X.Rows()
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := gram(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	inv := 1.0 / float64(r-1)
	for idx := range G.data {
		G.data[idx] *= inv
	}

	return G, means, nil
}

// pairwiseEuclidean computes D[i,j] = ‖X[i,:] - X[j,:]‖₂ for all row pairs.
//
// Behavior highlights:
//   - Symmetric with an exact zero diagonal; each pair computed once.
//
// Complexity:
//   - Time O(r²*c), Space O(r²).
func pairwiseEuclidean(X Matrix) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opPairwiseEuclidean, err)
	}
	d, ok := X.(*Dense)
	if !ok {
		var err error
		if d, err = toDense(X); err != nil {
			return nil, matrixErrorf(opPairwiseEuclidean, err)
		}
	}
	n, c := d.r, d.c
	D, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opPairwiseEuclidean, err)
	}

	var i, j, k int
	var sq, diff float64
	for i = 0; i < n; i++ {
		ri := d.data[i*c : (i+1)*c]
		for j = i + 1; j < n; j++ {
			rj := d.data[j*c : (j+1)*c]
			sq = ZeroSum
			for k = 0; k < c; k++ {
				diff = ri[k] - rj[k]
				sq += diff * diff
			}
			dist := math.Sqrt(sq)
			D.data[i*n+j] = dist
			D.data[j*n+i] = dist
		}
	}

	return D, nil
}

// toDense materializes any Matrix as a *Dense copy via At.
func toDense(m Matrix) (*Dense, error) {
	r, c := m.Rows(), m.Cols()
	out, err := NewPreparedDense(r, c, WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
