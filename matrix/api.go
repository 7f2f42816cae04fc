// SPDX-License-Identifier: MIT
// Package matrix: public facade over the statistics kernels.
// The facade keeps exported names stable while impl_* files remain free to
// change their internal signatures.

package matrix

// ColumnMeans returns Σ_i X[i,j] / r per column.
// Complexity: O(r*c).
func ColumnMeans(X Matrix) ([]float64, error) { return columnMeans(X) }

// CenterColumns returns a column-centered copy of X and the subtracted means.
// Complexity: O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) { return centerColumns(X) }

// Gram returns XᵀX (scatter about the origin); symmetric by construction.
// Complexity: O(r*c²).
func Gram(X Matrix) (*Dense, error) { return gram(X) }

// Covariance returns the sample covariance of columns (Xcᵀ Xc)/(r-1) and the
// column means. Requires r >= 2 (ErrDimensionMismatch otherwise).
// Complexity: O(r*c²).
func Covariance(X Matrix) (*Dense, []float64, error) { return covariance(X) }

// PairwiseEuclidean returns the r×r Euclidean distance matrix between rows.
// Complexity: O(r²*c).
func PairwiseEuclidean(X Matrix) (*Dense, error) { return pairwiseEuclidean(X) }
