// SPDX-License-Identifier: MIT

package reduce

import "github.com/katalvlaran/dimred/matrix"

// PCA projects data (N×D) onto its k leading principal directions.
//
// Steps:
//  1. Center every feature on its mean.
//  2. Sample covariance Cov = Xcᵀ·Xc / (N-1).
//  3. k eigenpairs of Cov via power iteration with deflation.
//  4. Project the centered rows onto the eigenvectors.
//
// Centering makes the output translation-covariant: adding a constant
// offset to every sample leaves the projection unchanged.
//
// Options: WithComponents (default 3), WithIterations, WithSeed/WithRand, WithLogger.
//
// Errors:
//   - ErrInvalidInput when N < 2, rows are ragged or non-finite, or k > D.
func PCA(data [][]float64, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	X, err := dataMatrix(opPCA, data)
	if err != nil {
		return nil, err
	}
	k := cfg.components
	if k > X.Cols() {
		return nil, invalidf(opPCA, "component count %d exceeds feature count %d", k, X.Cols())
	}

	Xc, _, err := matrix.CenterColumns(X)
	if err != nil {
		return nil, reduceErrorf(opPCA, err)
	}
	cov, _, err := matrix.Covariance(X)
	if err != nil {
		return nil, reduceErrorf(opPCA, err)
	}

	basis, err := newPowerIterator(cfg).dominantInPlace(cov, k)
	if err != nil {
		return nil, reduceErrorf(opPCA, err)
	}
	projected, err := projectRows(Xc, basis)
	if err != nil {
		return nil, reduceErrorf(opPCA, err)
	}
	cfg.logger.Debug("pca done", "samples", X.Rows(), "features", X.Cols(), "components", k)

	return &Result{
		Method:    MethodPCA,
		Projected: projected,
		Basis:     basis,
	}, nil
}
