// SPDX-License-Identifier: MIT
// Package: reduce
//
// lda.go — supervised projection maximizing between-class over
// within-class scatter.
//
// Stages:
//  1. Class enumeration in first-occurrence order; per-class mean and count.
//  2. Sw = Σ_c Σ_{x∈c} (x-μ_c)(x-μ_c)ᵀ + λI   (λ = regularization).
//  3. Sb = Σ_c n_c (μ_c-μ)(μ_c-μ)ᵀ.
//  4. k' = min(k, C-1) directions of the operator v ↦ Sw⁻¹·Sb·v, where the
//     solve is a fixed number of in-place Gauss–Seidel sweeps on the SPD
//     system Sw·x = Sb·v. Each iterate is orthogonalized against the
//     directions already accepted.
//  5. Raw (uncentered) rows are projected onto the directions.
//
// Complexity: O(N·D²) for the scatters, O(k'·outer·(D² + inner·D²)) for the
// extraction. Memory O(D²).

package reduce

import (
	"github.com/katalvlaran/dimred/matrix"
)

// LDA projects labeled data onto at most k discriminant directions.
//
// Labels may be any comparable type; classes are enumerated in order of
// first occurrence and keyed by value, so relabeling does not change the
// scatters. The output has min(k, C-1) columns where C is the number of
// distinct labels; the clamp is silent (logged at Debug).
//
// Options: WithComponents (default 3), WithLDAIterations, WithRegularization,
// WithSeed/WithRand, WithLogger.
//
// Errors:
//   - ErrInvalidInput when N < 2, rows are ragged or non-finite,
//     len(labels) != N, fewer than 2 distinct labels are present, or the
//     clamped component count still exceeds D.
func LDA[L comparable](data [][]float64, labels []L, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	X, err := dataMatrix(opLDA, data)
	if err != nil {
		return nil, err
	}
	n, d := X.Shape()
	if len(labels) != n {
		return nil, invalidf(opLDA, "label count %d != sample count %d", len(labels), n)
	}

	classOf, counts := enumerateClasses(labels)
	numClasses := len(counts)
	if numClasses < 2 {
		return nil, invalidf(opLDA, "need at least 2 distinct labels, got %d", numClasses)
	}

	k := cfg.components
	if k > numClasses-1 {
		cfg.logger.Debug("lda components clamped", "requested", k, "classes", numClasses, "effective", numClasses-1)
		k = numClasses - 1
	}
	if k > d {
		return nil, invalidf(opLDA, "component count %d exceeds feasible rank %d", k, d)
	}

	sw, sb, err := scatters(X, classOf, counts, cfg.regularization)
	if err != nil {
		return nil, reduceErrorf(opLDA, err)
	}

	swRows := sw.Rows2D()
	inner := cfg.solverIterations
	op := func(v []float64) ([]float64, error) {
		rhs, err := matrix.MatVec(sb, v)
		if err != nil {
			return nil, err
		}

		return gaussSeidel(swRows, rhs, inner), nil
	}

	basis, err := newPowerIterator(cfg).DominantOperator(op, d, k, cfg.ldaIterations)
	if err != nil {
		return nil, reduceErrorf(opLDA, err)
	}
	projected, err := projectRows(X, basis)
	if err != nil {
		return nil, reduceErrorf(opLDA, err)
	}
	cfg.logger.Debug("lda done", "samples", n, "features", d, "classes", numClasses, "components", k)

	return &Result{
		Method:    MethodLDA,
		Projected: projected,
		Basis:     basis,
	}, nil
}

// enumerateClasses maps every sample to a dense class index (first-occurrence
// order) and returns the per-class counts.
func enumerateClasses[L comparable](labels []L) (classOf []int, counts []int) {
	index := make(map[L]int)
	classOf = make([]int, len(labels))
	for i, l := range labels {
		c, ok := index[l]
		if !ok {
			c = len(counts)
			index[l] = c
			counts = append(counts, 0)
		}
		classOf[i] = c
		counts[c]++
	}

	return classOf, counts
}

// scatters builds the regularized within-class scatter Sw and the
// between-class scatter Sb.
func scatters(X *matrix.Dense, classOf, counts []int, lambda float64) (sw, sb *matrix.Dense, err error) {
	n, d := X.Shape()
	overall, err := matrix.ColumnMeans(X)
	if err != nil {
		return nil, nil, err
	}

	// Stage 1: class means.
	means := make([][]float64, len(counts))
	for c := range means {
		means[c] = make([]float64, d)
	}
	var i, j int
	var row []float64
	for i = 0; i < n; i++ {
		row, _ = X.Row(i) // i in range
		for j = 0; j < d; j++ {
			means[classOf[i]][j] += row[j]
		}
	}
	for c, cnt := range counts {
		for j = 0; j < d; j++ {
			means[c][j] /= float64(cnt)
		}
	}

	// Stage 2: Sw = Gram(residuals) + λI.
	residRows := make([][]float64, n)
	for i = 0; i < n; i++ {
		row, _ = X.Row(i) // Row returns a copy
		mu := means[classOf[i]]
		for j = 0; j < d; j++ {
			row[j] -= mu[j]
		}
		residRows[i] = row
	}
	residual, err := matrix.NewDenseFromRows(residRows)
	if err != nil {
		return nil, nil, err
	}
	if sw, err = matrix.Gram(residual); err != nil {
		return nil, nil, err
	}
	if err = matrix.AddDiagonalInPlace(sw, lambda); err != nil {
		return nil, nil, err
	}

	// Stage 3: Sb as a sum of weighted rank-1 terms.
	if sb, err = matrix.NewPreparedDense(d, d); err != nil {
		return nil, nil, err
	}
	diff := make([]float64, d)
	for c, cnt := range counts {
		for j = 0; j < d; j++ {
			diff[j] = means[c][j] - overall[j]
		}
		if err = matrix.AddOuterInPlace(sb, float64(cnt), diff, diff); err != nil {
			return nil, nil, err
		}
	}

	return sw, sb, nil
}

// gaussSeidel approximately solves A·x = b with a fixed number of in-place
// sweeps starting from x = 0. A must have a non-zero diagonal; the
// regularized scatter is SPD, for which the sweeps converge.
func gaussSeidel(A [][]float64, b []float64, sweeps int) []float64 {
	n := len(b)
	x := make([]float64, n)

	var s, i, j int
	var acc float64
	for s = 0; s < sweeps; s++ {
		for i = 0; i < n; i++ {
			acc = b[i]
			for j = 0; j < n; j++ {
				if j != i {
					acc -= A[i][j] * x[j]
				}
			}
			x[i] = acc / A[i][i]
		}
	}

	return x
}
