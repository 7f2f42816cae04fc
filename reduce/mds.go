// SPDX-License-Identifier: MIT

package reduce

import (
	"math"

	"github.com/katalvlaran/dimred/matrix"
)

// ClassicalMDS embeds an N×N distance matrix into k dimensions.
//
// Double centering: with S = D∘D (element-wise square), row means r_i and
// grand mean g,
//
//	B[i][j] = -0.5 · (S[i][j] - r_i - r_j + g).
//
// The k dominant eigenpairs of B come from power iteration with deflation;
// point i's j-th coordinate is v_j[i]·sqrt(|λ_j|). The absolute value keeps
// the scale real when an approximate estimate drifts negative.
//
// Options: WithComponents (default 3), WithIterations, WithSeed/WithRand, WithLogger.
//
// Errors:
//   - ErrInvalidInput when dist is nil, not square, smaller than 2×2,
//     non-finite, asymmetric, or k > N.
func ClassicalMDS(dist matrix.Matrix, opts ...Option) (*Result, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		return nil, reduceErrorf(opMDS, asInvalid(err))
	}
	if dist.Rows() < 2 {
		return nil, invalidf(opMDS, "need at least 2 points, got %d", dist.Rows())
	}
	D, err := matrix.NewDenseFromRows(rowsOf(dist))
	if err != nil {
		return nil, reduceErrorf(opMDS, asInvalid(err))
	}
	if err = matrix.ValidateSymmetric(D, matrix.DefaultEpsilon); err != nil {
		return nil, reduceErrorf(opMDS, asInvalid(err))
	}

	return classicalMDS(opMDS, D, newConfig(opts...))
}

// classicalMDS runs double centering and extraction on a validated matrix.
func classicalMDS(op string, D *matrix.Dense, cfg config) (*Result, error) {
	n := D.Rows()
	k := cfg.components
	if k > n {
		return nil, invalidf(op, "component count %d exceeds point count %d", k, n)
	}

	// Stage 1: squared distances, row means and grand mean.
	sq := D.Rows2D()
	rowMean := make([]float64, n)
	var i, j int
	var grand float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sq[i][j] *= sq[i][j]
			rowMean[i] += sq[i][j]
		}
		grand += rowMean[i]
		rowMean[i] /= float64(n)
	}
	grand /= float64(n * n)

	// Stage 2: B = -0.5·(S - r_i - r_j + g).
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sq[i][j] = sq[i][j] - rowMean[i] - rowMean[j] + grand
		}
	}
	C, err := matrix.NewDenseFromRows(sq)
	if err != nil {
		return nil, reduceErrorf(op, err)
	}
	scaled, err := matrix.Scale(C, -0.5)
	if err != nil {
		return nil, reduceErrorf(op, err)
	}
	B, err := asDense(scaled)
	if err != nil {
		return nil, reduceErrorf(op, err)
	}

	// Stage 3: eigenpairs and scaled coordinates.
	basis, err := newPowerIterator(cfg).dominantInPlace(B, k)
	if err != nil {
		return nil, reduceErrorf(op, err)
	}
	coords := make([][]float64, n)
	for i = 0; i < n; i++ {
		coords[i] = make([]float64, k)
	}
	for j = 0; j < k; j++ {
		scale := math.Sqrt(math.Abs(basis[j].Value))
		for i = 0; i < n; i++ {
			coords[i][j] = basis[j].Vector[i] * scale
		}
	}
	cfg.logger.Debug("mds done", "points", n, "components", k)

	return &Result{Method: MethodMDS, Projected: coords, Basis: basis}, nil
}
