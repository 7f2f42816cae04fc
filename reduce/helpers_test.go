// SPDX-License-Identifier: MIT

package reduce_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dimred/matrix"
	"github.com/katalvlaran/dimred/reduce"
	"github.com/katalvlaran/dimred/vecmath"
)

const (
	unitTol  = 1e-6 // ‖v‖ = 1 ± unitTol
	orthoTol = 1e-3 // |vᵢ·vⱼ| < orthoTol
)

// randomData draws an n×d matrix with N(0,1) entries scaled per column so
// the covariance spectrum is well separated.
func randomData(seed int64, n, d int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, d)
		for j := range out[i] {
			out[i][j] = rng.NormFloat64() * float64(d-j)
		}
	}

	return out
}

// spectral builds Q·diag(vals)·Qᵀ for a random orthogonal Q.
func spectral(t *testing.T, seed int64, vals []float64) *matrix.Dense {
	t.Helper()
	n := len(vals)
	rng := rand.New(rand.NewSource(seed))
	raw := make([]float64, n*n)
	for i := range raw {
		raw[i] = rng.NormFloat64()
	}
	var qr mat.QR
	qr.Factorize(mat.NewDense(n, n, raw))
	var q, tmp, s mat.Dense
	qr.QTo(&q)
	tmp.Mul(&q, mat.NewDiagDense(n, vals))
	s.Mul(&tmp, q.T())

	// mirror the upper triangle so the result is exactly symmetric
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if j < i {
				rows[i][j] = s.At(j, i)
			} else {
				rows[i][j] = s.At(i, j)
			}
		}
	}
	out, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return out
}

// eigenRef returns the eigenpairs of a symmetric m in descending order of
// eigenvalue, computed exactly by gonum.
func eigenRef(t *testing.T, m matrix.Matrix) ([]float64, [][]float64) {
	t.Helper()
	require.NoError(t, matrix.ValidateSymmetric(m, 1e-8))
	n := m.Rows()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			sym.SetSym(i, j, v)
		}
	}
	var es mat.EigenSym
	require.True(t, es.Factorize(sym, true), "EigenSym did not converge")
	vals := es.Values(nil)
	var ev mat.Dense
	es.VectorsTo(&ev)

	outVals := make([]float64, n)
	outVecs := make([][]float64, n)
	for i := 0; i < n; i++ {
		src := n - 1 - i // gonum orders ascending
		outVals[i] = vals[src]
		outVecs[i] = mat.Col(nil, src, &ev)
	}

	return outVals, outVecs
}

// requireOrthonormal checks unit norm and pairwise orthogonality of a basis.
func requireOrthonormal(t *testing.T, basis []reduce.EigenPair) {
	t.Helper()
	for i, p := range basis {
		require.InDelta(t, 1.0, vecmath.Norm(p.Vector), unitTol, "component %d norm", i)
		for j := 0; j < i; j++ {
			require.Less(t, math.Abs(vecmath.Dot(p.Vector, basis[j].Vector)), orthoTol,
				"components %d and %d not orthogonal", j, i)
		}
	}
}

// requireShape checks an N×k projection with finite entries.
func requireShape(t *testing.T, got [][]float64, n, k int) {
	t.Helper()
	require.Len(t, got, n)
	for i, row := range got {
		require.Len(t, row, k, "row %d", i)
		for j, v := range row {
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "row %d col %d = %v", i, j, v)
		}
	}
}

// requireClose compares two projections entry by entry.
func requireClose(t *testing.T, want, got [][]float64, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaSlice(t, want[i], got[i], tol, "row %d", i)
	}
}

// shifted returns data + offset on every feature.
func shifted(data [][]float64, offset float64) [][]float64 {
	out := make([][]float64, len(data))
	for i, row := range data {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = v + offset
		}
	}

	return out
}

// zeroSource always returns 0, so every start vector collapses.
type zeroSource struct{}

func (zeroSource) Float64() float64 { return 0 }
