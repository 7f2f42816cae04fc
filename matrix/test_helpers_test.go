// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and comparison utilities.
//   - hide{} masks *Dense so the generic (At/Set) fallback paths get exercised.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dimred/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Wrap only the operand whose fast path should be disabled.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c zero *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// NewFilledDense allocates an r×c *Dense from row-major vals.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	require.NoError(t, m.Fill(vals))

	return m
}

// RandFilledDense returns an r×c *Dense with uniform [-1,1) entries.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = 2*rng.Float64() - 1
	}

	return NewFilledDense(t, r, c, vals)
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet writes m[i,j] or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// CompareExact requires m to equal want element by element.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "(%d,%d)", i, j)
		}
	}
}

// CompareClose requires |a-b| <= atol + rtol*|b| element-wise.
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	require.Equal(t, b.Rows(), a.Rows(), "rows")
	require.Equal(t, b.Cols(), a.Cols(), "cols")
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, bv := MustAt(t, a, i, j), MustAt(t, b, i, j)
			require.LessOrEqual(t, math.Abs(av-bv), atol+rtol*math.Abs(bv), "(%d,%d): %v vs %v", i, j, av, bv)
		}
	}
}

// sliceClose is CompareClose for vectors.
func sliceClose(t *testing.T, a, b []float64, rtol, atol float64) {
	t.Helper()
	require.Len(t, a, len(b))
	for i := range a {
		require.LessOrEqual(t, math.Abs(a[i]-b[i]), atol+rtol*math.Abs(b[i]), "[%d]: %v vs %v", i, a[i], b[i])
	}
}

// AssertErrorIs requires errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	require.ErrorIs(t, err, target)
}

// fillInfOffDiagZeroDiag initializes a distance fixture: 0 diagonal, +Inf elsewhere.
func fillInfOffDiagZeroDiag(t *testing.T, d *matrix.Dense) {
	t.Helper()
	n := d.Rows()
	require.Equal(t, n, d.Cols(), "fixture must be square")
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				data[i*n+j] = math.Inf(1)
			}
		}
	}
	require.NoError(t, d.Fill(data))
}
