// SPDX-License-Identifier: MIT

package vecmath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dimred/vecmath"
)

func TestDotNorm(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 11.0, vecmath.Dot([]float64{1, 2}, []float64{3, 4}))
	assert.Equal(t, 5.0, vecmath.Norm([]float64{3, 4}))
	assert.Zero(t, vecmath.Norm(nil))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	v := []float64{3, 4}
	u, err := vecmath.Normalize(v)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.6, 0.8}, u, 1e-15)
	assert.Equal(t, []float64{3, 4}, v, "input must not change")

	n, err := vecmath.NormalizeInPlace(v)
	require.NoError(t, err)
	assert.Equal(t, 5.0, n)
	assert.InDelta(t, 1.0, vecmath.Norm(v), 1e-15)

	tiny := []float64{1e-12, 0}
	_, err = vecmath.NormalizeInPlace(tiny)
	require.ErrorIs(t, err, vecmath.ErrDivideByZero)
	assert.Equal(t, []float64{1e-12, 0}, tiny, "collapsed vector left untouched")
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	y, err := vecmath.MatVec([][]float64{{1, 2}, {0, -1}}, []float64{3, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, -1}, y)

	_, err = vecmath.MatVec([][]float64{{1, 2}, {0}}, []float64{3, 1})
	require.ErrorIs(t, err, vecmath.ErrLengthMismatch)
}

func TestOrthogonalize(t *testing.T) {
	t.Parallel()

	basis := [][]float64{{1, 0, 0}, {0, 1, 0}}
	v := []float64{2, -3, 4}
	n := vecmath.Orthogonalize(v, basis)
	assert.Equal(t, []float64{0, 0, 4}, v)
	assert.Equal(t, 4.0, n)

	inSpan := []float64{1, 1, 0}
	assert.Less(t, vecmath.Orthogonalize(inSpan, basis), vecmath.Epsilon)
}

func TestEuclidean(t *testing.T) {
	t.Parallel()

	d, err := vecmath.Euclidean([]float64{0, 0}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	_, err = vecmath.Euclidean([]float64{0}, []float64{3, 4})
	require.ErrorIs(t, err, vecmath.ErrLengthMismatch)
}

func TestCosine(t *testing.T) {
	t.Parallel()

	c, err := vecmath.Cosine([]float64{1, 0}, []float64{1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt2, c, 1e-15)

	c, err = vecmath.Cosine([]float64{1, 2}, []float64{-2, -4})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, c, 1e-15)

	_, err = vecmath.Cosine([]float64{0, 0}, []float64{1, 1})
	require.ErrorIs(t, err, vecmath.ErrDivideByZero)
	_, err = vecmath.Cosine([]float64{1}, []float64{1, 1})
	require.ErrorIs(t, err, vecmath.ErrLengthMismatch)
}

func TestTopK(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{0, 1},  // 0: orthogonal
		{2, 0},  // 1: identical direction
		{1, 1},  // 2: 45°
		{0, 0},  // 3: zero norm, ranked at 0
		{3, 0},  // 4: identical direction, ties with 1
		{-1, 0}, // 5: opposite
	}
	got, err := vecmath.TopK([]float64{1, 0}, rows, 4)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, []int{1, 4, 2, 0}, []int{got[0].Index, got[1].Index, got[2].Index, got[3].Index})
	assert.InDelta(t, 1.0, got[0].Similarity, 1e-15)

	all, err := vecmath.TopK([]float64{1, 0}, rows, 100)
	require.NoError(t, err)
	require.Len(t, all, len(rows))
	assert.Equal(t, 5, all[len(all)-1].Index)

	none, err := vecmath.TopK([]float64{1, 0}, rows, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = vecmath.TopK(nil, rows, 1)
	require.ErrorIs(t, err, vecmath.ErrEmpty)
	_, err = vecmath.TopK([]float64{0, 0}, rows, 1)
	require.ErrorIs(t, err, vecmath.ErrDivideByZero)
	_, err = vecmath.TopK([]float64{1, 0, 0}, rows, 1)
	require.ErrorIs(t, err, vecmath.ErrLengthMismatch)
}
