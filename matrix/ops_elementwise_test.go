// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dimred/matrix"
)

func TestMaxFinite(t *testing.T) {
	t.Parallel()

	A, err := matrix.NewPreparedDense(2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, A.Fill([]float64{math.Inf(1), -2, math.NaN(), -7}))

	for _, m := range []matrix.Matrix{A, hide{A}} {
		v, ok, err := matrix.MaxFinite(m)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, -2.0, v)
	}

	require.NoError(t, A.Fill([]float64{math.Inf(1), math.Inf(-1), math.NaN(), math.Inf(1)}))
	_, ok, err := matrix.MaxFinite(A)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = matrix.MaxFinite(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestReplaceInfInPlace(t *testing.T) {
	t.Parallel()

	A, err := matrix.NewPreparedDense(2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, A.Fill([]float64{math.Inf(1), 1, math.Inf(-1), math.NaN()}))

	n, err := matrix.ReplaceInfInPlace(hide{A}, 9)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 9.0, MustAt(t, A, 0, 0))
	assert.Equal(t, 9.0, MustAt(t, A, 1, 0))
	assert.True(t, math.IsNaN(MustAt(t, A, 1, 1)), "NaN must be left untouched")

	_, err = matrix.ReplaceInfInPlace(A, math.Inf(1))
	AssertErrorIs(t, err, matrix.ErrNaNInf)
}
