// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dimred/matrix"
)

func TestValidateNotNil_TypedNil(t *testing.T) {
	t.Parallel()

	var d *matrix.Dense
	AssertErrorIs(t, matrix.ValidateNotNil(d), matrix.ErrNilMatrix)
	AssertErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateSquareAndVecLen(t *testing.T) {
	t.Parallel()

	AssertErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))

	AssertErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
	AssertErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	S := NewFilledDense(t, 2, 2, []float64{1, 2, 2 + 1e-12, 1})
	require.NoError(t, matrix.ValidateSymmetric(S, 1e-9))
	AssertErrorIs(t, matrix.ValidateSymmetric(S, 0), matrix.ErrAsymmetry)
	AssertErrorIs(t, matrix.ValidateSymmetric(S, math.NaN()), matrix.ErrNaNInf)
	AssertErrorIs(t, matrix.ValidateSymmetric(hide{MustDense(t, 2, 1)}, 1), matrix.ErrNonSquare)
}
