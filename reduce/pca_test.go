// SPDX-License-Identifier: MIT

package reduce_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dimred/matrix"
	"github.com/katalvlaran/dimred/reduce"
	"github.com/katalvlaran/dimred/vecmath"
)

func TestPCA_ShapeAndBasis(t *testing.T) {
	t.Parallel()

	data := randomData(1, 40, 5)
	res, err := reduce.PCA(data)
	require.NoError(t, err)

	assert.Equal(t, reduce.MethodPCA, res.Method)
	assert.Equal(t, reduce.DefaultComponents, res.Components())
	requireShape(t, res.Projected, 40, reduce.DefaultComponents)
	requireOrthonormal(t, res.Basis)
}

func TestPCA_ProjectsCenteredRows(t *testing.T) {
	t.Parallel()

	data := randomData(4, 25, 4)
	res, err := reduce.PCA(data, reduce.WithComponents(2))
	require.NoError(t, err)

	X, err := matrix.NewDenseFromRows(data)
	require.NoError(t, err)
	Xc, _, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	for i, row := range Xc.Rows2D() {
		for j, p := range res.Basis {
			assert.InDelta(t, vecmath.Dot(row, p.Vector), res.Projected[i][j], 1e-9, "row %d component %d", i, j)
		}
	}
}

func TestPCA_MatchesCovarianceEigenvectors(t *testing.T) {
	t.Parallel()

	data := randomData(2, 200, 4)
	X, err := matrix.NewDenseFromRows(data)
	require.NoError(t, err)
	cov, _, err := matrix.Covariance(X)
	require.NoError(t, err)
	wantVals, wantVecs := eigenRef(t, cov)

	res, err := reduce.PCA(data, reduce.WithComponents(2), reduce.WithIterations(300))
	require.NoError(t, err)
	for i, p := range res.Basis {
		assert.InDelta(t, 1.0, math.Abs(vecmath.Dot(p.Vector, wantVecs[i])), 1e-4, "component %d", i)
		assert.InEpsilon(t, wantVals[i], p.Value, 1e-4, "variance %d", i)
	}

	// projected column variance equals the eigenvalue
	for j := 0; j < 2; j++ {
		var ss float64
		for i := range res.Projected {
			ss += res.Projected[i][j] * res.Projected[i][j]
		}
		assert.InEpsilon(t, wantVals[j], ss/float64(len(data)-1), 1e-4)
	}
}

func TestPCA_TranslationCovariant(t *testing.T) {
	t.Parallel()

	data := randomData(3, 30, 6)
	a, err := reduce.PCA(data, reduce.WithSeed(5))
	require.NoError(t, err)
	b, err := reduce.PCA(shifted(data, 100), reduce.WithSeed(5))
	require.NoError(t, err)

	requireClose(t, a.Projected, b.Projected, 1e-6)
}

func TestPCA_RepeatCallsIdentical(t *testing.T) {
	t.Parallel()

	data := randomData(4, 25, 4)
	a, err := reduce.PCA(data)
	require.NoError(t, err)
	b, err := reduce.PCA(data)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPCA_InvalidInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data [][]float64
		opts []reduce.Option
	}{
		{"empty", nil, nil},
		{"single sample", [][]float64{{1, 2}}, nil},
		{"no features", [][]float64{{}, {}}, nil},
		{"ragged", [][]float64{{1, 2}, {3}}, nil},
		{"nan", [][]float64{{1, math.NaN()}, {3, 4}}, nil},
		{"k above d", [][]float64{{1, 2}, {3, 4}, {5, 7}}, []reduce.Option{reduce.WithComponents(3)}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := reduce.PCA(tc.data, tc.opts...)
			require.ErrorIs(t, err, reduce.ErrInvalidInput)
		})
	}
}
