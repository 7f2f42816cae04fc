// SPDX-License-Identifier: MIT

package reduce_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dimred/reduce"
)

func TestRunAll_MatchesStandaloneCalls(t *testing.T) {
	t.Parallel()

	ds := labeledClusters(t, 10, 3, 5)
	opts := []reduce.Option{reduce.WithComponents(2), reduce.WithNeighbors(5), reduce.WithSeed(8)}

	suite, err := reduce.RunAll(context.Background(), ds.Data, ds.Labels, opts...)
	require.NoError(t, err)

	pca, err := reduce.PCA(ds.Data, opts...)
	require.NoError(t, err)
	lda, err := reduce.LDA(ds.Data, ds.Labels, opts...)
	require.NoError(t, err)
	iso, err := reduce.Isomap(ds.Data, opts...)
	require.NoError(t, err)

	assert.Equal(t, pca, suite.PCA)
	assert.Equal(t, lda, suite.LDA)
	assert.Equal(t, iso, suite.Isomap)
}

func TestRunAll_WithoutLabelsSkipsLDA(t *testing.T) {
	t.Parallel()

	data := randomData(31, 15, 4)
	suite, err := reduce.RunAll[int](context.Background(), data, nil, reduce.WithNeighbors(4))
	require.NoError(t, err)
	assert.NotNil(t, suite.PCA)
	assert.Nil(t, suite.LDA)
	assert.NotNil(t, suite.Isomap)
}

func TestRunAll_InjectedSourceIsDeterministic(t *testing.T) {
	t.Parallel()

	data := randomData(32, 15, 4)
	run := func() *reduce.Suite {
		s, err := reduce.RunAll[int](context.Background(), data, nil,
			reduce.WithNeighbors(4), reduce.WithRand(rand.New(rand.NewSource(3))))
		require.NoError(t, err)
		return s
	}
	assert.Equal(t, run(), run())
}

func TestRunAll_PropagatesFirstError(t *testing.T) {
	t.Parallel()

	data := randomData(33, 6, 3)
	_, err := reduce.RunAll[int](context.Background(), data, nil, reduce.WithNeighbors(6))
	require.ErrorIs(t, err, reduce.ErrInvalidInput)
}

func TestRunAll_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := reduce.RunAll[int](ctx, randomData(34, 10, 3), nil, reduce.WithNeighbors(3))
	require.ErrorIs(t, err, context.Canceled)
}
