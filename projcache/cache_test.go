// SPDX-License-Identifier: MIT

package projcache_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dimred/projcache"
	"github.com/katalvlaran/dimred/reduce"
)

var sample = [][]float64{
	{1, 2, 3},
	{2, 1, 0},
	{4, 4, 1},
	{0, 3, 5},
	{5, 0, 2},
}

func TestKey_ContentSensitive(t *testing.T) {
	t.Parallel()

	p := projcache.Params{Method: reduce.MethodPCA, Components: 2, Seed: 1}
	base := projcache.Key(p, sample, nil)
	assert.Equal(t, base, projcache.Key(p, sample, nil))

	changed := [][]float64{{1, 2, 3}, {2, 1, 0}, {4, 4, 1}, {0, 3, 5}, {5, 0, 2.0000001}}
	assert.NotEqual(t, base, projcache.Key(p, changed, nil))

	p2 := p
	p2.Components = 3
	assert.NotEqual(t, base, projcache.Key(p2, sample, nil))

	p3 := p
	p3.Method = reduce.MethodIsomap
	assert.NotEqual(t, base, projcache.Key(p3, sample, nil))

	// row boundaries are part of the key
	reshaped := [][]float64{{1, 2}, {3, 2, 1, 0}, {4, 4, 1}, {0, 3, 5}, {5, 0, 2}}
	assert.NotEqual(t, base, projcache.Key(p, reshaped, nil))
}

func TestKey_LabelsOnlyMatterForLDA(t *testing.T) {
	t.Parallel()

	pca := projcache.Params{Method: reduce.MethodPCA, Seed: 1}
	assert.Equal(t, projcache.Key(pca, sample, []int{0, 0, 1, 1, 1}), projcache.Key(pca, sample, []int{1, 1, 0, 0, 0}))

	lda := projcache.Params{Method: reduce.MethodLDA, Seed: 1}
	assert.NotEqual(t, projcache.Key(lda, sample, []int{0, 0, 1, 1, 1}), projcache.Key(lda, sample, []int{0, 1, 1, 1, 1}))
}

func TestCache_FIFOEviction(t *testing.T) {
	t.Parallel()

	c := projcache.New(2)
	r1, r2, r3 := &reduce.Result{}, &reduce.Result{}, &reduce.Result{}
	c.Put(1, r1)
	c.Put(2, r2)
	c.Put(1, r1) // refresh does not reorder
	c.Put(3, r3)

	_, ok := c.Get(1)
	assert.False(t, ok, "oldest entry must be evicted")
	got, ok := c.Get(2)
	require.True(t, ok)
	assert.Same(t, r2, got)
	got, ok = c.Get(3)
	require.True(t, ok)
	assert.Same(t, r3, got)

	st := c.Stats()
	assert.Equal(t, 2, st.Entries)
	assert.Equal(t, uint64(2), st.Hits)
	assert.Equal(t, uint64(1), st.Misses)
	assert.Equal(t, uint64(1), st.Evictions)
}

func TestCache_GetOrComputeDoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	c := projcache.New(0)
	boom := errors.New("boom")
	calls := 0
	fail := func() (*reduce.Result, error) { calls++; return nil, boom }

	_, err := c.GetOrCompute(7, fail)
	require.ErrorIs(t, err, boom)
	_, err = c.GetOrCompute(7, fail)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
	assert.Zero(t, c.Len())
}

func TestCache_ProjectMemoizes(t *testing.T) {
	t.Parallel()

	c := projcache.New(8)
	p := projcache.Params{Method: reduce.MethodPCA, Components: 2, Seed: 3}

	a, err := c.Project(p, sample, nil)
	require.NoError(t, err)
	b, err := c.Project(p, sample, nil)
	require.NoError(t, err)
	assert.Same(t, a, b)

	direct, err := reduce.PCA(sample, p.Options()...)
	require.NoError(t, err)
	assert.Equal(t, direct, a)

	lda, err := c.Project(projcache.Params{Method: reduce.MethodLDA, Components: 1, Seed: 3}, sample, []int{0, 0, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, lda.Components())

	iso, err := c.Project(projcache.Params{Method: reduce.MethodIsomap, Components: 2, Neighbors: 2, Seed: 3}, sample, nil)
	require.NoError(t, err)
	assert.Equal(t, reduce.MethodIsomap, iso.Method)

	_, err = c.Project(projcache.Params{Method: "tsne"}, sample, nil)
	require.ErrorIs(t, err, reduce.ErrInvalidInput)
}

func TestCache_ConcurrentUse(t *testing.T) {
	t.Parallel()

	c := projcache.New(4)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				key := uint64((g + i) % 6)
				_, _ = c.GetOrCompute(key, func() (*reduce.Result, error) { return &reduce.Result{}, nil })
			}
		}(g)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 4)
}
