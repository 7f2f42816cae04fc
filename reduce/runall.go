// SPDX-License-Identifier: MIT

package reduce

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

// Suite collects the results of RunAll. LDA is nil when no labels were given.
type Suite struct {
	PCA    *Result
	LDA    *Result
	Isomap *Result
}

// RunAll runs PCA, LDA (only when labels is non-nil) and Isomap concurrently,
// one goroutine per engine, and returns the first error.
//
// Every engine gets its own random source. With a seed (the default or
// WithSeed) each engine is seeded identically, so every result equals the
// corresponding standalone call. With WithRand, one seed per engine is drawn
// from the injected source before any goroutine starts.
//
// ctx is checked before each engine starts; a running engine is not
// interrupted.
func RunAll[L comparable](ctx context.Context, data [][]float64, labels []L, opts ...Option) (*Suite, error) {
	cfg := newConfig(opts...)
	seeds := engineSeeds(cfg)

	var suite Suite
	g, gctx := errgroup.WithContext(ctx)
	run := func(slot **Result, seed int64, engine func(...Option) (*Result, error)) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			own := make([]Option, 0, len(opts)+1)
			own = append(own, opts...)
			res, err := engine(append(own, WithSeed(seed))...)
			if err != nil {
				return err
			}
			*slot = res

			return nil
		})
	}

	run(&suite.PCA, seeds[0], func(o ...Option) (*Result, error) { return PCA(data, o...) })
	if labels != nil {
		run(&suite.LDA, seeds[1], func(o ...Option) (*Result, error) { return LDA(data, labels, o...) })
	} else {
		cfg.logger.Debug("runall: no labels, skipping lda")
	}
	run(&suite.Isomap, seeds[2], func(o ...Option) (*Result, error) { return Isomap(data, o...) })

	if err := g.Wait(); err != nil {
		return nil, reduceErrorf(opRunAll, err)
	}

	return &suite, nil
}

// engineSeeds returns one seed per engine in PCA, LDA, Isomap order.
func engineSeeds(cfg config) [3]int64 {
	if cfg.src == nil {
		return [3]int64{cfg.seed, cfg.seed, cfg.seed}
	}
	var out [3]int64
	for i := range out {
		out[i] = int64(cfg.src.Float64() * math.MaxInt64)
	}

	return out
}
