// SPDX-License-Identifier: MIT
// Package: synth
//
// options.go — functional options for the synthetic data generators.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand;
//     without either, DefaultSeed is used.

package synth

import (
	"math"
	"math/rand" // RNG source for stochastic generators
)

// Defaults.
const (
	// DefaultSeed seeds the generator when neither WithSeed nor WithRand is given.
	DefaultSeed int64 = 42

	// DefaultCenterScale multiplies the standard-normal draw of every center coordinate.
	DefaultCenterScale = 3.0

	// DefaultSpread multiplies the standard-normal offset of every point.
	DefaultSpread = 0.5

	// MaxCenterAttempts bounds the redraws spent on a minimum separation.
	MaxCenterAttempts = 1000
)

// Option customizes a generator call.
type Option func(*config)

type config struct {
	rng           *rand.Rand
	centerScale   float64
	spread        float64
	minSeparation float64 // 0 disables the check
}

// WithSeed creates a fresh *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithCenterScale sets the center scale (finite, > 0).
func WithCenterScale(s float64) Option {
	if !positiveFinite(s) {
		panic("synth: WithCenterScale: scale must be finite and > 0")
	}

	return func(c *config) { c.centerScale = s }
}

// WithSpread sets the intra-cluster spread (finite, >= 0).
func WithSpread(s float64) Option {
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		panic("synth: WithSpread: spread must be finite and >= 0")
	}

	return func(c *config) { c.spread = s }
}

// WithMinSeparation requires every pair of centers to be at least d apart.
// Centers are redrawn up to MaxCenterAttempts times.
func WithMinSeparation(d float64) Option {
	if !positiveFinite(d) {
		panic("synth: WithMinSeparation: distance must be finite and > 0")
	}

	return func(c *config) { c.minSeparation = d }
}

func positiveFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func newConfig(opts ...Option) config {
	c := config{
		centerScale: DefaultCenterScale,
		spread:      DefaultSpread,
	}
	for _, set := range opts {
		if set != nil {
			set(&c)
		}
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return c
}
