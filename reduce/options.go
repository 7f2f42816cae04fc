// SPDX-License-Identifier: MIT
// Package: reduce
//
// options.go — functional options for the projection engines.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Engines themselves MUST NOT panic; they return ErrInvalidInput.
//   - Determinism is explicit: every call builds its random source from the
//     configured seed (DefaultSeed unless WithSeed/WithRand is given), so two
//     calls with the same options and input return identical output.
//   - No hidden globals; everything flows through config.

package reduce

import (
	"log/slog"
	"math"
	"math/rand"
)

// Defaults (single source of truth).
const (
	// DefaultComponents is the number of output dimensions.
	DefaultComponents = 3

	// DefaultNeighbors is the Isomap neighbor count.
	DefaultNeighbors = 10

	// DefaultIterations is the fixed power-iteration budget per component
	// for PCA and Isomap (no tolerance-based early exit).
	DefaultIterations = 100

	// DefaultLDAIterations is the number of outer LDA rounds per component.
	DefaultLDAIterations = 50

	// DefaultSolverIterations is the number of Gauss–Seidel sweeps used to
	// approximately solve Sw·x = Sb·v in every LDA round.
	DefaultSolverIterations = 10

	// DefaultRegularization is added to the diagonal of the within-class
	// scatter so the Gauss–Seidel solve always has a positive diagonal.
	DefaultRegularization = 0.1

	// DefaultSeed seeds the start-vector source when none is configured.
	DefaultSeed int64 = 1

	// MaxRestarts bounds the random redraws of a collapsed start vector.
	MaxRestarts = 64
)

// Source is the injectable random-number source for start vectors.
// *math/rand.Rand and *math/rand/v2.Rand both satisfy it. A Source is not
// required to be safe for concurrent use; RunAll gives each engine its own.
type Source interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}

// Option customizes an engine call.
type Option func(*config)

type config struct {
	components       int
	neighbors        int
	iterations       int
	ldaIterations    int
	solverIterations int
	regularization   float64
	seed             int64
	src              Source // overrides seed when non-nil
	logger           *slog.Logger
}

// WithComponents sets the number of output dimensions k (k >= 1).
// Engines return ErrInvalidInput when k exceeds the feasible rank.
func WithComponents(k int) Option {
	if k < 1 {
		panic("reduce: WithComponents: k must be >= 1")
	}

	return func(c *config) { c.components = k }
}

// WithNeighbors sets the Isomap neighbor count (n >= 1).
// Isomap returns ErrInvalidInput when n >= number of samples.
func WithNeighbors(n int) Option {
	if n < 1 {
		panic("reduce: WithNeighbors: n must be >= 1")
	}

	return func(c *config) { c.neighbors = n }
}

// WithIterations overrides the PCA/Isomap power-iteration budget.
func WithIterations(n int) Option {
	if n < 1 {
		panic("reduce: WithIterations: n must be >= 1")
	}

	return func(c *config) { c.iterations = n }
}

// WithLDAIterations overrides the LDA outer rounds and inner Gauss–Seidel sweeps.
func WithLDAIterations(outer, inner int) Option {
	if outer < 1 || inner < 1 {
		panic("reduce: WithLDAIterations: outer and inner must be >= 1")
	}

	return func(c *config) {
		c.ldaIterations = outer
		c.solverIterations = inner
	}
}

// WithRegularization overrides the diagonal shift added to the within-class
// scatter. Must be finite and > 0.
func WithRegularization(lambda float64) Option {
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) || lambda <= 0 {
		panic("reduce: WithRegularization: lambda must be finite and > 0")
	}

	return func(c *config) { c.regularization = lambda }
}

// WithSeed makes the call build its start-vector source from seed.
// Clears any source set by WithRand (last writer wins).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.src = nil
	}
}

// WithRand injects an explicit random source. Panics on nil.
func WithRand(src Source) Option {
	if src == nil {
		panic("reduce: WithRand(nil)")
	}

	return func(c *config) { c.src = src }
}

// WithLogger attaches a structured logger for Debug-level diagnostics
// (restarts, clamping, disconnected graphs, eigenvalue estimates). Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("reduce: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}

// newConfig applies opts on top of the documented defaults.
func newConfig(opts ...Option) config {
	c := config{
		components:       DefaultComponents,
		neighbors:        DefaultNeighbors,
		iterations:       DefaultIterations,
		ldaIterations:    DefaultLDAIterations,
		solverIterations: DefaultSolverIterations,
		regularization:   DefaultRegularization,
		seed:             DefaultSeed,
		logger:           slog.New(slog.DiscardHandler),
	}
	for _, set := range opts {
		if set != nil {
			set(&c)
		}
	}

	return c
}

// source returns the configured source or a fresh one seeded from c.seed.
func (c config) source() Source {
	if c.src != nil {
		return c.src
	}

	return rand.New(rand.NewSource(c.seed))
}
