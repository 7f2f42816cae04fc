// SPDX-License-Identifier: MIT
// Package: reduce
//
// power.go — fixed-budget power iteration with deflation.
//
// Algorithm per component:
//  1. Draw a random start vector (uniform [0,1) entries), optionally
//     orthogonalize it against the already-extracted vectors, normalize.
//     A start vector whose norm collapses below vecmath.Epsilon is redrawn
//     (at most MaxRestarts times, then ErrNumericDegeneracy).
//  2. Repeat a fixed number of iterations: y = Op(v), optionally
//     orthogonalize y, record ‖y‖ as the eigenvalue estimate, v = y/‖y‖.
//     There is no tolerance-based early exit; the budget bounds worst-case
//     cost deterministically. If ‖y‖ collapses the iteration stops and the
//     last valid v is accepted.
//  3. Matrix mode only: deflate M -= λ·v·vᵀ so the next component is
//     extracted from the residual.

package reduce

import (
	"log/slog"

	"github.com/katalvlaran/dimred/matrix"
	"github.com/katalvlaran/dimred/vecmath"
)

// Operator maps a unit vector v to Op(v). The LDA engine uses it for
// v ↦ Sw⁻¹·Sb·v, which is not a plain matrix-vector product.
type Operator func(v []float64) ([]float64, error)

// PowerIterator extracts approximate dominant eigenpairs.
// A PowerIterator owns its random source and is not safe for concurrent use.
type PowerIterator struct {
	src        Source
	iterations int
	logger     *slog.Logger
}

// NewPowerIterator builds an iterator from the shared options
// (WithIterations, WithSeed/WithRand, WithLogger).
func NewPowerIterator(opts ...Option) *PowerIterator {
	return newPowerIterator(newConfig(opts...))
}

func newPowerIterator(cfg config) *PowerIterator {
	return &PowerIterator{
		src:        cfg.source(),
		iterations: cfg.iterations,
		logger:     cfg.logger,
	}
}

// Dominant extracts k eigenpairs of the symmetric matrix m with deflation.
// m itself is not modified; the deflation runs on a private copy.
//
// Errors:
//   - ErrInvalidInput when m is nil, not square, or k is outside [1, n].
//   - ErrNumericDegeneracy when start-vector restarts are exhausted.
func (p *PowerIterator) Dominant(m matrix.Matrix, k int) ([]EigenPair, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, reduceErrorf(opPower, asInvalid(err))
	}
	if k < 1 || k > m.Rows() {
		return nil, invalidf(opPower, "component count %d outside [1, %d]", k, m.Rows())
	}
	work, err := matrix.NewDenseFromRows(rowsOf(m), matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, reduceErrorf(opPower, err)
	}

	return p.dominantInPlace(work, k)
}

// dominantInPlace runs Dominant on a matrix owned by the caller and leaves
// the deflated residual in m.
func (p *PowerIterator) dominantInPlace(m *matrix.Dense, k int) ([]EigenPair, error) {
	n := m.Rows()
	pairs := make([]EigenPair, 0, k)
	op := func(v []float64) ([]float64, error) { return matrix.MatVec(m, v) }

	var comp int
	for comp = 0; comp < k; comp++ {
		pair, err := p.iterate(op, n, nil, p.iterations)
		if err != nil {
			return nil, reduceErrorf(opPower, err)
		}
		if err = matrix.AddOuterInPlace(m, -pair.Value, pair.Vector, pair.Vector); err != nil {
			return nil, reduceErrorf(opPower, err)
		}
		p.logger.Debug("power iteration component", "component", comp, "eigenvalue", pair.Value)
		pairs = append(pairs, pair)
	}

	return pairs, nil
}

// DominantOperator extracts k mutually orthogonal directions of op on R^n.
// Every start vector and every iterate is orthogonalized against the
// previously accepted vectors; no deflation is applied.
func (p *PowerIterator) DominantOperator(op Operator, n, k, iterations int) ([]EigenPair, error) {
	if op == nil || n < 1 || k < 1 || k > n || iterations < 1 {
		return nil, invalidf(opPower, "operator extraction needs op, 1 <= k=%d <= n=%d, iterations=%d", k, n, iterations)
	}
	pairs := make([]EigenPair, 0, k)
	basis := make([][]float64, 0, k)

	var comp int
	for comp = 0; comp < k; comp++ {
		pair, err := p.iterate(op, n, basis, iterations)
		if err != nil {
			return nil, reduceErrorf(opPower, err)
		}
		p.logger.Debug("operator component", "component", comp, "eigenvalue", pair.Value)
		pairs = append(pairs, pair)
		basis = append(basis, pair.Vector)
	}

	return pairs, nil
}

// iterate runs one component: random start, fixed budget, early stop on collapse.
func (p *PowerIterator) iterate(op Operator, n int, basis [][]float64, iterations int) (EigenPair, error) {
	v, err := p.randomUnit(n, basis)
	if err != nil {
		return EigenPair{}, err
	}

	value := 0.0
	var iter int
	for iter = 0; iter < iterations; iter++ {
		y, err := op(v)
		if err != nil {
			return EigenPair{}, err
		}
		if len(basis) > 0 {
			vecmath.Orthogonalize(y, basis)
		}
		norm, err := vecmath.NormalizeInPlace(y)
		if err != nil {
			// Op annihilated v (inside the span of earlier vectors or the
			// null space): keep the last valid v.
			p.logger.Debug("iterate collapsed, keeping last vector", "iteration", iter, "norm", norm)
			break
		}
		v, value = y, norm
	}

	return EigenPair{Vector: v, Value: value}, nil
}

// randomUnit draws a unit vector of length n orthogonal to basis.
// Collapsed draws are discarded and redrawn.
func (p *PowerIterator) randomUnit(n int, basis [][]float64) ([]float64, error) {
	var attempt, i int
	for attempt = 0; attempt < MaxRestarts; attempt++ {
		v := make([]float64, n)
		for i = 0; i < n; i++ {
			v[i] = p.src.Float64()
		}
		if len(basis) > 0 {
			vecmath.Orthogonalize(v, basis)
		}
		if _, err := vecmath.NormalizeInPlace(v); err != nil {
			p.logger.Debug("random restart", "attempt", attempt+1, "dim", n)
			continue
		}
		if len(basis) > 0 {
			// second pass after normalizing removes the residual drift
			vecmath.Orthogonalize(v, basis)
			if _, err := vecmath.NormalizeInPlace(v); err != nil {
				p.logger.Debug("random restart", "attempt", attempt+1, "dim", n)
				continue
			}
		}

		return v, nil
	}

	return nil, ErrNumericDegeneracy
}

// asDense returns m itself when it is a *Dense, otherwise a finite copy.
func asDense(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d, nil
	}

	return matrix.NewDenseFromRows(rowsOf(m))
}

// rowsOf exports any Matrix as rows (fast path for *Dense).
func rowsOf(m matrix.Matrix) [][]float64 {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Rows2D()
	}
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j], _ = m.At(i, j)
		}
	}

	return out
}
