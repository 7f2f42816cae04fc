// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra: operate on the flat data slice directly.
//   - Use NewDenseFromRows to ingest [][]float64 samples; use Rows2D to export.
//   - DefaultValidateNaNInf is on; distance buffers need WithAllowInfDistances.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row: O(c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxFill = "Fill" // method tag used in error wrappers
	ctxRow  = "Row"  // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set/Fill.
//   - allowInf relaxes the policy for +Inf only (distance sentinel).
type Dense struct {
	r, c           int       // row and column counts (>0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
	allowInf       bool      // +Inf accepted even when validateNaNInf is on
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize the default policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	return NewPreparedDense(rows, cols)
}

// NewPreparedDense creates an r×c zero matrix with an explicit numeric policy.
//
// Implementation:
//   - Stage 1: validate shape.
//   - Stage 2: resolve options (gatherOptions) and copy the policy flags.
//
// Behavior highlights:
//   - WithAllowInfDistances makes Set(+Inf) legal; NaN and -Inf stay rejected.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewPreparedDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
		allowInf:       o.allowInfDistances,
	}, nil
}

// NewDenseFromRows copies a rectangular [][]float64 into a new Dense.
//
// Implementation:
//   - Stage 1: validate at least one row and one column.
//   - Stage 2: validate every row has len(rows[0]) entries (no ragged input).
//   - Stage 3: copy rows into the flat buffer under the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions for empty input.
//   - ErrDimensionMismatch for ragged rows.
//   - ErrNaNInf when a non-finite value violates the policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	c := len(rows[0])
	m, err := NewPreparedDense(len(rows), c, opts...)
	if err != nil {
		return nil, err
	}

	var i int
	for i = 0; i < len(rows); i++ {
		if len(rows[i]) != c {
			return nil, denseErrorf(ctxFill, i, len(rows[i]), ErrDimensionMismatch)
		}
		if err = m.checkSlice(i, rows[i]); err != nil {
			return nil, err
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat offset for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// rejects reports whether v violates this matrix's numeric policy.
func (m *Dense) rejects(v float64) bool {
	if !m.validateNaNInf {
		return false
	}
	if math.IsNaN(v) || math.IsInf(v, -1) {
		return true
	}

	return math.IsInf(v, 1) && !m.allowInf
}

// checkSlice validates a row-shaped slice against the numeric policy.
func (m *Dense) checkSlice(row int, vals []float64) error {
	if !m.validateNaNInf {
		return nil
	}
	for j, v := range vals {
		if m.rejects(v) {
			return denseErrorf(ctxFill, row, j, ErrNaNInf)
		}
	}

	return nil
}

// At returns the element at (row, col) or a wrapped ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for values rejected by the policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.rejects(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Fill overwrites the whole buffer from a row-major slice of length r*c.
//
// Errors:
//   - ErrDimensionMismatch when len(vals) != r*c.
//   - ErrNaNInf when a value violates the numeric policy (buffer untouched).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Fill(vals []float64) error {
	if len(vals) != len(m.data) {
		return denseErrorf(ctxFill, m.r, m.c, ErrDimensionMismatch)
	}
	var i int
	for i = 0; i < m.r; i++ {
		if err := m.checkSlice(i, vals[i*m.c:(i+1)*m.c]); err != nil {
			return err
		}
	}
	copy(m.data, vals)

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Rows2D exports the matrix as a freshly allocated [][]float64.
// Complexity: O(r*c).
func (m *Dense) Rows2D() [][]float64 {
	out := make([][]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.cloneDense()
}

// cloneDense is Clone with the concrete type preserved for internal fast paths.
func (m *Dense) cloneDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
		allowInf:       m.allowInf,
	}
}

// String renders one bracketed row per line.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
