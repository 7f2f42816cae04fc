// SPDX-License-Identifier: MIT

// Package vecmath implements the vector primitives shared by the projection
// engines: dot product, L2 norm, normalization, matrix-vector product over
// row slices and Gram–Schmidt orthogonalization. It also carries the small
// similarity-search helpers (Euclidean, Cosine, TopK) used on projected output.
//
// The arithmetic is delegated to gonum's floats package; this package adds
// the numeric-stability contract (Epsilon) and sentinel errors on top.
package vecmath

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Epsilon is the stability threshold below which a norm is treated as zero.
const Epsilon = 1e-10

var (
	// ErrDivideByZero is returned when a vector's norm is below Epsilon and
	// cannot be normalized. Callers recover by drawing a fresh vector.
	ErrDivideByZero = errors.New("vecmath: norm below stability threshold")

	// ErrLengthMismatch is returned when operands have different lengths.
	ErrLengthMismatch = errors.New("vecmath: length mismatch")

	// ErrEmpty is returned when an operation requires at least one element.
	ErrEmpty = errors.New("vecmath: empty vector")
)

// Dot returns Σ a[i]*b[i]. Lengths must match (panics otherwise, as floats.Dot).
func Dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// Norm returns the Euclidean (L2) norm of v.
func Norm(v []float64) float64 {
	return floats.Norm(v, 2)
}

// Normalize returns v / ‖v‖ as a new slice.
// Returns ErrDivideByZero when ‖v‖ < Epsilon.
func Normalize(v []float64) ([]float64, error) {
	out := make([]float64, len(v))
	copy(out, v)
	if _, err := NormalizeInPlace(out); err != nil {
		return nil, err
	}

	return out, nil
}

// NormalizeInPlace scales v to unit length and returns the original norm.
// On ErrDivideByZero v is left untouched.
func NormalizeInPlace(v []float64) (float64, error) {
	n := Norm(v)
	if n < Epsilon {
		return n, ErrDivideByZero
	}
	floats.Scale(1/n, v)

	return n, nil
}

// MatVec returns M·v where M is given as rows.
// Every row must have len(v) entries.
func MatVec(rows [][]float64, v []float64) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) != len(v) {
			return nil, fmt.Errorf("MatVec: row %d has %d entries, want %d: %w", i, len(row), len(v), ErrLengthMismatch)
		}
		out[i] = floats.Dot(row, v)
	}

	return out, nil
}

// Orthogonalize removes from v its projection on every basis vector, in order
// (modified Gram–Schmidt). Basis vectors are assumed unit-norm. v is updated
// in place and its resulting norm is returned.
func Orthogonalize(v []float64, basis [][]float64) float64 {
	for _, b := range basis {
		floats.AddScaled(v, -floats.Dot(v, b), b)
	}

	return Norm(v)
}

// Euclidean returns ‖a - b‖₂.
func Euclidean(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}

	return floats.Distance(a, b, 2), nil
}
