// SPDX-License-Identifier: MIT

package reduce

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers match them with errors.Is; engines wrap them with
// the failing operation and, where useful, the underlying matrix sentinel.
var (
	// ErrInvalidInput reports input the engines cannot work with: fewer than
	// two samples, ragged or non-finite rows, label/sample count mismatch,
	// fewer than two classes, neighbor count >= sample count, or a component
	// count beyond the feasible rank. Fatal for the call.
	ErrInvalidInput = errors.New("reduce: invalid input")

	// ErrNumericDegeneracy reports that every random restart of a start
	// vector collapsed below the stability threshold. Practically
	// unreachable; normal degeneracy is recovered internally.
	ErrNumericDegeneracy = errors.New("reduce: numeric degeneracy, restarts exhausted")
)

// Operation tags for error wrapping.
const (
	opPCA         = "PCA"
	opLDA         = "LDA"
	opIsomap      = "Isomap"
	opMDS         = "ClassicalMDS"
	opGeodesic    = "GeodesicDistances"
	opPower       = "PowerIterator"
	opRunAll      = "RunAll"
	opParseMethod = "ParseMethod"
)

// reduceErrorf wraps err with an operation tag: "Op: underlying".
func reduceErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// invalidf builds an ErrInvalidInput with a formatted reason.
func invalidf(op, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, ErrInvalidInput, fmt.Sprintf(format, args...))
}

// asInvalid tags a structural error (ragged rows, NaN, non-square) as invalid input.
func asInvalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}
