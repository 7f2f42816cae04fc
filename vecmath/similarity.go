// SPDX-License-Identifier: MIT

package vecmath

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Match is one ranked row of a similarity search.
type Match struct {
	Index      int     `json:"index"`      // row index in the searched set
	Similarity float64 `json:"similarity"` // cosine similarity to the query, in [-1, 1]
}

// Cosine returns a·b / (‖a‖‖b‖).
// Returns ErrDivideByZero when either vector has a norm below Epsilon.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	na, nb := Norm(a), Norm(b)
	if na < Epsilon || nb < Epsilon {
		return 0, ErrDivideByZero
	}

	return floats.Dot(a, b) / (na * nb), nil
}

// TopK ranks rows by cosine similarity to query, most similar first, and
// returns at most k matches. Ties keep the lower row index first.
// Zero-norm rows are ranked with similarity 0 rather than failing the search.
//
// Errors:
//   - ErrEmpty when query is empty; ErrDivideByZero when query has zero norm.
//   - ErrLengthMismatch when a row's length differs from the query's.
func TopK(query []float64, rows [][]float64, k int) ([]Match, error) {
	if len(query) == 0 {
		return nil, ErrEmpty
	}
	if Norm(query) < Epsilon {
		return nil, ErrDivideByZero
	}
	if k <= 0 || len(rows) == 0 {
		return []Match{}, nil
	}

	matches := make([]Match, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(query) {
			return nil, fmt.Errorf("TopK: row %d: %w", i, ErrLengthMismatch)
		}
		sim, err := Cosine(query, row)
		if err != nil {
			sim = 0 // zero-norm row: no direction to compare against
		}
		matches = append(matches, Match{Index: i, Similarity: sim})
	}
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Similarity > matches[b].Similarity
	})
	if k < len(matches) {
		matches = matches[:k]
	}

	return matches, nil
}
