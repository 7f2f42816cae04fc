// SPDX-License-Identifier: MIT

package reduce

import (
	"strings"

	"github.com/katalvlaran/dimred/matrix"
)

// Method names a projection engine.
type Method string

const (
	// MethodPCA is principal component analysis.
	MethodPCA Method = "pca"
	// MethodLDA is linear discriminant analysis (supervised).
	MethodLDA Method = "lda"
	// MethodIsomap is Isomap (geodesic classical MDS).
	MethodIsomap Method = "isomap"
	// MethodMDS marks a direct ClassicalMDS call on a distance matrix.
	MethodMDS Method = "mds"
)

// Methods lists the data-matrix engines in a stable order.
var Methods = []Method{MethodPCA, MethodLDA, MethodIsomap}

// ParseMethod maps a case-insensitive name to a Method.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Methods {
		if m == known {
			return m, nil
		}
	}

	return "", invalidf(opParseMethod, "unknown method %q", s)
}

// EigenPair is one extracted projection direction.
// Pairs are ordered by extraction sequence; because power iteration is
// approximate, Value is a ranking hint rather than an exact eigenvalue.
type EigenPair struct {
	Vector []float64 // unit norm; length D (PCA/LDA) or N (Isomap/MDS)
	Value  float64   // norm recorded at the last accepted iteration
}

// Result is the outcome of one engine call.
type Result struct {
	Method    Method
	Projected [][]float64 // N rows × k columns
	Basis     []EigenPair // k pairs in extraction order
}

// Components returns the number of output columns.
func (r *Result) Components() int { return len(r.Basis) }

// dataMatrix validates and copies samples into a Dense.
// Requires N >= 2, D >= 1, rectangular rows and finite values.
func dataMatrix(op string, data [][]float64) (*matrix.Dense, error) {
	if len(data) < 2 {
		return nil, invalidf(op, "need at least 2 samples, got %d", len(data))
	}
	if len(data[0]) == 0 {
		return nil, invalidf(op, "samples have no features")
	}
	X, err := matrix.NewDenseFromRows(data)
	if err != nil {
		return nil, reduceErrorf(op, asInvalid(err))
	}

	return X, nil
}

// projectRows returns X·W as rows, where W = [v_1 … v_k] is D×k.
func projectRows(X *matrix.Dense, basis []EigenPair) ([][]float64, error) {
	vecs := make([][]float64, len(basis))
	for j, p := range basis {
		vecs[j] = p.Vector
	}
	Wt, err := matrix.NewDenseFromRows(vecs)
	if err != nil {
		return nil, err
	}
	W, err := matrix.Transpose(Wt)
	if err != nil {
		return nil, err
	}
	P, err := matrix.Mul(X, W)
	if err != nil {
		return nil, err
	}

	return rowsOf(P), nil
}
