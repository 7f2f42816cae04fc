// SPDX-License-Identifier: MIT

// Package reduce projects high-dimensional samples onto a few dimensions.
//
// 🚀 Engines:
//
//   - PCA: unsupervised; leading eigenvectors of the sample covariance.
//   - LDA: supervised; directions maximizing between-class over
//     within-class scatter (at most classes-1 of them).
//   - Isomap: geodesic distances on a k-nearest-neighbor graph, embedded
//     with classical MDS.
//
// ✨ Shared machinery:
//   - PowerIterator: fixed-budget power iteration with deflation (matrix
//     mode) or orthogonalization (operator mode); no tolerance-based early
//     exit, so the cost of a call is bounded and predictable.
//   - ClassicalMDS and GeodesicDistances are exported on their own.
//   - RunAll runs the engines concurrently, one goroutine each.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dimred/reduce"
//
//	res, err := reduce.PCA(data, reduce.WithComponents(2))
//	lda, err := reduce.LDA(data, labels)               // labels: any comparable type
//	iso, err := reduce.Isomap(data, reduce.WithNeighbors(8))
//
// Determinism: start vectors come from a source seeded with DefaultSeed
// unless WithSeed or WithRand is given, so identical calls return identical
// output. Results are approximations; eigenvalue estimates rank components
// in extraction order only.
//
// Errors: ErrInvalidInput for unusable input (fatal, surfaced immediately);
// ErrNumericDegeneracy only when start-vector restarts are exhausted.
//
// Performance: Isomap is dominated by Floyd–Warshall, O(N³); PCA and LDA by
// the D×D scatter and power iteration, O(N·D² + k·iters·D²).
package reduce
