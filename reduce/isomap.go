// SPDX-License-Identifier: MIT
// Package: reduce
//
// isomap.go — geodesic distances on a k-nearest-neighbor graph followed by
// classical MDS.
//
// Graph construction:
//   - Distances are plain Euclidean over the raw features.
//   - Every point selects its n nearest other points, ties broken by index;
//     the edge is written symmetrically, so a pair is connected when either
//     endpoint selects the other.
//   - Unconnected pairs hold +Inf; the diagonal is 0.
//
// Shortest paths use in-place Floyd–Warshall (O(N³), the dominant cost).
// Entries that stay +Inf afterwards (disconnected components) are replaced
// with 2·max finite geodesic so the MDS stage only sees finite values.

package reduce

import (
	"math"
	"sort"

	"github.com/katalvlaran/dimred/matrix"
)

// Isomap embeds data into k dimensions preserving geodesic distances.
//
// Options: WithComponents (default 3), WithNeighbors (default 10),
// WithIterations, WithSeed/WithRand, WithLogger.
//
// Errors:
//   - ErrInvalidInput when N < 2, rows are ragged or non-finite,
//     neighbors >= N, or k > N.
func Isomap(data [][]float64, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	X, err := dataMatrix(opIsomap, data)
	if err != nil {
		return nil, err
	}
	if cfg.components > X.Rows() {
		return nil, invalidf(opIsomap, "component count %d exceeds sample count %d", cfg.components, X.Rows())
	}

	geo, err := geodesic(opIsomap, X, cfg)
	if err != nil {
		return nil, err
	}
	res, err := classicalMDS(opIsomap, geo, cfg)
	if err != nil {
		return nil, err
	}
	res.Method = MethodIsomap

	return res, nil
}

// GeodesicDistances returns the N×N shortest-path matrix over the
// nNeighbors-nearest-neighbor graph of data, with disconnected pairs set to
// twice the largest finite geodesic. Only WithLogger is consulted from opts.
//
// Errors:
//   - ErrInvalidInput when N < 2, rows are ragged or non-finite, or
//     nNeighbors is outside [1, N-1].
func GeodesicDistances(data [][]float64, nNeighbors int, opts ...Option) (*matrix.Dense, error) {
	X, err := dataMatrix(opGeodesic, data)
	if err != nil {
		return nil, err
	}
	if nNeighbors < 1 {
		return nil, invalidf(opGeodesic, "neighbor count %d must be >= 1", nNeighbors)
	}
	cfg := newConfig(opts...)
	cfg.neighbors = nNeighbors

	return geodesic(opGeodesic, X, cfg)
}

// geodesic runs the graph stages for X under cfg.neighbors.
func geodesic(op string, X *matrix.Dense, cfg config) (*matrix.Dense, error) {
	n := X.Rows()
	if cfg.neighbors >= n {
		return nil, invalidf(op, "neighbor count %d must be < sample count %d", cfg.neighbors, n)
	}

	dist, err := matrix.PairwiseEuclidean(X)
	if err != nil {
		return nil, reduceErrorf(op, err)
	}
	graph, err := neighborGraph(dist, cfg.neighbors)
	if err != nil {
		return nil, reduceErrorf(op, err)
	}
	if err = matrix.FloydWarshall(graph); err != nil {
		return nil, reduceErrorf(op, err)
	}

	maxGeo, ok, err := matrix.MaxFinite(graph)
	if err != nil {
		return nil, reduceErrorf(op, err)
	}
	if !ok {
		// unreachable: the diagonal is always finite
		maxGeo = 0
	}
	replaced, err := matrix.ReplaceInfInPlace(graph, 2*maxGeo)
	if err != nil {
		return nil, reduceErrorf(op, err)
	}
	if replaced > 0 {
		cfg.logger.Debug("neighbor graph disconnected",
			"unreachable_pairs", replaced/2, "fill", 2*maxGeo, "neighbors", cfg.neighbors)
	}

	return graph, nil
}

// neighborGraph builds the symmetric kNN graph from a full distance matrix.
func neighborGraph(dist *matrix.Dense, k int) (*matrix.Dense, error) {
	n := dist.Rows()
	graph, err := matrix.NewPreparedDense(n, n, matrix.WithAllowInfDistances())
	if err != nil {
		return nil, err
	}
	inf := math.Inf(1)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				if err = graph.Set(i, j, inf); err != nil {
					return nil, err
				}
			}
		}
	}

	order := make([]int, 0, n-1)
	var row []float64
	for i = 0; i < n; i++ {
		row, _ = dist.Row(i) // i in range
		order = order[:0]
		for j = 0; j < n; j++ {
			if j != i {
				order = append(order, j)
			}
		}
		sort.Slice(order, func(a, b int) bool {
			da, db := row[order[a]], row[order[b]]
			if da != db {
				return da < db
			}
			return order[a] < order[b]
		})
		for _, j = range order[:k] {
			if err = graph.Set(i, j, row[j]); err != nil {
				return nil, err
			}
			if err = graph.Set(j, i, row[j]); err != nil {
				return nil, err
			}
		}
	}

	return graph, nil
}
