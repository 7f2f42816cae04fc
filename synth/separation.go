// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"

	"github.com/katalvlaran/dimred/vecmath"
)

// SeparationRatio measures how well labeled points are separated:
//
//	mean distance between class centroids
//	--------------------------------------
//	mean distance of a point to its centroid
//
// Labels must be non-negative. Needs at least two classes; returns +Inf
// when every point sits exactly on its centroid.
func SeparationRatio(points [][]float64, labels []int) (float64, error) {
	if len(points) == 0 || len(points) != len(labels) {
		return 0, fmt.Errorf("%w: %d points, %d labels", ErrInvalidShape, len(points), len(labels))
	}
	dims := len(points[0])

	index := make(map[int]int)
	var centroids [][]float64
	var counts []int
	for i, p := range points {
		if len(p) != dims || labels[i] < 0 {
			return 0, fmt.Errorf("%w: point %d", ErrInvalidShape, i)
		}
		c, ok := index[labels[i]]
		if !ok {
			c = len(centroids)
			index[labels[i]] = c
			centroids = append(centroids, make([]float64, dims))
			counts = append(counts, 0)
		}
		counts[c]++
		for j, v := range p {
			centroids[c][j] += v
		}
	}
	if len(centroids) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 classes", ErrInvalidShape)
	}
	for c := range centroids {
		for j := range centroids[c] {
			centroids[c][j] /= float64(counts[c])
		}
	}

	var intra float64
	for i, p := range points {
		d, _ := vecmath.Euclidean(p, centroids[index[labels[i]]]) // lengths checked above
		intra += d
	}
	intra /= float64(len(points))

	var inter float64
	var pairs int
	for a := 0; a < len(centroids); a++ {
		for b := a + 1; b < len(centroids); b++ {
			d, _ := vecmath.Euclidean(centroids[a], centroids[b])
			inter += d
			pairs++
		}
	}
	inter /= float64(pairs)

	return inter / intra, nil
}
