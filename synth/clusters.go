// SPDX-License-Identifier: MIT

// Package synth generates labeled synthetic datasets for exercising the
// projection engines: isotropic Gaussian clusters around random centers.
package synth

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dimred/vecmath"
)

var (
	// ErrInvalidShape reports a non-positive point, cluster or dimension count.
	ErrInvalidShape = errors.New("synth: invalid shape")

	// ErrSeparation reports that no center layout met WithMinSeparation
	// within MaxCenterAttempts draws.
	ErrSeparation = errors.New("synth: minimum center separation not reached")
)

// Dataset is a labeled sample matrix. Labels[i] is the cluster index of Data[i].
type Dataset struct {
	Data    [][]float64 `json:"data"`
	Labels  []int       `json:"labels"`
	Centers [][]float64 `json:"centers,omitempty"`
}

// Clusters draws nClusters centers in dims dimensions and nPoints samples
// around each, ordered cluster by cluster.
//
//	center_c  = N(0, I)·centerScale
//	x         = center_c + N(0, I)·spread
//
// Errors: ErrInvalidShape, ErrSeparation.
// Complexity: O(nClusters·nPoints·dims), plus O(attempts·nClusters²·dims)
// when a minimum separation is set.
func Clusters(nPoints, nClusters, dims int, opts ...Option) (*Dataset, error) {
	if nPoints < 1 || nClusters < 1 || dims < 1 {
		return nil, fmt.Errorf("%w: points=%d clusters=%d dims=%d", ErrInvalidShape, nPoints, nClusters, dims)
	}
	cfg := newConfig(opts...)

	centers, err := drawCenters(cfg, nClusters, dims)
	if err != nil {
		return nil, err
	}

	total := nPoints * nClusters
	ds := &Dataset{
		Data:    make([][]float64, 0, total),
		Labels:  make([]int, 0, total),
		Centers: centers,
	}
	var c, p, j int
	for c = 0; c < nClusters; c++ {
		for p = 0; p < nPoints; p++ {
			x := make([]float64, dims)
			for j = 0; j < dims; j++ {
				x[j] = centers[c][j] + cfg.rng.NormFloat64()*cfg.spread
			}
			ds.Data = append(ds.Data, x)
			ds.Labels = append(ds.Labels, c)
		}
	}

	return ds, nil
}

// drawCenters samples centers, redrawing the whole layout while any pair is
// closer than the configured minimum.
func drawCenters(cfg config, n, dims int) ([][]float64, error) {
	var attempt, c, j int
	for attempt = 0; attempt < MaxCenterAttempts; attempt++ {
		centers := make([][]float64, n)
		for c = 0; c < n; c++ {
			centers[c] = make([]float64, dims)
			for j = 0; j < dims; j++ {
				centers[c][j] = cfg.rng.NormFloat64() * cfg.centerScale
			}
		}
		if cfg.minSeparation == 0 || MinPairwiseDistance(centers) >= cfg.minSeparation {
			return centers, nil
		}
	}

	return nil, fmt.Errorf("%w: %g after %d attempts", ErrSeparation, cfg.minSeparation, MaxCenterAttempts)
}

// MinPairwiseDistance returns the smallest Euclidean distance between two
// distinct rows, or 0 for fewer than two rows.
func MinPairwiseDistance(rows [][]float64) float64 {
	if len(rows) < 2 {
		return 0
	}
	best := -1.0
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			d, err := vecmath.Euclidean(rows[i], rows[j])
			if err != nil {
				continue
			}
			if best < 0 || d < best {
				best = d
			}
		}
	}
	if best < 0 {
		return 0
	}

	return best
}
