// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/dimred/projcache"
	"github.com/katalvlaran/dimred/reduce"
	"github.com/katalvlaran/dimred/synth"
	"github.com/katalvlaran/dimred/vecmath"
)

// demo scenario: three clusters of twenty points in ten dimensions.
const (
	demoPoints        = 20
	demoClusters      = 3
	demoDims          = 10
	demoMinSeparation = 5.0
)

func generateCommand(c *cli.Context) error {
	opts := []synth.Option{
		synth.WithSeed(c.Int64("seed")),
		synth.WithCenterScale(c.Float64("center-scale")),
		synth.WithSpread(c.Float64("spread")),
	}
	if sep := c.Float64("min-separation"); sep > 0 {
		opts = append(opts, synth.WithMinSeparation(sep))
	}

	ds, err := synth.Clusters(c.Int("points"), c.Int("clusters"), c.Int("dims"), opts...)
	if err != nil {
		return fmt.Errorf("failed to generate dataset: %w", err)
	}
	slog.Info("dataset generated", "samples", len(ds.Data), "clusters", len(ds.Centers), "dims", c.Int("dims"))

	return writeJSON(c, c.String("out"), ds)
}

func projectCommand(cache *projcache.Cache) cli.ActionFunc {
	return func(c *cli.Context) error {
		ds, err := readDataset(c)
		if err != nil {
			return err
		}
		methods, err := parseMethods(c.StringSlice("method"))
		if err != nil {
			return err
		}

		out := make(map[string][][]float64, len(methods))
		for _, m := range methods {
			if m == reduce.MethodLDA && len(ds.Labels) == 0 {
				if c.IsSet("method") {
					return fmt.Errorf("method %s needs labels in the input", m)
				}
				slog.Warn("no labels in input, skipping", "method", m)
				continue
			}
			p, err := engineParams(c, m)
			if err != nil {
				return err
			}
			res, err := cache.Project(p, ds.Data, ds.Labels, reduce.WithLogger(slog.Default()))
			if err != nil {
				return fmt.Errorf("%s failed: %w", m, err)
			}
			slog.Info("projected", "method", m, "samples", len(res.Projected), "components", res.Components())
			out[string(m)] = res.Projected
		}
		logCacheStats(cache)

		return writeJSON(c, c.String("out"), out)
	}
}

// neighbors is the nearest-sample answer for one query.
type neighbors struct {
	Query   int             `json:"query"`
	Matches []vecmath.Match `json:"matches"`
}

func nearestCommand(cache *projcache.Cache) cli.ActionFunc {
	return func(c *cli.Context) error {
		ds, err := readDataset(c)
		if err != nil {
			return err
		}
		m, err := reduce.ParseMethod(c.String("method"))
		if err != nil {
			return err
		}
		p, err := engineParams(c, m)
		if err != nil {
			return err
		}
		top := c.Int("top")
		if top < 1 {
			return fmt.Errorf("--top must be >= 1, got %d", top)
		}

		queries := c.IntSlice("query")
		out := make([]neighbors, 0, len(queries))
		for _, q := range queries {
			if q < 0 || q >= len(ds.Data) {
				return fmt.Errorf("query index %d out of range [0, %d)", q, len(ds.Data))
			}
			// every query resolves the projection; only the first computes it
			res, err := cache.Project(p, ds.Data, ds.Labels, reduce.WithLogger(slog.Default()))
			if err != nil {
				return fmt.Errorf("%s failed: %w", m, err)
			}
			matches, err := vecmath.TopK(res.Projected[q], res.Projected, top+1)
			if err != nil {
				return fmt.Errorf("similarity search failed: %w", err)
			}
			out = append(out, neighbors{Query: q, Matches: dropSelf(matches, q, top)})
		}
		logCacheStats(cache)

		return writeJSON(c, c.String("out"), out)
	}
}

// dropSelf removes the query's own match and trims to top.
func dropSelf(matches []vecmath.Match, q, top int) []vecmath.Match {
	out := make([]vecmath.Match, 0, len(matches))
	for _, mt := range matches {
		if mt.Index != q {
			out = append(out, mt)
		}
	}
	if len(out) > top {
		out = out[:top]
	}

	return out
}

func demoCommand(c *cli.Context) error {
	p, err := engineParams(c, "")
	if err != nil {
		return err
	}
	ds, err := synth.Clusters(demoPoints, demoClusters, demoDims, synth.WithMinSeparation(demoMinSeparation))
	if err != nil {
		return fmt.Errorf("failed to generate dataset: %w", err)
	}
	slog.Info("demo dataset", "samples", len(ds.Data), "clusters", demoClusters, "dims", demoDims,
		"min_center_distance", synth.MinPairwiseDistance(ds.Centers))

	suite, err := reduce.RunAll(context.Background(), ds.Data, ds.Labels,
		reduce.WithComponents(p.Components),
		reduce.WithNeighbors(p.Neighbors),
		reduce.WithSeed(p.Seed),
		reduce.WithLogger(slog.Default()),
	)
	if err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}

	out := map[string][][]float64{}
	for _, res := range []*reduce.Result{suite.PCA, suite.LDA, suite.Isomap} {
		ratio, err := synth.SeparationRatio(res.Projected, ds.Labels)
		if err != nil {
			return err
		}
		slog.Info("separation", "method", res.Method, "components", res.Components(), "ratio", ratio)
		out[string(res.Method)] = res.Projected
	}

	if path := c.String("out"); path != "" {
		return writeJSON(c, path, out)
	}

	return nil
}

// engineParams maps the shared engine flags onto cache parameters.
// Counts below 1 are rejected.
func engineParams(c *cli.Context, m reduce.Method) (projcache.Params, error) {
	p := projcache.Params{
		Method:     m,
		Components: c.Int("components"),
		Neighbors:  c.Int("neighbors"),
		Seed:       c.Int64("seed"),
	}
	if p.Components < 1 {
		return p, fmt.Errorf("--components must be >= 1, got %d", p.Components)
	}
	if p.Neighbors < 1 {
		return p, fmt.Errorf("--neighbors must be >= 1, got %d", p.Neighbors)
	}

	return p, nil
}

func logCacheStats(cache *projcache.Cache) {
	st := cache.Stats()
	slog.Debug("projection cache", "entries", st.Entries, "hits", st.Hits, "misses", st.Misses, "evictions", st.Evictions)
}

func parseMethods(names []string) ([]reduce.Method, error) {
	seen := make(map[reduce.Method]bool, len(names))
	methods := make([]reduce.Method, 0, len(names))
	for _, name := range names {
		m, err := reduce.ParseMethod(name)
		if err != nil {
			return nil, err
		}
		if !seen[m] {
			seen[m] = true
			methods = append(methods, m)
		}
	}
	if len(methods) == 0 {
		return nil, fmt.Errorf("at least one method is required")
	}

	return methods, nil
}

func readDataset(c *cli.Context) (*synth.Dataset, error) {
	var r io.Reader = c.App.Reader
	if path := c.String("in"); path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	if r == nil {
		r = os.Stdin
	}

	var ds synth.Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	if len(ds.Labels) > 0 && len(ds.Labels) != len(ds.Data) {
		return nil, fmt.Errorf("dataset has %d samples but %d labels", len(ds.Data), len(ds.Labels))
	}
	slog.Debug("dataset loaded", "samples", len(ds.Data), "labeled", len(ds.Labels) > 0)

	return &ds, nil
}

func writeJSON(c *cli.Context, path string, v any) error {
	var w io.Writer = c.App.Writer
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		if err = encodeJSON(f, v); err != nil {
			_ = f.Close()
			return err
		}
		if err = f.Close(); err != nil {
			return fmt.Errorf("failed to close output: %w", err)
		}

		return nil
	}
	if w == nil {
		w = os.Stdout
	}

	return encodeJSON(w, v)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	return nil
}
