// SPDX-License-Identifier: MIT

// Command dimred generates synthetic clustered data and projects datasets
// with PCA, LDA and Isomap.
//
//	dimred generate --points 20 --clusters 3 --dims 10 > data.json
//	dimred project --in data.json --method pca --method lda
//	dimred nearest --in data.json --method pca --query 0 --query 7 --top 5
//	dimred --log-level debug demo
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/dimred/projcache"
	"github.com/katalvlaran/dimred/reduce"
	"github.com/katalvlaran/dimred/synth"
)

func main() {
	if err := newApp(projcache.New(projcache.DefaultMaxEntries)).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp builds the command tree. project and nearest resolve projections
// through cache, so repeated requests for the same dataset and parameters
// within one app are computed once.
func newApp(cache *projcache.Cache) *cli.App {
	return &cli.App{
		Name:  "dimred",
		Usage: "Dimensionality reduction with PCA, LDA and Isomap",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "Write a synthetic clustered dataset as JSON",
				Action: generateCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "points", Usage: "Points per cluster", Value: 20},
					&cli.IntFlag{Name: "clusters", Usage: "Number of clusters", Value: 3},
					&cli.IntFlag{Name: "dims", Usage: "Feature dimensions", Value: 10},
					&cli.Int64Flag{Name: "seed", Usage: "Generator seed", Value: synth.DefaultSeed},
					&cli.Float64Flag{Name: "center-scale", Usage: "Scale of cluster centers", Value: synth.DefaultCenterScale},
					&cli.Float64Flag{Name: "spread", Usage: "Intra-cluster standard deviation", Value: synth.DefaultSpread},
					&cli.Float64Flag{Name: "min-separation", Usage: "Minimum distance between centers (0 disables)"},
					outFlag(),
				},
			},
			{
				Name:   "project",
				Usage:  "Project a dataset with one or more methods",
				Action: projectCommand(cache),
				Flags:  flags([]cli.Flag{methodsFlag(), inFlag(), outFlag()}, engineFlags()),
			},
			{
				Name:   "nearest",
				Usage:  "Rank samples by cosine similarity to one sample in projected space",
				Action: nearestCommand(cache),
				Flags: flags([]cli.Flag{
					&cli.StringFlag{Name: "method", Aliases: []string{"m"}, Usage: "Projection method", Value: string(reduce.MethodPCA)},
					&cli.IntSliceFlag{Name: "query", Aliases: []string{"q"}, Usage: "Index of a query sample; repeatable", Required: true},
					&cli.IntFlag{Name: "top", Usage: "Number of matches", Value: 5},
					inFlag(),
					outFlag(),
				}, engineFlags()),
			},
			{
				Name:   "demo",
				Usage:  "Run all methods on three separated clusters and report class separation",
				Action: demoCommand,
				Flags: flags([]cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Also write the projections to this file (- for stdout)"},
				}, engineFlags()),
			},
		},
	}
}

// Flag constructors return fresh values: a cli flag keeps parse state and
// must not be shared between commands.

func engineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "components",
			Aliases: []string{"k"},
			Usage:   "Number of output dimensions",
			Value:   reduce.DefaultComponents,
		},
		&cli.IntFlag{
			Name:  "neighbors",
			Usage: "Isomap neighbor count (must be below the sample count)",
			Value: reduce.DefaultNeighbors,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "Seed for power-iteration start vectors",
			Value: reduce.DefaultSeed,
		},
	}
}

func inFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "in",
		Aliases: []string{"i"},
		Usage:   `Input dataset JSON ({"data": [[...]], "labels": [...]}); - reads stdin`,
		Value:   "-",
	}
}

func outFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Usage:   "Output file; - writes stdout",
		Value:   "-",
	}
}

func methodsFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:    "method",
		Aliases: []string{"m"},
		Usage:   "Projection method (pca, lda, isomap); repeatable",
		Value:   cli.NewStringSlice(string(reduce.MethodPCA), string(reduce.MethodLDA), string(reduce.MethodIsomap)),
	}
}

func flags(groups ...[]cli.Flag) []cli.Flag {
	var out []cli.Flag
	for _, g := range groups {
		out = append(out, g...)
	}

	return out
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	errWriter := c.App.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(errWriter, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
