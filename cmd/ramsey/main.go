// ramsey searches for Ramsey lower-bound constructions: edge-colorings
// of a complete graph with no monochromatic books or wheels of the given
// sizes. Example:
//
//	ramsey -num-vertices 14 -bad-subgraph wheels -bad-sizes 5,7
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/ramsey/config"
	"github.com/domino14/ramsey/ramsey"
	"github.com/domino14/ramsey/tabu"
)

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad size %q: %w", p, err)
		}
		sizes = append(sizes, v)
	}
	return sizes, nil
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(level)
	log.Logger = logger

	kind, err := ramsey.ParseSubgraph(cfg.BadSubgraph)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -bad-subgraph")
	}
	sizes, err := parseSizes(cfg.BadSizes)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -bad-sizes")
	}

	p := tabu.Problem{NumVerts: cfg.NumVertices, Kind: kind, BadSizes: sizes}
	opts := tabu.Options{LogRecords: !cfg.Quiet, MaxSteps: cfg.MaxSteps}
	log.Info().Str("problem", p.String()).Int("threads", cfg.NumThreads).
		Msg("starting tabu search")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var g *ramsey.Graph
	var res tabu.Result
	if cfg.NumThreads <= 1 {
		rng := tabu.SeededRNG(cfg.Seed)
		g, res, err = tabu.SearchUntilSuccess(ctx, p, opts, rng)
	} else {
		g, res, err = tabu.Parallel(ctx, cfg.NumThreads, p, opts, cfg.Seed)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("search failed")
	}

	log.Info().Int("steps", res.Steps).Msg("final construction found")
	fmt.Println(g)

	if cfg.Save {
		meta := map[string]any{
			"bad_subgraph": kind.String(),
			"bad_sizes": strings.Join(lo.Map(sizes, func(k int, _ int) string {
				return strconv.Itoa(k)
			}), ","),
			"num_vertices": cfg.NumVertices,
			"seed":         cfg.Seed,
			"total_steps":  res.Steps,
		}
		path, err := g.Save(cfg.SaveDir, meta)
		if err != nil {
			log.Fatal().Err(err).Msg("could not save construction")
		}
		log.Info().Str("path", path).Msg("saved construction")
	}
}
