// Package tabu implements tabu search over edge-colorings to find Ramsey
// lower-bound constructions: colorings whose monochromatic bad-subgraph
// count (the score) is zero.
//
// The search has infinite tabu tenure: the hash of every coloring ever
// visited is remembered, and the walk never revisits one. There are no
// restarts inside a single search; each step moves to a non-tabu
// neighbor of minimum score change, breaking ties uniformly at random.
package tabu

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/ramsey/ramsey"
)

var (
	// ErrExhausted means every neighboring coloring was already visited.
	ErrExhausted = errors.New("tabu: all moves are tabu")
	// ErrStepLimit means the search hit Options.MaxSteps before reaching
	// score zero.
	ErrStepLimit = errors.New("tabu: step limit reached")
)

// Options tunes a single tabu search.
type Options struct {
	// LogRecords logs each coloring attaining a new minimum score.
	LogRecords bool
	// MaxSteps bounds the walk; 0 means unbounded.
	MaxSteps int
	// SearchID labels log lines when several searches run in parallel.
	SearchID int
}

// A Result describes how a search ended.
type Result struct {
	Steps int // moves made
	Score int // score of the final coloring; 0 on success
}

// A Problem specifies what the search is constructing.
type Problem struct {
	NumVerts int
	Kind     ramsey.Subgraph
	BadSizes []int
}

func (p Problem) String() string {
	return fmt.Sprintf("%d vertices, no %v of sizes %v", p.NumVerts, p.Kind, p.BadSizes)
}

// Search walks g until its score reaches zero, mutating g in place. It
// returns ErrStepLimit or ErrExhausted with the best state reached so
// far still applied, and ctx.Err if the context is canceled. Pass a nil
// rng to use a randomly seeded one.
func Search(ctx context.Context, g *ramsey.Graph, opts Options, rng *frand.RNG) (Result, error) {
	if rng == nil {
		rng = frand.New()
	}

	visited := map[uint64]struct{}{g.Hash(): {}}
	current := g.Score()
	best := math.MaxInt
	steps := 0
	var bestMoves []ramsey.Move

	for current != 0 {
		select {
		case <-ctx.Done():
			return Result{Steps: steps, Score: current}, ctx.Err()
		default:
		}
		if opts.MaxSteps > 0 && steps >= opts.MaxSteps {
			return Result{Steps: steps, Score: current}, ErrStepLimit
		}

		// score every non-tabu move, keeping the ones of minimum delta.
		bestDelta := math.MaxInt
		bestMoves = bestMoves[:0]
		g.ForEachMove(func(m ramsey.Move) {
			if _, seen := visited[g.HashAfter(m)]; seen {
				return
			}
			delta := g.MoveDelta(m)
			if delta < bestDelta {
				bestDelta = delta
				bestMoves = bestMoves[:0]
			}
			if delta == bestDelta {
				bestMoves = append(bestMoves, m)
			}
		})
		if len(bestMoves) == 0 {
			return Result{Steps: steps, Score: current}, ErrExhausted
		}

		m := bestMoves[rng.Intn(len(bestMoves))]
		visited[g.HashAfter(m)] = struct{}{}
		g.Apply(m)
		current += bestDelta
		steps++

		if current < best {
			best = current
			if opts.LogRecords {
				log.Info().
					Int("searchID", opts.SearchID).
					Int("score", best).
					Int("steps", steps).
					Msg("new record score")
				log.Debug().Msgf("record coloring:\n%v", g)
			}
		}
	}

	return Result{Steps: steps, Score: 0}, nil
}

// SearchUntilSuccess restarts Search from fresh random colorings until
// one reaches score zero, and returns that coloring. With unbounded
// MaxSteps a single search only ends early when its whole neighborhood
// is tabu, so usually exactly one round runs.
func SearchUntilSuccess(ctx context.Context, p Problem, opts Options, rng *frand.RNG) (*ramsey.Graph, Result, error) {
	if rng == nil {
		rng = frand.New()
	}
	totalSteps := 0
	for {
		g, err := ramsey.Random(p.NumVerts, p.Kind, p.BadSizes, rng)
		if err != nil {
			return nil, Result{}, err
		}
		res, err := Search(ctx, g, opts, rng)
		totalSteps += res.Steps
		switch {
		case err == nil:
			return g, Result{Steps: totalSteps, Score: 0}, nil
		case errors.Is(err, ErrExhausted), errors.Is(err, ErrStepLimit):
			log.Debug().
				Int("searchID", opts.SearchID).
				Int("score", res.Score).
				Int("steps", res.Steps).
				AnErr("reason", err).
				Msg("restarting from a fresh coloring")
		default:
			return g, Result{Steps: totalSteps, Score: res.Score}, err
		}
	}
}
