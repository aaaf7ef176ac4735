package tabu

import (
	"context"
	"encoding/binary"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/domino14/ramsey/ramsey"
)

// workerRNG derives a deterministic generator for one worker from the
// master seed. The values need not be random per se; distinct master
// seeds just have to give every worker a distinct stream.
func workerRNG(masterSeed uint64, worker int) *frand.RNG {
	var seed [32]byte
	binary.LittleEndian.PutUint64(seed[0:], masterSeed)
	binary.LittleEndian.PutUint64(seed[8:], uint64(worker)+1)
	return frand.NewCustom(seed[:], 1024, 12)
}

// SeededRNG returns a deterministic generator for the given seed, or a
// randomly seeded one when seed is 0.
func SeededRNG(seed uint64) *frand.RNG {
	if seed == 0 {
		return frand.New()
	}
	return workerRNG(seed, 0)
}

// Parallel runs SearchUntilSuccess on numWorkers goroutines and returns
// the first score-zero coloring found; the remaining workers are
// canceled. A masterSeed of 0 picks one at random (and makes the run
// non-reproducible).
func Parallel(ctx context.Context, numWorkers int, p Problem, opts Options,
	masterSeed uint64) (*ramsey.Graph, Result, error) {

	if masterSeed == 0 {
		masterSeed = frand.Uint64n(1<<63 - 2)
	}
	log.Debug().
		Int("workers", numWorkers).
		Uint64("masterSeed", masterSeed).
		Str("problem", p.String()).
		Msg("starting parallel search")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var mu sync.Mutex
	var winner *ramsey.Graph
	var winnerRes Result

	g := errgroup.Group{}
	for w := 0; w < numWorkers; w++ {
		w := w
		g.Go(func() error {
			workerOpts := opts
			workerOpts.SearchID = w
			found, res, err := SearchUntilSuccess(ctx, p, workerOpts, workerRNG(masterSeed, w))
			if err != nil {
				// context cancellation just means another worker won.
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			mu.Lock()
			if winner == nil {
				winner = found
				winnerRes = res
				log.Info().
					Int("searchID", w).
					Int("steps", res.Steps).
					Msg("search finished")
			}
			mu.Unlock()
			cancel()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Result{}, err
	}
	if winner == nil {
		return nil, Result{}, ctx.Err()
	}
	return winner, winnerRes, nil
}
