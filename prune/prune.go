// Package prune implements the book-containment oracle used to cut
// branches inside an isomorph-free graph generation search. A book of
// order k is an edge (the spine) plus k further vertices adjacent to both
// spine endpoints (the pages). The generation engine owns the graph state
// and the search tree; this package only answers bounded existence
// queries against it.
package prune

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/ramsey/bitgraph"
)

// ContainsBookAt reports whether the graph contains a book of order k
// whose vertices all touch the neighborhood of ref. In an incremental
// construction where ref is the most recently added vertex, only such
// books can be new, so this is a complete test for the whole graph at
// every step. Outside that discipline use ContainsBook instead.
func ContainsBookAt(g *bitgraph.Graph, ref, k int) bool {
	adjRef := g.Neighbors(ref)

	for v1 := adjRef.NextElement(-1); v1 >= 0; v1 = adjRef.NextElement(v1) {
		n1 := g.Neighbors(v1)
		// spine (ref, v1): pages are common neighbors of ref and v1.
		if (n1 & adjRef).Count() >= k {
			return true
		}
		// spine (v1, v2) with v2 a later neighbor of v1; restarting the
		// cursor at v1 skips symmetric pairs.
		for v2 := n1.NextElement(v1); v2 >= 0; v2 = n1.NextElement(v2) {
			if (n1 & g.Neighbors(v2)).Count() >= k {
				return true
			}
		}
	}
	return false
}

// ContainsBook reports whether any edge among the first n vertices has
// endpoints with at least k common neighbors. This scans every spine and
// does not assume anything about construction order.
func ContainsBook(g *bitgraph.Graph, n, k int) bool {
	for u := 0; u < n; u++ {
		nu := g.Neighbors(u)
		for v := nu.NextElement(u); v >= 0 && v < n; v = nu.NextElement(v) {
			if (nu & g.Neighbors(v)).Count() >= k {
				return true
			}
		}
	}
	return false
}

// An Oracle holds the pruning parameters and the per-size survivor
// counters for one search session. It is not safe for concurrent use:
// give each worker its own Oracle (and graph buffer) and Merge them when
// the search ends.
type Oracle struct {
	prePruneOrder int
	finalOrder    int

	counts [bitgraph.MaxVertices + 1]uint64
}

// NewOracle returns an oracle that pre-prunes on books of order
// prePruneOrder and rejects finished graphs whose complement contains a
// book of order finalOrder.
func NewOracle(prePruneOrder, finalOrder int) *Oracle {
	log.Debug().
		Int("prePruneOrder", prePruneOrder).
		Int("finalOrder", finalOrder).
		Msg("book pruning oracle ready")
	return &Oracle{
		prePruneOrder: prePruneOrder,
		finalOrder:    finalOrder,
	}
}

// NewB2B8Oracle returns an oracle configured for (B2,B8)-good graphs:
// no book of order 2, and no book of order 8 in the complement.
func NewB2B8Oracle() *Oracle {
	return NewOracle(2, 8)
}

// PrePrune is called after each vertex is added to a partial graph, n
// being the new vertex count. It returns true when the branch can never
// lead to a graph of interest: a small book, once present, survives every
// extension.
func (o *Oracle) PrePrune(g *bitgraph.Graph, n int) bool {
	return ContainsBookAt(g, n-1, o.prePruneOrder)
}

// Prune is called once per completed size-n candidate and returns true
// when the candidate (and hence its isomorphism class) should be
// rejected. The test runs on the complement of the graph; the complement
// is undone before returning on every path, so the caller always gets
// its graph back bit for bit. Accepted graphs are tallied per size.
func (o *Oracle) Prune(g *bitgraph.Graph, n int) bool {
	g.Complement(n)
	defer g.Complement(n)

	if ContainsBookAt(g, n-1, o.finalOrder) {
		return true
	}
	o.counts[n]++
	return false
}

// Count returns how many size-n graphs have been accepted so far.
func (o *Oracle) Count(n int) uint64 {
	if n < 0 || n > bitgraph.MaxVertices {
		return 0
	}
	return o.counts[n]
}

// Merge folds the counters of another oracle into this one. Used to
// combine worker-local oracles after a partitioned search.
func (o *Oracle) Merge(other *Oracle) {
	for i := range o.counts {
		o.counts[i] += other.counts[i]
	}
}

// Reset zeroes every counter, for reuse across independent search runs.
func (o *Oracle) Reset() {
	o.counts = [bitgraph.MaxVertices + 1]uint64{}
}

// Summary writes the accumulated counts for vertex counts 3..maxN, one
// line each, to w.
func (o *Oracle) Summary(w io.Writer, maxN int) {
	if maxN > bitgraph.MaxVertices {
		maxN = bitgraph.MaxVertices
	}
	for i := 3; i <= maxN; i++ {
		fmt.Fprintf(w, "Nv=%d, num ramsey graphs generated: %d\n", i, o.counts[i])
	}
}

// Hooks bundles the three callbacks a generation engine consumes. The
// engine calls PrePrune after every vertex addition, Prune once per
// finished candidate, and Summary exactly once after the search loop
// ends.
type Hooks struct {
	PrePrune func(g *bitgraph.Graph, n int) bool
	Prune    func(g *bitgraph.Graph, n int) bool
	Summary  func(total uint64, elapsed time.Duration)
}

// Hooks returns the engine-facing callbacks for this oracle. The summary
// callback ignores the engine-reported totals except as the trigger to
// write the per-size report to out.
func (o *Oracle) Hooks(out io.Writer, maxN int) Hooks {
	return Hooks{
		PrePrune: o.PrePrune,
		Prune:    o.Prune,
		Summary: func(total uint64, elapsed time.Duration) {
			log.Debug().
				Uint64("total", total).
				Dur("elapsed", elapsed).
				Msg("search finished")
			o.Summary(out, maxN)
		},
	}
}
