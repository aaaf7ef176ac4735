package prune

import (
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/domino14/ramsey/bitgraph"
)

func completeGraph(n int) *bitgraph.Graph {
	g := &bitgraph.Graph{}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(i, j)
		}
	}
	return g
}

// K4 minus an edge: spine (0,1) with pages 2 and 3, a book of order 2.
func bookOfOrder2() *bitgraph.Graph {
	g := &bitgraph.Graph{}
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(0, 3)
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)
	return g
}

func TestContainsBookCompleteGraph(t *testing.T) {
	is := is.New(t)

	// In K5 every spine has exactly 3 common neighbors.
	g := completeGraph(5)
	is.True(ContainsBook(g, 5, 2))
	is.True(ContainsBook(g, 5, 3))
	is.True(!ContainsBook(g, 5, 4))

	is.True(ContainsBookAt(g, 4, 2))
	is.True(ContainsBookAt(g, 4, 3))
	is.True(!ContainsBookAt(g, 4, 4))
}

func TestContainsBookEdgeless(t *testing.T) {
	is := is.New(t)

	g := &bitgraph.Graph{}
	for k := 1; k <= 8; k++ {
		is.True(!ContainsBook(g, 5, k))
		is.True(!ContainsBookAt(g, 4, k))
	}
}

func TestContainsBookNeedsAdjacentSpine(t *testing.T) {
	is := is.New(t)

	// 0 and 1 share two common neighbors but are not adjacent: a
	// "cherry", not a book.
	g := &bitgraph.Graph{}
	g.AddEdge(0, 2)
	g.AddEdge(0, 3)
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)
	is.True(!ContainsBook(g, 4, 2))
}

func TestContainsBookMonotonicInOrder(t *testing.T) {
	is := is.New(t)

	graphs := []*bitgraph.Graph{completeGraph(6), bookOfOrder2(), completeGraph(9)}
	for _, g := range graphs {
		for k := 8; k >= 2; k-- {
			if ContainsBook(g, 9, k) {
				is.True(ContainsBook(g, 9, k-1))
			}
		}
	}
}

func TestContainsBookPermutationInvariant(t *testing.T) {
	is := is.New(t)

	g := bookOfOrder2()
	n := 5

	perms := [][]int{
		{0, 1, 2, 3, 4},
		{4, 3, 2, 1, 0},
		{2, 0, 4, 1, 3},
		{1, 4, 0, 3, 2},
	}
	for _, p := range perms {
		relabeled := &bitgraph.Graph{}
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if g.HasEdge(u, v) {
					relabeled.AddEdge(p[u], p[v])
				}
			}
		}
		for k := 1; k <= 4; k++ {
			is.Equal(ContainsBook(relabeled, n, k), ContainsBook(g, n, k))
		}
	}
}

func TestPrePruneFiresAndKeepsFiring(t *testing.T) {
	is := is.New(t)

	o := NewB2B8Oracle()
	g := bookOfOrder2()
	is.True(o.PrePrune(g, 4))

	// Extending the graph cannot remove the book.
	g.AddEdge(4, 0)
	g.AddEdge(4, 1)
	is.True(o.PrePrune(g, 5))
	is.True(ContainsBook(g, 5, 2))
}

func TestPrePruneCleanBranch(t *testing.T) {
	is := is.New(t)

	// C5 has no two adjacent vertices with a common neighbor.
	g := &bitgraph.Graph{}
	for i := 0; i < 5; i++ {
		g.AddEdge(i, (i+1)%5)
	}
	o := NewB2B8Oracle()
	is.True(!o.PrePrune(g, 5))
}

func TestPruneAcceptsWhenComplementIsBookFree(t *testing.T) {
	is := is.New(t)

	// K9's complement is edgeless, so no book of order 8 exists there.
	g := completeGraph(9)
	orig := *g
	o := NewB2B8Oracle()

	is.True(!o.Prune(g, 9))
	is.Equal(o.Count(9), uint64(1))
	is.Equal(*g, orig) // restored bit for bit
}

func TestPruneRejectsAndRestores(t *testing.T) {
	is := is.New(t)

	// An edgeless graph on 11 vertices: the complement is K11, where
	// every spine has 9 common neighbors.
	g := &bitgraph.Graph{}
	orig := *g
	o := NewB2B8Oracle()

	is.True(o.Prune(g, 11))
	is.Equal(o.Count(11), uint64(0))
	is.Equal(*g, orig)
}

func TestPruneCounterAccumulates(t *testing.T) {
	is := is.New(t)

	o := NewB2B8Oracle()
	g := completeGraph(9)
	for i := 0; i < 5; i++ {
		is.True(!o.Prune(g, 9))
	}
	is.Equal(o.Count(9), uint64(5))
	is.Equal(o.Count(8), uint64(0))

	o.Reset()
	is.Equal(o.Count(9), uint64(0))
}

func TestMergeSumsWorkerCounters(t *testing.T) {
	is := is.New(t)

	a := NewB2B8Oracle()
	b := NewB2B8Oracle()
	g := completeGraph(9)
	a.Prune(g, 9)
	a.Prune(g, 9)
	b.Prune(g, 9)

	a.Merge(b)
	is.Equal(a.Count(9), uint64(3))
	is.Equal(b.Count(9), uint64(1))
}

func TestSummaryOutput(t *testing.T) {
	is := is.New(t)

	o := NewB2B8Oracle()
	g := completeGraph(9)
	o.Prune(g, 9)

	var sb strings.Builder
	o.Summary(&sb, 4)
	is.Equal(sb.String(),
		"Nv=3, num ramsey graphs generated: 0\nNv=4, num ramsey graphs generated: 0\n")

	sb.Reset()
	o.Summary(&sb, 3)
	is.Equal(sb.String(), "Nv=3, num ramsey graphs generated: 0\n")
}

func TestHooks(t *testing.T) {
	is := is.New(t)

	o := NewB2B8Oracle()
	var sb strings.Builder
	hooks := o.Hooks(&sb, 3)

	g := completeGraph(9)
	is.True(!hooks.Prune(g, 9))
	is.True(hooks.PrePrune(bookOfOrder2(), 4))

	hooks.Summary(1, time.Millisecond)
	is.Equal(sb.String(), "Nv=3, num ramsey graphs generated: 0\n")
	is.Equal(o.Count(9), uint64(1))
}
