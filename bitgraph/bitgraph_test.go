package bitgraph

import (
	"testing"

	"github.com/matryer/is"
)

func TestNextElement(t *testing.T) {
	is := is.New(t)

	var s VertexSet
	s.Add(0)
	s.Add(3)
	s.Add(17)
	s.Add(63)

	is.Equal(s.NextElement(-1), 0)
	is.Equal(s.NextElement(0), 3)
	is.Equal(s.NextElement(3), 17)
	is.Equal(s.NextElement(17), 63)
	is.Equal(s.NextElement(63), -1)
	// starting between set bits
	is.Equal(s.NextElement(5), 17)
}

func TestNextElementEmpty(t *testing.T) {
	is := is.New(t)

	var s VertexSet
	is.Equal(s.NextElement(-1), -1)
	is.Equal(s.NextElement(0), -1)
	is.Equal(s.NextElement(40), -1)
	is.Equal(s.NextElement(63), -1)
}

func TestSetOps(t *testing.T) {
	is := is.New(t)

	var s VertexSet
	is.Equal(s.Count(), 0)
	s.Add(5)
	s.Add(9)
	is.True(s.Contains(5))
	is.True(!s.Contains(6))
	is.Equal(s.Count(), 2)
	s.Remove(5)
	is.True(!s.Contains(5))
	is.Equal(s.Count(), 1)
	is.Equal(s.Elements(nil), []int{9})
}

func TestAddRemoveEdgeSymmetric(t *testing.T) {
	is := is.New(t)

	g := &Graph{}
	g.AddEdge(2, 7)
	is.True(g.HasEdge(2, 7))
	is.True(g.HasEdge(7, 2))
	is.Equal(g.Degree(2), 1)

	// loops are ignored
	g.AddEdge(4, 4)
	is.True(!g.HasEdge(4, 4))

	g.RemoveEdge(7, 2)
	is.True(!g.HasEdge(2, 7))
	is.True(!g.HasEdge(7, 2))
}

func TestComplementInvolution(t *testing.T) {
	is := is.New(t)

	g := &Graph{}
	g.AddEdge(0, 1)
	g.AddEdge(1, 3)
	g.AddEdge(2, 4)
	g.AddEdge(0, 4)
	orig := *g

	n := 5
	g.Complement(n)
	is.True(!g.HasEdge(0, 1))
	is.True(g.HasEdge(0, 2))
	is.True(g.HasEdge(3, 4))
	// never reflexive
	for i := 0; i < n; i++ {
		is.True(!g.HasEdge(i, i))
	}

	g.Complement(n)
	is.Equal(*g, orig)
}

func TestComplementLeavesHigherRowsAlone(t *testing.T) {
	is := is.New(t)

	g := &Graph{}
	g.AddEdge(10, 11)
	g.Complement(5)
	is.True(g.HasEdge(10, 11))
	g.Complement(5)
	is.True(g.HasEdge(10, 11))
}

func TestEdgeCount(t *testing.T) {
	is := is.New(t)

	g := &Graph{}
	n := 5
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(i, j)
		}
	}
	is.Equal(g.EdgeCount(n), 10)
	g.Complement(n)
	is.Equal(g.EdgeCount(n), 0)
}

func TestMatrixString(t *testing.T) {
	is := is.New(t)

	g := &Graph{}
	g.AddEdge(0, 2)
	is.Equal(g.MatrixString(3), "0 0 1\n0 0 0\n1 0 0\n")
}
