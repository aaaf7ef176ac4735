// Package bitgraph implements a fixed-capacity undirected graph whose
// adjacency rows are single-word bit sets. It is the shared representation
// for the book-containment pruning hooks and the edge-coloring search:
// neighborhood intersections are one AND, their sizes one popcount.
package bitgraph

import (
	"math/bits"
	"strings"
)

// MaxVertices bounds every graph in this module. One uint64 word per
// adjacency row; vertex indices are 0-based.
const MaxVertices = 64

// A VertexSet is a bit mask of vertices. Bit i is set iff vertex i is a
// member.
type VertexSet uint64

func (s VertexSet) Contains(v int) bool {
	return s&(1<<uint(v)) != 0
}

func (s *VertexSet) Add(v int) {
	*s |= 1 << uint(v)
}

func (s *VertexSet) Remove(v int) {
	*s &^= 1 << uint(v)
}

// Count returns the number of vertices in the set.
func (s VertexSet) Count() int {
	return bits.OnesCount64(uint64(s))
}

// NextElement returns the index of the next set bit strictly after pos,
// or -1 if there is none. Pass a negative pos to start from the beginning.
// It is a restartable cursor; typical use:
//
//	for v := s.NextElement(-1); v >= 0; v = s.NextElement(v) { ... }
func (s VertexSet) NextElement(pos int) int {
	w := uint64(s)
	if pos >= 0 {
		if pos >= MaxVertices-1 {
			return -1
		}
		w &= ^uint64(0) << uint(pos+1)
	}
	if w == 0 {
		return -1
	}
	return bits.TrailingZeros64(w)
}

// Elements appends the members of s to buf and returns the result. The
// buffer form lets hot loops reuse storage.
func (s VertexSet) Elements(buf []int) []int {
	for v := s.NextElement(-1); v >= 0; v = s.NextElement(v) {
		buf = append(buf, v)
	}
	return buf
}

// mask returns a set containing vertices 0..n-1.
func mask(n int) VertexSet {
	if n >= MaxVertices {
		return ^VertexSet(0)
	}
	return VertexSet(1)<<uint(n) - 1
}

// A Graph is an undirected, loopless graph on at most MaxVertices
// vertices. The zero value is an empty graph. The adjacency relation is
// kept symmetric by the mutators; rows for vertices at or beyond the
// caller's vertex count are simply empty.
type Graph struct {
	adj [MaxVertices]VertexSet
}

// Neighbors returns the adjacency row of v.
func (g *Graph) Neighbors(v int) VertexSet {
	return g.adj[v]
}

func (g *Graph) HasEdge(u, v int) bool {
	return g.adj[u].Contains(v)
}

// AddEdge connects u and v. Self-loops are ignored.
func (g *Graph) AddEdge(u, v int) {
	if u == v {
		return
	}
	g.adj[u].Add(v)
	g.adj[v].Add(u)
}

func (g *Graph) RemoveEdge(u, v int) {
	g.adj[u].Remove(v)
	g.adj[v].Remove(u)
}

func (g *Graph) Degree(v int) int {
	return g.adj[v].Count()
}

// Clear removes every edge.
func (g *Graph) Clear() {
	for i := range g.adj {
		g.adj[i] = 0
	}
}

// Complement flips the adjacency of every pair among the first n
// vertices, in place. It is involutive: applying it twice restores the
// graph bit for bit. Rows at index n and beyond are untouched.
func (g *Graph) Complement(n int) {
	m := mask(n)
	for i := 0; i < n; i++ {
		g.adj[i] = (g.adj[i] ^ m) &^ (1 << uint(i))
	}
}

// EdgeCount returns the number of edges among the first n vertices.
func (g *Graph) EdgeCount(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += (g.adj[i] & mask(n)).Count()
	}
	return total / 2
}

// MatrixString renders the first n rows as a 0/1 adjacency matrix, one
// row per line.
func (g *Graph) MatrixString(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if g.adj[i].Contains(j) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
