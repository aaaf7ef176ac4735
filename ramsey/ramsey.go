// Package ramsey models edge-colorings of complete graphs and scores
// them by the number of monochromatic "bad" subgraphs (books or wheels)
// they contain. A coloring with score zero is a Ramsey lower-bound
// construction. The package supports local search: score changes for a
// single edge recoloring are computed without rescoring the whole graph,
// and the coloring's hash is maintained incrementally.
package ramsey

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash"
	"gopkg.in/yaml.v3"
	"lukechampine.com/frand"

	"github.com/domino14/ramsey/bitgraph"
	"github.com/domino14/ramsey/zobrist"
)

// Subgraph selects which family of monochromatic subgraphs is forbidden.
type Subgraph int

const (
	// Books: an edge (the spine) plus pages adjacent to both endpoints.
	// A book on b vertices has b-2 pages.
	Books Subgraph = iota
	// Wheels: a hub adjacent to every vertex of a cycle (the rim).
	Wheels
)

func (s Subgraph) String() string {
	switch s {
	case Books:
		return "books"
	case Wheels:
		return "wheels"
	}
	return fmt.Sprintf("Subgraph(%d)", int(s))
}

// ParseSubgraph converts a CLI string into a Subgraph.
func ParseSubgraph(s string) (Subgraph, error) {
	switch strings.ToLower(s) {
	case "books":
		return Books, nil
	case "wheels":
		return Wheels, nil
	}
	return 0, fmt.Errorf(`bad subgraph must be "books" or "wheels", got %q`, s)
}

// A Move recolors edge (U, V) from OldColor to NewColor.
type Move struct {
	U, V     int
	NewColor int
	OldColor int
}

// Graph is an edge-coloring of the complete graph on numVerts vertices.
// Each color class is kept as a bitset graph so that neighborhood
// intersections (the workhorse of both scoring functions) are single
// AND+popcount operations.
type Graph struct {
	numVerts  int
	numColors int
	kind      Subgraph
	badSizes  []int

	colors [bitgraph.MaxVertices][bitgraph.MaxVertices]uint8
	nbrs   []bitgraph.Graph // one graph per color
	z      zobrist.Zobrist
	hash   uint64
}

func validate(numVerts int, kind Subgraph, badSizes []int) error {
	if numVerts < 1 || numVerts > bitgraph.MaxVertices {
		return fmt.Errorf("number of vertices must be in 1..%d, got %d",
			bitgraph.MaxVertices, numVerts)
	}
	if len(badSizes) < 2 {
		return fmt.Errorf("need a bad size per color (at least two colors), got %d", len(badSizes))
	}
	for _, b := range badSizes {
		// Smaller "books"/"wheels" degenerate into cliques and the
		// scoring functions would overcount them due to symmetry.
		if kind == Books && b < 4 {
			return fmt.Errorf("book on %d vertices is a clique; sizes must be at least 4", b)
		}
		if kind == Wheels && b < 5 {
			return fmt.Errorf("wheel on %d vertices is a clique; sizes must be at least 5", b)
		}
	}
	return nil
}

// New builds a Graph from an adjacency matrix whose entries are edge
// colors. The matrix must be square, symmetric, with zeros on the
// diagonal and entries below len(badSizes).
func New(adj [][]int, kind Subgraph, badSizes []int) (*Graph, error) {
	if err := validate(len(adj), kind, badSizes); err != nil {
		return nil, err
	}
	g := newEmpty(len(adj), kind, badSizes)
	for u := 0; u < g.numVerts; u++ {
		if len(adj[u]) != g.numVerts {
			return nil, fmt.Errorf("adjacency matrix row %d has %d entries, want %d",
				u, len(adj[u]), g.numVerts)
		}
		if adj[u][u] != 0 {
			return nil, fmt.Errorf("adjacency matrix has nonzero diagonal at %d", u)
		}
		for v := u + 1; v < g.numVerts; v++ {
			c := adj[u][v]
			if adj[v][u] != c {
				return nil, fmt.Errorf("adjacency matrix is not symmetric at (%d,%d)", u, v)
			}
			if c < 0 || c >= g.numColors {
				return nil, fmt.Errorf("edge (%d,%d) has color %d, want 0..%d",
					u, v, c, g.numColors-1)
			}
			g.setEdge(u, v, c)
		}
	}
	g.hash = g.z.Hash(g.Color)
	return g, nil
}

// Random builds a uniformly random edge-coloring. Pass a nil rng to use
// a randomly seeded one.
func Random(numVerts int, kind Subgraph, badSizes []int, rng *frand.RNG) (*Graph, error) {
	if err := validate(numVerts, kind, badSizes); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = frand.New()
	}
	g := newEmpty(numVerts, kind, badSizes)
	for u := 0; u < numVerts; u++ {
		for v := u + 1; v < numVerts; v++ {
			g.setEdge(u, v, rng.Intn(g.numColors))
		}
	}
	g.hash = g.z.Hash(g.Color)
	return g, nil
}

func newEmpty(numVerts int, kind Subgraph, badSizes []int) *Graph {
	g := &Graph{
		numVerts:  numVerts,
		numColors: len(badSizes),
		kind:      kind,
		badSizes:  append([]int(nil), badSizes...),
		nbrs:      make([]bitgraph.Graph, len(badSizes)),
	}
	g.z.Initialize(numVerts, g.numColors)
	return g
}

func (g *Graph) setEdge(u, v, color int) {
	g.colors[u][v] = uint8(color)
	g.colors[v][u] = uint8(color)
	g.nbrs[color].AddEdge(u, v)
}

func (g *Graph) NumVerts() int   { return g.numVerts }
func (g *Graph) NumColors() int  { return g.numColors }
func (g *Graph) Kind() Subgraph  { return g.kind }
func (g *Graph) BadSizes() []int { return append([]int(nil), g.badSizes...) }
func (g *Graph) Hash() uint64    { return g.hash }

// Color returns the color of edge (u, v).
func (g *Graph) Color(u, v int) int {
	return int(g.colors[u][v])
}

// neighbors returns the color-c neighborhood of v.
func (g *Graph) neighbors(color, v int) bitgraph.VertexSet {
	return g.nbrs[color].Neighbors(v)
}

// commonNeighbors returns the vertices adjacent to both u and v in the
// given color.
func (g *Graph) commonNeighbors(color, u, v int) bitgraph.VertexSet {
	return g.nbrs[color].Neighbors(u) & g.nbrs[color].Neighbors(v)
}

// Score counts the monochromatic bad subgraphs in the coloring, summed
// over colors: with kind Books and sizes [4,5] this is the number of
// 4-vertex books in color 0 plus 5-vertex books in color 1.
func (g *Graph) Score() int {
	if g.kind == Books {
		return g.countBooks()
	}
	return g.countWheels()
}

// MoveDelta returns the score change the move would cause, without
// applying it.
func (g *Graph) MoveDelta(m Move) int {
	if g.kind == Books {
		return g.booksDelta(m)
	}
	return g.wheelsDelta(m)
}

// HashAfter returns the hash of the coloring the move would produce,
// without applying it.
func (g *Graph) HashAfter(m Move) uint64 {
	return g.z.Recolor(g.hash, m.U, m.V, m.OldColor, m.NewColor)
}

// Apply recolors the edge and updates the color-class graphs and hash.
func (g *Graph) Apply(m Move) {
	g.hash = g.HashAfter(m)
	g.nbrs[m.OldColor].RemoveEdge(m.U, m.V)
	g.nbrs[m.NewColor].AddEdge(m.U, m.V)
	g.colors[m.U][m.V] = uint8(m.NewColor)
	g.colors[m.V][m.U] = uint8(m.NewColor)
}

// ForEachMove calls fn with every possible single-edge recoloring.
func (g *Graph) ForEachMove(fn func(Move)) {
	for u := 0; u < g.numVerts; u++ {
		for v := u + 1; v < g.numVerts; v++ {
			cur := int(g.colors[u][v])
			for c := 0; c < g.numColors; c++ {
				if c == cur {
					continue
				}
				fn(Move{U: u, V: v, NewColor: c, OldColor: cur})
			}
		}
	}
}

// String renders the adjacency matrix in a bracketed, comma-separated
// form that can be pasted directly into Sage.
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for u := 0; u < g.numVerts; u++ {
		if u > 0 {
			sb.WriteString(",\n ")
		}
		sb.WriteByte('[')
		for v := 0; v < g.numVerts; v++ {
			if v > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%d", g.colors[u][v])
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}

// Save writes the adjacency matrix to a text file in dir, followed by a
// YAML block with any extra metadata (problem parameters, seeds, step
// counts). The filename includes a content hash so identical reruns do
// not produce duplicates; saving the same construction twice is not an
// error. It returns the path written.
func (g *Graph) Save(dir string, meta map[string]any) (string, error) {
	matrix := g.String()
	sizeStrs := make([]string, len(g.badSizes))
	for i, b := range g.badSizes {
		sizeStrs[i] = strconv.Itoa(b)
	}
	name := fmt.Sprintf("final_adj_matrix_%v_%s_%dvertices_%016x.txt",
		g.kind, strings.Join(sizeStrs, "-"), g.numVerts, xxhash.Sum64String(matrix))
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return path, nil
		}
		return "", fmt.Errorf("failed to create construction file: %w", err)
	}
	defer f.Close()

	if _, err = f.WriteString(matrix + "\n"); err != nil {
		return "", fmt.Errorf("failed to write construction: %w", err)
	}
	if len(meta) > 0 {
		out, err := yaml.Marshal(meta)
		if err != nil {
			return "", fmt.Errorf("failed to marshal metadata: %w", err)
		}
		if _, err = f.WriteString("\n" + string(out)); err != nil {
			return "", fmt.Errorf("failed to write metadata: %w", err)
		}
	}
	return path, nil
}
