package ramsey

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/domino14/ramsey/bitgraph"
)

// countWheels counts the monochromatic wheels in the coloring. For a
// fixed hub and color, the wheels centered there are exactly the cycles
// of length badSizes[c]-1 inside the hub's neighborhood.
func (g *Graph) countWheels() int {
	numWheels := 0
	for hub := 0; hub < g.numVerts; hub++ {
		for color := 0; color < g.numColors; color++ {
			numWheels += g.countCyclesRestricted(
				g.badSizes[color]-1, color, g.neighbors(color, hub))
		}
	}
	return numWheels
}

// countCyclesRestricted counts the color-monochromatic cycles of the
// given length induced on the vertex set possible. Each iteration fixes
// the lowest remaining vertex as a cycle member (killing rotation
// symmetry) and counts cycles through it; ordering the two neighbors
// s < t kills reflection symmetry.
func (g *Graph) countCyclesRestricted(length, color int, possible bitgraph.VertexSet) int {
	numCycles := 0
	var elemBuf [bitgraph.MaxVertices]int

	for possible.Count() >= length-1 {
		vtx := possible.NextElement(-1)
		possible.Remove(vtx)

		onCycle := possible & g.neighbors(color, vtx)
		elems := onCycle.Elements(elemBuf[:0])
		for i := 0; i < len(elems); i++ {
			for j := i + 1; j < len(elems); j++ {
				s, t := elems[i], elems[j]
				rest := possible
				rest.Remove(s)
				rest.Remove(t)
				numCycles += g.countPathsSToT(s, t, color, rest, length-3)
			}
		}
	}
	return numCycles
}

// countPathsSToT counts the monochromatic paths from s to t having
// numInternal internal vertices, all drawn from possible. It splits the
// count by the set of internal vertices used; more than one path can
// visit the same set in different orders.
func (g *Graph) countPathsSToT(s, t, color int, possible bitgraph.VertexSet, numInternal int) int {
	if numInternal == 0 {
		// a "path" with no internal vertices is just the edge (s, t).
		if int(g.colors[s][t]) == color {
			return 1
		}
		return 0
	}

	var elemBuf [bitgraph.MaxVertices]int
	elems := possible.Elements(elemBuf[:0])
	if len(elems) < numInternal {
		return 0
	}

	totalPaths := 0
	for _, idxs := range combin.Combinations(len(elems), numInternal) {
		var internal bitgraph.VertexSet
		for _, i := range idxs {
			internal.Add(elems[i])
		}
		totalPaths += g.countPathsMiddle(s, t, color, internal, numInternal)
	}
	return totalPaths
}

// countPathsMiddle counts the paths from s to t whose internal vertices
// are precisely the given set, in some order. It peels off the vertex
// adjacent to t and recurses on the shorter path.
func (g *Graph) countPathsMiddle(s, t, color int, internal bitgraph.VertexSet, numInternal int) int {
	if numInternal == 0 {
		if int(g.colors[s][t]) == color {
			return 1
		}
		return 0
	}

	totalPaths := 0
	lastCandidates := internal & g.neighbors(color, t)
	for last := lastCandidates.NextElement(-1); last >= 0; last = lastCandidates.NextElement(last) {
		rest := internal
		rest.Remove(last)
		totalPaths += g.countPathsMiddle(s, last, color, rest, numInternal-1)
	}
	return totalPaths
}

// wheelsDelta returns the change in countWheels that recoloring edge
// (u, v) would cause. The affected wheels either carry (u, v) on the
// rim, or have u or v as the hub with the edge as a spoke.
func (g *Graph) wheelsDelta(m Move) int {
	u, v := m.U, m.V
	newSize := g.badSizes[m.NewColor]
	oldSize := g.badSizes[m.OldColor]

	delta := 0

	// wheels gaining (u,v) on the rim: the hub sees both endpoints, and
	// the rest of the rim is a path from u to v through the hub's
	// neighborhood.
	newCommon := g.commonNeighbors(m.NewColor, u, v)
	for hub := newCommon.NextElement(-1); hub >= 0; hub = newCommon.NextElement(hub) {
		possible := g.neighbors(m.NewColor, hub)
		possible.Remove(u)
		possible.Remove(v)
		delta += g.countPathsSToT(u, v, m.NewColor, possible, newSize-3)
	}

	// wheels losing (u,v) on the rim.
	oldCommon := g.commonNeighbors(m.OldColor, u, v)
	for hub := oldCommon.NextElement(-1); hub >= 0; hub = oldCommon.NextElement(hub) {
		possible := g.neighbors(m.OldColor, hub)
		possible.Remove(u)
		possible.Remove(v)
		delta -= g.countPathsSToT(u, v, m.OldColor, possible, oldSize-3)
	}

	var elemBuf [bitgraph.MaxVertices]int

	// wheels gaining (u,v) as a spoke: one endpoint is the hub, the
	// other sits on the rim between two common neighbors s and t. The
	// other rim endpoint is not yet a neighbor of the hub in the new
	// color, so it cannot sneak into the path.
	for _, hub := range [2]int{u, v} {
		elems := newCommon.Elements(elemBuf[:0])
		for i := 0; i < len(elems); i++ {
			for j := i + 1; j < len(elems); j++ {
				s, t := elems[i], elems[j]
				possible := g.neighbors(m.NewColor, hub)
				possible.Remove(s)
				possible.Remove(t)
				delta += g.countPathsSToT(s, t, m.NewColor, possible, newSize-4)
			}
		}
	}

	// wheels losing (u,v) as a spoke: here both endpoints are already
	// adjacent to the hub in the old color, so exclude them explicitly.
	for _, hub := range [2]int{u, v} {
		elems := oldCommon.Elements(elemBuf[:0])
		for i := 0; i < len(elems); i++ {
			for j := i + 1; j < len(elems); j++ {
				s, t := elems[i], elems[j]
				possible := g.neighbors(m.OldColor, hub)
				possible.Remove(u)
				possible.Remove(v)
				possible.Remove(s)
				possible.Remove(t)
				delta -= g.countPathsSToT(s, t, m.OldColor, possible, oldSize-4)
			}
		}
	}

	return delta
}
