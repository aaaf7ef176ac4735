package ramsey

import "gonum.org/v1/gonum/stat/combin"

// choose is a binomial coefficient that returns 0 out of range instead
// of panicking, matching the combinatorial convention the counts rely
// on (no ways to pick pages that aren't there).
func choose(n, k int) int {
	if k < 0 || n < 0 || n < k {
		return 0
	}
	return combin.Binomial(n, k)
}

// countBooks counts the monochromatic books in the coloring. A book on
// badSizes[c] vertices in color c is a spine edge plus badSizes[c]-2
// pages drawn from the spine's common neighborhood, so each spine
// contributes one binomial coefficient.
func (g *Graph) countBooks() int {
	numBooks := 0
	for u := 0; u < g.numVerts; u++ {
		for v := u + 1; v < g.numVerts; v++ {
			color := int(g.colors[u][v])
			common := g.commonNeighbors(color, u, v).Count()
			numBooks += choose(common, g.badSizes[color]-2)
		}
	}
	return numBooks
}

// booksDelta returns the change in countBooks that recoloring edge
// (u, v) would cause. Only books whose spine is (u, v), or whose spine
// touches a common neighbor of u and v, are affected.
func (g *Graph) booksDelta(m Move) int {
	u, v := m.U, m.V
	newSize := g.badSizes[m.NewColor]
	oldSize := g.badSizes[m.OldColor]

	newNbrs := g.commonNeighbors(m.NewColor, u, v)
	oldNbrs := g.commonNeighbors(m.OldColor, u, v)

	// books with (u,v) as the spine.
	delta := choose(newNbrs.Count(), newSize-2)
	delta -= choose(oldNbrs.Count(), oldSize-2)

	// new books with (u,v) incident to a page: w becomes a page of a
	// book whose spine pairs w's common neighbor with u or v.
	for w := newNbrs.NextElement(-1); w >= 0; w = newNbrs.NextElement(w) {
		for _, spine := range [2]int{u, v} {
			otherPages := g.commonNeighbors(m.NewColor, spine, w).Count()
			delta += choose(otherPages, newSize-3)
		}
	}

	// books destroyed the same way. Since u, v and w are mutually
	// adjacent in the old color, the vertex opposite the spine already
	// sits in the common neighborhood and must not be double counted as
	// a page, hence the -1.
	for w := oldNbrs.NextElement(-1); w >= 0; w = oldNbrs.NextElement(w) {
		for _, spine := range [2]int{u, v} {
			otherPages := g.commonNeighbors(m.OldColor, spine, w).Count() - 1
			delta -= choose(otherPages, oldSize-3)
		}
	}

	return delta
}
