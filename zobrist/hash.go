package zobrist

import (
	"lukechampine.com/frand"
)

const bignum = 1<<63 - 2

// generate a zobrist hash for an edge-colored complete graph.
// https://en.wikipedia.org/wiki/Zobrist_hashing
// Each (edge, color) pair gets a random key; the hash of a coloring is
// the XOR of the keys of its edges, so recoloring one edge updates the
// hash with two XORs instead of a full rehash.
type Zobrist struct {
	edgeTable [][]uint64

	numVerts  int
	numColors int
}

func (z *Zobrist) Initialize(numVerts, numColors int) {
	z.numVerts = numVerts
	z.numColors = numColors
	z.edgeTable = make([][]uint64, numVerts*numVerts)
	for u := 0; u < numVerts; u++ {
		for v := u + 1; v < numVerts; v++ {
			keys := make([]uint64, numColors)
			for c := 0; c < numColors; c++ {
				keys[c] = frand.Uint64n(bignum) + 1
			}
			// an edge is unordered; share the keys across both
			// orientations.
			z.edgeTable[u*numVerts+v] = keys
			z.edgeTable[v*numVerts+u] = keys
		}
	}
}

// EdgeKey returns the key for edge (u, v) having the given color.
func (z *Zobrist) EdgeKey(u, v, color int) uint64 {
	return z.edgeTable[u*z.numVerts+v][color]
}

// Hash computes the full hash of a coloring from scratch. colorOf must
// return the color of each unordered pair u < v.
func (z *Zobrist) Hash(colorOf func(u, v int) int) uint64 {
	key := uint64(0)
	for u := 0; u < z.numVerts; u++ {
		for v := u + 1; v < z.numVerts; v++ {
			key ^= z.EdgeKey(u, v, colorOf(u, v))
		}
	}
	return key
}

// Recolor returns the hash after changing edge (u, v) from oldColor to
// newColor, without touching any graph state.
func (z *Zobrist) Recolor(key uint64, u, v, oldColor, newColor int) uint64 {
	return key ^ z.EdgeKey(u, v, oldColor) ^ z.EdgeKey(u, v, newColor)
}
