package zobrist

import (
	"testing"

	"github.com/matryer/is"
)

func TestRecolorAndBack(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(6, 2)

	colors := map[[2]int]int{}
	colorOf := func(u, v int) int { return colors[[2]int{u, v}] }

	h := z.Hash(colorOf)
	// recolor and undo an edge. The final hash must match the start.
	h1 := z.Recolor(h, 1, 4, 0, 1)
	h2 := z.Recolor(h1, 1, 4, 1, 0)
	is.Equal(h, h2)
	is.True(h1 != h) // extremely unlikely to collide

	// incremental update must agree with a full rehash.
	colors[[2]int{1, 4}] = 1
	is.Equal(h1, z.Hash(colorOf))
}

func TestEdgeKeySymmetric(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(5, 3)

	for u := 0; u < 5; u++ {
		for v := u + 1; v < 5; v++ {
			for c := 0; c < 3; c++ {
				is.Equal(z.EdgeKey(u, v, c), z.EdgeKey(v, u, c))
			}
		}
	}
}

func TestOrderIndependence(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(4, 2)

	h := z.Hash(func(u, v int) int { return 0 })
	// reach the all-ones coloring by two different move orders.
	a := h
	a = z.Recolor(a, 0, 1, 0, 1)
	a = z.Recolor(a, 2, 3, 0, 1)
	b := h
	b = z.Recolor(b, 2, 3, 0, 1)
	b = z.Recolor(b, 0, 1, 0, 1)
	is.Equal(a, b)
}
