package eps

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func square(g *fillGraph, x, y int) {
	var (
		a = pair(x, y)
		b = pair(x+1, y)
		c = pair(x+1, y+1)
		d = pair(x, y+1)
	)
	g.add(a, b)
	g.add(b, c)
	g.add(c, d)
	g.add(d, a)
	g.next()
}

func pair(x, y int) string {
	return itoa(x) + " " + itoa(y)
}

func itoa(x int) string {
	if x < 0 {
		return "-" + itoa(-x)
	}
	if x > 9 {
		return itoa(x/10) + itoa(x%10)
	}
	return string(rune('0' + x))
}

func TestMergeRemovesSharedEdge(t *testing.T) {
	g := newFillGraph()
	square(g, 0, 0)
	square(g, 1, 0)
	require.Equal(t, 2, g.npoly)

	m := newMerger(g)
	m.merge()

	shared := edgeKey(g.intern("1 0"), g.intern("1 1"))
	require.Equal(t, 0, m.use[shared])
	// the six outer edges survive
	var live int
	for _, n := range m.use {
		live += n
	}
	require.Equal(t, 6, live)
	// both polygons carry one label after the merge
	for i := range m.poly {
		require.Equal(t, 1, m.poly[i])
	}
}

func TestMergeKeepsDisjointPolygons(t *testing.T) {
	g := newFillGraph()
	square(g, 0, 0)
	square(g, 5, 5)

	m := newMerger(g)
	m.merge()

	var live int
	for _, n := range m.use {
		live += n
	}
	require.Equal(t, 8, live)
}

func TestSelfTouchingExcluded(t *testing.T) {
	g := newFillGraph()
	// a degenerate patch drawing one of its edges twice
	g.add("0 0", "1 0")
	g.add("1 0", "1 1")
	g.add("1 1", "1 0")
	g.add("1 0", "0 0")
	g.next()
	square(g, 1, 0)

	m := newMerger(g)
	require.True(t, m.self[0])
	require.False(t, m.self[1])

	m.merge()
	// nothing merged away: every edge keeps its draw count
	var live int
	for _, n := range m.use {
		live += n
	}
	require.Equal(t, g.edges, live)
}

func TestSharedEdgeRunRemoved(t *testing.T) {
	// two rectangles stacked along x sharing the run (2,0)-(2,1)-(2,2):
	// both 2x2 squares carry the midpoint vertex (2,1) on the shared side
	g := newFillGraph()
	g.add("0 0", "2 0")
	g.add("2 0", "2 1")
	g.add("2 1", "2 2")
	g.add("2 2", "0 2")
	g.add("0 2", "0 0")
	g.next()
	g.add("2 0", "4 0")
	g.add("4 0", "4 2")
	g.add("4 2", "2 2")
	g.add("2 2", "2 1")
	g.add("2 1", "2 0")
	g.next()

	m := newMerger(g)
	m.merge()

	require.Equal(t, 0, m.use[edgeKey(g.intern("2 0"), g.intern("2 1"))])
	require.Equal(t, 0, m.use[edgeKey(g.intern("2 1"), g.intern("2 2"))])
}

func TestChiralitySides(t *testing.T) {
	g := newFillGraph()
	g.add("0 0", "1 0")
	g.add("1 0", "2 1")
	g.add("1 0", "2 -1")
	m := newMerger(g)

	var (
		p = g.intern("0 0")
		c = g.intern("1 0")
		l = g.intern("2 1")
		r = g.intern("2 -1")
	)
	require.Equal(t, 1, m.side(p, c, l))
	require.Equal(t, -1, m.side(p, c, r))

	straight := g.intern("2 0")
	g.add("1 0", "2 0")
	m = newMerger(g)
	require.Equal(t, 0, m.side(p, c, straight))
}

func TestVertexAccounting(t *testing.T) {
	g := newFillGraph()
	square(g, 0, 0)
	square(g, 1, 0)
	m := newMerger(g)

	shared := g.intern("1 0")
	require.Equal(t, 3, m.edgeCount(shared))
	require.Equal(t, 4, m.vertexUse(shared))

	corner := g.intern("0 0")
	require.Equal(t, 2, m.edgeCount(corner))
	require.Equal(t, 2, m.vertexUse(corner))
}
