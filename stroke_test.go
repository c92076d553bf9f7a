package eps

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func strokeOutput(t *testing.T, edges [][2]string) []string {
	t.Helper()
	b := newBlock(NewReader(nil), nil)
	for _, e := range edges {
		b.addStroke(e[0], e[1])
	}
	var (
		out strings.Builder
		c   = newCleaner(NewReader(nil), options{}, &out)
	)
	c.emitStroke(b)
	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

func TestEmitOpenPolyline(t *testing.T) {
	got := strokeOutput(t, [][2]string{
		{"0 0", "1 0"},
		{"1 0", "2 0"},
		{"2 0", "3 1"},
	})
	want := []string{"N", "0 0 M", "1 0 L", "2 0 L", "3 1 L", "S"}
	require.Equal(t, want, got)
}

func TestEmitClosedPolygon(t *testing.T) {
	got := strokeOutput(t, [][2]string{
		{"0 0", "1 0"},
		{"1 0", "1 1"},
		{"1 1", "0 0"},
	})
	want := []string{"N", "0 0 M", "1 0 L", "1 1 L", "cp", "S"}
	require.Equal(t, want, got)
}

func TestEmitStarDecomposition(t *testing.T) {
	// three spokes from one hub: two polylines cover every edge
	got := strokeOutput(t, [][2]string{
		{"5 5", "0 0"},
		{"5 5", "10 0"},
		{"5 5", "5 10"},
	})
	var moves, lines int
	for _, str := range got {
		switch Classify(str) {
		case Moveto:
			moves++
		case Lineto:
			lines++
		}
	}
	require.Equal(t, 2, moves)
	require.Equal(t, 3, lines)
}

func TestEmitConsumesEveryEdgeOnce(t *testing.T) {
	edges := [][2]string{
		{"0 0", "1 0"},
		{"1 0", "1 1"},
		{"1 1", "0 1"},
		{"0 1", "0 0"},
		{"1 0", "2 0"},
		{"2 0", "2 1"},
		{"2 1", "1 1"},
	}
	got := strokeOutput(t, edges)

	count := make(map[ekey]int)
	g := newGraph()
	var cur, first int
	for _, str := range got {
		switch Classify(str) {
		case Moveto:
			cur = g.intern(pointOf(str))
			first = cur
		case Lineto:
			nxt := g.intern(pointOf(str))
			count[edgeKey(cur, nxt)]++
			cur = nxt
		case Close:
			count[edgeKey(cur, first)]++
			cur = first
		}
	}
	require.Len(t, count, len(edges))
	for k, n := range count {
		require.Equal(t, 1, n, "edge %v", k)
	}
}

func TestZeroLengthEdgeDiscarded(t *testing.T) {
	g := newGraph()
	require.False(t, g.addEdge("1 1", "1 1", true))
	require.True(t, g.empty())
}

func TestParallelStrokeEdgesCollapse(t *testing.T) {
	g := newGraph()
	require.True(t, g.addEdge("0 0", "1 1", true))
	require.False(t, g.addEdge("1 1", "0 0", true))
	require.Equal(t, 1, g.edges)
}
