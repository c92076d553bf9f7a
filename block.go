package eps

import "strings"

// Block accumulates everything attributed to one rendering-state prefix:
// the passthrough content lines, the stroke graph, and the fill graph.
// Occurrences of the same prefix merge into a single record until the
// registry is flushed.
type Block struct {
	rs     *Reader
	prefix []string
	pass   []int
	full   []int
	bitmap [][2]int

	stroke *graph
	fill   *fillGraph
	isFill bool
}

func newBlock(rs *Reader, prefix []string) *Block {
	return &Block{
		rs:     rs,
		prefix: prefix,
		stroke: newGraph(),
		fill:   newFillGraph(),
	}
}

// Prefix returns the state-setting lines of the block, newline separated.
func (b *Block) Prefix() string {
	return strings.Join(b.prefix, "\n")
}

// Content resolves every content line attributed to the block, in input
// order, before any reconstruction.
func (b *Block) Content() []string {
	list := make([]string, 0, len(b.full))
	for _, ix := range b.full {
		list = append(list, b.rs.Line(ix))
	}
	return list
}

// Bitmaps returns the raw text of each opaque bitmap region found in the
// block content, markers included.
func (b *Block) Bitmaps() []string {
	var list []string
	for _, span := range b.bitmap {
		list = append(list, b.rs.RawRange(span[0], span[1]))
	}
	return list
}

func (b *Block) IsFill() bool {
	return b.isFill
}

func (b *Block) clipped() bool {
	n := len(b.prefix)
	return n > 0 && b.prefix[n-1] == opClip
}

func (b *Block) addStroke(a, c string) {
	b.stroke.addEdge(a, c, true)
}

// dirEdge is one polygon edge in drawing order.
type dirEdge struct {
	from int
	to   int
}

// fillGraph extends the adjacency structure with the polygon-ordered edge
// list that drives the merge pass. Parallel edges keep their multiplicity;
// two polygons sharing an edge is exactly the case the merger looks for.
type fillGraph struct {
	*graph
	seq   []dirEdge
	poly  []int
	npoly int
}

func newFillGraph() *fillGraph {
	return &fillGraph{
		graph: newGraph(),
	}
}

// add appends one edge to the polygon identified by npoly. Zero-length
// edges are discarded.
func (g *fillGraph) add(a, c string) {
	if a == c {
		return
	}
	var (
		u = g.intern(a)
		v = g.intern(c)
	)
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edges++
	g.seq = append(g.seq, dirEdge{from: u, to: v})
	g.poly = append(g.poly, g.npoly)
}

// next closes the current polygon; subsequent edges belong to a new one.
func (g *fillGraph) next() {
	if n := len(g.poly); n > 0 && g.poly[n-1] == g.npoly {
		g.npoly++
	}
}
