package eps

import "sort"

// graph is an undirected adjacency structure over interned point ids.
// Neighbor lists keep insertion order so that traversals are deterministic
// for a given input. Parallel edges are stored once per occurrence; callers
// that want simple graphs deduplicate on insert.
type graph struct {
	index map[string]int
	names []string
	adj   [][]int
	edges int
}

func newGraph() *graph {
	return &graph{
		index: make(map[string]int),
	}
}

func (g *graph) intern(id string) int {
	if ix, ok := g.index[id]; ok {
		return ix
	}
	ix := len(g.names)
	g.index[id] = ix
	g.names = append(g.names, id)
	g.adj = append(g.adj, nil)
	return ix
}

func (g *graph) name(ix int) string {
	return g.names[ix]
}

func (g *graph) empty() bool {
	return g.edges == 0
}

// addEdge links the two ids. Zero-length moves (identical endpoints) are
// discarded. With dedup set, an edge already present is not added again and
// addEdge reports false.
func (g *graph) addEdge(a, b string, dedup bool) bool {
	if a == b {
		return false
	}
	var (
		u = g.intern(a)
		v = g.intern(b)
	)
	if dedup && g.connected(u, v) {
		return false
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edges++
	return true
}

func (g *graph) connected(u, v int) bool {
	for _, w := range g.adj[u] {
		if w == v {
			return true
		}
	}
	return false
}

func (g *graph) degree(u int) int {
	return len(g.adj[u])
}

// order returns the vertex indices sorted by ascending degree; ties keep
// interning order so repeated runs over the same input agree.
func (g *graph) order() []int {
	seeds := make([]int, len(g.adj))
	for i := range seeds {
		seeds[i] = i
	}
	sort.SliceStable(seeds, func(i, j int) bool {
		return g.degree(seeds[i]) < g.degree(seeds[j])
	})
	return seeds
}

// workset is a consumable copy of the neighbor lists, used by the emitters
// to walk every edge exactly once.
func (g *graph) workset() [][]int {
	local := make([][]int, len(g.adj))
	for u := range g.adj {
		local[u] = append([]int(nil), g.adj[u]...)
	}
	return local
}

// takeEdge removes one occurrence of u-v from both neighbor lists of the
// workset and reports whether the edge was present.
func takeEdge(local [][]int, u, v int) bool {
	if !dropNeighbor(local, u, v) {
		return false
	}
	dropNeighbor(local, v, u)
	return true
}

func dropNeighbor(local [][]int, u, v int) bool {
	for i, w := range local[u] {
		if w == v {
			local[u] = append(local[u][:i], local[u][i+1:]...)
			return true
		}
	}
	return false
}
