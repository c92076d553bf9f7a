package eps

import "sort"

// ekey identifies an undirected edge by its interned endpoints.
type ekey struct {
	u, v int
}

func edgeKey(u, v int) ekey {
	if u > v {
		u, v = v, u
	}
	return ekey{u: u, v: v}
}

type point struct {
	x, y float64
}

// merger removes edges shared between adjacent polygons of a fill graph so
// that touching patches come out as one outline, then traces what is left.
// Geometry enters only through the chirality test on double edges, which
// steers the tracing; when it cannot decide, candidates are taken in count
// order. Which edges the merge removed does not depend on it.
type merger struct {
	g    *fillGraph
	use  map[ekey]int
	own  map[ekey]int
	poly []int
	self []bool

	pts []point
	got []int8
}

func newMerger(g *fillGraph) *merger {
	m := merger{
		g:    g,
		use:  make(map[ekey]int),
		own:  make(map[ekey]int),
		poly: append([]int(nil), g.poly...),
		self: make([]bool, g.npoly),
		pts:  make([]point, len(g.names)),
		got:  make([]int8, len(g.names)),
	}
	for _, e := range g.seq {
		m.use[edgeKey(e.from, e.to)]++
	}
	m.classify()
	return &m
}

// classify flags polygons that touch themselves: any undirected edge
// occurring twice inside a single polygon defeats the planar merge and
// excludes the polygon from it.
func (m *merger) classify() {
	for p := 0; p < m.g.npoly; p++ {
		m.self[p] = m.selfEdge(p)
	}
}

func (m *merger) selfEdge(p int) bool {
	seen := make(map[ekey]int)
	for i, e := range m.g.seq {
		if m.poly[i] != p {
			continue
		}
		k := edgeKey(e.from, e.to)
		seen[k]++
		if seen[k] > 1 {
			return true
		}
	}
	return false
}

// merge joins adjacent polygons by dropping shared edges. The first shared
// edge between two polygons always goes; further shared edges go only while
// they extend the recorded open ends without disconnecting the outline.
func (m *merger) merge() {
	for p := 0; p < m.g.npoly; p++ {
		var (
			ends    = make(map[int][2]int)
			handled = make(map[int]bool)
		)
		for i, e := range m.g.seq {
			if m.poly[i] != p {
				continue
			}
			k := edgeKey(e.from, e.to)
			if m.use[k] == 0 {
				continue
			}
			q, owned := m.own[k]
			if !owned {
				m.own[k] = p
				continue
			}
			if q == p || m.self[q] || m.self[p] {
				continue
			}
			if !handled[q] {
				m.use[k] = 0
				ends[q] = [2]int{e.from, e.to}
				handled[q] = true
				continue
			}
			oe := ends[q]
			joined := e.from == oe[0] || e.from == oe[1] || e.to == oe[0] || e.to == oe[1]
			if !joined || m.use[k] < 2 {
				continue
			}
			if m.edgeCount(e.from) != 1 && m.edgeCount(e.to) != 1 {
				continue
			}
			m.use[k] = 0
			if e.from == oe[0] || e.from == oe[1] {
				ends[q] = swapEnd(oe, e.from, e.to)
			} else {
				ends[q] = swapEnd(oe, e.to, e.from)
			}
		}
		if len(handled) == 0 {
			continue
		}
		for i := range m.poly {
			if handled[m.poly[i]] {
				m.poly[i] = p
			}
		}
		for k, q := range m.own {
			if handled[q] {
				m.own[k] = p
			}
		}
		if m.liveSelfEdge(p) {
			m.self[p] = true
		}
	}
}

func swapEnd(oe [2]int, old, repl int) [2]int {
	if oe[0] == old {
		oe[0] = repl
	} else {
		oe[1] = repl
	}
	return oe
}

// liveSelfEdge re-checks a merged polygon counting only edges that are
// still drawn; a merge can create a self-touching result which must stay
// out of later merges.
func (m *merger) liveSelfEdge(p int) bool {
	seen := make(map[ekey]int)
	for i, e := range m.g.seq {
		if m.poly[i] != p {
			continue
		}
		k := edgeKey(e.from, e.to)
		if m.use[k] == 0 {
			continue
		}
		seen[k]++
		if seen[k] > 1 && m.use[k] > 1 {
			return true
		}
	}
	return false
}

// edgeCount counts the distinct edges at x still to be drawn.
func (m *merger) edgeCount(x int) int {
	var (
		n    int
		seen = make(map[int]bool)
	)
	for _, w := range m.g.adj[x] {
		if seen[w] {
			continue
		}
		seen[w] = true
		if m.use[edgeKey(x, w)] > 0 {
			n++
		}
	}
	return n
}

// vertexUse sums the remaining draw counts of the edges at x.
func (m *merger) vertexUse(x int) int {
	var (
		n    int
		seen = make(map[int]bool)
	)
	for _, w := range m.g.adj[x] {
		if seen[w] {
			continue
		}
		seen[w] = true
		n += m.use[edgeKey(x, w)]
	}
	return n
}

// seeds orders vertices by ascending remaining use; ties keep interning
// order.
func (m *merger) seeds() []int {
	xs := make([]int, len(m.g.adj))
	for i := range xs {
		xs[i] = i
	}
	sort.SliceStable(xs, func(i, j int) bool {
		return m.vertexUse(xs[i]) < m.vertexUse(xs[j])
	})
	return xs
}

// candidates returns the distinct neighbors of cur with draw count left,
// ordered by descending count so that double edges are taken first; ties
// keep adjacency order.
func (m *merger) candidates(cur int) []int {
	var (
		list []int
		seen = make(map[int]bool)
	)
	for _, w := range m.g.adj[cur] {
		if seen[w] {
			continue
		}
		seen[w] = true
		if m.use[edgeKey(cur, w)] > 0 {
			list = append(list, w)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return m.use[edgeKey(cur, list[i])] > m.use[edgeKey(cur, list[j])]
	})
	return list
}

func (m *merger) coord(x int) (point, bool) {
	if m.got[x] == 0 {
		pt, err := parsePoint(m.g.name(x))
		if err != nil {
			m.got[x] = -1
		} else {
			m.got[x] = 1
			m.pts[x] = pt
		}
	}
	return m.pts[x], m.got[x] > 0
}

// side reports which side of the incoming direction p->c the vertex n lies
// on: +1 left, -1 right, 0 colinear or unparseable.
func (m *merger) side(p, c, n int) int {
	pp, ok1 := m.coord(p)
	cc, ok2 := m.coord(c)
	nn, ok3 := m.coord(n)
	if !ok1 || !ok2 || !ok3 {
		return 0
	}
	var (
		v1 = unit(point{x: cc.x - pp.x, y: cc.y - pp.y})
		v2 = unit(point{x: nn.x - cc.x, y: nn.y - cc.y})
	)
	switch x := cross(v1, v2); {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// turn is the cosine of the angle between the incoming direction and the
// outgoing candidate; smaller means a tighter turn.
func (m *merger) turn(p, c, n int) float64 {
	pp, _ := m.coord(p)
	cc, _ := m.coord(c)
	nn, _ := m.coord(n)
	var (
		v1 = unit(point{x: cc.x - pp.x, y: cc.y - pp.y})
		v2 = unit(point{x: nn.x - cc.x, y: nn.y - cc.y})
	)
	return dot(v1, v2)
}

// choose picks the next vertex from cur. With an established winding,
// candidates on the wrong side are rejected; among agreeing candidates the
// tightness of the turn decides.
func (m *merger) choose(cur, prev, chir int) (int, int) {
	list := m.candidates(cur)
	if len(list) == 0 {
		return -1, -1
	}
	if len(list) == 1 {
		return list[0], -1
	}
	if prev < 0 || chir == 0 {
		return list[0], list[1]
	}
	var agree []int
	for _, w := range list {
		if s := m.side(prev, cur, w); s == 0 || s == chir {
			agree = append(agree, w)
		}
	}
	if len(agree) == 0 {
		return list[0], list[1]
	}
	best := agree[0]
	for _, w := range agree[1:] {
		var (
			dw = m.turn(prev, cur, w)
			db = m.turn(prev, cur, best)
		)
		if chir < 0 && dw < db {
			best = w
		}
		if chir > 0 && dw > db {
			best = w
		}
	}
	alt := -1
	for _, w := range list {
		if w != best {
			alt = w
			break
		}
	}
	return best, alt
}

// emitFill merges adjacent fill polygons of the block and writes the
// surviving outlines as one filled path.
func (c *cleaner) emitFill(b *Block) {
	m := newMerger(b.fill)
	m.merge()

	g := b.fill
	c.line(opNewpath)
	for _, seed := range m.seeds() {
		for m.vertexUse(seed) > 0 {
			c.line(g.name(seed) + " " + opMoveto)
			var (
				cur  = seed
				prev = -1
				chir = 0
			)
			for {
				nxt, alt := m.choose(cur, prev, chir)
				if nxt < 0 {
					break
				}
				k := edgeKey(cur, nxt)
				if chir == 0 && prev >= 0 && alt >= 0 && m.use[k] == 2 {
					chir = m.side(prev, cur, nxt)
				}
				m.use[k]--
				if nxt == seed {
					c.line(opClose)
				} else {
					c.line(g.name(nxt) + " " + opLineto)
				}
				prev, cur = cur, nxt
			}
			c.stats.Outlines++
		}
	}
	c.line(opFill)
}
