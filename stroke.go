package eps

// emitStroke rebuilds the block's segments as maximal continuous polylines.
// Seeds are taken by ascending degree so that endpoints of open polylines
// are traced first and interior cycles last. The walk is greedy: a cycle it
// passes without entering is traced later as a path of its own, so a
// connected component can yield more than max(1, odd/2) paths. Every edge is
// consumed exactly once.
func (c *cleaner) emitStroke(b *Block) {
	g := b.stroke
	c.line(opNewpath)
	local := g.workset()
	for _, seed := range g.order() {
		for len(local[seed]) > 0 {
			c.line(g.name(seed) + " " + opMoveto)
			cur := seed
			for len(local[cur]) > 0 {
				nxt := local[cur][0]
				takeEdge(local, cur, nxt)
				if nxt == seed {
					c.line(opClose)
				} else {
					c.line(g.name(nxt) + " " + opLineto)
				}
				cur = nxt
			}
			c.stats.Polylines++
		}
	}
	c.line(opStroke)
}
