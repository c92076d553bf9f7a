package eps

import (
	"strings"
)

type state int

const (
	stProlog state = iota
	stIdle
	stPrefix
	stContent
)

// seg is one path edge waiting to be committed to a block graph.
type seg struct {
	a, b string
	brk  bool
}

// blockParse holds the mutable state of the block currently being read.
// Nothing reaches the registry before the closing GR; a block discarded by
// removeBoxes leaves no trace.
type blockParse struct {
	prefix  []string
	depth   int
	hasCap  bool
	hasDash bool
	bad     bool
	isFill  bool

	full   []int
	pass   []int
	bitmap [][2]int
	segs   []seg

	cur   string
	move  string
	brk   bool
	prior Kind
}

func (bp *blockParse) record(ix int, passthrough bool) {
	bp.full = append(bp.full, ix)
	if passthrough {
		bp.pass = append(bp.pass, ix)
	}
}

func (bp *blockParse) edge(a, b string) {
	bp.segs = append(bp.segs, seg{a: a, b: b, brk: bp.brk})
	bp.brk = false
}

// cleaner drives the four-state parser over the input and owns the block
// registry. With a nil output it only collects blocks, which is what
// Document.Walk runs.
type cleaner struct {
	rs  *Reader
	opt options
	out *strings.Builder
	sep string

	reg    map[string]*Block
	order  []string
	prev   string
	blocks []*Block

	stats Stats
}

func newCleaner(rs *Reader, opt options, out *strings.Builder) *cleaner {
	return &cleaner{
		rs:  rs,
		opt: opt,
		out: out,
		sep: rs.Newline(),
		reg: make(map[string]*Block),
	}
}

func (c *cleaner) run() error {
	var (
		st = stProlog
		bp *blockParse
	)
	c.rs.Seek(1)
	for {
		ix := c.rs.Tell()
		str, err := c.rs.ReadLine()
		if err != nil {
			break
		}
		switch st {
		case stProlog:
			c.emitRaw(c.rs.Raw(ix))
			if Classify(str) == EndSetup {
				st = stIdle
			}
		case stIdle:
			switch Classify(str) {
			case Gsave:
				bp = new(blockParse)
				st = stPrefix
			case Trailer:
				c.flushAll()
				c.emitRaw(c.rs.RawRange(ix, 0))
				return nil
			case Grestore:
				// stray grestore, drop
			default:
				c.emitRaw(c.rs.Raw(ix))
			}
		case stPrefix:
			if done := c.prefixLine(bp, str); done {
				c.commit(bp)
				bp, st = nil, stIdle
			} else if Classify(str) == Newpath {
				st = stContent
			}
		case stContent:
			if done := c.contentLine(bp, ix, str); done {
				c.commit(bp)
				bp, st = nil, stIdle
			}
		}
	}
	if bp != nil {
		c.commit(bp)
	}
	c.flushAll()
	return nil
}

// prefixLine folds one line into the block prefix and reports whether the
// block closed before any content was seen.
func (c *cleaner) prefixLine(bp *blockParse, str string) bool {
	switch Classify(str) {
	case Gsave:
		bp.depth++
		bp.prefix = append(bp.prefix, str)
	case Grestore:
		if bp.depth == 0 {
			return true
		}
		bp.depth--
		bp.prefix = append(bp.prefix, str)
	case Newpath:
		// handled by the caller: switch to content
	case BitmapBegin:
		bp.prefix = append(bp.prefix, str)
		for {
			sub, err := c.rs.ReadLine()
			if err != nil {
				break
			}
			bp.prefix = append(bp.prefix, sub)
			if Classify(sub) == BitmapEnd {
				break
			}
		}
	case LineCap:
		bp.hasCap = true
		bp.prefix = append(bp.prefix, str)
	case Dash:
		bp.hasDash = true
		bp.prefix = append(bp.prefix, str)
	case LineJoin:
		if !bp.hasCap && (!bp.hasDash || c.opt.dashLineCap) {
			bp.prefix = append(bp.prefix, synthLineCap)
			bp.hasCap = true
		}
		bp.prefix = append(bp.prefix, str)
	default:
		bp.prefix = append(bp.prefix, str)
	}
	return false
}

// contentLine attributes one post-newpath line and reports whether the
// block closed.
func (c *cleaner) contentLine(bp *blockParse, ix int, str string) bool {
	kind := Classify(str)
	switch kind {
	case Moveto:
		bp.cur = pointOf(str)
		bp.move = bp.cur
		bp.brk = true
		bp.record(ix, false)
	case Lineto:
		id := pointOf(str)
		if bp.cur != "" {
			bp.edge(bp.cur, id)
		}
		bp.cur = id
		bp.record(ix, false)
	case Close:
		if bp.cur != "" && bp.move != "" {
			bp.edge(bp.cur, bp.move)
			bp.cur = bp.move
		}
		bp.record(ix, false)
	case Fill:
		bp.isFill = true
		bp.full = append(bp.full, ix)
		if c.opt.combineAreas && bp.prior != Close {
			bp.pass = append(bp.pass, ix)
		}
	case Stroke:
		// the emitter strokes the rebuilt path itself
	case Rect:
		if c.opt.removeBoxes {
			bp.bad = true
		} else {
			bp.record(ix, true)
		}
	case Clip:
		bp.foldClip(c.rs)
	case Gsave:
		bp.depth++
		bp.record(ix, true)
	case Grestore:
		if bp.depth == 0 {
			return true
		}
		bp.depth--
		bp.record(ix, true)
	case Newpath:
		if len(bp.full) > 0 || len(bp.segs) > 0 {
			bp.record(ix, true)
		}
	case BitmapBegin:
		span := [2]int{ix, ix}
		bp.record(ix, true)
		for {
			sub := c.rs.Tell()
			next, err := c.rs.ReadLine()
			if err != nil {
				break
			}
			bp.record(sub, true)
			span[1] = sub
			if Classify(next) == BitmapEnd {
				break
			}
		}
		bp.bitmap = append(bp.bitmap, span)
	default:
		bp.record(ix, true)
	}
	bp.prior = kind
	return false
}

// foldClip turns the path accumulated so far into block state: the newpath,
// the path lines, and the clip itself move into the prefix, re-keying the
// block, and content accumulation restarts empty.
func (bp *blockParse) foldClip(rs *Reader) {
	bp.prefix = append(bp.prefix, opNewpath)
	for _, ix := range bp.full {
		bp.prefix = append(bp.prefix, rs.Line(ix))
	}
	bp.prefix = append(bp.prefix, opClip)

	bp.full = nil
	bp.pass = nil
	bp.bitmap = nil
	bp.segs = nil
	bp.cur = ""
	bp.move = ""
	bp.brk = false
	bp.isFill = false
}

// commit merges the finished block into the registry under its prefix and,
// under soft grouping, flushes accumulated blocks on a prefix change.
func (c *cleaner) commit(bp *blockParse) {
	if bp.bad {
		return
	}
	key := strings.Join(bp.prefix, "\n")
	if c.opt.groupSoft && key != c.prev && len(c.order) > 0 {
		c.flush(key)
	}
	c.prev = key

	b, ok := c.reg[key]
	if !ok {
		b = newBlock(c.rs, bp.prefix)
		c.reg[key] = b
		c.order = append(c.order, key)
	}
	pass := bp.pass
	if bp.isFill && !c.opt.combineAreas {
		// give up on restructuring fills we are not asked to merge
		pass = bp.full
	}
	b.pass = append(b.pass, pass...)
	b.full = append(b.full, bp.full...)
	b.bitmap = append(b.bitmap, bp.bitmap...)

	c.stats.Blocks++
	c.stats.Segments += len(bp.segs)
	switch {
	case bp.isFill && c.opt.combineAreas:
		b.isFill = true
		for _, s := range bp.segs {
			if s.brk {
				b.fill.next()
			}
			b.fill.add(s.a, s.b)
		}
		b.fill.next()
	case bp.isFill:
		b.isFill = true
	default:
		for _, s := range bp.segs {
			b.addStroke(s.a, s.b)
		}
	}
}

// flush writes every accumulated block in first-seen order and clears the
// registry. A block whose prefix equals keep survives the flush and seeds
// the restarted block list.
func (c *cleaner) flush(keep string) {
	var kept *Block
	for _, key := range c.order {
		if key == keep {
			kept = c.reg[key]
			continue
		}
		c.writeBlock(c.reg[key])
		delete(c.reg, key)
	}
	c.order = c.order[:0]
	if kept != nil {
		c.order = append(c.order, keep)
	}
}

func (c *cleaner) flushAll() {
	for _, key := range c.order {
		c.writeBlock(c.reg[key])
		delete(c.reg, key)
	}
	c.order = c.order[:0]
}

func (c *cleaner) emitRaw(str string) {
	if c.out != nil {
		c.out.WriteString(str)
	}
}
