package eps

// writeBlock emits one block: GS, the prefix, the reconstructed content,
// GR. With a nil output the block is collected instead, for Walk.
func (c *cleaner) writeBlock(b *Block) {
	if c.out == nil {
		c.blocks = append(c.blocks, b)
		return
	}
	c.line(opGsave)
	for _, str := range b.prefix {
		c.line(str)
	}
	if b.stroke.empty() && b.fill.empty() {
		// a prefix that ends in a clip path carries its own newpath
		if !b.clipped() {
			c.line(opNewpath)
		}
		c.passthrough(b)
	} else {
		if !b.stroke.empty() {
			c.emitStroke(b)
		}
		if !b.fill.empty() {
			c.emitFill(b)
		}
		c.passthrough(b)
	}
	c.line(opGrestore)
	c.stats.BlocksOut++
}

func (c *cleaner) passthrough(b *Block) {
	for _, ix := range b.pass {
		c.line(b.rs.Line(ix))
	}
}

func (c *cleaner) line(str string) {
	c.out.WriteString(str)
	c.out.WriteString(c.sep)
}
