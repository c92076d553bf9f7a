package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/midbel/eps"
	"github.com/midbel/hexdump"
)

func main() {
	var (
		all = flag.Bool("a", false, "all")
		raw = flag.Bool("r", false, "raw")
	)
	flag.Parse()
	doc, err := eps.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer doc.Close()

	var n int
	doc.Walk(func(b eps.Block) bool {
		n++
		printBlock(n, b, *all, *raw)
		return true
	})
}

func printBlock(n int, b eps.Block, all, raw bool) {
	var (
		content = b.Content()
		kind    = "stroke"
	)
	if b.IsFill() {
		kind = "fill"
	}
	fmt.Printf("block %d: %s, %d state line(s), %d content line(s)", n, kind, strings.Count(b.Prefix(), "\n")+1, len(content))
	fmt.Println()
	if all {
		for _, str := range strings.Split(b.Prefix(), "\n") {
			fmt.Println(str)
		}
	}
	if raw {
		for _, bits := range b.Bitmaps() {
			fmt.Println(hexdump.Dump(decode(bits)))
		}
	}
}

// decode recovers the binary payload of an ascii-hex bitmap region; when
// the region is not hex after all, the raw text is dumped instead.
func decode(region string) []byte {
	var str strings.Builder
	for _, line := range strings.Split(region, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "%") {
			continue
		}
		str.WriteString(line)
	}
	buf, err := hex.DecodeString(str.String())
	if err != nil {
		return []byte(region)
	}
	return buf
}
