package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/midbel/eps"
)

func main() {
	var (
		out     = flag.String("o", "", "output file (default: rewrite input in place)")
		boxes   = flag.Bool("b", false, "remove blocks drawing boxes")
		zorder  = flag.Bool("z", false, "group softly, preserving z-order")
		areas   = flag.Bool("a", false, "combine adjacent filled areas")
		dashcap = flag.Bool("d", false, "normalize linecap for dashed blocks too")
		verbose = flag.Bool("v", false, "print statistics")
	)
	flag.Parse()

	doc, err := eps.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer doc.Close()

	var opts []eps.Option
	if *boxes {
		opts = append(opts, eps.WithRemoveBoxes())
	}
	if *zorder {
		opts = append(opts, eps.WithGroupSoft())
	}
	if *areas {
		opts = append(opts, eps.WithCombineAreas())
	}
	if *dashcap {
		opts = append(opts, eps.WithDashLineCap())
	}
	if err := doc.Clean(opts...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := doc.WriteFile(*out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *verbose {
		printStats(doc.Stats())
	}
}

func printStats(st eps.Stats) {
	fmt.Fprintf(os.Stderr, "blocks: %d in, %d out", st.Blocks, st.BlocksOut)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "segments: %d in, %d polylines, %d outlines out", st.Segments, st.Polylines, st.Outlines)
	fmt.Fprintln(os.Stderr)
}
