//go:build ignore

// fraggen writes a synthetic EPS file shaped like the fragmented output of
// the plotting toolkit: every segment and every patch in its own
// graphics-state block. Useful to eyeball the cleaner.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

func main() {
	var (
		size  = flag.Int("n", 8, "grid size")
		fills = flag.Bool("f", false, "emit adjacent filled patches")
		file  = flag.String("o", "", "output file (default stdout)")
	)
	flag.Parse()

	var str strings.Builder
	prolog(&str, *size)
	if *fills {
		patches(&str, *size)
	}
	grid(&str, *size)
	trailer(&str)

	if *file == "" {
		fmt.Print(str.String())
		return
	}
	if err := os.WriteFile(*file, []byte(str.String()), 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func prolog(str *strings.Builder, size int) {
	fmt.Fprintln(str, "%!PS-Adobe-3.0 EPSF-3.0")
	fmt.Fprintf(str, "%%%%BoundingBox: 0 0 %d %d", size*10, size*10)
	fmt.Fprintln(str)
	fmt.Fprintln(str, "%%Title: fraggen sample")
	fmt.Fprintln(str, "%%Creator: fraggen")
	fmt.Fprintln(str, "%%EndComments")
	fmt.Fprintln(str, "%%BeginPageSetup")
	fmt.Fprintln(str, "%%EndPageSetup")
}

// grid draws every horizontal run of the grid as independent one-segment
// blocks sharing one graphics state, the worst case the cleaner exists for.
func grid(str *strings.Builder, size int) {
	for y := 0; y <= size; y++ {
		for x := 0; x < size; x++ {
			fmt.Fprintln(str, "GS")
			fmt.Fprintln(str, "1 setlinewidth")
			fmt.Fprintln(str, "0 0 0 RC")
			fmt.Fprintln(str, "N")
			fmt.Fprintf(str, "%d %d M", x*10, y*10)
			fmt.Fprintln(str)
			fmt.Fprintf(str, "%d %d L", (x+1)*10, y*10)
			fmt.Fprintln(str)
			fmt.Fprintln(str, "S")
			fmt.Fprintln(str, "GR")
		}
	}
}

// patches fills a row of touching squares, each its own block, so that the
// area combiner has shared edges to remove.
func patches(str *strings.Builder, size int) {
	for x := 0; x < size; x++ {
		fmt.Fprintln(str, "GS")
		fmt.Fprintln(str, "0.8 0.2 0.2 RC")
		fmt.Fprintln(str, "N")
		square(str, x*10, 0, 10)
		fmt.Fprintln(str, "f")
		fmt.Fprintln(str, "GR")
	}
}

func square(str *strings.Builder, x, y, side int) {
	fmt.Fprintf(str, "%d %d M", x, y)
	fmt.Fprintln(str)
	fmt.Fprintf(str, "%d %d L", x+side, y)
	fmt.Fprintln(str)
	fmt.Fprintf(str, "%d %d L", x+side, y+side)
	fmt.Fprintln(str)
	fmt.Fprintf(str, "%d %d L", x, y+side)
	fmt.Fprintln(str)
	fmt.Fprintln(str, "cp")
}

func trailer(str *strings.Builder) {
	fmt.Fprintln(str, "%%Trailer")
	fmt.Fprintln(str, "%%EOF")
}
