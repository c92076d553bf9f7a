package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/midbel/eps"
)

func main() {
	flag.Parse()

	doc, err := eps.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer doc.Close()

	var (
		hdr      = doc.Header()
		declared = hdr.GetStrings("DocumentFonts")
		needed   = hdr.GetStrings("DocumentNeededFonts")
		supplied = hdr.GetStrings("DocumentSuppliedFonts")
	)
	for _, f := range declared {
		printFont(f, "declared")
	}
	for _, f := range needed {
		printFont(f, "needed")
	}
	for _, f := range supplied {
		printFont(f, "supplied")
	}
}

const row = "%-36s | %-8s"

func printFont(name, origin string) {
	fmt.Printf(row, name, origin)
	fmt.Println()
}
