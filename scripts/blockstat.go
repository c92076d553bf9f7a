//go:build ignore

// blockstat groups the graphics-state blocks of an EPS file by prefix and
// prints the states with the most content lines first, the ones worth
// cleaning.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/midbel/eps"
)

const sample = `%!PS-Adobe-3.0 EPSF-3.0
%%BoundingBox: 0 0 20 10
%%EndPageSetup
GS
1 setlinewidth
N
0 0 M
10 0 L
S
GR
GS
1 setlinewidth
N
10 0 M
20 0 L
S
GR
%%Trailer
%%EOF
`

func main() {
	var top = flag.Int("n", 10, "show the n most fragmented states")
	flag.Parse()

	var (
		doc *eps.Document
		err error
	)
	if flag.NArg() > 0 {
		doc, err = eps.Open(flag.Arg(0))
	} else {
		doc, err = eps.Read(strings.NewReader(sample))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer doc.Close()

	type stat struct {
		prefix string
		lines  int
	}
	var list []stat
	doc.Walk(func(b eps.Block) bool {
		list = append(list, stat{
			prefix: b.Prefix(),
			lines:  len(b.Content()),
		})
		return true
	})
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].lines > list[j].lines
	})
	for i, s := range list {
		if i >= *top {
			break
		}
		fmt.Printf("%4d content line(s): %s", s.lines, firstLine(s.prefix))
		fmt.Println()
	}
}

func firstLine(prefix string) string {
	if ix := strings.IndexByte(prefix, '\n'); ix >= 0 {
		return prefix[:ix] + " ..."
	}
	return prefix
}
