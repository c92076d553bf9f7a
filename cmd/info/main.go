package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

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

	info := doc.Info()
	printLine("title", info.Title)
	printLine("creator", info.Creator)
	printLine("for", info.For)
	printLine("created", info.Created)
	printLine("level", info.Level)
	if info.HasBox {
		printLine("bounds", formatBox(info.Box))
	}
	if info.Pages > 0 {
		printLine("pages", strconv.Itoa(info.Pages))
	}
	if len(info.Fonts) > 0 {
		printLine("fonts", strings.Join(info.Fonts, ", "))
	}
}

func formatBox(box [4]float64) string {
	list := make([]string, len(box))
	for i := range box {
		list[i] = strconv.FormatFloat(box[i], 'f', -1, 64)
	}
	return strings.Join(list, " ")
}

func printLine(key, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%-12s: %s", strings.Title(key), value)
	fmt.Println()
}
