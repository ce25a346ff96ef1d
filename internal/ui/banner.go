// Package ui holds the decorative parts of the command line output.
package ui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the program banner to w. Colors are only used if the
// terminal supports them.
func PrintBanner(w io.Writer) {
	p := termenv.EnvColorProfile()
	title := p.String("--- NPC Path Length Analyzer ---").Foreground(p.Color("#2CD7C7")).Bold()
	curve := p.String("f(x) = 2*sin(x) + 0.5*x").Foreground(p.Color("#20B9B4"))

	fmt.Fprintln(w, title)
	fmt.Fprintf(w, "This program analyzes the path %s\n\n", curve)
}
