package main

// Provides a way to view the built-in language profiles, the files they match
// and whether a parser is available to check files for syntax errors.

import (
	"fmt"
	"io"
	"strings"
)

// PrintInfo prints a summary table of all supported languages.
func PrintInfo(w io.Writer) {
	// Table header.
	fmt.Fprintf(w, "%-10s %-20s %-12s %-10s\n", "Name", "Files", "Comments", "Diagnose")
	fmt.Fprintln(w, strings.Repeat("-", 60))

	for _, p := range profiles {
		diagnose := "no"
		if grammarFor("", p) != nil {
			diagnose = "yes"
		}
		comments := p.SingleLineComment
		if p.MultiLineStart != p.SingleLineComment {
			comments += " " + p.MultiLineStart + " " + p.MultiLineEnd
		}
		fmt.Fprintf(w, "%-10s %-20s %-12s %-10s\n", p.Name, strings.Join(p.FileMatch, " "), comments, diagnose)
	}
}
