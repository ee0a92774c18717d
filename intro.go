package main

// The welcome line shown a third of the way down an empty document.

import (
	"fmt"
	"strings"
)

// welcomeLine returns the centered welcome text for a screen cols wide. The
// line starts with the filler tilde when there is room to pad.
func welcomeLine(cols int) string {
	welcome := fmt.Sprintf("Reef editor -- version %s", Version)
	if len(welcome) > cols {
		welcome = welcome[:cols]
	}

	padding := (cols - len(welcome)) / 2
	var b strings.Builder
	if padding > 0 {
		b.WriteByte('~')
		padding--
	}
	b.WriteString(strings.Repeat(" ", padding))
	b.WriteString(welcome)
	return b.String()
}
