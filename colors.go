package main

// Preview of the highlight palette. Draws one sample line per highlight class
// in the colors the termbox frontend uses, plus the SGR code the escape
// sequence frontend emits for it.

import (
	"fmt"
	"os"

	"github.com/nsf/termbox-go"
)

// PrintColors initializes termbox and shows every highlight class in its color.
func PrintColors() {
	err := termbox.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init termbox: %v\n", err)
		return
	}
	defer termbox.Close()

	termbox.SetOutputMode(termbox.OutputNormal)
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	for row, h := range highlightNames {
		c := GetThemeColor(h.hl)
		label := fmt.Sprintf("%-20s sgr %-3d", h.name, c.SGR)
		for i, r := range label {
			termbox.SetCell(i, row, r, termbox.ColorDefault, termbox.ColorDefault)
		}

		// Sample text drawn in the class color.
		sample := "int main(void) { return 0; }"
		for i, r := range sample {
			termbox.SetCell(len(label)+1+i, row, r, c.Termbox, termbox.ColorDefault)
		}
	}

	msg := "Press any key to exit..."
	for i, r := range msg {
		termbox.SetCell(i, len(highlightNames)+1, r, termbox.ColorWhite, termbox.ColorDefault)
	}

	termbox.Flush()
	// Wait for any key press before closing.
	termbox.PollEvent()
}
