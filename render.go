package main

// Viewport and frame composition. Every refresh recomputes the scroll offsets
// from the cursor, then lays out the visible slice of each row next to the
// line-number gutter, followed by the status and message lines. Frontends
// (ansi.go, termbox.go) turn the resulting Frame into terminal output.

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// FrameLine is one text-area line of a frame.
type FrameLine struct {
	Gutter string      // Right-aligned row number and separator, empty for filler lines.
	Text   []byte      // Visible part of the row render.
	HL     []Highlight // Highlight classes parallel to Text.
}

// Frame is everything drawn on one screen refresh.
type Frame struct {
	Lines     []FrameLine
	Status    string // Status line, already laid out to the screen width.
	Message   string // Message line, empty once expired.
	Cols      int
	CursorRow int // 0-based screen row of the cursor.
	CursorCol int // 0-based screen column of the cursor.
}

// digits returns the number of decimal digits of n (1 for n <= 0).
func digits(n int) int {
	if n <= 0 {
		return 1
	}
	d := 0
	for n > 0 {
		d++
		n /= 10
	}
	return d
}

// gutterWidth is the row number width plus one separator column.
func (e *Editor) gutterWidth() int {
	return digits(e.doc.NumRows()) + 1
}

// textCols is the number of columns left for text next to the gutter.
func (e *Editor) textCols() int {
	cols := e.screenCols - e.gutterWidth()
	if cols < 1 {
		cols = 1
	}
	return cols
}

// scroll brings the cursor back into the visible window.
func (e *Editor) scroll() {
	e.rx = 0
	if row := e.doc.Row(e.cy); row != nil {
		e.rx = e.doc.CharToRender(row, e.cx)
	}

	if e.cy < e.rowoff {
		e.rowoff = e.cy
	}
	if e.cy >= e.rowoff+e.screenRows {
		e.rowoff = e.cy - e.screenRows + 1
	}

	cols := e.textCols()
	if e.rx < e.coloff {
		e.coloff = e.rx
	}
	if e.rx >= e.coloff+cols {
		e.coloff = e.rx - cols + 1
	}
}

// buildFrame scrolls and composes the next frame.
func (e *Editor) buildFrame() *Frame {
	e.scroll()

	numRows := e.doc.NumRows()
	gutter := e.gutterWidth()
	cols := e.textCols()

	f := &Frame{
		Lines: make([]FrameLine, 0, e.screenRows),
		Cols:  e.screenCols,
	}

	for y := 0; y < e.screenRows; y++ {
		filerow := y + e.rowoff
		if filerow >= numRows {
			if numRows == 0 && y == e.screenRows/3 {
				f.Lines = append(f.Lines, FrameLine{Text: []byte(welcomeLine(e.screenCols))})
			} else {
				f.Lines = append(f.Lines, FrameLine{Text: []byte("~")})
			}
			continue
		}

		row := e.doc.Row(filerow)
		start := min(e.coloff, len(row.render))
		end := min(start+cols, len(row.render))
		f.Lines = append(f.Lines, FrameLine{
			Gutter: fmt.Sprintf("%*d ", gutter-1, filerow+1),
			Text:   row.render[start:end],
			HL:     row.hl[start:end],
		})
	}

	f.Status = e.statusLine()
	f.Message = e.messageLine()
	f.CursorRow = e.cy - e.rowoff
	f.CursorCol = e.rx - e.coloff + gutter
	return f
}

// statusLine lays out file name, size and state on the left and file type
// and position on the right.
func (e *Editor) statusLine() string {
	name := e.filename
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if e.doc.Dirty() > 0 {
		modified = "(modified)"
	}
	status := fmt.Sprintf("%s - %d lines %s", runewidth.Truncate(name, 20, ""), e.doc.NumRows(), modified)

	ftype := "no known filetype"
	if p := e.doc.Profile(); p != nil {
		ftype = p.Name
	}
	if e.syntaxErrors > 0 {
		ftype = fmt.Sprintf("%s (%d syntax errors)", ftype, e.syntaxErrors)
	}
	rstatus := fmt.Sprintf("%s | %d/%d", ftype, e.cy+1, e.doc.NumRows())

	status = runewidth.Truncate(status, e.screenCols, "")
	width := runewidth.StringWidth(status)
	rwidth := runewidth.StringWidth(rstatus)
	for width < e.screenCols {
		if e.screenCols-width == rwidth {
			status += rstatus
			break
		}
		status += " "
		width++
	}
	return status
}

// messageLine returns the status message while it has not expired.
func (e *Editor) messageLine() string {
	if e.statusMsg == "" || e.now().Sub(e.statusTime) >= e.cfg.MessageTimeout {
		return ""
	}
	return runewidth.Truncate(e.statusMsg, e.screenCols, "")
}

// refresh draws the current state through the frontend.
func (e *Editor) refresh() error {
	return e.screen.Draw(e.buildFrame())
}
