package main

// Data structures and methods for the row store: the ordered list of text rows,
// their tab-expanded render and the per-character highlight classes that go
// with it.

import "bytes"

// Row is a single line of the document.
type Row struct {
	idx         int         // Position in the document (0-based), kept contiguous.
	chars       []byte      // Logical content.
	render      []byte      // Content with tabs expanded to spaces.
	hl          []Highlight // Highlight class for each byte of render.
	openComment bool        // A multi-line comment was still open at the end of this row.
}

// Chars returns the logical content of the row.
func (r *Row) Chars() []byte { return r.chars }

// Render returns the tab-expanded content of the row.
func (r *Row) Render() []byte { return r.render }

// Highlights returns the highlight classes for the render.
func (r *Row) Highlights() []Highlight { return r.hl }

// Len returns the number of logical characters in the row.
func (r *Row) Len() int { return len(r.chars) }

// Document owns every row of the edited text. All mutations go through it so
// render, highlight and row numbering never go stale.
type Document struct {
	rows    []*Row   // Slice of rows in document order.
	dirty   int      // Number of modifications since the last load or save.
	syntax  *Profile // Active language profile, nil for plain text.
	tabStop int      // Width of a tab stop in the render.
}

// NewDocument returns an empty document using the given tab stop.
func NewDocument(tabStop int) *Document {
	if tabStop < 1 {
		tabStop = defaultTabStop
	}
	return &Document{tabStop: tabStop}
}

// NumRows returns the number of rows in the document.
func (d *Document) NumRows() int { return len(d.rows) }

// Row returns the row at position at, or nil when out of range.
func (d *Document) Row(at int) *Row {
	if at < 0 || at >= len(d.rows) {
		return nil
	}
	return d.rows[at]
}

// Dirty returns the modification counter.
func (d *Document) Dirty() int { return d.dirty }

// MarkClean resets the modification counter after a successful save.
func (d *Document) MarkClean() { d.dirty = 0 }

// Profile returns the active language profile.
func (d *Document) Profile() *Profile { return d.syntax }

// TabStop returns the tab stop width used for the render.
func (d *Document) TabStop() int { return d.tabStop }

// SetProfile selects a language profile and re-highlights every row.
func (d *Document) SetProfile(p *Profile) {
	d.syntax = p
	for _, row := range d.rows {
		row.openComment = false
	}
	for i := range d.rows {
		d.updateSyntax(i)
	}
}

// InsertRow inserts a new row holding text at position at.
func (d *Document) InsertRow(at int, text []byte) {
	if at < 0 || at > len(d.rows) {
		return
	}

	row := &Row{idx: at, chars: append([]byte(nil), text...)}
	// Start from the state the current successor was highlighted with, so a
	// change in this row's flag is detected and cascades.
	if at > 0 {
		row.openComment = d.rows[at-1].openComment
	}
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = row
	d.renumber(at + 1)

	d.updateRow(at)
	d.dirty++
}

// DeleteRow removes the row at position at.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}

	copy(d.rows[at:], d.rows[at+1:])
	d.rows[len(d.rows)-1] = nil
	d.rows = d.rows[:len(d.rows)-1]
	d.renumber(at)

	// The row now sitting at `at` inherits a different comment state.
	if at < len(d.rows) {
		d.updateSyntax(at)
	}
	d.dirty++
}

// InsertChar inserts c into row at column col. A column past the end of the
// row appends.
func (d *Document) InsertChar(at, col int, c byte) {
	row := d.Row(at)
	if row == nil {
		return
	}
	if col < 0 || col > len(row.chars) {
		col = len(row.chars)
	}

	row.chars = append(row.chars, 0)
	copy(row.chars[col+1:], row.chars[col:])
	row.chars[col] = c

	d.updateRow(at)
	d.dirty++
}

// DeleteChar removes the character at column col of row at.
func (d *Document) DeleteChar(at, col int) {
	row := d.Row(at)
	if row == nil || col < 0 || col >= len(row.chars) {
		return
	}

	row.chars = append(row.chars[:col], row.chars[col+1:]...)

	d.updateRow(at)
	d.dirty++
}

// AppendText appends text to the end of row at. Used to merge a row into its
// predecessor.
func (d *Document) AppendText(at int, text []byte) {
	row := d.Row(at)
	if row == nil {
		return
	}

	row.chars = append(row.chars, text...)

	d.updateRow(at)
	d.dirty++
}

// SplitRow breaks row at at column col, moving the remainder to a new row
// right below it.
func (d *Document) SplitRow(at, col int) {
	row := d.Row(at)
	if row == nil {
		return
	}
	if col < 0 {
		col = 0
	}
	if col > len(row.chars) {
		col = len(row.chars)
	}

	tail := append([]byte(nil), row.chars[col:]...)
	row.chars = row.chars[:col]
	d.updateRow(at)
	d.InsertRow(at+1, tail)
}

// Clear removes every row.
func (d *Document) Clear() {
	for len(d.rows) > 0 {
		d.DeleteRow(len(d.rows) - 1)
	}
}

// Load replaces all rows with lines and resets the modification counter.
func (d *Document) Load(lines [][]byte) {
	d.Clear()
	for _, line := range lines {
		d.InsertRow(len(d.rows), line)
	}
	d.dirty = 0
}

// Bytes serializes the document, each row followed by a newline.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	for _, row := range d.rows {
		buf.Write(row.chars)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// lines returns the logical contents of every row.
func (d *Document) lines() [][]byte {
	lines := make([][]byte, len(d.rows))
	for i, row := range d.rows {
		lines[i] = row.chars
	}
	return lines
}

// renumber rewrites the position index of every row from `from` on.
func (d *Document) renumber(from int) {
	for j := from; j < len(d.rows); j++ {
		d.rows[j].idx = j
	}
}

// updateRow regenerates the render of row at and re-highlights it.
func (d *Document) updateRow(at int) {
	row := d.rows[at]

	tabs := bytes.Count(row.chars, []byte{'\t'})
	render := make([]byte, 0, len(row.chars)+tabs*(d.tabStop-1))
	for _, c := range row.chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%d.tabStop != 0 {
				render = append(render, ' ')
			}
			continue
		}
		render = append(render, c)
	}
	row.render = render

	d.updateSyntax(at)
}

// CharToRender converts a character index of row into its render column.
func (d *Document) CharToRender(row *Row, cx int) int {
	if row == nil {
		return 0
	}
	rx := 0
	for j := 0; j < cx && j < len(row.chars); j++ {
		if row.chars[j] == '\t' {
			rx += (d.tabStop - 1) - (rx % d.tabStop)
		}
		rx++
	}
	return rx
}

// RenderToChar converts a render column of row back into a character index.
// Columns past the end of the row map to its length.
func (d *Document) RenderToChar(row *Row, rx int) int {
	if row == nil {
		return 0
	}
	cur := 0
	cx := 0
	for ; cx < len(row.chars); cx++ {
		if row.chars[cx] == '\t' {
			cur += (d.tabStop - 1) - (cur % d.tabStop)
		}
		cur++

		if cur > rx {
			return cx
		}
	}
	return cx
}
