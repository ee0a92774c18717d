package main

// Incremental search. The query is matched against row renders as it is
// typed; arrow keys step to the next or previous match, wrapping around the
// document. The current match is painted over the row highlight and the
// original classes are put back before the next step.

import "bytes"

// searchSession is the state kept between keypresses of one search.
type searchSession struct {
	lastMatch int         // Row of the last match, -1 for none.
	direction int         // 1 forward, -1 backward.
	savedLine int         // Row whose highlight was overwritten.
	savedHL   []Highlight // Original highlight of savedLine, nil when nothing to restore.
}

func newSearchSession() searchSession {
	return searchSession{lastMatch: -1, direction: 1}
}

// Find runs an incremental search. Cancelling puts the cursor and viewport
// back where they were.
func (e *Editor) Find() {
	savedCx, savedCy := e.cx, e.cy
	savedColoff, savedRowoff := e.coloff, e.rowoff

	e.find = newSearchSession()
	if _, ok := e.prompt("Search: %s (ESC/Arrows/Enter)", e.findCallback); !ok {
		e.cx, e.cy = savedCx, savedCy
		e.coloff, e.rowoff = savedColoff, savedRowoff
	}
}

// findCallback is the prompt observer driving the search.
func (e *Editor) findCallback(query string, key Key) {
	s := &e.find

	// Undo the previous match overlay first.
	if s.savedHL != nil {
		if row := e.doc.Row(s.savedLine); row != nil && len(row.hl) == len(s.savedHL) {
			copy(row.hl, s.savedHL)
		}
		s.savedHL = nil
	}

	switch key {
	case KeyEnter, KeyEscape:
		*s = newSearchSession()
		return
	case KeyArrowRight, KeyArrowDown:
		s.direction = 1
	case KeyArrowLeft, KeyArrowUp:
		s.direction = -1
	default:
		s.lastMatch = -1
		s.direction = 1
	}

	if s.lastMatch == -1 {
		s.direction = 1
	}
	if query == "" {
		return
	}

	needle := []byte(query)
	numRows := e.doc.NumRows()
	current := s.lastMatch
	for i := 0; i < numRows; i++ {
		current += s.direction
		if current == -1 {
			current = numRows - 1
		} else if current == numRows {
			current = 0
		}

		row := e.doc.Row(current)
		idx := bytes.Index(row.render, needle)
		if idx == -1 {
			continue
		}

		s.lastMatch = current
		e.cy = current
		e.cx = e.doc.RenderToChar(row, idx)
		// Scroll past the end so the next refresh puts the match on top.
		e.rowoff = numRows

		s.savedLine = current
		s.savedHL = append([]Highlight(nil), row.hl...)
		for j := idx; j < idx+len(needle); j++ {
			row.hl[j] = HLMatch
		}
		return
	}
}
