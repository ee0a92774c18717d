package main

// Input processing. Reads one key per loop iteration and dispatches it to an
// editing operation, a cursor movement or a command.

// processKeypress handles a single key.
func (e *Editor) processKeypress() {
	k, err := e.screen.ReadKey()
	if err != nil {
		e.fail(err)
		return
	}

	switch k {
	case KeyEnter:
		e.insertNewline()

	case ctrlKey('q'):
		// A dirty document needs repeated presses before quitting.
		if e.doc.Dirty() > 0 && e.quitTimes > 0 {
			e.setStatusMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
			e.quitTimes--
			return
		}
		e.commands.quit()
		return

	case ctrlKey('s'):
		e.Save()

	case ctrlKey('o'):
		if e.doc.Dirty() > 0 {
			e.setStatusMessage(unsavedOpenMessage)
			return
		}
		e.commands.open()

	case ctrlKey('t'):
		e.commands.title()

	case ctrlKey('u'):
		e.commands.executeShell()

	case ctrlKey('e'):
		e.commands.readShell()

	case ctrlKey('f'):
		e.Find()

	case KeyHome:
		e.cx = 0

	case KeyEnd:
		if row := e.doc.Row(e.cy); row != nil {
			e.cx = row.Len()
		}

	case KeyBackspace, ctrlKey('h'), KeyDelete:
		if k == KeyDelete {
			e.moveCursor(KeyArrowRight)
		}
		e.delChar()

	case KeyPageUp, KeyPageDown:
		if k == KeyPageUp {
			e.cy = e.rowoff
		} else {
			e.cy = min(e.rowoff+e.screenRows-1, e.doc.NumRows())
		}
		dir := KeyArrowUp
		if k == KeyPageDown {
			dir = KeyArrowDown
		}
		for times := e.screenRows; times > 0; times-- {
			e.moveCursor(dir)
		}

	case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight:
		e.moveCursor(k)

	case ctrlKey('l'), KeyEscape:
		// Nothing to do; the screen is redrawn on every key anyway.

	default:
		if k < 256 {
			e.insertChar(byte(k))
		}
	}

	e.quitTimes = e.cfg.QuitTimes
}

// moveCursor moves the cursor one step. Left and right wrap across row
// boundaries; the column is clamped to the length of the new row.
func (e *Editor) moveCursor(k Key) {
	row := e.doc.Row(e.cy)

	switch k {
	case KeyArrowLeft:
		if e.cx > 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.doc.Row(e.cy).Len()
		}
	case KeyArrowRight:
		if row != nil && e.cx < row.Len() {
			e.cx++
		} else if row != nil && e.cx == row.Len() {
			e.cy++
			e.cx = 0
		}
	case KeyArrowUp:
		if e.cy > 0 {
			e.cy--
		}
	case KeyArrowDown:
		if e.cy < e.doc.NumRows() {
			e.cy++
		}
	}

	rowLen := 0
	if row := e.doc.Row(e.cy); row != nil {
		rowLen = row.Len()
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}

// insertChar inserts c at the cursor. Typing on the line past the end of the
// document adds a row first.
func (e *Editor) insertChar(c byte) {
	if e.cy == e.doc.NumRows() {
		e.doc.InsertRow(e.doc.NumRows(), nil)
	}
	e.doc.InsertChar(e.cy, e.cx, c)
	e.cx++
}

// insertNewline splits the current row at the cursor.
func (e *Editor) insertNewline() {
	if e.cx == 0 {
		e.doc.InsertRow(e.cy, nil)
	} else {
		e.doc.SplitRow(e.cy, e.cx)
	}
	e.cy++
	e.cx = 0
}

// delChar deletes the character left of the cursor. At the start of a row the
// row is joined onto the previous one.
func (e *Editor) delChar() {
	if e.cy == e.doc.NumRows() {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	if e.cx > 0 {
		e.doc.DeleteChar(e.cy, e.cx-1)
		e.cx--
		return
	}

	row := e.doc.Row(e.cy)
	e.cx = e.doc.Row(e.cy - 1).Len()
	e.doc.AppendText(e.cy-1, row.chars)
	e.doc.DeleteRow(e.cy)
	e.cy--
}
