package main

// Core of the application. Holds the editor state (document, cursor, viewport
// and status message), runs the refresh/keypress loop and coordinates opening
// and saving files.

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"
)

const unsavedOpenMessage = "Unsaved Changes! Save (CTRL-S) before opening another file."

// Editor is the main controller struct that holds all global state.
type Editor struct {
	doc        *Document // The document being edited.
	cx, cy     int       // Cursor position: character index and row (cy may equal NumRows).
	rx         int       // Cursor column in the render of row cy.
	rowoff     int       // First document row shown.
	coloff     int       // First render column shown.
	screenRows int       // Rows available for text (window minus status and message lines).
	screenCols int       // Columns of the window.

	filename   string    // Path of the open file, empty when unnamed.
	statusMsg  string    // Message shown below the status bar.
	statusTime time.Time // When statusMsg was set.

	quitTimes    int           // Ctrl-Q presses left before quitting a dirty document.
	quit         bool          // Set once the loop should stop.
	err          error         // Fatal error raised while handling a key.
	find         searchSession // Incremental search state.
	syntaxErrors int           // Parse errors reported by the last diagnosis.

	cfg      Configuration
	screen   Frontend    // Where frames are drawn and keys come from.
	storage  Storage     // File access.
	history  *History    // Cursor positions per file, nil when disabled.
	logger   *log.Logger // Debug log.
	commands *Command    // Command handler instance.
	now      func() time.Time
}

// NewEditor returns an editor drawing on screen. The window size is queried
// once; failing to get it is fatal.
func NewEditor(cfg Configuration, screen Frontend) (*Editor, error) {
	rows, cols, err := screen.Size()
	if err != nil {
		return nil, fmt.Errorf("get window size: %w", err)
	}
	if rows < 3 || cols < 1 {
		return nil, fmt.Errorf("window too small: %dx%d", cols, rows)
	}

	e := &Editor{
		doc:        NewDocument(cfg.TabStop),
		screenRows: rows - 2,
		screenCols: cols,
		quitTimes:  cfg.QuitTimes,
		cfg:        cfg,
		screen:     screen,
		storage:    fileStorage{},
		logger:     log.New(io.Discard, "", 0),
		now:        time.Now,
	}
	e.find = newSearchSession()
	e.commands = &Command{e: e}
	return e, nil
}

// addLog writes a debug line tagged with group.
func (e *Editor) addLog(group, msg string) {
	e.logger.Printf("[%s] %s", group, msg)
}

// setStatusMessage shows a formatted message below the status bar.
func (e *Editor) setStatusMessage(format string, args ...any) {
	e.statusMsg = fmt.Sprintf(format, args...)
	e.statusTime = e.now()
}

// fail records a fatal error; the loop stops after the current key.
func (e *Editor) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// Run refreshes the screen and handles keys until the user quits or a fatal
// error occurs.
func (e *Editor) Run() error {
	for !e.quit {
		if err := e.refresh(); err != nil {
			return fmt.Errorf("refresh screen: %w", err)
		}
		e.processKeypress()
		if e.err != nil {
			return e.err
		}
	}
	return nil
}

// Open loads filename into the document, creating the file when it does not
// exist yet.
func (e *Editor) Open(filename string) {
	if e.doc.Dirty() > 0 {
		e.setStatusMessage(unsavedOpenMessage)
		return
	}

	path, err := expandPath(filename)
	if err != nil {
		e.setStatusMessage("Failed to expand path: %v", err)
		return
	}

	lines, err := e.storage.LoadLines(path)
	if err != nil {
		e.setStatusMessage("Failed to open file: %v", err)
		e.addLog("File", err.Error())
		return
	}

	// Remember where we were in the previous file before leaving it.
	e.rememberPosition()

	e.filename = path
	e.cx, e.cy, e.rowoff, e.coloff = 0, 0, 0, 0
	e.doc.Clear()
	e.doc.SetProfile(selectProfile(path, lines))
	e.doc.Load(lines)
	e.restorePosition()
	e.diagnose()
	e.addLog("File", fmt.Sprintf("opened %s (%d lines)", path, len(lines)))
}

// Save writes the document to its file, asking for a name first when it has
// none. The name and profile only change once the write went through.
func (e *Editor) Save() {
	path := e.filename
	if path == "" {
		name, ok := e.prompt("Save as: %s (ESC to cancel)", nil)
		if !ok {
			e.setStatusMessage("Save aborted")
			return
		}
		var err error
		if path, err = expandPath(name); err != nil {
			e.setStatusMessage("Failed to expand path: %v", err)
			return
		}
	}

	n, err := e.writeFile(path)
	if err != nil {
		e.setStatusMessage("Can't save! I/O error: %v", err)
		e.addLog("File", err.Error())
		return
	}
	if path != e.filename {
		e.filename = path
		e.doc.SetProfile(selectProfile(path, e.doc.lines()))
	}
	e.setStatusMessage("%d bytes written to disk", n)
	e.rememberPosition()
	e.diagnose()
}

// writeFile stores the document at path and marks it clean.
func (e *Editor) writeFile(path string) (int, error) {
	if path == "" {
		return 0, ErrNoFilename
	}
	data := e.doc.Bytes()
	if err := e.storage.WriteAll(path, data); err != nil {
		return 0, err
	}
	e.doc.MarkClean()
	return len(data), nil
}

// rememberPosition stores the cursor of the open file in the history.
func (e *Editor) rememberPosition() {
	if e.history == nil || e.filename == "" {
		return
	}
	path, err := filepath.Abs(e.filename)
	if err != nil {
		path = e.filename
	}
	if err := e.history.Remember(path, Position{Row: e.cy, Col: e.cx}); err != nil {
		e.addLog("History", err.Error())
	}
}

// restorePosition moves the cursor to where it was when the file was last
// left, clamped to the current contents.
func (e *Editor) restorePosition() {
	if e.history == nil || e.filename == "" {
		return
	}
	path, err := filepath.Abs(e.filename)
	if err != nil {
		path = e.filename
	}
	pos, ok, err := e.history.Lookup(path)
	if err != nil {
		e.addLog("History", err.Error())
		return
	}
	if !ok {
		return
	}

	e.cy = min(max(pos.Row, 0), max(e.doc.NumRows()-1, 0))
	e.cx = 0
	if row := e.doc.Row(e.cy); row != nil {
		e.cx = min(max(pos.Col, 0), row.Len())
	}
}
