package main

// Command handlers bound to control keys: quitting, opening another file,
// setting the window title and running shell commands.

import (
	"context"
	"fmt"
	"strings"
)

// Command provides a context for executing editor commands.
type Command struct {
	e *Editor
}

// quit stops the editor loop, remembering the cursor of the open file.
func (ch *Command) quit() {
	ch.e.rememberPosition()
	ch.e.quit = true
}

// open asks for a file name and loads it.
func (ch *Command) open() {
	name, ok := ch.e.prompt("Open file: %s (ESC to cancel)", nil)
	if !ok {
		ch.e.setStatusMessage("Open aborted")
		return
	}
	ch.e.Open(name)
}

// title asks for a new terminal window title.
func (ch *Command) title() {
	title, ok := ch.e.prompt("Enter new title: %s (ESC to cancel)", nil)
	if !ok {
		return
	}
	if err := ch.e.screen.SetTitle(title); err != nil {
		ch.e.setStatusMessage("Failed to set title: %v", err)
		return
	}
	ch.e.setStatusMessage("Title set to %q", title)
}

// promptShell asks for a command line and runs it with the configured shell.
func (ch *Command) promptShell() (string, bool) {
	shellCmd, ok := ch.e.prompt("$ %s (ESC to cancel)", nil)
	if !ok {
		return "", false
	}
	shellCmd = strings.TrimSpace(shellCmd)
	if shellCmd == "" {
		ch.e.setStatusMessage("No shell command specified")
		return "", false
	}

	ctx, cancel := context.WithTimeout(context.Background(), ch.e.cfg.ShellTimeout)
	defer cancel()

	output, err := runShell(ctx, ch.e.cfg.Shell, shellCmd, ch.e.screenCols)
	ch.e.addLog("Shell", fmt.Sprintf("%q: %d bytes, err=%v", shellCmd, len(output), err))
	if err != nil {
		// Display error along with any output that was produced.
		if output != "" {
			ch.e.setStatusMessage("Error: %v | Output: %s", err, firstLine(output))
		} else {
			ch.e.setStatusMessage("Error executing command: %v", err)
		}
		return "", false
	}
	return output, true
}

// executeShell runs a shell command and shows the first line of its output.
func (ch *Command) executeShell() {
	output, ok := ch.promptShell()
	if !ok {
		return
	}
	if output == "" {
		ch.e.setStatusMessage("Command executed successfully (no output)")
		return
	}
	ch.e.setStatusMessage("%s", firstLine(output))
}

// readShell runs a shell command and inserts its output below the cursor row.
func (ch *Command) readShell() {
	output, ok := ch.promptShell()
	if !ok {
		return
	}
	if output == "" {
		ch.e.setStatusMessage("Command produced no output")
		return
	}

	lines := strings.Split(output, "\n")
	at := min(ch.e.cy+1, ch.e.doc.NumRows())
	for i, line := range lines {
		ch.e.doc.InsertRow(at+i, []byte(line))
	}
	ch.e.setStatusMessage("Inserted %d lines", len(lines))
}

// firstLine returns s up to its first newline.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
