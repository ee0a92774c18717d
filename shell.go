package main

// Shell command execution. Commands run in a pseudo terminal so programs that
// check for a tty behave as they do interactively; their output is stripped of
// escape sequences before it reaches the editor.

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"syscall"

	"github.com/charmbracelet/x/ansi"
	"github.com/creack/pty"
)

// maxShellOutput bounds how much output of one command is kept.
const maxShellOutput = 64 * 1024

// runShell runs command with shell -c in a pty cols wide and returns its
// cleaned output.
func runShell(ctx context.Context, shell, command string, cols int) (string, error) {
	cmd := exec.CommandContext(ctx, shell, "-c", command)
	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 24, Cols: uint16(max(cols, 1))})
	if err != nil {
		return "", fmt.Errorf("start %s: %w", shell, err)
	}

	var out bytes.Buffer
	_, copyErr := io.Copy(&out, io.LimitReader(f, maxShellOutput))
	// Closing the master unblocks a child still writing past the limit.
	f.Close()
	waitErr := cmd.Wait()

	// Linux reports EIO once the child side of the pty is gone.
	if copyErr != nil && !errors.Is(copyErr, syscall.EIO) {
		return cleanShellOutput(out.Bytes()), fmt.Errorf("read output: %w", copyErr)
	}
	return cleanShellOutput(out.Bytes()), waitErr
}

// cleanShellOutput strips escape sequences and carriage returns and drops
// trailing newlines.
func cleanShellOutput(raw []byte) string {
	s := ansi.Strip(string(raw))
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimRight(s, "\n")
}
