package main

// Low level terminal handling: raw mode, a polling byte source over the tty
// and window size detection.

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal is the raw-mode tty the editor reads keys from and writes frames to.
type Terminal struct {
	in    *os.File
	out   *os.File
	state *term.State // Original mode, restored by Restore.
}

// OpenTerminal switches in to raw mode with a 100ms read timeout.
func OpenTerminal(in, out *os.File) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("stdin is not a terminal")
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	t := &Terminal{in: in, out: out, state: state}

	// MakeRaw leaves reads fully blocking; poll instead so a lone Escape is
	// not stuck waiting for the rest of a sequence.
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		t.Restore()
		return nil, fmt.Errorf("read termios: %w", err)
	}
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, termios); err != nil {
		t.Restore()
		return nil, fmt.Errorf("set read timeout: %w", err)
	}
	return t, nil
}

// Restore puts the terminal back in the mode it was in before OpenTerminal.
func (t *Terminal) Restore() error {
	if t.state == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.state)
	t.state = nil
	return err
}

// ReadByte reads one byte, returning errNoInput when the poll window elapsed.
func (t *Terminal) ReadByte() (byte, error) {
	var buf [1]byte
	n, err := t.in.Read(buf[:])
	if n == 1 {
		return buf[0], nil
	}
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
		return 0, errNoInput
	}
	return 0, err
}

// Write sends raw bytes to the terminal.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Size returns the window size in rows and columns. When the size cannot be
// queried from the kernel the cursor is pushed to the bottom-right corner and
// its position is asked for instead.
func (t *Terminal) Size() (int, int, error) {
	cols, rows, err := term.GetSize(int(t.out.Fd()))
	if err == nil && cols > 0 {
		return rows, cols, nil
	}

	if _, err := io.WriteString(t.out, "\x1b[999C\x1b[999B"); err != nil {
		return 0, 0, fmt.Errorf("window size: %w", err)
	}
	return t.cursorPosition()
}

// cursorPosition asks the terminal where the cursor is (DSR 6).
func (t *Terminal) cursorPosition() (int, int, error) {
	if _, err := io.WriteString(t.out, "\x1b[6n"); err != nil {
		return 0, 0, fmt.Errorf("cursor position: %w", err)
	}

	var resp []byte
	for len(resp) < 31 {
		b, err := t.ReadByte()
		if err != nil {
			break
		}
		if b == 'R' {
			break
		}
		resp = append(resp, b)
	}
	return parseCursorReport(string(resp))
}

// parseCursorReport parses "ESC [ rows ; cols" (the trailing R removed).
func parseCursorReport(s string) (int, int, error) {
	if !strings.HasPrefix(s, "\x1b[") {
		return 0, 0, fmt.Errorf("invalid cursor position report %q", s)
	}
	parts := strings.Split(strings.TrimPrefix(s, "\x1b["), ";")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid cursor position report %q", s)
	}
	rows, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid cursor position report %q: %w", s, err)
	}
	cols, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid cursor position report %q: %w", s, err)
	}
	return rows, cols, nil
}
