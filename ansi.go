package main

// Escape-sequence frontend. Frames are encoded into a single buffer of VT100
// sequences and written in one go so the screen never shows a half-drawn
// frame.

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Frontend is what the editor draws through and reads keys from.
type Frontend interface {
	ReadKey() (Key, error)
	Size() (rows, cols int, err error)
	Draw(f *Frame) error
	SetTitle(title string) error
	Close() error
}

// ANSIScreen draws with raw escape sequences on a Terminal.
type ANSIScreen struct {
	term *Terminal // Nil when not attached to a tty.
	keys *KeyDecoder
	out  io.Writer
	size func() (int, int, error)
}

// NewANSIScreen returns a frontend drawing on t.
func NewANSIScreen(t *Terminal) *ANSIScreen {
	return &ANSIScreen{
		term: t,
		keys: NewKeyDecoder(t),
		out:  t,
		size: t.Size,
	}
}

func (s *ANSIScreen) ReadKey() (Key, error) { return s.keys.ReadKey() }

func (s *ANSIScreen) Size() (int, int, error) { return s.size() }

// Draw writes the encoded frame in a single write.
func (s *ANSIScreen) Draw(f *Frame) error {
	_, err := s.out.Write(encodeFrame(f))
	return err
}

// SetTitle sets the terminal window title (OSC 0).
func (s *ANSIScreen) SetTitle(title string) error {
	_, err := fmt.Fprintf(s.out, "\x1b]0;%s\x07", title)
	return err
}

// Close clears the screen and leaves raw mode.
func (s *ANSIScreen) Close() error {
	if _, err := io.WriteString(s.out, "\x1b[2J\x1b[H"); err != nil {
		return err
	}
	if s.term != nil {
		return s.term.Restore()
	}
	return nil
}

// encodeFrame renders f as escape sequences: hide the cursor, home, every
// text line, the inverted status line, the message line, then place and show
// the cursor.
func encodeFrame(f *Frame) []byte {
	var buf bytes.Buffer

	buf.WriteString("\x1b[?25l")
	buf.WriteString("\x1b[H")

	for _, line := range f.Lines {
		writeLine(&buf, line)
		buf.WriteString("\x1b[K\r\n")
	}

	buf.WriteString("\x1b[7m")
	buf.WriteString(f.Status)
	buf.WriteString("\x1b[m\r\n")

	buf.WriteString("\x1b[K")
	buf.WriteString(f.Message)

	fmt.Fprintf(&buf, "\x1b[%d;%dH", f.CursorRow+1, f.CursorCol+1)
	buf.WriteString("\x1b[?25h")
	return buf.Bytes()
}

// writeLine encodes one text line. Color changes are only emitted when the
// class color differs from the current one.
func writeLine(buf *bytes.Buffer, line FrameLine) {
	if line.Gutter == "" {
		buf.Write(line.Text)
		return
	}
	buf.WriteString(line.Gutter)

	current := -1
	for i, c := range line.Text {
		hl := HLNormal
		if i < len(line.HL) {
			hl = line.HL[i]
		}

		// Control characters are shown as an inverted symbol.
		if isControl(Key(c)) {
			sym := byte('?')
			if c <= 26 {
				sym = '@' + c
			}
			buf.WriteString("\x1b[7m")
			buf.WriteByte(sym)
			buf.WriteString("\x1b[m")
			if current != -1 {
				writeColor(buf, current)
			}
			continue
		}

		if hl == HLNormal {
			if current != -1 {
				buf.WriteString("\x1b[39m")
				current = -1
			}
			buf.WriteByte(c)
			continue
		}

		color := GetThemeColor(hl).SGR
		if color != current {
			current = color
			writeColor(buf, color)
		}
		buf.WriteByte(c)
	}
	buf.WriteString("\x1b[39m")
}

func writeColor(buf *bytes.Buffer, sgr int) {
	buf.WriteString("\x1b[")
	buf.WriteString(strconv.Itoa(sgr))
	buf.WriteByte('m')
}
