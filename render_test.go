package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestGutterWidth(t *testing.T) {
	tests := []struct {
		rows int
		want int
	}{
		{0, 2},
		{9, 2},
		{10, 3},
		{150, 4},
		{999, 4},
		{1000, 5},
	}
	for _, tt := range tests {
		e, _ := newTestEditor(t)
		for i := 0; i < tt.rows; i++ {
			e.doc.InsertRow(i, nil)
		}
		if got := e.gutterWidth(); got != tt.want {
			t.Errorf("gutterWidth() with %d rows = %d, want %d", tt.rows, got, tt.want)
		}
	}
}

func TestVerticalScroll(t *testing.T) {
	e, _ := newTestEditor(t)
	for i := 0; i < 30; i++ {
		e.doc.InsertRow(i, []byte("row"))
	}

	e.cy = 25
	f := e.buildFrame()
	if e.rowoff != 16 {
		t.Fatalf("rowoff = %d, want 16", e.rowoff)
	}
	if f.CursorRow != 9 {
		t.Fatalf("cursor row = %d, want 9", f.CursorRow)
	}
	if f.Lines[0].Gutter != "17 " {
		t.Fatalf("first gutter = %q, want %q", f.Lines[0].Gutter, "17 ")
	}

	e.cy = 3
	e.buildFrame()
	if e.rowoff != 3 {
		t.Fatalf("rowoff after moving up = %d, want 3", e.rowoff)
	}
}

func TestHorizontalScroll(t *testing.T) {
	e, _ := newTestEditor(t)
	e.doc.InsertRow(0, bytes.Repeat([]byte("x"), 100))

	e.cx = 50
	f := e.buildFrame()
	if e.coloff != 13 {
		t.Fatalf("coloff = %d, want 13", e.coloff)
	}
	if f.CursorCol != 39 {
		t.Fatalf("cursor col = %d, want 39", f.CursorCol)
	}
	if len(f.Lines[0].Text) != 38 {
		t.Fatalf("visible text = %d columns, want 38", len(f.Lines[0].Text))
	}
}

func TestScrollUsesRenderColumn(t *testing.T) {
	e, _ := newTestEditor(t)
	e.doc.InsertRow(0, []byte("\t\tx"))
	e.cx = 2
	f := e.buildFrame()
	if e.rx != 8 {
		t.Fatalf("rx = %d, want 8", e.rx)
	}
	if f.CursorCol != 10 {
		t.Fatalf("cursor col = %d, want 10", f.CursorCol)
	}
}

func TestWelcomeFrame(t *testing.T) {
	e, _ := newTestEditor(t)
	f := e.buildFrame()

	if len(f.Lines) != 10 {
		t.Fatalf("frame has %d lines, want 10", len(f.Lines))
	}
	for i, line := range f.Lines {
		text := string(line.Text)
		if i == 3 {
			if !strings.HasPrefix(text, "~") || !strings.Contains(text, "Reef editor -- version") {
				t.Fatalf("welcome line = %q", text)
			}
			continue
		}
		if text != "~" {
			t.Fatalf("line %d = %q, want filler", i, text)
		}
	}
}

func TestWelcomeLineTruncated(t *testing.T) {
	if got := welcomeLine(5); got != "Reef " {
		t.Fatalf("welcomeLine(5) = %q", got)
	}
}

func TestStatusLine(t *testing.T) {
	e, _ := newTestEditor(t)
	e.filename = "test.c"
	e.doc.SetProfile(matchProfile(e.filename))
	e.doc.InsertRow(0, []byte("int a;"))
	e.doc.InsertRow(1, []byte("int b;"))

	status := e.statusLine()
	if len(status) != 40 {
		t.Fatalf("status is %d columns, want 40: %q", len(status), status)
	}
	if !strings.HasPrefix(status, "test.c - 2 lines (modified)") {
		t.Fatalf("status = %q", status)
	}
	if !strings.HasSuffix(status, "C | 1/2") {
		t.Fatalf("status = %q", status)
	}

	e.doc.MarkClean()
	e.doc.SetProfile(nil)
	e.syntaxErrors = 0
	status = e.statusLine()
	if strings.Contains(status, "(modified)") || !strings.HasSuffix(status, "no known filetype | 1/2") {
		t.Fatalf("status = %q", status)
	}
}

func TestStatusLineLongName(t *testing.T) {
	e, _ := newTestEditor(t)
	e.filename = strings.Repeat("n", 50)
	status := e.statusLine()
	if !strings.HasPrefix(status, strings.Repeat("n", 20)+" - 0 lines") {
		t.Fatalf("status = %q", status)
	}
	if len(status) != 40 {
		t.Fatalf("status is %d columns, want 40", len(status))
	}
}

func TestWriteLineLazyColors(t *testing.T) {
	var buf bytes.Buffer
	writeLine(&buf, FrameLine{
		Gutter: "1 ",
		Text:   []byte("if x 12"),
		HL:     []Highlight{HLKeyword1, HLKeyword1, HLNormal, HLNormal, HLNormal, HLNumber, HLNumber},
	})
	want := "1 \x1b[93mif\x1b[39m x \x1b[96m12\x1b[39m"
	if got := buf.String(); got != want {
		t.Fatalf("writeLine() = %q, want %q", got, want)
	}
}

func TestWriteLineSharedCommentColor(t *testing.T) {
	var buf bytes.Buffer
	writeLine(&buf, FrameLine{
		Gutter: "1 ",
		Text:   []byte("ab"),
		HL:     []Highlight{HLComment, HLMLComment},
	})
	want := "1 \x1b[91mab\x1b[39m"
	if got := buf.String(); got != want {
		t.Fatalf("writeLine() = %q, want %q", got, want)
	}
}

func TestWriteLineControlCharacters(t *testing.T) {
	var buf bytes.Buffer
	writeLine(&buf, FrameLine{
		Gutter: "1 ",
		Text:   []byte{'"', 0x01, '"', 0x7f},
		HL:     []Highlight{HLString, HLString, HLString, HLNormal},
	})
	want := "1 \x1b[31m\"\x1b[7mA\x1b[m\x1b[31m\"\x1b[7m?\x1b[m\x1b[31m\x1b[39m"
	if got := buf.String(); got != want {
		t.Fatalf("writeLine() = %q, want %q", got, want)
	}
}

func TestWriteLineFiller(t *testing.T) {
	var buf bytes.Buffer
	writeLine(&buf, FrameLine{Text: []byte("~")})
	if buf.String() != "~" {
		t.Fatalf("filler encoded as %q", buf.String())
	}
}

func TestEncodeFrame(t *testing.T) {
	f := &Frame{
		Lines:     []FrameLine{{Gutter: "1 ", Text: []byte("a"), HL: []Highlight{HLNormal}}, {Text: []byte("~")}},
		Status:    "status",
		Message:   "msg",
		Cols:      10,
		CursorRow: 1,
		CursorCol: 4,
	}
	want := "\x1b[?25l\x1b[H" +
		"1 a\x1b[39m\x1b[K\r\n" +
		"~\x1b[K\r\n" +
		"\x1b[7mstatus\x1b[m\r\n" +
		"\x1b[Kmsg" +
		"\x1b[2;5H\x1b[?25h"
	if got := string(encodeFrame(f)); got != want {
		t.Fatalf("encodeFrame() = %q, want %q", got, want)
	}
}

func TestANSIScreenSession(t *testing.T) {
	var out bytes.Buffer
	screen := &ANSIScreen{
		keys: NewKeyDecoder(bytes.NewReader([]byte("hi\x1b[D!"))),
		out:  &out,
		size: func() (int, int, error) { return 10, 40, nil },
	}
	e, err := NewEditor(DefaultConfig(), screen)
	if err != nil {
		t.Fatalf("NewEditor() error: %v", err)
	}

	if err := e.Run(); !errors.Is(err, io.EOF) {
		t.Fatalf("Run() = %v, want io.EOF", err)
	}
	assertRows(t, e.doc, "h!i")

	if err := screen.SetTitle("t"); err != nil {
		t.Fatal(err)
	}
	if err := screen.Close(); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "1 h!i") {
		t.Fatalf("output does not contain the edited row: %q", got)
	}
	if !strings.HasSuffix(got, "\x1b]0;t\x07\x1b[2J\x1b[H") {
		t.Fatalf("output does not end with title and clear: %q", got)
	}
}
