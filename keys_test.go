package main

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestReadKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Key
	}{
		{"plain byte", "a", 'a'},
		{"control byte", "\x11", ctrlKey('q')},
		{"enter", "\r", KeyEnter},
		{"backspace", "\x7f", KeyBackspace},
		{"arrow up", "\x1b[A", KeyArrowUp},
		{"arrow down", "\x1b[B", KeyArrowDown},
		{"arrow right", "\x1b[C", KeyArrowRight},
		{"arrow left", "\x1b[D", KeyArrowLeft},
		{"home CSI H", "\x1b[H", KeyHome},
		{"end CSI F", "\x1b[F", KeyEnd},
		{"home SS3", "\x1bOH", KeyHome},
		{"end SS3", "\x1bOF", KeyEnd},
		{"home 1~", "\x1b[1~", KeyHome},
		{"home 7~", "\x1b[7~", KeyHome},
		{"delete", "\x1b[3~", KeyDelete},
		{"end 4~", "\x1b[4~", KeyEnd},
		{"end 8~", "\x1b[8~", KeyEnd},
		{"page up", "\x1b[5~", KeyPageUp},
		{"page down", "\x1b[6~", KeyPageDown},
		{"lone escape", "\x1b", KeyEscape},
		{"truncated sequence", "\x1b[", KeyEscape},
		{"unknown CSI", "\x1b[X", KeyEscape},
		{"unknown tilde", "\x1b[9~", KeyEscape},
		{"digit without tilde", "\x1b[5x", KeyEscape},
		{"unknown SS3", "\x1bOA", KeyEscape},
		{"alt key", "\x1bxy", KeyEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewKeyDecoder(bytes.NewReader([]byte(tt.input)))
			got, err := d.ReadKey()
			if err != nil {
				t.Fatalf("ReadKey() error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ReadKey() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReadKeySequence(t *testing.T) {
	d := NewKeyDecoder(bytes.NewReader([]byte("x\x1b[Ay")))
	want := []Key{'x', KeyArrowUp, 'y'}
	for i, w := range want {
		got, err := d.ReadKey()
		if err != nil {
			t.Fatalf("key %d: %v", i, err)
		}
		if got != w {
			t.Fatalf("key %d = %d, want %d", i, got, w)
		}
	}
	if _, err := d.ReadKey(); !errors.Is(err, io.EOF) {
		t.Fatalf("ReadKey() at end = %v, want io.EOF", err)
	}
}

// pollingSource reports an empty poll window a few times before each byte.
type pollingSource struct {
	data  []byte
	empty int
	left  int
}

func (s *pollingSource) ReadByte() (byte, error) {
	if s.left > 0 {
		s.left--
		return 0, errNoInput
	}
	if len(s.data) == 0 {
		return 0, io.EOF
	}
	s.left = s.empty
	b := s.data[0]
	s.data = s.data[1:]
	return b, nil
}

func TestReadKeyWaitsForInput(t *testing.T) {
	src := &pollingSource{data: []byte("q"), empty: 3, left: 3}
	got, err := NewKeyDecoder(src).ReadKey()
	if err != nil {
		t.Fatalf("ReadKey() error: %v", err)
	}
	if got != 'q' {
		t.Fatalf("ReadKey() = %d, want 'q'", got)
	}
}

func TestStalledSequenceIsEscape(t *testing.T) {
	// The byte after ESC never arrives within the poll window.
	src := &pollingSource{data: []byte("\x1b[A"), empty: 1}
	got, err := NewKeyDecoder(src).ReadKey()
	if err != nil {
		t.Fatalf("ReadKey() error: %v", err)
	}
	if got != KeyEscape {
		t.Fatalf("ReadKey() = %d, want Escape", got)
	}
}

func TestCtrlKey(t *testing.T) {
	if ctrlKey('q') != 17 || ctrlKey('a') != 1 || ctrlKey('h') != 8 {
		t.Fatalf("unexpected control key values")
	}
	if !isControl(ctrlKey('s')) || !isControl(KeyBackspace) || isControl('a') {
		t.Fatalf("isControl misclassifies keys")
	}
}
