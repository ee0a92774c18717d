package main

// Termbox frontend. Selected with -backend termbox; draws frames cell by cell
// and translates termbox key events into editor keys.

import (
	"fmt"
	"os"

	"github.com/nsf/termbox-go"
)

// TermboxScreen draws through termbox.
type TermboxScreen struct{}

// NewTermboxScreen initializes termbox.
func NewTermboxScreen() (*TermboxScreen, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("failed to init termbox: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.OutputNormal)
	return &TermboxScreen{}, nil
}

// ReadKey waits for the next key event that maps to an editor key.
func (s *TermboxScreen) ReadKey() (Key, error) {
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventKey:
			if k, ok := termboxKey(ev); ok {
				return k, nil
			}
		case termbox.EventError:
			return 0, ev.Err
		case termbox.EventInterrupt:
			return KeyEscape, nil
		}
	}
}

// Size returns the window size in rows and columns.
func (s *TermboxScreen) Size() (int, int, error) {
	w, h := termbox.Size()
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid window size %dx%d", w, h)
	}
	return h, w, nil
}

// Draw paints f into the back buffer and flushes it.
func (s *TermboxScreen) Draw(f *Frame) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}

	for y, line := range f.Lines {
		x := 0
		for _, ch := range line.Gutter {
			termbox.SetCell(x, y, ch, termbox.ColorDefault, termbox.ColorDefault)
			x++
		}
		for i, c := range line.Text {
			hl := HLNormal
			if i < len(line.HL) && line.Gutter != "" {
				hl = line.HL[i]
			}
			fg := GetThemeColor(hl).Termbox
			bg := termbox.ColorDefault

			// Control characters are shown as an inverted symbol.
			if isControl(Key(c)) {
				sym := byte('?')
				if c <= 26 {
					sym = '@' + c
				}
				termbox.SetCell(x, y, rune(sym), fg|termbox.AttrReverse, bg)
				x++
				continue
			}
			termbox.SetCell(x, y, rune(c), fg, bg)
			x++
		}
	}

	// Status line in reverse video, message line below it.
	y := len(f.Lines)
	x := 0
	for _, ch := range f.Status {
		termbox.SetCell(x, y, ch, termbox.ColorDefault|termbox.AttrReverse, termbox.ColorDefault)
		x++
	}
	x = 0
	for _, ch := range f.Message {
		termbox.SetCell(x, y+1, ch, termbox.ColorDefault, termbox.ColorDefault)
		x++
	}

	termbox.SetCursor(f.CursorCol, f.CursorRow)
	return termbox.Flush()
}

// SetTitle sets the window title. Termbox has no call for it so the escape
// sequence goes straight to the terminal.
func (s *TermboxScreen) SetTitle(title string) error {
	_, err := fmt.Fprintf(os.Stdout, "\x1b]0;%s\x07", title)
	return err
}

func (s *TermboxScreen) Close() error {
	termbox.Close()
	return nil
}

// termboxKey maps a termbox key event to an editor key. Events with no
// editor meaning (non-ASCII runes, function keys) are dropped.
func termboxKey(ev termbox.Event) (Key, bool) {
	if ev.Ch != 0 {
		if ev.Ch < 128 {
			return Key(ev.Ch), true
		}
		return 0, false
	}

	switch ev.Key {
	case termbox.KeyArrowUp:
		return KeyArrowUp, true
	case termbox.KeyArrowDown:
		return KeyArrowDown, true
	case termbox.KeyArrowLeft:
		return KeyArrowLeft, true
	case termbox.KeyArrowRight:
		return KeyArrowRight, true
	case termbox.KeyHome:
		return KeyHome, true
	case termbox.KeyEnd:
		return KeyEnd, true
	case termbox.KeyPgup:
		return KeyPageUp, true
	case termbox.KeyPgdn:
		return KeyPageDown, true
	case termbox.KeyDelete:
		return KeyDelete, true
	case termbox.KeySpace:
		return ' ', true
	case termbox.KeyBackspace2:
		return KeyBackspace, true
	}

	// Remaining termbox keys below 0x20 are the control bytes themselves.
	if ev.Key < 0x20 {
		return Key(ev.Key), true
	}
	return 0, false
}
