package main

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestHistory(t *testing.T, path string) *History {
	t.Helper()
	h, err := OpenHistory(path)
	if err != nil {
		t.Fatalf("OpenHistory() error: %v", err)
	}
	t.Cleanup(func() { h.Close() })
	return h
}

func TestHistoryRememberLookup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "history.db")
	h := openTestHistory(t, path)

	if _, ok, err := h.Lookup("/src/main.c"); err != nil || ok {
		t.Fatalf("Lookup() on empty history = %v, %v", ok, err)
	}

	if err := h.Remember("/src/main.c", Position{Row: 10, Col: 4}); err != nil {
		t.Fatalf("Remember() error: %v", err)
	}
	if err := h.Remember("/src/main.c", Position{Row: 12, Col: 1}); err != nil {
		t.Fatalf("Remember() update error: %v", err)
	}

	pos, ok, err := h.Lookup("/src/main.c")
	if err != nil || !ok {
		t.Fatalf("Lookup() = %v, %v", ok, err)
	}
	if pos != (Position{Row: 12, Col: 1}) {
		t.Fatalf("Lookup() = %+v, want {12 1}", pos)
	}
}

func TestHistoryPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	h, err := OpenHistory(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Remember("/a.txt", Position{Row: 3, Col: 2}); err != nil {
		t.Fatal(err)
	}
	if err := h.Close(); err != nil {
		t.Fatal(err)
	}

	h = openTestHistory(t, path)
	pos, ok, err := h.Lookup("/a.txt")
	if err != nil || !ok || pos != (Position{Row: 3, Col: 2}) {
		t.Fatalf("Lookup() after reopen = %+v, %v, %v", pos, ok, err)
	}
}

func TestEditorRestoresCursor(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(file, []byte("one\ntwo\nthree\n"), 0644); err != nil {
		t.Fatal(err)
	}
	h := openTestHistory(t, filepath.Join(dir, "history.db"))

	e, _ := newTestEditor(t, KeyArrowDown, KeyArrowDown, KeyEnd, ctrlKey('q'))
	e.history = h
	e.Open(file)
	runKeys(t, e)
	if !e.quit {
		t.Fatalf("editor did not quit")
	}

	e, _ = newTestEditor(t)
	e.history = h
	e.Open(file)
	if e.cy != 2 || e.cx != 5 {
		t.Fatalf("restored cursor = (%d, %d), want (2, 5)", e.cy, e.cx)
	}

	// A shorter file clamps the remembered position.
	if err := os.WriteFile(file, []byte("x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	e, _ = newTestEditor(t)
	e.history = h
	e.Open(file)
	if e.cy != 0 || e.cx != 1 {
		t.Fatalf("clamped cursor = (%d, %d), want (0, 1)", e.cy, e.cx)
	}
}
