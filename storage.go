package main

// File access for the editor. Reading splits a file into lines without their
// terminators; writing replaces the file contents in place.

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoFilename is returned when saving a document that has no file yet.
var ErrNoFilename = errors.New("no filename")

// Storage loads and stores document contents.
type Storage interface {
	LoadLines(path string) ([][]byte, error)
	WriteAll(path string, data []byte) error
}

// fileStorage is the Storage backed by the local file system.
type fileStorage struct{}

// LoadLines reads path line by line, stripping trailing "\r" and "\n". A
// missing file is created empty.
func (fileStorage) LoadLines(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		f, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
		f.Close()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return readLines(f)
}

// readLines splits r into lines. A final line without a newline is kept.
func readLines(r io.Reader) ([][]byte, error) {
	var lines [][]byte
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			lines = append(lines, bytes.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}
	}
}

// WriteAll replaces the contents of path with data.
func (fileStorage) WriteAll(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	if err := f.Truncate(int64(len(data))); err != nil {
		f.Close()
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// expandPath resolves a leading "~" to the home directory.
func expandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
