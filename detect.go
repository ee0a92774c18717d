package main

// Profile selection. The file name decides first; when no profile claims the
// name, the language is detected from the modeline or shebang of the content
// and from well-known file names.

import (
	"bytes"
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// detectLines is how many leading lines are inspected for a modeline or
// shebang.
const detectLines = 5

// selectProfile picks the profile for a file named filename holding lines.
func selectProfile(filename string, lines [][]byte) *Profile {
	if p := matchProfile(filename); p != nil {
		return p
	}
	head := bytes.Join(lines[:min(len(lines), detectLines)], []byte("\n"))
	return profileByLanguage(detectLanguage(filename, head))
}

// detectLanguage names the language of a file without guessing from its
// content: modeline, shebang, file name and extension are tried in order.
func detectLanguage(filename string, content []byte) string {
	if lang, _ := enry.GetLanguageByModeline(content); lang != "" {
		return lang
	}
	if lang, _ := enry.GetLanguageByShebang(content); lang != "" {
		return lang
	}
	if filename == "" {
		return ""
	}
	base := filepath.Base(filename)
	if lang, _ := enry.GetLanguageByFilename(base); lang != "" {
		return lang
	}
	if lang, _ := enry.GetLanguageByExtension(base); lang != "" {
		return lang
	}
	return ""
}
