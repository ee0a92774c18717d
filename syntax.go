package main

// Syntax highlighting. Each row is classified byte by byte from its render,
// given the active language profile and whether a multi-line comment was left
// open by the row above. When a row's open-comment state changes, the rows
// below it are re-highlighted until the state settles.

import "bytes"

// Highlight is the classification of a single rendered character.
type Highlight uint8

const (
	HLNormal Highlight = iota
	HLComment
	HLMLComment
	HLKeyword1
	HLKeyword2
	HLKeyword3
	HLString
	HLNumber
	HLMatch
)

// Keyword table suffixes selecting the keyword class.
const (
	keyword2Suffix = '|'
	keyword3Suffix = '$'
)

var separators = []byte(",.()+-/*=~%<>[];{}")

// isSeparator reports whether c bounds a keyword or number.
func isSeparator(c byte) bool {
	switch c {
	case 0, ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return bytes.IndexByte(separators, c) != -1
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// keyword is a keyword table entry with its suffix stripped.
type keyword struct {
	word  []byte
	class Highlight
}

// parseKeyword strips the class suffixes off a keyword table entry.
func parseKeyword(entry string) keyword {
	w := []byte(entry)
	kw2 := len(w) > 0 && w[len(w)-1] == keyword2Suffix
	if kw2 {
		w = w[:len(w)-1]
	}
	kw3 := len(w) > 0 && w[len(w)-1] == keyword3Suffix
	if kw3 {
		w = w[:len(w)-1]
	}

	switch {
	case kw3:
		return keyword{word: w, class: HLKeyword3}
	case kw2:
		return keyword{word: w, class: HLKeyword2}
	default:
		return keyword{word: w, class: HLKeyword1}
	}
}

// highlightRow classifies every byte of render. inComment tells whether a
// multi-line comment is open at the start of the row; the returned flag tells
// whether one is still open at its end.
func highlightRow(p *Profile, render []byte, inComment bool) ([]Highlight, bool) {
	hl := make([]Highlight, len(render))
	if p == nil {
		return hl, false
	}

	scs := []byte(p.SingleLineComment)
	mcs := []byte(p.MultiLineStart)
	mce := []byte(p.MultiLineEnd)

	prevSep := true
	var inString byte

	i := 0
	for i < len(render) {
		c := render[i]
		prevHL := HLNormal
		if i > 0 {
			prevHL = hl[i-1]
		}

		// Single-line comment swallows the rest of the row.
		if len(scs) > 0 && inString == 0 && !inComment {
			if bytes.HasPrefix(render[i:], scs) {
				for j := i; j < len(render); j++ {
					hl[j] = HLComment
				}
				break
			}
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				hl[i] = HLMLComment
				if bytes.HasPrefix(render[i:], mce) {
					for j := 0; j < len(mce); j++ {
						hl[i+j] = HLMLComment
					}
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			} else if bytes.HasPrefix(render[i:], mcs) {
				for j := 0; j < len(mcs); j++ {
					hl[i+j] = HLMLComment
				}
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if p.Flags&HighlightStrings != 0 {
			if inString != 0 {
				hl[i] = HLString
				if c == '\\' && i+1 < len(render) {
					hl[i+1] = HLString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				inString = c
				hl[i] = HLString
				i++
				continue
			}
		}

		if p.Flags&HighlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prevHL == HLNumber)) || (c == '.' && prevHL == HLNumber) {
				hl[i] = HLNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if n, class := matchKeyword(p.keywords, render[i:]); n > 0 {
				for j := 0; j < n; j++ {
					hl[i+j] = class
				}
				i += n
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	return hl, inComment
}

// matchKeyword returns the length and class of the first keyword in the table
// found at the start of s and followed by a separator or the end of s.
func matchKeyword(keywords []keyword, s []byte) (int, Highlight) {
	for _, kw := range keywords {
		n := len(kw.word)
		if n == 0 || !bytes.HasPrefix(s, kw.word) {
			continue
		}
		if n == len(s) || isSeparator(s[n]) {
			return n, kw.class
		}
	}
	return 0, HLNormal
}

// updateSyntax re-highlights row at and keeps going down the document while
// the open-comment state at the end of a row keeps changing.
func (d *Document) updateSyntax(at int) {
	for at < len(d.rows) {
		row := d.rows[at]
		inComment := at > 0 && d.rows[at-1].openComment

		hl, open := highlightRow(d.syntax, row.render, inComment)
		row.hl = hl

		changed := row.openComment != open
		row.openComment = open
		if !changed {
			return
		}
		at++
	}
}
