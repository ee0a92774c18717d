package main

// Color palette. Maps highlight classes to the SGR foreground codes used by
// the escape-sequence frontend and to termbox attributes.

import "github.com/nsf/termbox-go"

// Color holds the two representations of one highlight color.
type Color struct {
	SGR     int               // SGR foreground code, 0 for the terminal default.
	Termbox termbox.Attribute // Foreground attribute for the termbox frontend.
}

// Theme maps each highlight class to its color. Comments of both kinds share
// one color.
var Theme = map[Highlight]Color{
	HLNormal:    {SGR: 0, Termbox: termbox.ColorDefault},
	HLComment:   {SGR: 91, Termbox: termbox.ColorRed | termbox.AttrBold},
	HLMLComment: {SGR: 91, Termbox: termbox.ColorRed | termbox.AttrBold},
	HLKeyword1:  {SGR: 93, Termbox: termbox.ColorYellow | termbox.AttrBold},
	HLKeyword2:  {SGR: 94, Termbox: termbox.ColorBlue | termbox.AttrBold},
	HLKeyword3:  {SGR: 32, Termbox: termbox.ColorGreen},
	HLString:    {SGR: 31, Termbox: termbox.ColorRed},
	HLNumber:    {SGR: 96, Termbox: termbox.ColorCyan | termbox.AttrBold},
	HLMatch:     {SGR: 34, Termbox: termbox.ColorBlue},
}

// GetThemeColor returns the color of a highlight class.
func GetThemeColor(hl Highlight) Color {
	if c, ok := Theme[hl]; ok {
		return c
	}
	return Theme[HLNormal]
}

// highlightNames labels each class for the -colors preview.
var highlightNames = []struct {
	hl   Highlight
	name string
}{
	{HLNormal, "normal"},
	{HLComment, "comment"},
	{HLMLComment, "multi-line comment"},
	{HLKeyword1, "keyword"},
	{HLKeyword2, "keyword (class 2)"},
	{HLKeyword3, "keyword (class 3)"},
	{HLString, "string"},
	{HLNumber, "number"},
	{HLMatch, "search match"},
}
