package main

import "testing"

func TestSelectProfile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []string
		want     string
	}{
		{"extension", "main.c", nil, "C"},
		{"extension wins over shebang", "tool.c", []string{"#!/usr/bin/env python3"}, "C"},
		{"python shebang", "tool", []string{"#!/usr/bin/env python3", "print(1)"}, "Python"},
		{"python stub extension", "types.pyi", nil, "Python"},
		{"plain text", "notes.txt", []string{"hello"}, ""},
		{"unnamed", "", []string{"hello"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := make([][]byte, len(tt.content))
			for i, l := range tt.content {
				lines[i] = []byte(l)
			}
			p := selectProfile(tt.filename, lines)
			got := ""
			if p != nil {
				got = p.Name
			}
			if got != tt.want {
				t.Fatalf("selectProfile(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestProfileByLanguage(t *testing.T) {
	if p := profileByLanguage("c++"); p == nil || p.Name != "C" {
		t.Fatalf("C++ does not map to the C profile")
	}
	if p := profileByLanguage("Go"); p != nil {
		t.Fatalf("Go mapped to %q", p.Name)
	}
	if p := profileByLanguage(""); p != nil {
		t.Fatalf("empty language mapped to %q", p.Name)
	}
}
