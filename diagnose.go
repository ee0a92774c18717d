package main

// Syntax diagnosis using tree-sitter. After a file is opened or saved it is
// parsed with the grammar matching its profile and the error nodes are
// counted for the status bar. Highlighting itself does not depend on it.

import (
	"context"
	"fmt"
	"path/filepath"

	sitter "github.com/mitjafelicijan/go-tree-sitter"
	"github.com/mitjafelicijan/go-tree-sitter/c"
	"github.com/mitjafelicijan/go-tree-sitter/cpp"
	"github.com/mitjafelicijan/go-tree-sitter/python"
)

// syntaxErrorQuery captures every node the parser could not fit into the
// grammar.
const syntaxErrorQuery = "(ERROR) @error"

// grammarFor returns the tree-sitter grammar for a file, or nil when there is
// none for its profile.
func grammarFor(filename string, p *Profile) *sitter.Language {
	if p == nil {
		return nil
	}
	switch p.Name {
	case "C":
		switch filepath.Ext(filename) {
		case ".cpp", ".hpp", ".cc", ".cxx", ".hh", ".hxx":
			return cpp.GetLanguage()
		}
		return c.GetLanguage()
	case "Python":
		return python.GetLanguage()
	}
	return nil
}

// countSyntaxErrors parses content with lang and returns the number of error
// nodes in the tree.
func countSyntaxErrors(ctx context.Context, lang *sitter.Language, content []byte) (int, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return 0, fmt.Errorf("parse: %w", err)
	}

	q, err := sitter.NewQuery([]byte(syntaxErrorQuery), lang)
	if err != nil {
		return 0, fmt.Errorf("compile query: %w", err)
	}

	qc := sitter.NewQueryCursor()
	qc.Exec(q, tree.RootNode())

	n := 0
	for {
		if _, ok := qc.NextMatch(); !ok {
			break
		}
		n++
	}
	return n, nil
}

// diagnose refreshes the syntax error count shown in the status bar.
func (e *Editor) diagnose() {
	e.syntaxErrors = 0

	lang := grammarFor(e.filename, e.doc.Profile())
	if lang == nil {
		return
	}
	n, err := countSyntaxErrors(context.Background(), lang, e.doc.Bytes())
	if err != nil {
		e.addLog("TS", err.Error())
		return
	}
	e.syntaxErrors = n
}
