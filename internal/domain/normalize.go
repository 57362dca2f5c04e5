// Package domain contains the pure similarity and scoring engine.
package domain

import (
	"go/scanner"
	"go/token"
	"regexp"
	"strings"

	m "prism.dev/pkg/prism/internal/model"
)

var (
	tripleDoublePattern = regexp.MustCompile(`(?s)""".*?"""`)
	tripleSinglePattern = regexp.MustCompile(`(?s)'''.*?'''`)
	blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentPattern  = regexp.MustCompile(`(//|#).*`)
	whitespacePattern   = regexp.MustCompile(`\s+`)
)

// Clean strips line comments, block comments and triple-quoted doc blocks
// from source text and collapses whitespace runs to single spaces. It never
// fails; text with no recognizable content cleans to the empty string.
//
// Clean exists to make source text comparable. It destroys line structure,
// so the behavioral signal extractor works on raw text instead.
func Clean(text string) string {
	text = blockCommentPattern.ReplaceAllString(text, "")
	text = tripleDoublePattern.ReplaceAllString(text, "")
	text = tripleSinglePattern.ReplaceAllString(text, "")
	text = lineCommentPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// TokenizeStructural lexes Go source into a flat category-normalized token
// sequence: identifiers become VAR, numeric literals NUM, string and char
// literals STR, and every other lexical unit keeps its literal text.
// Comments and the semicolons inserted by automatic semicolon insertion are
// discarded, so the sequence is insensitive to layout.
//
// A lexical error yields an empty sequence. Callers must treat empty as "no
// structural signal", never as zero similarity.
func TokenizeStructural(text string) []m.Token {
	fset := token.NewFileSet()
	file := fset.AddFile("input.go", fset.Base(), len(text))

	failed := false

	var s scanner.Scanner

	s.Init(file, []byte(text), func(_ token.Position, _ string) {
		failed = true
	}, 0)

	var tokens []m.Token

	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}

		switch {
		case tok == token.ILLEGAL:
			failed = true
		case tok == token.COMMENT:
			continue
		case tok == token.SEMICOLON && lit == "\n":
			// Inserted by the scanner at line ends, not present in the text.
			continue
		case tok == token.IDENT:
			tokens = append(tokens, m.TokenVar)
		case tok == token.INT, tok == token.FLOAT, tok == token.IMAG:
			tokens = append(tokens, m.TokenNum)
		case tok == token.STRING, tok == token.CHAR:
			tokens = append(tokens, m.TokenStr)
		default:
			tokens = append(tokens, m.Token(tok.String()))
		}

		if failed {
			return nil
		}
	}

	if failed {
		return nil
	}

	return tokens
}
