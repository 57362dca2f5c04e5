package domain

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
)

// NeutralSignal is substituted for all three behavioral signals when a pair
// is not structurally comparable. The value sits between the scorer's low
// thresholds (<0.35, >0.15 triggers at 0.5 — see AIAssistanceScore) and its
// high threshold (>0.85) so that "unknown" reads as inconclusive rather than
// as evidence. Changing it silently alters verdicts for mixed-kind pairs.
const NeutralSignal = 0.5

// IdentifierDiversity is the ratio of unique identifier tokens to all
// identifier tokens, repeats counted. Returns 0 when the text has no
// identifiers. A low value means few distinct names reused often, which the
// scorer reads as generic naming behavior.
func IdentifierDiversity(text string) float64 {
	names := identifierPattern.FindAllString(text, -1)
	if len(names) == 0 {
		return 0
	}

	unique := make(map[string]struct{}, len(names))
	for _, name := range names {
		unique[name] = struct{}{}
	}

	return float64(len(unique)) / float64(len(names))
}

// FormattingConsistency measures how uniform the non-blank line lengths of a
// text are: 1 - (max - min) / max. Returns 0 when there are no non-blank
// lines. Values close to 1 flag unnaturally uniform formatting.
func FormattingConsistency(text string) float64 {
	maxLen, minLen := 0, 0
	seen := false

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		length := len(line)
		if !seen {
			maxLen, minLen = length, length
			seen = true

			continue
		}

		if length > maxLen {
			maxLen = length
		}

		if length < minLen {
			minLen = length
		}
	}

	if !seen {
		return 0
	}

	return 1 - float64(maxLen-minLen)/float64(maxLen)
}

// LogicDensity counts control-flow and definition constructs per source
// line: if, for, range, switch, type switch, select, defer, function
// declarations and function literals. Returns 0 when the text does not parse
// as a Go file. High density flags unusually compact control flow.
func LogicDensity(text string) float64 {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, "input.go", text, 0)
	if err != nil {
		return 0
	}

	logicCount := 0

	ast.Inspect(file, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.IfStmt, *ast.ForStmt, *ast.RangeStmt,
			*ast.SwitchStmt, *ast.TypeSwitchStmt, *ast.SelectStmt,
			*ast.DeferStmt, *ast.FuncDecl, *ast.FuncLit:
			logicCount++
		}

		return true
	})

	lineCount := strings.Count(text, "\n") + 1
	if lineCount < 1 {
		lineCount = 1
	}

	return float64(logicCount) / float64(lineCount)
}
