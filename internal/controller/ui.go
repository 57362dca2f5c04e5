// Package controller provides output controllers for displaying similarity
// analysis results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "prism.dev/pkg/prism/internal/model"
)

// UI defines the interface for presenting analysis output. Implementations
// can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)

	// DisplayFiles lists the discovered documents before or instead of a run.
	DisplayFiles(ctx context.Context, infos []m.DocumentInfo) error

	// DisplayProgress reports pair evaluation progress during a run.
	DisplayProgress(ctx context.Context, done, total int, pair string)

	// DisplayResults renders the full pair result table.
	DisplayResults(ctx context.Context, results []m.PairResult) error

	// DisplayPairDetail renders one pair's scores and rationale lines.
	DisplayPairDetail(ctx context.Context, result m.PairResult) error

	// DisplaySummary renders the batch-level metrics.
	DisplaySummary(ctx context.Context, results []m.PairResult)

	// DisplayDiff renders a unified diff between two documents.
	DisplayDiff(ctx context.Context, diff string) error
}

// NewUI picks the TUI when stdout is an interactive terminal and the simple
// printer otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether the file is attached to an interactive terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
