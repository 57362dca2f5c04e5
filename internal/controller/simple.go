package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "prism.dev/pkg/prism/internal/model"
)

var verdictStyles = map[m.Verdict]lipgloss.Style{
	m.VerdictDirectCopy:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	m.VerdictAIAssisted:     lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	m.VerdictModerate:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	m.VerdictLikelyOriginal: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
}

var headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)

func styleVerdict(v m.Verdict) string {
	if style, ok := verdictStyles[v]; ok {
		return style.Render(string(v))
	}

	return string(v)
}

// SimpleUI implements UI with plain line output through the cobra command.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI (no-op for SimpleUI).
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayFiles prints the discovered documents as a table.
func (s *SimpleUI) DisplayFiles(ctx context.Context, infos []m.DocumentInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sorted := make([]m.DocumentInfo, len(infos))
	copy(sorted, infos)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Name", "Kind", "Structural", "Tokens"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, info := range sorted {
		structural := "no"
		if info.Structural {
			structural = "yes"
		}

		table.Append([]string{info.Name, string(info.Kind), structural, fmt.Sprintf("%d", info.Tokens)})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(sorted)), "", "", ""})
	table.Render()

	s.printf("\n%s", buf.String())

	return nil
}

// DisplayProgress prints one line per compared pair.
func (s *SimpleUI) DisplayProgress(ctx context.Context, done, total int, pair string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Compared %d/%d: %s\n", done, total, pair)
}

// DisplayResults prints the pair result table.
func (s *SimpleUI) DisplayResults(ctx context.Context, results []m.PairResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderResultsTable(results))

	return nil
}

// DisplayPairDetail prints the scores and rationale for one pair.
func (s *SimpleUI) DisplayPairDetail(ctx context.Context, result m.PairResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s\n", headerStyle.Render(fmt.Sprintf("%s vs %s", result.NameA, result.NameB)))
	s.printf("Lexical:    %6.2f%%\n", result.Lexical)
	s.printf("Structural: %6.2f%%\n", result.Structural)
	s.printf("AI score:   %6.2f\n", result.AIScore)
	s.printf("Verdict:    %s\n\n", styleVerdict(result.Verdict))

	for _, line := range result.Explanation {
		s.printf("%s\n", line)
	}

	return nil
}

// DisplaySummary prints the batch-level metrics.
func (s *SimpleUI) DisplaySummary(ctx context.Context, results []m.PairResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	maxLexical, maxAI := 0.0, 0.0
	for _, r := range results {
		if r.Lexical > maxLexical {
			maxLexical = r.Lexical
		}

		if r.AIScore > maxAI {
			maxAI = r.AIScore
		}
	}

	s.printf("\nSummary:\n")
	s.printf("Comparisons: %d | Highest similarity: %.2f%% | Highest AI score: %.2f\n",
		len(results), maxLexical, maxAI)
}

// DisplayDiff prints a unified diff.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		s.printf("No differences.\n")
		return nil
	}

	s.printf("%s", diff)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// renderResultsTable renders pair results with tablewriter, sorted by the
// canonical pair names for stable output.
func renderResultsTable(results []m.PairResult) string {
	sorted := make([]m.PairResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].NameA != sorted[j].NameA {
			return sorted[i].NameA < sorted[j].NameA
		}

		return sorted[i].NameB < sorted[j].NameB
	})

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"File A", "File B", "Lexical %", "Structural %", "AI %", "Verdict"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	for _, r := range sorted {
		table.Append([]string{
			r.NameA,
			r.NameB,
			fmt.Sprintf("%.2f", r.Lexical),
			fmt.Sprintf("%.2f", r.Structural),
			fmt.Sprintf("%.2f", r.AIScore*100),
			string(r.Verdict),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Pairs %d", len(sorted)), "", "", "", "", "",
	})

	table.Render()

	return buf.String()
}
