package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "prism.dev/pkg/prism/internal/model"
)

const defaultPagerHeight = 24

// TUI implements UI for interactive terminals: a live progress bar during
// pair evaluation, score bars in pair detail, and a pager for long result
// tables. Everything else falls through to the simple printer.
type TUI struct {
	*SimpleUI

	bar progress.Model
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		bar:      progress.New(progress.WithDefaultGradient()),
	}
}

// DisplayProgress redraws a single progress line in place.
func (t *TUI) DisplayProgress(ctx context.Context, done, total int, pair string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if total <= 0 {
		return
	}

	t.printf("\r\033[K%s %d/%d %s", t.bar.ViewAs(float64(done)/float64(total)), done, total, pair)

	if done == total {
		t.printf("\n")
	}
}

// DisplayResults pages the result table when it is taller than the terminal.
func (t *TUI) DisplayResults(ctx context.Context, results []m.PairResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rendered := renderResultsTable(results)
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")

	height := t.terminalHeight()
	if len(lines)+2 <= height {
		t.printf("\n%s", rendered)
		return nil
	}

	model := newPagerModel(lines, height)

	output, ok := t.cmd.OutOrStdout().(*os.File)
	if !ok {
		t.printf("\n%s", rendered)
		return nil
	}

	program := tea.NewProgram(model, tea.WithOutput(output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayPairDetail adds score bars on top of the plain detail output.
func (t *TUI) DisplayPairDetail(ctx context.Context, result m.PairResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.printf("\n%s\n", headerStyle.Render(fmt.Sprintf("%s vs %s", result.NameA, result.NameB)))
	t.printf("Lexical    %s %6.2f%%\n", t.bar.ViewAs(result.Lexical/100), result.Lexical)
	t.printf("Structural %s %6.2f%%\n", t.bar.ViewAs(result.Structural/100), result.Structural)
	t.printf("AI score   %s %6.2f\n", t.bar.ViewAs(result.AIScore), result.AIScore)
	t.printf("Verdict:   %s\n\n", styleVerdict(result.Verdict))

	for _, line := range result.Explanation {
		t.printf("%s\n", line)
	}

	return nil
}

func (t *TUI) terminalHeight() int {
	if f, ok := t.cmd.OutOrStdout().(*os.File); ok {
		if _, height, err := term.GetSize(int(f.Fd())); err == nil && height > 0 {
			return height
		}
	}

	return defaultPagerHeight
}

// pagerModel is the Bubble Tea model paging long result tables.
type pagerModel struct {
	lines  []string
	height int
	offset int
}

func newPagerModel(lines []string, height int) pagerModel {
	return pagerModel{lines: lines, height: height}
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		return p.handleKeyPress(msg)
	}

	return p, nil
}

func (p pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return p, tea.Quit

	case "down", "j":
		p.offset++

	case "up", "k":
		p.offset--

	case "pgdown", " ":
		p.offset += p.pageSize()

	case "pgup":
		p.offset -= p.pageSize()

	case "home", "g":
		p.offset = 0

	case "end", "G":
		p.offset = p.maxOffset()
	}

	if p.offset > p.maxOffset() {
		p.offset = p.maxOffset()
	}

	if p.offset < 0 {
		p.offset = 0
	}

	return p, nil
}

func (p pagerModel) pageSize() int {
	// One line reserved for the scroll hint.
	size := p.height - 1
	if size < 1 {
		size = 1
	}

	return size
}

func (p pagerModel) maxOffset() int {
	max := len(p.lines) - p.pageSize()
	if max < 0 {
		return 0
	}

	return max
}

func (p pagerModel) View() string {
	var b strings.Builder

	end := p.offset + p.pageSize()
	if end > len(p.lines) {
		end = len(p.lines)
	}

	for _, line := range p.lines[p.offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "[%d-%d/%d] j/k scroll, q quit", p.offset+1, end, len(p.lines))

	return b.String()
}
