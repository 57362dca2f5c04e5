package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "prism.dev/pkg/prism/internal/model"
)

func newBufferedTUI() (*TUI, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	return NewTUI(cmd), buf
}

func TestTUI_DisplayProgressRedrawsInPlace(t *testing.T) {
	ui, buf := newBufferedTUI()

	ui.DisplayProgress(context.Background(), 1, 3, "a.go vs b.go")
	ui.DisplayProgress(context.Background(), 2, 3, "a.go vs c.go")

	out := buf.String()
	assert.Contains(t, out, "\r\033[K")
	assert.Contains(t, out, "1/3 a.go vs b.go")
	assert.Contains(t, out, "2/3 a.go vs c.go")
	assert.NotContains(t, out, "\n")

	ui.DisplayProgress(context.Background(), 3, 3, "b.go vs c.go")
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestTUI_DisplayProgressIgnoresZeroTotal(t *testing.T) {
	ui, buf := newBufferedTUI()

	ui.DisplayProgress(context.Background(), 0, 0, "")
	assert.Empty(t, buf.String())
}

func TestTUI_DisplayResultsFallsBackWithoutTerminal(t *testing.T) {
	ui, buf := newBufferedTUI()

	results := []m.PairResult{
		{NameA: "a.go", NameB: "b.go", Lexical: 100, Structural: 100, Verdict: m.VerdictDirectCopy},
	}

	require.NoError(t, ui.DisplayResults(context.Background(), results))
	assert.Contains(t, buf.String(), "a.go")
	assert.Contains(t, buf.String(), "Direct Copy")
}

func TestTUI_DisplayPairDetailShowsScoreBars(t *testing.T) {
	ui, buf := newBufferedTUI()

	result := m.PairResult{
		NameA:       "a.go",
		NameB:       "b.go",
		Lexical:     50,
		Structural:  75,
		AIScore:     0.4,
		Verdict:     m.VerdictModerate,
		Explanation: []string{"rationale line"},
	}

	require.NoError(t, ui.DisplayPairDetail(context.Background(), result))

	out := buf.String()
	assert.Contains(t, out, "a.go vs b.go")
	assert.Contains(t, out, "Lexical")
	assert.Contains(t, out, "50.00%")
	assert.Contains(t, out, "0.40")
	assert.Contains(t, out, "rationale line")
}

func TestPagerModel_Navigation(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "row"
	}

	model := newPagerModel(lines, 11)

	press := func(m tea.Model, key string) pagerModel {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		return updated.(pagerModel)
	}

	p := press(model, "j")
	assert.Equal(t, 1, p.offset)

	p = press(p, "k")
	assert.Equal(t, 0, p.offset)

	// Scrolling above the top clamps to zero.
	p = press(p, "k")
	assert.Equal(t, 0, p.offset)

	p = press(p, "G")
	assert.Equal(t, 20, p.offset)

	// Scrolling past the end clamps to the last page.
	p = press(p, "j")
	assert.Equal(t, 20, p.offset)

	p = press(p, "g")
	assert.Equal(t, 0, p.offset)
}

func TestPagerModel_ViewShowsWindowAndHint(t *testing.T) {
	lines := []string{"one", "two", "three", "four", "five"}
	model := newPagerModel(lines, 4)

	view := model.View()
	assert.Contains(t, view, "one")
	assert.Contains(t, view, "three")
	assert.NotContains(t, view, "four")
	assert.Contains(t, view, "[1-3/5] j/k scroll, q quit")
}

func TestPagerModel_QuitKeys(t *testing.T) {
	model := newPagerModel([]string{"one"}, 10)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
