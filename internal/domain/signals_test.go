package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifierDiversity_CountsRepeats(t *testing.T) {
	assert.InDelta(t, 1.0/3.0, IdentifierDiversity("x x x"), 1e-9)
	assert.Equal(t, 1.0, IdentifierDiversity("alpha beta gamma"))
}

func TestIdentifierDiversity_NoIdentifiersIsZero(t *testing.T) {
	assert.Equal(t, 0.0, IdentifierDiversity(""))
	assert.Equal(t, 0.0, IdentifierDiversity("123 + 456"))
}

func TestFormattingConsistency_UniformLines(t *testing.T) {
	assert.Equal(t, 1.0, FormattingConsistency("aaaa\nbbbb\ncccc"))
}

func TestFormattingConsistency_SkipsBlankLines(t *testing.T) {
	assert.Equal(t, 1.0, FormattingConsistency("aaaa\n\n   \nbbbb"))
}

func TestFormattingConsistency_RaggedLines(t *testing.T) {
	// max 8, min 2: 1 - 6/8 = 0.25.
	assert.InDelta(t, 0.25, FormattingConsistency("aaaaaaaa\nbb"), 1e-9)
}

func TestFormattingConsistency_NoLinesIsZero(t *testing.T) {
	assert.Equal(t, 0.0, FormattingConsistency(""))
	assert.Equal(t, 0.0, FormattingConsistency("  \n\t\n"))
}

func TestLogicDensity_CountsConstructsPerLine(t *testing.T) {
	src := `package main

func main() {
	if true {
	}
	for i := 0; i < 3; i++ {
	}
}`

	// One func decl, one if, one for over eight lines.
	assert.InDelta(t, 3.0/8.0, LogicDensity(src), 1e-9)
}

func TestLogicDensity_CountsRangeSwitchDeferAndLiterals(t *testing.T) {
	src := `package main

func run(items []int) {
	defer done()
	for _, item := range items {
		switch item {
		default:
		}
	}
	f := func() {}
	_ = f
}

func done() {}`

	// run, done, defer, range, switch, func literal: six constructs.
	lines := 14.0

	assert.InDelta(t, 6.0/lines, LogicDensity(src), 1e-9)
}

func TestLogicDensity_ParseFailureIsZero(t *testing.T) {
	assert.Equal(t, 0.0, LogicDensity("this is not go code {"))
	assert.Equal(t, 0.0, LogicDensity(""))
}
