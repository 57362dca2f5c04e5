package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "prism.dev/pkg/prism/internal/model"
)

func TestParsePaths(t *testing.T) {
	assert.Empty(t, parsePaths(nil))
	assert.Equal(t, []m.Path{"a.go", "./submissions"}, parsePaths([]string{"a.go", "./submissions"}))
}

func TestRootCmd_ShowsHelpWithoutSubcommand(t *testing.T) {
	cmd := newTestRootCmd()

	cmd.SetArgs(nil)
	assert.NoError(t, cmd.Execute())
}
