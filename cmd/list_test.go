package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"prism.dev/pkg/prism/internal/domain"
	m "prism.dev/pkg/prism/internal/model"
)

func TestListCmd_PassesPathsAndFilters(t *testing.T) {
	mockWorkflow := swapWorkflow(t)
	cmd := newTestRootCmd(newListCmd())

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return len(args.Paths) == 2 &&
			args.Paths[0] == m.Path("dirA") &&
			args.Paths[1] == m.Path("dirB") &&
			args.MaxFileSize == 1<<20
	})).Return(nil)

	cmd.SetArgs([]string{"list", "dirA", "dirB"})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_NoArguments(t *testing.T) {
	mockWorkflow := swapWorkflow(t)
	cmd := newTestRootCmd(newListCmd())

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return len(args.Paths) == 0
	})).Return(nil)

	cmd.SetArgs([]string{"list"})
	require.NoError(t, cmd.Execute())
}
