package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"prism.dev/pkg/prism/internal/domain"
	m "prism.dev/pkg/prism/internal/model"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <fileA> <fileB>",
		Short: "Compare two documents and show a unified diff",
		Long:  "Evaluate one document pair and print its scores, rationale and a unified diff.",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Diff(context.Background(), domain.DiffArgs{
				PathA: m.Path(args[0]),
				PathB: m.Path(args[1]),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
