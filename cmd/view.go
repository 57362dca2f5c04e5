package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"prism.dev/pkg/prism/internal/domain"
	m "prism.dev/pkg/prism/internal/model"
)

var viewPairFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View a previously generated report",
		Long:  "View a previously generated analysis report from the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			args := domain.ViewArgs{Reports: m.Path(viper.GetString(outputFlagName))}

			if viewPairFlag != "" {
				nameA, nameB, err := parsePairFlag(viewPairFlag)
				if err != nil {
					return err
				}

				args.NameA, args.NameB = nameA, nameB
			}

			return workflow.View(context.Background(), args)
		},
	}

	cmd.Flags().StringVar(&viewPairFlag, pairFlagName, "", "show one pair's detail, in the format NAMEA,NAMEB")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func parsePairFlag(pair string) (string, string, error) {
	nameA, nameB, found := strings.Cut(pair, ",")
	if !found || strings.TrimSpace(nameA) == "" || strings.TrimSpace(nameB) == "" {
		return "", "", fmt.Errorf("invalid pair %q, expected NAMEA,NAMEB", pair)
	}

	return strings.TrimSpace(nameA), strings.TrimSpace(nameB), nil
}
