package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"prism.dev/pkg/prism/internal/domain"
	m "prism.dev/pkg/prism/internal/model"
)

var runParallelFlag int
var runExternalFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Analyze document pairs for similarity",
		Long:  runLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Analyze(context.Background(), domain.AnalyzeArgs{
				Paths:       parsePaths(args),
				Exclude:     viper.GetStringSlice(excludeConfigKey),
				Reports:     m.Path(viper.GetString(outputFlagName)),
				Threads:     viper.GetInt(parallelConfigKey),
				MaxFileSize: viper.GetInt64(maxFileSizeConfigKey),
				Format:      viper.GetString(formatConfigKey),
				External:    viper.GetBool(externalConfigKey),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of parallel workers for pair evaluation")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().BoolVarP(&runExternalFlag, externalFlagName, "e", viper.GetBool(externalConfigKey), "also run the external fingerprinting scanner")
	bindFlagToConfig(cmd.Flags().Lookup(externalFlagName), externalConfigKey)
}
