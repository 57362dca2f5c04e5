// Package cmd provides the root command and CLI setup for prism.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"prism.dev/pkg/prism/internal/adapter"
	"prism.dev/pkg/prism/internal/controller"
	"prism.dev/pkg/prism/internal/domain"
	m "prism.dev/pkg/prism/internal/model"
)

var contentAdapter adapter.ContentFSAdapter
var reportStore adapter.ReportStore
var externalScanner adapter.ExternalScanner
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read and
// write reports.
var reportsOutputDirFlag string

// reportFormatFlag selects the serialization format of saved reports.
var reportFormatFlag string

// excludePatterns is a root-level flag that filters files for applicable
// commands.
var excludePatterns []string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	contentAdapter = adapter.NewLocalContentFSAdapter()
	reportStore = adapter.NewReportStore()
	externalScanner = adapter.NewCopydetectScanner(viper.GetString(externalCommandKey))
	workflow = domain.NewWorkflow(contentAdapter, reportStore, externalScanner, ui)
}

const pathArgumentsHelp = `Accepts files and directories:
  - prism run a.go b.go        compare two files
  - prism run ./submissions    recursively scan a directory
  - prism run dirA dirB        scan multiple directories`

const rootLongDescription = `Prism estimates whether submitted works (source code or documents) are
similar enough to indicate copying, and whether a work carries machine-
generated authorship signatures, for use in academic-integrity review.

` + pathArgumentsHelp

const runLongDescription = `Analyze every unordered pair of documents found under the given paths
(default: current directory) and save a report.

` + pathArgumentsHelp

const listLongDescription = `List documents a run would pick up, with their detected kinds and
structural token counts.

` + pathArgumentsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prism",
		Short: "Similarity and AI-assistance analysis for submitted works",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for analysis reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVar(&reportFormatFlag, formatFlagName, viper.GetString(formatConfigKey), "report format: json or yaml")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values
// feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
