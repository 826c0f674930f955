// Package cli implements the shiftsheet command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/sia-ops/shiftsheet/internal/logger"
)

var (
	cfgPath     string
	verboseFlag bool

	// version is set at build time via -ldflags.
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "shiftsheet",
	Short: "Export transcript records into a shift-labelled spreadsheet",
	Long: `shiftsheet pulls transcript-processing records from the search index,
derives each record's work shift, and writes the result into the
operations spreadsheet, reconciling shift labels across historical rows.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to the TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
