package cmd

import (
	"github.com/spf13/cobra"
)

var reportCleanFlag int

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "List stored review and fix runs",
		Long: `Report lists the run records stored under the reports directory,
newest first. With --clean N everything but the newest N records is
deleted and the index is rewritten.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// --clean 0 is a valid request to drop everything, so the flag
			// presence decides, not its value.
			if cmd.Flags().Changed("clean") {
				return workflow.CleanRuns(cfg, reportCleanFlag)
			}

			return workflow.Runs(cfg)
		},
	}
	cmd.Flags().IntVar(&reportCleanFlag, "clean", 0, "keep only the newest N run records")

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
