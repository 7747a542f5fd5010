package cmd

import (
	"github.com/spf13/cobra"
)

var checkAdvisoryFlag string

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Review source files against the rule catalogue",
		Long: `Check runs every catalogue rule over the reviewed roots and prints
the transcript, saving a copy under the reports directory. The exit
status is 1 when any hard rule failed and 0 otherwise.

Advisory rules respect rules.advisory from .redress.yaml; --advisory
overrides it for one run.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return runCheck(parsePaths(args), checkAdvisoryFlag)
		},
	}
	cmd.Flags().StringVarP(&checkAdvisoryFlag, "advisory", "a", "", `handle advisory findings as "fail" or "warn"`)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
