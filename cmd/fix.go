package cmd

import (
	"github.com/spf13/cobra"

	"github.com/redress-dev/redress/internal/domain"
)

var fixTransformFlags []string
var fixBatchFlag int
var fixDryRunFlag bool

// fixCmd represents the fix command.
var fixCmd = newFixCmd()

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Rewrite fixable findings in verified batches",
		Long: `Fix rewrites the findings the catalogue knows how to repair, one
batch of files at a time. After each batch the configured build command
runs; files that no longer build are restored from git and reported as
reverted. A reverted batch never stops the run.

With --dry-run the candidate files are listed and nothing is written.`,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return workflow.Fix(domain.FixArgs{
				Config:     cfg,
				Paths:      parsePaths(args),
				Transforms: fixTransformFlags,
				Batch:      fixBatchFlag,
				DryRun:     fixDryRunFlag,
			})
		},
	}
	cmd.Flags().StringArrayVarP(&fixTransformFlags, "transform", "t", nil, "transform id to apply (can be repeated, default fix.transforms)")
	cmd.Flags().IntVarP(&fixBatchFlag, "batch", "b", 0, "files rewritten per verified batch (default fix.batch)")
	cmd.Flags().BoolVar(&fixDryRunFlag, "dry-run", false, "list candidate files without rewriting anything")

	return cmd
}

func init() {
	rootCmd.AddCommand(fixCmd)
}
