package cmd

import (
	"github.com/spf13/cobra"
)

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rule catalogue",
		Long:  "List every catalogue rule with its severity and whether fix can repair it.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return workflow.Rules(cfg)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
