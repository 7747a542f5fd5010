package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/redress-dev/redress/internal/domain"
	m "github.com/redress-dev/redress/internal/model"
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Re-run the review whenever watched files change",
		Long: `Watch reviews the roots once, then blocks and re-runs the review
every time a burst of file changes settles. Changes under the reports
directory are ignored so transcript writes do not retrigger a run.
Interrupt to stop; the exit status is always 0.`,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			roots := parsePaths(args)
			if len(roots) == 0 {
				roots = make([]m.Path, 0, len(cfg.Roots))
				for _, root := range cfg.Roots {
					roots = append(roots, m.Path(root))
				}
			}

			review := func() {
				passed, err := workflow.Check(domain.CheckArgs{Config: cfg, Paths: roots})
				if err != nil {
					log.Error().Err(err).Msg("review did not finish")
					return
				}

				log.Debug().Bool("passed", passed).Msg("review settled")
			}

			review()

			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigs)

			go func() {
				<-sigs
				_ = watcher.Close()
			}()

			return watcher.Watch(roots, m.Path(cfg.ReportsDir), review)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
