// Package cmd provides the root command and CLI setup for redress.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/redress-dev/redress/internal/adapter"
	"github.com/redress-dev/redress/internal/config"
	"github.com/redress-dev/redress/internal/controller"
	"github.com/redress-dev/redress/internal/domain"
	m "github.com/redress-dev/redress/internal/model"
)

// watchSettle is how long the tree must stay quiet before watch re-runs the
// review.
const watchSettle = 300 * time.Millisecond

// errReviewFailed maps a failed review onto exit status 1 without Execute
// reprinting it; the verdict banner already told the user.
var errReviewFailed = errors.New("review failed")

var log zerolog.Logger
var source adapter.SourceFS
var reviewStore adapter.ReviewStore
var transcriptor adapter.Transcriptor
var verifier adapter.BuildVerifier
var reverter adapter.Reverter
var watcher adapter.Watcher
var remediator domain.Remediator
var workflow domain.Workflow
var ui controller.UI

func init() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	source = adapter.NewLocalSourceFS()
	reviewStore = adapter.NewLocalReviewStore()
	transcriptor = adapter.NewFileTranscriptor()
	verifier = adapter.NewCommandVerifier(log)
	reverter = adapter.NewGitReverter(log)
	watcher = adapter.NewFSWatcher(watchSettle, log)
	remediator = domain.NewRemediator(source, verifier, reverter, ui)
	workflow = domain.NewWorkflow(
		rootCmd.OutOrStdout(),
		source,
		reviewStore,
		transcriptor,
		ui,
		remediator,
	)
}

var verboseFlag bool
var configFlag string
var advisoryFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redress [paths...]",
		Short: "Convention review and auto-fix for Rust source trees",
		Long: `Redress reviews source trees against a catalogue of coding
conventions and rewrites the findings it knows how to repair, verifying
every rewrite with the configured build command and reverting rewrites
that break it.

Called without a subcommand it reviews the configured roots:
  - redress              review the roots from .redress.yaml
  - redress crates/core  review the given directories instead`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verboseFlag {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return runCheck(parsePaths(args), advisoryFlag)
		},
	}
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging on stderr")
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to the config file (default: .redress.yaml discovered upwards)")
	cmd.Flags().StringVarP(&advisoryFlag, "advisory", "a", "", `handle advisory findings as "fail" or "warn"`)

	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if !errors.Is(err, errReviewFailed) {
			fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		}

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

// loadConfig honors --config when set and otherwise discovers .redress.yaml
// upwards from the working directory, falling back to defaults.
func loadConfig() (config.Config, error) {
	if configFlag != "" {
		return config.Load(configFlag)
	}

	cfg, path, err := config.Discover(".")
	if err != nil {
		return config.Config{}, err
	}

	if path != "" {
		log.Debug().Str("config", path).Msg("loaded configuration")
	}

	return cfg, nil
}

// runCheck backs both the bare root command and the check subcommand.
func runCheck(paths []m.Path, advisory string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	passed, err := workflow.Check(domain.CheckArgs{
		Config:   cfg,
		Paths:    paths,
		Advisory: advisory,
	})
	if err != nil {
		return err
	}

	if !passed {
		return errReviewFailed
	}

	return nil
}
