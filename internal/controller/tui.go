package controller

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	m "github.com/redress-dev/redress/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	group   *errgroup.Group
	started bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the interactive display for the upcoming fix run.
// Dry runs stay on plain output so candidate tables remain readable.
func (t *TUI) Start(options ...StartOption) error {
	cfg := StartConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	if cfg.dryRun {
		return nil
	}

	return t.startWithModel(newFixModel(cfg.total))
}

func (t *TUI) startWithModel(model tea.Model) error {
	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output))
	t.group = &errgroup.Group{}
	t.group.Go(func() error {
		_, err := t.program.Run()

		return err
	})
	t.started = true

	return nil
}

func (t *TUI) ensureStarted() {
	if t.started {
		return
	}

	_ = t.startWithModel(newFixModel(0))
}

func (t *TUI) send(msg tea.Msg) {
	if t.program == nil {
		return
	}

	t.program.Send(msg)
}

// Wait blocks until the program exits.
func (t *TUI) Wait() {
	if t.group == nil {
		return
	}

	_ = t.group.Wait()
}

// Close stops the program and waits for the final frame.
func (t *TUI) Close() {
	if t.program == nil {
		return
	}

	t.send(quitMsg{})
	t.Wait()
}

// DisplayRules prints the rule catalogue.
func (t *TUI) DisplayRules(rules []m.RuleInfo) error {
	for _, rule := range rules {
		fixable := ""
		if rule.Fixable {
			fixable = " (fixable)"
		}

		_, _ = fmt.Fprintf(t.output, "%s [%s]%s: %s\n", rule.ID, rule.Severity, fixable, rule.Description)
	}

	_, _ = fmt.Fprintf(t.output, "\nTotal rules: %d\n", len(rules))

	return nil
}

// DisplayCandidates prints the files a dry run would rewrite.
func (t *TUI) DisplayCandidates(candidates []m.FixCandidate) error {
	if len(candidates) == 0 {
		_, _ = fmt.Fprintf(t.output, "No fixable files found\n")

		return nil
	}

	sites := 0

	for _, candidate := range candidates {
		_, _ = fmt.Fprintf(t.output, "%s: %s (%d sites)\n", candidate.Transform, candidate.Path, candidate.Sites)
		sites += candidate.Sites
	}

	_, _ = fmt.Fprintf(t.output, "\nWould fix %d file(s), %d site(s)\n", len(candidates), sites)

	return nil
}

// DisplayFixProgress forwards the file about to be rewritten to the program.
func (t *TUI) DisplayFixProgress(index, total int, candidate m.FixCandidate) {
	t.ensureStarted()
	t.send(progressMsg{
		index: index,
		total: total,
		path:  string(candidate.Path),
		sites: candidate.Sites,
	})
}

// DisplayFixOutcome forwards how a unit settled to the program.
func (t *TUI) DisplayFixOutcome(unit m.RemediationUnit) {
	t.ensureStarted()

	for _, path := range unit.Files {
		t.send(outcomeMsg{
			path:    string(path),
			outcome: string(unit.Outcome),
			detail:  unit.Detail,
		})
	}
}

// DisplayFixReport forwards the run summary and leaves it as the final frame.
func (t *TUI) DisplayFixReport(report m.RemediationReport) error {
	t.send(reportMsg{
		kept:     report.Kept,
		reverted: report.Reverted,
		failed:   report.Failed,
		skipped:  report.Skipped,
	})

	// Let the program render the report before the quit message lands.
	time.Sleep(50 * time.Millisecond)

	return nil
}

// DisplayRuns prints stored run records, newest first.
func (t *TUI) DisplayRuns(records []m.RunRecord) error {
	if len(records) == 0 {
		_, _ = fmt.Fprintf(t.output, "No stored runs\n")

		return nil
	}

	for _, record := range records {
		result := "fail"
		if record.Passed {
			result = "pass"
		}

		_, _ = fmt.Fprintf(t.output, "%s  %-6s  %-4s  %d violation(s)\n",
			record.StartedAt.Format(time.DateTime), record.Kind, result, record.Violations)
	}

	return nil
}
