// Package controller provides output adapters for displaying review and fix results.
package controller

import (
	m "github.com/redress-dev/redress/internal/model"
)

// StartOption is a functional option for Start.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting a fix run display.
type StartConfig struct {
	total  int
	dryRun bool
}

// WithTotal sets the number of files the run will touch.
func WithTotal(total int) StartOption {
	return func(c *StartConfig) {
		c.total = total
	}
}

// WithDryRun marks the run as detection only.
func WithDryRun() StartOption {
	return func(c *StartConfig) {
		c.dryRun = true
	}
}

// UI defines the interface for presenting fix progress and result listings.
// Implementations can use different output methods (plain text, TUI, etc).
type UI interface {
	// Start prepares the UI for a fix run.
	Start(options ...StartOption) error
	// Close releases the UI once the run has settled.
	Close()
	// DisplayRules lists the rule catalogue.
	DisplayRules(rules []m.RuleInfo) error
	// DisplayCandidates lists the files a dry run would rewrite.
	DisplayCandidates(candidates []m.FixCandidate) error
	// DisplayFixProgress reports a file about to be rewritten.
	DisplayFixProgress(index, total int, candidate m.FixCandidate)
	// DisplayFixOutcome reports a settled remediation unit.
	DisplayFixOutcome(unit m.RemediationUnit)
	// DisplayFixReport summarizes a finished run.
	DisplayFixReport(report m.RemediationReport) error
	// DisplayRuns lists stored run records.
	DisplayRuns(records []m.RunRecord) error
}
