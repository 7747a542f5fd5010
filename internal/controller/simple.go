package controller

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/redress-dev/redress/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start announces the run size.
func (s *SimpleUI) Start(options ...StartOption) error {
	cfg := StartConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	if cfg.dryRun {
		s.printf("Detecting fixable files...\n")

		return nil
	}

	if cfg.total > 0 {
		s.printf("Fixing %d file(s)\n\n", cfg.total)
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// DisplayRules prints the rule catalogue as a table.
func (s *SimpleUI) DisplayRules(rules []m.RuleInfo) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Rule", "Severity", "Fixable", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	for _, rule := range rules {
		fixable := ""
		if rule.Fixable {
			fixable = "yes"
		}

		table.Append([]string{rule.ID, string(rule.Severity), fixable, rule.Description})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Rules %d", len(rules)), "", "", ""})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayCandidates prints the files a dry run would rewrite.
func (s *SimpleUI) DisplayCandidates(candidates []m.FixCandidate) error {
	if len(candidates) == 0 {
		s.printf("No fixable files found\n")

		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Transform", "Sites"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	sites := 0

	for _, candidate := range candidates {
		table.Append([]string{string(candidate.Path), candidate.Transform, fmt.Sprintf("%d", candidate.Sites)})
		sites += candidate.Sites
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(candidates)), "", fmt.Sprintf("%d", sites)})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayFixProgress prints the file about to be rewritten.
func (s *SimpleUI) DisplayFixProgress(index, total int, candidate m.FixCandidate) {
	s.printf("[%d/%d] Fixing %s (%d sites)...\n", index, total, candidate.Path, candidate.Sites)
}

// DisplayFixOutcome prints how a unit settled.
func (s *SimpleUI) DisplayFixOutcome(unit m.RemediationUnit) {
	switch unit.Outcome {
	case m.UnitKept:
		s.printf("  ✓ build passed, changes kept\n")
	case m.UnitReverted:
		s.printf("  ✗ build failed, changes reverted\n")
	case m.UnitFailed:
		s.printf("  ✗ failed: %s\n", firstLine(unit.Detail))
	case m.UnitSkipped:
		s.printf("  - no changes\n")
	}
}

// DisplayFixReport prints the per-unit table and the run summary.
func (s *SimpleUI) DisplayFixReport(report m.RemediationReport) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Transform", "Files", "Sites", "Outcome"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	fixed := 0
	total := 0

	for _, unit := range report.Units {
		table.Append([]string{
			unit.Transform,
			joinPaths(unit.Files),
			fmt.Sprintf("%d", unit.Magnitude),
			string(unit.Outcome),
		})

		total += len(unit.Files)
		if unit.Outcome == m.UnitKept {
			fixed += len(unit.Files)
		}
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())
	s.printf("\nFixed %d/%d file(s)\n", fixed, total)

	if report.Reverted > 0 {
		s.printf("Reverted %d unit(s) after failed builds\n", report.Reverted)
	}

	if report.Failed > 0 {
		s.printf("Failed to process %d unit(s)\n", report.Failed)
	}

	return nil
}

// DisplayRuns prints stored run records, newest first.
func (s *SimpleUI) DisplayRuns(records []m.RunRecord) error {
	if len(records) == 0 {
		s.printf("No stored runs\n")

		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Started", "Kind", "Result", "Violations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, record := range records {
		result := "fail"
		if record.Passed {
			result = "pass"
		}

		table.Append([]string{
			record.StartedAt.Format(time.DateTime),
			string(record.Kind),
			result,
			fmt.Sprintf("%d", record.Violations),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Runs %d", len(records)), "", "", ""})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func joinPaths(paths []m.Path) string {
	parts := make([]string, 0, len(paths))
	for _, path := range paths {
		parts = append(parts, string(path))
	}

	return strings.Join(parts, ", ")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}

	return s
}
