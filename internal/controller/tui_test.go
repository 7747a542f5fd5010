package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/redress-dev/redress/internal/model"
)

type quitModel struct{}

func (m quitModel) Init() tea.Cmd { return tea.Quit }
func (m quitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
func (m quitModel) View() string { return "" }

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	// send while running should go through program.Send
	tui.send(progressMsg{index: 1, total: 2})

	waitDone := make(chan struct{})
	go func() {
		tui.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait() timed out")
	}

	closeDone := make(chan struct{})
	go func() {
		tui.Close()
		close(closeDone)
	}()

	select {
	case <-closeDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() timed out")
	}
}

func TestTUI_Send_And_EnsureStarted_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	// send before start should be no-op
	tui.send(progressMsg{index: 1})

	// ensureStarted should not re-start when already started
	tui.started = true
	tui.ensureStarted()
}

func TestTUI_StartDryRun_DoesNotLaunchProgram(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.Start(WithTotal(3), WithDryRun()); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	if tui.started || tui.program != nil {
		t.Fatalf("dry run must stay on plain output")
	}

	tui.Close()
}

func TestTUI_MultipleClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.Close()
	tui.Close() // Close again should be safe

	tui2 := NewTUI(&buf)
	tui2.Wait() // Wait without start should be no-op

	tui3 := NewTUI(&buf)
	tui3.Close() // Close without start should be no-op
}

func TestTUI_DisplayMethods_NoProgram(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	// Avoid starting the Bubble Tea program in tests
	tui.started = true

	tui.DisplayFixProgress(1, 3, m.FixCandidate{Path: "src/lib.rs", Transform: "sort-imports", Sites: 2})
	tui.DisplayFixOutcome(m.RemediationUnit{Files: []m.Path{"src/lib.rs"}, Outcome: m.UnitKept})

	if err := tui.DisplayFixReport(m.RemediationReport{Kept: 1}); err != nil {
		t.Fatalf("DisplayFixReport unexpected error = %v", err)
	}
}

func TestTUI_DisplayRules_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	rules := []m.RuleInfo{
		{ID: "import-order", Severity: m.SeverityHard, Fixable: true, Description: "imports grouped std, external, internal"},
		{ID: "line-length", Severity: m.SeverityAdvisory, Description: "lines within the configured budget"},
	}

	if err := tui.DisplayRules(rules); err != nil {
		t.Fatalf("DisplayRules error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"import-order [hard] (fixable)",
		"line-length [advisory]",
		"Total rules: 2",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_DisplayCandidates_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.DisplayCandidates(nil); err != nil {
		t.Fatalf("DisplayCandidates error = %v", err)
	}

	if !strings.Contains(buf.String(), "No fixable files found") {
		t.Fatalf("output missing empty message\noutput:\n%s", buf.String())
	}

	buf.Reset()

	candidates := []m.FixCandidate{
		{Path: "src/lib.rs", Transform: "sort-imports", Sites: 2},
		{Path: "src/api.rs", Transform: "sort-imports", Sites: 1},
	}

	if err := tui.DisplayCandidates(candidates); err != nil {
		t.Fatalf("DisplayCandidates error = %v", err)
	}

	for _, want := range []string{
		"sort-imports: src/lib.rs (2 sites)",
		"Would fix 2 file(s), 3 site(s)",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, buf.String())
		}
	}
}

func TestTUI_DisplayRuns_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.DisplayRuns(nil); err != nil {
		t.Fatalf("DisplayRuns error = %v", err)
	}

	if !strings.Contains(buf.String(), "No stored runs") {
		t.Fatalf("output missing empty message\noutput:\n%s", buf.String())
	}

	buf.Reset()

	records := []m.RunRecord{
		{Kind: m.RunReview, StartedAt: time.Date(2025, 11, 3, 14, 30, 0, 0, time.UTC), Passed: true},
	}

	if err := tui.DisplayRuns(records); err != nil {
		t.Fatalf("DisplayRuns error = %v", err)
	}

	for _, want := range []string{"2025-11-03 14:30:00", "review", "pass"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, buf.String())
		}
	}
}
