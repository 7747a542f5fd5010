package domain

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/redress-dev/redress/internal/domain/rules"
	m "github.com/redress-dev/redress/internal/model"
)

// Policy selects how a composite suite reacts to a failing child.
type Policy int

const (
	// FailFast stops at the first failing child; later children never run.
	FailFast Policy = iota

	// RunAll executes every child and tallies the outcome.
	RunAll
)

// AdvisoryMode decides whether advisory violations fail the run.
type AdvisoryMode int

const (
	// AdvisoryFails treats advisory violations like hard ones.
	AdvisoryFails AdvisoryMode = iota

	// AdvisoryWarns reports advisory violations without failing their suite.
	AdvisoryWarns
)

// Suite is one node of the review tree: either a leaf wrapping a single rule
// or a named composite of child suites.
type Suite interface {
	Name() string
	Run(rc *RunContext) m.SuiteResult
}

// RunContext carries the reviewed snapshot and the transcript writer through
// one run. Scans and suppression indexes are computed once per file and
// shared immutably by every rule.
type RunContext struct {
	entries  []fileEntry
	out      io.Writer
	advisory AdvisoryMode
}

type fileEntry struct {
	file  m.SourceFile
	scan  m.FileScan
	allow allowIndex
}

// NewRunContext scans the given files once and prepares a context for suite
// execution. A nil writer discards the transcript.
func NewRunContext(files []m.SourceFile, profile m.Profile, out io.Writer, advisory AdvisoryMode) *RunContext {
	if out == nil {
		out = io.Discard
	}

	scanner := NewScanner(profile)
	entries := make([]fileEntry, 0, len(files))

	for _, file := range files {
		entries = append(entries, fileEntry{
			file:  file,
			scan:  scanner.Scan(file),
			allow: buildAllowIndex(file, profile),
		})
	}

	return &RunContext{entries: entries, out: out, advisory: advisory}
}

type leafSuite struct {
	rule rules.Rule
	root string
}

// NewLeaf wraps one rule as a suite leaf checking every reviewed file.
func NewLeaf(rule rules.Rule) Suite {
	return leafSuite{rule: rule}
}

// NewScopedLeaf wraps one rule as a suite leaf restricted to files under the
// given root directory.
func NewScopedLeaf(rule rules.Rule, root string) Suite {
	return leafSuite{rule: rule, root: root}
}

func (s leafSuite) Name() string { return s.rule.ID() }

func (s leafSuite) Run(rc *RunContext) m.SuiteResult {
	var violations []m.Violation

	for _, entry := range rc.entries {
		if !underRoot(entry.file.Path, s.root) {
			continue
		}

		for _, v := range s.rule.Check(entry.file, entry.scan) {
			if entry.allow.allows(v.RuleID, v.Line) {
				continue
			}

			violations = append(violations, v)
		}
	}

	warned := len(violations) > 0 &&
		s.rule.Severity() == m.SeverityAdvisory && rc.advisory == AdvisoryWarns
	passed := len(violations) == 0 || warned

	switch {
	case len(violations) == 0:
		fmt.Fprintf(rc.out, "✓ %s: PASS\n", s.rule.ID())
	case warned:
		fmt.Fprintf(rc.out, "✓ %s: %d advisory violation(s)\n", s.rule.ID(), len(violations))
	default:
		fmt.Fprintf(rc.out, "✗ %s: %d violation(s)\n", s.rule.ID(), len(violations))
	}

	for _, v := range violations {
		fmt.Fprintf(rc.out, "  %s\n", v)
	}

	result := m.SuiteResult{
		Name:   s.rule.ID(),
		Passed: passed,
		Rule: &m.RuleResult{
			RuleID:     s.rule.ID(),
			Passed:     passed,
			Violations: violations,
		},
	}

	if passed {
		result.PassedCount = 1
	} else {
		result.FailedCount = 1
	}

	return result
}

func underRoot(path m.Path, root string) bool {
	if root == "" {
		return true
	}

	rel, err := filepath.Rel(root, string(path))
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

type compositeSuite struct {
	name     string
	policy   Policy
	children []Suite
}

// NewComposite builds a named suite node running the given children under
// the given policy.
func NewComposite(name string, policy Policy, children ...Suite) Suite {
	return compositeSuite{name: name, policy: policy, children: children}
}

func (s compositeSuite) Name() string { return s.name }

func (s compositeSuite) Run(rc *RunContext) m.SuiteResult {
	result := m.SuiteResult{Name: s.name, Passed: true}

	if s.policy == RunAll {
		fmt.Fprintf(rc.out, "Running %d %s check(s)\n\n", len(s.children), s.name)
	}

	for _, child := range s.children {
		if _, composite := child.(compositeSuite); composite {
			fmt.Fprintf(rc.out, "[%s]\n", child.Name())
		}

		childResult := child.Run(rc)
		result.Children = append(result.Children, childResult)
		result.PassedCount += childResult.PassedCount
		result.FailedCount += childResult.FailedCount

		if !childResult.Passed {
			result.Passed = false

			fmt.Fprintf(rc.out, "FAILED: %s\n", child.Name())
		}

		fmt.Fprintln(rc.out)

		if !childResult.Passed && s.policy == FailFast {
			return result
		}
	}

	switch {
	case s.policy == RunAll && result.Passed:
		fmt.Fprintf(rc.out, "✓ All %s checks passed (%d/%d)\n",
			s.name, result.PassedCount, result.PassedCount)
	case s.policy == RunAll:
		fmt.Fprintf(rc.out, "✗ %s: %d passed, %d failed\n",
			s.name, result.PassedCount, result.FailedCount)
	case result.Passed:
		fmt.Fprintf(rc.out, "✓ All %s checks passed\n", s.name)
	}

	return result
}

// DefaultTree builds the standard review tree: the cross-cutting rules run
// fail-fast first, then each reviewed root gets a run-all suite of the
// scoped and budget rules.
func DefaultTree(catalogue []rules.Rule, roots []string, disabled func(string) bool) Suite {
	crossCutting := map[string]bool{
		"file-naming":           true,
		"no-extern-declaration": true,
		"import-order":          true,
	}

	var crossLeaves []Suite

	var scopedRules []rules.Rule

	for _, rule := range catalogue {
		if disabled != nil && disabled(rule.ID()) {
			continue
		}

		if crossCutting[rule.ID()] {
			crossLeaves = append(crossLeaves, NewLeaf(rule))
		} else {
			scopedRules = append(scopedRules, rule)
		}
	}

	children := []Suite{NewComposite("Cross-cutting", FailFast, crossLeaves...)}

	for _, root := range roots {
		leaves := make([]Suite, 0, len(scopedRules))
		for _, rule := range scopedRules {
			leaves = append(leaves, NewScopedLeaf(rule, root))
		}

		children = append(children, NewComposite(root, RunAll, leaves...))
	}

	return NewComposite("Redress Code Review", FailFast, children...)
}
