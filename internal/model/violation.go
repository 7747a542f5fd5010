package model

import "fmt"

// Severity grades how a violation affects the aggregate outcome.
type Severity string

const (
	// SeverityHard marks violations that always fail the run.
	SeverityHard Severity = "hard"

	// SeverityAdvisory marks budget-style violations that can be downgraded
	// to warnings by configuration.
	SeverityAdvisory Severity = "advisory"
)

// ScanErrorRuleID is reserved for violations reporting files that could not
// be read or scanned. No rule may register under this id.
const ScanErrorRuleID = "scan-error"

// Violation is one finding: a rule, a place, and a message.
// Line 0 means the finding concerns the whole file.
type Violation struct {
	RuleID   string
	Path     Path
	Line     int
	Message  string
	Severity Severity
}

// String renders the violation in the path:line form used in run transcripts.
func (v Violation) String() string {
	if v.Line <= 0 {
		return fmt.Sprintf("%s: %s", v.Path, v.Message)
	}

	return fmt.Sprintf("%s:%d: %s", v.Path, v.Line, v.Message)
}

// RuleResult is the outcome of one rule applied across the reviewed files.
type RuleResult struct {
	RuleID     string
	Passed     bool
	Violations []Violation
}

// SuiteResult is the outcome of a suite node. Leaves carry a RuleResult;
// composites carry child results plus pass/fail tallies over their leaves.
type SuiteResult struct {
	Name        string
	Passed      bool
	Rule        *RuleResult
	Children    []SuiteResult
	PassedCount int
	FailedCount int
}

// LeafCount returns the number of leaf results under this node, counting the
// node itself when it is a leaf.
func (r SuiteResult) LeafCount() int {
	if r.Rule != nil {
		return 1
	}

	total := 0
	for _, child := range r.Children {
		total += child.LeafCount()
	}

	return total
}

// Violations collects every violation under this node in execution order.
func (r SuiteResult) Violations() []Violation {
	if r.Rule != nil {
		return r.Rule.Violations
	}

	var all []Violation
	for _, child := range r.Children {
		all = append(all, child.Violations()...)
	}

	return all
}
