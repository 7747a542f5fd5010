package model

import "time"

// RunKind distinguishes persisted run records.
type RunKind string

// Available RunKind values.
const (
	RunReview RunKind = "review"
	RunFix    RunKind = "fix"
)

// RunRecord is the persisted summary of one review or fix run.
type RunRecord struct {
	Kind       RunKind
	StartedAt  time.Time
	Passed     bool
	Checks     int
	Failed     int
	Violations int
	Kept       int
	Reverted   int
	Log        string // transcript path relative to the reports dir
}

// RuleInfo describes one catalogue rule for listings.
type RuleInfo struct {
	ID          string
	Severity    Severity
	Fixable     bool
	Description string
}
