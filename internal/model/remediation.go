package model

// UnitOutcome records what happened to one remediation unit.
type UnitOutcome string

const (
	// UnitKept means the transform applied and the verifier accepted it.
	UnitKept UnitOutcome = "kept"

	// UnitReverted means the verifier rejected the change and every touched
	// file was restored to its pre-transform bytes.
	UnitReverted UnitOutcome = "reverted"

	// UnitFailed means the unit could not be processed at all, e.g. the
	// transform itself errored before any verification ran.
	UnitFailed UnitOutcome = "failed"

	// UnitSkipped means the transform found nothing to change in the unit.
	UnitSkipped UnitOutcome = "skipped"
)

// RemediationUnit is one transactional step of a fix run: a transform applied
// to a batch of files, verified, then kept or rolled back as a whole.
type RemediationUnit struct {
	Transform string
	Files     []Path
	Magnitude int // transform-specific count of edits made, e.g. rewritten blocks
	Outcome   UnitOutcome
	Detail    string // failure detail or verifier summary, empty when kept
}

// FixCandidate is one file a transform reported work for, before batching.
type FixCandidate struct {
	Path      Path
	Transform string
	Sites     int
}

// RemediationReport aggregates a whole fix run.
type RemediationReport struct {
	Candidates []FixCandidate
	Units      []RemediationUnit
	Kept       int
	Reverted   int
	Failed     int
	Skipped    int
	DryRun     bool
}

// Record appends a finished unit and bumps the matching counter.
func (r *RemediationReport) Record(unit RemediationUnit) {
	r.Units = append(r.Units, unit)

	switch unit.Outcome {
	case UnitKept:
		r.Kept++
	case UnitReverted:
		r.Reverted++
	case UnitFailed:
		r.Failed++
	case UnitSkipped:
		r.Skipped++
	}
}

// Clean reports whether the run finished without failed units.
// Reverted units are an expected outcome, not a failure.
func (r RemediationReport) Clean() bool {
	return r.Failed == 0
}
