package domain

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/redress-dev/redress/internal/adapter"
	"github.com/redress-dev/redress/internal/controller"
	"github.com/redress-dev/redress/internal/domain/transforms"
	m "github.com/redress-dev/redress/internal/model"
)

// RemediateArgs holds parameters for a remediation run.
type RemediateArgs struct {
	Paths         []m.Path
	Transforms    []transforms.Transform
	Batch         int
	DryRun        bool
	VerifyCommand []string
	VerifyDir     m.Path
}

// Remediator applies transforms to batches of files and keeps each batch
// only when the build verifier accepts the rewritten tree.
type Remediator interface {
	Remediate(args RemediateArgs) (m.RemediationReport, error)
}

type remediator struct {
	source   adapter.SourceFS
	verifier adapter.BuildVerifier
	reverter adapter.Reverter
	ui       controller.UI
}

// NewRemediator creates a new Remediator.
func NewRemediator(source adapter.SourceFS, verifier adapter.BuildVerifier, reverter adapter.Reverter, ui controller.UI) Remediator {
	return &remediator{
		source:   source,
		verifier: verifier,
		reverter: reverter,
		ui:       ui,
	}
}

// Remediate detects candidate files for every transform, then rewrites them
// in verified batches. A batch is transactional: all of its files are kept
// or all are rolled back. The returned error is nil unless the working tree
// could not be restored; everything else is recorded in the report.
func (r *remediator) Remediate(args RemediateArgs) (m.RemediationReport, error) {
	report := m.RemediationReport{DryRun: args.DryRun}

	if args.DryRun {
		if err := r.ui.Start(controller.WithDryRun()); err != nil {
			return report, err
		}
	}

	for _, transform := range args.Transforms {
		candidates, failures := r.detect(transform, args.Paths)

		for _, unit := range failures {
			report.Record(unit)
		}

		report.Candidates = append(report.Candidates, candidates...)
	}

	if args.DryRun {
		return report, nil
	}

	if err := r.ui.Start(controller.WithTotal(len(report.Candidates))); err != nil {
		return report, err
	}

	byID := make(map[string]transforms.Transform, len(args.Transforms))
	for _, transform := range args.Transforms {
		byID[transform.ID()] = transform
	}

	total := len(report.Candidates)
	position := 0

	for _, batch := range batchCandidates(report.Candidates, args.Batch) {
		unit, err := r.fixBatch(byID[batch[0].Transform], batch, args, &position, total)

		report.Record(unit)
		r.ui.DisplayFixOutcome(unit)

		if err != nil {
			return report, err
		}
	}

	return report, nil
}

// detect runs one transform's detection over every path. Unreadable files
// become failed units rather than aborting the run.
func (r *remediator) detect(transform transforms.Transform, paths []m.Path) ([]m.FixCandidate, []m.RemediationUnit) {
	var candidates []m.FixCandidate

	var failures []m.RemediationUnit

	for _, path := range paths {
		content, err := r.source.ReadFile(path)
		if err != nil {
			failures = append(failures, m.RemediationUnit{
				Transform: transform.ID(),
				Files:     []m.Path{path},
				Outcome:   m.UnitFailed,
				Detail:    err.Error(),
			})

			continue
		}

		sites := transform.Detect(m.NewSourceFile(path, content))
		if sites == 0 {
			continue
		}

		candidates = append(candidates, m.FixCandidate{
			Path:      path,
			Transform: transform.ID(),
			Sites:     sites,
		})
	}

	return candidates, failures
}

// fixBatch settles one batch. Rewrites are computed against fresh reads so a
// batch sees what earlier batches wrote. A non-nil error means a rollback
// write failed and the working tree can no longer be trusted.
func (r *remediator) fixBatch(transform transforms.Transform, batch []m.FixCandidate, args RemediateArgs, position *int, total int) (m.RemediationUnit, error) {
	unit := m.RemediationUnit{
		Transform: transform.ID(),
		Files:     batchPaths(batch),
		Magnitude: batchSites(batch),
	}

	for _, candidate := range batch {
		*position++
		r.ui.DisplayFixProgress(*position, total, candidate)
	}

	preImages := make(map[m.Path][]byte, len(batch))
	outputs := make(map[m.Path][]byte, len(batch))
	changed := make([]m.Path, 0, len(batch))

	for _, candidate := range batch {
		content, err := r.source.ReadFile(candidate.Path)
		if err != nil {
			unit.Outcome = m.UnitFailed
			unit.Detail = err.Error()

			return unit, nil
		}

		output, err := transform.Apply(m.NewSourceFile(candidate.Path, content))
		if err != nil {
			unit.Outcome = m.UnitFailed
			unit.Detail = err.Error()

			return unit, nil
		}

		preImages[candidate.Path] = content
		outputs[candidate.Path] = output

		if !bytes.Equal(output, content) {
			changed = append(changed, candidate.Path)
		}
	}

	if len(changed) == 0 {
		unit.Outcome = m.UnitSkipped
		unit.Magnitude = 0

		return unit, nil
	}

	written := make([]m.Path, 0, len(changed))

	for _, path := range changed {
		if err := r.source.WriteFile(path, outputs[path]); err != nil {
			unit.Outcome = m.UnitFailed
			unit.Detail = err.Error()

			return unit, r.unwind(written, preImages)
		}

		written = append(written, path)
	}

	verifyErr := r.verifier.Verify(args.VerifyCommand, args.VerifyDir)
	if verifyErr == nil {
		unit.Outcome = m.UnitKept

		return unit, nil
	}

	for _, path := range written {
		if err := r.restore(path, preImages[path]); err != nil {
			unit.Outcome = m.UnitFailed
			unit.Detail = err.Error()

			return unit, err
		}
	}

	unit.Outcome = m.UnitReverted
	unit.Detail = verifyDetail(verifyErr)

	return unit, nil
}

// restore brings one file back to its pre-batch bytes, preferring the
// reverter so unrelated local edits in the file survive a checkout-based
// implementation. The pre-image is the fallback authority.
func (r *remediator) restore(path m.Path, preImage []byte) error {
	if r.reverter.Revert(path) == nil {
		restored, err := r.source.ReadFile(path)
		if err == nil && bytes.Equal(restored, preImage) {
			return nil
		}
	}

	if err := r.source.WriteFile(path, preImage); err != nil {
		return fmt.Errorf("failed to restore %s: %w", path, err)
	}

	return nil
}

// unwind puts pre-images back after a mid-batch write failure.
func (r *remediator) unwind(written []m.Path, preImages map[m.Path][]byte) error {
	for _, path := range written {
		if err := r.source.WriteFile(path, preImages[path]); err != nil {
			return fmt.Errorf("failed to restore %s: %w", path, err)
		}
	}

	return nil
}

func verifyDetail(err error) string {
	var verifyErr *adapter.VerifyError
	if errors.As(err, &verifyErr) && verifyErr.Output != "" {
		return err.Error() + "\n" + verifyErr.Output
	}

	return err.Error()
}

func batchCandidates(candidates []m.FixCandidate, size int) [][]m.FixCandidate {
	if size < 1 {
		size = 1
	}

	var batches [][]m.FixCandidate

	var current []m.FixCandidate

	for _, candidate := range candidates {
		full := len(current) == size ||
			(len(current) > 0 && current[0].Transform != candidate.Transform)
		if full {
			batches = append(batches, current)
			current = nil
		}

		current = append(current, candidate)
	}

	if len(current) > 0 {
		batches = append(batches, current)
	}

	return batches
}

func batchPaths(batch []m.FixCandidate) []m.Path {
	paths := make([]m.Path, 0, len(batch))
	for _, candidate := range batch {
		paths = append(paths, candidate.Path)
	}

	return paths
}

func batchSites(batch []m.FixCandidate) int {
	sites := 0
	for _, candidate := range batch {
		sites += candidate.Sites
	}

	return sites
}
