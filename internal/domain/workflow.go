package domain

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/redress-dev/redress/internal/adapter"
	"github.com/redress-dev/redress/internal/config"
	"github.com/redress-dev/redress/internal/controller"
	"github.com/redress-dev/redress/internal/domain/rules"
	"github.com/redress-dev/redress/internal/domain/transforms"
	m "github.com/redress-dev/redress/internal/model"
)

const bannerWidth = 60

// CheckArgs holds parameters for a single review run.
type CheckArgs struct {
	Config   config.Config
	Paths    []m.Path // overrides the configured roots when non-empty
	Advisory string   // overrides rules.advisory when non-empty
}

// FixArgs holds parameters for a transactional fix run.
type FixArgs struct {
	Config     config.Config
	Paths      []m.Path // overrides the configured roots when non-empty
	Transforms []string // transform ids, empty means the configured set
	Batch      int      // files per verified batch, 0 means the configured size
	DryRun     bool
}

// Workflow wires source discovery, the review tree, batch remediation and
// run persistence into the operations the CLI exposes.
type Workflow interface {
	Check(args CheckArgs) (bool, error)
	Fix(args FixArgs) error
	Rules(cfg config.Config) error
	Runs(cfg config.Config) error
	CleanRuns(cfg config.Config, keep int) error
}

type workflow struct {
	out          io.Writer
	source       adapter.SourceFS
	store        adapter.ReviewStore
	transcriptor adapter.Transcriptor
	ui           controller.UI
	remediator   Remediator
}

// NewWorkflow creates a new Workflow instance with the provided
// collaborators. Review transcripts are echoed to out.
func NewWorkflow(
	out io.Writer,
	source adapter.SourceFS,
	store adapter.ReviewStore,
	transcriptor adapter.Transcriptor,
	ui controller.UI,
	remediator Remediator,
) Workflow {
	return &workflow{
		out:          out,
		source:       source,
		store:        store,
		transcriptor: transcriptor,
		ui:           ui,
		remediator:   remediator,
	}
}

// Check runs the review tree over every discovered source file and reports
// whether the run passed. The transcript is written to the configured log
// file and echoed to the console. Files that cannot be read are reported as
// scan errors at the end of the transcript and fail the run; they never
// abort it.
func (w *workflow) Check(args CheckArgs) (bool, error) {
	cfg := args.Config
	start := time.Now()
	roots := resolveRoots(cfg, args.Paths)
	profile := cfg.LanguageProfile()

	files, scanErrors, err := w.loadSources(roots, profile)
	if err != nil {
		return false, err
	}

	logPath := filepath.Join(cfg.ReportsDir, cfg.LogFile)

	tee, err := w.transcriptor.Open(w.out, m.Path(logPath))
	if err != nil {
		return false, fmt.Errorf("failed to open transcript: %w", err)
	}
	defer func() { _ = tee.Close() }()

	openBanner(tee)

	tree := DefaultTree(rules.Catalogue(profile, ruleLimits(cfg)), roots, cfg.RuleDisabled)
	rc := NewRunContext(files, profile, tee, advisoryMode(cfg, args.Advisory))

	result := tree.Run(rc)

	reportScanErrors(tee, scanErrors)

	passed := result.Passed && len(scanErrors) == 0

	verdictBanner(tee, passed)
	_, _ = fmt.Fprintf(tee, "Output saved to: %s\n", logPath)

	record := m.RunRecord{
		Kind:       m.RunReview,
		StartedAt:  start,
		Passed:     passed,
		Checks:     result.LeafCount(),
		Failed:     result.FailedCount,
		Violations: len(result.Violations()) + len(scanErrors),
		Log:        cfg.LogFile,
	}

	return passed, w.saveRun(cfg, record)
}

// Fix resolves the requested transforms and hands the discovered files to the
// remediator. Dry runs end with the candidate listing and are not persisted;
// real runs end with the outcome table and a stored fix record.
func (w *workflow) Fix(args FixArgs) error {
	cfg := args.Config
	start := time.Now()
	roots := resolveRoots(cfg, args.Paths)

	paths, err := w.discoverPaths(roots, cfg.LanguageProfile())
	if err != nil {
		return err
	}

	ids := args.Transforms
	if len(ids) == 0 {
		ids = cfg.Fix.Transforms
	}

	selected, err := transforms.Select(transforms.Catalogue(cfg.Rules.Budgets.LineLength), ids)
	if err != nil {
		return err
	}

	if !args.DryRun && len(cfg.Verify.Command) == 0 {
		return fmt.Errorf("verify command is not configured")
	}

	batch := args.Batch
	if batch == 0 {
		batch = cfg.Fix.Batch
	}

	defer w.ui.Close()

	report, err := w.remediator.Remediate(RemediateArgs{
		Paths:         paths,
		Transforms:    selected,
		Batch:         batch,
		DryRun:        args.DryRun,
		VerifyCommand: cfg.Verify.Command,
		VerifyDir:     m.Path(cfg.Verify.Dir),
	})
	if err != nil {
		return err
	}

	if err := w.displayFix(report); err != nil {
		return err
	}

	if args.DryRun {
		return nil
	}

	record := m.RunRecord{
		Kind:      m.RunFix,
		StartedAt: start,
		Passed:    report.Clean(),
		Checks:    len(report.Units),
		Failed:    report.Failed,
		Kept:      report.Kept,
		Reverted:  report.Reverted,
	}

	return w.saveRun(cfg, record)
}

// Rules renders the rule catalogue, cross-referencing the transform
// catalogue for fixability.
func (w *workflow) Rules(cfg config.Config) error {
	catalogue := rules.Catalogue(cfg.LanguageProfile(), ruleLimits(cfg))
	fixable := fixableRuleIDs(transforms.Catalogue(cfg.Rules.Budgets.LineLength))

	infos := make([]m.RuleInfo, 0, len(catalogue))
	for _, rule := range catalogue {
		infos = append(infos, m.RuleInfo{
			ID:          rule.ID(),
			Severity:    rule.Severity(),
			Fixable:     fixable[rule.ID()],
			Description: rule.Description(),
		})
	}

	return w.ui.DisplayRules(infos)
}

// Runs renders the stored run history, newest first.
func (w *workflow) Runs(cfg config.Config) error {
	records, err := w.store.ListRuns(m.Path(cfg.ReportsDir))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	return w.ui.DisplayRuns(records)
}

// CleanRuns removes stored runs beyond the keep newest and rebuilds the
// index over the survivors.
func (w *workflow) CleanRuns(cfg config.Config, keep int) error {
	if err := w.store.CleanRuns(m.Path(cfg.ReportsDir), keep); err != nil {
		return fmt.Errorf("failed to clean runs: %w", err)
	}

	if err := w.store.RegenerateIndex(m.Path(cfg.ReportsDir)); err != nil {
		return fmt.Errorf("failed to regenerate run index: %w", err)
	}

	return nil
}

// displayFix picks the closing view for a fix run: the candidate listing for
// dry runs, the outcome table otherwise. A run that found nothing renders as
// an empty candidate listing either way.
func (w *workflow) displayFix(report m.RemediationReport) error {
	if report.DryRun {
		return w.ui.DisplayCandidates(report.Candidates)
	}

	if len(report.Units) == 0 && len(report.Candidates) == 0 {
		return w.ui.DisplayCandidates(nil)
	}

	return w.ui.DisplayFixReport(report)
}

// discoverPaths walks every root and returns the union of reviewable files,
// deduplicated and sorted so overlapping roots stay deterministic.
func (w *workflow) discoverPaths(roots []string, profile m.Profile) ([]m.Path, error) {
	var all []m.Path

	seen := make(map[m.Path]bool)

	for _, root := range roots {
		paths, err := w.source.Discover(m.Path(root), profile.Include, profile.Exclude)
		if err != nil {
			return nil, fmt.Errorf("failed to discover sources under %s: %w", root, err)
		}

		for _, path := range paths {
			if !seen[path] {
				seen[path] = true

				all = append(all, path)
			}
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })

	return all, nil
}

// loadSources reads every discovered file. Unreadable files come back as
// scan-error violations rather than aborting discovery.
func (w *workflow) loadSources(roots []string, profile m.Profile) ([]m.SourceFile, []m.Violation, error) {
	paths, err := w.discoverPaths(roots, profile)
	if err != nil {
		return nil, nil, err
	}

	var (
		files      []m.SourceFile
		scanErrors []m.Violation
	)

	for _, path := range paths {
		content, err := w.source.ReadFile(path)
		if err != nil {
			scanErrors = append(scanErrors, m.Violation{
				RuleID:   m.ScanErrorRuleID,
				Path:     path,
				Message:  err.Error(),
				Severity: m.SeverityHard,
			})

			continue
		}

		files = append(files, m.NewSourceFile(path, content))
	}

	return files, scanErrors, nil
}

func (w *workflow) saveRun(cfg config.Config, record m.RunRecord) error {
	if _, err := w.store.SaveRun(m.Path(cfg.ReportsDir), record); err != nil {
		return fmt.Errorf("failed to save run record: %w", err)
	}

	if err := w.store.RegenerateIndex(m.Path(cfg.ReportsDir)); err != nil {
		return fmt.Errorf("failed to regenerate run index: %w", err)
	}

	return nil
}

// resolveRoots prefers explicitly requested paths over the configured roots.
func resolveRoots(cfg config.Config, paths []m.Path) []string {
	if len(paths) == 0 {
		return cfg.Roots
	}

	roots := make([]string, 0, len(paths))
	for _, path := range paths {
		roots = append(roots, string(path))
	}

	return roots
}

func advisoryMode(cfg config.Config, override string) AdvisoryMode {
	mode := cfg.Rules.Advisory
	if override != "" {
		mode = override
	}

	if mode == config.AdvisoryWarn {
		return AdvisoryWarns
	}

	return AdvisoryFails
}

func ruleLimits(cfg config.Config) rules.Limits {
	return rules.Limits{
		LineLength:   cfg.Rules.Budgets.LineLength,
		FileLength:   cfg.Rules.Budgets.FileLength,
		MethodLength: cfg.Rules.Budgets.MethodLength,
		BlockDepth:   cfg.Rules.Budgets.BlockDepth,
	}
}

func fixableRuleIDs(catalogue []transforms.Transform) map[string]bool {
	fixable := make(map[string]bool)

	for _, transform := range catalogue {
		for _, id := range transform.Fixes() {
			fixable[id] = true
		}
	}

	return fixable
}

func openBanner(out io.Writer) {
	rule := strings.Repeat("=", bannerWidth)
	_, _ = fmt.Fprintf(out, "%s\nRedress Code Review\n%s\n\n", rule, rule)
}

func verdictBanner(out io.Writer, passed bool) {
	verdict := "SUCCESS: All code reviews passed"
	if !passed {
		verdict = "FAILED: Some code reviews failed"
	}

	rule := strings.Repeat("=", bannerWidth)
	_, _ = fmt.Fprintf(out, "\n%s\n%s\n%s\n\n", rule, verdict, rule)
}

// reportScanErrors appends unreadable-file findings to the transcript after
// the tree output, under the reserved scan-error id.
func reportScanErrors(out io.Writer, violations []m.Violation) {
	if len(violations) == 0 {
		return
	}

	_, _ = fmt.Fprintf(out, "\n✗ %s: %d violation(s)\n", m.ScanErrorRuleID, len(violations))

	for _, violation := range violations {
		_, _ = fmt.Fprintf(out, "  %s\n", violation.String())
	}
}
