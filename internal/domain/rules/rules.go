// Package rules provides the built-in convention checks run by the review suites.
package rules

import (
	m "github.com/redress-dev/redress/internal/model"
)

// Rule is one convention check. Check inspects a single file together with
// its scope scan and returns findings in line order. Implementations are pure
// and hold no per-file state, so one instance serves a whole run.
type Rule interface {
	ID() string
	Severity() m.Severity
	Description() string
	Check(file m.SourceFile, scan m.FileScan) []m.Violation
}

// Limits carries the configured budgets for the advisory size rules.
// A budget of zero or less disables its rule.
type Limits struct {
	LineLength   int
	FileLength   int
	MethodLength int
	BlockDepth   int
}

// Catalogue returns every built-in rule in registration order. The order is
// the execution and reporting order of the default review tree.
func Catalogue(profile m.Profile, limits Limits) []Rule {
	return []Rule{
		NewFileNaming(profile),
		NewNoExtern(profile),
		NewImportOrder(),
		NewModuleEncapsulation(profile),
		NewDualImpl(),
		NewImplMethodLength(limits.MethodLength),
		NewBlockDepth(profile, limits.BlockDepth),
		NewLineLength(limits.LineLength),
		NewFileLength(limits.FileLength),
	}
}

func violation(rule Rule, file m.SourceFile, line int, message string) m.Violation {
	return m.Violation{
		RuleID:   rule.ID(),
		Path:     file.Path,
		Line:     line,
		Message:  message,
		Severity: rule.Severity(),
	}
}
