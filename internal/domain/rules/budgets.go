package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	m "github.com/redress-dev/redress/internal/model"
)

// lineLength budgets the column width of every line.
type lineLength struct {
	budget int
}

// NewLineLength creates the line-length rule with the given column budget.
func NewLineLength(budget int) Rule {
	return lineLength{budget: budget}
}

func (r lineLength) ID() string { return "line-length" }

func (r lineLength) Severity() m.Severity { return m.SeverityAdvisory }

func (r lineLength) Description() string {
	return "lines stay within the configured column budget"
}

func (r lineLength) Check(file m.SourceFile, _ m.FileScan) []m.Violation {
	if r.budget <= 0 {
		return nil
	}

	var violations []m.Violation

	for i, raw := range file.Lines {
		if width := utf8.RuneCountInString(raw); width > r.budget {
			violations = append(violations, violation(r, file, i+1,
				fmt.Sprintf("line is %d columns (budget %d)", width, r.budget)))
		}
	}

	return violations
}

// fileLength budgets the total line count of a file.
type fileLength struct {
	budget int
}

// NewFileLength creates the file-length rule with the given line budget.
func NewFileLength(budget int) Rule {
	return fileLength{budget: budget}
}

func (r fileLength) ID() string { return "file-length" }

func (r fileLength) Severity() m.Severity { return m.SeverityAdvisory }

func (r fileLength) Description() string {
	return "files stay within the configured line budget"
}

func (r fileLength) Check(file m.SourceFile, _ m.FileScan) []m.Violation {
	if r.budget <= 0 {
		return nil
	}

	if count := len(file.Lines); count > r.budget {
		return []m.Violation{violation(r, file, 0,
			fmt.Sprintf("file is %d lines (budget %d)", count, r.budget))}
	}

	return nil
}

// blockDepth budgets the brace nesting depth of code lines. Blank and
// comment lines are not measured.
type blockDepth struct {
	commentPrefixes []string
	budget          int
}

// NewBlockDepth creates the block-depth rule with the given depth budget.
func NewBlockDepth(profile m.Profile, budget int) Rule {
	return blockDepth{commentPrefixes: profile.CommentPrefixes, budget: budget}
}

func (r blockDepth) ID() string { return "block-depth" }

func (r blockDepth) Severity() m.Severity { return m.SeverityAdvisory }

func (r blockDepth) Description() string {
	return "nesting stays within the configured depth budget"
}

func (r blockDepth) Check(file m.SourceFile, scan m.FileScan) []m.Violation {
	if r.budget <= 0 {
		return nil
	}

	var violations []m.Violation

	for i, raw := range file.Lines {
		trimmed := strings.TrimSpace(raw)

		if trimmed == "" || isCommentLine(trimmed, r.commentPrefixes) {
			continue
		}

		if depth := scan.DepthAt(i + 1); depth > r.budget {
			violations = append(violations, violation(r, file, i+1,
				fmt.Sprintf("nesting depth %d exceeds budget %d", depth, r.budget)))
		}
	}

	return violations
}
