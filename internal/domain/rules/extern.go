package rules

import (
	"strings"

	m "github.com/redress-dev/redress/internal/model"
)

// noExtern forbids legacy extern-crate declarations anywhere in a file.
type noExtern struct {
	commentPrefixes []string
}

// NewNoExtern creates the no-extern-declaration rule from the profile.
func NewNoExtern(profile m.Profile) Rule {
	return noExtern{commentPrefixes: profile.CommentPrefixes}
}

func (r noExtern) ID() string { return "no-extern-declaration" }

func (r noExtern) Severity() m.Severity { return m.SeverityHard }

func (r noExtern) Description() string {
	return "legacy extern crate declarations are forbidden"
}

func (r noExtern) Check(file m.SourceFile, _ m.FileScan) []m.Violation {
	var violations []m.Violation

	for i, raw := range file.Lines {
		trimmed := strings.TrimSpace(raw)

		if isCommentLine(trimmed, r.commentPrefixes) {
			continue
		}

		if strings.Contains(raw, "extern crate") {
			violations = append(violations, violation(r, file, i+1,
				"extern crate declaration is forbidden"))
		}
	}

	return violations
}

func isCommentLine(trimmed string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	return false
}
