package rules

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/redress-dev/redress/internal/model"
)

// itemPattern matches an item declaration keyword at the start of a trimmed
// line, allowing lowercase modifiers such as `pub`, `pub(crate)`, `unsafe`,
// `async` and an extern ABI string before the keyword.
var itemPattern = regexp.MustCompile(
	`^(?:[a-z]+(?:\([^)]*\))?\s+|"[^"]*"\s+)*(fn|struct|enum|type|trait|impl|const|static)\b`)

// moduleEncapsulation requires every item declaration to live inside a named
// module block. Entry files are exempt.
type moduleEncapsulation struct {
	entryFiles      []string
	commentPrefixes []string
	implHeader      *regexp.Regexp
}

// NewModuleEncapsulation creates the module-encapsulation rule from the
// profile. The profile's impl markers decide which block headers count as
// implementation blocks when found at the top level.
func NewModuleEncapsulation(profile m.Profile) Rule {
	keywords := make([]string, 0, len(profile.ImplMarkers))
	for _, keyword := range profile.ImplMarkers {
		keywords = append(keywords, regexp.QuoteMeta(keyword))
	}

	header := fmt.Sprintf(`^(?:[a-z]+(?:\([^)]*\))?\s+|"[^"]*"\s+)*(%s)\b`,
		strings.Join(keywords, "|"))

	return moduleEncapsulation{
		entryFiles:      profile.EntryFiles,
		commentPrefixes: profile.CommentPrefixes,
		implHeader:      regexp.MustCompile(header),
	}
}

func (r moduleEncapsulation) ID() string { return "module-encapsulation" }

func (r moduleEncapsulation) Severity() m.Severity { return m.SeverityHard }

func (r moduleEncapsulation) Description() string {
	return "all items are declared inside a named module block"
}

func (r moduleEncapsulation) Check(file m.SourceFile, scan m.FileScan) []m.Violation {
	if isEntryFile(baseName(file.Path), r.entryFiles) {
		return nil
	}

	var violations []m.Violation

	for _, span := range scan.Spans {
		switch span.Kind {
		case m.ScopeTopLevel:
			violations = append(violations, r.checkTopLevel(file, span)...)
		case m.ScopeImpl:
			// Depth 1 means the block opened at the top level. Only the
			// header span is reported, not continuations after nested scopes.
			if span.Depth == 1 {
				header := strings.TrimSpace(file.Lines[span.StartLine-1])
				if match := r.implHeader.FindStringSubmatch(header); match != nil {
					violations = append(violations, violation(r, file, span.StartLine,
						fmt.Sprintf("%s block outside a module block", match[1])))
				}
			}
		}
	}

	return violations
}

func (r moduleEncapsulation) checkTopLevel(file m.SourceFile, span m.ScopeSpan) []m.Violation {
	var violations []m.Violation

	for line := span.StartLine; line <= span.EndLine; line++ {
		trimmed := strings.TrimSpace(file.Lines[line-1])

		if trimmed == "" || isCommentLine(trimmed, r.commentPrefixes) {
			continue
		}

		if hasAnyPrefix(trimmed, "use ", "#[", "#!") || strings.Contains(trimmed, "macro_rules!") {
			continue
		}

		if match := itemPattern.FindStringSubmatch(trimmed); match != nil {
			violations = append(violations, violation(r, file, line,
				fmt.Sprintf("%s declared outside a module block", match[1])))
		}
	}

	return violations
}
