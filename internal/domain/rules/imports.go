package rules

import (
	"strings"

	m "github.com/redress-dev/redress/internal/model"
)

// importSection identifies one of the three ordered import groups.
type importSection int

const (
	sectionNone importSection = iota
	sectionStd
	sectionExternal
	sectionInternal
)

// importOrder checks that the leading import group of the file and of each
// named block lists std imports first, then external crates, then internal
// paths, with a blank line between adjacent sections.
type importOrder struct{}

// NewImportOrder creates the import-order rule.
func NewImportOrder() Rule {
	return importOrder{}
}

func (r importOrder) ID() string { return "import-order" }

func (r importOrder) Severity() m.Severity { return m.SeverityHard }

func (r importOrder) Description() string {
	return "imports are grouped std, external, internal with blank lines between"
}

func (r importOrder) Check(file m.SourceFile, scan m.FileScan) []m.Violation {
	var violations []m.Violation

	if start, ok := topLevelImportStart(file, scan); ok {
		violations = append(violations, r.checkRegion(file, start, len(file.Lines))...)
	}

	for _, span := range scan.Spans {
		if span.Kind != m.ScopeBlock {
			continue
		}

		if start, ok := importStart(file, span.StartLine, span.EndLine); ok {
			violations = append(violations, r.checkRegion(file, start, span.EndLine)...)
		}
	}

	return violations
}

// checkRegion walks a contiguous import region starting at a use line and
// ending at the first line that is neither an import, a blank, nor a comment.
func (r importOrder) checkRegion(file m.SourceFile, start, end int) []m.Violation {
	var violations []m.Violation

	section := sectionNone
	blankAfterStd := false
	blankAfterExternal := false

	for line := start; line <= end; line++ {
		trimmed := strings.TrimSpace(file.Lines[line-1])

		if trimmed == "" {
			switch section {
			case sectionStd:
				blankAfterStd = true
			case sectionExternal:
				blankAfterExternal = true
			}

			continue
		}

		if strings.HasPrefix(trimmed, "//") {
			continue
		}

		if !strings.HasPrefix(trimmed, "use ") {
			break
		}

		switch classifyImport(trimmed) {
		case sectionStd:
			switch section {
			case sectionExternal:
				violations = append(violations, violation(r, file, line,
					"std import after external imports"))
			case sectionInternal:
				violations = append(violations, violation(r, file, line,
					"std import after internal imports"))
			}

			section = sectionStd
		case sectionExternal:
			switch {
			case section == sectionStd && !blankAfterStd:
				violations = append(violations, violation(r, file, line,
					"missing blank line before external imports"))
			case section == sectionInternal:
				violations = append(violations, violation(r, file, line,
					"external import after internal imports"))
			}

			section = sectionExternal
		case sectionInternal:
			if section == sectionExternal && !blankAfterExternal {
				violations = append(violations, violation(r, file, line,
					"missing blank line before internal imports"))
			}

			section = sectionInternal
		}

		// A use statement spread over multiple lines counts as one import
		// of its section.
		if open := braceDelta(trimmed); open > 0 {
			for line < end && open > 0 {
				line++
				open += braceDelta(file.Lines[line-1])
			}
		}
	}

	return violations
}

func classifyImport(trimmed string) importSection {
	rest := strings.TrimPrefix(trimmed, "use ")

	switch {
	case hasAnyPrefix(rest, "std::", "core::", "alloc::"):
		return sectionStd
	case hasAnyPrefix(rest, "crate::", "self::", "super::"):
		return sectionInternal
	default:
		return sectionExternal
	}
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return false
}

func braceDelta(line string) int {
	return strings.Count(line, "{") - strings.Count(line, "}")
}

// topLevelImportStart finds the first use line that sits outside any block,
// so imports inside named blocks are checked once, in their own region.
func topLevelImportStart(file m.SourceFile, scan m.FileScan) (int, bool) {
	for i, raw := range file.Lines {
		if !strings.HasPrefix(strings.TrimSpace(raw), "use ") {
			continue
		}

		if span, ok := scan.SpanAt(i + 1); !ok || span.Kind == m.ScopeTopLevel {
			return i + 1, true
		}
	}

	return 0, false
}

func importStart(file m.SourceFile, from, to int) (int, bool) {
	for line := from; line <= to; line++ {
		if strings.HasPrefix(strings.TrimSpace(file.Lines[line-1]), "use ") {
			return line, true
		}
	}

	return 0, false
}
