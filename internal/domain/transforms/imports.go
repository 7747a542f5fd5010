package transforms

import (
	"strings"

	m "github.com/redress-dev/redress/internal/model"
)

type sortImports struct{}

// NewSortImports returns the transform that regroups the file-level import
// region into std, external and crate-internal sections separated by blank
// lines. Order within a section is preserved as written.
func NewSortImports() Transform {
	return sortImports{}
}

func (sortImports) ID() string {
	return "sort-imports"
}

func (sortImports) Description() string {
	return "regroup top-level imports into std, external and internal sections"
}

func (sortImports) Fixes() []string {
	return []string{"import-order"}
}

func (t sortImports) Detect(file m.SourceFile) int {
	region, ok := findImportRegion(file)
	if !ok {
		return 0
	}

	return changedLines(file.Lines[region.start-1:region.end], regroupImports(file, region))
}

func (t sortImports) Apply(file m.SourceFile) ([]byte, error) {
	region, ok := findImportRegion(file)
	if !ok {
		return file.Content, nil
	}

	rebuilt := regroupImports(file, region)
	if changedLines(file.Lines[region.start-1:region.end], rebuilt) == 0 {
		return file.Content, nil
	}

	var lines []string

	lines = append(lines, file.Lines[:region.start-1]...)
	lines = append(lines, rebuilt...)
	lines = append(lines, file.Lines[region.end:]...)

	return rebuild(file, lines), nil
}

type importRegion struct {
	start int
	end   int
}

// findImportRegion locates the contiguous run of file-level use statements
// starting at the first one. The region ends at the first line that is neither
// a use statement nor blank, so comments and code after the imports are never
// rewritten. A use statement spanning multiple lines makes the whole file
// ineligible rather than risking a truncated rewrite.
func findImportRegion(file m.SourceFile) (importRegion, bool) {
	start := 0

	for i, raw := range file.Lines {
		if strings.HasPrefix(strings.TrimSpace(raw), "use ") {
			start = i + 1

			break
		}
	}

	if start == 0 {
		return importRegion{}, false
	}

	end := start

	for line := start; line <= len(file.Lines); line++ {
		trimmed := strings.TrimSpace(file.Lines[line-1])

		switch {
		case strings.HasPrefix(trimmed, "use "):
			if braceDelta(trimmed) != 0 {
				return importRegion{}, false
			}

			end = line
		case trimmed == "":
			continue
		default:
			return importRegion{start: start, end: end}, true
		}
	}

	return importRegion{start: start, end: end}, true
}

// regroupImports rebuilds the region as std, external, internal with a blank
// line between non-empty sections. Blank lines inside the original region are
// dropped and re-derived from the section layout.
func regroupImports(file m.SourceFile, region importRegion) []string {
	var std, external, internal []string

	for line := region.start; line <= region.end; line++ {
		raw := file.Lines[line-1]

		trimmed := strings.TrimSpace(raw)
		if !strings.HasPrefix(trimmed, "use ") {
			continue
		}

		path := strings.TrimPrefix(trimmed, "use ")

		switch {
		case hasAnyPrefix(path, "std::", "core::", "alloc::"):
			std = append(std, raw)
		case hasAnyPrefix(path, "crate::", "self::", "super::"):
			internal = append(internal, raw)
		default:
			external = append(external, raw)
		}
	}

	var out []string

	out = append(out, std...)
	if len(std) > 0 && len(external)+len(internal) > 0 {
		out = append(out, "")
	}

	out = append(out, external...)
	if len(external) > 0 && len(internal) > 0 {
		out = append(out, "")
	}

	return append(out, internal...)
}

func changedLines(current, rebuilt []string) int {
	changed := 0

	for i := 0; i < len(current) || i < len(rebuilt); i++ {
		var a, b string

		if i < len(current) {
			a = current[i]
		}

		if i < len(rebuilt) {
			b = rebuilt[i]
		}

		if a != b {
			changed++
		}
	}

	return changed
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return false
}
