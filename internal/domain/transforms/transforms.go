// Package transforms provides the source rewrites applied by batch remediation.
package transforms

import (
	"bytes"
	"fmt"
	"strings"

	m "github.com/redress-dev/redress/internal/model"
)

// Transform is one mechanical source rewrite. Detect reports how many fixable
// sites a file carries (zero means not applicable); Apply returns the rewritten
// content without touching the file system.
type Transform interface {
	ID() string
	Description() string
	Fixes() []string
	Detect(file m.SourceFile) int
	Apply(file m.SourceFile) ([]byte, error)
}

// Catalogue returns every built-in transform in registration order. The line
// budget bounds the width of lines produced by collapsing rewrites.
func Catalogue(lineBudget int) []Transform {
	return []Transform{
		NewSortImports(),
		NewCompressCtors(lineBudget),
	}
}

// Select resolves transform ids against the catalogue, keeping catalogue
// order. An empty id list selects everything.
func Select(catalogue []Transform, ids []string) ([]Transform, error) {
	if len(ids) == 0 {
		return catalogue, nil
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var selected []Transform

	for _, transform := range catalogue {
		if wanted[transform.ID()] {
			selected = append(selected, transform)
			delete(wanted, transform.ID())
		}
	}

	for id := range wanted {
		return nil, fmt.Errorf("unknown transform %q", id)
	}

	return selected, nil
}

// rebuild joins rewritten lines back into file content, keeping the original
// trailing-newline shape.
func rebuild(file m.SourceFile, lines []string) []byte {
	text := strings.Join(lines, "\n")

	if bytes.HasSuffix(file.Content, []byte("\n")) {
		text += "\n"
	}

	return []byte(text)
}

func braceDelta(line string) int {
	return strings.Count(line, "{") - strings.Count(line, "}")
}
