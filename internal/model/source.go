// Package model defines the data structures for convention review and remediation.
package model

import "strings"

// Path represents a file system path.
type Path string

// SourceFile is a read-only snapshot of one file under review, taken at scan
// time. Suite execution never mutates it.
type SourceFile struct {
	Path    Path
	Content []byte
	Lines   []string
}

// NewSourceFile snapshots raw file content into a SourceFile, splitting it
// into lines. A trailing newline does not produce a phantom empty last line.
func NewSourceFile(path Path, content []byte) SourceFile {
	text := string(content)
	text = strings.TrimSuffix(text, "\n")

	var lines []string
	if text != "" || len(content) > 0 {
		lines = strings.Split(text, "\n")
	}

	return SourceFile{
		Path:    path,
		Content: content,
		Lines:   lines,
	}
}

// ScopeKind classifies the innermost structural context of a line.
type ScopeKind string

const (
	// ScopeTopLevel covers lines outside any recognized block.
	ScopeTopLevel ScopeKind = "top-level"

	// ScopeBlock covers lines inside a named module/namespace-like block.
	ScopeBlock ScopeKind = "block"

	// ScopeImpl covers lines inside a type-implementation-like block.
	ScopeImpl ScopeKind = "impl"
)

// ScopeSpan is a contiguous run of lines sharing one structural context.
// Spans for one file partition it: they are ordered by StartLine, never
// overlap, and every line belongs to exactly one span. Line numbers are
// 1-based and inclusive.
type ScopeSpan struct {
	Kind      ScopeKind
	Name      string // block/type name captured from the opening marker, if any
	StartLine int
	EndLine   int
	Depth     int // brace nesting depth of the span's lines
}

// Contains reports whether the span covers the given 1-based line.
func (s ScopeSpan) Contains(line int) bool {
	return line >= s.StartLine && line <= s.EndLine
}

// FileScan is the scope tracker's classification of one file: the innermost
// scope spans plus the brace depth at the start of every line. Rules receive
// it immutably and share one FileScan per file per run.
type FileScan struct {
	Spans  []ScopeSpan
	Depths []int // Depths[i] is the depth at the start of line i+1
}

// SpanAt returns the span covering the given 1-based line.
func (fs FileScan) SpanAt(line int) (ScopeSpan, bool) {
	for _, span := range fs.Spans {
		if span.Contains(line) {
			return span, true
		}
	}

	return ScopeSpan{}, false
}

// DepthAt returns the brace depth at the start of the given 1-based line.
func (fs FileScan) DepthAt(line int) int {
	if line < 1 || line > len(fs.Depths) {
		return 0
	}

	return fs.Depths[line-1]
}
