// Package domain contains the core review, suite, and remediation logic.
package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "github.com/redress-dev/redress/internal/model"
)

// Scanner classifies file lines by their innermost structural scope using
// textual delimiter counting. It is a heuristic, not a lexer: braces inside
// unrecognized literal forms can miscount, which yields a wrong classification
// rather than an error.
type Scanner struct {
	profile  m.Profile
	markers  []markerPattern
	comments []string
}

type markerPattern struct {
	kind m.ScopeKind
	re   *regexp.Regexp
}

// openScope is one entry of the scanner's scope stack.
type openScope struct {
	id        int
	kind      m.ScopeKind
	name      string
	startLine int
	openDepth int  // depth recorded when the scope's marker line was seen
	active    bool // true once the opening brace has been counted
}

// NewScanner compiles the profile's scope markers. Marker lines look like
// `mod name {`, optionally prefixed with modifier words such as `pub` or
// `unsafe`, with the brace allowed on a later line.
func NewScanner(profile m.Profile) *Scanner {
	s := &Scanner{profile: profile, comments: profile.CommentPrefixes}

	for _, marker := range profile.BlockMarkers {
		s.markers = append(s.markers, markerPattern{kind: m.ScopeBlock, re: compileMarker(marker)})
	}

	for _, marker := range profile.ImplMarkers {
		s.markers = append(s.markers, markerPattern{kind: m.ScopeImpl, re: compileMarker(marker)})
	}

	return s
}

func compileMarker(keyword string) *regexp.Regexp {
	// Modifier words with optional parenthesized arguments, the keyword,
	// optional generics, then a best-effort name capture.
	pattern := fmt.Sprintf(
		`^\s*(?:[a-z]+(?:\([^)]*\))?\s+)*%s\b\s*(?:<[^>{]*>\s*)?([A-Za-z_][A-Za-z0-9_]*)?`,
		regexp.QuoteMeta(keyword),
	)

	return regexp.MustCompile(pattern)
}

// Scan classifies every line of the file. The returned spans partition the
// file: ordered by start line, non-overlapping, every line covered, each span
// naming the innermost marker scope of its lines. Depths records the brace
// depth at the start of every line.
func (s *Scanner) Scan(file m.SourceFile) m.FileScan {
	depths := make([]int, len(file.Lines))
	scopeIDs := make([]int, len(file.Lines)) // 0 = top level
	scopes := map[int]*openScope{}

	var stack []*openScope

	depth := 0
	nextID := 1
	inBlockComment := false

	for i, line := range file.Lines {
		depths[i] = depth

		code, stillInComment := s.stripLine(line, inBlockComment)
		inBlockComment = stillInComment

		if strings.TrimSpace(code) == "" {
			scopeIDs[i] = currentScopeID(stack)
			continue
		}

		// Pending scopes cancel when a terminator arrives before the brace,
		// as in `mod name;` split across lines.
		if top := peek(stack); top != nil && !top.active {
			if idx := strings.IndexAny(code, ";{"); idx >= 0 && code[idx] == ';' && i > top.startLine-1 {
				stack = stack[:len(stack)-1]
			}
		}

		if kind, name, ok := s.matchMarker(code); ok {
			if !declarationOnly(code) {
				// A marker arriving while another is still pending means the
				// pending one never opened a block. Drop it.
				if top := peek(stack); top != nil && !top.active {
					stack = stack[:len(stack)-1]
				}

				scope := &openScope{
					id:        nextID,
					kind:      kind,
					name:      name,
					startLine: i + 1,
					openDepth: depth,
				}
				nextID++
				scopes[scope.id] = scope
				stack = append(stack, scope)
			}
		}

		scopeIDs[i] = currentScopeID(stack)

		for _, ch := range code {
			switch ch {
			case '{':
				if top := peek(stack); top != nil && !top.active {
					top.active = true
					top.openDepth = depth
				}

				depth++
			case '}':
				depth--

				for {
					top := peek(stack)
					if top == nil || !top.active || depth > top.openDepth {
						break
					}

					stack = stack[:len(stack)-1]
				}
			}
		}

		if depth < 0 {
			depth = 0
		}
	}

	return m.FileScan{
		Spans:  buildSpans(scopeIDs, scopes),
		Depths: depths,
	}
}

// stripLine removes comment and string literal text so only structural
// characters are counted. Comment-prefixed lines are dropped entirely.
func (s *Scanner) stripLine(line string, inBlockComment bool) (string, bool) {
	if inBlockComment {
		if idx := strings.Index(line, "*/"); idx >= 0 {
			return s.stripCode(line[idx+2:]), false
		}

		return "", true
	}

	trimmed := strings.TrimSpace(line)
	for _, prefix := range s.comments {
		if strings.HasPrefix(trimmed, prefix) {
			if prefix == "/*" && !strings.Contains(trimmed, "*/") {
				return "", true
			}

			return "", false
		}
	}

	code := s.stripCode(line)
	if idx := strings.Index(code, "/*"); idx >= 0 {
		rest := code[idx:]
		if end := strings.Index(rest, "*/"); end >= 0 {
			return code[:idx] + rest[end+2:], false
		}

		return code[:idx], true
	}

	return code, false
}

var (
	stringLit   = regexp.MustCompile(`"(?:\\.|[^"\\])*"`)
	charLit     = regexp.MustCompile(`'(?:\\.|[^'\\])'`)
	lineComment = regexp.MustCompile(`//.*$`)
)

func (s *Scanner) stripCode(line string) string {
	line = charLit.ReplaceAllString(line, "''")
	line = stringLit.ReplaceAllString(line, `""`)
	line = lineComment.ReplaceAllString(line, "")

	return line
}

func (s *Scanner) matchMarker(code string) (m.ScopeKind, string, bool) {
	for _, marker := range s.markers {
		groups := marker.re.FindStringSubmatch(code)
		if groups == nil {
			continue
		}

		return marker.kind, groups[1], true
	}

	return "", "", false
}

// declarationOnly reports whether a marker line terminates without opening a
// block, as in `mod name;`.
func declarationOnly(code string) bool {
	idx := strings.IndexAny(code, ";{")

	return idx >= 0 && code[idx] == ';'
}

func peek(stack []*openScope) *openScope {
	if len(stack) == 0 {
		return nil
	}

	return stack[len(stack)-1]
}

func currentScopeID(stack []*openScope) int {
	if top := peek(stack); top != nil {
		return top.id
	}

	return 0
}

// buildSpans folds the per-line scope assignment into maximal contiguous
// spans. A scope interrupted by a nested scope contributes one span per
// contiguous piece.
func buildSpans(scopeIDs []int, scopes map[int]*openScope) []m.ScopeSpan {
	var spans []m.ScopeSpan

	for i := 0; i < len(scopeIDs); {
		j := i
		for j < len(scopeIDs) && scopeIDs[j] == scopeIDs[i] {
			j++
		}

		span := m.ScopeSpan{
			Kind:      m.ScopeTopLevel,
			StartLine: i + 1,
			EndLine:   j,
		}

		if scope, ok := scopes[scopeIDs[i]]; ok {
			span.Kind = scope.kind
			span.Name = scope.name
			span.Depth = scope.openDepth + 1
		}

		spans = append(spans, span)
		i = j
	}

	return spans
}
