package domain

import (
	"strings"

	m "github.com/redress-dev/redress/internal/model"
)

// allowRule records which rule ids a directive suppresses.
type allowRule struct {
	all bool
	ids map[string]struct{}
}

func (r allowRule) allows(ruleID string) bool {
	if r.all {
		return true
	}

	if len(r.ids) == 0 {
		return false
	}

	_, ok := r.ids[strings.ToLower(ruleID)]

	return ok
}

func mergeAllowRule(dst *allowRule, src allowRule) {
	if src.all {
		dst.all = true
		dst.ids = nil

		return
	}

	if dst.all || len(src.ids) == 0 {
		return
	}

	if dst.ids == nil {
		dst.ids = make(map[string]struct{}, len(src.ids))
	}

	for id := range src.ids {
		dst.ids[id] = struct{}{}
	}
}

// parseAllowDirective reads a `redress:allow` directive out of one comment.
// A bare directive suppresses every rule; a comma-separated list suppresses
// only the named ids.
func parseAllowDirective(comment string) (allowRule, bool) {
	s := strings.TrimSpace(comment)

	idx := strings.Index(s, "redress:allow")
	if idx < 0 {
		return allowRule{}, false
	}

	rest := strings.TrimSpace(s[idx+len("redress:allow"):])
	rest = strings.TrimSuffix(rest, "*/")

	if rest == "" {
		return allowRule{all: true}, true
	}

	parts := strings.Split(rest, ",")
	rule := allowRule{ids: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		id := strings.ToLower(strings.TrimSpace(part))
		if id == "" {
			continue
		}

		rule.ids[id] = struct{}{}
	}

	if len(rule.ids) == 0 {
		rule.all = true
		rule.ids = nil
	}

	return rule, true
}

// allowIndex maps suppression directives onto the lines they cover.
type allowIndex struct {
	file allowRule
	line map[int]allowRule
}

func (idx allowIndex) allows(ruleID string, line int) bool {
	if idx.file.allows(ruleID) {
		return true
	}

	rule, ok := idx.line[line]

	return ok && rule.allows(ruleID)
}

// buildAllowIndex collects directives from the file's comments. A directive
// standing alone on a comment line covers the following line; a trailing
// comment covers its own line. Directives in the leading comment block, before
// any code, cover the whole file.
func buildAllowIndex(file m.SourceFile, profile m.Profile) allowIndex {
	idx := allowIndex{line: map[int]allowRule{}}
	leading := true

	for i, raw := range file.Lines {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}

		commentOnly := hasCommentPrefix(trimmed, profile.CommentPrefixes)
		if !commentOnly {
			leading = false
		}

		comment := trailingComment(trimmed, commentOnly)
		if comment == "" {
			continue
		}

		rule, ok := parseAllowDirective(comment)
		if !ok {
			continue
		}

		switch {
		case leading:
			mergeAllowRule(&idx.file, rule)
		case commentOnly:
			target := i + 2
			current := idx.line[target]
			mergeAllowRule(&current, rule)
			idx.line[target] = current
		default:
			current := idx.line[i+1]
			mergeAllowRule(&current, rule)
			idx.line[i+1] = current
		}
	}

	return idx
}

func hasCommentPrefix(trimmed string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	return false
}

// trailingComment extracts the comment text of a line: the whole line for
// comment-only lines, otherwise the trailing line comment, if any.
func trailingComment(trimmed string, commentOnly bool) string {
	if commentOnly {
		return trimmed
	}

	if idx := strings.Index(trimmed, "//"); idx >= 0 {
		return trimmed[idx:]
	}

	return ""
}
