package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	m "github.com/redress-dev/redress/internal/model"
)

var (
	// inherentImplPattern matches `impl<T> TypeName<T> {` style headers.
	// Trait implementations carry ` for ` and are excluded separately.
	inherentImplPattern = regexp.MustCompile(`^\s*impl(?:<[^>]+>)?\s+(\w+)(?:<[^>]*>)?\s*(?:where\s+|\{)`)

	// traitImplPattern matches `impl<T> TraitName<T> for TypeName<T>` headers.
	traitImplPattern = regexp.MustCompile(`^\s*impl(?:<[^>]+>)?\s+(\w+)(?:<[^>]*>)?\s+for\s+(\w+)`)
)

// standardTraits are the library traits whose implementations never count
// against the dual-impl rule.
var standardTraits = map[string]struct{}{
	"Debug": {}, "Clone": {}, "Copy": {}, "PartialEq": {}, "Eq": {},
	"PartialOrd": {}, "Ord": {}, "Hash": {}, "Display": {}, "Default": {},
	"From": {}, "Into": {}, "AsRef": {}, "AsMut": {}, "Deref": {},
	"DerefMut": {}, "Drop": {}, "Iterator": {}, "IntoIterator": {},
	"Send": {}, "Sync": {}, "Sized": {}, "Unpin": {},
}

// dualImpl flags types that carry both an inherent implementation block and
// at least one non-standard trait implementation in the same file.
type dualImpl struct{}

// NewDualImpl creates the dual-impl rule.
func NewDualImpl() Rule {
	return dualImpl{}
}

func (r dualImpl) ID() string { return "dual-impl" }

func (r dualImpl) Severity() m.Severity { return m.SeverityHard }

func (r dualImpl) Description() string {
	return "types implement traits or inherent methods, never both"
}

func (r dualImpl) Check(file m.SourceFile, _ m.FileScan) []m.Violation {
	type implRecord struct {
		inherent []int
		traits   map[string]struct{}
	}

	records := map[string]*implRecord{}

	record := func(name string) *implRecord {
		entry, ok := records[name]
		if !ok {
			entry = &implRecord{traits: map[string]struct{}{}}
			records[name] = entry
		}

		return entry
	}

	for i, raw := range file.Lines {
		if match := inherentImplPattern.FindStringSubmatch(raw); match != nil && !strings.Contains(raw, " for ") {
			entry := record(match[1])
			entry.inherent = append(entry.inherent, i+1)

			continue
		}

		if match := traitImplPattern.FindStringSubmatch(raw); match != nil {
			if _, standard := standardTraits[match[1]]; standard {
				continue
			}

			record(match[2]).traits[match[1]] = struct{}{}
		}
	}

	var violations []m.Violation

	for name, entry := range records {
		if len(entry.inherent) == 0 || len(entry.traits) == 0 {
			continue
		}

		traits := make([]string, 0, len(entry.traits))
		for trait := range entry.traits {
			traits = append(traits, trait)
		}

		sort.Strings(traits)

		violations = append(violations, violation(r, file, entry.inherent[0],
			fmt.Sprintf("type %s has both inherent and trait implementations (%s)",
				name, strings.Join(traits, ", "))))
	}

	sort.Slice(violations, func(i, j int) bool { return violations[i].Line < violations[j].Line })

	return violations
}

// methodPattern matches a method header and captures its name. The opening
// brace must sit on the same line for the method to be measured.
var methodPattern = regexp.MustCompile(
	`^(?:[a-z]+(?:\([^)]*\))?\s+|"[^"]*"\s+)*fn\s+([A-Za-z_][A-Za-z0-9_]*)`)

// implMethodLength budgets the line count of methods declared directly inside
// implementation blocks.
type implMethodLength struct {
	budget int
}

// NewImplMethodLength creates the impl-method-length rule with the given
// line budget.
func NewImplMethodLength(budget int) Rule {
	return implMethodLength{budget: budget}
}

func (r implMethodLength) ID() string { return "impl-method-length" }

func (r implMethodLength) Severity() m.Severity { return m.SeverityAdvisory }

func (r implMethodLength) Description() string {
	return "methods stay within the configured line budget"
}

func (r implMethodLength) Check(file m.SourceFile, scan m.FileScan) []m.Violation {
	if r.budget <= 0 {
		return nil
	}

	var violations []m.Violation

	for _, span := range scan.Spans {
		if span.Kind != m.ScopeImpl {
			continue
		}

		for line := span.StartLine; line <= span.EndLine; line++ {
			if scan.DepthAt(line) != span.Depth {
				continue
			}

			match := methodPattern.FindStringSubmatch(strings.TrimSpace(file.Lines[line-1]))
			if match == nil {
				continue
			}

			end := line + 1
			for end <= len(file.Lines) && scan.DepthAt(end) > span.Depth {
				end++
			}

			if length := end - line; length > r.budget {
				violations = append(violations, violation(r, file, line,
					fmt.Sprintf("method %s is %d lines long (budget %d)", match[1], length, r.budget)))
			}
		}
	}

	return violations
}
