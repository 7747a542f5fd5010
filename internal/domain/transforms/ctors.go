package transforms

import (
	"regexp"
	"strings"
	"unicode/utf8"

	m "github.com/redress-dev/redress/internal/model"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

type compressCtors struct {
	budget int
}

// NewCompressCtors returns the transform that collapses short constructor
// methods onto a single line when the result fits the line budget. Candidates
// are methods whose body ends in a Self literal and closes within a handful of
// lines.
func NewCompressCtors(budget int) Transform {
	return compressCtors{budget: budget}
}

func (compressCtors) ID() string {
	return "compress-ctors"
}

func (compressCtors) Description() string {
	return "collapse trivial constructors onto a single line"
}

func (compressCtors) Fixes() []string {
	return nil
}

func (t compressCtors) Detect(file m.SourceFile) int {
	_, count := t.compress(file)

	return count
}

func (t compressCtors) Apply(file m.SourceFile) ([]byte, error) {
	lines, count := t.compress(file)
	if count == 0 {
		return file.Content, nil
	}

	return rebuild(file, lines), nil
}

func (t compressCtors) compress(file m.SourceFile) ([]string, int) {
	var out []string

	count := 0
	i := 0

	for i < len(file.Lines) {
		line := file.Lines[i]

		if !ctorHeader(line) {
			out = append(out, line)
			i++

			continue
		}

		// Collect the method body until its braces balance, giving up a few
		// lines in so long methods stay untouched.
		start := i
		method := []string{line}
		braces := braceDelta(line)
		j := i + 1

		for j < len(file.Lines) && braces > 0 {
			method = append(method, file.Lines[j])
			braces += braceDelta(file.Lines[j])
			j++

			if j-start > 5 {
				break
			}
		}

		collapsed := whitespaceRun.ReplaceAllString(strings.TrimSpace(strings.Join(method, "\n")), " ")
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

		if braces == 0 && strings.Contains(collapsed, "Self {") &&
			utf8.RuneCountInString(indent+collapsed) <= t.budget {
			out = append(out, indent+collapsed)
			count++
		} else {
			out = append(out, method...)
		}

		i = j
	}

	return out, count
}

// ctorHeader matches a method signature with a return type whose opening brace
// sits on the same line.
func ctorHeader(line string) bool {
	return strings.Contains(line, "fn ") &&
		strings.Contains(line, "->") &&
		strings.HasSuffix(strings.TrimRight(line, " \t"), "{")
}
