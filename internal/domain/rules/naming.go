package rules

import (
	"fmt"
	"path/filepath"
	"regexp"

	m "github.com/redress-dev/redress/internal/model"
)

// fileNaming checks source file base names against the profile's naming
// pattern. Entry files such as lib.rs and main.rs are exempt.
type fileNaming struct {
	entryFiles []string
	pattern    *regexp.Regexp
}

// NewFileNaming creates the file-naming rule from the profile. The profile's
// pattern must be a valid regular expression; configuration loading validates
// it before the catalogue is built.
func NewFileNaming(profile m.Profile) Rule {
	return fileNaming{
		entryFiles: profile.EntryFiles,
		pattern:    regexp.MustCompile(profile.FilePattern),
	}
}

func (r fileNaming) ID() string { return "file-naming" }

func (r fileNaming) Severity() m.Severity { return m.SeverityHard }

func (r fileNaming) Description() string {
	return "source file names match the configured naming pattern"
}

func (r fileNaming) Check(file m.SourceFile, _ m.FileScan) []m.Violation {
	base := filepath.Base(string(file.Path))

	if isEntryFile(base, r.entryFiles) {
		return nil
	}

	if r.pattern.MatchString(base) {
		return nil
	}

	return []m.Violation{violation(r, file, 0,
		fmt.Sprintf("file name %q does not match %s", base, r.pattern.String()))}
}

func isEntryFile(base string, entryFiles []string) bool {
	for _, name := range entryFiles {
		if base == name {
			return true
		}
	}

	return false
}

func baseName(path m.Path) string {
	return filepath.Base(string(path))
}
