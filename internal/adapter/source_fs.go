// Package adapter contains filesystem, process and persistence adapters for the redress CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	m "github.com/redress-dev/redress/internal/model"
)

// SourceFS abstracts the filesystem operations the domain layer relies on when
// reviewing user projects. It hides direct os access so workflow logic can be
// tested without touching the disk.
type SourceFS interface {
	// Discover returns every file under root matched by the include globs and
	// not matched by the exclude globs, sorted by path.
	Discover(root m.Path, include, exclude []string) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the contents of a source file.
	WriteFile(path m.Path, content []byte) error
}

// LocalSourceFS is the os-backed SourceFS implementation.
type LocalSourceFS struct{}

// NewLocalSourceFS constructs a LocalSourceFS ready to be wired into the
// workflow.
func NewLocalSourceFS() *LocalSourceFS {
	return &LocalSourceFS{}
}

// Discover walks root and filters files through the profile globs. Paths are
// returned as given, root prefix included, in sorted order.
func (a *LocalSourceFS) Discover(root m.Path, include, exclude []string) ([]m.Path, error) {
	includes, err := compileGlobs(include)
	if err != nil {
		return nil, err
	}

	excludes, err := compileGlobs(exclude)
	if err != nil {
		return nil, err
	}

	var paths []m.Path

	err = filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if filepath.Base(path) == ".git" || matchAny(excludes, filepath.ToSlash(path)+"/") {
				return filepath.SkipDir
			}

			return nil
		}

		slashed := filepath.ToSlash(path)
		if matchAny(includes, slashed) && !matchAny(excludes, slashed) {
			paths = append(paths, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFS) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile replaces the contents of a source file. Existing permission bits
// are kept.
func (a *LocalSourceFS) WriteFile(path m.Path, content []byte) error {
	return os.WriteFile(string(path), content, 0o600)
}

// compileGlobs compiles patterns with / as the separator. A pattern starting
// with **/ additionally matches at the top level, so **/*.rs covers a file
// sitting directly under the walked root.
func compileGlobs(patterns []string) ([]glob.Glob, error) {
	var globs []glob.Glob

	for _, pattern := range patterns {
		compiled, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("failed to compile glob %q: %w", pattern, err)
		}

		globs = append(globs, compiled)

		if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
			topLevel, err := glob.Compile(rest, '/')
			if err != nil {
				return nil, fmt.Errorf("failed to compile glob %q: %w", rest, err)
			}

			globs = append(globs, topLevel)
		}
	}

	return globs, nil
}

func matchAny(globs []glob.Glob, path string) bool {
	for _, g := range globs {
		if g.Match(path) {
			return true
		}
	}

	return false
}
