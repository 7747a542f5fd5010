package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/rs/zerolog"

	m "github.com/redress-dev/redress/internal/model"
)

// Reverter restores a file to its last committed content.
type Reverter interface {
	Revert(path m.Path) error
}

// GitReverter rewrites a worktree file from the blob recorded at HEAD,
// locating the repository by walking up from the file.
type GitReverter struct {
	log zerolog.Logger
}

// NewGitReverter constructs a GitReverter logging through the given logger.
func NewGitReverter(log zerolog.Logger) *GitReverter {
	return &GitReverter{log: log}
}

// Revert replaces path with its HEAD content.
func (r *GitReverter) Revert(path m.Path) error {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return fmt.Errorf("failed to open repository for %s: %w", path, err)
	}

	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return fmt.Errorf("failed to load HEAD commit: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}

	rel, err := filepath.Rel(worktree.Filesystem.Root(), abs)
	if err != nil {
		return fmt.Errorf("failed to relativize %s: %w", path, err)
	}

	rel = filepath.ToSlash(rel)

	tree, err := commit.Tree()
	if err != nil {
		return fmt.Errorf("failed to load HEAD tree: %w", err)
	}

	blob, err := tree.File(rel)
	if err != nil {
		return fmt.Errorf("failed to find %s at HEAD: %w", rel, err)
	}

	content, err := blob.Contents()
	if err != nil {
		return fmt.Errorf("failed to read %s at HEAD: %w", rel, err)
	}

	if err := os.WriteFile(abs, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to restore %s: %w", path, err)
	}

	r.log.Debug().Str("path", rel).Msg("restored file from HEAD")

	return nil
}
