// Package gitrepo provides the minimal git awareness the configuration
// subsystem needs: locating the enclosing repository's working tree (so a
// config file can be discovered at the repo root) and checking branch name
// syntax. It never reads history and never mutates a repository.
package gitrepo

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// FindRoot locates the working tree root of the git repository enclosing
// path, walking upward the way git itself does.
func FindRoot(path string) (string, error) {
	r, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("opening git repository at %s: %w", path, err)
	}

	wt, err := r.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}

	return wt.Filesystem.Root(), nil
}

// ValidBranchName checks that name is syntactically acceptable as a git
// branch name per git-check-ref-format.
func ValidBranchName(name string) error {
	if name == "" {
		return fmt.Errorf("branch name is empty")
	}
	if err := plumbing.NewBranchReferenceName(name).Validate(); err != nil {
		return fmt.Errorf("invalid branch name %q: %w", name, err)
	}
	return nil
}
