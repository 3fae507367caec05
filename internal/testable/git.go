package testable

import (
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitOpener opens repositories. Production code uses RealGitOpener.
type GitOpener interface {
	PlainOpen(path string) (GitRepository, error)
}

// GitRepository is the part of *git.Repository needed to read a frozen
// revision of a tree.
type GitRepository interface {
	ResolveRevision(rev plumbing.Revision) (*plumbing.Hash, error)
	CommitObject(h plumbing.Hash) (*object.Commit, error)
}

// RealGitOpener opens repositories with git.PlainOpenWithOptions, searching
// parent directories for the .git directory.
type RealGitOpener struct{}

func (RealGitOpener) PlainOpen(path string) (GitRepository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// DefaultGitOpener is used wherever no GitOpener is injected.
var DefaultGitOpener GitOpener = RealGitOpener{}

var (
	_ GitOpener     = RealGitOpener{}
	_ GitRepository = (*git.Repository)(nil)
)
