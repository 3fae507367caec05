package testable

import (
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// MockGitOpener returns Repo or OpenErr and records every path it is asked
// to open.
type MockGitOpener struct {
	Repo      GitRepository
	OpenErr   error
	OpenCalls []string
}

func (m *MockGitOpener) PlainOpen(path string) (GitRepository, error) {
	m.OpenCalls = append(m.OpenCalls, path)
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	if m.Repo == nil {
		return nil, git.ErrRepositoryNotExists
	}
	return m.Repo, nil
}

// MockGitRepository serves revisions and commits from maps.
type MockGitRepository struct {
	// Revisions maps revision strings to commit hashes.
	Revisions map[string]plumbing.Hash
	// ResolveErr is returned for revisions missing from Revisions.
	ResolveErr error

	// Commits maps hashes to commits.
	Commits map[plumbing.Hash]*object.Commit
	// CommitErr is returned for hashes missing from Commits.
	CommitErr error
}

func (m *MockGitRepository) ResolveRevision(rev plumbing.Revision) (*plumbing.Hash, error) {
	if h, ok := m.Revisions[string(rev)]; ok {
		return &h, nil
	}
	if m.ResolveErr != nil {
		return nil, m.ResolveErr
	}
	return nil, plumbing.ErrReferenceNotFound
}

func (m *MockGitRepository) CommitObject(h plumbing.Hash) (*object.Commit, error) {
	if c, ok := m.Commits[h]; ok {
		return c, nil
	}
	if m.CommitErr != nil {
		return nil, m.CommitErr
	}
	return nil, plumbing.ErrObjectNotFound
}

var (
	_ GitOpener     = (*MockGitOpener)(nil)
	_ GitRepository = (*MockGitRepository)(nil)
)
