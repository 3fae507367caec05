package source

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitRevision returns a snapshot of every matching text blob in the tree of
// rev, read from the repository containing repoPath. The working tree is
// never consulted, so the result is frozen at that commit. Paths are
// relative to the repository root.
func GitRevision(ctx context.Context, repoPath, rev string, filter Filter) ([]Doc, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	repo, err := Git.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", repoPath, err)
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolve revision %q: %w", rev, err)
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("read commit %s: %w", hash, err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("read tree of %s: %w", hash, err)
	}

	var docs []Doc
	err = tree.Files().ForEach(func(f *object.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !f.Mode.IsFile() || !filter.Match(f.Name) {
			return nil
		}
		id := filter.languageFor(f.Name)
		if id == "" || f.Size > filter.maxSize() {
			return nil
		}

		doc := Doc{Path: f.Name, LanguageID: id}
		binary, err := f.IsBinary()
		if err != nil {
			doc.Err = err
			docs = append(docs, doc)
			return nil
		}
		if binary {
			return nil
		}
		if doc.Text, err = f.Contents(); err != nil {
			doc.Err = err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("walk tree of %s: %w", hash, err)
	}
	return docs, nil
}
