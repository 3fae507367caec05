package source

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
)

// Files walks root and returns a snapshot of every matching text file, in
// lexical path order. Paths are slash-separated and relative to root. When
// root is a file it is returned on its own, with its base name as path.
//
// Unreadable entries become docs with Err set. Binary, oversized and
// unknown-language files are skipped silently.
func Files(ctx context.Context, root string, filter Filter) ([]Doc, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	info, err := FS.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		rel := filepath.Base(root)
		id := filter.languageFor(rel)
		if id == "" {
			return nil, fmt.Errorf("%s: unknown language (use --lang): %w", root, ErrNoDocuments)
		}
		doc, ok := readFile(root, rel, id, filter.maxSize())
		if !ok {
			return nil, fmt.Errorf("%s: binary or too large: %w", root, ErrNoDocuments)
		}
		return []Doc{doc}, nil
	}

	var docs []Doc
	err = FS.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if walkErr != nil {
			if rel != "." {
				docs = append(docs, Doc{Path: rel, Err: walkErr})
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if rel != "." && filter.prune(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !filter.Match(rel) {
			return nil
		}

		id := filter.languageFor(rel)
		if id == "" {
			return nil
		}
		if doc, ok := readFile(p, rel, id, filter.maxSize()); ok {
			docs = append(docs, doc)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return docs, nil
}

// readFile loads one file. ok is false for content that should be skipped.
func readFile(abs, rel, id string, maxSize int64) (Doc, bool) {
	doc := Doc{Path: rel, LanguageID: id}

	info, err := FS.Stat(abs)
	if err != nil {
		doc.Err = err
		return doc, true
	}
	if info.Size() > maxSize {
		return doc, false
	}

	data, err := FS.ReadFile(abs)
	if err != nil {
		doc.Err = err
		return doc, true
	}
	if isBinary(data) {
		return doc, false
	}
	doc.Text = string(data)
	return doc, true
}
