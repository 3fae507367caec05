// Copyright 2026 The Textinfo Authors
// SPDX-License-Identifier: MIT

// Package source produces the text snapshots that the pipeline analyses:
// files under a directory, or blobs of a git commit.
package source

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/davetashner/textinfo/internal/language"
	"github.com/davetashner/textinfo/internal/testable"
)

// FS is the file system used by Files. Tests swap it for a mock.
var FS testable.FileSystem = testable.DefaultFS

// Git opens repositories for GitRevision. Tests swap it for a mock.
var Git testable.GitOpener = testable.DefaultGitOpener

// DefaultMaxFileSize skips files larger than 1 MiB.
const DefaultMaxFileSize = 1 << 20

// sniffLen is how many leading bytes are checked for NUL when deciding
// whether content is binary.
const sniffLen = 8000

// ErrNoDocuments is returned when a path selects nothing to analyse.
var ErrNoDocuments = errors.New("no analysable documents")

// defaultExcludedDirs are directory names never descended into.
var defaultExcludedDirs = map[string]bool{
	".git":             true,
	".hg":              true,
	".svn":             true,
	"node_modules":     true,
	"vendor":           true,
	"bower_components": true,
	"third_party":      true,
	"__pycache__":      true,
	".venv":            true,
	"dist":             true,
	"build":            true,
}

// Doc is one text snapshot. Err is set when the document was selected but
// could not be read; Text is empty in that case.
type Doc struct {
	Path       string
	LanguageID string
	Text       string
	Err        error
}

// Filter selects which documents a source yields.
type Filter struct {
	// Include limits documents to paths matching at least one glob.
	Include []string

	// Exclude drops documents matching any glob, in addition to the
	// default excluded directories.
	Exclude []string

	// Languages maps extensions or base names to language ids, ahead of
	// the built-in table.
	Languages map[string]string

	// Language forces one language id for every document. Files of
	// unknown type are kept when it is set.
	Language string

	// MaxFileSize skips larger documents. Zero selects DefaultMaxFileSize.
	MaxFileSize int64
}

// Validate checks every glob.
func (f Filter) Validate() error {
	var errs []error
	for _, p := range append(append([]string{}, f.Include...), f.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			errs = append(errs, fmt.Errorf("invalid glob %q", p))
		}
	}
	return errors.Join(errs...)
}

func (f Filter) maxSize() int64 {
	if f.MaxFileSize > 0 {
		return f.MaxFileSize
	}
	return DefaultMaxFileSize
}

// languageFor returns the language id for rel, or "" to skip the file.
func (f Filter) languageFor(rel string) string {
	if f.Language != "" {
		return f.Language
	}
	return language.Detect(rel, f.Languages)
}

// Match reports whether the slash-separated relative path passes the
// include and exclude globs. Globs without a slash also match the base
// name, so "*.min.js" applies in any directory.
func (f Filter) Match(rel string) bool {
	if excludedDir(rel) || matchesAny(rel, f.Exclude) {
		return false
	}
	return len(f.Include) == 0 || matchesAny(rel, f.Include)
}

// prune reports whether a directory can be skipped entirely.
func (f Filter) prune(rel string) bool {
	if defaultExcludedDirs[path.Base(rel)] {
		return true
	}
	for _, p := range f.Exclude {
		if dir, ok := strings.CutSuffix(p, "/**"); ok {
			if m, _ := doublestar.Match(dir, rel); m {
				return true
			}
		}
	}
	return false
}

func matchesAny(rel string, patterns []string) bool {
	base := path.Base(rel)
	for _, p := range patterns {
		if m, _ := doublestar.Match(p, rel); m {
			return true
		}
		if !strings.Contains(p, "/") {
			if m, _ := doublestar.Match(p, base); m {
				return true
			}
		}
	}
	return false
}

// excludedDir reports whether any directory segment of rel is excluded by
// default.
func excludedDir(rel string) bool {
	dir := path.Dir(rel)
	if dir == "." {
		return false
	}
	for _, seg := range strings.Split(dir, "/") {
		if defaultExcludedDirs[seg] {
			return true
		}
	}
	return false
}

// isBinary reports whether content looks binary: a NUL byte within the
// first sniffLen bytes.
func isBinary(content []byte) bool {
	if len(content) > sniffLen {
		content = content[:sniffLen]
	}
	for _, b := range content {
		if b == 0 {
			return true
		}
	}
	return false
}
