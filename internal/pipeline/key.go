// Copyright 2026 The Textinfo Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"strconv"
	"strings"
)

// cacheKey identifies a compiled pattern set. Plain-text highlighting and
// the tags take part because both change the profile or expression shape.
// Strings are quoted so that joining fields with NUL bytes stays unambiguous.
func cacheKey(languageID string, opts Options) string {
	fields := []string{
		strconv.Quote(languageID),
		strconv.FormatBool(opts.MultilineComments),
		strconv.FormatBool(opts.HighlightPlainText),
		strconv.FormatBool(opts.UseJSDocStyle),
	}
	for _, tag := range normalizeTags(opts.Tags) {
		fields = append(fields, strconv.Quote(tag))
	}
	return strings.Join(fields, "\x00")
}

// normalizeTags drops empty tags and repeated tags, keeping first-seen
// order. Matching is case-insensitive, so "TODO" repeats "todo".
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		folded := strings.ToLower(tag)
		if _, ok := seen[folded]; ok {
			continue
		}
		seen[folded] = struct{}{}
		out = append(out, tag)
	}
	return out
}
