// Copyright 2026 The Textinfo Authors
// SPDX-License-Identifier: MIT

package extract

import (
	"iter"
	"regexp"
	"slices"

	"github.com/davetashner/textinfo/internal/document"
	"github.com/davetashner/textinfo/internal/pattern"
)

// Scan yields the comment spans of doc in pass order: single-line, block,
// then doc-style. Passes are independent and their spans may overlap.
// Matching is lazy; stopping the range early stops scanning.
func Scan(doc *document.Document, set *pattern.Set) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		if set.Empty() {
			return
		}
		if set.SingleLine != nil {
			if !scanSingleLine(doc, set, yield) {
				return
			}
		}
		if set.Block != nil {
			if !scanBlock(doc, set.Block, Block, yield) {
				return
			}
		}
		if set.Doc != nil {
			scanBlock(doc, set.Doc, DocBlock, yield)
		}
	}
}

// Extract collects Scan into a slice.
func Extract(doc *document.Document, set *pattern.Set) []Span {
	return slices.Collect(Scan(doc, set))
}

// scanSingleLine reports the text after the delimiter and tag through the
// end of the line. The span's line is the delimiter's line.
func scanSingleLine(doc *document.Document, set *pattern.Set, yield func(Span) bool) bool {
	text := doc.Text()
	for _, loc := range set.SingleLine.FindAllStringSubmatchIndex(text, -1) {
		matchStart, matchEnd := loc[0], loc[1]
		if set.IgnoreFirstLine && matchStart == 0 {
			continue
		}

		contentStart := groupStart(loc, pattern.GroupTail, matchEnd)
		if contentStart >= matchEnd {
			continue
		}

		span := Span{
			Kind:  SingleLine,
			Start: contentStart,
			End:   matchEnd,
			Line:  doc.PositionAt(matchStart).Line,
			Text:  text[contentStart:matchEnd],
		}
		if !yield(span) {
			return false
		}
	}
	return true
}

// scanBlock reports the body between the opening and closing delimiters.
// The span's line is the line the block opens on.
func scanBlock(doc *document.Document, re *regexp.Regexp, kind Kind, yield func(Span) bool) bool {
	text := doc.Text()
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		contentStart := groupStart(loc, pattern.GroupBody, loc[1])
		contentEnd := groupStart(loc, pattern.GroupTail, loc[1])
		if contentStart >= contentEnd {
			continue
		}

		span := Span{
			Kind:  kind,
			Start: contentStart,
			End:   contentEnd,
			Line:  doc.PositionAt(loc[0]).Line,
			Text:  text[contentStart:contentEnd],
		}
		if !yield(span) {
			return false
		}
	}
	return true
}

// groupStart returns the start offset of a capture group, or fallback when
// the group did not participate.
func groupStart(loc []int, group, fallback int) int {
	if 2*group >= len(loc) || loc[2*group] < 0 {
		return fallback
	}
	return loc[2*group]
}
