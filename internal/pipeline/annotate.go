// Copyright 2026 The Textinfo Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"github.com/davetashner/textinfo/internal/extract"
	"github.com/davetashner/textinfo/internal/grade"
	"github.com/davetashner/textinfo/internal/readability"
)

// Annotate builds one grade note per comment whose combined grade is
// positive, anchored at the line the comment starts on. spans and stats are
// parallel slices.
func Annotate(spans []extract.Span, stats []readability.Stats) []grade.Annotation {
	notes := make([]grade.Annotation, 0, len(spans))
	for i, span := range spans {
		if i >= len(stats) {
			break
		}
		if note, ok := grade.Annotate(span.Line, stats[i].Median()); ok {
			notes = append(notes, note)
		}
	}
	return notes
}
