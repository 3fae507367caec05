// Package document provides an immutable text snapshot with offset to
// line/column translation.
package document

import (
	"sort"
	"strings"
)

// Position is a zero-based line and byte column.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Document is a read-only snapshot of a text buffer. The text is held by
// value, so a caller mutating its own buffer later never affects a run that
// is already using the snapshot.
type Document struct {
	text       string
	lineStarts []int
}

// New snapshots text and indexes its line starts.
func New(text string) *Document {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Document{text: text, lineStarts: starts}
}

// Text returns the full snapshot text.
func (d *Document) Text() string { return d.text }

// Len returns the length of the text in bytes.
func (d *Document) Len() int { return len(d.text) }

// LineCount returns the number of lines. An empty document has one line.
func (d *Document) LineCount() int { return len(d.lineStarts) }

// PositionAt translates a byte offset to a position. Offsets outside the
// text are clamped.
func (d *Document) PositionAt(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(d.text) {
		offset = len(d.text)
	}
	line := sort.Search(len(d.lineStarts), func(i int) bool {
		return d.lineStarts[i] > offset
	}) - 1
	return Position{Line: line, Column: offset - d.lineStarts[line]}
}

// OffsetAt translates a position back to a byte offset, clamped to the text.
func (d *Document) OffsetAt(pos Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(d.lineStarts) {
		return len(d.text)
	}
	offset := d.lineStarts[pos.Line] + pos.Column
	if end := d.lineEnd(pos.Line); offset > end {
		offset = end
	}
	return offset
}

// Slice returns text[start:end] with both bounds clamped.
func (d *Document) Slice(start, end int) string {
	start = max(0, min(start, len(d.text)))
	end = max(start, min(end, len(d.text)))
	return d.text[start:end]
}

// Line returns the text of a line without its terminator.
func (d *Document) Line(n int) string {
	if n < 0 || n >= len(d.lineStarts) {
		return ""
	}
	return strings.TrimSuffix(d.text[d.lineStarts[n]:d.lineEnd(n)], "\r")
}

func (d *Document) lineEnd(n int) int {
	if n+1 < len(d.lineStarts) {
		return d.lineStarts[n+1] - 1
	}
	return len(d.text)
}
