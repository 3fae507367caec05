// Package grade turns numeric reading grades into ordinal labels.
package grade

import (
	"fmt"
	"math"
)

// Tooltip explains what the combined grade is made of.
const Tooltip = "A grade median calculated from the following readability tests: " +
	"Flesch Kincaid Grade, Flesch Reading Ease (interpreted as a grade), SMOG Index, " +
	"Coleman Liau Index, Automated Readability Index, Dale Chall Readability Score, " +
	"Linsear Write Formula, Gunning Fog Index"

// Suffix returns the English ordinal suffix for grade. Grades above 20 are
// reduced modulo 10 first, so 21 is "st" and 11 through 13 are "th". The
// reduction does not special-case later teens, so 111 is "st".
func Suffix(grade int) string {
	if grade > 20 {
		grade %= 10
	}
	switch grade {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// Label floors grade and appends its suffix, e.g. "9th".
func Label(grade float64) string {
	g := int(math.Floor(grade))
	return fmt.Sprintf("%d%s", g, Suffix(g))
}

// Annotation is an inline note attached to the line a comment starts on.
type Annotation struct {
	Line    int    `json:"line"`
	Grade   int    `json:"grade"`
	Title   string `json:"title"`
	Tooltip string `json:"tooltip"`
}

// Annotate builds the note for a comment whose combined grade is median.
// Non-positive grades produce no note.
func Annotate(line int, median float64) (Annotation, bool) {
	if !(median > 0) {
		return Annotation{}, false
	}
	return Annotation{
		Line:    line,
		Grade:   int(math.Floor(median)),
		Title:   fmt.Sprintf("Predicted reading level of %s grade", Label(median)),
		Tooltip: Tooltip,
	}, true
}
