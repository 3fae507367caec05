// Copyright 2026 The Textinfo Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"

	"github.com/fatih/color"
)

// Shared color printers for table sections.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorBold   = color.New(color.Bold)
)

// Grade bands for coloring. Text at or below EasyGrade reads comfortably;
// text above HardGrade needs a college reader.
const (
	EasyGrade = 8
	HardGrade = 12
)

// ColorGrade colors a grade label by reading band: green up to EasyGrade,
// yellow up to HardGrade, red beyond. grade is the numeric value behind label.
func ColorGrade(label string, grade float64) string {
	switch {
	case !(grade > 0):
		return label
	case grade <= EasyGrade:
		return colorGreen.Sprint(label)
	case grade <= HardGrade:
		return colorYellow.Sprint(label)
	default:
		return colorRed.Sprint(label)
	}
}

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}

// colorFailures colors a failure count: 0 is green, >0 is red.
func colorFailures(n int) string {
	s := fmt.Sprintf("%d", n)
	if n == 0 {
		return colorGreen.Sprint(s)
	}
	return colorRed.Sprint(s)
}
