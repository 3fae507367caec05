// Copyright 2026 The Textinfo Authors
// SPDX-License-Identifier: MIT

// Package readability computes a fixed battery of readability metrics over a
// piece of prose. Every metric is a pure function of the text and every
// declared name is always present in the result, with 0 standing in for
// formulas that are undefined on degenerate input.
package readability

import (
	"math"
	"slices"
)

// Table identifies one of the three metric groups.
type Table int

const (
	Counts Table = iota
	Averages
	Scores
)

// Tables lists the groups in report order.
var Tables = []Table{Counts, Averages, Scores}

// String returns the group's report key.
func (t Table) String() string {
	switch t {
	case Counts:
		return "counts"
	case Averages:
		return "averages"
	case Scores:
		return "scores"
	}
	return "unknown"
}

// Names returns the declared metric names of the group in report order.
func (t Table) Names() []string {
	switch t {
	case Counts:
		return CountNames
	case Averages:
		return AverageNames
	case Scores:
		return ScoreNames
	}
	return nil
}

// Metric names, in report order.
var (
	CountNames = []string{
		"charCount",
		"letterCount",
		"lexiconCount",
		"syllableCount",
		"sentenceCount",
	}

	AverageNames = []string{
		"averageSentenceLength",
		"averageSyllablePerWord",
		"averageCharacterPerWord",
		"averageLetterPerWord",
		"averageSentencePerWord",
	}

	ScoreNames = []string{
		"fleschReadingEase",
		"fleschReadingEaseToGrade",
		"fleschKincaidGrade",
		"polySyllableCount",
		"smogIndex",
		"colemanLiauIndex",
		"automatedReadabilityIndex",
		"linsearWriteFormula",
		"daleChallReadabilityScore",
		"daleChallToGrade",
		"gunningFog",
		"lix",
		"rix",
		"textMedian",
	}
)

// MedianName is the score key holding the combined grade estimate.
const MedianName = "textMedian"

// Stats holds the metrics for one piece of text.
type Stats struct {
	Counts   map[string]float64 `json:"counts"`
	Averages map[string]float64 `json:"averages"`
	Scores   map[string]float64 `json:"scores"`
}

// Table returns the map for group t.
func (s Stats) Table(t Table) map[string]float64 {
	switch t {
	case Counts:
		return s.Counts
	case Averages:
		return s.Averages
	case Scores:
		return s.Scores
	}
	return nil
}

// Median returns the combined grade estimate.
func (s Stats) Median() float64 { return s.Scores[MedianName] }

// Evaluate computes every metric for text.
func Evaluate(text string) Stats {
	stats := Stats{
		Counts:   zeroed(CountNames),
		Averages: zeroed(AverageNames),
		Scores:   zeroed(ScoreNames),
	}

	t := analyze(text)
	if t.words == 0 {
		return stats
	}

	stats.Counts["charCount"] = float64(t.chars)
	stats.Counts["letterCount"] = float64(t.letters)
	stats.Counts["lexiconCount"] = float64(t.words)
	stats.Counts["syllableCount"] = float64(t.syllables)
	stats.Counts["sentenceCount"] = float64(t.sentences)

	stats.Averages["averageSentenceLength"] = t.avgSentenceLength()
	stats.Averages["averageSyllablePerWord"] = t.avgSyllablesPerWord()
	stats.Averages["averageCharacterPerWord"] = t.avgCharsPerWord()
	stats.Averages["averageLetterPerWord"] = t.avgLettersPerWord()
	stats.Averages["averageSentencePerWord"] = t.avgSentencesPerWord()

	fre := t.fleschReadingEase()
	dc := t.daleChall()
	grades := []float64{
		t.fleschKincaidGrade(),
		fleschReadingEaseToGrade(fre),
		t.smog(),
		t.colemanLiau(),
		t.automatedReadability(),
		t.linsearWrite(),
		daleChallToGrade(dc),
		t.gunningFog(),
	}

	stats.Scores["fleschReadingEase"] = fre
	stats.Scores["fleschReadingEaseToGrade"] = grades[1]
	stats.Scores["fleschKincaidGrade"] = grades[0]
	stats.Scores["polySyllableCount"] = float64(t.polySyllables)
	stats.Scores["smogIndex"] = grades[2]
	stats.Scores["colemanLiauIndex"] = grades[3]
	stats.Scores["automatedReadabilityIndex"] = grades[4]
	stats.Scores["linsearWriteFormula"] = grades[5]
	stats.Scores["daleChallReadabilityScore"] = dc
	stats.Scores["daleChallToGrade"] = grades[6]
	stats.Scores["gunningFog"] = grades[7]
	stats.Scores["lix"] = t.lix()
	stats.Scores["rix"] = t.rix()
	stats.Scores[MedianName] = median(grades)

	for _, table := range Tables {
		for name, v := range stats.Table(table) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				stats.Table(table)[name] = 0
			}
		}
	}
	return stats
}

func zeroed(names []string) map[string]float64 {
	m := make(map[string]float64, len(names))
	for _, name := range names {
		m[name] = 0
	}
	return m
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// round rounds half away from zero at the given number of decimals.
func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
