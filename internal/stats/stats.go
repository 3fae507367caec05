// Copyright 2026 The Textinfo Authors
// SPDX-License-Identifier: MIT

// Package stats reduces per-comment readability metrics into corpus-level
// summaries: kind distribution, means and five-number boxplot fences.
package stats

import (
	"slices"

	"github.com/davetashner/textinfo/internal/extract"
	"github.com/davetashner/textinfo/internal/readability"
)

// Fence is a five-number boxplot summary. Quartiles use the exclusive median
// method: for an odd count the overall median element belongs to neither
// half.
type Fence struct {
	LowerExtreme  float64 `json:"lower_extreme"`
	LowerQuartile float64 `json:"lower_quartile"`
	UpperQuartile float64 `json:"upper_quartile"`
	UpperExtreme  float64 `json:"upper_extreme"`
	Median        float64 `json:"median"`
}

// KindShare is the count and percentage of one comment kind.
type KindShare struct {
	Kind    extract.Kind `json:"kind"`
	Count   int          `json:"count"`
	Percent float64      `json:"percent"`
}

// MetricSummary aggregates one metric across every comment.
type MetricSummary struct {
	Name  string  `json:"name"`
	Mean  float64 `json:"mean"`
	Fence *Fence  `json:"fence,omitempty"`
}

// Summary is the corpus-level view of a set of comments.
type Summary struct {
	Comments int             `json:"comments"`
	Kinds    []KindShare     `json:"kinds"`
	Counts   []MetricSummary `json:"counts"`
	Averages []MetricSummary `json:"averages"`
	Scores   []MetricSummary `json:"scores"`
}

// Table returns the metric summaries for one readability group.
func (s Summary) Table(t readability.Table) []MetricSummary {
	switch t {
	case readability.Counts:
		return s.Counts
	case readability.Averages:
		return s.Averages
	case readability.Scores:
		return s.Scores
	}
	return nil
}

// Metric looks up a summary by table and name.
func (s Summary) Metric(t readability.Table, name string) (MetricSummary, bool) {
	for _, m := range s.Table(t) {
		if m.Name == name {
			return m, true
		}
	}
	return MetricSummary{}, false
}

// Median returns the value at the middle of sorted[lo:hi]. An even-length
// range yields the mean of its two middle elements. The range must not be
// empty.
func Median(sorted []float64, lo, hi int) float64 {
	count := hi - lo
	half := count / 2
	if count%2 == 1 {
		return sorted[lo+half]
	}
	return (sorted[lo+half-1] + sorted[lo+half]) / 2
}

// Boxplot computes the fence for values. The input is not modified. It
// returns nil for no values, and a fence with all five fields equal for a
// single value.
func Boxplot(values []float64) *Fence {
	count := len(values)
	switch count {
	case 0:
		return nil
	case 1:
		v := values[0]
		return &Fence{LowerExtreme: v, LowerQuartile: v, UpperQuartile: v, UpperExtreme: v, Median: v}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	half := count / 2
	lower := Median(sorted, 0, half)
	upper := Median(sorted, half+count%2, count)
	iqr := upper - lower
	if iqr < 0 {
		iqr = -iqr
	}
	return &Fence{
		LowerExtreme:  lower - 1.5*iqr,
		LowerQuartile: lower,
		UpperQuartile: upper,
		UpperExtreme:  upper + 1.5*iqr,
		Median:        Median(sorted, 0, count),
	}
}

// Mean returns the arithmetic mean, or 0 for no values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Distribution counts each kind present in kinds and its share of the total
// as a percentage. Kinds come back in pass order. No kinds yields nil.
func Distribution(kinds []extract.Kind) []KindShare {
	if len(kinds) == 0 {
		return nil
	}
	counts := make(map[extract.Kind]int)
	for _, k := range kinds {
		counts[k]++
	}
	total := float64(len(kinds))

	var shares []KindShare
	for _, k := range extract.Kinds {
		if n := counts[k]; n > 0 {
			shares = append(shares, KindShare{Kind: k, Count: n, Percent: float64(n) / total * 100})
		}
	}
	return shares
}

// Summarize aggregates per-comment stats. stats and kinds are parallel
// slices, one entry per comment. Metrics keep their declared order.
func Summarize(stats []readability.Stats, kinds []extract.Kind) Summary {
	s := Summary{
		Comments: len(stats),
		Kinds:    Distribution(kinds),
	}
	if len(stats) == 0 {
		return s
	}
	s.Counts = summarizeTable(stats, readability.Counts)
	s.Averages = summarizeTable(stats, readability.Averages)
	s.Scores = summarizeTable(stats, readability.Scores)
	return s
}

func summarizeTable(stats []readability.Stats, t readability.Table) []MetricSummary {
	names := t.Names()
	out := make([]MetricSummary, 0, len(names))
	values := make([]float64, len(stats))
	for _, name := range names {
		for i, st := range stats {
			values[i] = st.Table(t)[name]
		}
		out = append(out, MetricSummary{
			Name:  name,
			Mean:  Mean(values),
			Fence: Boxplot(values),
		})
	}
	return out
}
