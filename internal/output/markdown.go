package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/davetashner/textinfo/internal/grade"
	"github.com/davetashner/textinfo/internal/model"
	"github.com/davetashner/textinfo/internal/readability"
	"github.com/davetashner/textinfo/internal/stats"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// MarkdownFormatter writes a report as a human-readable Markdown summary.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// Format writes the report as a Markdown document to w.
//
// The output includes:
//   - A title heading and a totals line
//   - The comment kind distribution
//   - Mean and boxplot tables for scores, averages and counts
//   - One section per file listing its grade annotations
//   - The files that failed, if any
func (m *MarkdownFormatter) Format(report *model.Report, w io.Writer) error {
	if _, err := w.Write(renderMarkdown(emptyReport(report))); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// renderMarkdown builds the Markdown document in memory. The HTML formatter
// converts the same bytes.
func renderMarkdown(r *model.Report) []byte {
	var b bytes.Buffer

	b.WriteString("# Comment Readability Report\n\n")
	if r.Root != "" {
		fmt.Fprintf(&b, "**Source:** `%s`", r.Root)
		if r.Revision != "" {
			fmt.Fprintf(&b, " @ `%s`", r.Revision)
		}
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "**Files:** %d | **Comments:** %d | **Failed:** %d\n\n",
		len(r.Files), r.Comments(), len(r.Errors))

	writeKindTable(&b, r.Summary.Kinds)
	for _, t := range []readability.Table{readability.Scores, readability.Averages, readability.Counts} {
		writeMetricTable(&b, t, r.Summary.Table(t))
	}
	for _, f := range r.Files {
		writeFileSection(&b, f)
	}
	writeErrors(&b, r.Errors)

	return b.Bytes()
}

func writeKindTable(b *bytes.Buffer, kinds []stats.KindShare) {
	if len(kinds) == 0 {
		return
	}
	b.WriteString("## Comment kinds\n\n")
	b.WriteString("| Kind | Count | Percent |\n")
	b.WriteString("|------|-------|---------|\n")
	for _, k := range kinds {
		fmt.Fprintf(b, "| %s | %d | %.2f%% |\n", k.Kind, k.Count, k.Percent)
	}
	b.WriteString("\n")
}

func writeMetricTable(b *bytes.Buffer, t readability.Table, metrics []stats.MetricSummary) {
	if len(metrics) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", titleCase(t.String()))
	b.WriteString("| Metric | Mean | Median | Lower quartile | Upper quartile |\n")
	b.WriteString("|--------|------|--------|----------------|----------------|\n")
	for _, m := range metrics {
		if m.Fence == nil {
			fmt.Fprintf(b, "| %s | %.2f | - | - | - |\n", m.Name, m.Mean)
			continue
		}
		fmt.Fprintf(b, "| %s | %.2f | %.2f | %.2f | %.2f |\n",
			m.Name, m.Mean, m.Fence.Median, m.Fence.LowerQuartile, m.Fence.UpperQuartile)
	}
	b.WriteString("\n")
}

func writeFileSection(b *bytes.Buffer, f model.FileResult) {
	res := f.Result
	if res == nil {
		return
	}
	fmt.Fprintf(b, "## %s (%s)\n\n", formatLocation(f.Path, 0), res.Language)
	if !res.Supported {
		b.WriteString("_Language not supported._\n\n")
		return
	}

	fmt.Fprintf(b, "%d comments | %d words | reading time %s", len(res.Spans), res.Words, res.ReadingTime)
	if m, ok := res.Summary.Metric(readability.Scores, readability.MedianName); ok && m.Fence != nil && m.Fence.Median > 0 {
		fmt.Fprintf(b, " | median grade %s", grade.Label(m.Fence.Median))
	}
	b.WriteString("\n\n")

	for _, note := range res.Annotations {
		fmt.Fprintf(b, "- `%s` %s\n", formatLocation(f.Path, note.Line), note.Title)
	}
	if len(res.Annotations) > 0 {
		b.WriteString("\n")
	}
}

func writeErrors(b *bytes.Buffer, errs []model.FileError) {
	if len(errs) == 0 {
		return
	}
	b.WriteString("## Errors\n\n")
	for _, e := range errs {
		fmt.Fprintf(b, "- `%s`: %s\n", formatLocation(e.Path, 0), e.Message)
	}
	b.WriteString("\n")
}

// formatLocation formats a file path and line number as a clickable reference.
// Returns "file:line" when line > 0, otherwise just the file path.
// Returns "unknown" if no file path is provided.
func formatLocation(filePath string, line int) string {
	if filePath == "" {
		return "unknown"
	}
	if line > 0 {
		return fmt.Sprintf("%s:%d", filePath, line)
	}
	return filePath
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
