package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/davetashner/textinfo/internal/model"
	"github.com/davetashner/textinfo/internal/pipeline"
	"github.com/davetashner/textinfo/internal/readability"
)

func init() {
	RegisterFormatter(NewTableFormatter())
}

// TableFormatter writes a report as aligned terminal tables. Grades are
// colored by reading band; color is disabled by fatih/color when stdout is
// not a terminal or NO_COLOR is set.
type TableFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*TableFormatter)(nil)

// NewTableFormatter returns a new TableFormatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

// Name returns the format name.
func (f *TableFormatter) Name() string {
	return "table"
}

// Format writes a per-file table, the corpus score table and any failures.
func (f *TableFormatter) Format(report *model.Report, w io.Writer) error {
	report = emptyReport(report)

	if _, err := fmt.Fprintf(w, "%s (%d files, %d comments, %s failed)\n\n",
		SectionTitle("Comment readability"), len(report.Files), report.Comments(),
		colorFailures(len(report.Errors))); err != nil {
		return fmt.Errorf("write table header: %w", err)
	}

	files := newTextTable(
		column{header: "File"},
		column{header: "Language"},
		column{header: "Comments", align: alignRight},
		column{header: "Words", align: alignRight},
		column{header: "Reading", align: alignRight},
		column{header: "Grade", align: alignRight, color: gradeColumnColor},
	)
	for _, fr := range report.Files {
		if fr.Result == nil {
			continue
		}
		files.addRow(fr.Path, fr.Result.Language, commentCell(fr.Result),
			strconv.Itoa(fr.Result.Words), fr.Result.ReadingTime, medianGrade(fr.Result.Summary))
	}
	if err := files.render(w); err != nil {
		return err
	}

	if len(report.Summary.Scores) > 0 {
		if _, err := fmt.Fprintf(w, "\n%s\n", SectionTitle("Scores")); err != nil {
			return fmt.Errorf("write table header: %w", err)
		}
		scores := newTextTable(
			column{header: "Metric"},
			column{header: "Mean", align: alignRight},
			column{header: "Median", align: alignRight},
			column{header: "Q1", align: alignRight},
			column{header: "Q3", align: alignRight},
		)
		for _, m := range report.Summary.Table(readability.Scores) {
			if m.Fence == nil {
				scores.addRow(m.Name, fmtFloat(m.Mean), "-", "-", "-")
				continue
			}
			scores.addRow(m.Name, fmtFloat(m.Mean), fmtFloat(m.Fence.Median),
				fmtFloat(m.Fence.LowerQuartile), fmtFloat(m.Fence.UpperQuartile))
		}
		if err := scores.render(w); err != nil {
			return err
		}
	}

	if len(report.Errors) > 0 {
		if _, err := fmt.Fprintf(w, "\n%s\n", SectionTitle("Errors")); err != nil {
			return fmt.Errorf("write table header: %w", err)
		}
		for _, e := range report.Errors {
			if _, err := fmt.Fprintf(w, "  %s: %s\n", e.Path, e.Message); err != nil {
				return fmt.Errorf("write table errors: %w", err)
			}
		}
	}
	return nil
}

func commentCell(r *pipeline.Result) string {
	if !r.Supported {
		return "-"
	}
	return strconv.Itoa(len(r.Spans))
}

// gradeColumnColor colors an ordinal grade label such as "9th".
func gradeColumnColor(label string) string {
	n := 0
	for _, c := range label {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	return ColorGrade(label, float64(n))
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
