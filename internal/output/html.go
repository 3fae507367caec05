package output

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"sync"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/davetashner/textinfo/internal/grade"
	"github.com/davetashner/textinfo/internal/model"
	"github.com/davetashner/textinfo/internal/readability"
	"github.com/davetashner/textinfo/internal/stats"
)

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// HTMLFormatter writes a report as a self-contained HTML page. The body is
// the Markdown report rendered with goldmark.
type HTMLFormatter struct {
	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns a new HTMLFormatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template
	markdown     = goldmark.New(goldmark.WithExtensions(extension.Table))
)

// htmlData holds all template data for the HTML page.
type htmlData struct {
	Title       string
	GeneratedAt string
	Files       int
	Comments    int
	Failed      int
	MedianGrade string
	Kinds       []stats.KindShare
	Body        template.HTML
}

// Format writes the report as an HTML page to w.
func (h *HTMLFormatter) Format(report *model.Report, w io.Writer) error {
	report = emptyReport(report)

	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("report").Parse(htmlTemplate))
	})

	var body bytes.Buffer
	if err := markdown.Convert(renderMarkdown(report), &body); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	now := time.Now()
	if h.nowFunc != nil {
		now = h.nowFunc()
	}

	data := htmlData{
		Title:       "Comment Readability Report",
		GeneratedAt: now.UTC().Format("2006-01-02 15:04 UTC"),
		Files:       len(report.Files),
		Comments:    report.Comments(),
		Failed:      len(report.Errors),
		MedianGrade: medianGrade(report.Summary),
		Kinds:       report.Summary.Kinds,
		// goldmark escapes raw HTML in the source unless WithUnsafe is set.
		Body: template.HTML(body.String()), //nolint:gosec // goldmark output, raw HTML disabled
	}

	if err := htmlTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}

// medianGrade labels the corpus median of the combined grade, or "-" when
// there is none.
func medianGrade(s stats.Summary) string {
	m, ok := s.Metric(readability.Scores, readability.MedianName)
	if !ok || m.Fence == nil || !(m.Fence.Median > 0) {
		return "-"
	}
	return grade.Label(m.Fence.Median)
}
