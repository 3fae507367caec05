package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/textinfo/internal/model"
)

func TestMarkdownFormatterName(t *testing.T) {
	assert.Equal(t, "markdown", NewMarkdownFormatter().Name())
}

func TestMarkdownFormat_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(testReport(t), &buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Comment Readability Report\n\n"))
	assert.Contains(t, out, "**Source:** `/src/project`\n")
	assert.Contains(t, out, "**Files:** 2 | **Comments:** 3 | **Failed:** 1\n")
}

func TestMarkdownFormat_Revision(t *testing.T) {
	r := &model.Report{Root: "/repo", Revision: "v1.2.0"}

	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(r, &buf))
	assert.Contains(t, buf.String(), "**Source:** `/repo` @ `v1.2.0`")
}

func TestMarkdownFormat_KindTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(testReport(t), &buf))
	out := buf.String()

	assert.Contains(t, out, "## Comment kinds\n")
	assert.Contains(t, out, "| SingleLineComment | 2 | 66.67% |")
	assert.Contains(t, out, "| MultiLineComment | 1 | 33.33% |")
	assert.NotContains(t, out, "JSDocComment")
}

func TestMarkdownFormat_MetricTables(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(testReport(t), &buf))
	out := buf.String()

	scores := strings.Index(out, "## Scores\n")
	averages := strings.Index(out, "## Averages\n")
	counts := strings.Index(out, "## Counts\n")
	require.NotEqual(t, -1, scores)
	assert.Less(t, scores, averages)
	assert.Less(t, averages, counts)
	assert.Contains(t, out, "| textMedian |")
	assert.Contains(t, out, "| Metric | Mean | Median | Lower quartile | Upper quartile |")
}

func TestMarkdownFormat_FileSections(t *testing.T) {
	report := testReport(t)

	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(report, &buf))
	out := buf.String()

	assert.Contains(t, out, "## cache/cache.go (go)\n")
	assert.Contains(t, out, "3 comments | ")
	for _, note := range report.Files[0].Result.Annotations {
		assert.Contains(t, out, "- `"+formatLocation("cache/cache.go", note.Line)+"` "+note.Title)
	}

	assert.Contains(t, out, "## notes.kl (klingon)\n\n_Language not supported._")
}

func TestMarkdownFormat_Errors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(testReport(t), &buf))
	assert.Contains(t, buf.String(), "## Errors\n\n- `broken.go`: permission denied\n")
}

func TestMarkdownFormat_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(&model.Report{}, &buf))
	out := buf.String()

	assert.Contains(t, out, "**Files:** 0 | **Comments:** 0 | **Failed:** 0")
	assert.NotContains(t, out, "## Comment kinds")
	assert.NotContains(t, out, "## Scores")
	assert.NotContains(t, out, "## Errors")
}

func TestFormatLocation(t *testing.T) {
	tests := []struct {
		name string
		path string
		line int
		want string
	}{
		{"with line", "main.go", 10, "main.go:10"},
		{"no line", "main.go", 0, "main.go"},
		{"no path", "", 5, "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatLocation(tt.path, tt.line))
		})
	}
}
