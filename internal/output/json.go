package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/davetashner/textinfo/internal/model"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope wraps a report with metadata for the JSON output format.
type JSONEnvelope struct {
	Report   *model.Report `json:"report"`
	Metadata JSONMetadata  `json:"metadata"`
}

// JSONMetadata describes the run that produced the report.
type JSONMetadata struct {
	RunID         string `json:"run_id"`
	TotalFiles    int    `json:"total_files"`
	TotalComments int    `json:"total_comments"`
	FailedFiles   int    `json:"failed_files"`
	GeneratedAt   string `json:"generated_at"`
}

// JSONFormatter writes a report as a JSON object with metadata envelope.
type JSONFormatter struct {
	// Compact controls whether output is compact (single line) or pretty-printed.
	// When false (default), output is indented with two spaces.
	Compact bool

	// nowFunc is used for testing to override the current time.
	nowFunc func() time.Time

	// idFunc is used for testing to override run ID generation.
	idFunc func() string
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes the report as a JSON document with a metadata envelope to w.
// Output is pretty-printed for terminals and in-memory writers, and compact
// when w is a pipe or regular file or Compact is set.
func (f *JSONFormatter) Format(report *model.Report, w io.Writer) error {
	report = emptyReport(report)

	now := time.Now()
	if f.nowFunc != nil {
		now = f.nowFunc()
	}
	runID := uuid.NewString()
	if f.idFunc != nil {
		runID = f.idFunc()
	}

	envelope := JSONEnvelope{
		Report: report,
		Metadata: JSONMetadata{
			RunID:         runID,
			TotalFiles:    len(report.Files),
			TotalComments: report.Comments(),
			FailedFiles:   len(report.Errors),
			GeneratedAt:   now.UTC().Format("2006-01-02T15:04:05Z"),
		},
	}

	var data []byte
	var err error
	if f.shouldCompact(w) {
		data, err = json.Marshal(envelope)
	} else {
		data, err = json.MarshalIndent(envelope, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write json trailing newline: %w", err)
	}
	return nil
}

// shouldCompact determines whether to use compact mode.
// If Compact is explicitly set, use that value.
// Otherwise, auto-detect: pretty-print for TTYs, compact for pipes.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}

	if file, ok := w.(*os.File); ok {
		fi, err := file.Stat()
		if err != nil {
			return false
		}
		return fi.Mode()&os.ModeCharDevice == 0
	}

	// bytes.Buffer and friends: pretty.
	return false
}
