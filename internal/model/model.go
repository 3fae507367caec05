// Package model defines the report types shared by the analysis hosts and
// the output formatters.
package model

import (
	"sort"

	"github.com/davetashner/textinfo/internal/pipeline"
	"github.com/davetashner/textinfo/internal/stats"
)

// FileResult is the pipeline result for one document.
type FileResult struct {
	Path   string           `json:"path"`
	Result *pipeline.Result `json:"result"`
}

// FileError records a document that could not be read or analysed.
type FileError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Report is the outcome of analysing a set of documents.
type Report struct {
	// Root is the directory or repository the documents came from.
	Root string `json:"root,omitempty"`

	// Revision is the git revision for snapshot runs, empty otherwise.
	Revision string `json:"revision,omitempty"`

	// Files holds one entry per analysed document, sorted by path.
	Files []FileResult `json:"files"`

	// Summary aggregates every comment across all files.
	Summary stats.Summary `json:"summary"`

	// Errors lists documents that failed, sorted by path.
	Errors []FileError `json:"errors,omitempty"`
}

// Comments returns the total number of comments across all files.
func (r *Report) Comments() int {
	n := 0
	for _, f := range r.Files {
		if f.Result != nil {
			n += len(f.Result.Spans)
		}
	}
	return n
}

// Sort orders files and errors by path.
func (r *Report) Sort() {
	sort.Slice(r.Files, func(i, j int) bool { return r.Files[i].Path < r.Files[j].Path })
	sort.Slice(r.Errors, func(i, j int) bool { return r.Errors[i].Path < r.Errors[j].Path })
}

// Single wraps one pipeline result in a report. Used by hosts that analyse
// a single text.
func Single(path string, result *pipeline.Result) *Report {
	return &Report{
		Files:   []FileResult{{Path: path, Result: result}},
		Summary: result.Summary,
	}
}
