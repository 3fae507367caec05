// Package scan analyses many documents in parallel and folds them into one
// report.
package scan

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/davetashner/textinfo/internal/extract"
	"github.com/davetashner/textinfo/internal/model"
	"github.com/davetashner/textinfo/internal/pipeline"
	"github.com/davetashner/textinfo/internal/readability"
	"github.com/davetashner/textinfo/internal/source"
	"github.com/davetashner/textinfo/internal/stats"
)

// Options configure a scan.
type Options struct {
	// Pipeline shapes extraction for every document.
	Pipeline pipeline.Options

	// Workers bounds concurrent pipeline runs. Zero selects GOMAXPROCS.
	Workers int

	// Engine runs the pipeline. Nil uses the shared default engine.
	Engine *pipeline.Engine
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Run analyses docs and returns a report with files and errors sorted by
// path. A document that failed to load is recorded in Report.Errors and
// does not stop the scan. Only cancellation aborts it.
func Run(ctx context.Context, docs []source.Doc, opts Options) (*model.Report, error) {
	run := pipeline.Run
	if opts.Engine != nil {
		run = opts.Engine.Run
	}

	for _, e := range pipeline.ValidateOptions(opts.Pipeline) {
		slog.Warn("ignoring option", "field", e.Field, "reason", e.Message)
	}

	results := make([]*pipeline.Result, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for i, doc := range docs {
		if doc.Err != nil {
			continue
		}
		g.Go(func() error {
			res, err := run(gctx, doc.Text, doc.LanguageID, opts.Pipeline)
			if err != nil {
				return err
			}
			slog.Debug("analysed document", "path", doc.Path, "language", doc.LanguageID, "comments", len(res.Spans))
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &model.Report{Files: make([]model.FileResult, 0, len(docs))}
	var (
		allStats []readability.Stats
		allKinds []extract.Kind
	)
	for i, doc := range docs {
		if doc.Err != nil {
			slog.Warn("skipping document", "path", doc.Path, "error", doc.Err)
			report.Errors = append(report.Errors, model.FileError{Path: doc.Path, Message: doc.Err.Error()})
			continue
		}
		res := results[i]
		report.Files = append(report.Files, model.FileResult{Path: doc.Path, Result: res})
		allStats = append(allStats, res.Stats...)
		allKinds = append(allKinds, res.Kinds()...)
	}
	report.Summary = stats.Summarize(allStats, allKinds)
	report.Sort()
	return report, nil
}
