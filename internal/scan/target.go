package scan

import (
	"context"

	"github.com/davetashner/textinfo/internal/model"
	"github.com/davetashner/textinfo/internal/source"
)

// Target names what to analyse: a file or directory on disk, or, when
// Revision is set, the tree of that commit in the repository containing
// Path.
type Target struct {
	Path     string
	Revision string
	Filter   source.Filter
}

// Load reads the target's documents.
func (t Target) Load(ctx context.Context) ([]source.Doc, error) {
	if t.Revision != "" {
		return source.GitRevision(ctx, t.Path, t.Revision, t.Filter)
	}
	return source.Files(ctx, t.Path, t.Filter)
}

// Analyze loads the target and runs the scan over it.
func Analyze(ctx context.Context, target Target, opts Options) (*model.Report, error) {
	docs, err := target.Load(ctx)
	if err != nil {
		return nil, err
	}
	report, err := Run(ctx, docs, opts)
	if err != nil {
		return nil, err
	}
	report.Root = target.Path
	report.Revision = target.Revision
	return report, nil
}
