// Package bootstrap implements the `textinfo init` command: it surveys the
// languages of a project and writes a starter configuration.
package bootstrap

import (
	"context"
	"errors"
	"sort"

	"github.com/davetashner/textinfo/internal/source"
	"github.com/davetashner/textinfo/internal/testable"
)

// FS is the file system implementation used by this package.
// Override in tests with a testable.MockFileSystem.
var FS testable.FileSystem = testable.DefaultFS

// Operations recorded in an Action.
const (
	OpCreated = "created"
	OpUpdated = "updated"
	OpSkipped = "skipped"
)

// InitConfig holds the inputs for the init command.
type InitConfig struct {
	RepoPath string
	Force    bool
}

// Action records a single file operation performed during init.
type Action struct {
	File        string // e.g. ".textinfo.yaml", ".mcp.json"
	Operation   string // OpCreated, OpUpdated or OpSkipped
	Description string
}

// LanguageCount is the number of files detected for one language id.
type LanguageCount struct {
	ID    string
	Files int
}

// InitResult holds the outcome of an init run.
type InitResult struct {
	Actions   []Action
	Languages []LanguageCount
}

// Run surveys the project, writes .textinfo.yaml and registers the MCP
// server when an agent configuration directory is present.
func Run(ctx context.Context, cfg InitConfig) (*InitResult, error) {
	docs, err := source.Files(ctx, cfg.RepoPath, source.Filter{})
	if err != nil && !errors.Is(err, source.ErrNoDocuments) {
		return nil, err
	}

	result := &InitResult{Languages: CountLanguages(docs)}

	configAction, err := GenerateConfig(cfg.RepoPath, result.Languages, cfg.Force)
	if err != nil {
		return nil, err
	}
	result.Actions = append(result.Actions, configAction)

	mcpAction, err := GenerateMCPConfig(cfg.RepoPath)
	if err != nil {
		return nil, err
	}
	result.Actions = append(result.Actions, mcpAction)

	return result, nil
}

// CountLanguages tallies readable documents by language, most files first
// and ties by id.
func CountLanguages(docs []source.Doc) []LanguageCount {
	counts := make(map[string]int)
	for _, d := range docs {
		if d.Err == nil && d.LanguageID != "" {
			counts[d.LanguageID]++
		}
	}
	out := make([]LanguageCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, LanguageCount{ID: id, Files: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Files != out[j].Files {
			return out[i].Files > out[j].Files
		}
		return out[i].ID < out[j].ID
	})
	return out
}
