package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/textinfo/internal/config"
	"github.com/davetashner/textinfo/internal/language"
	"github.com/davetashner/textinfo/internal/output"
	"github.com/davetashner/textinfo/internal/pipeline"
	"github.com/davetashner/textinfo/internal/scan"
)

// AnalyzeInput is the input schema for the analyze MCP tool.
type AnalyzeInput struct {
	Path     string `json:"path" jsonschema:"File or directory to analyze (defaults to current directory)"`
	Revision string `json:"revision,omitempty" jsonschema:"Git revision to analyze instead of the working tree (e.g. HEAD~3, v1.2.0)"`
	Format   string `json:"format,omitempty" jsonschema:"Output format: json, markdown, html, table (default: json)"`
	Language string `json:"language,omitempty" jsonschema:"Force one language id for every file"`
	Include  string `json:"include,omitempty" jsonschema:"Comma-separated globs of files to include"`
	Exclude  string `json:"exclude,omitempty" jsonschema:"Comma-separated globs of files to exclude"`
	Tags     string `json:"tags,omitempty" jsonschema:"Comma-separated keywords matched after a single-line comment delimiter"`
	Workers  int    `json:"workers,omitempty" jsonschema:"Files analyzed in parallel (default: CPU count)"`
}

// GradeInput is the input schema for the grade MCP tool.
type GradeInput struct {
	Text               string `json:"text" jsonschema:"Source text to analyze"`
	Language           string `json:"language,omitempty" jsonschema:"Language id of the text (default: plaintext)"`
	Tags               string `json:"tags,omitempty" jsonschema:"Comma-separated keywords matched after a single-line comment delimiter"`
	NoMultiline        bool   `json:"no_multiline,omitempty" jsonschema:"Skip block comments"`
	NoJSDoc            bool   `json:"no_jsdoc,omitempty" jsonschema:"Skip /** */ doc comments"`
	HighlightPlainText *bool  `json:"highlight_plain_text,omitempty" jsonschema:"Treat every plaintext line as a comment (default: true for plaintext)"`
}

// LanguagesInput is the (empty) input schema for the languages MCP tool.
type LanguagesInput struct{}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds all textinfo tools to the MCP server.
func registerTools(server *mcp.Server) {
	readOnly := &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze",
		Description: "Extract the comments of every source file under a path (or a git revision) and report their readability scores, grade levels and distributions.",
		Annotations: readOnly,
	}, handleAnalyze)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "grade",
		Description: "Extract the comments of an inline source snippet and return per-comment readability metrics and predicted reading grades as JSON.",
		Annotations: readOnly,
	}, handleGrade)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "languages",
		Description: "List the language ids textinfo recognises and their comment delimiters.",
		Annotations: readOnly,
	}, handleLanguages)
}

func handleAnalyze(ctx context.Context, _ *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, any, error) {
	pathInfo, err := ResolvePath(input.Path)
	if err != nil {
		return nil, nil, err
	}

	// Default to json for MCP consumers.
	format := "json"
	if input.Format != "" {
		format = input.Format
	}
	formatter, err := output.GetFormatter(format)
	if err != nil {
		return nil, nil, fmt.Errorf("unsupported format %q", format)
	}
	if input.Workers < 0 || input.Workers > config.MaxWorkers {
		return nil, nil, fmt.Errorf("workers must be between 0 and %d, got %d", config.MaxWorkers, input.Workers)
	}

	flags := &config.Config{
		Workers:         input.Workers,
		IncludePatterns: splitAndTrim(input.Include),
		ExcludePatterns: splitAndTrim(input.Exclude),
	}
	if input.Tags != "" {
		flags.Tags = splitAndTrim(input.Tags)
	}
	cfg, err := config.Resolve(pathInfo.ConfigDir, flags, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	target := scan.Target{Path: pathInfo.AbsPath, Revision: input.Revision, Filter: cfg.Filter(input.Language)}
	report, err := scan.Analyze(ctx, target, scan.Options{Pipeline: cfg.Options(), Workers: cfg.Workers})
	if err != nil {
		return nil, nil, fmt.Errorf("analyze failed: %w", err)
	}
	slog.Info("mcp analyze complete", "path", pathInfo.AbsPath, "files", len(report.Files), "comments", report.Comments())

	var buf bytes.Buffer
	if err := formatter.Format(report, &buf); err != nil {
		return nil, nil, fmt.Errorf("format output: %w", err)
	}
	return textResult(buf.String()), nil, nil
}

func handleGrade(ctx context.Context, _ *mcp.CallToolRequest, input GradeInput) (*mcp.CallToolResult, any, error) {
	lang := input.Language
	if lang == "" {
		lang = language.PlainTextID
	}

	opts := pipeline.DefaultOptions()
	if input.Tags != "" {
		opts.Tags = splitAndTrim(input.Tags)
	}
	opts.MultilineComments = !input.NoMultiline
	opts.UseJSDocStyle = !input.NoJSDoc
	opts.HighlightPlainText = lang == language.PlainTextID
	if input.HighlightPlainText != nil {
		opts.HighlightPlainText = *input.HighlightPlainText
	}
	for _, e := range pipeline.ValidateOptions(opts) {
		slog.Warn("mcp grade: ignoring option", "field", e.Field, "reason", e.Message)
	}

	result, err := pipeline.Run(ctx, input.Text, lang, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("grade failed: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data)), nil, nil
}

func handleLanguages(_ context.Context, _ *mcp.CallToolRequest, _ LanguagesInput) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(language.All(), "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal languages: %w", err)
	}
	return textResult(string(data)), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// splitAndTrim splits a comma-separated string and trims whitespace from each element.
func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
