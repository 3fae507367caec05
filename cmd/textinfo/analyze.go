// Copyright 2026 The Textinfo Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davetashner/textinfo/internal/config"
	"github.com/davetashner/textinfo/internal/language"
	"github.com/davetashner/textinfo/internal/model"
	"github.com/davetashner/textinfo/internal/output"
	"github.com/davetashner/textinfo/internal/scan"
	"github.com/davetashner/textinfo/internal/source"
)

// Analyze command flags.
var (
	analyzeLang        string
	analyzeFormat      string
	analyzeOutput      string
	analyzeRev         string
	analyzeInclude     []string
	analyzeExclude     []string
	analyzeWorkers     int
	analyzeTags        []string
	analyzeNoMultiline bool
	analyzePlainText   bool
	analyzeNoJSDoc     bool
	analyzeStrict      bool
)

// analyzeCmd scores the comments of files, directories or a git revision.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [path...]",
	Short: "Score the comments in files or directories",
	Long: `Extract every comment from the given files and directories and score it
with the readability formulas. Paths default to the current directory.

With --rev, the tree of that git revision is analysed instead of the working
tree. The path must then be inside the repository.

Files that cannot be read are reported and skipped. Use --strict to turn
them into a non-zero exit code.`,
	Example: `  textinfo analyze
  textinfo analyze ./internal --format markdown -o report.md
  textinfo analyze --rev HEAD~10 --include '**/*.go'
  textinfo analyze notes.txt --plaintext --format json`,
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&analyzeLang, "lang", "", "force a language id for every file")
	f.StringVarP(&analyzeFormat, "format", "f", "", "output format: "+strings.Join(output.Names(), ", "))
	f.StringVarP(&analyzeOutput, "output", "o", "", "write the report to a file instead of stdout")
	f.StringVar(&analyzeRev, "rev", "", "analyse the tree of a git revision")
	f.StringSliceVar(&analyzeInclude, "include", nil, "glob patterns of files to include")
	f.StringSliceVar(&analyzeExclude, "exclude", nil, "glob patterns of files to exclude")
	f.IntVarP(&analyzeWorkers, "workers", "j", 0, "parallel documents (0 = GOMAXPROCS)")
	f.StringSliceVar(&analyzeTags, "tags", nil, "keywords recognised after a single-line delimiter")
	f.BoolVar(&analyzeNoMultiline, "no-multiline", false, "skip block comments")
	f.BoolVar(&analyzePlainText, "plaintext", false, "treat every line of plain text files as a comment")
	f.BoolVar(&analyzeNoJSDoc, "no-jsdoc", false, "skip /** */ doc comments in C-like languages")
	f.BoolVar(&analyzeStrict, "strict", false, "exit non-zero when any file fails")
}

// analyzeTarget is one resolved command-line path.
type analyzeTarget struct {
	arg   string
	abs   string
	isDir bool
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}
	if analyzeRev != "" && len(args) > 1 {
		return exitError(ExitInvalidArgs, "textinfo: --rev takes a single repository path")
	}

	targets := make([]analyzeTarget, 0, len(args))
	for _, arg := range args {
		t, err := resolveTarget(arg)
		if err != nil {
			return err
		}
		targets = append(targets, t)
	}

	cfg, err := config.Resolve(targets[0].configDir(), analyzeFlagLayer(cmd), os.LookupEnv)
	if err != nil {
		return exitError(ExitInvalidArgs, "textinfo: %v", err)
	}
	formatter, err := output.GetFormatter(cfg.Format())
	if err != nil {
		return exitError(ExitInvalidArgs, "textinfo: %v", err)
	}
	if analyzeLang != "" && !language.Lookup(analyzeLang, true).Supported {
		return exitError(ExitInvalidArgs, "textinfo: unknown language %q (see textinfo languages)", analyzeLang)
	}
	filter := cfg.Filter(analyzeLang)
	if err := filter.Validate(); err != nil {
		return exitError(ExitInvalidArgs, "textinfo: %v", err)
	}

	opts := scan.Options{Pipeline: cfg.Options(), Workers: cfg.Workers}
	report, err := analyzeTargets(cmd, targets, filter, opts)
	if err != nil {
		if errors.Is(err, source.ErrNoDocuments) {
			return exitError(ExitTotalFailure, "textinfo: %v", err)
		}
		return exitError(ExitTotalFailure, "textinfo: analysis failed (%v)", err)
	}

	slog.Info("analysis complete",
		"files", len(report.Files),
		"comments", report.Comments(),
		"failed", len(report.Errors),
	)

	if err := writeReport(cmd, formatter, report); err != nil {
		return err
	}

	switch {
	case len(report.Files) == 0 && len(report.Errors) > 0:
		return exitError(ExitTotalFailure, "textinfo: all %d document(s) failed", len(report.Errors))
	case len(report.Files) == 0:
		return exitError(ExitTotalFailure, "textinfo: %v", source.ErrNoDocuments)
	case len(report.Errors) > 0 && analyzeStrict:
		return exitError(ExitPartialFailure, "textinfo: %d document(s) failed", len(report.Errors))
	}
	return nil
}

// analyzeFlagLayer builds the highest-precedence config layer from the
// flags the user actually set.
func analyzeFlagLayer(cmd *cobra.Command) *config.Config {
	flags := cmd.Flags()
	layer := &config.Config{}
	if flags.Changed("format") {
		layer.OutputFormat = analyzeFormat
	}
	if flags.Changed("include") {
		layer.IncludePatterns = analyzeInclude
	}
	if flags.Changed("exclude") {
		layer.ExcludePatterns = analyzeExclude
	}
	if flags.Changed("workers") {
		layer.Workers = analyzeWorkers
	}
	if flags.Changed("tags") {
		layer.Tags = append([]string{}, analyzeTags...)
	}
	if flags.Changed("no-multiline") {
		layer.MultilineComments = config.Bool(!analyzeNoMultiline)
	}
	if flags.Changed("plaintext") {
		layer.HighlightPlainText = config.Bool(analyzePlainText)
	}
	if flags.Changed("no-jsdoc") {
		layer.UseJSDocStyle = config.Bool(!analyzeNoJSDoc)
	}
	return layer
}

func resolveTarget(arg string) (analyzeTarget, error) {
	abs, err := cmdFS.Abs(arg)
	if err != nil {
		return analyzeTarget{}, exitError(ExitInvalidArgs, "textinfo: cannot resolve path %q (%v)", arg, err)
	}
	info, err := cmdFS.Stat(abs)
	if err != nil {
		return analyzeTarget{}, exitError(ExitInvalidArgs, "textinfo: path %q does not exist", arg)
	}
	return analyzeTarget{arg: arg, abs: abs, isDir: info.IsDir()}, nil
}

// configDir is where project config and .env are looked up.
func (t analyzeTarget) configDir() string {
	if t.isDir {
		return t.abs
	}
	return filepath.Dir(t.abs)
}

// analyzeTargets runs one target directly, or merges the documents of
// several targets into a single scan with paths prefixed by their argument.
func analyzeTargets(cmd *cobra.Command, targets []analyzeTarget, filter source.Filter, opts scan.Options) (*model.Report, error) {
	ctx := cmd.Context()
	if len(targets) == 1 {
		t := targets[0]
		return scan.Analyze(ctx, scan.Target{Path: t.abs, Revision: analyzeRev, Filter: filter}, opts)
	}

	var docs []source.Doc
	for _, t := range targets {
		loaded, err := scan.Target{Path: t.abs, Filter: filter}.Load(ctx)
		if err != nil {
			return nil, err
		}
		prefix := filepath.ToSlash(filepath.Clean(t.arg))
		for _, doc := range loaded {
			if t.isDir {
				doc.Path = prefix + "/" + doc.Path
			} else {
				doc.Path = prefix
			}
			docs = append(docs, doc)
		}
	}
	report, err := scan.Run(ctx, docs, opts)
	if err != nil {
		return nil, err
	}
	report.Root = strings.Join(targetArgs(targets), ", ")
	return report, nil
}

func targetArgs(targets []analyzeTarget) []string {
	out := make([]string, len(targets))
	for i, t := range targets {
		out[i] = t.arg
	}
	return out
}

func writeReport(cmd *cobra.Command, formatter output.Formatter, report *model.Report) error {
	var w io.Writer = cmd.OutOrStdout()
	if analyzeOutput != "" {
		f, err := cmdFS.Create(analyzeOutput)
		if err != nil {
			return exitError(ExitInvalidArgs, "textinfo: cannot create output file %q (%v)", analyzeOutput, err)
		}
		defer f.Close() //nolint:errcheck // best-effort close on output file
		w = f
	}
	if err := formatter.Format(report, w); err != nil {
		return exitError(ExitTotalFailure, "textinfo: formatting failed (%v)", err)
	}
	if analyzeOutput != "" {
		slog.Info("report written", "path", analyzeOutput, "format", formatter.Name())
	}
	return nil
}

// resetAnalyzeFlags resets analyze command state for testing.
func resetAnalyzeFlags() {
	analyzeLang = ""
	analyzeFormat = ""
	analyzeOutput = ""
	analyzeRev = ""
	analyzeInclude = nil
	analyzeExclude = nil
	analyzeWorkers = 0
	analyzeTags = nil
	analyzeNoMultiline = false
	analyzePlainText = false
	analyzeNoJSDoc = false
	analyzeStrict = false
	resetChanged(analyzeCmd)
}
