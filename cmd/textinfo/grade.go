package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davetashner/textinfo/internal/language"
	"github.com/davetashner/textinfo/internal/model"
	"github.com/davetashner/textinfo/internal/output"
	"github.com/davetashner/textinfo/internal/pipeline"
)

// Grade command flags.
var (
	gradeLang        string
	gradeFormat      string
	gradeTags        []string
	gradeNoMultiline bool
	gradeNoJSDoc     bool
)

// gradeCmd scores one snippet of text.
var gradeCmd = &cobra.Command{
	Use:   "grade [text]",
	Short: "Score the comments of a text snippet",
	Long: `Extract the comments of one snippet and score each of them. The text is
read from standard input when no argument is given.

The default language is plaintext, where every line is treated as a
comment. With --format json the raw pipeline result is printed; any report
format renders the snippet as a one-file report.`,
	Example: `  textinfo grade "The quick brown fox jumps over the lazy dog."
  cat main.go | textinfo grade --lang go
  textinfo grade --lang python --format markdown < script.py`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGrade,
}

func init() {
	f := gradeCmd.Flags()
	f.StringVar(&gradeLang, "lang", language.PlainTextID, "language id of the text")
	f.StringVarP(&gradeFormat, "format", "f", "json", "output format: "+strings.Join(output.Names(), ", "))
	f.StringSliceVar(&gradeTags, "tags", nil, "keywords recognised after a single-line delimiter")
	f.BoolVar(&gradeNoMultiline, "no-multiline", false, "skip block comments")
	f.BoolVar(&gradeNoJSDoc, "no-jsdoc", false, "skip /** */ doc comments in C-like languages")
}

func runGrade(cmd *cobra.Command, args []string) error {
	if !language.Lookup(gradeLang, true).Supported {
		return exitError(ExitInvalidArgs, "textinfo: unknown language %q (see textinfo languages)", gradeLang)
	}

	var text string
	if len(args) == 1 {
		text = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return exitError(ExitInvalidArgs, "textinfo: cannot read standard input (%v)", err)
		}
		text = string(data)
	}

	opts := pipeline.DefaultOptions()
	if cmd.Flags().Changed("tags") {
		opts.Tags = append([]string{}, gradeTags...)
	}
	opts.MultilineComments = !gradeNoMultiline
	opts.UseJSDocStyle = !gradeNoJSDoc
	opts.HighlightPlainText = gradeLang == language.PlainTextID
	for _, e := range pipeline.ValidateOptions(opts) {
		slog.Warn("ignoring option", "field", e.Field, "reason", e.Message)
	}

	result, err := pipeline.Run(cmd.Context(), text, gradeLang, opts)
	if err != nil {
		return exitError(ExitTotalFailure, "textinfo: grading failed (%v)", err)
	}

	w := cmd.OutOrStdout()
	if gradeFormat == "json" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return exitError(ExitTotalFailure, "textinfo: JSON marshal failed (%v)", err)
		}
		_, _ = fmt.Fprintln(w, string(data))
		return nil
	}

	formatter, err := output.GetFormatter(gradeFormat)
	if err != nil {
		return exitError(ExitInvalidArgs, "textinfo: %v", err)
	}
	if err := formatter.Format(model.Single("<input>", result), w); err != nil {
		return exitError(ExitTotalFailure, "textinfo: formatting failed (%v)", err)
	}
	return nil
}

// resetGradeFlags resets grade command state for testing.
func resetGradeFlags() {
	gradeLang = language.PlainTextID
	gradeFormat = "json"
	gradeTags = nil
	gradeNoMultiline = false
	gradeNoJSDoc = false
	resetChanged(gradeCmd)
}
