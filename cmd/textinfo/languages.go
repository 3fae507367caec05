package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/davetashner/textinfo/internal/language"
)

var languagesJSON bool

// languagesCmd lists the supported language ids.
var languagesCmd = &cobra.Command{
	Use:   "languages [id]",
	Short: "List supported languages and their comment syntax",
	Long: `List every language id textinfo can extract comments from, with its
single-line delimiter, block delimiters and the files it is detected from.
Pass an id to show only that language.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLanguages,
}

func init() {
	languagesCmd.Flags().BoolVar(&languagesJSON, "json", false, "print as JSON")
}

func runLanguages(cmd *cobra.Command, args []string) error {
	infos := language.All()
	if len(args) == 1 {
		id := args[0]
		var found []language.Info
		for _, info := range infos {
			if info.ID == id {
				found = append(found, info)
			}
		}
		if len(found) == 0 {
			return exitError(ExitInvalidArgs, "textinfo: unknown language %q", id)
		}
		infos = found
	}

	w := cmd.OutOrStdout()
	if languagesJSON {
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return exitError(ExitTotalFailure, "textinfo: JSON marshal failed (%v)", err)
		}
		_, _ = fmt.Fprintln(w, string(data))
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	bold := color.New(color.Bold)
	_, _ = fmt.Fprintln(tw, bold.Sprint("ID")+"\t"+bold.Sprint("LINE")+"\t"+bold.Sprint("BLOCK")+"\t"+bold.Sprint("FILES"))
	for _, info := range infos {
		line := orDash(info.SingleLine)
		block := "-"
		if info.BlockStart != "" {
			block = info.BlockStart + " " + info.BlockEnd
		}
		if info.PlainText {
			line = "(every line)"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", info.ID, line, block, orDash(strings.Join(info.Files, " ")))
	}
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func resetLanguagesFlags() {
	languagesJSON = false
	resetChanged(languagesCmd)
}
