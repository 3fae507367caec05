package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	textinfolog "github.com/davetashner/textinfo/internal/log"
)

// Global flag values.
var (
	verbose   bool
	quiet     bool
	noColor   bool
	logFormat string
)

// rootCmd is the base command for textinfo.
var rootCmd = &cobra.Command{
	Use:   "textinfo",
	Short: "Measure how readable your code comments are",
	Long: `textinfo extracts the comments from source files and scores each one with
classic readability formulas: Flesch reading ease, Flesch-Kincaid, SMOG,
Coleman-Liau, ARI, Dale-Chall, Linsear Write and Gunning Fog. It reports a
predicted reading grade per comment and boxplot summaries per project.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if noColor {
			color.NoColor = true
		}
		if err := textinfolog.Setup(textinfolog.Options{
			Verbose: verbose,
			Quiet:   quiet,
			Format:  logFormat,
			Writer:  cmd.ErrOrStderr(),
		}); err != nil {
			return exitError(ExitInvalidArgs, "textinfo: %v", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", textinfolog.FormatText, "log output format: text or json")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// resetChanged restores every local flag of cmd to its default and clears
// its Changed mark. Used by the reset helpers in tests.
func resetChanged(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
}
