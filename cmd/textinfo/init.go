package main

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/davetashner/textinfo/internal/bootstrap"
	"github.com/davetashner/textinfo/internal/config"
)

// Init-specific flag values.
var initForce bool

// initCmd bootstraps textinfo in a project.
var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter configuration for a project",
	Long: `Survey the languages of a project and write .textinfo.yaml with the default
settings spelled out. When the project has a .claude/ directory the textinfo
MCP server is also registered in .mcp.json.

Existing files are left alone. Use --force to regenerate .textinfo.yaml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing "+config.FileName)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	target, err := resolveTarget(path)
	if err != nil {
		return err
	}
	if !target.isDir {
		return exitError(ExitInvalidArgs, "textinfo: %q is not a directory", path)
	}

	slog.Info("initializing textinfo", "path", target.abs)
	result, err := bootstrap.Run(cmd.Context(), bootstrap.InitConfig{RepoPath: target.abs, Force: initForce})
	if err != nil {
		return exitError(ExitTotalFailure, "textinfo: init failed (%v)", err)
	}

	w := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	dim := color.New(color.Faint)

	_, _ = bold.Fprintln(w, "textinfo init complete")
	for _, lang := range result.Languages {
		_, _ = fmt.Fprintf(w, "  %-16s %d file(s)\n", lang.ID, lang.Files)
	}
	_, _ = fmt.Fprintln(w)

	for _, a := range result.Actions {
		var prefix string
		switch a.Operation {
		case bootstrap.OpCreated:
			prefix = green.Sprint("  + ")
		case bootstrap.OpUpdated:
			prefix = yellow.Sprint("  ~ ")
		default:
			prefix = dim.Sprint("  - ")
		}
		_, _ = fmt.Fprintf(w, "%s%-16s %s\n", prefix, a.File, dim.Sprintf("(%s)", a.Description))
	}
	return nil
}

func resetInitFlags() {
	initForce = false
	resetChanged(initCmd)
}
