package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/textinfo/internal/config"
	"github.com/davetashner/textinfo/internal/output"
	"github.com/davetashner/textinfo/internal/source"
	"github.com/davetashner/textinfo/internal/testable"
)

func decodeEnvelope(t *testing.T, data []byte) output.JSONEnvelope {
	t.Helper()
	var env output.JSONEnvelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var ece *exitCodeError
	require.True(t, errors.As(err, &ece), "expected exitCodeError, got %v", err)
	return ece.ExitCode()
}

func TestAnalyze_Directory(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	dir := initProject(t)
	cmd.SetArgs([]string{"analyze", dir, "--format", "json", "--quiet"})

	require.NoError(t, cmd.Execute())

	env := decodeEnvelope(t, stdout.Bytes())
	assert.Equal(t, 2, env.Metadata.TotalFiles)
	assert.Equal(t, 3, env.Metadata.TotalComments)
	assert.Zero(t, env.Metadata.FailedFiles)
	require.Len(t, env.Report.Files, 2)
	assert.Equal(t, "lib/util.py", env.Report.Files[0].Path)
	assert.Equal(t, "main.go", env.Report.Files[1].Path)
	assert.Equal(t, 3, env.Report.Summary.Comments)
}

func TestAnalyze_DefaultsToCurrentDirectory(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	chdir(t, initProject(t))
	cmd.SetArgs([]string{"analyze", "-f", "json", "-q"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, 2, decodeEnvelope(t, stdout.Bytes()).Metadata.TotalFiles)
}

func TestAnalyze_SingleFile(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	dir := initProject(t)
	cmd.SetArgs([]string{"analyze", filepath.Join(dir, "main.go"), "-f", "json", "-q"})

	require.NoError(t, cmd.Execute())
	env := decodeEnvelope(t, stdout.Bytes())
	require.Len(t, env.Report.Files, 1)
	assert.Equal(t, "main.go", env.Report.Files[0].Path)
	assert.Equal(t, "go", env.Report.Files[0].Result.Language)
}

func TestAnalyze_MultiplePaths(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	dir := initProject(t)
	chdir(t, dir)
	cmd.SetArgs([]string{"analyze", "lib", "main.go", "-f", "json", "-q"})

	require.NoError(t, cmd.Execute())
	env := decodeEnvelope(t, stdout.Bytes())
	require.Len(t, env.Report.Files, 2)
	assert.Equal(t, "lib/util.py", env.Report.Files[0].Path)
	assert.Equal(t, "main.go", env.Report.Files[1].Path)
	assert.Equal(t, "lib, main.go", env.Report.Root)
}

func TestAnalyze_FlagsShapeExtraction(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		comments int
	}{
		{"defaults", nil, 3},
		{"no multiline", []string{"--no-multiline"}, 2},
		{"include glob", []string{"--include", "**/*.py"}, 1},
		{"exclude glob", []string{"--exclude", "lib/**"}, 2},
		{"forced language", []string{"--lang", "go", "--include", "*.go"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, stdout, _ := newTestCmd(t)
			dir := initProject(t)
			cmd.SetArgs(append([]string{"analyze", dir, "-f", "json", "-q"}, tt.args...))

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.comments, decodeEnvelope(t, stdout.Bytes()).Metadata.TotalComments)
		})
	}
}

func TestAnalyze_ProjectConfig(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	dir := initProject(t)
	writeTestFile(t, dir, config.FileName, "output_format: markdown\nmultiline_comments: false\n")
	cmd.SetArgs([]string{"analyze", dir, "-q"})

	require.NoError(t, cmd.Execute())
	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "# Comment Readability Report"))
	assert.Contains(t, out, "**Comments:** 2")
}

func TestAnalyze_FlagBeatsProjectConfig(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	dir := initProject(t)
	writeTestFile(t, dir, config.FileName, "output_format: markdown\n")
	cmd.SetArgs([]string{"analyze", dir, "-q", "--format", "json"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, 3, decodeEnvelope(t, stdout.Bytes()).Metadata.TotalComments)
}

func TestAnalyze_RepeatedTagsWarn(t *testing.T) {
	cmd, stdout, stderr := newTestCmd(t)
	dir := initProject(t)
	cmd.SetArgs([]string{"analyze", dir, "-q", "--tags", "todo,TODO,"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, 3, decodeEnvelope(t, stdout.Bytes()).Metadata.TotalComments)
	assert.Contains(t, stderr.String(), "ignoring option")
}

func TestAnalyze_EnvConfig(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	dir := initProject(t)
	t.Setenv(config.EnvOutputFormat, "markdown")
	cmd.SetArgs([]string{"analyze", dir, "-q"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "# Comment Readability Report")
}

func TestAnalyze_OutputFile(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	dir := initProject(t)
	out := filepath.Join(t.TempDir(), "report.html")
	cmd.SetArgs([]string{"analyze", dir, "-f", "html", "-o", out, "-q"})

	require.NoError(t, cmd.Execute())
	assert.Empty(t, stdout.String())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<html")
	assert.Contains(t, string(data), "main.go")
}

func TestAnalyze_OutputCreateError(t *testing.T) {
	cmd, _, _ := newTestCmd(t)
	dir := initProject(t)
	withMockFS(t, &testable.MockFileSystem{
		CreateFn: func(string) (*os.File, error) {
			return nil, errors.New("mock create error")
		},
	})
	cmd.SetArgs([]string{"analyze", dir, "-o", "/tmp/out.json", "-q"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, exitCode(t, err))
	assert.Contains(t, err.Error(), "cannot create output file")
}

func TestAnalyze_InvalidArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"missing path", []string{"/nonexistent/textinfo/path"}, "does not exist"},
		{"unknown format", []string{"--format", "yaml"}, "unknown format"},
		{"unknown language", []string{"--lang", "klingon"}, "unknown language"},
		{"bad glob", []string{"--include", "[a-"}, "invalid glob"},
		{"too many workers", []string{"--workers", "1000"}, "workers"},
		{"rev with two paths", []string{"--rev", "HEAD", "a", "b"}, "single repository path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, _ := newTestCmd(t)
			chdir(t, initProject(t))
			cmd.SetArgs(append([]string{"analyze", "-q"}, tt.args...))

			err := cmd.Execute()
			require.Error(t, err)
			assert.Equal(t, ExitInvalidArgs, exitCode(t, err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestAnalyze_NothingToAnalyse(t *testing.T) {
	cmd, _, _ := newTestCmd(t)
	dir := t.TempDir()
	writeTestFile(t, dir, "image.bin", "\x00\x00")
	cmd.SetArgs([]string{"analyze", dir, "-q"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitTotalFailure, exitCode(t, err))
	assert.Contains(t, err.Error(), source.ErrNoDocuments.Error())
}

func TestAnalyze_UnknownSingleFile(t *testing.T) {
	cmd, _, _ := newTestCmd(t)
	dir := t.TempDir()
	writeTestFile(t, dir, "notes.klingon", "nuqneH\n")
	cmd.SetArgs([]string{"analyze", filepath.Join(dir, "notes.klingon"), "-q"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitTotalFailure, exitCode(t, err))
	assert.Contains(t, err.Error(), "use --lang")
}

func withFailingRead(t *testing.T, suffix string) {
	t.Helper()
	orig := source.FS
	source.FS = &testable.MockFileSystem{
		ReadFileFn: func(name string) ([]byte, error) {
			if strings.HasSuffix(filepath.ToSlash(name), suffix) {
				return nil, errors.New("permission denied")
			}
			return os.ReadFile(name)
		},
	}
	t.Cleanup(func() { source.FS = orig })
}

func TestAnalyze_PartialFailure(t *testing.T) {
	dir := initProject(t)

	t.Run("lenient", func(t *testing.T) {
		cmd, stdout, _ := newTestCmd(t)
		withFailingRead(t, "lib/util.py")
		cmd.SetArgs([]string{"analyze", dir, "-f", "json", "-q"})

		require.NoError(t, cmd.Execute())
		env := decodeEnvelope(t, stdout.Bytes())
		assert.Equal(t, 1, env.Metadata.TotalFiles)
		assert.Equal(t, 1, env.Metadata.FailedFiles)
		require.Len(t, env.Report.Errors, 1)
		assert.Equal(t, "lib/util.py", env.Report.Errors[0].Path)
	})

	t.Run("strict", func(t *testing.T) {
		cmd, stdout, _ := newTestCmd(t)
		withFailingRead(t, "lib/util.py")
		cmd.SetArgs([]string{"analyze", dir, "-f", "json", "-q", "--strict"})

		err := cmd.Execute()
		require.Error(t, err)
		assert.Equal(t, ExitPartialFailure, exitCode(t, err))
		assert.Equal(t, 1, decodeEnvelope(t, stdout.Bytes()).Metadata.FailedFiles, "report still written")
	})

	t.Run("total", func(t *testing.T) {
		cmd, _, _ := newTestCmd(t)
		withFailingRead(t, "")
		cmd.SetArgs([]string{"analyze", dir, "-f", "json", "-q"})

		err := cmd.Execute()
		require.Error(t, err)
		assert.Equal(t, ExitTotalFailure, exitCode(t, err))
		assert.Contains(t, err.Error(), "all 2 document(s) failed")
	})
}

func TestAnalyze_Revision(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	dir := initProject(t)

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("main.go")
	require.NoError(t, err)
	_, err = wt.Commit("add main", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	// The working tree diverges from HEAD; the snapshot must not see it.
	writeTestFile(t, dir, "main.go", "package main\n")

	cmd.SetArgs([]string{"analyze", dir, "--rev", "HEAD", "-f", "json", "-q"})
	require.NoError(t, cmd.Execute())

	env := decodeEnvelope(t, stdout.Bytes())
	assert.Equal(t, "HEAD", env.Report.Revision)
	require.Len(t, env.Report.Files, 1)
	assert.Equal(t, "main.go", env.Report.Files[0].Path)
	assert.Equal(t, 2, env.Metadata.TotalComments)
}

func TestAnalyzeFlagLayer_OnlyChangedFlags(t *testing.T) {
	resetAnalyzeFlags()
	t.Cleanup(resetAnalyzeFlags)

	layer := analyzeFlagLayer(analyzeCmd)
	assert.Equal(t, &config.Config{}, layer)

	require.NoError(t, analyzeCmd.Flags().Set("no-jsdoc", "true"))
	require.NoError(t, analyzeCmd.Flags().Set("tags", "todo,fixme"))
	layer = analyzeFlagLayer(analyzeCmd)
	require.NotNil(t, layer.UseJSDocStyle)
	assert.False(t, *layer.UseJSDocStyle)
	assert.Equal(t, []string{"todo", "fixme"}, layer.Tags)
	assert.Nil(t, layer.MultilineComments)
}
