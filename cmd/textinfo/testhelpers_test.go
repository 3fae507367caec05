package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/textinfo/internal/config"
	"github.com/davetashner/textinfo/internal/testable"
)

// newTestCmd redirects rootCmd's output to fresh buffers and resets every
// command's flags.
func newTestCmd(t *testing.T) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	resetAllFlags()
	isolateConfig(t)

	origNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = origNoColor })

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(new(bytes.Buffer))
	return rootCmd, stdout, stderr
}

func resetAllFlags() {
	verbose, quiet, noColor = false, false, false
	logFormat = "text"
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	resetAnalyzeFlags()
	resetGradeFlags()
	resetLanguagesFlags()
	resetConfigFlags()
	resetInitFlags()
}

// isolateConfig points the global config at an empty directory and clears
// TEXTINFO_* variables for the duration of the test.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{
		config.EnvTags, config.EnvMultilineComments, config.EnvHighlightPlainText,
		config.EnvUseJSDocStyle, config.EnvOutputFormat, config.EnvWorkers,
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

// chdir switches into dir until the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// withMockFS swaps cmdFS with the given mock and restores it on test cleanup.
func withMockFS(t *testing.T, mock *testable.MockFileSystem) {
	t.Helper()
	orig := cmdFS
	cmdFS = mock
	t.Cleanup(func() { cmdFS = orig })
}

const mainGo = `package main

// main prints a greeting to standard output.
func main() {
	/* The greeting is fixed for now. */
	println("hi")
}
`

const utilPy = `import os

# Return the home directory of the current user.
def home():
    return os.path.expanduser("~")
`

// initProject writes a small mixed-language project and returns its path.
func initProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTestFile(t, dir, "main.go", mainGo)
	writeTestFile(t, dir, "lib/util.py", utilPy)
	writeTestFile(t, dir, "data.bin", "\x00\x01\x02")
	return dir
}
