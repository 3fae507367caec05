package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/textinfo/internal/config"
)

func TestConfigSubcommands_AreRegistered(t *testing.T) {
	subs := map[string]bool{}
	for _, cmd := range configCmd.Commands() {
		subs[cmd.Name()] = true
	}
	assert.True(t, subs["get"])
	assert.True(t, subs["set"])
	assert.True(t, subs["list"])
}

func TestConfigGet(t *testing.T) {
	tests := []struct {
		name string
		file string
		key  string
		want string
	}{
		{"scalar", "output_format: json\n", "output_format", "json\n"},
		{"language override", "languages:\n  h: cpp\n", "languages.h", "cpp\n"},
		{"list", "tags: [todo, fixme]\n", "tags", "- todo\n- fixme\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, stdout, _ := newTestCmd(t)
			dir := t.TempDir()
			writeTestFile(t, dir, config.FileName, tt.file)
			chdir(t, dir)
			cmd.SetArgs([]string{"config", "get", tt.key})

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestConfigGet_EnvLayer(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	chdir(t, t.TempDir())
	t.Setenv(config.EnvOutputFormat, "html")
	cmd.SetArgs([]string{"config", "get", "output_format"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "html\n", stdout.String())
}

func TestConfigGet_Global(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	dir := t.TempDir()
	writeTestFile(t, dir, config.FileName, "output_format: json\n")
	chdir(t, dir)
	require.NoError(t, os.MkdirAll(config.GlobalConfigDir(), 0o750))
	require.NoError(t, os.WriteFile(config.GlobalConfigPath(), []byte("output_format: markdown\n"), 0o600))

	cmd.SetArgs([]string{"config", "get", "--global", "output_format"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "markdown\n", stdout.String())
}

func TestConfigGet_MissingKey(t *testing.T) {
	cmd, _, _ := newTestCmd(t)
	chdir(t, t.TempDir())
	cmd.SetArgs([]string{"config", "get", "workers"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestConfigSet(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	dir := t.TempDir()
	chdir(t, dir)

	cmd.SetArgs([]string{"config", "set", "tags", "todo,fixme"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Set tags = todo,fixme\n", stdout.String())

	cfg, err := config.LoadFile(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, []string{"todo", "fixme"}, cfg.Tags)
}

func TestConfigSet_Global(t *testing.T) {
	cmd, _, _ := newTestCmd(t)
	dir := t.TempDir()
	chdir(t, dir)

	cmd.SetArgs([]string{"config", "set", "--global", "multiline_comments", "false"})
	require.NoError(t, cmd.Execute())

	cfg, err := config.LoadGlobal()
	require.NoError(t, err)
	require.NotNil(t, cfg.MultilineComments)
	assert.False(t, *cfg.MultilineComments)
	assert.NoFileExists(t, filepath.Join(dir, config.FileName))
}

func TestConfigSet_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown key", []string{"colour", "red"}, "unknown key"},
		{"bad bool", []string{"multiline_comments", "maybe"}, "expects true or false"},
		{"bad language", []string{"languages.h", "klingon"}, "unknown language id"},
		{"bad format", []string{"output_format", "yaml"}, "unknown format"},
		{"bad glob", []string{"include_patterns", "[a-"}, "invalid glob"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _, _ := newTestCmd(t)
			dir := t.TempDir()
			chdir(t, dir)
			cmd.SetArgs(append([]string{"config", "set"}, tt.args...))

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.NoFileExists(t, filepath.Join(dir, config.FileName))
		})
	}
}

func TestConfigSet_RefusesToShadowTOML(t *testing.T) {
	cmd, _, _ := newTestCmd(t)
	dir := t.TempDir()
	writeTestFile(t, dir, config.TOMLFileName, "workers = 2\n")
	chdir(t, dir)
	cmd.SetArgs([]string{"config", "set", "workers", "4"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.TOMLFileName)
	assert.NoFileExists(t, filepath.Join(dir, config.FileName))
}

func TestConfigList(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	dir := t.TempDir()
	writeTestFile(t, dir, config.FileName, "output_format: json\nlanguages:\n  h: cpp\n")
	chdir(t, dir)
	require.NoError(t, os.MkdirAll(config.GlobalConfigDir(), 0o750))
	require.NoError(t, os.WriteFile(config.GlobalConfigPath(), []byte("output_format: markdown\nworkers: 2\n"), 0o600))
	t.Setenv(config.EnvUseJSDocStyle, "false")

	cmd.SetArgs([]string{"config", "list"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "languages.h = cpp (repo)\n"+
		"output_format = json (repo)\n"+
		"use_jsdoc_style = false (env)\n"+
		"workers = 2 (global)\n", stdout.String())
}

func TestConfigList_Empty(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	chdir(t, t.TempDir())
	cmd.SetArgs([]string{"config", "list"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "No configuration set.")
}
