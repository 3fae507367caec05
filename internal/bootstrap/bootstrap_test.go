package bootstrap

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/textinfo/internal/config"
	"github.com/davetashner/textinfo/internal/pipeline"
	"github.com/davetashner/textinfo/internal/source"
	"github.com/davetashner/textinfo/internal/testable"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "main.go", "package main\n\n// main runs.\nfunc main() {}\n")
	writeFile(t, dir, "cmd/tool.go", "package cmd\n")
	writeFile(t, dir, "scripts/build.py", "import os\n")
	return dir
}

func TestRun(t *testing.T) {
	dir := newProject(t)

	result, err := Run(context.Background(), InitConfig{RepoPath: dir})
	require.NoError(t, err)

	assert.Equal(t, []LanguageCount{{ID: "go", Files: 2}, {ID: "python", Files: 1}}, result.Languages)
	require.Len(t, result.Actions, 2)
	assert.Equal(t, Action{File: config.FileName, Operation: OpCreated, Description: "starter configuration with defaults"}, result.Actions[0])
	assert.Equal(t, OpSkipped, result.Actions[1].Operation)

	data, err := os.ReadFile(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Detected languages: go (2), python (1)")
}

func TestRun_EmptyProject(t *testing.T) {
	result, err := Run(context.Background(), InitConfig{RepoPath: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, result.Languages)
	assert.Equal(t, OpCreated, result.Actions[0].Operation)
}

func TestGenerateConfig_RoundTripsToDefaults(t *testing.T) {
	dir := t.TempDir()
	_, err := GenerateConfig(dir, nil, false)
	require.NoError(t, err)

	cfg, err := config.LoadFile(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	require.NoError(t, config.Validate(cfg))
	assert.Equal(t, pipeline.DefaultOptions(), cfg.Options())
	assert.Equal(t, config.DefaultOutputFormat, cfg.Format())
}

func TestGenerateConfig_Existing(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		force    bool
		wantOp   string
		wantKeep bool
	}{
		{"yaml kept", config.FileName, false, OpSkipped, true},
		{"yaml forced", config.FileName, true, OpUpdated, false},
		{"toml kept", config.TOMLFileName, false, OpSkipped, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.existing, "workers = 3\n")

			action, err := GenerateConfig(dir, nil, tt.force)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOp, action.Operation)

			data, err := os.ReadFile(filepath.Join(dir, tt.existing))
			require.NoError(t, err)
			assert.Equal(t, tt.wantKeep, string(data) == "workers = 3\n")
		})
	}
}

func TestGenerateConfig_WriteError(t *testing.T) {
	orig := FS
	FS = &testable.MockFileSystem{
		WriteFileFn: func(string, []byte, os.FileMode) error { return errors.New("disk full") },
	}
	t.Cleanup(func() { FS = orig })

	_, err := GenerateConfig(t.TempDir(), nil, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestCountLanguages(t *testing.T) {
	docs := []source.Doc{
		{Path: "a.rb", LanguageID: "ruby"},
		{Path: "b.go", LanguageID: "go"},
		{Path: "c.rb", LanguageID: "ruby"},
		{Path: "d.go", LanguageID: "go"},
		{Path: "e.go", LanguageID: "go", Err: errors.New("unreadable")},
		{Path: "f.lua", LanguageID: "lua"},
	}
	assert.Equal(t, []LanguageCount{
		{ID: "go", Files: 2},
		{ID: "ruby", Files: 2},
		{ID: "lua", Files: 1},
	}, CountLanguages(docs))
}

func TestGenerateMCPConfig(t *testing.T) {
	t.Run("skips without agent dir", func(t *testing.T) {
		dir := t.TempDir()
		action, err := GenerateMCPConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, OpSkipped, action.Operation)
		assert.NoFileExists(t, filepath.Join(dir, ".mcp.json"))
	})

	t.Run("creates", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".claude"), 0o750))

		action, err := GenerateMCPConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, OpCreated, action.Operation)

		cfg := readMCPConfig(t, dir)
		var entry mcpServerEntry
		require.NoError(t, json.Unmarshal(cfg.MCPServers["textinfo"], &entry))
		assert.Equal(t, "textinfo", entry.Command)
		assert.Equal(t, []string{"mcp", "serve"}, entry.Args)
	})

	t.Run("merges and then skips", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".claude"), 0o750))
		writeFile(t, dir, ".mcp.json", `{"mcpServers": {"other": {"command": "other", "args": []}}}`)

		action, err := GenerateMCPConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, OpUpdated, action.Operation)
		cfg := readMCPConfig(t, dir)
		assert.Contains(t, cfg.MCPServers, "other")
		assert.Contains(t, cfg.MCPServers, "textinfo")

		again, err := GenerateMCPConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, OpSkipped, again.Operation)
	})

	t.Run("invalid json", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".claude"), 0o750))
		writeFile(t, dir, ".mcp.json", "{not json")

		_, err := GenerateMCPConfig(dir)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "parsing .mcp.json"))
	})
}

func readMCPConfig(t *testing.T, dir string) mcpConfig {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, ".mcp.json")) //nolint:gosec // test path
	require.NoError(t, err)
	var cfg mcpConfig
	require.NoError(t, json.Unmarshal(data, &cfg))
	return cfg
}
