package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{
		EnvTags:               " todo, fixme ,,",
		EnvMultilineComments:  "0",
		EnvHighlightPlainText: "true",
		EnvOutputFormat:       "json",
		EnvWorkers:            "6",
	}))
	require.NoError(t, err)

	assert.Equal(t, []string{"todo", "fixme"}, cfg.Tags)
	require.NotNil(t, cfg.MultilineComments)
	assert.False(t, *cfg.MultilineComments)
	require.NotNil(t, cfg.HighlightPlainText)
	assert.True(t, *cfg.HighlightPlainText)
	assert.Nil(t, cfg.UseJSDocStyle)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 6, cfg.Workers)
}

func TestFromEnv_Empty(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestFromEnv_EmptyTagsClearsDefaults(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{EnvTags: ""}))
	require.NoError(t, err)
	assert.NotNil(t, cfg.Tags)
	assert.Empty(t, cfg.Options().Tags)
}

func TestFromEnv_Errors(t *testing.T) {
	_, err := FromEnv(lookupFrom(map[string]string{
		EnvUseJSDocStyle: "maybe",
		EnvWorkers:       "lots",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvUseJSDocStyle)
	assert.Contains(t, err.Error(), EnvWorkers)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, LoadDotEnv(dir), "missing .env is ignored")

	t.Setenv(EnvOutputFormat, "markdown")
	require.NoError(t, os.Unsetenv(EnvOutputFormat))
	t.Setenv(EnvWorkers, "9")
	writeFile(t, filepath.Join(dir, ".env"), EnvOutputFormat+"=html\n"+EnvWorkers+"=1\n")

	require.NoError(t, LoadDotEnv(dir))
	assert.Equal(t, "html", os.Getenv(EnvOutputFormat))
	assert.Equal(t, "9", os.Getenv(EnvWorkers), "existing variables win")
}
