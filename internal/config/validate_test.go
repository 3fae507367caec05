package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	cfg := &Config{
		Tags:            []string{"todo", "!"},
		OutputFormat:    "markdown",
		Workers:         4,
		IncludePatterns: []string{"**/*.go"},
		ExcludePatterns: []string{"vendor/**"},
		Languages:       map[string]string{"h": "c"},
	}
	require.NoError(t, Validate(cfg))
	require.NoError(t, Validate(&Config{}))
}

func TestValidate_TagsAccepted(t *testing.T) {
	for _, tags := range [][]string{
		{"todo", "TODO"},
		{"todo", "todo"},
		{"", "  "},
		{"a\nb"},
	} {
		assert.NoError(t, Validate(&Config{Tags: tags}), "%q", tags)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		want []string
	}{
		{name: "format", cfg: &Config{OutputFormat: "xml"}, want: []string{"output_format", "xml"}},
		{name: "workers", cfg: &Config{Workers: -1}, want: []string{"workers", "-1"}},
		{name: "too_many_workers", cfg: &Config{Workers: MaxWorkers + 1}, want: []string{"workers"}},
		{name: "glob", cfg: &Config{IncludePatterns: []string{"[unclosed"}}, want: []string{"include_patterns", "[unclosed"}},
		{name: "exclude_glob", cfg: &Config{ExcludePatterns: []string{"a/{b"}}, want: []string{"exclude_patterns"}},
		{name: "language", cfg: &Config{Languages: map[string]string{"x": "klingon"}}, want: []string{"languages.x", "klingon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			require.Error(t, err)
			for _, w := range tt.want {
				assert.Contains(t, err.Error(), w)
			}
		})
	}
}

func TestValidate_CollectsAll(t *testing.T) {
	err := Validate(&Config{OutputFormat: "xml", Workers: -3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output_format")
	assert.Contains(t, err.Error(), "workers")
}
