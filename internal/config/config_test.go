package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davetashner/textinfo/internal/pipeline"
)

func TestOptions_Defaults(t *testing.T) {
	var nilCfg *Config
	assert.Equal(t, pipeline.DefaultOptions(), nilCfg.Options())
	assert.Equal(t, pipeline.DefaultOptions(), (&Config{}).Options())
}

func TestOptions_Overrides(t *testing.T) {
	cfg := &Config{
		Tags:               []string{"fixme"},
		MultilineComments:  Bool(false),
		HighlightPlainText: Bool(true),
		UseJSDocStyle:      Bool(false),
	}
	opts := cfg.Options()
	assert.Equal(t, []string{"fixme"}, opts.Tags)
	assert.False(t, opts.MultilineComments)
	assert.True(t, opts.HighlightPlainText)
	assert.False(t, opts.UseJSDocStyle)
}

func TestOptions_EmptyTagsStayEmpty(t *testing.T) {
	opts := (&Config{Tags: []string{}}).Options()
	assert.Empty(t, opts.Tags)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, DefaultOutputFormat, (&Config{}).Format())
	assert.Equal(t, "json", (&Config{OutputFormat: "json"}).Format())
}
