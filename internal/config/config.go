// Package config handles .textinfo.yaml and .textinfo.toml configuration
// files, the global config file and TEXTINFO_* environment overrides.
package config

import "github.com/davetashner/textinfo/internal/pipeline"

// Config is one configuration layer. Pointer and zero-valued fields are
// "unset" and fall through to lower-precedence layers during Merge.
type Config struct {
	Tags               []string          `yaml:"tags,omitempty" toml:"tags,omitempty"`
	MultilineComments  *bool             `yaml:"multiline_comments,omitempty" toml:"multiline_comments,omitempty"`
	HighlightPlainText *bool             `yaml:"highlight_plain_text,omitempty" toml:"highlight_plain_text,omitempty"`
	UseJSDocStyle      *bool             `yaml:"use_jsdoc_style,omitempty" toml:"use_jsdoc_style,omitempty"`
	OutputFormat       string            `yaml:"output_format,omitempty" toml:"output_format,omitempty"`
	IncludePatterns    []string          `yaml:"include_patterns,omitempty" toml:"include_patterns,omitempty"`
	ExcludePatterns    []string          `yaml:"exclude_patterns,omitempty" toml:"exclude_patterns,omitempty"`
	Workers            int               `yaml:"workers,omitempty" toml:"workers,omitempty"`
	Languages          map[string]string `yaml:"languages,omitempty" toml:"languages,omitempty"`
}

// File names looked up in a project directory. YAML wins when both exist.
const (
	FileName     = ".textinfo.yaml"
	TOMLFileName = ".textinfo.toml"
)

// DefaultOutputFormat is used when no layer sets output_format.
const DefaultOutputFormat = "table"

// Options resolves the pipeline switches, filling unset fields with the
// defaults. An explicitly empty tag list stays empty.
func (c *Config) Options() pipeline.Options {
	opts := pipeline.DefaultOptions()
	if c == nil {
		return opts
	}
	if c.Tags != nil {
		opts.Tags = append([]string(nil), c.Tags...)
	}
	if c.MultilineComments != nil {
		opts.MultilineComments = *c.MultilineComments
	}
	if c.HighlightPlainText != nil {
		opts.HighlightPlainText = *c.HighlightPlainText
	}
	if c.UseJSDocStyle != nil {
		opts.UseJSDocStyle = *c.UseJSDocStyle
	}
	return opts
}

// Format returns the configured output format or the default.
func (c *Config) Format() string {
	if c == nil || c.OutputFormat == "" {
		return DefaultOutputFormat
	}
	return c.OutputFormat
}

// Bool returns a pointer to b, for building Config literals.
func Bool(b bool) *bool { return &b }
