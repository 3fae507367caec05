package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv.
const (
	EnvTags               = "TEXTINFO_TAGS"
	EnvMultilineComments  = "TEXTINFO_MULTILINE_COMMENTS"
	EnvHighlightPlainText = "TEXTINFO_HIGHLIGHT_PLAIN_TEXT"
	EnvUseJSDocStyle      = "TEXTINFO_USE_JSDOC_STYLE"
	EnvOutputFormat       = "TEXTINFO_OUTPUT_FORMAT"
	EnvWorkers            = "TEXTINFO_WORKERS"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadDotEnv loads dir/.env into the process environment without
// overriding variables that are already set. A missing file is ignored.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := FS.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// FromEnv builds a config layer from TEXTINFO_* variables. Tags are comma
// separated; booleans accept anything strconv.ParseBool does.
func FromEnv(lookup LookupFunc) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg := &Config{}
	var errs []error

	if v, ok := lookup(EnvTags); ok {
		cfg.Tags = splitList(v)
	}

	bools := []struct {
		key string
		dst **bool
	}{
		{EnvMultilineComments, &cfg.MultilineComments},
		{EnvHighlightPlainText, &cfg.HighlightPlainText},
		{EnvUseJSDocStyle, &cfg.UseJSDocStyle},
	}
	for _, b := range bools {
		v, ok := lookup(b.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", b.key, err))
			continue
		}
		*b.dst = Bool(parsed)
	}

	if v, ok := lookup(EnvOutputFormat); ok {
		cfg.OutputFormat = strings.TrimSpace(v)
	}

	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvWorkers, err))
		} else {
			cfg.Workers = n
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// splitList splits a comma-separated value, trimming blanks around items and
// dropping empty ones.
func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
