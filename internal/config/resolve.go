package config

import (
	"fmt"
	"strings"

	"github.com/davetashner/textinfo/internal/source"
)

// Resolve loads every layer for a project directory and merges them in CLI
// precedence order: flags, project file, environment, global file. A .env
// file in dir is loaded into the environment first. The merged result is
// validated.
func Resolve(dir string, flags *Config, lookup LookupFunc) (*Config, error) {
	if err := LoadDotEnv(dir); err != nil {
		return nil, err
	}
	env, err := FromEnv(lookup)
	if err != nil {
		return nil, err
	}
	project, path, err := Load(dir)
	if err != nil {
		return nil, err
	}
	global, err := LoadGlobal()
	if err != nil {
		return nil, fmt.Errorf("load global config: %w", err)
	}

	merged := Merge(flags, project, env, global)
	if err := Validate(merged); err != nil {
		if path != "" {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, err
	}
	return merged, nil
}

// Filter builds the document filter for sources. lang forces a language id
// when non-empty.
func (c *Config) Filter(lang string) source.Filter {
	if c == nil {
		return source.Filter{Language: lang}
	}
	return source.Filter{
		Include:   c.IncludePatterns,
		Exclude:   c.ExcludePatterns,
		Languages: overrides(c.Languages),
		Language:  lang,
	}
}

// overrides keys language overrides the way language.Detect looks them up.
// Config keys are extensions without the dot ("h"), which also match a
// lower-cased base name ("makefile").
func overrides(langs map[string]string) map[string]string {
	if len(langs) == 0 {
		return nil
	}
	out := make(map[string]string, 2*len(langs))
	for key, id := range langs {
		key = strings.ToLower(key)
		out[key] = id
		if !strings.HasPrefix(key, ".") {
			out["."+key] = id
		}
	}
	return out
}
