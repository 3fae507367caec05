package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/davetashner/textinfo/internal/language"
	"github.com/davetashner/textinfo/internal/output"
)

// MaxWorkers caps the workers setting.
const MaxWorkers = 256

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.OutputFormat != "" {
		if _, err := output.GetFormatter(cfg.OutputFormat); err != nil {
			errs = append(errs, fmt.Sprintf("output_format: %v", err))
		}
	}

	if cfg.Workers < 0 || cfg.Workers > MaxWorkers {
		errs = append(errs, fmt.Sprintf("workers: must be between 0 and %d, got %d", MaxWorkers, cfg.Workers))
	}

	for _, p := range cfg.IncludePatterns {
		if !doublestar.ValidatePattern(p) {
			errs = append(errs, fmt.Sprintf("include_patterns: invalid glob %q", p))
		}
	}
	for _, p := range cfg.ExcludePatterns {
		if !doublestar.ValidatePattern(p) {
			errs = append(errs, fmt.Sprintf("exclude_patterns: invalid glob %q", p))
		}
	}

	for _, ext := range slices.Sorted(maps.Keys(cfg.Languages)) {
		if id := cfg.Languages[ext]; !language.Lookup(id, true).Supported {
			errs = append(errs, fmt.Sprintf("languages.%s: unknown language id %q", ext, id))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
