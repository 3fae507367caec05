// Package pipeline composes language lookup, pattern compilation, comment
// extraction, readability evaluation and aggregation into a single run over
// one text snapshot.
package pipeline

import (
	"fmt"
	"strings"
)

// ValidationError describes a single questionable user-supplied option.
type ValidationError struct {
	// Field is the option that failed validation.
	Field string

	// Message describes what went wrong.
	Message string
}

// Error implements the error interface.
func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidateOptions reports options that are redundant or can never match
// anything. The findings are advisory: Run accepts any options, escapes
// every tag and skips empty and repeated ones. Hosts log the findings as
// warnings and carry on.
func ValidateOptions(o Options) []ValidationError {
	var errs []ValidationError

	seen := make(map[string]int)
	for i, tag := range o.Tags {
		field := fmt.Sprintf("Tags[%d]", i)

		if strings.TrimSpace(tag) == "" {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "must not be empty",
			})
			continue
		}

		if strings.ContainsAny(tag, "\r\n") {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: "must not contain line breaks",
			})
		}

		folded := strings.ToLower(tag)
		if prev, ok := seen[folded]; ok {
			errs = append(errs, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("duplicates Tags[%d] %q (tags match case-insensitively)", prev, o.Tags[prev]),
			})
			continue
		}
		seen[folded] = i
	}

	return errs
}
