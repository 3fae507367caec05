package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name   string
		tags   []string
		fields []string
	}{
		{name: "defaults", tags: DefaultTags},
		{name: "none", tags: nil},
		{name: "empty", tags: []string{"todo", "  "}, fields: []string{"Tags[1]"}},
		{name: "newline", tags: []string{"a\nb"}, fields: []string{"Tags[0]"}},
		{name: "duplicate_case", tags: []string{"TODO", "fixme", "todo"}, fields: []string{"Tags[2]"}},
		{name: "several", tags: []string{"", "x\r", "X\r"}, fields: []string{"Tags[0]", "Tags[1]", "Tags[2]", "Tags[2]"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateOptions(Options{Tags: tt.tags})
			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	errs := ValidateOptions(Options{Tags: []string{"todo", "TODO"}})
	require.Len(t, errs, 1)
	assert.Equal(t, `Tags[1]: duplicates Tags[0] "todo" (tags match case-insensitively)`, errs[0].Error())
}

func TestAnnotate(t *testing.T) {
	result, err := newEngine(t).Run(t.Context(), goSource, "go", DefaultOptions())
	require.NoError(t, err)

	notes := Annotate(result.Spans, result.Stats)
	assert.Equal(t, result.Annotations, notes)
	for _, n := range notes {
		assert.GreaterOrEqual(t, n.Grade, 0)
	}

	assert.Empty(t, Annotate(result.Spans, nil))
}
