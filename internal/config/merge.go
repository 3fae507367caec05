package config

import "maps"

// Merge combines configuration layers, highest precedence first. For each
// field the first layer that sets it wins. Language overrides merge per
// extension. Nil layers are skipped.
//
// The CLI uses the order: flags, project file, environment, global file.
func Merge(layers ...*Config) *Config {
	result := &Config{}
	// Walk lowest precedence first so higher layers overwrite.
	for i := len(layers) - 1; i >= 0; i-- {
		l := layers[i]
		if l == nil {
			continue
		}
		if l.Tags != nil {
			result.Tags = l.Tags
		}
		if l.MultilineComments != nil {
			result.MultilineComments = l.MultilineComments
		}
		if l.HighlightPlainText != nil {
			result.HighlightPlainText = l.HighlightPlainText
		}
		if l.UseJSDocStyle != nil {
			result.UseJSDocStyle = l.UseJSDocStyle
		}
		if l.OutputFormat != "" {
			result.OutputFormat = l.OutputFormat
		}
		if len(l.IncludePatterns) > 0 {
			result.IncludePatterns = l.IncludePatterns
		}
		if len(l.ExcludePatterns) > 0 {
			result.ExcludePatterns = l.ExcludePatterns
		}
		if l.Workers != 0 {
			result.Workers = l.Workers
		}
		if len(l.Languages) > 0 {
			if result.Languages == nil {
				result.Languages = make(map[string]string, len(l.Languages))
			}
			maps.Copy(result.Languages, l.Languages)
		}
	}
	return result
}
