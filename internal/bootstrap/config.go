package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/davetashner/textinfo/internal/config"
	"github.com/davetashner/textinfo/internal/pipeline"
)

// GenerateConfig writes a starter .textinfo.yaml spelling out the defaults.
// An existing project config is left alone unless force is set.
func GenerateConfig(repoPath string, langs []LanguageCount, force bool) (Action, error) {
	path := filepath.Join(repoPath, config.FileName)

	exists, err := fileExists(path)
	if err != nil {
		return Action{}, err
	}
	if !force {
		if exists {
			return Action{File: config.FileName, Operation: OpSkipped, Description: "already exists (use --force to regenerate)"}, nil
		}
		hasTOML, err := fileExists(filepath.Join(repoPath, config.TOMLFileName))
		if err != nil {
			return Action{}, err
		}
		if hasTOML {
			return Action{File: config.FileName, Operation: OpSkipped, Description: config.TOMLFileName + " already configures this project"}, nil
		}
	}

	if err := FS.WriteFile(path, []byte(renderConfig(langs)), 0o600); err != nil {
		return Action{}, fmt.Errorf("writing %s: %w", config.FileName, err)
	}

	op, desc := OpCreated, "starter configuration with defaults"
	if exists {
		op, desc = OpUpdated, "regenerated with defaults"
	}
	return Action{File: config.FileName, Operation: op, Description: desc}, nil
}

func renderConfig(langs []LanguageCount) string {
	defaults := pipeline.DefaultOptions()

	var b strings.Builder
	b.WriteString("# textinfo configuration, generated by `textinfo init`.\n")
	if len(langs) > 0 {
		parts := make([]string, len(langs))
		for i, l := range langs {
			parts[i] = fmt.Sprintf("%s (%d)", l.ID, l.Files)
		}
		fmt.Fprintf(&b, "# Detected languages: %s\n", strings.Join(parts, ", "))
	}
	b.WriteString("\n")

	quoted := make([]string, len(defaults.Tags))
	for i, tag := range defaults.Tags {
		quoted[i] = strconv.Quote(tag)
	}
	fmt.Fprintf(&b, "tags: [%s]\n", strings.Join(quoted, ", "))
	fmt.Fprintf(&b, "multiline_comments: %t\n", defaults.MultilineComments)
	fmt.Fprintf(&b, "highlight_plain_text: %t\n", defaults.HighlightPlainText)
	fmt.Fprintf(&b, "use_jsdoc_style: %t\n", defaults.UseJSDocStyle)
	fmt.Fprintf(&b, "output_format: %s\n", config.DefaultOutputFormat)
	b.WriteString("\n")
	b.WriteString("# include_patterns: [\"**/*.go\"]\n")
	b.WriteString("# exclude_patterns: [\"**/testdata/**\"]\n")
	b.WriteString("# workers: 0\n")
	b.WriteString("# languages:\n#   h: cpp\n")
	return b.String()
}

func fileExists(path string) (bool, error) {
	_, err := FS.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", filepath.Base(path), err)
}
