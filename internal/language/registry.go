// Copyright 2026 The Textinfo Authors
// SPDX-License-Identifier: MIT

package language

import "sort"

// PlainTextID is the identifier editors assign to untyped text files.
const PlainTextID = "plaintext"

// profiles is built once and never written after init. Ids are case
// sensitive ("COBOL" and "SAS" are upper case in editor registries).
var profiles = buildTable(map[*Profile][]string{
	&asciidocProfile: {"asciidoc"},
	&jsProfile:       {"apex", "javascript", "javascriptreact", "typescript", "typescriptreact"},
	&cProfile: {
		"al", "c", "cpp", "csharp", "dart", "flax", "fsharp", "go", "groovy",
		"haxe", "java", "jsonc", "kotlin", "less", "pascal", "objectpascal",
		"php", "rust", "scala", "sass", "scss", "shaderlab", "stylus", "swift",
		"verilog", "vue",
	},
	&cssProfile: {"css"},
	&hashProfile: {
		"coffeescript", "dockerfile", "gdscript", "graphql", "julia", "makefile",
		"perl", "perl6", "puppet", "r", "ruby", "tcl", "yaml",
	},
	&shellProfile:   {"shellscript"},
	&pythonProfile:  {"elixir", "python"},
	&nimProfile:     {"nim"},
	&psProfile:      {"powershell"},
	&sqlProfile:     {"ada", "hive-sql", "pig", "plsql", "sql"},
	&luaProfile:     {"lua"},
	&haskellProfile: {"elm", "haskell"},
	&quoteProfile:   {"brightscript", "diagram", "vb"},
	&percentProfile: {"bibtex", "erlang", "latex", "matlab"},
	&lispProfile:    {"clojure", "racket", "lisp"},
	&hclProfile:     {"terraform"},
	&cobolProfile:   {"COBOL"},
	&fortranProfile: {"fortran-modern"},
	&statsProfile:   {"SAS", "stata"},
	&markupProfile:  {"html", "markdown", "xml"},
	&twigProfile:    {"twig"},
	&genstatProfile: {"genstat"},
	&cfmlProfile:    {"cfml"},
})

func buildTable(groups map[*Profile][]string) map[string]Profile {
	table := make(map[string]Profile)
	for profile, ids := range groups {
		for _, id := range ids {
			if _, dup := table[id]; dup {
				panic("language: duplicate id " + id)
			}
			table[id] = *profile
		}
	}
	return table
}

// Lookup returns the comment profile for a language id. Unknown ids return
// an unsupported zero profile. Plain text is supported only when
// highlightPlainText is set.
func Lookup(languageID string, highlightPlainText bool) Profile {
	if languageID == PlainTextID {
		p := plainProfile
		p.Supported = highlightPlainText
		return p
	}
	return profiles[languageID]
}

// IDs returns every known language id in sorted order, plaintext included.
func IDs() []string {
	ids := make([]string, 0, len(profiles)+1)
	for id := range profiles {
		ids = append(ids, id)
	}
	ids = append(ids, PlainTextID)
	sort.Strings(ids)
	return ids
}
