package language

import (
	"path/filepath"
	"strings"
)

// byName matches whole file names that carry no useful extension.
var byName = map[string]string{
	"dockerfile":     "dockerfile",
	"makefile":       "makefile",
	"gnumakefile":    "makefile",
	"rakefile":       "ruby",
	"gemfile":        "ruby",
	"cmakelists.txt": "plaintext",
}

// byExt maps lower-cased file extensions (with the dot) to language ids.
var byExt = map[string]string{
	".adoc": "asciidoc", ".asciidoc": "asciidoc",
	".cls": "apex", ".trigger": "apex",
	".js": "javascript", ".mjs": "javascript", ".cjs": "javascript",
	".jsx": "javascriptreact",
	".ts":  "typescript", ".mts": "typescript", ".cts": "typescript",
	".tsx": "typescriptreact",
	".al":  "al",
	".c":   "c", ".h": "c",
	".cc": "cpp", ".cpp": "cpp", ".cxx": "cpp", ".hpp": "cpp", ".hh": "cpp",
	".cs":   "csharp",
	".dart": "dart",
	".fs":   "fsharp", ".fsx": "fsharp", ".fsi": "fsharp",
	".go":     "go",
	".groovy": "groovy", ".gradle": "groovy",
	".hx":    "haxe",
	".java":  "java",
	".jsonc": "jsonc",
	".kt":    "kotlin", ".kts": "kotlin",
	".less": "less",
	".pas":  "pascal", ".pp": "objectpascal", ".dpr": "objectpascal",
	".php":   "php",
	".rs":    "rust",
	".scala": "scala", ".sc": "scala",
	".sass":   "sass",
	".scss":   "scss",
	".shader": "shaderlab",
	".styl":   "stylus",
	".swift":  "swift",
	".v":      "verilog", ".sv": "verilog",
	".vue":     "vue",
	".css":     "css",
	".coffee":  "coffeescript",
	".gd":      "gdscript",
	".graphql": "graphql", ".gql": "graphql",
	".jl": "julia",
	".mk": "makefile",
	".pl": "perl", ".pm": "perl",
	".raku": "perl6", ".p6": "perl6",
	".r":    "r",
	".rb":   "ruby",
	".tcl":  "tcl",
	".yaml": "yaml", ".yml": "yaml",
	".sh": "shellscript", ".bash": "shellscript", ".zsh": "shellscript",
	".ex": "elixir", ".exs": "elixir",
	".py": "python", ".pyw": "python",
	".nim": "nim",
	".ps1": "powershell", ".psm1": "powershell",
	".adb": "ada", ".ads": "ada",
	".hql": "hive-sql",
	".pig": "pig",
	".pks": "plsql", ".pkb": "plsql",
	".sql":  "sql",
	".lua":  "lua",
	".elm":  "elm",
	".hs":   "haskell",
	".brs":  "brightscript",
	".puml": "diagram", ".plantuml": "diagram",
	".vb": "vb", ".bas": "vb",
	".bib": "bibtex",
	".erl": "erlang", ".hrl": "erlang",
	".tex": "latex",
	".m":   "matlab",
	".clj": "clojure", ".cljs": "clojure", ".edn": "clojure",
	".rkt":  "racket",
	".lisp": "lisp", ".el": "lisp",
	".tf": "terraform", ".tfvars": "terraform",
	".cbl": "COBOL", ".cob": "COBOL",
	".f90": "fortran-modern", ".f95": "fortran-modern",
	".sas":  "SAS",
	".do":   "stata",
	".html": "html", ".htm": "html",
	".md": "markdown", ".markdown": "markdown",
	".xml": "xml", ".svg": "xml",
	".twig": "twig",
	".gen":  "genstat",
	".cfm":  "cfml", ".cfc": "cfml",
	".txt": "plaintext",
}

// Detect returns the language id for a file path, or "" when the file type
// is unknown. Overrides map extensions (".inc") or base names to ids and
// take precedence over the built-in table.
func Detect(path string, overrides map[string]string) string {
	base := strings.ToLower(filepath.Base(path))
	ext := strings.ToLower(filepath.Ext(path))

	if id, ok := overrides[base]; ok {
		return id
	}
	if ext != "" {
		if id, ok := overrides[ext]; ok {
			return id
		}
	}
	if id, ok := byName[base]; ok {
		return id
	}
	return byExt[ext]
}
