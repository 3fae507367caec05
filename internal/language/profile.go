// Copyright 2026 The Textinfo Authors
// SPDX-License-Identifier: MIT

// Package language maps editor language identifiers to the lexical rules
// used to find comments in their source text.
package language

// Profile describes how one language marks comments. Profiles are plain
// values; the registry hands out copies so callers cannot mutate the table.
type Profile struct {
	// Supported is false for unknown ids and for plaintext when plain-text
	// highlighting is off. An unsupported profile yields no comments.
	Supported bool

	// SingleLine is the single-line delimiter ("//", "#", "--", ...).
	// Empty disables the single-line pass entirely.
	SingleLine string

	// BlockStart and BlockEnd delimit block comments. Empty BlockStart
	// disables the block pass.
	BlockStart string
	BlockEnd   string

	// DocStyle enables the /** ... */ matcher regardless of configuration.
	DocStyle bool

	// IgnoreFirstLine drops a single-line match anchored at offset 0 so a
	// shebang is not read as a comment.
	IgnoreFirstLine bool

	// PlainText anchors single-line matching at line starts instead of a
	// delimiter.
	PlainText bool
}

// HasSingleLine reports whether the single-line pass applies.
func (p Profile) HasSingleLine() bool { return p.SingleLine != "" }

// HasBlock reports whether the block pass applies.
func (p Profile) HasBlock() bool { return p.BlockStart != "" && p.BlockEnd != "" }

// CLike reports whether the profile uses C-style /* */ blocks. Such
// languages may opt into doc-style matching through configuration.
func (p Profile) CLike() bool { return p.BlockStart == "/*" && p.BlockEnd == "*/" }

func lineOnly(delim string) Profile {
	return Profile{Supported: true, SingleLine: delim}
}

func withBlock(delim, start, end string) Profile {
	return Profile{Supported: true, SingleLine: delim, BlockStart: start, BlockEnd: end}
}

// Shared profiles, one per syntax family.
var (
	asciidocProfile = withBlock("//", "////", "////")
	jsProfile       = Profile{Supported: true, SingleLine: "//", BlockStart: "/*", BlockEnd: "*/", DocStyle: true}
	cProfile        = withBlock("//", "/*", "*/")
	cssProfile      = withBlock("/*", "/*", "*/")
	hashProfile     = lineOnly("#")
	shellProfile    = Profile{Supported: true, SingleLine: "#", IgnoreFirstLine: true}
	pythonProfile   = Profile{Supported: true, SingleLine: "#", BlockStart: `"""`, BlockEnd: `"""`, IgnoreFirstLine: true}
	nimProfile      = withBlock("#", "#[", "]#")
	psProfile       = withBlock("#", "<#", "#>")
	sqlProfile      = lineOnly("--")
	luaProfile      = withBlock("--", "--[[", "]]")
	haskellProfile  = withBlock("--", "{-", "-}")
	quoteProfile    = lineOnly("'")
	percentProfile  = lineOnly("%")
	lispProfile     = lineOnly(";")
	hclProfile      = withBlock("#", "/*", "*/")
	cobolProfile    = lineOnly("*>")
	fortranProfile  = lineOnly("c")
	statsProfile    = withBlock("*", "/*", "*/")
	markupProfile   = withBlock("<!--", "<!--", "-->")
	twigProfile     = withBlock("{#", "{#", "#}")
	genstatProfile  = withBlock(`\`, `"`, `"`)
	cfmlProfile     = withBlock("<!---", "<!---", "--->")
	plainProfile    = Profile{Supported: true, PlainText: true}
)
