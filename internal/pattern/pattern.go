// Copyright 2026 The Textinfo Authors
// SPDX-License-Identifier: MIT

// Package pattern compiles a language profile and a set of tag keywords into
// the regular expressions used by the comment extractor.
package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/davetashner/textinfo/internal/language"
)

// Capture groups shared by every compiled pattern:
//
//	1: delimiter or line anchor (single-line), leading blank (block)
//	2: whitespace after the delimiter (single-line), opening delimiter (block)
//	3: tag keyword (single-line), body (block)
//	4: comment text (single-line), closing delimiter (block)
const (
	GroupLead = 1
	GroupOpen = 2
	GroupBody = 3
	GroupTail = 4
)

// docExpr matches /** ... */ blocks independently of the language.
const docExpr = `(?m)(^|[ \t])(/\*\*)+([\s\S]*?)(\*/)`

// Options carries the configuration switches that affect pattern shape.
type Options struct {
	// PlainText enables line-anchored matching for plain-text profiles.
	PlainText bool

	// MultilineComments enables the block pass.
	MultilineComments bool

	// UseJSDocStyle extends doc-style matching to C-like languages whose
	// profile does not enable it by default.
	UseJSDocStyle bool
}

// Set holds the compiled patterns for one profile. A nil pattern means the
// corresponding pass is skipped. Sets are immutable and safe for concurrent
// use.
type Set struct {
	SingleLine      *regexp.Regexp
	Block           *regexp.Regexp
	Doc             *regexp.Regexp
	IgnoreFirstLine bool
}

// Empty reports whether no pass would run.
func (s *Set) Empty() bool {
	return s == nil || (s.SingleLine == nil && s.Block == nil && s.Doc == nil)
}

// Build compiles the patterns for profile. Unsupported profiles produce an
// empty set. Every delimiter and tag is escaped, so user-supplied tags are
// always treated as literal text.
func Build(profile language.Profile, tags []string, opts Options) (*Set, error) {
	set := &Set{IgnoreFirstLine: profile.IgnoreFirstLine}
	if !profile.Supported {
		return set, nil
	}

	plain := profile.PlainText && opts.PlainText
	if profile.HasSingleLine() || plain {
		re, err := regexp.Compile(SingleLineExpr(profile.SingleLine, tags, plain))
		if err != nil {
			return nil, fmt.Errorf("compile single-line pattern: %w", err)
		}
		set.SingleLine = re
	}

	if profile.HasBlock() && opts.MultilineComments {
		re, err := regexp.Compile(BlockExpr(profile.BlockStart, profile.BlockEnd))
		if err != nil {
			return nil, fmt.Errorf("compile block pattern: %w", err)
		}
		set.Block = re
	}

	if profile.DocStyle || (opts.UseJSDocStyle && profile.CLike()) {
		set.Doc = docPattern
	}

	return set, nil
}

var docPattern = regexp.MustCompile(docExpr)

// SingleLineExpr returns the single-line expression source. In plain mode the
// delimiter clause is replaced by a line-start anchor and the expression is
// evaluated in multiline mode.
func SingleLineExpr(delimiter string, tags []string, plain bool) string {
	var b strings.Builder
	if plain {
		b.WriteString(`(?im)(^)([ \t]*)`)
	} else {
		b.WriteString(`(?i)(`)
		b.WriteString(Escape(delimiter))
		b.WriteString(`)+( |\t)*`)
	}

	escaped := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		escaped = append(escaped, Escape(tag))
	}
	if len(escaped) > 0 {
		b.WriteString(`(`)
		b.WriteString(strings.Join(escaped, "|"))
		b.WriteString(`)*`)
	} else {
		b.WriteString(`()`)
	}

	// The JavaScript-style "." excludes carriage returns as well as newlines.
	b.WriteString(`([^\r\n]*)`)
	return b.String()
}

// BlockExpr returns the block expression source. The body is non-greedy so
// adjacent blocks stay separate.
func BlockExpr(start, end string) string {
	return `(?m)(^|[ \t])(` + Escape(start) + `[\s])+([\s\S]*?)(` + Escape(end) + `)`
}

// Escape quotes regexp metacharacters, forward slashes included.
func Escape(s string) string {
	return strings.ReplaceAll(regexp.QuoteMeta(s), "/", `\/`)
}
